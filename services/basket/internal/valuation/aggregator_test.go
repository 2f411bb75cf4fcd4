package valuation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feirinha/feirinha/services/basket/internal/models"
)

func newTestAggregator(outcomes map[int]Outcome) (*Aggregator, *fakeFetcher) {
	fetcher := &fakeFetcher{outcomes: outcomes}
	return &Aggregator{Valuator: &Valuator{Fetcher: fetcher}}, fetcher
}

func TestAggregator_Aggregate_Totals(t *testing.T) {
	t.Parallel()

	agg, _ := newTestAggregator(map[int]Outcome{
		1: Found("Produto A", dec("5.99")),
		2: Found("Produto B", dec("4.50")),
	})

	items := []models.BasketItem{
		{BasketID: 1, ProdutoID: 1, Quantidade: 2},
		{BasketID: 1, ProdutoID: 2, Quantidade: 1},
	}

	sum, err := agg.Aggregate(context.Background(), items, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.TotalItensUnicos)
	assert.EqualValues(t, 3, sum.TotalQuantidade)
	assert.True(t, sum.ValorTotal.Equal(dec("16.48")), "valor_total %s", sum.ValorTotal)

	require.Len(t, sum.Itens, 2)
	assert.Equal(t, "Produto A", sum.Itens[0].ProdutoNome)
	assert.True(t, sum.Itens[0].Subtotal.Equal(dec("11.98")))
	assert.Equal(t, "Produto B", sum.Itens[1].ProdutoNome)
	assert.True(t, sum.Itens[1].Subtotal.Equal(dec("4.50")))
}

func TestAggregator_Aggregate_Empty(t *testing.T) {
	t.Parallel()

	agg, fetcher := newTestAggregator(nil)

	sum, err := agg.Aggregate(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Zero(t, sum.TotalItensUnicos)
	assert.Zero(t, sum.TotalQuantidade)
	assert.True(t, sum.ValorTotal.IsZero())
	assert.Empty(t, sum.Itens)
	assert.Zero(t, fetcher.calls)
}

func TestAggregator_Aggregate_FailureIsolation(t *testing.T) {
	t.Parallel()

	agg, _ := newTestAggregator(map[int]Outcome{
		1: Found("Arroz", dec("29.99")),
		2: Failed(),
		3: NotFound(),
	})

	items := []models.BasketItem{
		{BasketID: 1, ProdutoID: 1, Quantidade: 2},
		{BasketID: 1, ProdutoID: 2, Quantidade: 4},
		{BasketID: 1, ProdutoID: 3, Quantidade: 1},
	}

	sum, err := agg.Aggregate(context.Background(), items, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.TotalItensUnicos)
	assert.EqualValues(t, 7, sum.TotalQuantidade, "quantities count even when lookups fail")
	assert.True(t, sum.ValorTotal.Equal(dec("59.98")), "only the resolved item is priced")

	assert.Equal(t, NomeErroBuscarProduto, sum.Itens[1].ProdutoNome)
	assert.True(t, sum.Itens[1].Subtotal.IsZero())
	assert.Equal(t, NomeProdutoNaoEncontrado, sum.Itens[2].ProdutoNome)
	assert.True(t, sum.Itens[2].Subtotal.IsZero())
}

func TestAggregator_Aggregate_SummationOrderInvariant(t *testing.T) {
	t.Parallel()

	outcomes := map[int]Outcome{
		1: Found("A", dec("0.1")),
		2: Found("B", dec("0.2")),
		3: Found("C", dec("0.3")),
	}

	items := []models.BasketItem{
		{BasketID: 1, ProdutoID: 1, Quantidade: 1},
		{BasketID: 1, ProdutoID: 2, Quantidade: 1},
		{BasketID: 1, ProdutoID: 3, Quantidade: 1},
	}
	reversed := []models.BasketItem{items[2], items[1], items[0]}

	aggA, _ := newTestAggregator(outcomes)
	aggB, _ := newTestAggregator(outcomes)

	sumA, err := aggA.Aggregate(context.Background(), items, nil)
	require.NoError(t, err)
	sumB, err := aggB.Aggregate(context.Background(), reversed, nil)
	require.NoError(t, err)

	assert.True(t, sumA.ValorTotal.Equal(sumB.ValorTotal))
	assert.True(t, sumA.ValorTotal.Equal(dec("0.6")))
}

func TestAggregator_Aggregate_CrossBasketLabels(t *testing.T) {
	t.Parallel()

	agg, _ := newTestAggregator(map[int]Outcome{
		1: Found("Arroz", dec("10.00")),
	})

	items := []models.BasketItem{
		{BasketID: 1, ProdutoID: 1, Quantidade: 1},
		{BasketID: 2, ProdutoID: 1, Quantidade: 2},
	}
	labels := map[uint]BasketLabel{
		1: {ID: 1, Nome: "Feira - Mercado Central"},
		2: {ID: 2, Nome: "Churrasco - Atacadão"},
	}

	sum, err := agg.Aggregate(context.Background(), items, labels)
	require.NoError(t, err)

	require.Len(t, sum.Itens, 2)
	assert.EqualValues(t, 1, sum.Itens[0].BasketID)
	assert.Equal(t, "Feira - Mercado Central", sum.Itens[0].BasketNome)
	assert.EqualValues(t, 2, sum.Itens[1].BasketID)
	assert.Equal(t, "Churrasco - Atacadão", sum.Itens[1].BasketNome)
	assert.True(t, sum.ValorTotal.Equal(dec("30")))
}

func TestAggregator_Aggregate_SingleBasketModeOmitsLabels(t *testing.T) {
	t.Parallel()

	agg, _ := newTestAggregator(map[int]Outcome{1: Found("Arroz", dec("1.00"))})

	sum, err := agg.Aggregate(context.Background(), []models.BasketItem{
		{BasketID: 5, ProdutoID: 1, Quantidade: 1},
	}, nil)
	require.NoError(t, err)

	require.Len(t, sum.Itens, 1)
	assert.Zero(t, sum.Itens[0].BasketID)
	assert.Empty(t, sum.Itens[0].BasketNome)
}

func TestAggregator_Aggregate_OneLookupPerItem(t *testing.T) {
	t.Parallel()

	agg, fetcher := newTestAggregator(map[int]Outcome{1: Found("Arroz", dec("1.00"))})

	// The same produto twice still means two lookups.
	items := []models.BasketItem{
		{BasketID: 1, ProdutoID: 1, Quantidade: 1},
		{BasketID: 1, ProdutoID: 1, Quantidade: 2},
	}

	_, err := agg.Aggregate(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestAggregator_Aggregate_PropagatesUnexpectedError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	agg := &Aggregator{Valuator: &Valuator{Fetcher: &fakeFetcher{err: boom}}}

	_, err := agg.Aggregate(context.Background(), []models.BasketItem{
		{BasketID: 1, ProdutoID: 1, Quantidade: 1},
	}, nil)
	require.ErrorIs(t, err, boom)
}

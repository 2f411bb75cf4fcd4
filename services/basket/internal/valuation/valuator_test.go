package valuation

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feirinha/feirinha/services/basket/internal/models"
)

type fakeFetcher struct {
	outcomes map[int]Outcome
	err      error
	calls    int
}

func (f *fakeFetcher) Fetch(ctx context.Context, produtoID int) (Outcome, error) {
	f.calls++
	if f.err != nil {
		return Outcome{}, f.err
	}
	if out, ok := f.outcomes[produtoID]; ok {
		return out, nil
	}
	return NotFound(), nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValuator_Valuate_Found(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		preco        string
		quantidade   uint
		wantSubtotal string
	}{
		{name: "unit quantity", preco: "29.99", quantidade: 1, wantSubtotal: "29.99"},
		{name: "price times quantity", preco: "29.99", quantidade: 2, wantSubtotal: "59.98"},
		{name: "rounded to cents", preco: "0.333", quantidade: 3, wantSubtotal: "1"},
		{name: "zero price", preco: "0", quantidade: 5, wantSubtotal: "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := &Valuator{Fetcher: &fakeFetcher{outcomes: map[int]Outcome{
				1: Found("Arroz", dec(tt.preco)),
			}}}

			val, err := v.Valuate(context.Background(), models.BasketItem{ProdutoID: 1, Quantidade: tt.quantidade})
			require.NoError(t, err)

			assert.Equal(t, "Arroz", val.ProdutoNome)
			assert.True(t, val.PrecoUnitario.Equal(dec(tt.preco)), "unit price %s", val.PrecoUnitario)
			assert.True(t, val.Subtotal.Equal(dec(tt.wantSubtotal)), "subtotal %s", val.Subtotal)
		})
	}
}

func TestValuator_Valuate_AbsorbsLookupFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outcome  Outcome
		wantNome string
	}{
		{name: "not found", outcome: NotFound(), wantNome: NomeProdutoNaoEncontrado},
		{name: "failed", outcome: Failed(), wantNome: NomeErroBuscarProduto},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := &Valuator{Fetcher: &fakeFetcher{outcomes: map[int]Outcome{42: tt.outcome}}}

			val, err := v.Valuate(context.Background(), models.BasketItem{ProdutoID: 42, Quantidade: 7})
			require.NoError(t, err)

			assert.Equal(t, tt.wantNome, val.ProdutoNome)
			assert.True(t, val.PrecoUnitario.IsZero(), "unit price must be zero")
			assert.True(t, val.Subtotal.IsZero(), "subtotal must be zero regardless of quantity")
			assert.EqualValues(t, 7, val.Quantidade)
		})
	}
}

func TestValuator_Valuate_PropagatesUnexpectedError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	v := &Valuator{Fetcher: &fakeFetcher{err: boom}}

	_, err := v.Valuate(context.Background(), models.BasketItem{ProdutoID: 1, Quantidade: 1})
	require.ErrorIs(t, err, boom)
}

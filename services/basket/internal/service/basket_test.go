package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feirinha/feirinha/services/basket/internal/models"
	"github.com/feirinha/feirinha/services/basket/internal/transport"
)

func TestBasketService_CreateBasket_Validation(t *testing.T) {
	r := newTestRepo(t)
	svc := &BasketService{Repo: r, Aggregator: newItemsStub(t, nil).aggregator()}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateBasketRequest
	}{
		{name: "empty nome", req: transport.CreateBasketRequest{Estabelecimento: "Mercado"}},
		{name: "empty estabelecimento", req: transport.CreateBasketRequest{Nome: "Feira"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBasket(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestBasketService_DeleteBasket_Cascades(t *testing.T) {
	r := newTestRepo(t)
	svc := &BasketService{Repo: r, Aggregator: newItemsStub(t, nil).aggregator()}
	ctx := context.Background()

	basket := mustCreateBasket(t, r, "Feira", "Mercado Central")
	other := mustCreateBasket(t, r, "Churrasco", "Atacadão")
	mustCreateItem(t, r, basket.ID, 1, 2)
	mustCreateItem(t, r, basket.ID, 2, 1)
	mustCreateItem(t, r, other.ID, 3, 1)

	require.NoError(t, svc.DeleteBasket(ctx, basket.ID))

	var orphans int64
	require.NoError(t, r.DB.Model(&models.BasketItem{}).Where("basket_id = ?", basket.ID).Count(&orphans).Error)
	assert.Zero(t, orphans, "no orphaned items after cascade")

	var remaining int64
	require.NoError(t, r.DB.Model(&models.BasketItem{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining, "other baskets keep their items")
}

func TestBasketService_DeleteBasket_NotFound(t *testing.T) {
	r := newTestRepo(t)
	svc := &BasketService{Repo: r, Aggregator: newItemsStub(t, nil).aggregator()}

	err := svc.DeleteBasket(context.Background(), 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBasketService_GetBasket_ComputedTotals(t *testing.T) {
	r := newTestRepo(t)
	stub := newItemsStub(t, map[int]string{1: "5.99", 2: "4.50"})
	svc := &BasketService{Repo: r, Aggregator: stub.aggregator()}

	basket := mustCreateBasket(t, r, "Feira", "Mercado Central")
	mustCreateItem(t, r, basket.ID, 1, 2)
	mustCreateItem(t, r, basket.ID, 2, 1)

	resp, err := svc.GetBasket(context.Background(), basket.ID)
	require.NoError(t, err)

	assert.Equal(t, "Feira", resp.Nome)
	assert.Equal(t, 2, resp.TotalItens)
	assert.InDelta(t, 16.48, resp.ValorTotal, 1e-9)
}

func TestBasketService_PatchBasket(t *testing.T) {
	r := newTestRepo(t)
	svc := &BasketService{Repo: r, Aggregator: newItemsStub(t, nil).aggregator()}
	ctx := context.Background()

	basket := mustCreateBasket(t, r, "Feira", "Mercado Central")

	novoNome := "Feira do Mês"
	patched, err := svc.PatchBasket(ctx, transport.PatchBasketRequest{Nome: &novoNome}, basket.ID)
	require.NoError(t, err)

	assert.Equal(t, "Feira do Mês", patched.Nome)
	assert.Equal(t, "Mercado Central", patched.Estabelecimento)
}

func TestItemService_CreateItem_DefaultQuantity(t *testing.T) {
	r := newTestRepo(t)
	stub := newItemsStub(t, nil)
	svc := &ItemService{Repo: r, Valuator: stub.valuator()}

	basket := mustCreateBasket(t, r, "Feira", "Mercado Central")

	item, err := svc.CreateItem(context.Background(), transport.CreateItemRequest{
		Basket:    basket.ID,
		ProdutoID: 7,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, item.Quantidade)
}

func TestItemService_CreateItem_Validation(t *testing.T) {
	r := newTestRepo(t)
	stub := newItemsStub(t, nil)
	svc := &ItemService{Repo: r, Valuator: stub.valuator()}
	ctx := context.Background()

	basket := mustCreateBasket(t, r, "Feira", "Mercado Central")
	zero := uint(0)

	tests := []struct {
		name string
		req  transport.CreateItemRequest
	}{
		{name: "missing basket", req: transport.CreateItemRequest{ProdutoID: 1}},
		{name: "unknown basket", req: transport.CreateItemRequest{Basket: 999, ProdutoID: 1}},
		{name: "missing produto", req: transport.CreateItemRequest{Basket: basket.ID}},
		{name: "zero quantidade", req: transport.CreateItemRequest{Basket: basket.ID, ProdutoID: 1, Quantidade: &zero}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateItem(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestItemService_GetItem_Decorated(t *testing.T) {
	r := newTestRepo(t)
	stub := newItemsStub(t, map[int]string{1: "15.50"})
	svc := &ItemService{Repo: r, Valuator: stub.valuator()}

	basket := mustCreateBasket(t, r, "Feira", "Mercado Central")
	item := mustCreateItem(t, r, basket.ID, 1, 2)

	resp, err := svc.GetItem(context.Background(), item.ID)
	require.NoError(t, err)

	assert.Equal(t, "Produto 1", resp.ProdutoNome)
	assert.Equal(t, "15.50", resp.ProdutoPreco)
	assert.InDelta(t, 31.00, resp.Subtotal, 1e-9)
	assert.Equal(t, "Feira - Mercado Central", resp.BasketNome)
}

func TestItemService_GetItems_UnresolvedProduto(t *testing.T) {
	r := newTestRepo(t)
	stub := newItemsStub(t, nil)
	svc := &ItemService{Repo: r, Valuator: stub.valuator()}

	basket := mustCreateBasket(t, r, "Feira", "Mercado Central")
	mustCreateItem(t, r, basket.ID, 404, 1)

	items, err := svc.GetItems(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Produto não encontrado", items[0].ProdutoNome)
	assert.Equal(t, "0.00", items[0].ProdutoPreco)
	assert.Zero(t, items[0].Subtotal)
}

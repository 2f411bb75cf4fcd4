package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/feirinha/feirinha/pkg/events"
	"github.com/feirinha/feirinha/services/basket/internal/models"
	"github.com/feirinha/feirinha/services/basket/internal/repo"
	"github.com/feirinha/feirinha/services/basket/internal/transport"
	"github.com/feirinha/feirinha/services/basket/internal/valuation"
)

type ItemService struct {
	Repo     *repo.GormRepo
	Valuator *valuation.Valuator
	Producer *events.Producer
}

func basketLabel(b *models.Basket) string {
	return fmt.Sprintf("%s - %s", b.Nome, b.Estabelecimento)
}

func (s *ItemService) decorate(ctx context.Context, item *models.BasketItem, label string) (*transport.ItemResponse, error) {
	val, err := s.Valuator.Valuate(ctx, *item)
	if err != nil {
		return nil, err
	}

	return &transport.ItemResponse{
		ID:             item.ID,
		Basket:         item.BasketID,
		BasketNome:     label,
		ProdutoID:      item.ProdutoID,
		ProdutoNome:    val.ProdutoNome,
		ProdutoPreco:   val.PrecoUnitario.StringFixed(2),
		Quantidade:     item.Quantidade,
		Subtotal:       val.Subtotal.InexactFloat64(),
		DataAdicionado: item.DataAdicionado,
	}, nil
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (*transport.ItemResponse, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	basket, err := s.Repo.GetBasket(ctx, item.BasketID)
	if err != nil {
		return nil, err
	}

	return s.decorate(ctx, item, basketLabel(basket))
}

func (s *ItemService) GetItems(ctx context.Context) ([]transport.ItemResponse, error) {
	items, err := s.Repo.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	labels, err := s.basketLabels(ctx, items)
	if err != nil {
		return nil, err
	}

	out := make([]transport.ItemResponse, 0, len(items))
	for i := range items {
		resp, err := s.decorate(ctx, &items[i], labels[items[i].BasketID])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// basketLabels prefetches the owning baskets in one query, so list reads
// do not traverse the basket relation per item.
func (s *ItemService) basketLabels(ctx context.Context, items []models.BasketItem) (map[uint]string, error) {
	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.BasketID]; ok {
			continue
		}
		seen[item.BasketID] = struct{}{}
		ids = append(ids, item.BasketID)
	}

	baskets, err := s.Repo.GetBasketsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	labels := make(map[uint]string, len(baskets))
	for i := range baskets {
		labels[baskets[i].ID] = basketLabel(&baskets[i])
	}
	return labels, nil
}

func (s *ItemService) CreateItem(ctx context.Context, req transport.CreateItemRequest) (*models.BasketItem, error) {
	if req.Basket == 0 {
		return nil, fmt.Errorf("basket é obrigatório: %w", ErrValidation)
	}
	if req.ProdutoID <= 0 {
		return nil, fmt.Errorf("produto_id é obrigatório: %w", ErrValidation)
	}

	quantidade := uint(1)
	if req.Quantidade != nil {
		if *req.Quantidade < 1 {
			return nil, fmt.Errorf("quantidade deve ser no mínimo 1: %w", ErrValidation)
		}
		quantidade = *req.Quantidade
	}

	if _, err := s.Repo.GetBasket(ctx, req.Basket); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("basket %d não existe: %w", req.Basket, ErrValidation)
		}
		return nil, err
	}

	item := &models.BasketItem{
		BasketID:   req.Basket,
		ProdutoID:  req.ProdutoID,
		Quantidade: quantidade,
	}
	if err := s.Repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	publish(ctx, s.Producer, "item_added", item.ID, item)
	return item, nil
}

func (s *ItemService) PatchItem(ctx context.Context, req transport.PatchItemRequest, id uint) (*models.BasketItem, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Quantidade != nil {
		if *req.Quantidade < 1 {
			return nil, fmt.Errorf("quantidade deve ser no mínimo 1: %w", ErrValidation)
		}
		item.Quantidade = *req.Quantidade
	}
	if err := s.Repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	publish(ctx, s.Producer, "item_updated", item.ID, item)
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		return err
	}

	publish(ctx, s.Producer, "item_removed", id, map[string]any{"id": id})
	return nil
}

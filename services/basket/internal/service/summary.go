package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/feirinha/feirinha/services/basket/internal/models"
	"github.com/feirinha/feirinha/services/basket/internal/repo"
	"github.com/feirinha/feirinha/services/basket/internal/transport"
	"github.com/feirinha/feirinha/services/basket/internal/valuation"
)

type SummaryService struct {
	Repo       *repo.GormRepo
	Aggregator *valuation.Aggregator
}

// Summarize values one basket when basketID is set, or every line item in
// the system when it is nil. The basket lookup happens before any produto
// lookups, so a missing basket costs no remote calls.
func (s *SummaryService) Summarize(ctx context.Context, basketID *uint) (*transport.SummaryResponse, error) {
	var (
		items      []models.BasketItem
		labels     map[uint]valuation.BasketLabel
		basketInfo *transport.BasketInfo
		err        error
	)

	if basketID != nil {
		basket, err := s.Repo.GetBasket(ctx, *basketID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("carrinho %d: %w", *basketID, ErrNotFound)
			}
			return nil, err
		}

		items, err = s.Repo.GetItemsByBasket(ctx, basket.ID)
		if err != nil {
			return nil, err
		}

		basketInfo = &transport.BasketInfo{
			BasketID:        basket.ID,
			BasketNome:      basket.Nome,
			Estabelecimento: basket.Estabelecimento,
			DataCriacao:     basket.DataCriacao,
		}
	} else {
		items, err = s.Repo.GetItems(ctx)
		if err != nil {
			return nil, err
		}

		labels, err = s.labels(ctx, items)
		if err != nil {
			return nil, err
		}
	}

	sum, err := s.Aggregator.Aggregate(ctx, items, labels)
	if err != nil {
		return nil, err
	}

	resp := &transport.SummaryResponse{
		TotalItensUnicos: sum.TotalItensUnicos,
		TotalQuantidade:  sum.TotalQuantidade,
		ValorTotal:       sum.ValorTotal.InexactFloat64(),
		Itens:            make([]transport.SummaryItemResponse, 0, len(sum.Itens)),
		BasketInfo:       basketInfo,
	}
	for _, item := range sum.Itens {
		resp.Itens = append(resp.Itens, transport.SummaryItemResponse{
			ProdutoID:     item.ProdutoID,
			ProdutoNome:   item.ProdutoNome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario.InexactFloat64(),
			Subtotal:      item.Subtotal.InexactFloat64(),
			BasketID:      item.BasketID,
			BasketNome:    item.BasketNome,
		})
	}
	return resp, nil
}

// labels prefetches the owning baskets once, before per-item formatting.
func (s *SummaryService) labels(ctx context.Context, items []models.BasketItem) (map[uint]valuation.BasketLabel, error) {
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

	labels := make(map[uint]valuation.BasketLabel, len(baskets))
	for i := range baskets {
		labels[baskets[i].ID] = valuation.BasketLabel{
			ID:   baskets[i].ID,
			Nome: basketLabel(&baskets[i]),
		}
	}
	return labels, nil
}

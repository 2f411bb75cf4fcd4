package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/feirinha/feirinha/pkg/events"
	"github.com/feirinha/feirinha/pkg/logging"
	"github.com/feirinha/feirinha/services/basket/internal/models"
	"github.com/feirinha/feirinha/services/basket/internal/repo"
	"github.com/feirinha/feirinha/services/basket/internal/transport"
	"github.com/feirinha/feirinha/services/basket/internal/valuation"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type BasketService struct {
	Repo       *repo.GormRepo
	Aggregator *valuation.Aggregator
	Producer   *events.Producer
}

func publish(ctx context.Context, p *events.Producer, eventType string, id uint, payload any) {
	if err := p.Publish(ctx, eventType, strconv.FormatUint(uint64(id), 10), payload); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "type", eventType, "error", err)
	}
}

func (s *BasketService) decorate(ctx context.Context, basket *models.Basket) (*transport.BasketResponse, error) {
	items, err := s.Repo.GetItemsByBasket(ctx, basket.ID)
	if err != nil {
		return nil, err
	}

	sum, err := s.Aggregator.Aggregate(ctx, items, nil)
	if err != nil {
		return nil, err
	}

	return &transport.BasketResponse{
		ID:              basket.ID,
		Nome:            basket.Nome,
		Estabelecimento: basket.Estabelecimento,
		TotalItens:      sum.TotalItensUnicos,
		ValorTotal:      sum.ValorTotal.InexactFloat64(),
		DataCriacao:     basket.DataCriacao,
		DataAtualizacao: basket.DataAtualizacao,
	}, nil
}

func (s *BasketService) GetBasket(ctx context.Context, id uint) (*transport.BasketResponse, error) {
	basket, err := s.Repo.GetBasket(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, basket)
}

func (s *BasketService) GetBaskets(ctx context.Context) ([]transport.BasketResponse, error) {
	baskets, err := s.Repo.GetBaskets(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]transport.BasketResponse, 0, len(baskets))
	for i := range baskets {
		resp, err := s.decorate(ctx, &baskets[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *BasketService) CreateBasket(ctx context.Context, req transport.CreateBasketRequest) (*models.Basket, error) {
	if req.Nome == "" {
		return nil, fmt.Errorf("nome é obrigatório: %w", ErrValidation)
	}
	if req.Estabelecimento == "" {
		return nil, fmt.Errorf("estabelecimento é obrigatório: %w", ErrValidation)
	}

	basket := &models.Basket{
		Nome:            req.Nome,
		Estabelecimento: req.Estabelecimento,
	}
	if err := s.Repo.CreateBasket(ctx, basket); err != nil {
		return nil, err
	}

	publish(ctx, s.Producer, "basket_created", basket.ID, basket)
	return basket, nil
}

func (s *BasketService) UpdateBasket(ctx context.Context, req transport.CreateBasketRequest, id uint) (*models.Basket, error) {
	if req.Nome == "" {
		return nil, fmt.Errorf("nome é obrigatório: %w", ErrValidation)
	}
	if req.Estabelecimento == "" {
		return nil, fmt.Errorf("estabelecimento é obrigatório: %w", ErrValidation)
	}

	basket, err := s.Repo.GetBasket(ctx, id)
	if err != nil {
		return nil, err
	}

	basket.Nome = req.Nome
	basket.Estabelecimento = req.Estabelecimento
	if err := s.Repo.UpdateBasket(ctx, basket); err != nil {
		return nil, err
	}

	publish(ctx, s.Producer, "basket_updated", basket.ID, basket)
	return basket, nil
}

func (s *BasketService) PatchBasket(ctx context.Context, req transport.PatchBasketRequest, id uint) (*models.Basket, error) {
	if req.Nome != nil && *req.Nome == "" {
		return nil, fmt.Errorf("nome é obrigatório: %w", ErrValidation)
	}
	if req.Estabelecimento != nil && *req.Estabelecimento == "" {
		return nil, fmt.Errorf("estabelecimento é obrigatório: %w", ErrValidation)
	}

	basket, err := s.Repo.GetBasket(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		basket.Nome = *req.Nome
	}
	if req.Estabelecimento != nil {
		basket.Estabelecimento = *req.Estabelecimento
	}
	if err := s.Repo.UpdateBasket(ctx, basket); err != nil {
		return nil, err
	}

	publish(ctx, s.Producer, "basket_updated", basket.ID, basket)
	return basket, nil
}

func (s *BasketService) DeleteBasket(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteBasket(ctx, id); err != nil {
		return err
	}

	publish(ctx, s.Producer, "basket_deleted", id, map[string]any{"id": id})
	return nil
}

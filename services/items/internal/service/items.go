package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/feirinha/feirinha/pkg/events"
	"github.com/feirinha/feirinha/pkg/logging"
	"github.com/feirinha/feirinha/services/items/internal/models"
	"github.com/feirinha/feirinha/services/items/internal/repo"
	"github.com/feirinha/feirinha/services/items/internal/transport"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type ItemsService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func validarProduto(nome string, preco decimal.Decimal) error {
	if nome == "" {
		return fmt.Errorf("nome é obrigatório: %w", ErrValidation)
	}
	if preco.IsNegative() {
		return fmt.Errorf("preco não pode ser negativo: %w", ErrValidation)
	}
	return nil
}

func (s *ItemsService) publish(ctx context.Context, eventType string, produto *models.Produto) {
	key := strconv.FormatUint(uint64(produto.ID), 10)
	if err := s.Producer.Publish(ctx, eventType, key, produto); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "type", eventType, "error", err)
	}
}

func (s *ItemsService) GetProduto(ctx context.Context, id uint) (*models.Produto, error) {
	return s.Repo.GetProduto(ctx, id)
}

func (s *ItemsService) GetProdutos(ctx context.Context) ([]models.Produto, error) {
	return s.Repo.GetProdutos(ctx)
}

func (s *ItemsService) CreateProduto(ctx context.Context, req transport.CreateProdutoRequest) (*models.Produto, error) {
	if err := validarProduto(req.Nome, req.Preco); err != nil {
		return nil, err
	}

	produto := &models.Produto{
		Nome:  req.Nome,
		Preco: req.Preco.Round(2),
	}
	if err := s.Repo.CreateProduto(ctx, produto); err != nil {
		return nil, err
	}

	s.publish(ctx, "produto_created", produto)
	return produto, nil
}

func (s *ItemsService) UpdateProduto(ctx context.Context, req transport.CreateProdutoRequest, id uint) (*models.Produto, error) {
	if err := validarProduto(req.Nome, req.Preco); err != nil {
		return nil, err
	}

	produto, err := s.Repo.GetProduto(ctx, id)
	if err != nil {
		return nil, err
	}

	produto.Nome = req.Nome
	produto.Preco = req.Preco.Round(2)
	if err := s.Repo.UpdateProduto(ctx, produto); err != nil {
		return nil, err
	}

	s.publish(ctx, "produto_updated", produto)
	return produto, nil
}

func (s *ItemsService) PatchProduto(ctx context.Context, req transport.PatchProdutoRequest, id uint) (*models.Produto, error) {
	if req.Nome != nil && *req.Nome == "" {
		return nil, fmt.Errorf("nome é obrigatório: %w", ErrValidation)
	}
	if req.Preco != nil && req.Preco.IsNegative() {
		return nil, fmt.Errorf("preco não pode ser negativo: %w", ErrValidation)
	}

	produto, err := s.Repo.PatchProduto(ctx, req, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "produto_updated", produto)
	return produto, nil
}

func (s *ItemsService) DeleteProduto(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduto(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, "produto_deleted", &models.Produto{ID: id})
	return nil
}

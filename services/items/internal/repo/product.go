package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/feirinha/feirinha/services/items/internal/models"
	"github.com/feirinha/feirinha/services/items/internal/transport"
)

func (r *GormRepo) GetProduto(ctx context.Context, id uint) (*models.Produto, error) {
	produto := models.Produto{}
	if err := r.DB.WithContext(ctx).First(&produto, id).Error; err != nil {
		return nil, err
	}
	return &produto, nil
}

func (r *GormRepo) GetProdutos(ctx context.Context) ([]models.Produto, error) {
	var produtos []models.Produto
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&produtos).Error; err != nil {
		return nil, err
	}
	return produtos, nil
}

func (r *GormRepo) CreateProduto(ctx context.Context, produto *models.Produto) error {
	return r.DB.WithContext(ctx).Create(produto).Error
}

func (r *GormRepo) UpdateProduto(ctx context.Context, produto *models.Produto) error {
	return r.DB.WithContext(ctx).Save(produto).Error
}

func (r *GormRepo) PatchProduto(ctx context.Context, req transport.PatchProdutoRequest, id uint) (*models.Produto, error) {
	var produto models.Produto
	if err := r.DB.WithContext(ctx).First(&produto, id).Error; err != nil {
		return nil, err
	}

	if req.Nome != nil {
		produto.Nome = *req.Nome
	}
	if req.Preco != nil {
		produto.Preco = *req.Preco
	}

	if err := r.DB.WithContext(ctx).Save(&produto).Error; err != nil {
		return nil, err
	}

	return &produto, nil
}

func (r *GormRepo) DeleteProduto(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Produto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/feirinha/feirinha/services/basket/internal/models"
)

func (r *GormRepo) GetItem(ctx context.Context, id uint) (*models.BasketItem, error) {
	item := models.BasketItem{}
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) GetItems(ctx context.Context) ([]models.BasketItem, error) {
	var items []models.BasketItem
	if err := r.DB.WithContext(ctx).Order("data_adicionado DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetItemsByBasket(ctx context.Context, basketID uint) ([]models.BasketItem, error) {
	var items []models.BasketItem
	if err := r.DB.WithContext(ctx).
		Where("basket_id = ?", basketID).
		Order("data_adicionado DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CountItemsByBasket(ctx context.Context, basketID uint) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).
		Model(&models.BasketItem{}).
		Where("basket_id = ?", basketID).
		Count(&total).Error
	return total, err
}

func (r *GormRepo) CreateItem(ctx context.Context, item *models.BasketItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) UpdateItem(ctx context.Context, item *models.BasketItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.BasketItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

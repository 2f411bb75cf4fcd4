package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/feirinha/feirinha/services/basket/internal/models"
)

func (r *GormRepo) GetBasket(ctx context.Context, id uint) (*models.Basket, error) {
	basket := models.Basket{}
	if err := r.DB.WithContext(ctx).First(&basket, id).Error; err != nil {
		return nil, err
	}
	return &basket, nil
}

func (r *GormRepo) GetBaskets(ctx context.Context) ([]models.Basket, error) {
	var baskets []models.Basket
	if err := r.DB.WithContext(ctx).Order("data_criacao DESC").Find(&baskets).Error; err != nil {
		return nil, err
	}
	return baskets, nil
}

func (r *GormRepo) GetBasketsByIDs(ctx context.Context, ids []uint) ([]models.Basket, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var baskets []models.Basket
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&baskets).Error; err != nil {
		return nil, err
	}
	return baskets, nil
}

func (r *GormRepo) CreateBasket(ctx context.Context, basket *models.Basket) error {
	return r.DB.WithContext(ctx).Create(basket).Error
}

func (r *GormRepo) UpdateBasket(ctx context.Context, basket *models.Basket) error {
	return r.DB.WithContext(ctx).Save(basket).Error
}

// DeleteBasket removes the basket and its line items in one transaction.
// The explicit item delete keeps the cascade invariant on stores that do
// not enforce the FK constraint.
func (r *GormRepo) DeleteBasket(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var basket models.Basket
		if err := tx.First(&basket, id).Error; err != nil {
			return err
		}
		if err := tx.Where("basket_id = ?", id).Delete(&models.BasketItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&basket).Error
	})
}

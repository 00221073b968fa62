package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-storefront/app/models"
	"gorm.io/gorm"
)

type CouponRepositoryImpl interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepositoryImpl {
	return &couponRepository{db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

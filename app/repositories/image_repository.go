package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-storefront/app/models"
	"gorm.io/gorm"
)

type ProductImageRepositoryImpl interface {
	Create(ctx context.Context, image *models.ProductImage) error
	GetByID(ctx context.Context, id string) (*models.ProductImage, error)
	Save(ctx context.Context, image *models.ProductImage) error
	Featured(ctx context.Context) ([]models.ProductImage, error)
	Slider(ctx context.Context) ([]models.ProductImage, error)
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepositoryImpl {
	return &productImageRepository{db}
}

func (r *productImageRepository) Create(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageRepository) GetByID(ctx context.Context, id string) (*models.ProductImage, error) {
	var image models.ProductImage
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// Save writes every column, so the flag exclusivity hook always applies.
func (r *productImageRepository) Save(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Omit("Product").Save(image).Error
}

func (r *productImageRepository) Featured(ctx context.Context) ([]models.ProductImage, error) {
	return r.flagged(ctx, "is_featured")
}

func (r *productImageRepository) Slider(ctx context.Context) ([]models.ProductImage, error) {
	return r.flagged(ctx, "show_in_slider")
}

func (r *productImageRepository) flagged(ctx context.Context, column string) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where(map[string]interface{}{column: true}).
		Order("created_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

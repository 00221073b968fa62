package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-storefront/app/models"
	"gorm.io/gorm"
)

type VariantRepositoryImpl interface {
	GetSizes(ctx context.Context) ([]models.SizeVariant, error)
	GetColors(ctx context.Context) ([]models.ColorVariant, error)
	GetSizeByID(ctx context.Context, id string) (*models.SizeVariant, error)
	GetSizeByName(ctx context.Context, name string) (*models.SizeVariant, error)
	DeleteSize(ctx context.Context, id string) error
	DeleteColor(ctx context.Context, id string) error
}

type variantRepository struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepositoryImpl {
	return &variantRepository{db}
}

func (r *variantRepository) GetSizes(ctx context.Context) ([]models.SizeVariant, error) {
	var sizes []models.SizeVariant
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

func (r *variantRepository) GetColors(ctx context.Context) ([]models.ColorVariant, error) {
	var colors []models.ColorVariant
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *variantRepository) GetSizeByID(ctx context.Context, id string) (*models.SizeVariant, error) {
	return r.firstSize(ctx, "id = ?", id)
}

func (r *variantRepository) GetSizeByName(ctx context.Context, name string) (*models.SizeVariant, error) {
	return r.firstSize(ctx, "name = ?", name)
}

func (r *variantRepository) firstSize(ctx context.Context, query string, args ...interface{}) (*models.SizeVariant, error) {
	var size models.SizeVariant
	err := r.db.WithContext(ctx).Where(query, args...).First(&size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &size, nil
}

// DeleteSize removes the size from every product and clears it on wishlist
// entries instead of deleting them.
func (r *variantRepository) DeleteSize(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Wishlist{}).Where("size_variant_id = ?", id).Update("size_variant_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM product_size_variants WHERE size_variant_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SizeVariant{}, "id = ?", id).Error
	})
}

func (r *variantRepository) DeleteColor(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_color_variants WHERE color_variant_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ColorVariant{}, "id = ?", id).Error
	})
}

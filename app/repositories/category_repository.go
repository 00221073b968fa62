package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-storefront/app/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *categoryRepository) first(ctx context.Context, query string, args ...interface{}) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where(query, args...).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes the category and every product that belongs to it.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []string
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return fmt.Errorf("failed to list products of category %s: %w", id, err)
		}

		if err := deleteProducts(tx, productIDs); err != nil {
			zap.L().Error("CategoryRepository.Delete: failed to delete products", zap.String("category_id", id), zap.Error(err))
			return fmt.Errorf("failed to delete products of category %s: %w", id, err)
		}

		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}

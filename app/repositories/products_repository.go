package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Rakhulsr/go-storefront/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("record not found")

type ProductRepositoryImpl interface {
	List(ctx context.Context, plan models.ListingPlan) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	PriceBySize(ctx context.Context, product *models.Product, sizeName string) (int, error)
	All(ctx context.Context) ([]models.Product, error)
	SetVariants(ctx context.Context, product *models.Product, colorIDs, sizeIDs []string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) List(ctx context.Context, plan models.ListingPlan) ([]models.Product, error) {
	var products []models.Product

	query := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Category").
		Preload("ProductImages")

	if plan.CategoryName != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where(categoryNameMatch(p.db.Dialector.Name()), plan.CategoryName)
	}
	if plan.NewestOnly {
		query = query.Where("products.newest_product = ?", true)
	}

	if len(plan.OrderBy) > 0 {
		columns := make([]clause.OrderByColumn, 0, len(plan.OrderBy))
		for _, o := range plan.OrderBy {
			columns = append(columns, clause.OrderByColumn{
				Column: clause.Column{Table: "products", Name: o.Column},
				Desc:   o.Desc,
			})
		}
		query = query.Order(clause.OrderBy{Columns: columns})
	}

	if plan.Limit > 0 {
		query = query.Limit(plan.Limit)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Search matches product names case-insensitively by substring or prefix.
// The query is used as given, surrounding spaces included. An empty query
// matches nothing.
func (p *productRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	if query == "" {
		return []models.Product{}, nil
	}

	keyword := escapeLike(strings.ToLower(query))

	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("ProductImages").
		Where("LOWER(products.name) LIKE ? ESCAPE '!' OR LOWER(products.name) LIKE ? ESCAPE '!'", "%"+keyword+"%", keyword+"%").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// categoryNameMatch compares category names byte for byte. MySQL's default
// utf8mb4 collations ignore case, so the comparison is forced to BINARY there.
func categoryNameMatch(dialect string) string {
	if dialect == "mysql" {
		return "BINARY categories.name = ?"
	}
	return "categories.name = ?"
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return p.first(ctx, "slug = ?", slug)
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return p.first(ctx, "id = ?", id)
}

func (p *productRepository) first(ctx context.Context, query string, args ...interface{}) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("ProductImages").
		Preload("ColorVariants").
		Preload("SizeVariants", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Variants").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_added DESC")
		}).
		Preload("Reviews.User").
		Preload("Reviews.Likes").
		Preload("Reviews.Dislikes").
		Where(query, args...).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// All lists every product by name without the listing cap.
func (p *productRepository) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("ProductImages").
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SetVariants replaces the product's colour and size variants with the given ids.
func (p *productRepository) SetVariants(ctx context.Context, product *models.Product, colorIDs, sizeIDs []string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		colors := []models.ColorVariant{}
		if len(colorIDs) > 0 {
			if err := tx.Where("id IN ?", colorIDs).Find(&colors).Error; err != nil {
				return err
			}
		}
		sizes := []models.SizeVariant{}
		if len(sizeIDs) > 0 {
			if err := tx.Where("id IN ?", sizeIDs).Find(&sizes).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(product).Association("ColorVariants").Replace(colors); err != nil {
			return err
		}
		return tx.Model(product).Association("SizeVariants").Replace(sizes)
	})
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

// Delete removes the product together with its variant children, images,
// reviews and wishlist entries.
func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteProducts(tx, []string{id})
	})
}

// PriceBySize resolves sizeName against every SizeVariant, not only the
// ones attached to product.
func (p *productRepository) PriceBySize(ctx context.Context, product *models.Product, sizeName string) (int, error) {
	var size models.SizeVariant
	err := p.db.WithContext(ctx).Where("name = ?", sizeName).First(&size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrSizeNotFound
		}
		return 0, err
	}
	return product.PriceWithSize(size), nil
}

func deleteProducts(tx *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	var children []string
	if err := tx.Model(&models.Product{}).Where("parent_id IN ?", ids).Pluck("id", &children).Error; err != nil {
		return err
	}
	if err := deleteProducts(tx, children); err != nil {
		return err
	}

	var reviewIDs []string
	if err := tx.Model(&models.ProductReview{}).Where("product_id IN ?", ids).Pluck("id", &reviewIDs).Error; err != nil {
		return err
	}
	if len(reviewIDs) > 0 {
		if err := tx.Exec("DELETE FROM review_likes WHERE product_review_id IN ?", reviewIDs).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM review_dislikes WHERE product_review_id IN ?", reviewIDs).Error; err != nil {
			return err
		}
	}

	steps := []func() error{
		func() error { return tx.Where("product_id IN ?", ids).Delete(&models.ProductReview{}).Error },
		func() error { return tx.Where("product_id IN ?", ids).Delete(&models.ProductImage{}).Error },
		func() error { return tx.Where("product_id IN ?", ids).Delete(&models.Wishlist{}).Error },
		func() error { return tx.Exec("DELETE FROM product_color_variants WHERE product_id IN ?", ids).Error },
		func() error { return tx.Exec("DELETE FROM product_size_variants WHERE product_id IN ?", ids).Error },
		func() error { return tx.Where("id IN ?", ids).Delete(&models.Product{}).Error },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

package seeders

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/services"
	"github.com/Rakhulsr/go-storefront/app/utils/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SampleVariant struct {
	Name  string
	Price int
	Order int
}

type SampleProduct struct {
	Name        string
	Price       int
	Description string
	ImageURL    string
}

const (
	ClothingCategory      = "Clothing"
	ClothingCategoryImage = "categories/clothing.jpg"
)

var SampleColors = []SampleVariant{
	{Name: "Red", Price: 0},
	{Name: "Blue", Price: 50},
	{Name: "Black", Price: 100},
}

var SampleSizes = []SampleVariant{
	{Name: "Small", Price: 0, Order: 1},
	{Name: "Medium", Price: 50, Order: 2},
	{Name: "Large", Price: 100, Order: 3},
}

var SampleClothing = []SampleProduct{
	{
		Name:        "crop orange T-Shirt",
		Price:       2000,
		Description: "A comfortable and stylish orange t-shirt perfect for everyday wear.",
		ImageURL:    "https://images.unsplash.com/photo-1625072651838-2a69ff8ed257?w=400&auto=format&fit=crop&q=60",
	},
	{
		Name:        "Yellow Denim Jacket",
		Price:       5000,
		Description: "A classic yellow denim jacket, great for casual outings.",
		ImageURL:    "https://plus.unsplash.com/premium_photo-1681433602478-dc69b2b49153?w=400&auto=format&fit=crop&q=60",
	},
	{
		Name:        "hot Jackets",
		Price:       3500,
		Description: "A warm and cozy jackets for chilly days.",
		ImageURL:    "https://images.unsplash.com/photo-1590033951631-a3b5dc4d368f?w=400&auto=format&fit=crop&q=60",
	},
}

// ClothingSeeder populates a sample clothing catalog. Every row is looked up
// by its natural key first, so running it again inserts nothing.
type ClothingSeeder struct {
	db       *gorm.DB
	fetcher  services.ImageFetcher
	storage  storage.Storage
	Colors   []SampleVariant
	Sizes    []SampleVariant
	Products []SampleProduct
}

func NewClothingSeeder(db *gorm.DB, fetcher services.ImageFetcher, store storage.Storage) *ClothingSeeder {
	return &ClothingSeeder{
		db:       db,
		fetcher:  fetcher,
		storage:  store,
		Colors:   SampleColors,
		Sizes:    SampleSizes,
		Products: SampleClothing,
	}
}

func (s *ClothingSeeder) Name() string {
	return "clothing"
}

func (s *ClothingSeeder) Run(ctx context.Context) (Report, error) {
	var report Report
	db := s.db.WithContext(ctx)

	var category models.Category
	created, err := firstOrCreate(db, &category, func() models.Category {
		return models.Category{Name: ClothingCategory, Image: ClothingCategoryImage}
	}, "name = ?", ClothingCategory)
	if err != nil {
		return report, fmt.Errorf("failed to get or create category: %w", err)
	}
	report.count(created)

	colors := make([]models.ColorVariant, 0, len(s.Colors))
	for _, c := range s.Colors {
		var color models.ColorVariant
		created, err := firstOrCreate(db, &color, func() models.ColorVariant {
			return models.ColorVariant{Name: c.Name, Price: c.Price}
		}, "name = ? AND price = ?", c.Name, c.Price)
		if err != nil {
			return report, fmt.Errorf("failed to get or create color %s: %w", c.Name, err)
		}
		report.count(created)
		colors = append(colors, color)
	}

	sizes := make([]models.SizeVariant, 0, len(s.Sizes))
	for _, sv := range s.Sizes {
		var size models.SizeVariant
		created, err := firstOrCreate(db, &size, func() models.SizeVariant {
			return models.SizeVariant{Name: sv.Name, Price: sv.Price, Order: sv.Order}
		}, "name = ? AND price = ? AND sort_order = ?", sv.Name, sv.Price, sv.Order)
		if err != nil {
			return report, fmt.Errorf("failed to get or create size %s: %w", sv.Name, err)
		}
		report.count(created)
		sizes = append(sizes, size)
	}

	for _, sample := range s.Products {
		var product models.Product
		created, err := firstOrCreate(db, &product, func() models.Product {
			return models.Product{
				Name:          sample.Name,
				CategoryID:    category.ID,
				Price:         sample.Price,
				Description:   sample.Description,
				NewestProduct: true,
			}
		}, "name = ? AND category_id = ?", sample.Name, category.ID)
		if err != nil {
			return report, fmt.Errorf("failed to get or create product %s: %w", sample.Name, err)
		}
		report.count(created)
		if !created {
			continue
		}

		if err := db.Model(&product).Association("ColorVariants").Replace(colors); err != nil {
			return report, fmt.Errorf("failed to set colors of %s: %w", sample.Name, err)
		}
		if err := db.Model(&product).Association("SizeVariants").Replace(sizes); err != nil {
			return report, fmt.Errorf("failed to set sizes of %s: %w", sample.Name, err)
		}

		if err := s.attachImage(ctx, db, &product, sample); err != nil {
			zap.L().Warn("ClothingSeeder: image skipped",
				zap.String("product", sample.Name),
				zap.String("url", sample.ImageURL),
				zap.Error(err))
			report.ImageFailures++
			continue
		}
		report.ImagesSaved++
	}

	return report, nil
}

func (s *ClothingSeeder) attachImage(ctx context.Context, db *gorm.DB, product *models.Product, sample SampleProduct) error {
	data, err := s.fetcher.Fetch(ctx, sample.ImageURL)
	if err != nil {
		return err
	}

	path, err := s.storage.Save(ctx, strings.ReplaceAll(sample.Name, " ", "_")+".png", data)
	if err != nil {
		return err
	}

	image := models.ProductImage{ProductID: product.ID, Image: path}
	return db.Omit("Product").Create(&image).Error
}

func (r *Report) count(created bool) {
	if created {
		r.Created++
	} else {
		r.Existing++
	}
}

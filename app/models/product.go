package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrSizeNotFound is returned when a size name has no SizeVariant row.
var ErrSizeNotFound = errors.New("size variant not found")

type Product struct {
	ID              string         `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ParentID        *string        `gorm:"size:36;index"`
	Variants        []Product      `gorm:"foreignKey:ParentID"`
	Name            string         `gorm:"size:100;not null"`
	Slug            string         `gorm:"size:255;uniqueIndex"`
	CategoryID      string         `gorm:"size:36;not null;index"`
	Category        Category       `gorm:"foreignKey:CategoryID"`
	Price           int            `gorm:"not null"`
	Description     string         `gorm:"type:text"`
	ColorVariants   []ColorVariant `gorm:"many2many:product_color_variants;"`
	SizeVariants    []SizeVariant  `gorm:"many2many:product_size_variants;"`
	NewestProduct   bool
	TrendingProduct bool
	ProductImages   []ProductImage
	Reviews         []ProductReview
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (p *Product) BeforeSave(tx *gorm.DB) (err error) {
	p.Slug = Slugify(p.Name)
	return
}

func (p Product) String() string {
	return p.Name
}

func (p Product) URL() string {
	return "/products/" + p.Slug
}

// PriceWithSize adds the size adjustment to the base price.
func (p Product) PriceWithSize(size SizeVariant) int {
	return p.Price + size.Price
}

// Rating is the mean star value of the loaded reviews, or 0 without any.
func (p Product) Rating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}

	total := decimal.Zero
	for _, review := range p.Reviews {
		total = total.Add(decimal.NewFromInt(int64(review.Stars)))
	}

	return total.Div(decimal.NewFromInt(int64(len(p.Reviews)))).InexactFloat64()
}

func (p Product) FeaturedImage() *ProductImage {
	for i := range p.ProductImages {
		if p.ProductImages[i].IsFeatured {
			return &p.ProductImages[i]
		}
	}
	if len(p.ProductImages) > 0 {
		return &p.ProductImages[0]
	}
	return nil
}

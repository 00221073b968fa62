package migrations

import (
	"github.com/Rakhulsr/go-storefront/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.ColorVariant{},
		&models.SizeVariant{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductReview{},
		&models.Coupon{},
		&models.Wishlist{},
	)
}

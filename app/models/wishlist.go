package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wishlist rows are unique per (user, product, size variant).
type Wishlist struct {
	ID            string       `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID        string       `gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product_size"`
	User          User         `gorm:"foreignKey:UserID"`
	ProductID     string       `gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product_size"`
	Product       Product      `gorm:"foreignKey:ProductID"`
	SizeVariantID *string      `gorm:"size:36;uniqueIndex:idx_wishlist_user_product_size"`
	SizeVariant   *SizeVariant `gorm:"foreignKey:SizeVariantID"`
	AddedOn       time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (w *Wishlist) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.AddedOn.IsZero() {
		w.AddedOn = time.Now()
	}
	return
}

func (w Wishlist) String() string {
	size := "No Size"
	if w.SizeVariant != nil {
		size = w.SizeVariant.Name
	}
	return fmt.Sprintf("%s - %s - %s", w.User.Username, w.Product.Name, size)
}

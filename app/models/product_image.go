package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductImage struct {
	ID           string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID    string   `gorm:"size:36;not null;index"`
	Product      *Product `gorm:"foreignKey:ProductID"`
	Image        string   `gorm:"size:255;not null"`
	IsFeatured   bool     `gorm:"index"`
	ShowInSlider bool     `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}

// BeforeSave keeps the featured and slider flags mutually exclusive.
// Featured wins when both are set.
func (pi *ProductImage) BeforeSave(tx *gorm.DB) (err error) {
	pi.ExclusiveFlags()
	return
}

func (pi *ProductImage) ExclusiveFlags() {
	if pi.IsFeatured {
		pi.ShowInSlider = false
	} else if pi.ShowInSlider {
		pi.IsFeatured = false
	}
}

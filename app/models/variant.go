package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColorVariant struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:100;not null"`
	Price     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (cv *ColorVariant) BeforeCreate(tx *gorm.DB) (err error) {
	if cv.ID == "" {
		cv.ID = uuid.New().String()
	}
	return
}

func (cv ColorVariant) String() string {
	return cv.Name
}

type SizeVariant struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:100;not null;index"`
	Price     int    `gorm:"not null;default:0"`
	Order     int    `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (sv *SizeVariant) BeforeCreate(tx *gorm.DB) (err error) {
	if sv.ID == "" {
		sv.ID = uuid.New().String()
	}
	return
}

func (sv SizeVariant) String() string {
	return sv.Name
}

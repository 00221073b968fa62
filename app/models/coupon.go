package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Coupon struct {
	ID             string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Code           string `gorm:"size:10;not null;index"`
	IsExpired      bool
	DiscountAmount int `gorm:"not null;default:100"`
	MinimumAmount  int `gorm:"not null;default:500"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinStars     = 1
	MaxStars     = 5
	DefaultStars = 3
)

type ProductReview struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string  `gorm:"size:36;not null;index"`
	UserID    string  `gorm:"size:36;not null;index"`
	User      User    `gorm:"foreignKey:UserID"`
	Stars     int     `gorm:"not null;default:3"`
	Content   *string `gorm:"type:text"`
	DateAdded time.Time
	Likes     []User `gorm:"many2many:review_likes;"`
	Dislikes  []User `gorm:"many2many:review_dislikes;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (pr *ProductReview) BeforeCreate(tx *gorm.DB) (err error) {
	if pr.ID == "" {
		pr.ID = uuid.New().String()
	}
	if pr.DateAdded.IsZero() {
		pr.DateAdded = time.Now()
	}
	return
}

func (pr ProductReview) LikeCount() int {
	return len(pr.Likes)
}

func (pr ProductReview) DislikeCount() int {
	return len(pr.Dislikes)
}

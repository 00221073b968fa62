package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Category struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:100;not null"`
	Slug      string `gorm:"size:100;uniqueIndex"`
	Image     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// BeforeSave derives the slug from the current name on every write.
func (c *Category) BeforeSave(tx *gorm.DB) (err error) {
	c.Slug = Slugify(c.Name)
	return
}

func (c Category) String() string {
	return c.Name
}

var slugPunctuation = regexp.MustCompile(`[^\p{L}\p{N}\s_-]+`)

// Slugify lower-cases s and joins its words with hyphens. Punctuation is
// dropped rather than spelled out, so "Tom & Jerry" becomes "tom-jerry"
// and "Men's" becomes "mens".
func Slugify(s string) string {
	return slug.Make(slugPunctuation.ReplaceAllString(s, ""))
}

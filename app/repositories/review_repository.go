package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-storefront/app/models"
	"gorm.io/gorm"
)

type ReviewRepositoryImpl interface {
	Create(ctx context.Context, review *models.ProductReview) error
	GetByID(ctx context.Context, id string) (*models.ProductReview, error)
	ListByProduct(ctx context.Context, productID string) ([]models.ProductReview, error)
	Like(ctx context.Context, reviewID string, user *models.User) error
	Dislike(ctx context.Context, reviewID string, user *models.User) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryImpl {
	return &reviewRepository{db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.ProductReview) error {
	return r.db.WithContext(ctx).Omit("User", "Likes", "Dislikes").Create(review).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*models.ProductReview, error) {
	var review models.ProductReview
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Likes").
		Preload("Dislikes").
		First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Likes").
		Preload("Dislikes").
		Where("product_id = ?", productID).
		Order("date_added DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Like and Dislike are independent sets; a user may appear in both.
func (r *reviewRepository) Like(ctx context.Context, reviewID string, user *models.User) error {
	return r.appendUser(ctx, reviewID, "Likes", user)
}

func (r *reviewRepository) Dislike(ctx context.Context, reviewID string, user *models.User) error {
	return r.appendUser(ctx, reviewID, "Dislikes", user)
}

func (r *reviewRepository) appendUser(ctx context.Context, reviewID, association string, user *models.User) error {
	review := models.ProductReview{ID: reviewID}
	if err := r.db.WithContext(ctx).Select("id").First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return r.db.WithContext(ctx).Model(&review).Association(association).Append(user)
}

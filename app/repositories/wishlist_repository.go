package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// ErrAlreadyWishlisted is returned when the (user, product, size) entry exists.
var ErrAlreadyWishlisted = errors.New("product already in wishlist")

type WishlistRepositoryImpl interface {
	Add(ctx context.Context, userID, productID string, sizeVariantID *string) (*models.Wishlist, error)
	Remove(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.Wishlist, error)
	Exists(ctx context.Context, userID, productID string, sizeVariantID *string) (bool, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepositoryImpl {
	return &wishlistRepository{db}
}

// Add checks for an existing entry before inserting since the unique index
// does not treat two NULL sizes as equal. An insert that loses a race
// against a concurrent add reports ErrAlreadyWishlisted too.
func (r *wishlistRepository) Add(ctx context.Context, userID, productID string, sizeVariantID *string) (*models.Wishlist, error) {
	var item *models.Wishlist

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := wishlistExists(tx, userID, productID, sizeVariantID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyWishlisted
		}

		item = &models.Wishlist{
			UserID:        userID,
			ProductID:     productID,
			SizeVariantID: sizeVariantID,
		}
		return tx.Omit("User", "Product", "SizeVariant").Create(item).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrAlreadyWishlisted
		}
		return nil, err
	}
	return item, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *wishlistRepository) Exists(ctx context.Context, userID, productID string, sizeVariantID *string) (bool, error) {
	return wishlistExists(r.db.WithContext(ctx), userID, productID, sizeVariantID)
}

func wishlistExists(db *gorm.DB, userID, productID string, sizeVariantID *string) (bool, error) {
	query := db.Model(&models.Wishlist{}).Where("user_id = ? AND product_id = ?", userID, productID)
	if sizeVariantID == nil {
		query = query.Where("size_variant_id IS NULL")
	} else {
		query = query.Where("size_variant_id = ?", *sizeVariantID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Wishlist{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID string) ([]models.Wishlist, error) {
	var items []models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Preload("Product.ProductImages").
		Preload("SizeVariant").
		Where("user_id = ?", userID).
		Order("added_on DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

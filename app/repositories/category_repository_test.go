package repositories

import (
	"testing"

	"github.com/Rakhulsr/go-storefront/app/db/testdb"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySlugFollowsName(t *testing.T) {
	db := testdb.New(t)
	repo := NewCategoryRepository(db)

	category := &models.Category{Name: "Summer Clothing"}
	require.NoError(t, repo.Create(ctx, category))
	assert.Equal(t, "summer-clothing", category.Slug)

	category.Name = "Winter Clothing"
	require.NoError(t, repo.Update(ctx, category))

	reloaded, err := repo.GetBySlug(ctx, "winter-clothing")
	require.NoError(t, err)
	assert.Equal(t, category.ID, reloaded.ID)

	_, err = repo.GetBySlug(ctx, "summer-clothing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryGetAllOrdersByName(t *testing.T) {
	db := testdb.New(t)
	repo := NewCategoryRepository(db)

	createCategory(t, db, "Shoes")
	createCategory(t, db, "Accessories")
	createCategory(t, db, "Clothing")

	categories, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Accessories", categories[0].Name)
	assert.Equal(t, "Clothing", categories[1].Name)
	assert.Equal(t, "Shoes", categories[2].Name)
}

func TestCategoryGetByName(t *testing.T) {
	db := testdb.New(t)
	repo := NewCategoryRepository(db)

	created := createCategory(t, db, "Clothing")

	found, err := repo.GetByName(ctx, "Clothing")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByName(ctx, "Hats")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryDeleteRemovesProducts(t *testing.T) {
	db := testdb.New(t)
	repo := NewCategoryRepository(db)

	clothing := createCategory(t, db, "Clothing")
	shoes := createCategory(t, db, "Shoes")
	jeans := createProduct(t, db, clothing, "Blue Jeans", 1000, false)
	createProduct(t, db, shoes, "Running Shoes", 3000, false)
	require.NoError(t, db.Create(&models.ProductImage{ProductID: jeans.ID, Image: "product/jeans.png"}).Error)

	require.NoError(t, repo.Delete(ctx, clothing.ID))

	_, err := repo.GetByID(ctx, clothing.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var remaining []models.Product
	require.NoError(t, db.Find(&remaining).Error)
	assert.Equal(t, []string{"Running Shoes"}, names(remaining))
	assert.Zero(t, countRows(t, db, "product_images"))
}

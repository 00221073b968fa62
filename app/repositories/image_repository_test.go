package repositories

import (
	"testing"

	"github.com/Rakhulsr/go-storefront/app/db/testdb"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFlagsStayExclusive(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductImageRepository(db)

	clothing := createCategory(t, db, "Clothing")
	product := createProduct(t, db, clothing, "Blue Jeans", 1000, false)

	image := &models.ProductImage{ProductID: product.ID, Image: "product/jeans.png", IsFeatured: true, ShowInSlider: true}
	require.NoError(t, repo.Create(ctx, image))
	assert.True(t, image.IsFeatured)
	assert.False(t, image.ShowInSlider)

	image.IsFeatured = false
	image.ShowInSlider = true
	require.NoError(t, repo.Save(ctx, image))

	reloaded, err := repo.GetByID(ctx, image.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsFeatured)
	assert.True(t, reloaded.ShowInSlider)

	reloaded.IsFeatured = true
	require.NoError(t, repo.Save(ctx, reloaded))

	reloaded, err = repo.GetByID(ctx, image.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsFeatured)
	assert.False(t, reloaded.ShowInSlider)
}

func TestFeaturedAndSliderImages(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductImageRepository(db)

	clothing := createCategory(t, db, "Clothing")
	product := createProduct(t, db, clothing, "Blue Jeans", 1000, false)

	require.NoError(t, repo.Create(ctx, &models.ProductImage{ProductID: product.ID, Image: "product/a.png", IsFeatured: true}))
	require.NoError(t, repo.Create(ctx, &models.ProductImage{ProductID: product.ID, Image: "product/b.png", ShowInSlider: true}))
	require.NoError(t, repo.Create(ctx, &models.ProductImage{ProductID: product.ID, Image: "product/c.png"}))

	featured, err := repo.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "product/a.png", featured[0].Image)
	require.NotNil(t, featured[0].Product)
	assert.Equal(t, "Blue Jeans", featured[0].Product.Name)

	slider, err := repo.Slider(ctx)
	require.NoError(t, err)
	require.Len(t, slider, 1)
	assert.Equal(t, "product/b.png", slider[0].Image)
}

package repositories

import (
	"fmt"
	"testing"

	"github.com/Rakhulsr/go-storefront/app/db/testdb"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUnknownCategoryIsEmpty(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	createProduct(t, db, clothing, "Casual T-Shirt", 500, true)

	products, err := repo.List(ctx, models.BuildListingPlan(models.ListingOptions{Category: "Shoes"}))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListFiltersByCategoryName(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	shoes := createCategory(t, db, "Shoes")
	createProduct(t, db, clothing, "Blue Jeans", 1200, false)
	createProduct(t, db, shoes, "Running Shoes", 3000, false)

	products, err := repo.List(ctx, models.BuildListingPlan(models.ListingOptions{Category: "Shoes"}))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Running Shoes", products[0].Name)
	assert.Equal(t, "Shoes", products[0].Category.Name)
}

func TestListCategoryIsCaseSensitive(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	createProduct(t, db, clothing, "Blue Jeans", 1200, false)

	for _, name := range []string{"clothing", "CLOTHING", "Clothing "} {
		products, err := repo.List(ctx, models.BuildListingPlan(models.ListingOptions{Category: name}))
		require.NoError(t, err)
		assert.Empty(t, products, name)
	}

	products, err := repo.List(ctx, models.BuildListingPlan(models.ListingOptions{Category: "Clothing"}))
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCategoryNameMatch(t *testing.T) {
	assert.Equal(t, "BINARY categories.name = ?", categoryNameMatch("mysql"))
	assert.Equal(t, "categories.name = ?", categoryNameMatch("sqlite"))
}

func TestListPriceSortsAreReversed(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	for i, price := range []int{500, 100, 300, 200, 400} {
		createProduct(t, db, clothing, fmt.Sprintf("Item %d", i), price, false)
	}

	asc, err := repo.List(ctx, models.BuildListingPlan(models.ListingOptions{Sort: models.SortPriceAsc}))
	require.NoError(t, err)
	desc, err := repo.List(ctx, models.BuildListingPlan(models.ListingOptions{Sort: models.SortPriceDesc}))
	require.NoError(t, err)

	assert.Equal(t, []int{100, 200, 300, 400, 500}, prices(asc))
	assert.Equal(t, []int{500, 400, 300, 200, 100}, prices(desc))
}

func TestListIsCapped(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	for i := 1; i <= 15; i++ {
		createProduct(t, db, clothing, fmt.Sprintf("Item %02d", i), i*100, false)
	}

	products, err := repo.List(ctx, models.BuildListingPlan(models.ListingOptions{Sort: models.SortPriceAsc}))
	require.NoError(t, err)
	require.Len(t, products, models.ListingCap)
	assert.Equal(t, 100, products[0].Price)
	assert.Equal(t, 1000, products[len(products)-1].Price)

	products, err = repo.List(ctx, models.BuildListingPlan(models.ListingOptions{}))
	require.NoError(t, err)
	assert.Len(t, products, models.ListingCap)
}

func TestListNewestOnly(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	createProduct(t, db, clothing, "Old Coat", 900, false)
	createProduct(t, db, clothing, "New Dress", 800, true)
	createProduct(t, db, clothing, "New Jeans", 700, true)

	products, err := repo.List(ctx, models.BuildListingPlan(models.ListingOptions{Sort: models.SortNewest}))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"New Dress", "New Jeans"}, names(products))
	for _, p := range products {
		assert.True(t, p.NewestProduct)
	}
}

func TestSearch(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	createProduct(t, db, clothing, "Blue Jeans", 1200, false)
	createProduct(t, db, clothing, "Casual T-Shirt", 500, false)
	createProduct(t, db, clothing, "50% Off Tee", 300, false)
	createProduct(t, db, clothing, "500 Tee", 350, false)
	createProduct(t, db, clothing, "a_b Scarf", 150, false)
	createProduct(t, db, clothing, "axb Scarf", 150, false)
	createProduct(t, db, clothing, "hot Jackets", 3500, false)
	createProduct(t, db, clothing, "Yellow Denim Jacket", 5000, false)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query", "", nil},
		{"single space", " ", []string{"Blue Jeans", "Casual T-Shirt", "50% Off Tee", "500 Tee", "a_b Scarf", "axb Scarf", "hot Jackets", "Yellow Denim Jacket"}},
		{"jacket", "jacket", []string{"hot Jackets", "Yellow Denim Jacket"}},
		{"jacket with trailing space", "jacket ", nil},
		{"denim with leading spaces", "  denim", nil},
		{"trailing space is kept", "jeans ", nil},
		{"leading space is kept", " jeans", []string{"Blue Jeans"}},
		{"surrounding spaces are kept", "  jeans", nil},
		{"substring", "jeans", []string{"Blue Jeans"}},
		{"case insensitive", "CASUAL", []string{"Casual T-Shirt"}},
		{"prefix", "blue", []string{"Blue Jeans"}},
		{"percent is literal", "50%", []string{"50% Off Tee"}},
		{"underscore is literal", "a_b", []string{"a_b Scarf"}},
		{"shared substring", "tee", []string{"50% Off Tee", "500 Tee"}},
		{"no match", "hat", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, products)
				return
			}
			assert.ElementsMatch(t, tt.want, names(products))
		})
	}
}

func TestGetBySlug(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	created := createProduct(t, db, clothing, "Summer Dress", 1500, true)
	assert.Equal(t, "summer-dress", created.Slug)

	product, err := repo.GetBySlug(ctx, "summer-dress")
	require.NoError(t, err)
	assert.Equal(t, created.ID, product.ID)
	assert.Equal(t, "Clothing", product.Category.Name)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRecomputesSlug(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	product := createProduct(t, db, clothing, "Summer Dress", 1500, true)

	product.Name = "Winter Dress"
	require.NoError(t, repo.Update(ctx, product))
	assert.Equal(t, "winter-dress", product.Slug)

	_, err := repo.GetBySlug(ctx, "summer-dress")
	assert.ErrorIs(t, err, ErrNotFound)

	reloaded, err := repo.GetBySlug(ctx, "winter-dress")
	require.NoError(t, err)
	assert.Equal(t, product.ID, reloaded.ID)
}

func TestPriceBySize(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	product := createProduct(t, db, clothing, "Blue Jeans", 1000, false)
	createSize(t, db, "Small", 0, 1)
	createSize(t, db, "Large", 100, 3)

	price, err := repo.PriceBySize(ctx, product, "Large")
	require.NoError(t, err)
	assert.Equal(t, 1100, price)

	price, err = repo.PriceBySize(ctx, product, "Small")
	require.NoError(t, err)
	assert.Equal(t, 1000, price)

	_, err = repo.PriceBySize(ctx, product, "XXL")
	assert.ErrorIs(t, err, models.ErrSizeNotFound)
}

func TestDeleteProductCascades(t *testing.T) {
	db := testdb.New(t)
	repo := NewProductRepository(db)

	clothing := createCategory(t, db, "Clothing")
	parent := createProduct(t, db, clothing, "Blue Jeans", 1000, false)
	child := &models.Product{Name: "Blue Jeans Slim", CategoryID: clothing.ID, Price: 1100, ParentID: &parent.ID}
	require.NoError(t, db.Create(child).Error)

	user := createUser(t, db, "asha")
	size := createSize(t, db, "Medium", 50, 2)
	color := &models.ColorVariant{Name: "Blue", Price: 50}
	require.NoError(t, db.Create(color).Error)
	require.NoError(t, db.Model(parent).Association("SizeVariants").Append(size))
	require.NoError(t, db.Model(parent).Association("ColorVariants").Append(color))

	require.NoError(t, db.Create(&models.ProductImage{ProductID: parent.ID, Image: "product/a.png"}).Error)
	require.NoError(t, db.Create(&models.ProductImage{ProductID: child.ID, Image: "product/b.png"}).Error)

	reviews := NewReviewRepository(db)
	review := &models.ProductReview{ProductID: parent.ID, UserID: user.ID, Stars: 4}
	require.NoError(t, reviews.Create(ctx, review))
	require.NoError(t, reviews.Like(ctx, review.ID, user))

	_, err := NewWishlistRepository(db).Add(ctx, user.ID, parent.ID, &size.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, parent.ID))

	assert.Zero(t, countRows(t, db, "products"))
	assert.Zero(t, countRows(t, db, "product_images"))
	assert.Zero(t, countRows(t, db, "product_reviews"))
	assert.Zero(t, countRows(t, db, "review_likes"))
	assert.Zero(t, countRows(t, db, "wishlists"))
	assert.Zero(t, countRows(t, db, "product_size_variants"))
	assert.Zero(t, countRows(t, db, "product_color_variants"))

	assert.EqualValues(t, 1, countRows(t, db, "size_variants"))
	assert.EqualValues(t, 1, countRows(t, db, "color_variants"))
	assert.EqualValues(t, 1, countRows(t, db, "users"))
	assert.EqualValues(t, 1, countRows(t, db, "categories"))
}

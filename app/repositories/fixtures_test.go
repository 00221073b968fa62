package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ctx = context.Background()

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func createProduct(t *testing.T, db *gorm.DB, category *models.Category, name string, price int, newest bool) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:          name,
		CategoryID:    category.ID,
		Price:         price,
		Description:   fmt.Sprintf("%s description", name),
		NewestProduct: newest,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", Password: "secret"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createSize(t *testing.T, db *gorm.DB, name string, price, order int) *models.SizeVariant {
	t.Helper()
	s := &models.SizeVariant{Name: name, Price: price, Order: order}
	require.NoError(t, db.Create(s).Error)
	return s
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func prices(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.Price
	}
	return out
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

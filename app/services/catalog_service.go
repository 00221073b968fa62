package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/Rakhulsr/go-storefront/app/utils/paginate"
	"go.uber.org/zap"
)

type ListingResult struct {
	Page           paginate.Page[models.Product]
	Categories     []models.Category
	SliderImages   []models.ProductImage
	FeaturedImages []models.ProductImage
}

type CatalogService interface {
	Listing(ctx context.Context, opts models.ListingOptions, page string) (*ListingResult, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
}

type catalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	imageRepo    repositories.ProductImageRepositoryImpl
}

func NewCatalogService(p repositories.ProductRepositoryImpl, c repositories.CategoryRepositoryImpl, i repositories.ProductImageRepositoryImpl) CatalogService {
	return &catalogService{
		productRepo:  p,
		categoryRepo: c,
		imageRepo:    i,
	}
}

// Listing filters, sorts and caps the products, then slices out the
// requested page. Bad page input never fails; it falls back per paginate.Paginate.
func (s *catalogService) Listing(ctx context.Context, opts models.ListingOptions, page string) (*ListingResult, error) {
	plan := models.BuildListingPlan(opts)

	products, err := s.productRepo.List(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	slider, err := s.imageRepo.Slider(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slider images: %w", err)
	}

	featured, err := s.imageRepo.Featured(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured images: %w", err)
	}

	result := &ListingResult{
		Page:           paginate.Paginate(products, page, models.ListingPageSize),
		Categories:     categories,
		SliderImages:   slider,
		FeaturedImages: featured,
	}

	if result.Page.Resolution.IsFallback() {
		zap.L().Debug("CatalogService.Listing: page fell back",
			zap.String("requested", page),
			zap.Stringer("resolution", result.Page.Resolution),
			zap.Int("page", result.Page.Number))
	}

	return result, nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	if query == "" {
		return []models.Product{}, nil
	}

	products, err := s.productRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

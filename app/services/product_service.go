package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/hyrahs/shopstore-api/app/models"
	"github.com/hyrahs/shopstore-api/app/repositories"
	"github.com/hyrahs/shopstore-api/pkg/cache"
	"github.com/hyrahs/shopstore-api/pkg/storage"
)

// ProductStore is the slice of the product repository the catalog needs.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	UpdatePrice(ctx context.Context, id string, price float64) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

const (
	productListCacheKey = "products:all"
	productListCacheTTL = 5 * time.Minute
)

// ProductService manages the catalogue: CRUD plus image files on the
// storage disk and a read-through cache for the public listing.
type ProductService struct {
	products ProductStore
	disk     storage.Disk
}

func NewProductService(products ProductStore, disk storage.Disk) *ProductService {
	return &ProductService{products: products, disk: disk}
}

// Add stores the uploaded image on the disk and persists the product.
// The stored filename is timestamp-prefixed so re-uploads of the same
// filename never collide.
func (s *ProductService) Add(ctx context.Context, name, description string, price float64, imageName string, image io.Reader) (models.Product, error) {
	errs := map[string]string{}
	if strings.TrimSpace(name) == "" {
		errs["name"] = "The name field is required."
	}
	if strings.TrimSpace(description) == "" {
		errs["description"] = "The description field is required."
	}
	if price <= 0 {
		errs["price"] = "The price must be greater than 0."
	}
	if image == nil || strings.TrimSpace(imageName) == "" {
		errs["image"] = "An image upload is required."
	}
	if len(errs) > 0 {
		return models.Product{}, NewValidationError(errs)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(imageName))
	if err := s.disk.PutStream(filename, image); err != nil {
		return models.Product{}, fmt.Errorf("add product: store image: %w", err)
	}

	product := models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    s.disk.URL(filename),
	}

	if err := s.products.Create(ctx, &product); err != nil {
		// Insert failed; the orphaned image is harmless but tidy up anyway.
		_ = s.disk.Delete(filename)
		return models.Product{}, fmt.Errorf("add product: %w", err)
	}

	cache.Del(productListCacheKey)
	return product, nil
}

// List returns the catalogue, served from cache when warm.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if cache.Get(productListCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	_ = cache.Set(productListCacheKey, products, productListCacheTTL)
	return products, nil
}

// Get returns a single product.
func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// UpdatePrice changes a product's price.
func (s *ProductService) UpdatePrice(ctx context.Context, id string, price float64) (models.Product, error) {
	if price <= 0 {
		return models.Product{}, NewValidationError(map[string]string{
			"price": "The price must be a valid number greater than 0.",
		})
	}

	product, err := s.products.UpdatePrice(ctx, id, price)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("update product price: %w", err)
	}

	cache.Del(productListCacheKey)
	return product, nil
}

// Delete removes a product and its stored image.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}

	// Image cleanup is best-effort: the product record is already gone.
	if name := filepath.Base(product.ImageURL); name != "" && name != "." {
		_ = s.disk.Delete(name)
	}

	cache.Del(productListCacheKey)
	return nil
}

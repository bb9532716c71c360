package services_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hyrahs/shopstore-api/app/models"
	"github.com/hyrahs/shopstore-api/app/repositories"
	"github.com/hyrahs/shopstore-api/app/services"
)

// fakeProductStore is an in-memory ProductStore.
type fakeProductStore struct {
	products []models.Product
}

func (s *fakeProductStore) Create(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	s.products = append(s.products, *p)
	return nil
}

func (s *fakeProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), s.products...), nil
}

func (s *fakeProductStore) FindByID(_ context.Context, id string) (models.Product, error) {
	for _, p := range s.products {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

func (s *fakeProductStore) UpdatePrice(_ context.Context, id string, price float64) (models.Product, error) {
	for i, p := range s.products {
		if p.ID.Hex() == id {
			s.products[i].Price = price
			return s.products[i], nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

func (s *fakeProductStore) Delete(_ context.Context, id string) error {
	for i, p := range s.products {
		if p.ID.Hex() == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// fakeDisk records writes and deletes in memory.
type fakeDisk struct {
	files map[string][]byte
}

func newFakeDisk() *fakeDisk { return &fakeDisk{files: map[string][]byte{}} }

func (d *fakeDisk) Put(path string, content []byte) error {
	d.files[path] = content
	return nil
}

func (d *fakeDisk) PutStream(path string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.files[path] = data
	return nil
}

func (d *fakeDisk) GetStream(path string) (io.ReadCloser, error) {
	data, ok := d.files[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (d *fakeDisk) Exists(path string) bool {
	_, ok := d.files[path]
	return ok
}

func (d *fakeDisk) Delete(path string) error {
	delete(d.files, path)
	return nil
}

func (d *fakeDisk) URL(path string) string { return "/assets/" + path }

func TestAddProductStoresImage(t *testing.T) {
	store := &fakeProductStore{}
	disk := newFakeDisk()
	svc := services.NewProductService(store, disk)

	product, err := svc.Add(context.Background(), "Silk Dress", "A silk dress", 59.99,
		"dress.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.False(t, product.ID.IsZero())
	require.Len(t, disk.files, 1)
	assert.True(t, strings.HasPrefix(product.ImageURL, "/assets/"))
	assert.True(t, strings.HasSuffix(product.ImageURL, "-dress.jpg"),
		"stored name should be timestamp-prefixed: %s", product.ImageURL)
}

func TestAddProductValidation(t *testing.T) {
	svc := services.NewProductService(&fakeProductStore{}, newFakeDisk())

	_, err := svc.Add(context.Background(), "", "", 0, "", nil)
	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "description")
	assert.Contains(t, vErr.Fields, "price")
	assert.Contains(t, vErr.Fields, "image")
}

func TestUpdatePrice(t *testing.T) {
	store := &fakeProductStore{}
	svc := services.NewProductService(store, newFakeDisk())

	product, err := svc.Add(context.Background(), "Silk Dress", "A silk dress", 59.99,
		"dress.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	updated, err := svc.UpdatePrice(context.Background(), product.ID.Hex(), 49.99)
	require.NoError(t, err)
	assert.Equal(t, 49.99, updated.Price)

	_, err = svc.UpdatePrice(context.Background(), product.ID.Hex(), -1)
	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.UpdatePrice(context.Background(), primitive.NewObjectID().Hex(), 10)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestDeleteProductRemovesImage(t *testing.T) {
	store := &fakeProductStore{}
	disk := newFakeDisk()
	svc := services.NewProductService(store, disk)

	product, err := svc.Add(context.Background(), "Silk Dress", "A silk dress", 59.99,
		"dress.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	require.Len(t, disk.files, 1)

	require.NoError(t, svc.Delete(context.Background(), product.ID.Hex()))
	assert.Empty(t, store.products)
	assert.Empty(t, disk.files, "stored image should be cleaned up")

	err = svc.Delete(context.Background(), product.ID.Hex())
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestGetProduct(t *testing.T) {
	store := &fakeProductStore{}
	svc := services.NewProductService(store, newFakeDisk())

	product, err := svc.Add(context.Background(), "Silk Dress", "A silk dress", 59.99,
		"dress.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Silk Dress", got.Name)

	_, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

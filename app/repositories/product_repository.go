package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hyrahs/shopstore-api/app/models"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// Create persists a new catalogue entry.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("products: insert: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

// FindAll returns the full catalogue.
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

// FindByID returns a single product.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.Product{}, ErrNotFound
	}

	var product models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("products: find by id: %w", err)
	}
	return product, nil
}

// UpdatePrice sets a product's price and returns the updated document.
func (r *ProductRepository) UpdatePrice(ctx context.Context, id string, price float64) (models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.Product{}, ErrNotFound
	}

	update := bson.M{"$set": bson.M{"price": price}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("products: update price: %w", err)
	}
	return product, nil
}

// Delete removes a product. Returns ErrNotFound when no document matched.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("products: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

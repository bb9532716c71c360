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

// OrderRepository handles database operations for Order.
// All listings are sorted newest-first on createdAt.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection("orders")}
}

// Create persists a new order and returns it with the generated id.
// Line-item ids are assigned by the service before the order reaches here.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = models.StatusPackaging
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("orders: insert: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

// FindByID returns a single order.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.Order{}, ErrNotFound
	}

	var order models.Order
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: find by id: %w", err)
	}
	return order, nil
}

// FindByUserID returns the account's orders, newest first.
func (r *OrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.list(ctx, bson.M{"userId": oid})
}

// FindByPhone returns orders whose embedded customer snapshot carries the
// given phone number, newest first.
func (r *OrderRepository) FindByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	return r.list(ctx, bson.M{"user.phone": phone})
}

// ListAll returns every order, newest first.
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *OrderRepository) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("orders: find: %w", err)
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("orders: decode: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets the order's status and updatedAt timestamp, returning
// the updated document. Only the status is mutable after creation.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.Order{}, ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: update status: %w", err)
	}
	return order, nil
}

// Delete removes an order. Returns ErrNotFound when no document matched.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("orders: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

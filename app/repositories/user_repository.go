// Package repositories contains the MongoDB persistence layer.
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

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("repositories: not found")

// ErrDuplicateKey is returned when an insert violates a unique index.
var ErrDuplicateKey = errors.New("repositories: duplicate key")

// UserRepository handles database operations for User.
// Email uniqueness is enforced by the collection's unique index (see
// database.EnsureIndexes), so concurrent signups with the same address
// race safely: exactly one insert wins.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Create persists a new user record. The email is normalized before storage
// and the creation timestamp is set here. Returns ErrDuplicateKey when the
// email is already taken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = models.NormalizeEmail(user.Email)
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("users: insert: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByEmail looks up a user by their normalized email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": models.NormalizeEmail(email)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: find by email: %w", err)
	}
	return user, nil
}

// FindByID looks up a user by id, excluding the password digest.
func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var user models.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: find by id: %w", err)
	}
	return user, nil
}

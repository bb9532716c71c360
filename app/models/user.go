package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles recognised by the token service and the admin middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a stored account. The password field holds a bcrypt digest and is
// never serialised to JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Applied at the boundary before both storage and lookup so uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Public returns a copy safe for API responses: the password digest is
// stripped even from bson round-trips.
func (u User) Public() User {
	u.Password = ""
	return u
}

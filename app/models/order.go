package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses form a fixed closed set. Transitions between members are
// unrestricted; see services.OrderService for the validation boundary.
const (
	StatusPackaging = "Packaging"
	StatusInTransit = "InTransit"
	StatusDelivered = "Delivered"
)

// ParseStatus validates a status value against the closed set and returns
// the canonical spelling. "In Transit" is accepted as an alias for
// "InTransit" so listings stay consistent.
func ParseStatus(s string) (string, bool) {
	switch s {
	case StatusPackaging, StatusInTransit, StatusDelivered:
		return s, true
	case "In Transit":
		return StatusInTransit, true
	}
	return "", false
}

// Customer is the denormalized contact/delivery snapshot embedded in every
// order. Orders stay valid even if the originating account changes or is
// deleted.
type Customer struct {
	Name    string  `bson:"name" json:"name"`
	Phone   string  `bson:"phone" json:"phone"`
	Address string  `bson:"address" json:"address"`
	Lat     float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng     float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// LineItem is one product entry captured at checkout time.
type LineItem struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Image    string  `bson:"image" json:"image"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Order is a snapshot-oriented record: customer data, line items, and total
// are immutable after creation; only the status changes.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Customer    Customer           `bson:"user" json:"user"`
	Products    []LineItem         `bson:"products" json:"products"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

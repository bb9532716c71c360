package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hyrahs/shopstore-api/app/models"
	"github.com/hyrahs/shopstore-api/app/repositories"
)

// OrderStore is the slice of the order repository the lifecycle manager needs.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (models.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	FindByPhone(ctx context.Context, phone string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (models.Order, error)
	Delete(ctx context.Context, id string) error
}

// PlaceOrderInput is the checkout payload after JSON decoding.
// UserID is optional: guest checkouts store only the customer snapshot.
type PlaceOrderInput struct {
	UserID      string            `json:"userId"`
	Customer    models.Customer   `json:"user"`
	Products    []models.LineItem `json:"products"`
	TotalAmount float64           `json:"totalAmount"`
	Status      string            `json:"status"`
}

// OrderService enforces order creation validation and the closed status set.
// It deliberately does NOT enforce forward-only status ordering: any member
// of the set may follow any other, matching current product behaviour.
type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// Place validates and persists a new order. Rejected orders never reach the
// store. The returned order carries the generated id and line-item ids.
func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (models.Order, error) {
	if errs := validatePlacement(in); len(errs) > 0 {
		return models.Order{}, NewValidationError(errs)
	}

	status := models.StatusPackaging
	if in.Status != "" {
		normalized, ok := models.ParseStatus(in.Status)
		if !ok {
			return models.Order{}, NewValidationError(map[string]string{
				"status": fmt.Sprintf("Status must be one of Packaging, InTransit, Delivered; got %q.", in.Status),
			})
		}
		status = normalized
	}

	order := models.Order{
		Customer:    in.Customer,
		Products:    in.Products,
		TotalAmount: in.TotalAmount,
		Status:      status,
	}

	// Line items missing an id get one here; caller-supplied ids are kept so
	// retried checkouts stay idempotent.
	for i := range order.Products {
		if order.Products[i].ID == "" {
			order.Products[i].ID = primitive.NewObjectID().Hex()
		}
	}

	if in.UserID != "" {
		oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.UserID))
		if err != nil {
			return models.Order{}, NewValidationError(map[string]string{
				"userId": "The userId field must be a valid id.",
			})
		}
		order.UserID = oid
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return models.Order{}, fmt.Errorf("place order: %w", err)
	}
	return order, nil
}

func validatePlacement(in PlaceOrderInput) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(in.Customer.Name) == "" {
		errs["user.name"] = "The customer name is required."
	}
	if strings.TrimSpace(in.Customer.Phone) == "" {
		errs["user.phone"] = "The customer phone is required."
	}
	if strings.TrimSpace(in.Customer.Address) == "" {
		errs["user.address"] = "The customer address is required."
	}
	if len(in.Products) == 0 {
		errs["products"] = "At least one product is required."
	}
	for i, p := range in.Products {
		if strings.TrimSpace(p.Name) == "" {
			errs[fmt.Sprintf("products.%d.name", i)] = "The product name is required."
		}
		if p.Quantity <= 0 {
			errs[fmt.Sprintf("products.%d.quantity", i)] = "The quantity must be at least 1."
		}
	}
	if in.TotalAmount <= 0 {
		errs["totalAmount"] = "The total amount must be greater than 0."
	}

	return errs
}

// Get returns a single order.
func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// ListAll returns every order, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ByPhone returns orders for a customer phone number, newest first.
func (s *OrderService) ByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	orders, err := s.orders.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("orders by phone: %w", err)
	}
	return orders, nil
}

// ByUser returns orders referencing the given account, newest first.
func (s *OrderService) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("orders by user: %w", err)
	}
	return orders, nil
}

// UpdateStatus validates the new status against the closed set before
// touching storage, then persists it.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	normalized, ok := models.ParseStatus(status)
	if !ok {
		return models.Order{}, NewValidationError(map[string]string{
			"status": fmt.Sprintf("Status must be one of Packaging, InTransit, Delivered; got %q.", status),
		})
	}

	order, err := s.orders.UpdateStatus(ctx, id, normalized)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("update order status: %w", err)
	}
	return order, nil
}

// Delete removes an order by explicit administrative action.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	err := s.orders.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

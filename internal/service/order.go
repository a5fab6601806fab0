package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fortes-labs/storefront/internal/models"
	"github.com/fortes-labs/storefront/internal/repo"
	"github.com/fortes-labs/storefront/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// Create checks out the owner's cart. Empty-cart and stock failures come
// back as the repo's typed errors with the transaction rolled back, so a
// failed checkout leaves both cart and stock untouched.
func (s *OrderService) Create(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.Owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrValidation)
	}

	return s.Repo.CreateOrder(ctx, req.Owner, req.ShippingAddress, req.PaymentMethod)
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return order, err
}

func (s *OrderService) ListByOwner(ctx context.Context, owner string, limit, offset int) ([]models.Order, error) {
	orders, err := s.Repo.ListOrders(ctx, owner, limit, offset)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// UpdateStatus accepts any of the five named states without enforcing a
// transition graph.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := s.Repo.UpdateOrderStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return order, err
}

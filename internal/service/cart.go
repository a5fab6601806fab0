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

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) Get(ctx context.Context, owner string) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx, owner)
}

// Add resolves the product, snapshots its price and name, and merges the
// line into the owner's cart. Stock is not enforced here; checkout re-checks
// live stock because quantities may still change.
func (s *CartService) Add(ctx context.Context, owner string, productID uint, quantity int) (*transport.CartSummary, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}

	prod, err := s.Repo.GetProduct(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		Owner:       owner,
		ProductID:   prod.ID,
		Quantity:    quantity,
		UnitPrice:   prod.Price,
		ProductName: prod.Name,
	}
	if err := s.Repo.AddToCart(ctx, &item); err != nil {
		return nil, err
	}

	return s.Summary(ctx, owner)
}

func (s *CartService) SetQuantity(ctx context.Context, owner string, itemID uuid.UUID, quantity int) (*transport.CartSummary, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}

	if _, err := s.Repo.SetQuantity(ctx, owner, itemID, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
		}
		return nil, err
	}

	return s.Summary(ctx, owner)
}

func (s *CartService) Remove(ctx context.Context, owner string, itemID uuid.UUID) (*transport.RemovedCartItem, error) {
	item, err := s.Repo.RemoveFromCart(ctx, owner, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
		}
		return nil, err
	}

	summary, err := s.Summary(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &transport.RemovedCartItem{Removed: *item, Summary: *summary}, nil
}

func (s *CartService) Clear(ctx context.Context, owner string) error {
	return s.Repo.ClearCart(ctx, owner)
}

func (s *CartService) Summary(ctx context.Context, owner string) (*transport.CartSummary, error) {
	items, err := s.Repo.GetCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	summary := transport.CartSummary{Items: items}
	if summary.Items == nil {
		summary.Items = []models.CartItem{}
	}
	for _, it := range items {
		summary.TotalItems += it.Quantity
		summary.TotalAmount += it.UnitPrice * float64(it.Quantity)
	}
	return &summary, nil
}

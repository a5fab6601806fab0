package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fortes-labs/storefront/internal/models"
)

// CreateOrder snapshots the owner's cart into an immutable order inside a
// single transaction: the whole cart is validated against live stock before
// any decrement, stock updates are guarded so they cannot go negative, and
// the cart is cleared only once the order row exists. Concurrent checkouts
// for the same owner serialize on the row locks.
func (r *GormRepo) CreateOrder(ctx context.Context, owner string, addr models.ShippingAddress, payment string) (*models.Order, error) {
	var order models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner = ?", owner).
			Order("created_at ASC, id ASC").
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		for _, it := range items {
			var prod models.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&prod, it.ProductID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ProductGoneError{ProductID: it.ProductID, Name: it.ProductName}
			}
			if err != nil {
				return err
			}
			if prod.Stock < it.Quantity {
				return &StockError{
					ProductID: prod.ID,
					Name:      prod.Name,
					Requested: it.Quantity,
					Available: prod.Stock,
				}
			}
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			ok, err := decrementStock(tx, it.ProductID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &StockError{
					ProductID: it.ProductID,
					Name:      it.ProductName,
					Requested: it.Quantity,
				}
			}

			line := it.UnitPrice * float64(it.Quantity)
			total += line
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				UnitPrice:   it.UnitPrice,
				Quantity:    it.Quantity,
				LineTotal:   line,
			})
		}

		order = models.Order{
			Owner:           owner,
			Status:          models.OrderStatusPending,
			TotalAmount:     total,
			PaymentMethod:   payment,
			ShippingAddress: addr,
			Items:           orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("owner = ?", owner).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").
		Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, owner string, limit, offset int) ([]models.Order, error) {
	if limit <= 0 {
		limit = -1
	}

	var orders []models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").
		Where("owner = ?", owner).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
			return err
		}
		order.Status = status
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

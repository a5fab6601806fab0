package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fortes-labs/storefront/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context, owner string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart merges by product: the insert upserts on the (owner, product)
// unique index so an existing line gets its quantity incremented instead.
// Concurrent first-time adds for the same product both land on the one line.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
	}).Create(item).Error
	if err != nil {
		return err
	}

	return r.DB.WithContext(ctx).
		Where("owner = ? AND product_id = ?", item.Owner, item.ProductID).
		First(item).Error
}

func (r *GormRepo) SetQuantity(ctx context.Context, owner string, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND owner = ?", itemID, owner).
			First(&item).Error; err != nil {
			return err
		}
		item.Quantity = quantity
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) RemoveFromCart(ctx context.Context, owner string, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner = ?", itemID, owner).
			First(&item).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ClearCart is idempotent; clearing an absent cart is not an error.
func (r *GormRepo) ClearCart(ctx context.Context, owner string) error {
	return r.DB.WithContext(ctx).Where("owner = ?", owner).Delete(&models.CartItem{}).Error
}

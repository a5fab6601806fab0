package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/fortes-labs/storefront/internal/models"
)

func (r *GormRepo) ListAddresses(ctx context.Context, owner string) ([]models.Address, error) {
	var addrs []models.Address
	if err := r.DB.WithContext(ctx).
		Where("owner = ?", owner).
		Order("is_default DESC, id ASC").
		Find(&addrs).Error; err != nil {
		return nil, err
	}
	return addrs, nil
}

// CreateAddress keeps the at-most-one-default invariant: a new default
// clears any previous one for the owner.
func (r *GormRepo) CreateAddress(ctx context.Context, addr *models.Address) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if addr.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("owner = ?", addr.Owner).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(addr).Error
	})
}

func (r *GormRepo) SetDefaultAddress(ctx context.Context, owner string, id uint) (*models.Address, error) {
	var addr models.Address
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner = ?", id, owner).First(&addr).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Address{}).
			Where("owner = ?", owner).
			Update("is_default", false).Error; err != nil {
			return err
		}
		addr.IsDefault = true
		return tx.Save(&addr).Error
	})
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *GormRepo) DeleteAddress(ctx context.Context, owner string, id uint) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		Delete(&models.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ListPaymentMethods(ctx context.Context, owner string) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := r.DB.WithContext(ctx).
		Where("owner = ?", owner).
		Order("is_default DESC, id ASC").
		Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *GormRepo) CreatePaymentMethod(ctx context.Context, pm *models.PaymentMethod) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if pm.IsDefault {
			if err := tx.Model(&models.PaymentMethod{}).
				Where("owner = ?", pm.Owner).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(pm).Error
	})
}

func (r *GormRepo) SetDefaultPaymentMethod(ctx context.Context, owner string, id uint) (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner = ?", id, owner).First(&pm).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PaymentMethod{}).
			Where("owner = ?", owner).
			Update("is_default", false).Error; err != nil {
			return err
		}
		pm.IsDefault = true
		return tx.Save(&pm).Error
	})
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

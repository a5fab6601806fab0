package repo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

// ErrEmptyCart is returned by CreateOrder when the owner has no cart items.
var ErrEmptyCart = errors.New("cart is empty")

// StockError reports a cart line whose requested quantity exceeds live stock.
type StockError struct {
	ProductID uint
	Name      string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.Name, e.Requested, e.Available)
}

// ProductGoneError reports a cart line whose product no longer exists.
type ProductGoneError struct {
	ProductID uint
	Name      string
}

func (e *ProductGoneError) Error() string {
	return fmt.Sprintf("product %q (id %d) no longer exists", e.Name, e.ProductID)
}

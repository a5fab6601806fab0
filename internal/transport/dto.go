package transport

import "github.com/fortes-labs/storefront/internal/models"

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
}

// UpdateProductRequest is a full replace: the four mutable fields are
// pointers so a missing field can be rejected instead of zeroed.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Rating      *float64 `json:"rating"`
}

type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Image       *string  `json:"image"`
	Rating      *float64 `json:"rating"`
}

type ProductPage struct {
	Items  []models.Product `json:"items"`
	Total  int64            `json:"total"`
	Offset int              `json:"offset"`
	Limit  int              `json:"limit"`
}

type AddToCartRequest struct {
	Owner     string `json:"owner"`
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartSummary struct {
	Items       []models.CartItem `json:"items"`
	TotalItems  int               `json:"total_items"`
	TotalAmount float64           `json:"total_amount"`
}

type RemovedCartItem struct {
	Removed models.CartItem `json:"removed"`
	Summary CartSummary     `json:"summary"`
}

type CreateOrderRequest struct {
	Owner           string                 `json:"owner"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateAddressRequest struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip_code"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default"`
}

type CreatePaymentMethodRequest struct {
	Label     string `json:"label"`
	Kind      string `json:"kind"`
	IsDefault bool   `json:"is_default"`
}

type SearchPage struct {
	Items []models.Product `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}

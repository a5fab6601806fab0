package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name        string    `gorm:"not null"                   json:"name"`
	Description string    `json:"description"`
	Category    string    `gorm:"not null;index"             json:"category"`
	Price       float64   `gorm:"not null"                   json:"price"`
	Stock       int       `gorm:"not null;check:stock >= 0"  json:"stock"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CartItem carries a price/name snapshot taken when the item was added,
// so later catalog edits do not change what the customer saw.
type CartItem struct {
	ID          uuid.UUID `gorm:"primaryKey"                             json:"id"`
	Owner       string    `gorm:"uniqueIndex:idx_owner_product;not null" json:"owner"`
	ProductID   uint      `gorm:"uniqueIndex:idx_owner_product;not null" json:"product_id"`
	Quantity    int       `gorm:"default:1;check:quantity > 0"           json:"quantity"`
	UnitPrice   float64   `gorm:"not null"                               json:"unit_price"`
	ProductName string    `gorm:"not null"                               json:"product_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five named states.
// Transitions between states are deliberately not restricted.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip_code"`
	Country string `json:"country"`
}

type Order struct {
	ID              uuid.UUID       `gorm:"primaryKey"        json:"id"`
	Owner           string          `gorm:"index;not null"    json:"owner"`
	Status          string          `gorm:"not null"          json:"status"`
	TotalAmount     float64         `gorm:"not null"          json:"total_amount"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderItem struct {
	ID          uuid.UUID `gorm:"primaryKey"      json:"id"`
	OrderID     uuid.UUID `gorm:"index;not null"  json:"order_id"`
	ProductID   uint      `gorm:"not null"        json:"product_id"`
	ProductName string    `gorm:"not null"        json:"product_name"`
	UnitPrice   float64   `gorm:"not null"        json:"unit_price"`
	Quantity    int       `gorm:"not null"        json:"quantity"`
	LineTotal   float64   `gorm:"not null"        json:"line_total"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type Address struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Owner     string `gorm:"index;not null"           json:"owner"`
	Street    string `gorm:"not null"                 json:"street"`
	City      string `gorm:"not null"                 json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip_code"`
	Country   string `gorm:"not null"                 json:"country"`
	IsDefault bool   `gorm:"default:false"            json:"is_default"`
}

type PaymentMethod struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Owner     string `gorm:"index;not null"           json:"owner"`
	Label     string `gorm:"not null"                 json:"label"`
	Kind      string `gorm:"not null"                 json:"kind"`
	IsDefault bool   `gorm:"default:false"            json:"is_default"`
}

package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/fortes-labs/storefront/internal/models"
	"github.com/fortes-labs/storefront/internal/transport"
)

// ProductFilter narrows ListProducts. Zero values mean "no constraint";
// Limit <= 0 returns the whole remaining catalog.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}

func (r *GormRepo) ListProducts(ctx context.Context, f ProductFilter) (int64, []models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})

	if f.Category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(f.Category)+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}

	var items []models.Product
	if err := q.Order("id ASC").Offset(f.Offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

// UpdateProduct replaces every mutable field.
func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, fields models.Product) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}

	prod.Name = fields.Name
	prod.Description = fields.Description
	prod.Category = fields.Category
	prod.Price = fields.Price
	prod.Stock = fields.Stock
	prod.Image = fields.Image
	prod.Rating = fields.Rating

	if err := r.DB.WithContext(ctx).Save(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uint) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Category != nil {
		prod.Category = *req.Category
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.Stock != nil {
		prod.Stock = *req.Stock
	}
	if req.Image != nil {
		prod.Image = *req.Image
	}
	if req.Rating != nil {
		prod.Rating = *req.Rating
	}

	if err := r.DB.WithContext(ctx).Save(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// DeleteProduct hard-deletes and returns the removed snapshot.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}

	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &prod, nil
}

// decrementStock is a guarded compare-and-swap; it reports false when the
// product is absent or stock would go negative.
func decrementStock(db *gorm.DB, id uint, quantity int) (bool, error) {
	res := db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) DecrementStock(ctx context.Context, id uint, quantity int) (bool, error) {
	return decrementStock(r.DB.WithContext(ctx), id, quantity)
}

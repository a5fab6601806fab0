package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fortes-labs/storefront/internal/models"
	"github.com/fortes-labs/storefront/internal/repo"
	"github.com/fortes-labs/storefront/internal/transport"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) List(ctx context.Context, f repo.ProductFilter) (int64, []models.Product, error) {
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.Repo.ListProducts(ctx, f)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be > 0", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	prod := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Rating:      req.Rating,
	}
	return s.Repo.CreateProduct(ctx, &prod)
}

// Update is a full replace; every mutable field must be present and valid.
func (s *ProductService) Update(ctx context.Context, id uint, req transport.UpdateProductRequest) (*models.Product, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Category == nil || strings.TrimSpace(*req.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if req.Price == nil || *req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be > 0", ErrValidation)
	}
	if req.Stock == nil || *req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	fields := models.Product{
		Name:     strings.TrimSpace(*req.Name),
		Category: strings.TrimSpace(*req.Category),
		Price:    *req.Price,
		Stock:    *req.Stock,
	}
	if req.Description != nil {
		fields.Description = *req.Description
	}
	if req.Image != nil {
		fields.Image = *req.Image
	}
	if req.Rating != nil {
		fields.Rating = *req.Rating
	}

	return s.Repo.UpdateProduct(ctx, id, fields)
}

func (s *ProductService) Patch(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		return nil, fmt.Errorf("%w: category must not be empty", ErrValidation)
	}
	if req.Price != nil && *req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be > 0", ErrValidation)
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	return s.Repo.PatchProduct(ctx, req, id)
}

func (s *ProductService) Delete(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.DeleteProduct(ctx, id)
}

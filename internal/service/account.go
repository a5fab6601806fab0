package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fortes-labs/storefront/internal/models"
	"github.com/fortes-labs/storefront/internal/repo"
	"github.com/fortes-labs/storefront/internal/transport"
)

// AccountService manages the owner-scoped address book and saved payment
// methods.
type AccountService struct {
	Repo *repo.GormRepo
}

func (s *AccountService) ListAddresses(ctx context.Context, owner string) ([]models.Address, error) {
	addrs, err := s.Repo.ListAddresses(ctx, owner)
	if err != nil {
		return nil, err
	}
	if addrs == nil {
		addrs = []models.Address{}
	}
	return addrs, nil
}

func (s *AccountService) CreateAddress(ctx context.Context, owner string, req transport.CreateAddressRequest) (*models.Address, error) {
	if strings.TrimSpace(req.Street) == "" {
		return nil, fmt.Errorf("%w: street is required", ErrValidation)
	}
	if strings.TrimSpace(req.City) == "" {
		return nil, fmt.Errorf("%w: city is required", ErrValidation)
	}
	if strings.TrimSpace(req.Country) == "" {
		return nil, fmt.Errorf("%w: country is required", ErrValidation)
	}

	addr := models.Address{
		Owner:     owner,
		Street:    strings.TrimSpace(req.Street),
		City:      strings.TrimSpace(req.City),
		State:     req.State,
		Zip:       req.Zip,
		Country:   strings.TrimSpace(req.Country),
		IsDefault: req.IsDefault,
	}
	if err := s.Repo.CreateAddress(ctx, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

func (s *AccountService) SetDefaultAddress(ctx context.Context, owner string, id uint) (*models.Address, error) {
	addr, err := s.Repo.SetDefaultAddress(ctx, owner, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("address %d: %w", id, ErrNotFound)
	}
	return addr, err
}

func (s *AccountService) DeleteAddress(ctx context.Context, owner string, id uint) error {
	err := s.Repo.DeleteAddress(ctx, owner, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("address %d: %w", id, ErrNotFound)
	}
	return err
}

func (s *AccountService) ListPaymentMethods(ctx context.Context, owner string) ([]models.PaymentMethod, error) {
	methods, err := s.Repo.ListPaymentMethods(ctx, owner)
	if err != nil {
		return nil, err
	}
	if methods == nil {
		methods = []models.PaymentMethod{}
	}
	return methods, nil
}

func (s *AccountService) CreatePaymentMethod(ctx context.Context, owner string, req transport.CreatePaymentMethodRequest) (*models.PaymentMethod, error) {
	if strings.TrimSpace(req.Label) == "" {
		return nil, fmt.Errorf("%w: label is required", ErrValidation)
	}
	if strings.TrimSpace(req.Kind) == "" {
		return nil, fmt.Errorf("%w: kind is required", ErrValidation)
	}

	pm := models.PaymentMethod{
		Owner:     owner,
		Label:     strings.TrimSpace(req.Label),
		Kind:      strings.TrimSpace(req.Kind),
		IsDefault: req.IsDefault,
	}
	if err := s.Repo.CreatePaymentMethod(ctx, &pm); err != nil {
		return nil, err
	}
	return &pm, nil
}

func (s *AccountService) SetDefaultPaymentMethod(ctx context.Context, owner string, id uint) (*models.PaymentMethod, error) {
	pm, err := s.Repo.SetDefaultPaymentMethod(ctx, owner, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("payment method %d: %w", id, ErrNotFound)
	}
	return pm, err
}

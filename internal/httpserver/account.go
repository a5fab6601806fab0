package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fortes-labs/storefront/internal/logging"
	"github.com/fortes-labs/storefront/internal/service"
	"github.com/fortes-labs/storefront/internal/transport"
)

type AccountHTTP struct {
	Svc *service.AccountService
}

func recordIDParam(c echo.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func (h *AccountHTTP) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.list_addresses")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("list_addresses_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}

	addrs, err := h.Svc.ListAddresses(ctx, owner)
	if err != nil {
		return respondServiceError(c, l, "list_addresses_error", err)
	}

	return respondOK(c, http.StatusOK, addrs, "addresses loaded")
}

func (h *AccountHTTP) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.create_address")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("create_address_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}

	var req transport.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_address_error", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	addr, err := h.Svc.CreateAddress(ctx, owner, req)
	if err != nil {
		return respondServiceError(c, l, "create_address_error", err)
	}

	l.Info("create_address_success", "owner", owner, "address_id", addr.ID)
	return respondOK(c, http.StatusCreated, addr, "address saved")
}

func (h *AccountHTTP) SetDefaultAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.set_default_address")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("set_default_address_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}
	id, ok := recordIDParam(c)
	if !ok {
		l.Warn("set_default_address_error", "status", 400, "reason", "id is not an integer")
		return respondError(c, http.StatusBadRequest, "id must be a positive integer")
	}

	addr, err := h.Svc.SetDefaultAddress(ctx, owner, id)
	if err != nil {
		return respondServiceError(c, l, "set_default_address_error", err)
	}

	l.Info("set_default_address_success", "owner", owner, "address_id", id)
	return respondOK(c, http.StatusOK, addr, "default address set")
}

func (h *AccountHTTP) DeleteAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.delete_address")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("delete_address_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}
	id, ok := recordIDParam(c)
	if !ok {
		l.Warn("delete_address_error", "status", 400, "reason", "id is not an integer")
		return respondError(c, http.StatusBadRequest, "id must be a positive integer")
	}

	if err := h.Svc.DeleteAddress(ctx, owner, id); err != nil {
		return respondServiceError(c, l, "delete_address_error", err)
	}

	l.Info("delete_address_success", "owner", owner, "address_id", id)
	return respondOK(c, http.StatusOK, nil, "address deleted")
}

func (h *AccountHTTP) ListPaymentMethods(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.list_payment_methods")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("list_payment_methods_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}

	methods, err := h.Svc.ListPaymentMethods(ctx, owner)
	if err != nil {
		return respondServiceError(c, l, "list_payment_methods_error", err)
	}

	return respondOK(c, http.StatusOK, methods, "payment methods loaded")
}

func (h *AccountHTTP) CreatePaymentMethod(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.create_payment_method")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("create_payment_method_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}

	var req transport.CreatePaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_payment_method_error", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	pm, err := h.Svc.CreatePaymentMethod(ctx, owner, req)
	if err != nil {
		return respondServiceError(c, l, "create_payment_method_error", err)
	}

	l.Info("create_payment_method_success", "owner", owner, "payment_method_id", pm.ID)
	return respondOK(c, http.StatusCreated, pm, "payment method saved")
}

func (h *AccountHTTP) SetDefaultPaymentMethod(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.set_default_payment_method")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("set_default_payment_method_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}
	id, ok := recordIDParam(c)
	if !ok {
		l.Warn("set_default_payment_method_error", "status", 400, "reason", "id is not an integer")
		return respondError(c, http.StatusBadRequest, "id must be a positive integer")
	}

	pm, err := h.Svc.SetDefaultPaymentMethod(ctx, owner, id)
	if err != nil {
		return respondServiceError(c, l, "set_default_payment_method_error", err)
	}

	l.Info("set_default_payment_method_success", "owner", owner, "payment_method_id", id)
	return respondOK(c, http.StatusOK, pm, "default payment method set")
}

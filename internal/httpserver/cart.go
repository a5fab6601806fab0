package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fortes-labs/storefront/internal/logging"
	"github.com/fortes-labs/storefront/internal/models"
	"github.com/fortes-labs/storefront/internal/mykafka"
	"github.com/fortes-labs/storefront/internal/service"
	"github.com/fortes-labs/storefront/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) publish(c echo.Context, owner string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "cart_events", owner, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func ownerParam(c echo.Context) (string, bool) {
	owner := c.Param("owner")
	return owner, owner != ""
}

func itemIDParam(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("get_cart_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}

	summary, err := h.Svc.Summary(ctx, owner)
	if err != nil {
		return respondServiceError(c, l, "get_cart_error", err)
	}

	return respondOK(c, http.StatusOK, summary, "cart loaded")
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	summary, err := h.Svc.Add(ctx, req.Owner, req.ProductID, req.Quantity)
	if err != nil {
		return respondServiceError(c, l, "add_to_cart_error", err)
	}

	h.publish(c, req.Owner, map[string]any{
		"type":       "cart_item_added",
		"owner":      req.Owner,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	})

	l.Info("add_to_cart_success", "owner", req.Owner, "product_id", req.ProductID)
	return respondOK(c, http.StatusOK, summary, "product added to cart")
}

func (h *CartHTTP) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_quantity")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("set_quantity_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}
	itemID, ok := itemIDParam(c)
	if !ok {
		l.Warn("set_quantity_error", "status", 400, "reason", "item id is not a uuid")
		return respondError(c, http.StatusBadRequest, "item id must be a uuid")
	}

	var req transport.SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_quantity_error", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	summary, err := h.Svc.SetQuantity(ctx, owner, itemID, req.Quantity)
	if err != nil {
		return respondServiceError(c, l, "set_quantity_error", err)
	}

	h.publish(c, owner, map[string]any{
		"type":     "cart_quantity_set",
		"owner":    owner,
		"item_id":  itemID,
		"quantity": req.Quantity,
	})

	l.Info("set_quantity_success", "owner", owner, "item_id", itemID)
	return respondOK(c, http.StatusOK, summary, "cart updated")
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("remove_from_cart_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}
	itemID, ok := itemIDParam(c)
	if !ok {
		l.Warn("remove_from_cart_error", "status", 400, "reason", "item id is not a uuid")
		return respondError(c, http.StatusBadRequest, "item id must be a uuid")
	}

	removed, err := h.Svc.Remove(ctx, owner, itemID)
	if err != nil {
		return respondServiceError(c, l, "remove_from_cart_error", err)
	}

	h.publish(c, owner, map[string]any{
		"type":       "cart_item_removed",
		"owner":      owner,
		"item_id":    itemID,
		"product_id": removed.Removed.ProductID,
	})

	l.Info("remove_from_cart_success", "owner", owner, "item_id", itemID)
	return respondOK(c, http.StatusOK, removed.Summary, "item removed from cart")
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("clear_cart_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}

	if err := h.Svc.Clear(ctx, owner); err != nil {
		return respondServiceError(c, l, "clear_cart_error", err)
	}

	h.publish(c, owner, map[string]any{
		"type":  "cart_cleared",
		"owner": owner,
	})

	l.Info("clear_cart_success", "owner", owner)
	return respondOK(c, http.StatusOK, transport.CartSummary{Items: []models.CartItem{}}, "cart cleared")
}

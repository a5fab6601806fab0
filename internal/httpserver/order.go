package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fortes-labs/storefront/internal/logging"
	"github.com/fortes-labs/storefront/internal/mykafka"
	"github.com/fortes-labs/storefront/internal/service"
	"github.com/fortes-labs/storefront/internal/transport"
	"github.com/fortes-labs/storefront/internal/util"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Create(ctx, req)
	if err != nil {
		return respondServiceError(c, l, "create_order_error", err)
	}

	h.publish(c, req.Owner, map[string]any{
		"type":     "order_created",
		"order_id": order.ID,
		"owner":    order.Owner,
		"total":    order.TotalAmount,
	})

	l.Info("create_order_success", "order_id", order.ID, "owner", order.Owner)
	return respondOK(c, http.StatusCreated, order, "order placed")
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_order_error", "status", 400, "reason", "id is not a uuid")
		return respondError(c, http.StatusBadRequest, "order id must be a uuid")
	}

	order, err := h.Svc.Get(ctx, id)
	if err != nil {
		return respondServiceError(c, l, "get_order_error", err)
	}

	return respondOK(c, http.StatusOK, order, "order found")
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	owner, ok := ownerParam(c)
	if !ok {
		l.Warn("list_orders_error", "status", 400, "reason", "owner is required")
		return respondError(c, http.StatusBadRequest, "owner is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	orders, err := h.Svc.ListByOwner(ctx, owner, limit, offset)
	if err != nil {
		return respondServiceError(c, l, "list_orders_error", err)
	}

	l.Info("list_orders_success", "owner", owner, "count", len(orders))
	return respondOK(c, http.StatusOK, orders, "orders loaded")
}

func (h *OrderHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("update_order_status_error", "status", 400, "reason", "id is not a uuid")
		return respondError(c, http.StatusBadRequest, "order id must be a uuid")
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_status_error", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return respondServiceError(c, l, "update_order_status_error", err)
	}

	h.publish(c, order.Owner, map[string]any{
		"type":     "order_status_updated",
		"order_id": order.ID,
		"status":   order.Status,
	})

	l.Info("update_order_status_success", "order_id", order.ID, "order_status", order.Status)
	return respondOK(c, http.StatusOK, order, "order status updated")
}

package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/fortes-labs/storefront/internal/logging"
	"github.com/fortes-labs/storefront/internal/models"
	"github.com/fortes-labs/storefront/internal/mykafka"
	"github.com/fortes-labs/storefront/internal/repo"
	"github.com/fortes-labs/storefront/internal/service"
	"github.com/fortes-labs/storefront/internal/service/search"
	"github.com/fortes-labs/storefront/internal/transport"
	"github.com/fortes-labs/storefront/internal/util"
)

type ProductHTTP struct {
	Svc      *service.ProductService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

func (h *ProductHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

// syncIndex keeps the search index in step with the catalog, best effort.
func (h *ProductHTTP) syncIndex(c echo.Context, prod *models.Product) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexProduct(ctx, h.ES, h.ESIndex, prod); err != nil {
		logging.FromContext(c.Request().Context()).Error("es index error", "error", err)
	}
}

func (h *ProductHTTP) dropFromIndex(c echo.Context, id uint) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.RemoveProduct(ctx, h.ES, h.ESIndex, id); err != nil {
		logging.FromContext(c.Request().Context()).Error("es remove error", "error", err)
	}
}

func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	f := repo.ProductFilter{
		Category: c.QueryParam("category"),
		Limit:    0,
	}
	if v := c.QueryParam("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			l.Warn("list_products_error", "status", 400, "reason", "min_price not a number")
			return respondError(c, http.StatusBadRequest, "min_price must be a number")
		}
		f.MinPrice = &p
	}
	if v := c.QueryParam("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			l.Warn("list_products_error", "status", 400, "reason", "max_price not a number")
			return respondError(c, http.StatusBadRequest, "max_price must be a number")
		}
		f.MaxPrice = &p
	}
	f.Limit = util.ParseIntDefault(c.QueryParam("limit"), 0)
	f.Offset = util.ParseIntDefault(c.QueryParam("offset"), 0)

	total, items, err := h.Svc.List(ctx, f)
	if err != nil {
		return respondServiceError(c, l, "list_products_error", err)
	}
	if items == nil {
		items = []models.Product{}
	}

	limit := f.Limit
	if limit <= 0 {
		limit = len(items)
	}

	l.Info("list_products_success", "total", total)
	return respondOK(c, http.StatusOK, transport.ProductPage{
		Items:  items,
		Total:  total,
		Offset: f.Offset,
		Limit:  limit,
	}, "products loaded")
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, ok := parseID(c)
	if !ok {
		l.Warn("get_product_error", "status", 400, "reason", "id is not an integer")
		return respondError(c, http.StatusBadRequest, "id must be a positive integer")
	}

	prod, err := h.Svc.Get(ctx, id)
	if err != nil {
		return respondServiceError(c, l, "get_product_error", err)
	}

	return respondOK(c, http.StatusOK, prod, "product found")
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.Create(ctx, req)
	if err != nil {
		return respondServiceError(c, l, "create_product_error", err)
	}

	h.publish(c, strconv.FormatUint(uint64(prod.ID), 10), map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	h.syncIndex(c, prod)

	l.Info("create_product_success", "product_id", prod.ID)
	return respondOK(c, http.StatusCreated, prod, "product added")
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, ok := parseID(c)
	if !ok {
		l.Warn("update_product_error", "status", 400, "reason", "id is not an integer")
		return respondError(c, http.StatusBadRequest, "id must be a positive integer")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_error", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return respondServiceError(c, l, "update_product_error", err)
	}

	h.publish(c, strconv.FormatUint(uint64(prod.ID), 10), map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	h.syncIndex(c, prod)

	l.Info("update_product_success", "product_id", prod.ID)
	return respondOK(c, http.StatusOK, prod, "product updated")
}

func (h *ProductHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch")

	id, ok := parseID(c)
	if !ok {
		l.Warn("patch_product_error", "status", 400, "reason", "id is not an integer")
		return respondError(c, http.StatusBadRequest, "id must be a positive integer")
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_product_error", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.Patch(ctx, id, req)
	if err != nil {
		return respondServiceError(c, l, "patch_product_error", err)
	}

	h.publish(c, strconv.FormatUint(uint64(prod.ID), 10), map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	h.syncIndex(c, prod)

	l.Info("patch_product_success", "product_id", prod.ID)
	return respondOK(c, http.StatusOK, prod, "product updated")
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, ok := parseID(c)
	if !ok {
		l.Warn("delete_product_error", "status", 400, "reason", "id is not an integer")
		return respondError(c, http.StatusBadRequest, "id must be a positive integer")
	}

	prod, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return respondServiceError(c, l, "delete_product_error", err)
	}

	h.publish(c, strconv.FormatUint(uint64(id), 10), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	h.dropFromIndex(c, id)

	l.Info("delete_product_success", "product_id", id)
	return respondOK(c, http.StatusOK, prod, "product deleted")
}

package httpserver

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/fortes-labs/storefront/internal/logging"
	"github.com/fortes-labs/storefront/internal/service/search"
	"github.com/fortes-labs/storefront/internal/transport"
	"github.com/fortes-labs/storefront/internal/util"
)

type SearchHTTP struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	if h.ES == nil {
		l.Warn("search_products_error", "status", 503, "reason", "search not configured")
		return respondError(c, http.StatusServiceUnavailable, "search is not available")
	}

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_products_error", "status", 400, "reason", "q is required")
		return respondError(c, http.StatusBadRequest, "q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	total, products, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		return respondServiceError(c, l, "search_products_error", err)
	}

	l.Info("search_products_success", "query", q, "total", total)
	return respondOK(c, http.StatusOK, transport.SearchPage{
		Items: products,
		Total: total,
		Page:  page,
		Size:  size,
	}, "search results")
}

package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	AccountHandler *AccountHTTP
	SearchHandler  *SearchHTTP
}

// cors answers preflight directly with 200 and no body, and stamps the
// permissive headers on every response. Echo's CORS middleware short-circuits
// preflight with 204, so the handling lives here instead.
func cors() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler()
	e.Use(cors())

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/status", func(c echo.Context) error {
		return respondOK(c, http.StatusOK, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}, "storefront API is running")
	})

	products := e.Group("/products")
	products.GET("/search", d.SearchHandler.SearchProducts)
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.PATCH("/:id", d.ProductHandler.PatchProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	cart := e.Group("/cart")
	cart.POST("", d.CartHandler.AddToCart)
	cart.GET("/:owner", d.CartHandler.GetCart)
	cart.DELETE("/:owner", d.CartHandler.ClearCart)
	cart.PUT("/:owner/:item_id", d.CartHandler.SetQuantity)
	cart.DELETE("/:owner/:item_id", d.CartHandler.RemoveFromCart)

	orders := e.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/details/:id", d.OrderHandler.GetOrder)
	orders.GET("/:owner", d.OrderHandler.ListOrders)
	orders.PATCH("/:id", d.OrderHandler.UpdateOrderStatus)

	addresses := e.Group("/addresses")
	addresses.GET("/:owner", d.AccountHandler.ListAddresses)
	addresses.POST("/:owner", d.AccountHandler.CreateAddress)
	addresses.PUT("/:owner/:id/default", d.AccountHandler.SetDefaultAddress)
	addresses.DELETE("/:owner/:id", d.AccountHandler.DeleteAddress)

	payments := e.Group("/payment-methods")
	payments.GET("/:owner", d.AccountHandler.ListPaymentMethods)
	payments.POST("/:owner", d.AccountHandler.CreatePaymentMethod)
	payments.PUT("/:owner/:id/default", d.AccountHandler.SetDefaultPaymentMethod)
}

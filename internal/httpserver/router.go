package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/febdev/feb_shop/internal/handlers"
	"github.com/febdev/feb_shop/internal/logging"
	"github.com/febdev/feb_shop/internal/middleware/auth"
)

type Deps struct {
	DB             *gorm.DB
	Logger         *slog.Logger
	JWTSecret      []byte
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	SearchHandler  *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	if d.Logger != nil {
		e.Use(requestLogger(d.Logger))
	}

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.POST("/auth/register", d.AuthHandler.Register)
	e.POST("/auth/login", d.AuthHandler.Login)

	requireLogin := auth.RequireLogin(d.JWTSecret)
	adminOnly := auth.AdminOnly(d.DB)

	e.GET("/products", d.ProductHandler.GetProducts)
	e.GET("/products/search", d.SearchHandler.Search)
	e.GET("/products/:id", d.ProductHandler.GetProduct)
	e.POST("/products", d.ProductHandler.CreateProduct, requireLogin)
	// Update stays public. Create and delete require a token while update does
	// not; the upstream behavior is like that and the tests flag it.
	e.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	e.PATCH("/products/:id", d.ProductHandler.UpdateProduct)
	e.DELETE("/products/:id", d.ProductHandler.DeleteProduct, requireLogin, adminOnly)
}

func requestLogger(l *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := logging.IntoContext(req.Context(), l)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

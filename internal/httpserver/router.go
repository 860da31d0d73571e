package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "marketplace/internal/middleware/auth"
	"marketplace/internal/models"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	ProductHandler *ProductHTTP
	AdminHandler   *AdminHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	requireAuth := authmw.RequireAuth(d.JWTSecret)

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)

	products := e.Group("/products")
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct,
		requireAuth, authmw.RequireRole(models.RoleSeller, models.RoleAdmin))
	products.GET("/me", d.ProductHandler.GetOwnProducts,
		requireAuth, authmw.RequireRole(models.RoleSeller))

	admin := e.Group("/admin", requireAuth, authmw.RequireRole(models.RoleAdmin))
	admin.GET("/products", d.AdminHandler.GetAllProducts)
	admin.GET("/sellers", d.AdminHandler.GetAllSellers)
}

package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"marketplace/internal/apperr"
	"marketplace/internal/logging"
	"marketplace/internal/service"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) GetAllProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get_all_products")

	var sellerFilter *uuid.UUID
	if raw := c.QueryParam("sellerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			l.Warn("get_all_products_error", "status", 400, "reason", "sellerId is not a uuid")
			return apperr.Validation([]string{"sellerId must be a valid uuid"})
		}
		sellerFilter = &id
	}

	items, err := h.Svc.GetAllProducts(ctx, sellerFilter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminHTTP) GetAllSellers(c echo.Context) error {
	ctx := c.Request().Context()

	sellers, err := h.Svc.GetAllSellers(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sellers)
}

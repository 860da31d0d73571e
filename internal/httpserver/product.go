package httpserver

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"marketplace/internal/apperr"
	"marketplace/internal/logging"
	authmw "marketplace/internal/middleware/auth"
	"marketplace/internal/search"
	"marketplace/internal/service"
	"marketplace/internal/transport"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return apperr.Validation([]string{"invalid request body"})
	}
	if msgs := req.Validate(); len(msgs) > 0 {
		l.Warn("create_product_error", "status", 400, "reason", "validation failed")
		return apperr.Validation(msgs)
	}

	ownerID, ok := authmw.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	product, err := h.Svc.Create(ctx, service.CreateProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Quantity: *req.Quantity,
		Price:    *req.Price,
	}, ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) GetOwnProducts(c echo.Context) error {
	ctx := c.Request().Context()

	sellerID, ok := authmw.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	items, err := h.Svc.FindOwn(ctx, sellerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	spec := search.FilterSpec{
		Name: c.QueryParam("name"),
		SKU:  c.QueryParam("sku"),
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			l.Warn("search_error", "status", 400, "reason", "invalid minPrice")
			return apperr.Validation([]string{"minPrice must be a non-negative number"})
		}
		spec.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			l.Warn("search_error", "status", 400, "reason", "invalid maxPrice")
			return apperr.Validation([]string{"maxPrice must be a non-negative number"})
		}
		spec.MaxPrice = &v
	}

	items, err := h.Svc.Search(ctx, spec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return apperr.Validation([]string{"id must be a valid uuid"})
	}

	product, err := h.Svc.FindOne(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

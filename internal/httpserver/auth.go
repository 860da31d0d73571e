package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace/internal/apperr"
	"marketplace/internal/logging"
	"marketplace/internal/service"
	"marketplace/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return apperr.Validation([]string{"invalid request body"})
	}
	if msgs := req.Validate(); len(msgs) > 0 {
		l.Warn("register_error", "status", 400, "reason", "validation failed")
		return apperr.Validation(msgs)
	}

	user, err := h.Svc.Register(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, transport.RegisterResponse{
		Message: "seller registered successfully",
		UserID:  user.ID,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return apperr.Validation([]string{"invalid request body"})
	}
	if msgs := req.Validate(); len(msgs) > 0 {
		l.Warn("login_error", "status", 400, "reason", "validation failed")
		return apperr.Validation(msgs)
	}

	token, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.LoginResponse{AccessToken: token})
}

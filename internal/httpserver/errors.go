package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"marketplace/internal/apperr"
)

// ErrorEnvelope is the JSON body every failed request gets, whatever layer
// the error came from.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// ErrorHandler translates apperr values and echo.HTTPErrors into the
// envelope. Anything else is an unexpected failure and maps to 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := apperr.As(err); ok {
		status = appErr.Status
		message = appErr.PublicMessage()
	} else if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	envelope := ErrorEnvelope{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Request().URL.Path,
		Error:      http.StatusText(status),
		Message:    message,
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, envelope)
	}
	if writeErr != nil {
		c.Logger().Errorf("error handler write failed: %v", writeErr)
	}
}

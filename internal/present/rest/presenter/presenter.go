package presenter

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type messageResponse struct {
	Message string `json:"message"`
}

// OK wraps a successful read or update.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// Created wraps a successful insert.
func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

func Message(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, messageResponse{Message: msg})
}

func NotFound(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, messageResponse{Message: fmt.Sprintf("%s not found", resource)})
}

func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Access denied. No token provided."})
}

func Forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, messageResponse{Message: "Invalid token."})
}

// InternalError logs the underlying error and returns a generic message.
// The cause never reaches the response body.
func InternalError(c echo.Context, verb, resource string, err error) error {
	slog.ErrorContext(
		c.Request().Context(), fmt.Sprintf("Error %s %s", verb, resource),
		slog.String("error", err.Error()),
		slog.String("path", c.Path()),
	)
	return c.JSON(http.StatusInternalServerError, messageResponse{
		Message: fmt.Sprintf("Error %s %s", verb, resource),
	})
}

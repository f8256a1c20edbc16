package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/service"
)

// httpError maps service sentinel errors onto HTTP status codes; anything
// unmatched flows to echo's error handler as a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrInvalidPrice):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrPurchaseNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	return err
}

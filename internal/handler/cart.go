package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/dto"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/service"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CartMutationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.BookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing email or bookId")
	}

	resp, err := h.cartService.Add(ctx, req.Email, req.BookID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.Param("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	resp, err := h.cartService.List(ctx, email)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CartMutationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.BookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing email or bookId")
	}

	if err := h.cartService.Remove(ctx, req.Email, req.BookID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Book removed from cart.",
	})
}

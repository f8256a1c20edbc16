package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/dto"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/service"
)

type PurchaseHandler struct {
	purchaseService service.PurchaseService
	frontendURL     string
}

func NewPurchaseHandler(purchaseService service.PurchaseService, frontendURL string) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		frontendURL:     frontendURL,
	}
}

func (h *PurchaseHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.purchaseService.Checkout(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Complete receives the bank's browser redirect. Apart from malformed
// requests it always ends in a redirect to the front end; settlement itself
// is replay-safe, so the bank re-invoking this URL is harmless.
func (h *PurchaseHandler) Complete(c echo.Context) error {
	ctx := c.Request().Context()

	purchaseID := c.QueryParam("purchaseId")
	status := c.QueryParam("status")
	books := c.QueryParam("books")

	if purchaseID == "" || status == "" {
		return c.String(http.StatusBadRequest, "Missing purchaseId or status")
	}

	var bookIDs []string
	if books != "" {
		bookIDs = strings.Split(books, ",")
	}

	err := h.purchaseService.Complete(ctx, purchaseID, status, bookIDs)
	switch {
	case errors.Is(err, service.ErrPurchaseNotFound):
		return c.String(http.StatusNotFound, "Purchase not found")
	case err != nil:
		// Do not strand the buyer on a storage hiccup; re-running the
		// callback with the same parameters picks up where this left off.
		log.Println("purchase completion:", err)
	}

	return c.Redirect(http.StatusFound, h.frontendURL+"/profile")
}

func (h *PurchaseHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.BookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing email or bookId")
	}

	purchased, err := h.purchaseService.CheckPurchased(ctx, req.Email, req.BookID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, &dto.CheckResponse{Purchased: purchased})
}

func (h *PurchaseHandler) CheckForAUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.EmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	resp, err := h.purchaseService.OwnedBooks(ctx, req.Email)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PurchaseHandler) History(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.EmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	resp, err := h.purchaseService.History(ctx, req.Email)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

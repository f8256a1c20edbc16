package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/dto"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/service"
)

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

func (h *BookHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	book, err := h.bookService.Create(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	book, err := h.bookService.Get(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, book)
}

func (h *BookHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.List(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, books)
}

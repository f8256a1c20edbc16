package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/dto"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/repository"
)

type BookService interface {
	Create(ctx context.Context, req *dto.CreateBookRequest) (*model.Book, error)
	Get(ctx context.Context, bookID string) (*model.Book, error)
	List(ctx context.Context) ([]*model.Book, error)
}

type bookServiceImpl struct {
	bookRepo repository.BookRepository
}

func NewBookService(
	bookRepo repository.BookRepository,
) BookService {
	return &bookServiceImpl{
		bookRepo: bookRepo,
	}
}

func (s *bookServiceImpl) Create(ctx context.Context, req *dto.CreateBookRequest) (*model.Book, error) {
	if req.Title == "" {
		return nil, ErrMissingFields
	}

	book := &model.Book{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CreatedAt:   time.Now(),
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return book, nil
}

func (s *bookServiceImpl) Get(ctx context.Context, bookID string) (*model.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	return book, nil
}

func (s *bookServiceImpl) List(ctx context.Context) ([]*model.Book, error) {
	return s.bookRepo.List(ctx)
}

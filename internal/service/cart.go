package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/dto"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/repository"
)

type CartService interface {
	Add(ctx context.Context, email, bookID string) (*dto.CartResponse, error)
	List(ctx context.Context, email string) (*dto.CartResponse, error)
	Remove(ctx context.Context, email, bookID string) error
}

type cartServiceImpl struct {
	bookRepo repository.BookRepository
	cartRepo repository.CartRepository
}

func NewCartService(
	bookRepo repository.BookRepository,
	cartRepo repository.CartRepository,
) CartService {
	return &cartServiceImpl{
		bookRepo: bookRepo,
		cartRepo: cartRepo,
	}
}

func (s *cartServiceImpl) Add(ctx context.Context, email, bookID string) (*dto.CartResponse, error) {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	inCart, err := s.cartRepo.Exists(ctx, email, bookID)
	if err != nil {
		return nil, fmt.Errorf("check cart: %w", err)
	}
	if inCart {
		return &dto.CartResponse{
			Success: false,
			Message: "Book already in cart.",
			Items:   []*dto.CartItemInfo{},
		}, nil
	}

	price, ok := sanitizePrice(book.Price)
	if !ok {
		return nil, ErrInvalidPrice
	}

	item := &model.CartItem{
		Email:   email,
		BookID:  book.ID,
		Title:   book.Title,
		Author:  book.Author,
		Price:   price,
		Image:   book.Image,
		AddedAt: time.Now(),
	}
	if err := s.cartRepo.Add(ctx, item); err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	items, err := s.cartRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	return &dto.CartResponse{
		Success: true,
		Message: "Book added to cart.",
		Items:   cartItemInfos(items),
	}, nil
}

func (s *cartServiceImpl) List(ctx context.Context, email string) (*dto.CartResponse, error) {
	items, err := s.cartRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	return &dto.CartResponse{
		Success: true,
		Items:   cartItemInfos(items),
	}, nil
}

func (s *cartServiceImpl) Remove(ctx context.Context, email, bookID string) error {
	// removing an absent entry is a no-op; settlement cleanup relies on it
	return s.cartRepo.Remove(ctx, email, bookID)
}

func cartItemInfos(items []*model.CartItem) []*dto.CartItemInfo {
	infos := make([]*dto.CartItemInfo, len(items))
	for i, item := range items {
		infos[i] = &dto.CartItemInfo{
			BookID: item.BookID,
			Title:  item.Title,
			Author: item.Author,
			Price:  item.Price.String(),
			Image:  item.Image,
		}
	}

	return infos
}

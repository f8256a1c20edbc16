package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/dto"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/repository"
)

type UserService interface {
	GetProfile(ctx context.Context, email string) (*dto.ProfileResponse, error)
}

type userServiceImpl struct {
	userRepo          repository.UserRepository
	bookRepo          repository.BookRepository
	purchasedBookRepo repository.PurchasedBookRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
	purchasedBookRepo repository.PurchasedBookRepository,
) UserService {
	return &userServiceImpl{
		userRepo:          userRepo,
		bookRepo:          bookRepo,
		purchasedBookRepo: purchasedBookRepo,
	}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, email string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	records, err := s.purchasedBookRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list purchased books: %w", err)
	}

	bookIDs := make([]string, len(records))
	for i, record := range records {
		bookIDs[i] = record.BookID
	}

	books := make([]*dto.BookInfo, 0, len(records))
	if len(bookIDs) > 0 {
		found, err := s.bookRepo.FindMany(ctx, bookIDs)
		if err != nil {
			return nil, fmt.Errorf("find books: %w", err)
		}

		byID := make(map[string]*model.Book, len(found))
		for _, book := range found {
			byID[book.ID] = book
		}

		for _, record := range records {
			if book, ok := byID[record.BookID]; ok {
				books = append(books, &dto.BookInfo{
					ID:          book.ID,
					Title:       book.Title,
					Author:      book.Author,
					Image:       book.Image,
					Description: book.Description,
					Price:       book.Price,
				})
			}
		}
	}

	return &dto.ProfileResponse{
		User:           dto.UserInfo{Name: user.Name, Email: user.Email},
		PurchasedBooks: books,
	}, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, bookID string) (*model.Book, error)
	FindMany(ctx context.Context, bookIDs []string) ([]*model.Book, error)
	List(ctx context.Context) ([]*model.Book, error)
}

type bookRepoImpl struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepoImpl{
		db: db,
	}
}

func (r *bookRepoImpl) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepoImpl) FindByID(ctx context.Context, bookID string) (*model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).
		Where("id = ?", bookID).
		First(&book).Error

	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (r *bookRepoImpl) FindMany(ctx context.Context, bookIDs []string) ([]*model.Book, error) {
	var books []*model.Book
	err := r.db.WithContext(ctx).
		Where("id IN ?", bookIDs).
		Find(&books).
		Error

	if err != nil {
		return nil, err
	}

	return books, nil
}

func (r *bookRepoImpl) List(ctx context.Context) ([]*model.Book, error) {
	var books []*model.Book
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&books).
		Error

	if err != nil {
		return nil, err
	}

	return books, nil
}

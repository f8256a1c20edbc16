package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
)

type CartRepository interface {
	Add(ctx context.Context, item *model.CartItem) error
	Exists(ctx context.Context, email, bookID string) (bool, error)
	ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error)
	Remove(ctx context.Context, email, bookID string) error
	// RemoveBooks deletes every entry of the buyer whose book id is in
	// bookIDs. Deleting absent entries is a no-op, so settlement cleanup
	// can be replayed safely.
	RemoveBooks(ctx context.Context, email string, bookIDs []string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Add(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) Exists(ctx context.Context, email, bookID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("email = ?", email).
		Where("book_id = ?", bookID).
		Count(&count).Error

	return count > 0, err
}

func (r *cartRepoImpl) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("added_at ASC").
		Find(&items).
		Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) Remove(ctx context.Context, email, bookID string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Where("book_id = ?", bookID).
		Delete(&model.CartItem{}).Error
}

func (r *cartRepoImpl) RemoveBooks(ctx context.Context, email string, bookIDs []string) error {
	if len(bookIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Where("book_id IN ?", bookIDs).
		Delete(&model.CartItem{}).Error
}

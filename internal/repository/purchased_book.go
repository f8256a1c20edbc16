package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
)

type PurchasedBookRepository interface {
	// CreateIfAbsent inserts the ownership record unless the
	// (purchaseId, userId, bookId) triple already exists. Safe to call
	// concurrently with identical input.
	CreateIfAbsent(ctx context.Context, record *model.PurchasedBook) error
	ExistsByUserAndBook(ctx context.Context, userID, bookID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*model.PurchasedBook, error)
	ListByPurchase(ctx context.Context, purchaseID string) ([]*model.PurchasedBook, error)
}

type purchasedBookRepoImpl struct {
	db *gorm.DB
}

func NewPurchasedBookRepository(db *gorm.DB) PurchasedBookRepository {
	return &purchasedBookRepoImpl{
		db: db,
	}
}

func (r *purchasedBookRepoImpl) CreateIfAbsent(ctx context.Context, record *model.PurchasedBook) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "purchase_id"}, {Name: "user_id"}, {Name: "book_id"}},
		DoNothing: true,
	}).Create(record).Error
}

func (r *purchasedBookRepoImpl) ExistsByUserAndBook(ctx context.Context, userID, bookID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PurchasedBook{}).
		Where("user_id = ?", userID).
		Where("book_id = ?", bookID).
		Count(&count).Error

	return count > 0, err
}

func (r *purchasedBookRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.PurchasedBook, error) {
	var records []*model.PurchasedBook
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).
		Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *purchasedBookRepoImpl) ListByPurchase(ctx context.Context, purchaseID string) ([]*model.PurchasedBook, error) {
	var records []*model.PurchasedBook
	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Find(&records).
		Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *model.Purchase) error
	FindByID(ctx context.Context, purchaseID string) (*model.Purchase, error)
	// MarkStatus applies from → to for the given purchase. The status guard
	// makes the write a no-op when the purchase already left `from`, so
	// replayed callbacks can never re-transition a settled purchase.
	MarkStatus(ctx context.Context, purchaseID string, from, to model.TransactionStatus) error
	ListByUser(ctx context.Context, userID string) ([]*model.Purchase, error)
}

type purchaseRepoImpl struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepoImpl{
		db: db,
	}
}

func (r *purchaseRepoImpl) Create(ctx context.Context, purchase *model.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepoImpl) FindByID(ctx context.Context, purchaseID string) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.WithContext(ctx).
		Where("id = ?", purchaseID).
		First(&purchase).Error

	if err != nil {
		return nil, err
	}

	return &purchase, nil
}

func (r *purchaseRepoImpl) MarkStatus(ctx context.Context, purchaseID string, from, to model.TransactionStatus) error {
	if !from.CanTransitionTo(to) {
		return nil
	}

	return r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("id = ? AND transaction_status = ?", purchaseID, from).
		Update("transaction_status", to).Error
}

func (r *purchaseRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Purchase, error) {
	var purchases []*model.Purchase
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).
		Error

	if err != nil {
		return nil, err
	}

	return purchases, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/config"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/dto"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/repository"
)

// PurchaseService owns the settlement workflow: checkout creates a pending
// purchase and hands the buyer a bank redirect URL; Complete is invoked by
// the bank's browser redirect and settles the purchase idempotently.
type PurchaseService interface {
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	Complete(ctx context.Context, purchaseID, status string, bookIDs []string) error
	CheckPurchased(ctx context.Context, email, bookID string) (bool, error)
	OwnedBooks(ctx context.Context, email string) (*dto.OwnedBooksResponse, error)
	History(ctx context.Context, email string) (*dto.HistoryResponse, error)
}

type purchaseServiceImpl struct {
	bank              config.Bank
	userRepo          repository.UserRepository
	bookRepo          repository.BookRepository
	purchaseRepo      repository.PurchaseRepository
	purchasedBookRepo repository.PurchasedBookRepository
	cartRepo          repository.CartRepository
}

func NewPurchaseService(
	bank config.Bank,
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
	purchaseRepo repository.PurchaseRepository,
	purchasedBookRepo repository.PurchasedBookRepository,
	cartRepo repository.CartRepository,
) PurchaseService {
	return &purchaseServiceImpl{
		bank:              bank,
		userRepo:          userRepo,
		bookRepo:          bookRepo,
		purchaseRepo:      purchaseRepo,
		purchasedBookRepo: purchasedBookRepo,
		cartRepo:          cartRepo,
	}
}

func (s *purchaseServiceImpl) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if req.Email == "" || len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	bookIDs := make([]string, len(req.Items))
	total := decimal.Zero
	for i, item := range req.Items {
		bookIDs[i] = item.BookID

		// Unparsable prices are dropped from the sum; the checkout only
		// fails when that drives the total to zero.
		if price, ok := sanitizePrice(item.Price); ok {
			total = total.Add(price)
		}
	}

	if !total.IsPositive() {
		return nil, ErrInvalidPrice
	}

	purchase := &model.Purchase{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		PriceAtPurchase:   total,
		TransactionStatus: model.StatusPending,
		CreatedAt:         time.Now(),
	}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	return &dto.CheckoutResponse{
		Message:     "Purchase initiated",
		RedirectURL: s.bankRedirectURL(total, purchase.ID, bookIDs, req.Email),
	}, nil
}

func (s *purchaseServiceImpl) bankRedirectURL(total decimal.Decimal, purchaseID string, bookIDs []string, email string) string {
	return fmt.Sprintf("%s/api/transaction?amount=%s&purchaseId=%s&books=%s&email=%s&toAccount=%s",
		s.bank.BaseURL,
		total.String(),
		purchaseID,
		strings.Join(bookIDs, ","),
		url.QueryEscape(email),
		s.bank.AccountNo,
	)
}

// Complete applies the settlement callback. The bank reaches this through a
// browser redirect, so the signal may arrive more than once and in any
// order; every step checks for prior effect before acting, which also makes
// a crash between steps recoverable by re-running the callback.
func (s *purchaseServiceImpl) Complete(ctx context.Context, purchaseID, status string, bookIDs []string) error {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPurchaseNotFound
		}
		return fmt.Errorf("find purchase: %w", err)
	}

	if model.TransactionStatus(status) != model.StatusCompleted {
		// Anything but a success signal settles the purchase as failed.
		// The status guard keeps a late failure signal from demoting a
		// purchase that already completed.
		if err := s.purchaseRepo.MarkStatus(ctx, purchaseID, model.StatusPending, model.StatusFailed); err != nil {
			return fmt.Errorf("mark purchase failed: %w", err)
		}
		return nil
	}

	if !purchase.TransactionStatus.Terminal() {
		if err := s.purchaseRepo.MarkStatus(ctx, purchaseID, model.StatusPending, model.StatusCompleted); err != nil {
			return fmt.Errorf("mark purchase completed: %w", err)
		}
	}

	for _, bookID := range bookIDs {
		record := &model.PurchasedBook{
			PurchaseID: purchaseID,
			UserID:     purchase.UserID,
			BookID:     bookID,
			CreatedAt:  time.Now(),
		}
		if err := s.purchasedBookRepo.CreateIfAbsent(ctx, record); err != nil {
			return fmt.Errorf("record purchased book %s: %w", bookID, err)
		}
	}

	if len(bookIDs) > 0 {
		user, err := s.userRepo.FindByID(ctx, purchase.UserID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// buyer account gone, no cart left to reconcile
		case err != nil:
			return fmt.Errorf("find buyer: %w", err)
		default:
			if err := s.cartRepo.RemoveBooks(ctx, user.Email, bookIDs); err != nil {
				return fmt.Errorf("clear settled cart entries: %w", err)
			}
		}
	}

	return nil
}

func (s *purchaseServiceImpl) CheckPurchased(ctx context.Context, email, bookID string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// unknown buyer reads as "not purchased" for the UI
			return false, nil
		}
		return false, fmt.Errorf("find user: %w", err)
	}

	return s.purchasedBookRepo.ExistsByUserAndBook(ctx, user.ID, bookID)
}

func (s *purchaseServiceImpl) OwnedBooks(ctx context.Context, email string) (*dto.OwnedBooksResponse, error) {
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

	books, err := s.joinBooks(ctx, records, true)
	if err != nil {
		return nil, err
	}

	return &dto.OwnedBooksResponse{
		User:  dto.UserInfo{Name: user.Name, Email: user.Email},
		Books: books,
	}, nil
}

func (s *purchaseServiceImpl) History(ctx context.Context, email string) (*dto.HistoryResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	purchases, err := s.purchaseRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	detailed := make([]*dto.PurchaseInfo, 0, len(purchases))
	for _, purchase := range purchases {
		// Books settled under this specific purchase id only; the buyer's
		// wider ownership ledger must not bleed into other purchases.
		records, err := s.purchasedBookRepo.ListByPurchase(ctx, purchase.ID)
		if err != nil {
			return nil, fmt.Errorf("list books for purchase %s: %w", purchase.ID, err)
		}

		books, err := s.joinBooks(ctx, records, false)
		if err != nil {
			return nil, err
		}

		detailed = append(detailed, &dto.PurchaseInfo{
			ID:                purchase.ID,
			PriceAtPurchase:   purchase.PriceAtPurchase.String(),
			TransactionStatus: string(purchase.TransactionStatus),
			CreatedAt:         purchase.CreatedAt,
			Books:             books,
		})
	}

	return &dto.HistoryResponse{Purchases: detailed}, nil
}

// joinBooks resolves each ownership record to its book's display
// attributes. Records whose book left the catalog are skipped.
func (s *purchaseServiceImpl) joinBooks(ctx context.Context, records []*model.PurchasedBook, detailed bool) ([]*dto.BookInfo, error) {
	bookIDs := make([]string, len(records))
	for i, record := range records {
		bookIDs[i] = record.BookID
	}

	infos := make([]*dto.BookInfo, 0, len(records))
	if len(records) == 0 {
		return infos, nil
	}

	books, err := s.bookRepo.FindMany(ctx, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}

	byID := make(map[string]*model.Book, len(books))
	for _, book := range books {
		byID[book.ID] = book
	}

	for _, record := range records {
		book, ok := byID[record.BookID]
		if !ok {
			continue
		}

		info := &dto.BookInfo{
			ID:     book.ID,
			Title:  book.Title,
			Author: book.Author,
			Image:  book.Image,
		}
		if detailed {
			info.Description = book.Description
			info.Price = book.Price
		}
		infos = append(infos, info)
	}

	return infos, nil
}

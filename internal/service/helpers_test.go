package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/config"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// named shared-cache DSN so every pooled connection sees the same
	// in-memory database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Book{},
		&model.Purchase{},
		&model.PurchasedBook{},
		&model.CartItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

type testEnv struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	bookRepo    repository.BookRepository
	purchases   repository.PurchaseRepository
	records     repository.PurchasedBookRepository
	carts       repository.CartRepository
	purchaseSvc PurchaseService
	cartSvc     CartService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	purchases := repository.NewPurchaseRepository(db)
	records := repository.NewPurchasedBookRepository(db)
	carts := repository.NewCartRepository(db)

	bank := config.Bank{BaseURL: "http://bank.test", AccountNo: "999000"}

	return &testEnv{
		db:          db,
		userRepo:    userRepo,
		bookRepo:    bookRepo,
		purchases:   purchases,
		records:     records,
		carts:       carts,
		purchaseSvc: NewPurchaseService(bank, userRepo, bookRepo, purchases, records, carts),
		cartSvc:     NewCartService(bookRepo, carts),
	}
}

func (e *testEnv) seedUser(t *testing.T, name, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	if err := e.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return user
}

func (e *testEnv) seedBook(t *testing.T, id, title, price string) *model.Book {
	t.Helper()

	book := &model.Book{
		ID:        id,
		Title:     title,
		Author:    "Author of " + title,
		Price:     price,
		Image:     "/uploads/" + id + ".jpg",
		CreatedAt: time.Now(),
	}
	if err := e.bookRepo.Create(context.Background(), book); err != nil {
		t.Fatalf("seed book: %v", err)
	}

	return book
}

func (e *testEnv) seedCartItem(t *testing.T, email, bookID string) {
	t.Helper()

	item := &model.CartItem{
		Email:   email,
		BookID:  bookID,
		Title:   "Cart " + bookID,
		Price:   decimal.NewFromInt(5),
		AddedAt: time.Now(),
	}
	if err := e.carts.Add(context.Background(), item); err != nil {
		t.Fatalf("seed cart item: %v", err)
	}
}

func (e *testEnv) purchaseByUser(t *testing.T, userID string) *model.Purchase {
	t.Helper()

	list, err := e.purchases.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list purchases: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected exactly one purchase, got %d", len(list))
	}

	return list[0]
}

func (e *testEnv) countPurchases(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := e.db.Model(&model.Purchase{}).Count(&count).Error; err != nil {
		t.Fatalf("count purchases: %v", err)
	}

	return count
}

func (e *testEnv) countRecords(t *testing.T, purchaseID string) int64 {
	t.Helper()

	var count int64
	if err := e.db.Model(&model.PurchasedBook{}).
		Where("purchase_id = ?", purchaseID).
		Count(&count).Error; err != nil {
		t.Fatalf("count purchased books: %v", err)
	}

	return count
}

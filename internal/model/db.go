package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36;not null"`
	Name         string `gorm:"size:128;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

type Book struct {
	ID          string `gorm:"primaryKey;size:36;not null"`
	Title       string `gorm:"size:255;index;not null"`
	Author      string `gorm:"size:255"`
	Description string
	Price       string `gorm:"size:32"` // display price, may carry a currency symbol
	Image       string `gorm:"size:255"`
	CreatedAt   time.Time
}

type Purchase struct {
	ID string `gorm:"primaryKey;size:36;not null"`
	// FK → user.id, resolved from the buyer email at checkout
	UserID            string            `gorm:"size:36;index;not null"`
	PriceAtPurchase   decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	TransactionStatus TransactionStatus `gorm:"size:16;index;not null;default:pending"`
	CreatedAt         time.Time
}

// PurchasedBook is the permanent ownership ledger. The composite key makes
// duplicate settlement callbacks collapse into a single row.
type PurchasedBook struct {
	PurchaseID string `gorm:"primaryKey;size:36;not null"`
	UserID     string `gorm:"primaryKey;size:36;index;not null"`
	BookID     string `gorm:"primaryKey;size:36;index;not null"`
	CreatedAt  time.Time
}

// CartItem snapshots the book's display attributes at add time so the cart
// survives catalog edits.
type CartItem struct {
	ID      uint            `gorm:"primaryKey"`
	Email   string          `gorm:"size:255;uniqueIndex:idx_cart_email_book;not null"`
	BookID  string          `gorm:"size:36;uniqueIndex:idx_cart_email_book;not null"`
	Title   string          `gorm:"size:255"`
	Author  string          `gorm:"size:255"`
	Price   decimal.Decimal `gorm:"type:decimal(12,2)"`
	Image   string          `gorm:"size:255"`
	AddedAt time.Time
}

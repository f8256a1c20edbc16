package dto

import "time"

type CheckoutItem struct {
	BookID string `json:"bookId"`
	Price  string `json:"price"`
}

type CheckoutRequest struct {
	Email string          `json:"email"`
	Items []*CheckoutItem `json:"items"`
}

type CheckoutResponse struct {
	Message     string `json:"message"`
	RedirectURL string `json:"redirectURL"`
}

type CheckRequest struct {
	Email  string `json:"email"`
	BookID string `json:"bookId"`
}

type CheckResponse struct {
	Purchased bool `json:"purchased"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookInfo struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

type OwnedBooksResponse struct {
	User  UserInfo    `json:"user"`
	Books []*BookInfo `json:"books"`
}

type PurchaseInfo struct {
	ID                string      `json:"_id"`
	PriceAtPurchase   string      `json:"priceAtPurchase"`
	TransactionStatus string      `json:"transactionStatus"`
	CreatedAt         time.Time   `json:"createdAt"`
	Books             []*BookInfo `json:"books"`
}

type HistoryResponse struct {
	Purchases []*PurchaseInfo `json:"purchases"`
}

type ProfileResponse struct {
	User           UserInfo    `json:"user"`
	PurchasedBooks []*BookInfo `json:"purchasedBooks"`
}

type CartMutationRequest struct {
	Email  string `json:"email"`
	BookID string `json:"bookId"`
}

type CartItemInfo struct {
	BookID string `json:"bookId"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Price  string `json:"price"`
	Image  string `json:"image"`
}

type CartResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Items   []*CartItemInfo `json:"items"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

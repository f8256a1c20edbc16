package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/config"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/handler"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/model"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/repository"
	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/service"
)

const testFrontend = "http://frontend.test"

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

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

	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	purchasedBookRepo := repository.NewPurchasedBookRepository(db)
	cartRepo := repository.NewCartRepository(db)

	bank := config.Bank{BaseURL: "http://bank.test", AccountNo: "999000"}

	srv := NewServer(
		Config{UploadsDir: t.TempDir(), JWTSecret: "test-secret"},
		handler.NewAuthHandler(service.NewAuthService(userRepo, "test-secret", time.Hour)),
		handler.NewBookHandler(service.NewBookService(bookRepo)),
		handler.NewUserHandler(service.NewUserService(userRepo, bookRepo, purchasedBookRepo)),
		handler.NewCartHandler(service.NewCartService(bookRepo, cartRepo)),
		handler.NewPurchaseHandler(
			service.NewPurchaseService(bank, userRepo, bookRepo, purchaseRepo, purchasedBookRepo, cartRepo),
			testFrontend,
		),
	)

	ts := httptest.NewServer(srv.Echo())
	t.Cleanup(ts.Close)

	return ts, db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return user
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}

	return resp
}

// client that surfaces redirects instead of following them
var noRedirect = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCheckoutEndpoint(t *testing.T) {
	ts, db := newTestServer(t)
	seedUser(t, db, "a@x.com")

	resp := postJSON(t, ts.URL+"/api/purchase", map[string]any{
		"email": "a@x.com",
		"items": []map[string]string{
			{"bookId": "B1", "price": "$12.50"},
			{"bookId": "B2", "price": "$7.25"},
		},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Message     string `json:"message"`
		RedirectURL string `json:"redirectURL"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "Purchase initiated" {
		t.Errorf("message = %q", out.Message)
	}
	for _, part := range []string{
		"http://bank.test/api/transaction?",
		"amount=19.75",
		"books=B1,B2",
		"email=a%40x.com",
		"toAccount=999000",
	} {
		if !strings.Contains(out.RedirectURL, part) {
			t.Errorf("redirectURL %q missing %q", out.RedirectURL, part)
		}
	}
}

func TestCheckoutEndpointRejections(t *testing.T) {
	ts, db := newTestServer(t)
	seedUser(t, db, "a@x.com")

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name:       "empty items",
			body:       map[string]any{"email": "a@x.com", "items": []map[string]string{}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown buyer",
			body: map[string]any{
				"email": "ghost@x.com",
				"items": []map[string]string{{"bookId": "B1", "price": "1.00"}},
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "zero total",
			body: map[string]any{
				"email": "a@x.com",
				"items": []map[string]string{{"bookId": "B1", "price": "free"}},
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/purchase", tt.body)
			resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestCompleteCallbackRedirects(t *testing.T) {
	ts, db := newTestServer(t)
	user := seedUser(t, db, "a@x.com")

	purchase := &model.Purchase{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		TransactionStatus: model.StatusPending,
		CreatedAt:         time.Now(),
	}
	if err := db.Create(purchase).Error; err != nil {
		t.Fatalf("seed purchase: %v", err)
	}

	url := fmt.Sprintf("%s/api/purchase/complete?purchaseId=%s&status=completed&books=B1,B2", ts.URL, purchase.ID)
	resp, err := noRedirect.Get(url)
	if err != nil {
		t.Fatalf("callback: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != testFrontend+"/profile" {
		t.Errorf("location = %q, want %s/profile", loc, testFrontend)
	}

	var count int64
	if err := db.Model(&model.PurchasedBook{}).Where("purchase_id = ?", purchase.ID).Count(&count).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 2 {
		t.Errorf("records = %d, want 2", count)
	}

	// replaying the redirect is safe
	resp, err = noRedirect.Get(url)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("replay status = %d, want 302", resp.StatusCode)
	}
}

func TestCompleteCallbackMalformed(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := noRedirect.Get(ts.URL + "/api/purchase/complete?status=completed")
	if err != nil {
		t.Fatalf("callback: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing purchaseId status = %d, want 400", resp.StatusCode)
	}

	resp, err = noRedirect.Get(ts.URL + "/api/purchase/complete?purchaseId=nope&status=completed")
	if err != nil {
		t.Fatalf("callback: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown purchase status = %d, want 404", resp.StatusCode)
	}
}

func TestCheckEndpointSoftFail(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/purchase/check", map[string]string{
		"email":  "ghost@x.com",
		"bookId": "B1",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Purchased bool `json:"purchased"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Purchased {
		t.Error("unknown buyer reported as purchased")
	}
}

func TestBookCreateRequiresAuth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/books", map[string]string{"title": "New Book"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRegisterLoginAndCreateBook(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "a@x.com",
		"password": "hunter22",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register status = %d, want 200", resp.StatusCode)
	}
	var auth struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()

	raw, _ := json.Marshal(map[string]string{"title": "New Book", "author": "Alice", "price": "$5.00"})
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, ts.URL+"/api/books", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+auth.Token)

	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("create book: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create book status = %d, want 200", resp.StatusCode)
	}
}

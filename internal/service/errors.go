package service

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmptyItems         = errors.New("email and items are required")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrUserNotFound       = errors.New("user not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

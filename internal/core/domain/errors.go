package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
)

// Catalog errors
var (
	ErrPhoneNotFound      = errors.New("phone not found")
	ErrBrandNotFound      = errors.New("brand not found")
	ErrBrandAlreadyExists = errors.New("brand already exists")
)

// Order errors
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderWithoutPhones = errors.New("order requires at least one phone")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

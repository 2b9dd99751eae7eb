// Package apperr holds the named error values the service layer fails with.
// The HTTP boundary translates each one into a fixed status and message;
// anything unrecognized surfaces as an internal server error.
package apperr

import "errors"

var (
	ErrValidation       = errors.New("invalid request data")
	ErrCategoryNotFound = errors.New("category not found")
	ErrMenuNotFound     = errors.New("menu not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrPriceBelowZero   = errors.New("menu price cannot be less than zero")
	ErrOwnerOnly        = errors.New("only owners can use this api")
	ErrCustomerOnly     = errors.New("only customers can use this api")
	ErrLoginRequired    = errors.New("login required")
)

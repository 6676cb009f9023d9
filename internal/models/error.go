package models

import "errors"

var (
	ErrMissingSignature   = errors.New("signature header is missing")
	ErrInvalidSignature   = errors.New("signature mismatch")
	ErrNoCustomer         = errors.New("order has no customer")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrPointsUpdateFailed = errors.New("points update failed")
)

package domain

import "errors"

// Validation errors: rejected before any state change.
var (
	ErrInvalidRentalDays = errors.New("rental days must be positive")
	ErrUnknownCarType    = errors.New("unknown car type")
	ErrUnknownTier       = errors.New("unknown membership tier")
	ErrUnknownFeePolicy  = errors.New("unknown fee policy")
)

// Conflict errors: legitimate state conflicts, surface as "try again".
var (
	ErrCarAlreadyRented      = errors.New("car already has an active rental")
	ErrCarUnavailable        = errors.New("car is not available")
	ErrRentalAlreadyReturned = errors.New("rental already returned")
	ErrLoginIDTaken          = errors.New("login id already registered")
	ErrPhoneNumberTaken      = errors.New("phone number already registered")
)

// Not-found errors: the supplied identifier does not resolve.
var (
	ErrCarNotFound     = errors.New("car not found")
	ErrRentalNotFound  = errors.New("rental not found")
	ErrAccountNotFound = errors.New("account not found")
)

// ErrAlreadyTopTier is non-fatal during return settlement: the return
// succeeds, the upgrade is skipped.
var ErrAlreadyTopTier = errors.New("membership already at top tier")

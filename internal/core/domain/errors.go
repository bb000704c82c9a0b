package domain

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrBikeNotFound          = errors.New("bike not found")
	ErrUnavailableBike       = errors.New("unavailable bike")
	ErrYouCantReturnThisBike = errors.New("rent not found, you cant return this bike")

	ErrEmailRegistered   = errors.New("email already registered")
	ErrBikeRegistered    = errors.New("bike already registered")
	ErrUserHasActiveRent = errors.New("user has an active rent")

	ErrValidation = errors.New("validation error")
)

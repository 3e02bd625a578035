package domain

import "errors"

// Domain errors for Product construction
var (
	// ErrInvalidArgument indicates that the description, cost price or profit
	// margin given to a Product constructor failed validation.
	ErrInvalidArgument = errors.New("invalid values for product data")
)

// Domain errors for Money value object
var (
	// ErrNonFiniteAmount indicates an attempt to build Money from NaN or an infinity.
	ErrNonFiniteAmount = errors.New("amount must be a finite number")
)

// Domain errors for currency formatting
var (
	// ErrInvalidLocale indicates the locale is not a well-formed BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")
)

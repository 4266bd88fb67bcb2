package domain

import "errors"

var (
	ErrOutOfBounds   = errors.New("value out of bounds")
	ErrUnparsable    = errors.New("value is not a number")
	ErrNotInteger    = errors.New("value is not a whole number")
	ErrInvalidDomain = errors.New("parameter outside the domain of the projection")
	ErrOverflow      = errors.New("projection exceeds floating point range")
	ErrUnknownField  = errors.New("unknown field")
)

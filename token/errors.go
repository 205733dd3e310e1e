package token

import "errors"

var (
	ErrInvalidAmount         = errors.New("InvalidAmount")
	ErrInsufficientBalance   = errors.New("InsufficientBalance")
	ErrInsufficientAllowance = errors.New("InsufficientAllowance")
	ErrNotMinter             = errors.New("NotMinter")
)

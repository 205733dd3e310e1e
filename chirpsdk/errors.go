package chirpsdk

import "errors"

var (
	// ErrReentrantCall is returned by EnterProtected while another
	// protected operation holds the guard.
	ErrReentrantCall = errors.New("ReentrantCall")

	// ErrReadOnlyTx is returned when a write is attempted inside a
	// read-only transaction.
	ErrReadOnlyTx = errors.New("ReadOnlyTransaction")
)

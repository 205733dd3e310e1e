package presale

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyInitialized = errors.New("AlreadyInitialized")
	ErrNotInitialized     = errors.New("NotInitialized")
	ErrTokenAlreadySet    = errors.New("TokenAlreadySet")
	ErrTokenNotSet        = errors.New("TokenNotSet")
	ErrContractPaused     = errors.New("ContractPaused")
	ErrContractNotPaused  = errors.New("ContractNotPaused")
	ErrNoUsers            = errors.New("NoUsers")
	ErrNonPositiveAmount  = errors.New("NonPositiveAmount")
	ErrRoundTargetNotSet  = errors.New("RoundTargetNotSet")
)

type CustomError struct {
	Code    int
	Message string
	Err     error
}

func ErrInvalidAddress(address string) error {
	return fmt.Errorf("InvalidAddress: %s", address)
}

func ErrInvalidRound(round uint8) error {
	return fmt.Errorf("InvalidRound: %d", round)
}

func ErrInvalidStateTransition(project uint64, state string) error {
	return fmt.Errorf("InvalidStateTransition for project %d: current state %s", project, state)
}

func ErrRoundClosed(project uint64, round uint8, state string) error {
	return fmt.Errorf("RoundClosed for project %d round %d: state %s", project, round, state)
}

func ErrTargetExceeded(project uint64) error {
	return fmt.Errorf("RoundTargetExceeded for project %d", project)
}

func ErrTargetBelowInvestment(project uint64) error {
	return fmt.Errorf("RoundTargetBelowInvestment for project %d", project)
}

func ErrAllocationExceedsTarget(project uint64) error {
	return fmt.Errorf("AllocationExceedsTarget for project %d", project)
}

func ErrCapExceeded(project uint64, user string) error {
	return fmt.Errorf("UserCapExceeded for project %d and user %s", project, user)
}

func ErrNoAllocationGranted(project uint64, user string) error {
	return fmt.Errorf("NoAllocationGranted for project %d and user %s", project, user)
}

func ErrNothingToRemove(project uint64, user string) error {
	return fmt.Errorf("NothingToRemove for project %d and user %s", project, user)
}

func ErrInsufficientAllowance(holder, allowance, needed string) error {
	return fmt.Errorf("InsufficientAllowance: %s approved %s, need %s", holder, allowance, needed)
}

func ErrInsufficientBalance(holder, balance, needed string) error {
	return fmt.Errorf("InsufficientBalance: %s holds %s, need %s", holder, balance, needed)
}

func ErrArraysLengthMismatch(length1, length2 int) error {
	return fmt.Errorf("ArraysLengthMismatch: length1: %d, length2: %d", length1, length2)
}

func InvalidAmountError(entity, value string) error {
	return fmt.Errorf("InvalidAmount for %s with value %s", entity, value)
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func NewCustomError(code int, message string, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

package vesting

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyInitialized       = errors.New("AlreadyInitialized")
	ErrNotInitialized           = errors.New("NotInitialized")
	ErrTokenAlreadySet          = errors.New("TokenAlreadySet")
	ErrTokenNotSet              = errors.New("TokenNotSet")
	ErrCannotBeZero             = errors.New("CannotBeZero")
	ErrNonPositiveVestingAmount = errors.New("NonPositiveVestingAmount")
	ErrNothingToClaim           = errors.New("NothingToClaim")
	ErrMerkleRootNotSet         = errors.New("MerkleRootNotSet")
	ErrInvalidMerkleProof       = errors.New("InvalidMerkleProof")
	ErrContractPaused           = errors.New("ContractPaused")
	ErrContractNotPaused        = errors.New("ContractNotPaused")
	ErrNoUsers                  = errors.New("NoUsers")
)

type CustomError struct {
	Code    int
	Message string
	Err     error
}

func ErrInvalidAddress(address string) error {
	return fmt.Errorf("InvalidAddress: %s", address)
}

func ErrInvalidPercentage(percentage uint64) error {
	return fmt.Errorf("InvalidPercentage: %d", percentage)
}

func ErrAllocationExceedsLimit(project, newTotal uint64) error {
	return fmt.Errorf("AllocationExceedsLimit for project %d: total %d exceeds 100", project, newTotal)
}

func ErrInvalidProject(project uint64) error {
	return fmt.Errorf("InvalidProject: %d", project)
}

func ErrRuleIndexOutOfRange(project uint64, index int) error {
	return fmt.Errorf("RuleIndexOutOfRange for project %d: index %d", project, index)
}

func ErrMalformedRule(ruleID uint64) error {
	return fmt.Errorf("MalformedRule: rule %d has an invalid amount or schedule", ruleID)
}

func ErrClaimExceedsEntitlement(project uint64, user string) error {
	return fmt.Errorf("ClaimExceedsEntitlement for project %d and user %s", project, user)
}

func ErrNoAllocation(project uint64, user string) error {
	return fmt.Errorf("NoAllocation for project %d and user %s", project, user)
}

func ErrPoolAlreadyRegistered(pool string) error {
	return fmt.Errorf("PoolAlreadyRegistered: %s", pool)
}

func ErrInvalidMerkleRoot(root string) error {
	return fmt.Errorf("InvalidMerkleRoot: %s", root)
}

func ErrInsufficientAllowance(holder, allowance, needed string) error {
	return fmt.Errorf("InsufficientAllowance: %s approved %s, need %s", holder, allowance, needed)
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

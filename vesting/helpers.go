package vesting

import (
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strconv"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

func GetUserId(ctx chirpsdk.TransactionContextInterface) (string, error) {
	userId, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", fmt.Errorf("failed to read clientID: %v", err)
	}

	if !IsUserAddressValid(userId) {
		return "", ErrInvalidAddress(userId)
	}

	return userId, nil
}

// IsUserAddressValid reports whether address names a real participant. The
// zero address is never a participant.
func IsUserAddressValid(address string) bool {
	if address == "" || address == zeroAddress {
		return false
	}

	isValid, _ := regexp.MatchString(userAddressRegex, address)
	return isValid
}

func IsMerkleRootValid(root string) bool {
	if root == "" {
		return false
	}

	isValid, _ := regexp.MatchString(merkleRootRegex, root)
	return isValid
}

// IsSignerAdmin fails unless the invocation signer is the stored
// administrator.
func IsSignerAdmin(ctx chirpsdk.TransactionContextInterface) error {
	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	admin, err := GetAdmin(ctx)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to get admin", err)
	}
	if admin == "" {
		return ErrNotInitialized
	}

	if signer != admin {
		return NewCustomError(http.StatusForbidden, fmt.Sprintf("signer %s is not the administrator", signer), nil)
	}

	return nil
}

func requireNotPaused(ctx chirpsdk.TransactionContextInterface) error {
	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return ErrContractPaused
	}
	return nil
}

// txTime is the invocation's timestamp in unix seconds. All vesting math
// reads time from here, never from the wall clock, so replays stay
// deterministic.
func txTime(ctx chirpsdk.TransactionContextInterface) (uint64, error) {
	ts, err := ctx.GetTxTimestamp()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction timestamp: %v", err)
	}
	return uint64(ts.Seconds), nil
}

// parsePositiveAmount parses a decimal token amount that must be > 0.
func parsePositiveAmount(entity, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, InvalidAmountError(entity, value)
	}
	if amount.Sign() <= 0 {
		return nil, ErrNonPositiveVestingAmount
	}
	return amount, nil
}

// parseClaimedAmount parses a stored claim counter; absent counters read as
// zero.
func parseClaimedAmount(value string) (*big.Int, error) {
	if value == "" {
		return big.NewInt(0), nil
	}

	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, InvalidAmountError("claimedAmount", value)
	}
	return amount, nil
}

func ruleClaimKey(ruleID uint64) string {
	return strconv.FormatUint(ruleID, 10)
}

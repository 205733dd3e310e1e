package presale

import (
	"fmt"
	"math/big"
	"net/http"
	"regexp"

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

func IsUserAddressValid(address string) bool {
	if address == "" || address == zeroAddress {
		return false
	}

	isValid, _ := regexp.MatchString(userAddressRegex, address)
	return isValid
}

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

func validRound(round uint8) error {
	if round != Round1 && round != Round2 {
		return ErrInvalidRound(round)
	}
	return nil
}

// parsePositiveAmount parses a decimal token amount that must be > 0.
func parsePositiveAmount(entity, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, InvalidAmountError(entity, value)
	}
	if amount.Sign() <= 0 {
		return nil, ErrNonPositiveAmount
	}
	return amount, nil
}

// parseStoredAmount parses a stored counter; absent counters read as zero.
func parseStoredAmount(value string) (*big.Int, error) {
	if value == "" {
		return big.NewInt(0), nil
	}

	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, InvalidAmountError("storedAmount", value)
	}
	return amount, nil
}

package presale

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

// Round carries one round's running totals. In round 1 TotalAllocation is
// the sum of all per-user caps; round 2 uses the uniform MaxAllocationPerUser
// instead and leaves TotalAllocation at zero.
type Round struct {
	TotalAllocation      string `json:"totalAllocation"`
	TotalInvestment      string `json:"totalInvestment"`
	MaxAllocationPerUser string `json:"maxAllocationPerUser"`
}

func stateKey(project uint64) string {
	return fmt.Sprintf("presalestate_%d", project)
}

func targetKey(project uint64) string {
	return fmt.Sprintf("presaletarget_%d", project)
}

func roundKey(project uint64, round uint8) string {
	return fmt.Sprintf("presaleround_%d_%d", project, round)
}

func capKey(project uint64, round uint8, user string) string {
	return fmt.Sprintf("presalecap_%d_%d_%s", project, round, user)
}

func investmentKey(project uint64, round uint8, user string) string {
	return fmt.Sprintf("presaleinvestment_%d_%d_%s", project, round, user)
}

// GetRoundState returns the project's phase; a project never touched reads
// as Round1Open.
func GetRoundState(ctx chirpsdk.TransactionContextInterface, project uint64) (string, error) {
	stateAsBytes, err := ctx.GetState(stateKey(project))
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get round state with Key %s", stateKey(project)), err)
	}
	if stateAsBytes == nil {
		return StateRound1Open, nil
	}

	return string(stateAsBytes), nil
}

func setRoundState(ctx chirpsdk.TransactionContextInterface, project uint64, state string) error {
	err := ctx.PutState(stateKey(project), []byte(state))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set round state", err)
	}
	return nil
}

// GetRound1Target returns the round-1 target as a decimal string; an unset
// target reads as "0".
func GetRound1Target(ctx chirpsdk.TransactionContextInterface, project uint64) (string, error) {
	targetAsBytes, err := ctx.GetState(targetKey(project))
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get round target with Key %s", targetKey(project)), err)
	}
	if targetAsBytes == nil {
		return "0", nil
	}

	return string(targetAsBytes), nil
}

func setRound1Target(ctx chirpsdk.TransactionContextInterface, project uint64, target string) error {
	err := ctx.PutState(targetKey(project), []byte(target))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set round target", err)
	}
	return nil
}

// GetRound returns the round's counters; an untouched round reads as all
// zeroes.
func GetRound(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8) (*Round, error) {
	roundAsBytes, err := ctx.GetState(roundKey(project, round))
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get round with Key %s", roundKey(project, round)), err)
	}
	if roundAsBytes == nil {
		return &Round{TotalAllocation: "0", TotalInvestment: "0", MaxAllocationPerUser: "0"}, nil
	}

	var record Round
	err = json.Unmarshal(roundAsBytes, &record)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal round", err)
	}

	return &record, nil
}

func SetRound(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, record *Round) error {
	roundAsBytes, err := json.Marshal(record)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal round", err)
	}

	err = ctx.PutState(roundKey(project, round), roundAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set round", err)
	}

	return nil
}

func getStoredAmount(ctx chirpsdk.TransactionContextInterface, key string) (string, error) {
	amountAsBytes, err := ctx.GetState(key)
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get amount with Key %s", key), err)
	}
	if amountAsBytes == nil {
		return "0", nil
	}

	return string(amountAsBytes), nil
}

func getCap(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user string) (string, error) {
	return getStoredAmount(ctx, capKey(project, round, user))
}

func setCap(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user, amount string) error {
	err := ctx.PutState(capKey(project, round, user), []byte(amount))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set user cap", err)
	}
	return nil
}

func delCap(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user string) error {
	err := ctx.DelState(capKey(project, round, user))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to delete user cap", err)
	}
	return nil
}

func getInvestment(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user string) (string, error) {
	return getStoredAmount(ctx, investmentKey(project, round, user))
}

func setInvestment(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user, amount string) error {
	err := ctx.PutState(investmentKey(project, round, user), []byte(amount))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set user investment", err)
	}
	return nil
}

func delInvestment(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user string) error {
	err := ctx.DelState(investmentKey(project, round, user))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to delete user investment", err)
	}
	return nil
}

func GetAdmin(ctx chirpsdk.TransactionContextInterface) (string, error) {
	adminAsBytes, err := ctx.GetState(adminKey)
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, "failed to get admin", err)
	}
	return string(adminAsBytes), nil
}

func setAdmin(ctx chirpsdk.TransactionContextInterface, admin string) error {
	err := ctx.PutState(adminKey, []byte(admin))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set admin", err)
	}
	return nil
}

func GetTokenAddress(ctx chirpsdk.TransactionContextInterface) (string, error) {
	tokenAsBytes, err := ctx.GetState(tokenAddressKey)
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, "failed to get token address", err)
	}
	return string(tokenAsBytes), nil
}

func setTokenAddress(ctx chirpsdk.TransactionContextInterface, tokenAddress string) error {
	err := ctx.PutState(tokenAddressKey, []byte(tokenAddress))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set token address", err)
	}
	return nil
}

func IsPaused(ctx chirpsdk.TransactionContextInterface) (bool, error) {
	pausedAsBytes, err := ctx.GetState(pausedKey)
	if err != nil {
		return false, NewCustomError(http.StatusInternalServerError, "failed to get paused flag", err)
	}
	return string(pausedAsBytes) == "true", nil
}

func setPaused(ctx chirpsdk.TransactionContextInterface, paused bool) error {
	value := "false"
	if paused {
		value = "true"
	}

	err := ctx.PutState(pausedKey, []byte(value))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set paused flag", err)
	}
	return nil
}

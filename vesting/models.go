package vesting

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

// VestingRule releases a fixed token amount in equal installments. RuleID is
// stable for the life of the rule; the rule's position in the project's
// sequence is not (deletion swaps the last rule into the freed slot).
type VestingRule struct {
	RuleID         uint64 `json:"ruleId"`
	TotalTokens    string `json:"totalTokens"`
	IntervalLength uint64 `json:"intervalLength"`
	StartTime      uint64 `json:"startTime"`
	Repetitions    uint64 `json:"repetitions"`
}

// Project carries the per-project counters. It is created implicitly on the
// first write that touches the project.
type Project struct {
	NextRuleID      uint64 `json:"nextRuleId"`
	TotalAllocation uint64 `json:"totalAllocation"`
	Deposited       string `json:"deposited"`
	Claimed         string `json:"claimed"`
}

// UserAllocation is the per-(project,user) share record. LastClaimed is the
// aggregate high-water mark of value already paid out; RuleClaims breaks it
// down per rule id so claims stay exact when a project has several rules.
type UserAllocation struct {
	Percentage  uint64            `json:"percentage"`
	LastClaimed string            `json:"lastClaimed"`
	RuleClaims  map[string]string `json:"ruleClaims"`
}

// ClaimableBreakdown is the ClaimableAmount view payload: the per-rule
// claimable amounts and their sum at the transaction timestamp.
type ClaimableBreakdown struct {
	TotalClaimable string   `json:"totalClaimable"`
	RuleIDs        []uint64 `json:"ruleIds"`
	Amounts        []string `json:"amounts"`
}

func projectKey(project uint64) string {
	return fmt.Sprintf("vestingproject_%d", project)
}

func ruleListKey(project uint64) string {
	return fmt.Sprintf("vestingrules_%d", project)
}

func allocationKey(project uint64, user string) string {
	return fmt.Sprintf("vestingallocation_%d_%s", project, user)
}

func poolKey(pool string) string {
	return poolKeyPrefix + pool
}

// GetProject fails when the project has never been written.
func GetProject(ctx chirpsdk.TransactionContextInterface, project uint64) (*Project, error) {
	projectAsBytes, err := ctx.GetState(projectKey(project))
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get project with Key %s", projectKey(project)), err)
	}
	if projectAsBytes == nil {
		return nil, ErrInvalidProject(project)
	}

	var record Project
	err = json.Unmarshal(projectAsBytes, &record)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal project", err)
	}

	return &record, nil
}

// getOrCreateProject returns a zero-counter record for a project that does
// not exist yet; the record only becomes visible once SetProject runs.
func getOrCreateProject(ctx chirpsdk.TransactionContextInterface, project uint64) (*Project, error) {
	projectAsBytes, err := ctx.GetState(projectKey(project))
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get project with Key %s", projectKey(project)), err)
	}
	if projectAsBytes == nil {
		return &Project{Deposited: "0", Claimed: "0"}, nil
	}

	var record Project
	err = json.Unmarshal(projectAsBytes, &record)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal project", err)
	}

	return &record, nil
}

func SetProject(ctx chirpsdk.TransactionContextInterface, project uint64, record *Project) error {
	projectAsBytes, err := json.Marshal(record)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal project", err)
	}

	err = ctx.PutState(projectKey(project), projectAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set project", err)
	}

	return nil
}

// GetVestingRuleList returns the project's ordered rule sequence; a project
// without rules yields an empty list.
func GetVestingRuleList(ctx chirpsdk.TransactionContextInterface, project uint64) ([]*VestingRule, error) {
	rulesAsBytes, err := ctx.GetState(ruleListKey(project))
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get vesting rules with Key %s", ruleListKey(project)), err)
	}
	if rulesAsBytes == nil {
		return []*VestingRule{}, nil
	}

	var rules []*VestingRule
	err = json.Unmarshal(rulesAsBytes, &rules)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal vesting rules", err)
	}

	return rules, nil
}

func SetVestingRuleList(ctx chirpsdk.TransactionContextInterface, project uint64, rules []*VestingRule) error {
	rulesAsBytes, err := json.Marshal(rules)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal vesting rules", err)
	}

	err = ctx.PutState(ruleListKey(project), rulesAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set vesting rules", err)
	}

	return nil
}

// GetUserAllocation returns nil (no error) when the user has no allocation
// record in the project.
func GetUserAllocation(ctx chirpsdk.TransactionContextInterface, project uint64, user string) (*UserAllocation, error) {
	allocationAsBytes, err := ctx.GetState(allocationKey(project, user))
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get allocation with Key %s", allocationKey(project, user)), err)
	}
	if allocationAsBytes == nil {
		return nil, nil
	}

	var allocation UserAllocation
	err = json.Unmarshal(allocationAsBytes, &allocation)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal allocation", err)
	}

	return &allocation, nil
}

func SetUserAllocation(ctx chirpsdk.TransactionContextInterface, project uint64, user string, allocation *UserAllocation) error {
	allocationAsBytes, err := json.Marshal(allocation)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal allocation", err)
	}

	err = ctx.PutState(allocationKey(project, user), allocationAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set allocation", err)
	}

	return nil
}

func DeleteUserAllocation(ctx chirpsdk.TransactionContextInterface, project uint64, user string) error {
	err := ctx.DelState(allocationKey(project, user))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to delete allocation with Key %s", allocationKey(project, user)), err)
	}
	return nil
}

func GetAdmin(ctx chirpsdk.TransactionContextInterface) (string, error) {
	adminAsBytes, err := ctx.GetState(adminKey)
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get admin with Key %s", adminKey), err)
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
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get token address with Key %s", tokenAddressKey), err)
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

// GetMerkleRoot returns "" before any root is published.
func GetMerkleRoot(ctx chirpsdk.TransactionContextInterface) (string, error) {
	rootAsBytes, err := ctx.GetState(merkleRootKey)
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get merkle root with Key %s", merkleRootKey), err)
	}
	return string(rootAsBytes), nil
}

func setMerkleRoot(ctx chirpsdk.TransactionContextInterface, root string) error {
	err := ctx.PutState(merkleRootKey, []byte(root))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set merkle root", err)
	}
	return nil
}

// IsDistributionPool checks the bounded pool registry by direct lookup.
func IsDistributionPool(ctx chirpsdk.TransactionContextInterface, address string) (bool, error) {
	poolAsBytes, err := ctx.GetState(poolKey(address))
	if err != nil {
		return false, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get pool with Key %s", poolKey(address)), err)
	}
	return poolAsBytes != nil, nil
}

func registerPool(ctx chirpsdk.TransactionContextInterface, address string) error {
	err := ctx.PutState(poolKey(address), []byte("true"))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to register pool", err)
	}
	return nil
}

// GetDistributionPools lists every registered pool address, ordered by key.
func GetDistributionPools(ctx chirpsdk.TransactionContextInterface) ([]string, error) {
	kvs, err := ctx.GetStateByPrefix(poolKeyPrefix)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to scan pool registry", err)
	}

	pools := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		pools = append(pools, kv.Key[len(poolKeyPrefix):])
	}
	return pools, nil
}

func IsPaused(ctx chirpsdk.TransactionContextInterface) (bool, error) {
	pausedAsBytes, err := ctx.GetState(pausedKey)
	if err != nil {
		return false, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get paused flag with Key %s", pausedKey), err)
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

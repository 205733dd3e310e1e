package vesting

import (
	"encoding/json"
	"fmt"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

type VestingInitializedEvent struct {
	Admin string `json:"admin"`
}

type TokenAddressSetEvent struct {
	Token       string `json:"token"`
	TotalSupply string `json:"totalSupply"`
}

type DistributionPoolRegisteredEvent struct {
	Pool string `json:"pool"`
}

type VestingRuleEvent struct {
	Project        uint64 `json:"project"`
	RuleID         uint64 `json:"ruleId"`
	TotalTokens    string `json:"totalTokens"`
	IntervalLength uint64 `json:"intervalLength"`
	StartTime      uint64 `json:"startTime"`
	Repetitions    uint64 `json:"repetitions"`
}

type VestingRuleDeletedEvent struct {
	Project uint64 `json:"project"`
	RuleID  uint64 `json:"ruleId"`
}

type AllocationEvent struct {
	Project    uint64 `json:"project"`
	User       string `json:"user"`
	Percentage uint64 `json:"percentage"`
}

type AllocationRemovedEvent struct {
	Project uint64 `json:"project"`
	User    string `json:"user"`
}

type MerkleRootUpdatedEvent struct {
	Root string `json:"root"`
}

type TokensDepositedEvent struct {
	Project uint64 `json:"project"`
	From    string `json:"from"`
	Amount  string `json:"amount"`
}

type ClaimedEvent struct {
	Project uint64 `json:"project"`
	User    string `json:"user"`
	Amount  string `json:"amount"`
}

type PauseEvent struct {
	Admin string `json:"admin"`
}

func emitEvent(sdk chirpsdk.TransactionContextInterface, name string, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = sdk.SetEvent(name, payloadJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitVestingInitialized(sdk chirpsdk.TransactionContextInterface, admin string) error {
	return emitEvent(sdk, "VestingInitialized", VestingInitializedEvent{Admin: admin})
}

func EmitTokenAddressSet(sdk chirpsdk.TransactionContextInterface, token, totalSupply string) error {
	return emitEvent(sdk, "TokenAddressSet", TokenAddressSetEvent{Token: token, TotalSupply: totalSupply})
}

func EmitDistributionPoolRegistered(sdk chirpsdk.TransactionContextInterface, pool string) error {
	return emitEvent(sdk, "DistributionPoolRegistered", DistributionPoolRegisteredEvent{Pool: pool})
}

func EmitVestingRuleCreated(sdk chirpsdk.TransactionContextInterface, project uint64, rule *VestingRule) error {
	return emitEvent(sdk, "VestingRuleCreated", VestingRuleEvent{
		Project:        project,
		RuleID:         rule.RuleID,
		TotalTokens:    rule.TotalTokens,
		IntervalLength: rule.IntervalLength,
		StartTime:      rule.StartTime,
		Repetitions:    rule.Repetitions,
	})
}

func EmitVestingRuleUpdated(sdk chirpsdk.TransactionContextInterface, project uint64, rule *VestingRule) error {
	return emitEvent(sdk, "VestingRuleUpdated", VestingRuleEvent{
		Project:        project,
		RuleID:         rule.RuleID,
		TotalTokens:    rule.TotalTokens,
		IntervalLength: rule.IntervalLength,
		StartTime:      rule.StartTime,
		Repetitions:    rule.Repetitions,
	})
}

func EmitVestingRuleDeleted(sdk chirpsdk.TransactionContextInterface, project, ruleID uint64) error {
	return emitEvent(sdk, "VestingRuleDeleted", VestingRuleDeletedEvent{Project: project, RuleID: ruleID})
}

func EmitAllocationSet(sdk chirpsdk.TransactionContextInterface, project uint64, user string, percentage uint64) error {
	return emitEvent(sdk, "AllocationSet", AllocationEvent{Project: project, User: user, Percentage: percentage})
}

func EmitAllocationProven(sdk chirpsdk.TransactionContextInterface, project uint64, user string, percentage uint64) error {
	return emitEvent(sdk, "AllocationProven", AllocationEvent{Project: project, User: user, Percentage: percentage})
}

func EmitAllocationRemoved(sdk chirpsdk.TransactionContextInterface, project uint64, user string) error {
	return emitEvent(sdk, "AllocationRemoved", AllocationRemovedEvent{Project: project, User: user})
}

func EmitMerkleRootUpdated(sdk chirpsdk.TransactionContextInterface, root string) error {
	return emitEvent(sdk, "MerkleRootUpdated", MerkleRootUpdatedEvent{Root: root})
}

func EmitTokensDeposited(sdk chirpsdk.TransactionContextInterface, project uint64, from, amount string) error {
	return emitEvent(sdk, "TokensDeposited", TokensDepositedEvent{Project: project, From: from, Amount: amount})
}

func EmitClaimed(sdk chirpsdk.TransactionContextInterface, project uint64, user, amount string) error {
	return emitEvent(sdk, "Claimed", ClaimedEvent{Project: project, User: user, Amount: amount})
}

func EmitPaused(sdk chirpsdk.TransactionContextInterface, admin string) error {
	return emitEvent(sdk, "VestingPaused", PauseEvent{Admin: admin})
}

func EmitUnpaused(sdk chirpsdk.TransactionContextInterface, admin string) error {
	return emitEvent(sdk, "VestingUnpaused", PauseEvent{Admin: admin})
}

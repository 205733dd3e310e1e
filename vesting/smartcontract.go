// Package vesting implements the allocation ledger and claim engine of the
// launchpad. An administrator funds per-project escrows and describes release
// schedules as vesting rules; users hold percentage allocations and claim
// whatever their rules have released so far. Allocations can also be proven
// by the users themselves against a Merkle root committed by the
// administrator.
package vesting

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
	"github.com/Chirpleyai/ChirpPadContracts/token"
)

type SmartContract struct {
	chirpsdk.Contract

	Token token.Service
}

func NewSmartContract(tokenService token.Service) *SmartContract {
	return &SmartContract{
		Contract: chirpsdk.Contract{Name: "vesting"},
		Token:    tokenService,
	}
}

// Initialize installs the administrator and registers the contract's own
// escrow account as a distribution pool. The first caller wins; any later
// call fails.
func (s *SmartContract) Initialize(ctx chirpsdk.TransactionContextInterface, admin string) error {
	if !IsUserAddressValid(admin) {
		return ErrInvalidAddress(admin)
	}

	existing, err := GetAdmin(ctx)
	if err != nil {
		return err
	}
	if existing != "" {
		return ErrAlreadyInitialized
	}

	if err := setAdmin(ctx, admin); err != nil {
		return err
	}

	if err := registerPool(ctx, ContractAccount); err != nil {
		return err
	}
	if err := EmitDistributionPoolRegistered(ctx, ContractAccount); err != nil {
		return err
	}

	return EmitVestingInitialized(ctx, admin)
}

// SetTokenAddress binds the contract to its settlement token. The address can
// be set exactly once; the token's total supply is fetched so a broken
// binding fails here instead of at the first claim.
func (s *SmartContract) SetTokenAddress(ctx chirpsdk.TransactionContextInterface, tokenAddress string) error {
	if err := ctx.EnterProtected(tokenConfigGuard); err != nil {
		return err
	}
	defer ctx.ExitProtected(tokenConfigGuard)

	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	if !IsUserAddressValid(tokenAddress) {
		return ErrInvalidAddress(tokenAddress)
	}

	existing, err := GetTokenAddress(ctx)
	if err != nil {
		return err
	}
	if existing != "" {
		return ErrTokenAlreadySet
	}

	if err := setTokenAddress(ctx, tokenAddress); err != nil {
		return err
	}

	totalSupply, err := s.Token.TotalSupply(ctx)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to query token total supply", err)
	}

	return EmitTokenAddressSet(ctx, tokenAddress, totalSupply.String())
}

// RegisterDistributionPool marks an address as a distribution pool. Each pool
// is a single keyed record, so membership checks stay cheap no matter how
// many pools exist.
func (s *SmartContract) RegisterDistributionPool(ctx chirpsdk.TransactionContextInterface, pool string) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	if !IsUserAddressValid(pool) {
		return ErrInvalidAddress(pool)
	}

	registered, err := IsDistributionPool(ctx, pool)
	if err != nil {
		return err
	}
	if registered {
		return ErrPoolAlreadyRegistered(pool)
	}

	if err := registerPool(ctx, pool); err != nil {
		return err
	}

	return EmitDistributionPoolRegistered(ctx, pool)
}

// CreateVestingRule appends a release schedule to the project and returns
// the identifier assigned to it. Identifiers come from a per-project counter
// and are never reused, so claim bookkeeping survives rule deletion.
func (s *SmartContract) CreateVestingRule(ctx chirpsdk.TransactionContextInterface, project uint64, totalTokens string, intervalLength, startTime, repetitions uint64) (uint64, error) {
	if err := IsSignerAdmin(ctx); err != nil {
		return 0, err
	}

	if intervalLength == 0 || startTime == 0 || repetitions == 0 {
		return 0, ErrCannotBeZero
	}
	if _, err := parsePositiveAmount("vestingRule", totalTokens); err != nil {
		return 0, err
	}

	proj, err := getOrCreateProject(ctx, project)
	if err != nil {
		return 0, err
	}

	rules, err := GetVestingRuleList(ctx, project)
	if err != nil {
		return 0, err
	}

	rule := &VestingRule{
		RuleID:         proj.NextRuleID,
		TotalTokens:    totalTokens,
		IntervalLength: intervalLength,
		StartTime:      startTime,
		Repetitions:    repetitions,
	}
	proj.NextRuleID++

	if err := SetVestingRuleList(ctx, project, append(rules, rule)); err != nil {
		return 0, err
	}
	if err := SetProject(ctx, project, proj); err != nil {
		return 0, err
	}

	if err := EmitVestingRuleCreated(ctx, project, rule); err != nil {
		return 0, err
	}

	return rule.RuleID, nil
}

// UpdateVestingRule replaces the schedule at index while keeping its
// identifier, so claims already recorded against the rule stay attached.
func (s *SmartContract) UpdateVestingRule(ctx chirpsdk.TransactionContextInterface, project uint64, index int, totalTokens string, intervalLength, startTime, repetitions uint64) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	if intervalLength == 0 || startTime == 0 || repetitions == 0 {
		return ErrCannotBeZero
	}
	if _, err := parsePositiveAmount("vestingRule", totalTokens); err != nil {
		return err
	}

	if _, err := GetProject(ctx, project); err != nil {
		return err
	}

	rules, err := GetVestingRuleList(ctx, project)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(rules) {
		return ErrRuleIndexOutOfRange(project, index)
	}

	rule := rules[index]
	rule.TotalTokens = totalTokens
	rule.IntervalLength = intervalLength
	rule.StartTime = startTime
	rule.Repetitions = repetitions

	if err := SetVestingRuleList(ctx, project, rules); err != nil {
		return err
	}

	return EmitVestingRuleUpdated(ctx, project, rule)
}

// DeleteVestingRule removes the schedule at index. The last rule is swapped
// into the hole, so deletion does not shift the identifiers of surviving
// rules, only their positions.
func (s *SmartContract) DeleteVestingRule(ctx chirpsdk.TransactionContextInterface, project uint64, index int) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	if _, err := GetProject(ctx, project); err != nil {
		return err
	}

	rules, err := GetVestingRuleList(ctx, project)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(rules) {
		return ErrRuleIndexOutOfRange(project, index)
	}

	removed := rules[index]
	rules[index] = rules[len(rules)-1]
	rules = rules[:len(rules)-1]

	if err := SetVestingRuleList(ctx, project, rules); err != nil {
		return err
	}

	return EmitVestingRuleDeleted(ctx, project, removed.RuleID)
}

// SetAllocation grants user a percentage share of project. Re-setting an
// existing allocation replaces the percentage but keeps the user's recorded
// claims. The project's combined allocation can never exceed 100.
func (s *SmartContract) SetAllocation(ctx chirpsdk.TransactionContextInterface, project uint64, user string, percentage uint64) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	proj, err := getOrCreateProject(ctx, project)
	if err != nil {
		return err
	}

	if err := applyAllocation(ctx, proj, project, user, percentage, false); err != nil {
		return err
	}

	if proj.TotalAllocation > 100 {
		return ErrAllocationExceedsLimit(project, proj.TotalAllocation)
	}

	if err := SetProject(ctx, project, proj); err != nil {
		return err
	}

	return EmitAllocationSet(ctx, project, user, percentage)
}

// SetAllocations grants a batch of allocations in one transaction. The batch
// is all-or-nothing: one bad entry, or a combined total above 100, fails the
// whole call and leaves no allocation behind.
func (s *SmartContract) SetAllocations(ctx chirpsdk.TransactionContextInterface, project uint64, users []string, percentages []uint64) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	if len(users) == 0 {
		return ErrNoUsers
	}
	if len(users) != len(percentages) {
		return ErrArraysLengthMismatch(len(users), len(percentages))
	}

	proj, err := getOrCreateProject(ctx, project)
	if err != nil {
		return err
	}

	for i := range users {
		if err := applyAllocation(ctx, proj, project, users[i], percentages[i], false); err != nil {
			return err
		}
	}

	if proj.TotalAllocation > 100 {
		return ErrAllocationExceedsLimit(project, proj.TotalAllocation)
	}

	if err := SetProject(ctx, project, proj); err != nil {
		return err
	}

	for i := range users {
		if err := EmitAllocationSet(ctx, project, users[i], percentages[i]); err != nil {
			return err
		}
	}

	return nil
}

// RemoveAllocation deletes user's allocation and returns their percentage to
// the project's unallocated headroom. Claims the user already made are not
// clawed back.
func (s *SmartContract) RemoveAllocation(ctx chirpsdk.TransactionContextInterface, project uint64, user string) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	if !IsUserAddressValid(user) {
		return ErrInvalidAddress(user)
	}

	proj, err := GetProject(ctx, project)
	if err != nil {
		return err
	}

	allocation, err := GetUserAllocation(ctx, project, user)
	if err != nil {
		return err
	}
	if allocation == nil {
		return ErrNoAllocation(project, user)
	}

	proj.TotalAllocation -= allocation.Percentage

	if err := DeleteUserAllocation(ctx, project, user); err != nil {
		return err
	}
	if err := SetProject(ctx, project, proj); err != nil {
		return err
	}

	return EmitAllocationRemoved(ctx, project, user)
}

// SetMerkleRoot commits the allocation set users can prove themselves into.
// Publishing a new root replaces the old one.
func (s *SmartContract) SetMerkleRoot(ctx chirpsdk.TransactionContextInterface, root string) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	if !IsMerkleRootValid(root) {
		return ErrInvalidMerkleRoot(root)
	}

	if err := setMerkleRoot(ctx, root); err != nil {
		return err
	}

	return EmitMerkleRootUpdated(ctx, root)
}

// VerifyAndSetAllocation lets the signer install their own allocation by
// proving the (project, signer, percentage) triple against the committed
// Merkle root. A successful proof overwrites whatever allocation the signer
// had, claims included, so proving is also how a user adopts a republished
// allocation set.
func (s *SmartContract) VerifyAndSetAllocation(ctx chirpsdk.TransactionContextInterface, project uint64, percentage uint64, proof []string) error {
	if err := requireNotPaused(ctx); err != nil {
		return err
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	root, err := GetMerkleRoot(ctx)
	if err != nil {
		return err
	}
	if root == "" {
		return ErrMerkleRootNotSet
	}

	leaf := ComputeLeaf(project, signer, percentage)
	if !VerifyProof(leaf, proof, root) {
		return ErrInvalidMerkleProof
	}

	proj, err := getOrCreateProject(ctx, project)
	if err != nil {
		return err
	}

	if err := applyAllocation(ctx, proj, project, signer, percentage, true); err != nil {
		return err
	}

	if proj.TotalAllocation > 100 {
		return ErrAllocationExceedsLimit(project, proj.TotalAllocation)
	}

	if err := SetProject(ctx, project, proj); err != nil {
		return err
	}

	return EmitAllocationProven(ctx, project, signer, percentage)
}

// DepositTokens pulls amount from the signer into the contract escrow and
// credits it to the project. The signer must have approved the escrow
// account for at least amount beforehand.
func (s *SmartContract) DepositTokens(ctx chirpsdk.TransactionContextInterface, project uint64, amount string) error {
	if err := ctx.EnterProtected(depositGuard); err != nil {
		return err
	}
	defer ctx.ExitProtected(depositGuard)

	if err := requireNotPaused(ctx); err != nil {
		return err
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	tokenAddress, err := GetTokenAddress(ctx)
	if err != nil {
		return err
	}
	if tokenAddress == "" {
		return ErrTokenNotSet
	}

	depositAmount, err := parsePositiveAmount("deposit", amount)
	if err != nil {
		return err
	}

	allowance, err := s.Token.Allowance(ctx, signer, ContractAccount)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to query token allowance", err)
	}
	if allowance.Cmp(depositAmount) < 0 {
		return ErrInsufficientAllowance(signer, allowance.String(), amount)
	}

	proj, err := getOrCreateProject(ctx, project)
	if err != nil {
		return err
	}

	deposited, err := parseClaimedAmount(proj.Deposited)
	if err != nil {
		return err
	}
	proj.Deposited = deposited.Add(deposited, depositAmount).String()

	if err := SetProject(ctx, project, proj); err != nil {
		return err
	}
	if err := EmitTokensDeposited(ctx, project, signer, depositAmount.String()); err != nil {
		return err
	}

	// Token movement happens last, after every state write of this call.
	return s.Token.TransferFrom(ctx, ContractAccount, signer, ContractAccount, depositAmount)
}

// Claim pays the signer everything their project rules have released since
// their last claim. Claims are recorded per rule before the token transfer
// runs, so a reentrant call observes the updated bookkeeping.
func (s *SmartContract) Claim(ctx chirpsdk.TransactionContextInterface, project uint64) error {
	if err := ctx.EnterProtected(claimGuard); err != nil {
		return err
	}
	defer ctx.ExitProtected(claimGuard)

	if err := requireNotPaused(ctx); err != nil {
		return err
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	tokenAddress, err := GetTokenAddress(ctx)
	if err != nil {
		return err
	}
	if tokenAddress == "" {
		return ErrTokenNotSet
	}

	proj, err := GetProject(ctx, project)
	if err != nil {
		return err
	}

	allocation, err := GetUserAllocation(ctx, project, signer)
	if err != nil {
		return err
	}
	if allocation == nil || allocation.Percentage == 0 {
		return ErrNothingToClaim
	}

	rules, err := GetVestingRuleList(ctx, project)
	if err != nil {
		return err
	}

	now, err := txTime(ctx)
	if err != nil {
		return err
	}

	entitlements, total, err := computeEntitlements(project, signer, rules, allocation, now)
	if err != nil {
		return err
	}
	if total.Sign() == 0 {
		return ErrNothingToClaim
	}

	lastClaimed, err := parseClaimedAmount(allocation.LastClaimed)
	if err != nil {
		return err
	}
	// LastClaimed is the lifetime total across every rule ever claimed from,
	// since-deleted ones included; the per-rule marks are the authoritative
	// claim record.
	newClaimed := new(big.Int).Add(lastClaimed, total)

	deposited, err := parseClaimedAmount(proj.Deposited)
	if err != nil {
		return err
	}
	projectClaimed, err := parseClaimedAmount(proj.Claimed)
	if err != nil {
		return err
	}
	projectClaimed.Add(projectClaimed, total)
	if projectClaimed.Cmp(deposited) > 0 {
		return NewCustomError(http.StatusBadRequest, fmt.Sprintf("project %d deposits cannot cover claim of %s", project, total.String()), nil)
	}

	if allocation.RuleClaims == nil {
		allocation.RuleClaims = map[string]string{}
	}
	for _, entitlement := range entitlements {
		if entitlement.claimable.Sign() > 0 {
			allocation.RuleClaims[ruleClaimKey(entitlement.ruleID)] = entitlement.vested.String()
		}
	}
	allocation.LastClaimed = newClaimed.String()

	if err := SetUserAllocation(ctx, project, signer, allocation); err != nil {
		return err
	}

	proj.Claimed = projectClaimed.String()
	if err := SetProject(ctx, project, proj); err != nil {
		return err
	}

	if err := EmitClaimed(ctx, project, signer, total.String()); err != nil {
		return err
	}

	// Token movement happens last, after every state write of this call.
	return s.Token.Transfer(ctx, ContractAccount, signer, total)
}

// Pause stops claims, deposits and self-service allocation proofs.
// Administrative configuration stays available while paused.
func (s *SmartContract) Pause(ctx chirpsdk.TransactionContextInterface) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return ErrContractPaused
	}

	if err := setPaused(ctx, true); err != nil {
		return err
	}

	admin, err := GetAdmin(ctx)
	if err != nil {
		return err
	}

	return EmitPaused(ctx, admin)
}

func (s *SmartContract) Unpause(ctx chirpsdk.TransactionContextInterface) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if !paused {
		return ErrContractNotPaused
	}

	if err := setPaused(ctx, false); err != nil {
		return err
	}

	admin, err := GetAdmin(ctx)
	if err != nil {
		return err
	}

	return EmitUnpaused(ctx, admin)
}

func (s *SmartContract) GetVestingRules(ctx chirpsdk.TransactionContextInterface, project uint64) ([]*VestingRule, error) {
	if _, err := GetProject(ctx, project); err != nil {
		return nil, err
	}

	return GetVestingRuleList(ctx, project)
}

func (s *SmartContract) GetVestingRule(ctx chirpsdk.TransactionContextInterface, project uint64, index int) (*VestingRule, error) {
	rules, err := s.GetVestingRules(ctx, project)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(rules) {
		return nil, ErrRuleIndexOutOfRange(project, index)
	}

	return rules[index], nil
}

// GetAllocation returns user's allocation record; a user without one reads
// as a zero allocation rather than an error.
func (s *SmartContract) GetAllocation(ctx chirpsdk.TransactionContextInterface, project uint64, user string) (*UserAllocation, error) {
	if !IsUserAddressValid(user) {
		return nil, ErrInvalidAddress(user)
	}

	allocation, err := GetUserAllocation(ctx, project, user)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return &UserAllocation{LastClaimed: "0", RuleClaims: map[string]string{}}, nil
	}

	return allocation, nil
}

func (s *SmartContract) GetTotalAllocation(ctx chirpsdk.TransactionContextInterface, project uint64) (uint64, error) {
	proj, err := GetProject(ctx, project)
	if err != nil {
		return 0, err
	}

	return proj.TotalAllocation, nil
}

// GetProjectTotals returns the project's counters: total allocated
// percentage, deposited and claimed token amounts, and the next rule id.
func (s *SmartContract) GetProjectTotals(ctx chirpsdk.TransactionContextInterface, project uint64) (*Project, error) {
	return GetProject(ctx, project)
}

// VestedAmount reports how much of the rule at index has vested for user at
// the transaction timestamp, before subtracting claims.
func (s *SmartContract) VestedAmount(ctx chirpsdk.TransactionContextInterface, project uint64, user string, index int) (string, error) {
	if !IsUserAddressValid(user) {
		return "0", ErrInvalidAddress(user)
	}

	if _, err := GetProject(ctx, project); err != nil {
		return "0", err
	}

	rules, err := GetVestingRuleList(ctx, project)
	if err != nil {
		return "0", err
	}
	if index < 0 || index >= len(rules) {
		return "0", ErrRuleIndexOutOfRange(project, index)
	}

	allocation, err := GetUserAllocation(ctx, project, user)
	if err != nil {
		return "0", err
	}

	var percentage uint64
	if allocation != nil {
		percentage = allocation.Percentage
	}

	now, err := txTime(ctx)
	if err != nil {
		return "0", err
	}

	vested, err := vestedAmount(rules[index], percentage, now)
	if err != nil {
		return "0", err
	}

	return vested.String(), nil
}

// ClaimableAmount reports what user could claim right now, broken down per
// rule. The breakdown lists every rule of the project, including those with
// nothing currently claimable.
func (s *SmartContract) ClaimableAmount(ctx chirpsdk.TransactionContextInterface, project uint64, user string) (*ClaimableBreakdown, error) {
	if !IsUserAddressValid(user) {
		return nil, ErrInvalidAddress(user)
	}

	if _, err := GetProject(ctx, project); err != nil {
		return nil, err
	}

	allocation, err := GetUserAllocation(ctx, project, user)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return &ClaimableBreakdown{TotalClaimable: "0", RuleIDs: []uint64{}, Amounts: []string{}}, nil
	}

	rules, err := GetVestingRuleList(ctx, project)
	if err != nil {
		return nil, err
	}

	now, err := txTime(ctx)
	if err != nil {
		return nil, err
	}

	entitlements, total, err := computeEntitlements(project, user, rules, allocation, now)
	if err != nil {
		return nil, err
	}

	breakdown := &ClaimableBreakdown{
		TotalClaimable: total.String(),
		RuleIDs:        make([]uint64, len(entitlements)),
		Amounts:        make([]string, len(entitlements)),
	}
	for i, entitlement := range entitlements {
		breakdown.RuleIDs[i] = entitlement.ruleID
		breakdown.Amounts[i] = entitlement.claimable.String()
	}

	return breakdown, nil
}

// applyAllocation validates and writes one allocation and adjusts the
// project's allocation total in memory. The caller checks the total and
// persists the project, so a batch can settle the limit once at the end.
func applyAllocation(ctx chirpsdk.TransactionContextInterface, proj *Project, project uint64, user string, percentage uint64, resetClaims bool) error {
	if !IsUserAddressValid(user) {
		return ErrInvalidAddress(user)
	}
	if percentage == 0 || percentage > 100 {
		return ErrInvalidPercentage(percentage)
	}

	existing, err := GetUserAllocation(ctx, project, user)
	if err != nil {
		return err
	}

	updated := &UserAllocation{
		Percentage:  percentage,
		LastClaimed: "0",
		RuleClaims:  map[string]string{},
	}
	if existing != nil {
		proj.TotalAllocation -= existing.Percentage
		if !resetClaims {
			updated.LastClaimed = existing.LastClaimed
			if existing.RuleClaims != nil {
				updated.RuleClaims = existing.RuleClaims
			}
		}
	}
	proj.TotalAllocation += percentage

	return SetUserAllocation(ctx, project, user, updated)
}

// Package presale implements the two-round capped investment manager of the
// launchpad. Round 1 takes investments against a target with per-user caps;
// once an administrator completes it, round 2 can reopen whatever capacity
// round 1 left unfilled under a single uniform cap, or be disabled for good.
package presale

import (
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
		Contract: chirpsdk.Contract{Name: "presale"},
		Token:    tokenService,
	}
}

// Initialize installs the administrator. The first caller wins; any later
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

	return EmitPresaleInitialized(ctx, admin)
}

// SetTokenAddress binds the contract to its settlement token, exactly once.
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

// SetRound1Target sets or raises the round-1 funding target. Lowering it
// below what round 1 has already collected fails; raising it later tops the
// round up without re-validating any round-2 cap set in the meantime.
func (s *SmartContract) SetRound1Target(ctx chirpsdk.TransactionContextInterface, project uint64, target string) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	targetAmount, err := parsePositiveAmount("round1Target", target)
	if err != nil {
		return err
	}

	round1, err := GetRound(ctx, project, Round1)
	if err != nil {
		return err
	}
	invested, err := parseStoredAmount(round1.TotalInvestment)
	if err != nil {
		return err
	}
	if targetAmount.Cmp(invested) < 0 {
		return ErrTargetBelowInvestment(project)
	}

	if err := setRound1Target(ctx, project, targetAmount.String()); err != nil {
		return err
	}

	return EmitRoundTargetSet(ctx, project, targetAmount.String())
}

// SetRound1Allocations grants per-user round-1 caps. Each cap must fit the
// target on its own, the caps together must fit the target, and a zero cap
// is rejected: not granting a user an allocation is how they are excluded.
func (s *SmartContract) SetRound1Allocations(ctx chirpsdk.TransactionContextInterface, project uint64, users, caps []string) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	if len(users) == 0 {
		return ErrNoUsers
	}
	if len(users) != len(caps) {
		return ErrArraysLengthMismatch(len(users), len(caps))
	}

	targetStr, err := GetRound1Target(ctx, project)
	if err != nil {
		return err
	}
	target, err := parseStoredAmount(targetStr)
	if err != nil {
		return err
	}
	if target.Sign() == 0 {
		return ErrRoundTargetNotSet
	}

	round1, err := GetRound(ctx, project, Round1)
	if err != nil {
		return err
	}
	totalAllocation, err := parseStoredAmount(round1.TotalAllocation)
	if err != nil {
		return err
	}

	for i := range users {
		if !IsUserAddressValid(users[i]) {
			return ErrInvalidAddress(users[i])
		}

		userCap, err := parsePositiveAmount("allocation", caps[i])
		if err != nil {
			return err
		}
		if userCap.Cmp(target) > 0 {
			return ErrAllocationExceedsTarget(project)
		}

		existingStr, err := getCap(ctx, project, Round1, users[i])
		if err != nil {
			return err
		}
		existing, err := parseStoredAmount(existingStr)
		if err != nil {
			return err
		}

		totalAllocation.Sub(totalAllocation, existing)
		totalAllocation.Add(totalAllocation, userCap)

		if err := setCap(ctx, project, Round1, users[i], userCap.String()); err != nil {
			return err
		}
	}

	if totalAllocation.Cmp(target) > 0 {
		return ErrAllocationExceedsTarget(project)
	}

	round1.TotalAllocation = totalAllocation.String()
	if err := SetRound(ctx, project, Round1, round1); err != nil {
		return err
	}

	return EmitRound1AllocationsSet(ctx, project, users, caps)
}

// SetRound2MaxAllocation sets the uniform per-user cap for round 2. The cap
// must fit the capacity round 1 has left at this moment; it is deliberately
// not re-validated if a later target raise changes that capacity.
func (s *SmartContract) SetRound2MaxAllocation(ctx chirpsdk.TransactionContextInterface, project uint64, maxAllocation string) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	capAmount, err := parsePositiveAmount("round2Cap", maxAllocation)
	if err != nil {
		return err
	}

	targetStr, err := GetRound1Target(ctx, project)
	if err != nil {
		return err
	}
	target, err := parseStoredAmount(targetStr)
	if err != nil {
		return err
	}
	if target.Sign() == 0 {
		return ErrRoundTargetNotSet
	}

	budget, err := round2Budget(ctx, project)
	if err != nil {
		return err
	}
	if capAmount.Cmp(budget) > 0 {
		return ErrAllocationExceedsTarget(project)
	}

	round2, err := GetRound(ctx, project, Round2)
	if err != nil {
		return err
	}
	round2.MaxAllocationPerUser = capAmount.String()
	if err := SetRound(ctx, project, Round2, round2); err != nil {
		return err
	}

	return EmitRound2CapSet(ctx, project, capAmount.String())
}

// CompleteRound1 closes round 1. Progression never happens on its own, not
// even when the round fills its target exactly.
func (s *SmartContract) CompleteRound1(ctx chirpsdk.TransactionContextInterface, project uint64) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	state, err := GetRoundState(ctx, project)
	if err != nil {
		return err
	}
	if state != StateRound1Open {
		return ErrInvalidStateTransition(project, state)
	}

	if err := setRoundState(ctx, project, StateRound1Complete); err != nil {
		return err
	}

	return EmitRoundStateChanged(ctx, project, StateRound1Complete)
}

// OpenRound2 opens round 2 on a completed round 1.
func (s *SmartContract) OpenRound2(ctx chirpsdk.TransactionContextInterface, project uint64) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	state, err := GetRoundState(ctx, project)
	if err != nil {
		return err
	}
	if state != StateRound1Complete {
		return ErrInvalidStateTransition(project, state)
	}

	if err := setRoundState(ctx, project, StateRound2Open); err != nil {
		return err
	}

	return EmitRoundStateChanged(ctx, project, StateRound2Open)
}

// DisableRound2 ends the sale after round 1, or closes an already-open
// round 2. Disabling is terminal.
func (s *SmartContract) DisableRound2(ctx chirpsdk.TransactionContextInterface, project uint64) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	state, err := GetRoundState(ctx, project)
	if err != nil {
		return err
	}
	if state != StateRound1Complete && state != StateRound2Open {
		return ErrInvalidStateTransition(project, state)
	}

	if err := setRoundState(ctx, project, StateRound2Disabled); err != nil {
		return err
	}

	return EmitRoundStateChanged(ctx, project, StateRound2Disabled)
}

// RemoveUser drops a user's cap and recorded investment from the round's
// totals and deletes their records. Tokens already collected stay in the
// contract account; Withdraw is the only way funds move back out.
func (s *SmartContract) RemoveUser(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user string) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}
	if err := validRound(round); err != nil {
		return err
	}
	if !IsUserAddressValid(user) {
		return ErrInvalidAddress(user)
	}

	return s.removeUser(ctx, project, round, user)
}

// RemoveUsers is the batch form of RemoveUser; one unknown user fails the
// whole batch.
func (s *SmartContract) RemoveUsers(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, users []string) error {
	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}
	if err := validRound(round); err != nil {
		return err
	}
	if len(users) == 0 {
		return ErrNoUsers
	}

	for _, user := range users {
		if !IsUserAddressValid(user) {
			return ErrInvalidAddress(user)
		}
		if err := s.removeUser(ctx, project, round, user); err != nil {
			return err
		}
	}

	return nil
}

// Withdraw sends collected funds out of the contract account. It touches no
// round ledger: removing users and moving their money are separate acts.
func (s *SmartContract) Withdraw(ctx chirpsdk.TransactionContextInterface, to, amount string) error {
	if err := ctx.EnterProtected(withdrawGuard); err != nil {
		return err
	}
	defer ctx.ExitProtected(withdrawGuard)

	if err := IsSignerAdmin(ctx); err != nil {
		return err
	}

	if !IsUserAddressValid(to) {
		return ErrInvalidAddress(to)
	}

	withdrawAmount, err := parsePositiveAmount("withdrawal", amount)
	if err != nil {
		return err
	}

	tokenAddress, err := GetTokenAddress(ctx)
	if err != nil {
		return err
	}
	if tokenAddress == "" {
		return ErrTokenNotSet
	}

	balance, err := s.Token.BalanceOf(ctx, ContractAccount)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to query token balance", err)
	}
	if balance.Cmp(withdrawAmount) < 0 {
		return ErrInsufficientBalance(ContractAccount, balance.String(), amount)
	}

	if err := EmitWithdrawn(ctx, to, withdrawAmount.String()); err != nil {
		return err
	}

	// Token movement happens last, after every state write of this call.
	return s.Token.Transfer(ctx, ContractAccount, to, withdrawAmount)
}

// Invest takes amount from the signer into the given round. Round 1 invests
// against the target while Round1Open; round 2 invests against whatever
// round 1 left unfilled, evaluated live, while Round2Open. A user without a
// cap has no allocation and cannot invest at all.
func (s *SmartContract) Invest(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, amount string) error {
	if err := ctx.EnterProtected(investGuard); err != nil {
		return err
	}
	defer ctx.ExitProtected(investGuard)

	if err := requireNotPaused(ctx); err != nil {
		return err
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if err := validRound(round); err != nil {
		return err
	}

	tokenAddress, err := GetTokenAddress(ctx)
	if err != nil {
		return err
	}
	if tokenAddress == "" {
		return ErrTokenNotSet
	}

	investAmount, err := parsePositiveAmount("investment", amount)
	if err != nil {
		return err
	}

	state, err := GetRoundState(ctx, project)
	if err != nil {
		return err
	}

	targetStr, err := GetRound1Target(ctx, project)
	if err != nil {
		return err
	}
	target, err := parseStoredAmount(targetStr)
	if err != nil {
		return err
	}
	if target.Sign() == 0 {
		return ErrRoundTargetNotSet
	}

	roundRecord, err := GetRound(ctx, project, round)
	if err != nil {
		return err
	}
	totalInvestment, err := parseStoredAmount(roundRecord.TotalInvestment)
	if err != nil {
		return err
	}
	newTotal := new(big.Int).Add(totalInvestment, investAmount)

	var userCap *big.Int
	switch round {
	case Round1:
		if state != StateRound1Open {
			return ErrRoundClosed(project, round, state)
		}
		if newTotal.Cmp(target) > 0 {
			return ErrTargetExceeded(project)
		}

		capStr, err := getCap(ctx, project, Round1, signer)
		if err != nil {
			return err
		}
		userCap, err = parseStoredAmount(capStr)
		if err != nil {
			return err
		}

	case Round2:
		if state != StateRound2Open {
			return ErrRoundClosed(project, round, state)
		}

		budget, err := round2Budget(ctx, project)
		if err != nil {
			return err
		}
		if newTotal.Cmp(budget) > 0 {
			return ErrTargetExceeded(project)
		}

		userCap, err = parseStoredAmount(roundRecord.MaxAllocationPerUser)
		if err != nil {
			return err
		}
	}

	if userCap.Sign() == 0 {
		return ErrNoAllocationGranted(project, signer)
	}

	investmentStr, err := getInvestment(ctx, project, round, signer)
	if err != nil {
		return err
	}
	investment, err := parseStoredAmount(investmentStr)
	if err != nil {
		return err
	}
	newInvestment := new(big.Int).Add(investment, investAmount)
	if newInvestment.Cmp(userCap) > 0 {
		return ErrCapExceeded(project, signer)
	}

	allowance, err := s.Token.Allowance(ctx, signer, ContractAccount)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to query token allowance", err)
	}
	if allowance.Cmp(investAmount) < 0 {
		return ErrInsufficientAllowance(signer, allowance.String(), amount)
	}

	if err := setInvestment(ctx, project, round, signer, newInvestment.String()); err != nil {
		return err
	}
	roundRecord.TotalInvestment = newTotal.String()
	if err := SetRound(ctx, project, round, roundRecord); err != nil {
		return err
	}

	if err := EmitInvested(ctx, project, round, signer, investAmount.String(), newInvestment.String()); err != nil {
		return err
	}

	// Token movement happens last, after every state write of this call.
	return s.Token.TransferFrom(ctx, ContractAccount, signer, ContractAccount, investAmount)
}

// Pause stops investments. Administrative configuration and withdrawals
// stay available while paused.
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

func (s *SmartContract) GetUserInvestment(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user string) (string, error) {
	if err := validRound(round); err != nil {
		return "0", err
	}
	if !IsUserAddressValid(user) {
		return "0", ErrInvalidAddress(user)
	}

	return getInvestment(ctx, project, round, user)
}

// GetUserCap returns the ceiling user can invest up to in the round: their
// own cap in round 1, the round's uniform cap in round 2.
func (s *SmartContract) GetUserCap(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user string) (string, error) {
	if err := validRound(round); err != nil {
		return "0", err
	}
	if !IsUserAddressValid(user) {
		return "0", ErrInvalidAddress(user)
	}

	if round == Round1 {
		return getCap(ctx, project, Round1, user)
	}

	round2, err := GetRound(ctx, project, Round2)
	if err != nil {
		return "0", err
	}
	return round2.MaxAllocationPerUser, nil
}

// GetRemainingRound2Capacity reports how much round 2 can still take right
// now: round 1's unfilled target minus what round 2 has already collected.
func (s *SmartContract) GetRemainingRound2Capacity(ctx chirpsdk.TransactionContextInterface, project uint64) (string, error) {
	budget, err := round2Budget(ctx, project)
	if err != nil {
		return "0", err
	}

	round2, err := GetRound(ctx, project, Round2)
	if err != nil {
		return "0", err
	}
	invested, err := parseStoredAmount(round2.TotalInvestment)
	if err != nil {
		return "0", err
	}

	capacity := budget.Sub(budget, invested)
	if capacity.Sign() < 0 {
		capacity.SetInt64(0)
	}
	return capacity.String(), nil
}

// removeUser subtracts one user's cap and investment from the round totals
// and deletes their records.
func (s *SmartContract) removeUser(ctx chirpsdk.TransactionContextInterface, project uint64, round uint8, user string) error {
	capStr := "0"
	if round == Round1 {
		var err error
		capStr, err = getCap(ctx, project, Round1, user)
		if err != nil {
			return err
		}
	}
	capAmount, err := parseStoredAmount(capStr)
	if err != nil {
		return err
	}

	investmentStr, err := getInvestment(ctx, project, round, user)
	if err != nil {
		return err
	}
	investment, err := parseStoredAmount(investmentStr)
	if err != nil {
		return err
	}

	if capAmount.Sign() == 0 && investment.Sign() == 0 {
		return ErrNothingToRemove(project, user)
	}

	roundRecord, err := GetRound(ctx, project, round)
	if err != nil {
		return err
	}

	if capAmount.Sign() > 0 {
		totalAllocation, err := parseStoredAmount(roundRecord.TotalAllocation)
		if err != nil {
			return err
		}
		roundRecord.TotalAllocation = totalAllocation.Sub(totalAllocation, capAmount).String()

		if err := delCap(ctx, project, Round1, user); err != nil {
			return err
		}
	}

	if investment.Sign() > 0 {
		totalInvestment, err := parseStoredAmount(roundRecord.TotalInvestment)
		if err != nil {
			return err
		}
		roundRecord.TotalInvestment = totalInvestment.Sub(totalInvestment, investment).String()

		if err := delInvestment(ctx, project, round, user); err != nil {
			return err
		}
	}

	if err := SetRound(ctx, project, round, roundRecord); err != nil {
		return err
	}

	return EmitUserRemoved(ctx, project, round, user, capAmount.String(), investment.String())
}

// round2Budget is the capacity round 2 inherits: whatever round 1 left of
// its target, never negative.
func round2Budget(ctx chirpsdk.TransactionContextInterface, project uint64) (*big.Int, error) {
	targetStr, err := GetRound1Target(ctx, project)
	if err != nil {
		return nil, err
	}
	target, err := parseStoredAmount(targetStr)
	if err != nil {
		return nil, err
	}

	round1, err := GetRound(ctx, project, Round1)
	if err != nil {
		return nil, err
	}
	invested, err := parseStoredAmount(round1.TotalInvestment)
	if err != nil {
		return nil, err
	}

	budget := target.Sub(target, invested)
	if budget.Sign() < 0 {
		budget.SetInt64(0)
	}
	return budget, nil
}

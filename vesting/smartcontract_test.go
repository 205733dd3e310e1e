package vesting_test

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"testing"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk/mocks"
	tokenmocks "github.com/Chirpleyai/ChirpPadContracts/token/mocks"
	"github.com/Chirpleyai/ChirpPadContracts/vesting"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	adminAccount = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	userAccount  = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	otherAccount = "0xcccccccccccccccccccccccccccccccccccccccc"
	tokenAccount = "0xdddddddddddddddddddddddddddddddddddddddd"

	vestingStart = uint64(1700000000)
	oneDay       = uint64(24 * 60 * 60)
	thirtyDays   = 30 * oneDay
)

func newTestContext() (*mocks.TransactionContext, map[string][]byte) {
	ctx := &mocks.TransactionContext{}
	worldState := map[string][]byte{}

	ctx.GetStateStub = func(key string) ([]byte, error) {
		data, found := worldState[key]
		if found {
			return data, nil
		}
		return nil, nil
	}
	ctx.PutStateStub = func(key string, value []byte) error {
		worldState[key] = value
		return nil
	}
	ctx.DelStateStub = func(key string) error {
		delete(worldState, key)
		return nil
	}
	ctx.GetStateByPrefixStub = func(prefix string) ([]chirpsdk.KV, error) {
		keys := make([]string, 0, len(worldState))
		for key := range worldState {
			if strings.HasPrefix(key, prefix) {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)

		kvs := make([]chirpsdk.KV, 0, len(keys))
		for _, key := range keys {
			kvs = append(kvs, chirpsdk.KV{Key: key, Value: worldState[key]})
		}
		return kvs, nil
	}
	ctx.GetTxIDReturns("tx-1")
	ctx.GetTxTimestampReturns(&timestamppb.Timestamp{Seconds: int64(vestingStart)}, nil)

	var inProgress string
	ctx.EnterProtectedStub = func(op string) error {
		if inProgress != "" {
			return fmt.Errorf("%w: %s is already in progress", chirpsdk.ErrReentrantCall, inProgress)
		}
		inProgress = op
		return nil
	}
	ctx.ExitProtectedStub = func(op string) {
		if inProgress == op {
			inProgress = ""
		}
	}

	return ctx, worldState
}

func setSigner(ctx *mocks.TransactionContext, userID string) {
	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(userID, nil)
	ctx.GetClientIdentityReturns(clientIdentity)
}

func setTxTime(ctx *mocks.TransactionContext, seconds uint64) {
	ctx.GetTxTimestampReturns(&timestamppb.Timestamp{Seconds: int64(seconds)}, nil)
}

// newVestingContract returns a contract that is initialized, bound to a
// token fake with a generous allowance, and signed by the administrator.
func newVestingContract(t *testing.T) (*vesting.SmartContract, *tokenmocks.Service, *mocks.TransactionContext, map[string][]byte) {
	t.Helper()

	ctx, worldState := newTestContext()
	tokenService := &tokenmocks.Service{}
	tokenService.TotalSupplyReturns(big.NewInt(1000000), nil)
	tokenService.AllowanceReturns(big.NewInt(1000000), nil)

	contract := vesting.NewSmartContract(tokenService)

	setSigner(ctx, adminAccount)
	require.NoError(t, contract.Initialize(ctx, adminAccount))
	require.NoError(t, contract.SetTokenAddress(ctx, tokenAccount))

	return contract, tokenService, ctx, worldState
}

func eventPayloads(ctx *mocks.TransactionContext, name string) [][]byte {
	var payloads [][]byte
	for i := 0; i < ctx.SetEventCallCount(); i++ {
		eventName, payload := ctx.SetEventArgsForCall(i)
		if eventName == name {
			payloads = append(payloads, payload)
		}
	}
	return payloads
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext()
	contract := vesting.NewSmartContract(&tokenmocks.Service{})
	setSigner(ctx, adminAccount)

	err := contract.Initialize(ctx, "not-an-address")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidAddress")

	require.NoError(t, contract.Initialize(ctx, adminAccount))

	admin, err := vesting.GetAdmin(ctx)
	require.NoError(t, err)
	require.Equal(t, adminAccount, admin)

	// The escrow account is a distribution pool from the start.
	registered, err := vesting.IsDistributionPool(ctx, vesting.ContractAccount)
	require.NoError(t, err)
	require.True(t, registered)

	err = contract.Initialize(ctx, otherAccount)
	require.ErrorIs(t, err, vesting.ErrAlreadyInitialized)

	require.Len(t, eventPayloads(ctx, "VestingInitialized"), 1)
	require.Len(t, eventPayloads(ctx, "DistributionPoolRegistered"), 1)
}

func TestSetTokenAddress(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext()
	tokenService := &tokenmocks.Service{}
	tokenService.TotalSupplyReturns(big.NewInt(5000000), nil)
	contract := vesting.NewSmartContract(tokenService)

	setSigner(ctx, adminAccount)
	require.NoError(t, contract.Initialize(ctx, adminAccount))

	setSigner(ctx, userAccount)
	err := contract.SetTokenAddress(ctx, tokenAccount)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not the administrator")

	setSigner(ctx, adminAccount)
	err = contract.SetTokenAddress(ctx, "0x0000000000000000000000000000000000000000")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidAddress")

	require.NoError(t, contract.SetTokenAddress(ctx, tokenAccount))

	stored, err := vesting.GetTokenAddress(ctx)
	require.NoError(t, err)
	require.Equal(t, tokenAccount, stored)

	payloads := eventPayloads(ctx, "TokenAddressSet")
	require.Len(t, payloads, 1)
	var event vesting.TokenAddressSetEvent
	require.NoError(t, json.Unmarshal(payloads[0], &event))
	require.Equal(t, tokenAccount, event.Token)
	require.Equal(t, "5000000", event.TotalSupply)

	err = contract.SetTokenAddress(ctx, tokenAccount)
	require.ErrorIs(t, err, vesting.ErrTokenAlreadySet)
}

func TestSetTokenAddressChecksToken(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext()
	tokenService := &tokenmocks.Service{}
	tokenService.TotalSupplyReturns(nil, fmt.Errorf("token unreachable"))
	contract := vesting.NewSmartContract(tokenService)

	setSigner(ctx, adminAccount)
	require.NoError(t, contract.Initialize(ctx, adminAccount))

	err := contract.SetTokenAddress(ctx, tokenAccount)
	require.Error(t, err)
	require.Contains(t, err.Error(), "total supply")
}

func TestRegisterDistributionPool(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	setSigner(ctx, userAccount)
	err := contract.RegisterDistributionPool(ctx, otherAccount)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not the administrator")

	setSigner(ctx, adminAccount)
	err = contract.RegisterDistributionPool(ctx, "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidAddress")

	require.NoError(t, contract.RegisterDistributionPool(ctx, otherAccount))

	err = contract.RegisterDistributionPool(ctx, otherAccount)
	require.Error(t, err)
	require.Contains(t, err.Error(), "PoolAlreadyRegistered")

	registered, err := vesting.IsDistributionPool(ctx, otherAccount)
	require.NoError(t, err)
	require.True(t, registered)

	registered, err = vesting.IsDistributionPool(ctx, userAccount)
	require.NoError(t, err)
	require.False(t, registered)

	pools, err := vesting.GetDistributionPools(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{vesting.ContractAccount, otherAccount}, pools)
}

func TestCreateVestingRule(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	setSigner(ctx, userAccount)
	_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not the administrator")

	setSigner(ctx, adminAccount)

	_, err = contract.CreateVestingRule(ctx, 1, "1000", 0, vestingStart, 4)
	require.ErrorIs(t, err, vesting.ErrCannotBeZero)
	_, err = contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, 0, 4)
	require.ErrorIs(t, err, vesting.ErrCannotBeZero)
	_, err = contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 0)
	require.ErrorIs(t, err, vesting.ErrCannotBeZero)

	_, err = contract.CreateVestingRule(ctx, 1, "abc", thirtyDays, vestingStart, 4)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidAmount")
	_, err = contract.CreateVestingRule(ctx, 1, "0", thirtyDays, vestingStart, 4)
	require.ErrorIs(t, err, vesting.ErrNonPositiveVestingAmount)

	// Rule identifiers are handed out sequentially per project.
	for want := uint64(0); want < 3; want++ {
		ruleID, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
		require.NoError(t, err)
		require.Equal(t, want, ruleID)
	}

	rules, err := contract.GetVestingRules(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rules, 3)

	rule, err := contract.GetVestingRule(ctx, 1, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), rule.RuleID)

	_, err = contract.GetVestingRule(ctx, 1, 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "RuleIndexOutOfRange")
}

func TestUpdateVestingRule(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	for i := 0; i < 2; i++ {
		_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
		require.NoError(t, err)
	}

	err := contract.UpdateVestingRule(ctx, 1, 1, "2500", thirtyDays, vestingStart+oneDay, 10)
	require.NoError(t, err)

	rule, err := contract.GetVestingRule(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), rule.RuleID)
	require.Equal(t, "2500", rule.TotalTokens)
	require.Equal(t, vestingStart+oneDay, rule.StartTime)
	require.Equal(t, uint64(10), rule.Repetitions)

	err = contract.UpdateVestingRule(ctx, 1, 9, "2500", thirtyDays, vestingStart, 10)
	require.Error(t, err)
	require.Contains(t, err.Error(), "RuleIndexOutOfRange")

	err = contract.UpdateVestingRule(ctx, 9, 0, "2500", thirtyDays, vestingStart, 10)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidProject")

	err = contract.UpdateVestingRule(ctx, 1, 0, "2500", 0, vestingStart, 10)
	require.ErrorIs(t, err, vesting.ErrCannotBeZero)
}

func TestDeleteVestingRule(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	for i := 0; i < 3; i++ {
		_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
		require.NoError(t, err)
	}

	// The last rule swaps into the deleted slot; identifiers stay attached
	// to their rules.
	require.NoError(t, contract.DeleteVestingRule(ctx, 1, 0))

	rules, err := contract.GetVestingRules(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	require.Equal(t, uint64(2), rules[0].RuleID)
	require.Equal(t, uint64(1), rules[1].RuleID)

	err = contract.DeleteVestingRule(ctx, 1, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "RuleIndexOutOfRange")

	require.NoError(t, contract.DeleteVestingRule(ctx, 1, 1))

	rules, err = contract.GetVestingRules(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Equal(t, uint64(2), rules[0].RuleID)

	// Identifiers are never reused after a deletion.
	ruleID, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(3), ruleID)
}

func TestVestedAmountFollowsRuleOrder(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	// Three fully-vested rules distinguishable by size. The user holds 10%,
	// so the rule at an index is identified by its payout.
	for _, tokens := range []string{"1000", "2000", "4000"} {
		_, err := contract.CreateVestingRule(ctx, 1, tokens, thirtyDays, vestingStart, 4)
		require.NoError(t, err)
	}
	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 10))
	setTxTime(ctx, vestingStart+130*oneDay)

	vested, err := contract.VestedAmount(ctx, 1, userAccount, 0)
	require.NoError(t, err)
	require.Equal(t, "100", vested)

	// After deleting index 0 the last rule occupies it, and index-addressed
	// views follow the new order.
	require.NoError(t, contract.DeleteVestingRule(ctx, 1, 0))

	vested, err = contract.VestedAmount(ctx, 1, userAccount, 0)
	require.NoError(t, err)
	require.Equal(t, "400", vested)

	vested, err = contract.VestedAmount(ctx, 1, userAccount, 1)
	require.NoError(t, err)
	require.Equal(t, "200", vested)

	_, err = contract.VestedAmount(ctx, 1, userAccount, 2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "RuleIndexOutOfRange")
}

func TestVestedAmountNeverDecreases(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	// 1000 tokens over four 30-day intervals; at 25% the user's share is
	// 250, one tranche of 62 per completed interval (truncation caught up
	// at the end).
	_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)
	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 25))

	steps := []struct {
		at   uint64
		want string
	}{
		{vestingStart - oneDay, "0"},
		{vestingStart, "0"},
		{vestingStart + oneDay, "0"},
		{vestingStart + thirtyDays, "62"},
		{vestingStart + 45*oneDay, "62"},
		{vestingStart + 60*oneDay, "125"},
		{vestingStart + 90*oneDay, "187"},
		{vestingStart + 120*oneDay, "250"},
		// From the end of the schedule on, exactly the full share.
		{vestingStart + 130*oneDay, "250"},
		{vestingStart + 500*oneDay, "250"},
		{vestingStart + 10000*oneDay, "250"},
	}

	prev := big.NewInt(-1)
	for _, step := range steps {
		setTxTime(ctx, step.at)

		vested, err := contract.VestedAmount(ctx, 1, userAccount, 0)
		require.NoError(t, err)
		require.Equal(t, step.want, vested)

		cur, ok := new(big.Int).SetString(vested, 10)
		require.True(t, ok)
		require.True(t, cur.Cmp(prev) >= 0, "vested amount decreased at %d", step.at)
		prev = cur
	}
}

func TestSetAllocation(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	setSigner(ctx, userAccount)
	err := contract.SetAllocation(ctx, 1, userAccount, 10)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not the administrator")

	setSigner(ctx, adminAccount)

	err = contract.SetAllocation(ctx, 1, "bogus", 10)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidAddress")

	err = contract.SetAllocation(ctx, 1, userAccount, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidPercentage")

	err = contract.SetAllocation(ctx, 1, userAccount, 101)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidPercentage")

	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 60))
	require.NoError(t, contract.SetAllocation(ctx, 1, otherAccount, 40))

	total, err := contract.GetTotalAllocation(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(100), total)

	require.Len(t, eventPayloads(ctx, "AllocationSet"), 2)

	// Raising an existing allocation above the remaining headroom fails.
	err = contract.SetAllocation(ctx, 1, userAccount, 61)
	require.Error(t, err)
	require.Contains(t, err.Error(), "AllocationExceedsLimit")
}

func TestSetAllocationReplacesPercentage(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 60))
	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 30))

	total, err := contract.GetTotalAllocation(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(30), total)

	allocation, err := contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, uint64(30), allocation.Percentage)
}

func TestSetAllocations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		users       []string
		percentages []uint64
		wantErr     string
		wantTotal   uint64
	}{
		{
			name:    "no users",
			wantErr: "NoUsers",
		},
		{
			name:        "length mismatch",
			users:       []string{userAccount},
			percentages: []uint64{10, 20},
			wantErr:     "ArraysLengthMismatch",
		},
		{
			name:        "zero percentage entry",
			users:       []string{userAccount},
			percentages: []uint64{0},
			wantErr:     "InvalidPercentage",
		},
		{
			name:        "invalid address entry",
			users:       []string{userAccount, "bogus"},
			percentages: []uint64{10, 20},
			wantErr:     "InvalidAddress",
		},
		{
			name:        "combined above limit",
			users:       []string{userAccount, otherAccount},
			percentages: []uint64{60, 50},
			wantErr:     "AllocationExceedsLimit",
		},
		{
			name:        "grants all entries",
			users:       []string{userAccount, otherAccount},
			percentages: []uint64{25, 30},
			wantTotal:   55,
		},
		{
			name:        "last duplicate wins",
			users:       []string{userAccount, userAccount},
			percentages: []uint64{60, 50},
			wantTotal:   50,
		},
		{
			// The 100% limit settles once after the whole batch, so a
			// running total above it is fine as long as a later entry
			// brings it back down.
			name:        "mid-batch overshoot corrected",
			users:       []string{userAccount, otherAccount, userAccount},
			percentages: []uint64{90, 90, 5},
			wantTotal:   95,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			contract, _, ctx, _ := newVestingContract(t)

			err := contract.SetAllocations(ctx, 1, tt.users, tt.percentages)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			total, err := contract.GetTotalAllocation(ctx, 1)
			require.NoError(t, err)
			require.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestBatchAllocationAtomicity(t *testing.T) {
	t.Parallel()

	store := chirpsdk.NewMemStore()
	runtime := chirpsdk.NewRuntime(store)
	contract := vesting.NewSmartContract(&tokenmocks.Service{})
	admin := chirpsdk.SignerID(adminAccount)

	_, err := runtime.Submit(admin, func(ctx chirpsdk.TransactionContextInterface) error {
		return contract.Initialize(ctx, adminAccount)
	})
	require.NoError(t, err)

	_, err = runtime.Submit(admin, func(ctx chirpsdk.TransactionContextInterface) error {
		return contract.SetAllocations(ctx, 1, []string{userAccount, otherAccount}, []uint64{60, 50})
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "AllocationExceedsLimit")

	// The failed batch left nothing behind, not even its first entry.
	err = runtime.Query(admin, func(ctx chirpsdk.TransactionContextInterface) error {
		allocation, err := vesting.GetUserAllocation(ctx, 1, userAccount)
		require.NoError(t, err)
		require.Nil(t, allocation)
		return nil
	})
	require.NoError(t, err)

	_, err = runtime.Submit(admin, func(ctx chirpsdk.TransactionContextInterface) error {
		return contract.SetAllocations(ctx, 1, []string{userAccount, otherAccount}, []uint64{60, 40})
	})
	require.NoError(t, err)

	err = runtime.Query(admin, func(ctx chirpsdk.TransactionContextInterface) error {
		total, err := contract.GetTotalAllocation(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, uint64(100), total)
		return nil
	})
	require.NoError(t, err)
}

func TestRemoveAllocation(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 40))
	require.NoError(t, contract.SetAllocation(ctx, 1, otherAccount, 20))

	setSigner(ctx, userAccount)
	err := contract.RemoveAllocation(ctx, 1, userAccount)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not the administrator")

	setSigner(ctx, adminAccount)
	require.NoError(t, contract.RemoveAllocation(ctx, 1, userAccount))

	total, err := contract.GetTotalAllocation(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(20), total)

	allocation, err := contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, uint64(0), allocation.Percentage)

	err = contract.RemoveAllocation(ctx, 1, userAccount)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NoAllocation")

	require.Len(t, eventPayloads(ctx, "AllocationRemoved"), 1)
}

func TestClaimFollowsSchedule(t *testing.T) {
	t.Parallel()

	contract, tokenService, ctx, _ := newVestingContract(t)

	// 1000 tokens released over four 30-day intervals; the user holds 25%,
	// so their full share is 250.
	_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)
	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 25))

	setSigner(ctx, otherAccount)
	require.NoError(t, contract.DepositTokens(ctx, 1, "1000"))

	setSigner(ctx, userAccount)

	// Nothing unlocks before the first interval completes.
	setTxTime(ctx, vestingStart+oneDay)
	err = contract.Claim(ctx, 1)
	require.ErrorIs(t, err, vesting.ErrNothingToClaim)

	// 45 days in one of four intervals is complete: floor(250 * 1/4) = 62.
	setTxTime(ctx, vestingStart+45*oneDay)

	vested, err := contract.VestedAmount(ctx, 1, userAccount, 0)
	require.NoError(t, err)
	require.Equal(t, "62", vested)

	claimable, err := contract.ClaimableAmount(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "62", claimable.TotalClaimable)
	require.Equal(t, []uint64{0}, claimable.RuleIDs)
	require.Equal(t, []string{"62"}, claimable.Amounts)

	require.NoError(t, contract.Claim(ctx, 1))
	require.Equal(t, 1, tokenService.TransferCallCount())
	_, from, to, amount := tokenService.TransferArgsForCall(0)
	require.Equal(t, vesting.ContractAccount, from)
	require.Equal(t, userAccount, to)
	require.Equal(t, "62", amount.String())

	// A second claim at the same time has nothing left.
	err = contract.Claim(ctx, 1)
	require.ErrorIs(t, err, vesting.ErrNothingToClaim)

	// Past the end of the schedule the remainder tops the user up to the
	// full 250 despite earlier truncation.
	setTxTime(ctx, vestingStart+130*oneDay)
	require.NoError(t, contract.Claim(ctx, 1))
	require.Equal(t, 2, tokenService.TransferCallCount())
	_, _, _, amount = tokenService.TransferArgsForCall(1)
	require.Equal(t, "188", amount.String())

	totals, err := contract.GetProjectTotals(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "250", totals.Claimed)
	require.Equal(t, "1000", totals.Deposited)

	allocation, err := contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "250", allocation.LastClaimed)
	require.Equal(t, "250", allocation.RuleClaims["0"])

	setTxTime(ctx, vestingStart+500*oneDay)
	err = contract.Claim(ctx, 1)
	require.ErrorIs(t, err, vesting.ErrNothingToClaim)

	// Re-granting a different percentage keeps the claim record, so the
	// user cannot re-claim what they already took.
	setSigner(ctx, adminAccount)
	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 10))
	setSigner(ctx, userAccount)

	allocation, err = contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, uint64(10), allocation.Percentage)
	require.Equal(t, "250", allocation.LastClaimed)
	require.Equal(t, "250", allocation.RuleClaims["0"])

	// The shrunken share is below what was already paid out, which
	// surfaces as an explicit error instead of a negative claim.
	err = contract.Claim(ctx, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ClaimExceedsEntitlement")

	payloads := eventPayloads(ctx, "Claimed")
	require.Len(t, payloads, 2)
	var event vesting.ClaimedEvent
	require.NoError(t, json.Unmarshal(payloads[0], &event))
	require.Equal(t, userAccount, event.User)
	require.Equal(t, "62", event.Amount)
}

func TestClaimAcrossRules(t *testing.T) {
	t.Parallel()

	contract, tokenService, ctx, _ := newVestingContract(t)

	// Two rules on different schedules: 1000 over four 30-day intervals
	// from the start, 600 over three 10-day intervals beginning 30 days
	// later. The user holds 50%, so their shares are 500 and 300.
	_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)
	_, err = contract.CreateVestingRule(ctx, 1, "600", 10*oneDay, vestingStart+thirtyDays, 3)
	require.NoError(t, err)

	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 50))
	require.NoError(t, contract.DepositTokens(ctx, 1, "1600"))

	setSigner(ctx, userAccount)

	// 45 days in: rule 0 has one of four intervals (125), rule 1 one of
	// three (100).
	setTxTime(ctx, vestingStart+45*oneDay)

	claimable, err := contract.ClaimableAmount(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1}, claimable.RuleIDs)
	require.Equal(t, []string{"125", "100"}, claimable.Amounts)
	require.Equal(t, "225", claimable.TotalClaimable)

	require.NoError(t, contract.Claim(ctx, 1))
	_, _, _, amount := tokenService.TransferArgsForCall(0)
	require.Equal(t, "225", amount.String())

	allocation, err := contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "225", allocation.LastClaimed)
	require.Equal(t, "125", allocation.RuleClaims["0"])
	require.Equal(t, "100", allocation.RuleClaims["1"])

	// 70 days in: rule 0 reaches two intervals (250), rule 1 runs past its
	// schedule and pays out fully (300). The claim is the sum of the two
	// per-rule deltas.
	setTxTime(ctx, vestingStart+70*oneDay)
	require.NoError(t, contract.Claim(ctx, 1))
	require.Equal(t, 2, tokenService.TransferCallCount())
	_, _, _, amount = tokenService.TransferArgsForCall(1)
	require.Equal(t, "325", amount.String())

	// The aggregate equals the sum of the per-rule marks.
	allocation, err = contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "550", allocation.LastClaimed)
	require.Equal(t, "250", allocation.RuleClaims["0"])
	require.Equal(t, "300", allocation.RuleClaims["1"])

	claimable, err = contract.ClaimableAmount(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "0", claimable.TotalClaimable)
	require.Equal(t, []string{"0", "0"}, claimable.Amounts)

	totals, err := contract.GetProjectTotals(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "550", totals.Claimed)
}

func TestClaimSurvivesRuleDeletion(t *testing.T) {
	t.Parallel()

	contract, tokenService, ctx, _ := newVestingContract(t)

	// Two identical rules of 1000 over four 30-day intervals. The user
	// holds 25%, a share of 250 from each rule.
	_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)
	_, err = contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)

	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 25))
	require.NoError(t, contract.DepositTokens(ctx, 1, "2000"))

	setSigner(ctx, userAccount)

	// 45 days in both rules have released one of four tranches: 62 each.
	setTxTime(ctx, vestingStart+45*oneDay)
	require.NoError(t, contract.Claim(ctx, 1))
	_, _, _, amount := tokenService.TransferArgsForCall(0)
	require.Equal(t, "124", amount.String())

	setSigner(ctx, adminAccount)
	require.NoError(t, contract.DeleteVestingRule(ctx, 1, 0))
	setSigner(ctx, userAccount)

	// 75 days in the surviving rule has vested 125, 62 of it already paid.
	setTxTime(ctx, vestingStart+75*oneDay)

	claimable, err := contract.ClaimableAmount(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, claimable.RuleIDs)
	require.Equal(t, []string{"63"}, claimable.Amounts)
	require.Equal(t, "63", claimable.TotalClaimable)

	// The claim pays exactly what the view reported.
	require.NoError(t, contract.Claim(ctx, 1))
	require.Equal(t, 2, tokenService.TransferCallCount())
	_, _, _, amount = tokenService.TransferArgsForCall(1)
	require.Equal(t, "63", amount.String())

	// The deleted rule's mark stays frozen and the aggregate still equals
	// the sum of all marks, orphan included.
	allocation, err := contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "187", allocation.LastClaimed)
	require.Equal(t, "62", allocation.RuleClaims["0"])
	require.Equal(t, "125", allocation.RuleClaims["1"])

	// Past the end of the schedule the surviving rule tops up to its full
	// 250 and nothing more after that.
	setTxTime(ctx, vestingStart+130*oneDay)
	require.NoError(t, contract.Claim(ctx, 1))
	require.Equal(t, 3, tokenService.TransferCallCount())
	_, _, _, amount = tokenService.TransferArgsForCall(2)
	require.Equal(t, "125", amount.String())

	err = contract.Claim(ctx, 1)
	require.ErrorIs(t, err, vesting.ErrNothingToClaim)

	totals, err := contract.GetProjectTotals(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "312", totals.Claimed)
}

func TestClaimPreconditions(t *testing.T) {
	t.Parallel()

	t.Run("token not configured", func(t *testing.T) {
		t.Parallel()

		ctx, _ := newTestContext()
		contract := vesting.NewSmartContract(&tokenmocks.Service{})
		setSigner(ctx, adminAccount)
		require.NoError(t, contract.Initialize(ctx, adminAccount))

		setSigner(ctx, userAccount)
		err := contract.Claim(ctx, 1)
		require.ErrorIs(t, err, vesting.ErrTokenNotSet)
	})

	t.Run("unknown project", func(t *testing.T) {
		t.Parallel()

		contract, _, ctx, _ := newVestingContract(t)
		setSigner(ctx, userAccount)

		err := contract.Claim(ctx, 9)
		require.Error(t, err)
		require.Contains(t, err.Error(), "InvalidProject")
	})

	t.Run("no allocation", func(t *testing.T) {
		t.Parallel()

		contract, _, ctx, _ := newVestingContract(t)
		_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
		require.NoError(t, err)

		setSigner(ctx, userAccount)
		err = contract.Claim(ctx, 1)
		require.ErrorIs(t, err, vesting.ErrNothingToClaim)
	})

	t.Run("deposits do not cover the claim", func(t *testing.T) {
		t.Parallel()

		contract, _, ctx, _ := newVestingContract(t)
		_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
		require.NoError(t, err)
		require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 25))

		setSigner(ctx, userAccount)
		setTxTime(ctx, vestingStart+45*oneDay)
		err = contract.Claim(ctx, 1)
		require.Error(t, err)
		require.Contains(t, err.Error(), "deposits cannot cover")
	})
}

func TestClaimReentrancyBlocked(t *testing.T) {
	t.Parallel()

	contract, tokenService, ctx, _ := newVestingContract(t)

	_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)
	require.NoError(t, contract.SetAllocation(ctx, 1, userAccount, 25))
	require.NoError(t, contract.DepositTokens(ctx, 1, "1000"))

	setSigner(ctx, userAccount)
	setTxTime(ctx, vestingStart+45*oneDay)

	// A token that calls back into Claim mid-transfer hits the guard.
	tokenService.TransferStub = func(innerCtx chirpsdk.TransactionContextInterface, from, to string, amount *big.Int) error {
		return contract.Claim(innerCtx, 1)
	}

	err = contract.Claim(ctx, 1)
	require.ErrorIs(t, err, chirpsdk.ErrReentrantCall)
	require.Contains(t, err.Error(), "Claim is already in progress")
	require.Equal(t, 1, tokenService.TransferCallCount())
}

func TestVerifyAndSetAllocation(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	setSigner(ctx, userAccount)
	err := contract.VerifyAndSetAllocation(ctx, 1, 25, nil)
	require.ErrorIs(t, err, vesting.ErrMerkleRootNotSet)

	leaves := []string{
		vesting.ComputeLeaf(1, userAccount, 25),
		vesting.ComputeLeaf(1, otherAccount, 30),
		vesting.ComputeLeaf(2, userAccount, 60),
	}
	root, proofs := vesting.BuildMerkleTree(leaves)

	err = contract.SetMerkleRoot(ctx, root)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not the administrator")

	setSigner(ctx, adminAccount)
	err = contract.SetMerkleRoot(ctx, "zznotahash")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidMerkleRoot")

	require.NoError(t, contract.SetMerkleRoot(ctx, root))
	require.Len(t, eventPayloads(ctx, "MerkleRootUpdated"), 1)

	setSigner(ctx, userAccount)
	require.NoError(t, contract.VerifyAndSetAllocation(ctx, 1, 25, proofs[0]))

	allocation, err := contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, uint64(25), allocation.Percentage)

	total, err := contract.GetTotalAllocation(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(25), total)

	// A percentage other than the committed one fails.
	err = contract.VerifyAndSetAllocation(ctx, 1, 30, proofs[0])
	require.ErrorIs(t, err, vesting.ErrInvalidMerkleProof)

	// The leaf binds the signer: another user cannot replay the proof.
	setSigner(ctx, otherAccount)
	err = contract.VerifyAndSetAllocation(ctx, 1, 25, proofs[0])
	require.ErrorIs(t, err, vesting.ErrInvalidMerkleProof)

	// Entries for other projects land on those projects only.
	setSigner(ctx, userAccount)
	require.NoError(t, contract.VerifyAndSetAllocation(ctx, 2, 60, proofs[2]))

	total, err = contract.GetTotalAllocation(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(60), total)

	require.Len(t, eventPayloads(ctx, "AllocationProven"), 2)
}

func TestVerifyAndSetAllocationResetsClaims(t *testing.T) {
	t.Parallel()

	contract, tokenService, ctx, _ := newVestingContract(t)

	_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)
	require.NoError(t, contract.DepositTokens(ctx, 1, "1000"))

	leaves := []string{vesting.ComputeLeaf(1, userAccount, 25)}
	root, proofs := vesting.BuildMerkleTree(leaves)
	require.NoError(t, contract.SetMerkleRoot(ctx, root))

	setSigner(ctx, userAccount)
	require.NoError(t, contract.VerifyAndSetAllocation(ctx, 1, 25, proofs[0]))

	setTxTime(ctx, vestingStart+45*oneDay)
	require.NoError(t, contract.Claim(ctx, 1))
	require.Equal(t, 1, tokenService.TransferCallCount())

	allocation, err := contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "62", allocation.LastClaimed)

	// Proving again adopts the entry afresh, claim bookkeeping included.
	require.NoError(t, contract.VerifyAndSetAllocation(ctx, 1, 25, proofs[0]))

	allocation, err = contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "0", allocation.LastClaimed)
	require.Empty(t, allocation.RuleClaims)

	claimable, err := contract.ClaimableAmount(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "62", claimable.TotalClaimable)
}

func TestDepositTokens(t *testing.T) {
	t.Parallel()

	contract, tokenService, ctx, _ := newVestingContract(t)
	setSigner(ctx, userAccount)

	err := contract.DepositTokens(ctx, 1, "abc")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidAmount")

	err = contract.DepositTokens(ctx, 1, "0")
	require.ErrorIs(t, err, vesting.ErrNonPositiveVestingAmount)

	tokenService.AllowanceReturns(big.NewInt(10), nil)
	err = contract.DepositTokens(ctx, 1, "50")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InsufficientAllowance")

	tokenService.AllowanceReturns(big.NewInt(1000000), nil)
	require.NoError(t, contract.DepositTokens(ctx, 1, "50"))

	require.Equal(t, 1, tokenService.TransferFromCallCount())
	_, spender, from, to, amount := tokenService.TransferFromArgsForCall(0)
	require.Equal(t, vesting.ContractAccount, spender)
	require.Equal(t, userAccount, from)
	require.Equal(t, vesting.ContractAccount, to)
	require.Equal(t, "50", amount.String())

	require.NoError(t, contract.DepositTokens(ctx, 1, "100"))

	totals, err := contract.GetProjectTotals(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "150", totals.Deposited)

	require.Len(t, eventPayloads(ctx, "TokensDeposited"), 2)
}

func TestDepositTokensRequiresToken(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext()
	contract := vesting.NewSmartContract(&tokenmocks.Service{})
	setSigner(ctx, adminAccount)
	require.NoError(t, contract.Initialize(ctx, adminAccount))

	err := contract.DepositTokens(ctx, 1, "50")
	require.ErrorIs(t, err, vesting.ErrTokenNotSet)
}

func TestPauseLifecycle(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	setSigner(ctx, userAccount)
	err := contract.Pause(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not the administrator")

	setSigner(ctx, adminAccount)
	require.NoError(t, contract.Pause(ctx))

	paused, err := vesting.IsPaused(ctx)
	require.NoError(t, err)
	require.True(t, paused)

	err = contract.Pause(ctx)
	require.ErrorIs(t, err, vesting.ErrContractPaused)

	// Claims, deposits and proofs stop while paused.
	setSigner(ctx, userAccount)
	err = contract.Claim(ctx, 1)
	require.ErrorIs(t, err, vesting.ErrContractPaused)
	err = contract.DepositTokens(ctx, 1, "50")
	require.ErrorIs(t, err, vesting.ErrContractPaused)
	err = contract.VerifyAndSetAllocation(ctx, 1, 10, nil)
	require.ErrorIs(t, err, vesting.ErrContractPaused)

	// Administrative configuration stays available.
	setSigner(ctx, adminAccount)
	_, err = contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)

	require.NoError(t, contract.Unpause(ctx))

	paused, err = vesting.IsPaused(ctx)
	require.NoError(t, err)
	require.False(t, paused)

	err = contract.Unpause(ctx)
	require.ErrorIs(t, err, vesting.ErrContractNotPaused)

	require.Len(t, eventPayloads(ctx, "VestingPaused"), 1)
	require.Len(t, eventPayloads(ctx, "VestingUnpaused"), 1)
}

func TestAllocationViews(t *testing.T) {
	t.Parallel()

	contract, _, ctx, _ := newVestingContract(t)

	_, err := contract.CreateVestingRule(ctx, 1, "1000", thirtyDays, vestingStart, 4)
	require.NoError(t, err)

	_, err = contract.GetAllocation(ctx, 1, "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidAddress")

	// Unknown users read as zero allocations.
	allocation, err := contract.GetAllocation(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, uint64(0), allocation.Percentage)
	require.Equal(t, "0", allocation.LastClaimed)

	claimable, err := contract.ClaimableAmount(ctx, 1, userAccount)
	require.NoError(t, err)
	require.Equal(t, "0", claimable.TotalClaimable)
	require.Empty(t, claimable.RuleIDs)

	_, err = contract.VestedAmount(ctx, 1, userAccount, 7)
	require.Error(t, err)
	require.Contains(t, err.Error(), "RuleIndexOutOfRange")

	_, err = contract.GetTotalAllocation(ctx, 9)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidProject")
}

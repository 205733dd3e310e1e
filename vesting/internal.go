package vesting

import (
	"math/big"
)

var hundred = big.NewInt(100)

type ruleEntitlement struct {
	ruleID    uint64
	vested    *big.Int
	claimable *big.Int
}

// vestedAmount computes how many tokens of a rule's pool a user holding
// percentage is entitled to at time now, before subtracting prior claims.
// Nothing vests before StartTime; afterwards one equal tranche of the
// user's share unlocks per completed interval, up to Repetitions. The
// user's share is fixed first (TotalTokens * percentage / 100) so the
// full share is reachable at the end of the schedule despite truncation.
func vestedAmount(rule *VestingRule, percentage uint64, now uint64) (*big.Int, error) {
	if rule.IntervalLength == 0 || rule.Repetitions == 0 {
		return nil, ErrMalformedRule(rule.RuleID)
	}

	totalTokens, ok := new(big.Int).SetString(rule.TotalTokens, 10)
	if !ok || totalTokens.Sign() <= 0 {
		return nil, ErrMalformedRule(rule.RuleID)
	}

	if now < rule.StartTime {
		return big.NewInt(0), nil
	}

	intervals := (now - rule.StartTime) / rule.IntervalLength
	if intervals > rule.Repetitions {
		intervals = rule.Repetitions
	}

	maxUserShare := new(big.Int).Mul(totalTokens, new(big.Int).SetUint64(percentage))
	maxUserShare.Div(maxUserShare, hundred)

	vested := new(big.Int).Mul(maxUserShare, new(big.Int).SetUint64(intervals))
	vested.Div(vested, new(big.Int).SetUint64(rule.Repetitions))

	return vested, nil
}

// computeEntitlements walks every rule of a project and returns the per-rule
// vested and still-claimable amounts for one allocation, plus the claimable
// total. A rule whose recorded claims exceed its current entitlement fails
// the whole computation rather than going negative.
func computeEntitlements(project uint64, user string, rules []*VestingRule, allocation *UserAllocation, now uint64) ([]ruleEntitlement, *big.Int, error) {
	total := big.NewInt(0)
	entitlements := make([]ruleEntitlement, 0, len(rules))

	for _, rule := range rules {
		vested, err := vestedAmount(rule, allocation.Percentage, now)
		if err != nil {
			return nil, nil, err
		}

		claimed, err := parseClaimedAmount(allocation.RuleClaims[ruleClaimKey(rule.RuleID)])
		if err != nil {
			return nil, nil, err
		}

		if vested.Cmp(claimed) < 0 {
			return nil, nil, ErrClaimExceedsEntitlement(project, user)
		}

		claimable := new(big.Int).Sub(vested, claimed)
		total.Add(total, claimable)
		entitlements = append(entitlements, ruleEntitlement{ruleID: rule.RuleID, vested: vested, claimable: claimable})
	}

	return entitlements, total, nil
}

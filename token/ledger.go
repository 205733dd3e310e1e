package token

import (
	"fmt"
	"math/big"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

const (
	totalSupplyKey = "token_totalsupply"
	minterKey      = "token_minter"
)

func balanceKey(holder string) string {
	return fmt.Sprintf("token_balance_%s", holder)
}

func allowanceKey(owner, spender string) string {
	return fmt.Sprintf("token_allowance_%s_%s", owner, spender)
}

// Ledger is the state-backed Service implementation. Amounts are stored as
// decimal strings; an absent key reads as zero.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Mint credits to and grows the total supply. The first mint locks the
// minter role to its signer; later mints must come from the same signer.
func (l *Ledger) Mint(ctx chirpsdk.TransactionContextInterface, to string, amount *big.Int) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	signer, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return fmt.Errorf("failed to read client id: %v", err)
	}

	minter, err := ctx.GetState(minterKey)
	if err != nil {
		return fmt.Errorf("failed to get minter: %v", err)
	}
	if minter == nil {
		if err := ctx.PutState(minterKey, []byte(signer)); err != nil {
			return fmt.Errorf("failed to set minter: %v", err)
		}
	} else if string(minter) != signer {
		return fmt.Errorf("%w: %s", ErrNotMinter, signer)
	}

	balance, err := getAmount(ctx, balanceKey(to))
	if err != nil {
		return err
	}
	balance.Add(balance, amount)
	if err := putAmount(ctx, balanceKey(to), balance); err != nil {
		return err
	}

	supply, err := getAmount(ctx, totalSupplyKey)
	if err != nil {
		return err
	}
	supply.Add(supply, amount)
	if err := putAmount(ctx, totalSupplyKey, supply); err != nil {
		return err
	}

	return EmitMint(ctx, to, amount.String())
}

// Approve sets the allowance granted by the invocation signer to spender.
// It replaces any previous allowance rather than adding to it.
func (l *Ledger) Approve(ctx chirpsdk.TransactionContextInterface, spender string, amount *big.Int) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	owner, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return fmt.Errorf("failed to read client id: %v", err)
	}

	if err := putAmount(ctx, allowanceKey(owner, spender), amount); err != nil {
		return err
	}

	return EmitApproval(ctx, owner, spender, amount.String())
}

// Minter returns the locked minter address, or "" before the first mint.
func (l *Ledger) Minter(ctx chirpsdk.TransactionContextInterface) (string, error) {
	minter, err := ctx.GetState(minterKey)
	if err != nil {
		return "", fmt.Errorf("failed to get minter: %v", err)
	}
	return string(minter), nil
}

func (l *Ledger) TotalSupply(ctx chirpsdk.TransactionContextInterface) (*big.Int, error) {
	return getAmount(ctx, totalSupplyKey)
}

func (l *Ledger) BalanceOf(ctx chirpsdk.TransactionContextInterface, holder string) (*big.Int, error) {
	return getAmount(ctx, balanceKey(holder))
}

func (l *Ledger) Allowance(ctx chirpsdk.TransactionContextInterface, owner, spender string) (*big.Int, error) {
	return getAmount(ctx, allowanceKey(owner, spender))
}

func (l *Ledger) Transfer(ctx chirpsdk.TransactionContextInterface, from, to string, amount *big.Int) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	fromBalance, err := getAmount(ctx, balanceKey(from))
	if err != nil {
		return err
	}
	if fromBalance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: balance of %s is %s, need %s", ErrInsufficientBalance, from, fromBalance, amount)
	}

	// A self-transfer moves nothing.
	if from != to {
		fromBalance.Sub(fromBalance, amount)
		if err := putAmount(ctx, balanceKey(from), fromBalance); err != nil {
			return err
		}

		toBalance, err := getAmount(ctx, balanceKey(to))
		if err != nil {
			return err
		}
		toBalance.Add(toBalance, amount)
		if err := putAmount(ctx, balanceKey(to), toBalance); err != nil {
			return err
		}
	}

	return EmitTransfer(ctx, from, to, amount.String())
}

func (l *Ledger) TransferFrom(ctx chirpsdk.TransactionContextInterface, spender, from, to string, amount *big.Int) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	allowance, err := getAmount(ctx, allowanceKey(from, spender))
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: allowance of %s for %s is %s, need %s", ErrInsufficientAllowance, from, spender, allowance, amount)
	}

	allowance.Sub(allowance, amount)
	if err := putAmount(ctx, allowanceKey(from, spender), allowance); err != nil {
		return err
	}

	return l.Transfer(ctx, from, to, amount)
}

func validAmount(amount *big.Int) error {
	if amount == nil {
		return fmt.Errorf("%w: amount is nil", ErrInvalidAmount)
	}
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return nil
}

func getAmount(ctx chirpsdk.TransactionContextInterface, key string) (*big.Int, error) {
	amountAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get amount with Key %s: %v", key, err)
	}

	amount := big.NewInt(0)
	if amountAsBytes != nil {
		_, success := amount.SetString(string(amountAsBytes), 10)
		if !success {
			return nil, fmt.Errorf("failed to parse amount with Key %s", key)
		}
	}

	return amount, nil
}

func putAmount(ctx chirpsdk.TransactionContextInterface, key string, amount *big.Int) error {
	err := ctx.PutState(key, []byte(amount.String()))
	if err != nil {
		return fmt.Errorf("failed to set amount with Key %s: %v", key, err)
	}
	return nil
}

var _ Service = (*Ledger)(nil)

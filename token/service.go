// Package token is the fungible token ledger the launchpad contracts settle
// against. Balances, allowances and the total supply live in the same world
// state as the contracts, so a token movement commits or rolls back together
// with the contract call that caused it.
package token

import (
	"math/big"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

//go:generate counterfeiter -o mocks/service.go -fake-name Service . Service

// Service is the token surface the vesting and presale contracts depend on.
// Transfer debits from directly and is not gated on the invocation signer:
// the calling contract is trusted to have authorized the debit itself.
// TransferFrom spends a prior approval granted by from to spender.
type Service interface {
	TotalSupply(ctx chirpsdk.TransactionContextInterface) (*big.Int, error)
	BalanceOf(ctx chirpsdk.TransactionContextInterface, holder string) (*big.Int, error)
	Allowance(ctx chirpsdk.TransactionContextInterface, owner, spender string) (*big.Int, error)
	Transfer(ctx chirpsdk.TransactionContextInterface, from, to string, amount *big.Int) error
	TransferFrom(ctx chirpsdk.TransactionContextInterface, spender, from, to string, amount *big.Int) error
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
	"github.com/Chirpleyai/ChirpPadContracts/presale"
	"github.com/Chirpleyai/ChirpPadContracts/vesting"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Operate the utility token ledger",
}

var tokenMintCmd = &cobra.Command{
	Use:   "mint TO AMOUNT",
	Short: "Mint new supply to an account (minter only)",
	Args:  cobra.ExactArgs(2),
	RunE:  runTokenMint,
}

var tokenApproveCmd = &cobra.Command{
	Use:   "approve SPENDER AMOUNT",
	Short: "Approve a spender to pull from the signer's balance",
	Long: `approve lets SPENDER move up to AMOUNT out of the signer's balance.
The contract escrow accounts are the usual spenders:

  vesting deposits  ` + vesting.ContractAccount + `
  presale invests   ` + presale.ContractAccount,
	Args: cobra.ExactArgs(2),
	RunE: runTokenApprove,
}

var tokenBalanceCmd = &cobra.Command{
	Use:   "balance ACCOUNT",
	Short: "Show an account's token balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenBalance,
}

func runTokenMint(cmd *cobra.Command, args []string) error {
	amount, err := parseAmountArg(args[1])
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.token.Mint(ctx, args[0], amount)
		})
	})
}

func runTokenApprove(cmd *cobra.Command, args []string) error {
	amount, err := parseAmountArg(args[1])
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.token.Approve(ctx, args[0], amount)
		})
	})
}

func runTokenBalance(cmd *cobra.Command, args []string) error {
	return withHost(func(h *host) error {
		return h.query(func(ctx chirpsdk.TransactionContextInterface) error {
			balance, err := h.token.BalanceOf(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(balance.String())
			return nil
		})
	})
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
	"github.com/Chirpleyai/ChirpPadContracts/vesting"
)

var ruleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Manage vesting rules",
}

var (
	ruleTokens      string
	ruleInterval    uint64
	ruleStart       uint64
	ruleRepetitions uint64
)

var ruleAddCmd = &cobra.Command{
	Use:   "add PROJECT",
	Short: "Create a vesting rule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRuleAdd,
}

var ruleUpdateCmd = &cobra.Command{
	Use:   "update PROJECT INDEX",
	Short: "Replace the rule at an index",
	Args:  cobra.ExactArgs(2),
	RunE:  runRuleUpdate,
}

var ruleDeleteCmd = &cobra.Command{
	Use:   "delete PROJECT INDEX",
	Short: "Delete the rule at an index (the last rule moves into its place)",
	Args:  cobra.ExactArgs(2),
	RunE:  runRuleDelete,
}

var ruleListCmd = &cobra.Command{
	Use:   "list PROJECT",
	Short: "List the vesting rules of a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runRuleList,
}

var allocationCmd = &cobra.Command{
	Use:   "allocation",
	Short: "Manage vesting allocations",
}

var allocationSetCmd = &cobra.Command{
	Use:   "set PROJECT USER PERCENTAGE",
	Short: "Grant or replace a user's allocation percentage",
	Args:  cobra.ExactArgs(3),
	RunE:  runAllocationSet,
}

var allocationProveCmd = &cobra.Command{
	Use:   "prove PROJECT PERCENTAGE [PROOF...]",
	Short: "Claim an allocation with a merkle proof, as the signer",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAllocationProve,
}

var allocationShowCmd = &cobra.Command{
	Use:   "show PROJECT USER",
	Short: "Show a user's allocation and claimable breakdown",
	Args:  cobra.ExactArgs(2),
	RunE:  runAllocationShow,
}

var allocationRootCmd = &cobra.Command{
	Use:   "root HEX",
	Short: "Set the merkle root for self-service allocation proofs",
	Args:  cobra.ExactArgs(1),
	RunE:  runAllocationRoot,
}

var claimCmd = &cobra.Command{
	Use:   "claim PROJECT",
	Short: "Claim the signer's vested tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runClaim,
}

var depositCmd = &cobra.Command{
	Use:   "deposit PROJECT AMOUNT",
	Short: "Fund a project's vesting escrow from the signer's balance",
	Long: `deposit pulls AMOUNT from the signer's token balance into the vesting
escrow account. Approve the escrow first: chirppad token approve ` + vesting.ContractAccount + ` AMOUNT.`,
	Args: cobra.ExactArgs(2),
	RunE: runDeposit,
}

var poolsCmd = &cobra.Command{
	Use:   "pools",
	Short: "List the registered distribution pools",
	Args:  cobra.NoArgs,
	RunE:  runPools,
}

func init() {
	for _, cmd := range []*cobra.Command{ruleAddCmd, ruleUpdateCmd} {
		cmd.Flags().StringVar(&ruleTokens, "tokens", "", "total tokens vested by the rule (required)")
		cmd.Flags().Uint64Var(&ruleInterval, "interval", 0, "interval length in seconds (required)")
		cmd.Flags().Uint64Var(&ruleStart, "start", 0, "vesting start as a unix timestamp (required)")
		cmd.Flags().Uint64Var(&ruleRepetitions, "repetitions", 0, "number of intervals (required)")
		_ = cmd.MarkFlagRequired("tokens")
		_ = cmd.MarkFlagRequired("interval")
		_ = cmd.MarkFlagRequired("start")
		_ = cmd.MarkFlagRequired("repetitions")
	}
}

func runRuleAdd(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		var ruleID uint64
		err := h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			id, err := h.vesting.CreateVestingRule(ctx, project, ruleTokens, ruleInterval, ruleStart, ruleRepetitions)
			ruleID = id
			return err
		})
		if err != nil {
			return err
		}

		fmt.Printf("rule %d created for project %d\n", ruleID, project)
		return nil
	})
}

func runRuleUpdate(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}
	index, err := parseIndexArg(args[1])
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.vesting.UpdateVestingRule(ctx, project, index, ruleTokens, ruleInterval, ruleStart, ruleRepetitions)
		})
	})
}

func runRuleDelete(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}
	index, err := parseIndexArg(args[1])
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.vesting.DeleteVestingRule(ctx, project, index)
		})
	})
}

func runRuleList(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.query(func(ctx chirpsdk.TransactionContextInterface) error {
			rules, err := h.vesting.GetVestingRules(ctx, project)
			if err != nil {
				return err
			}
			return printJSON(rules)
		})
	})
}

func runAllocationSet(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}
	percentage, err := parseUintArg(args[2], "percentage")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.vesting.SetAllocation(ctx, project, args[1], percentage)
		})
	})
}

func runAllocationProve(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}
	percentage, err := parseUintArg(args[1], "percentage")
	if err != nil {
		return err
	}
	proof := args[2:]

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.vesting.VerifyAndSetAllocation(ctx, project, percentage, proof)
		})
	})
}

func runAllocationShow(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}
	user := args[1]

	return withHost(func(h *host) error {
		return h.query(func(ctx chirpsdk.TransactionContextInterface) error {
			allocation, err := h.vesting.GetAllocation(ctx, project, user)
			if err != nil {
				return err
			}
			claimable, err := h.vesting.ClaimableAmount(ctx, project, user)
			if err != nil {
				return err
			}

			return printJSON(struct {
				Allocation *vesting.UserAllocation     `json:"allocation"`
				Claimable  *vesting.ClaimableBreakdown `json:"claimable"`
			}{allocation, claimable})
		})
	})
}

func runAllocationRoot(cmd *cobra.Command, args []string) error {
	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.vesting.SetMerkleRoot(ctx, args[0])
		})
	})
}

func runClaim(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.vesting.Claim(ctx, project)
		})
	})
}

func runDeposit(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.vesting.DepositTokens(ctx, project, args[1])
		})
	})
}

func runPools(cmd *cobra.Command, args []string) error {
	return withHost(func(h *host) error {
		return h.query(func(ctx chirpsdk.TransactionContextInterface) error {
			pools, err := vesting.GetDistributionPools(ctx)
			if err != nil {
				return err
			}
			return printJSON(pools)
		})
	})
}

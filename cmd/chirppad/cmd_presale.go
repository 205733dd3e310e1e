package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
	"github.com/Chirpleyai/ChirpPadContracts/presale"
)

var presaleCmd = &cobra.Command{
	Use:   "presale",
	Short: "Manage the two-round investment flow",
}

var presaleTargetCmd = &cobra.Command{
	Use:   "target PROJECT AMOUNT",
	Short: "Set or raise the round-1 funding target",
	Args:  cobra.ExactArgs(2),
	RunE:  runPresaleTarget,
}

var presaleRound2Cap string

var presaleCapsCmd = &cobra.Command{
	Use:   "caps PROJECT [USER=CAP...]",
	Short: "Grant round-1 caps, or the uniform round-2 cap with --round2",
	Long: `caps grants per-user round-1 allocation caps from USER=CAP pairs.
With --round2 it instead sets the uniform cap every round-2 investor shares.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPresaleCaps,
}

var presaleInvestCmd = &cobra.Command{
	Use:   "invest PROJECT ROUND AMOUNT",
	Short: "Invest into an open round as the signer",
	Long: `invest pulls AMOUNT from the signer's token balance into the presale
escrow account. Approve the escrow first: chirppad token approve ` + presale.ContractAccount + ` AMOUNT.`,
	Args: cobra.ExactArgs(3),
	RunE: runPresaleInvest,
}

var presaleCompleteRound1Cmd = &cobra.Command{
	Use:   "complete-round1 PROJECT",
	Short: "Close round 1",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresaleCompleteRound1,
}

var presaleOpenRound2Cmd = &cobra.Command{
	Use:   "open-round2 PROJECT",
	Short: "Open round 2 for the capacity round 1 left unfilled",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresaleOpenRound2,
}

var presaleDisableRound2Cmd = &cobra.Command{
	Use:   "disable-round2 PROJECT",
	Short: "Permanently disable round 2",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresaleDisableRound2,
}

var presaleRemoveCmd = &cobra.Command{
	Use:   "remove PROJECT ROUND USER...",
	Short: "Remove users from a round, releasing their caps and investments",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runPresaleRemove,
}

var presaleWithdrawCmd = &cobra.Command{
	Use:   "withdraw TO AMOUNT",
	Short: "Move raised tokens out of the presale escrow (admin only)",
	Args:  cobra.ExactArgs(2),
	RunE:  runPresaleWithdraw,
}

var presaleStatusCmd = &cobra.Command{
	Use:   "status PROJECT",
	Short: "Show a project's round state, totals and remaining capacity",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresaleStatus,
}

func init() {
	presaleCapsCmd.Flags().StringVar(&presaleRound2Cap, "round2", "", "uniform per-user cap for round 2")
}

func runPresaleTarget(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.presale.SetRound1Target(ctx, project, args[1])
		})
	})
}

func runPresaleCaps(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	if presaleRound2Cap != "" {
		if len(args) > 1 {
			return fmt.Errorf("--round2 does not take USER=CAP pairs")
		}
		return withHost(func(h *host) error {
			return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
				return h.presale.SetRound2MaxAllocation(ctx, project, presaleRound2Cap)
			})
		})
	}

	if len(args) < 2 {
		return fmt.Errorf("need USER=CAP pairs or --round2")
	}

	users := make([]string, 0, len(args)-1)
	caps := make([]string, 0, len(args)-1)
	for _, pair := range args[1:] {
		user, cap, found := strings.Cut(pair, "=")
		if !found || user == "" || cap == "" {
			return fmt.Errorf("invalid cap %q: want USER=CAP", pair)
		}
		users = append(users, user)
		caps = append(caps, cap)
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.presale.SetRound1Allocations(ctx, project, users, caps)
		})
	})
}

func runPresaleInvest(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}
	round, err := parseRoundArg(args[1])
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.presale.Invest(ctx, project, round, args[2])
		})
	})
}

func runPresaleCompleteRound1(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.presale.CompleteRound1(ctx, project)
		})
	})
}

func runPresaleOpenRound2(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.presale.OpenRound2(ctx, project)
		})
	})
}

func runPresaleDisableRound2(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.presale.DisableRound2(ctx, project)
		})
	})
}

func runPresaleRemove(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}
	round, err := parseRoundArg(args[1])
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.presale.RemoveUsers(ctx, project, round, args[2:])
		})
	})
}

func runPresaleWithdraw(cmd *cobra.Command, args []string) error {
	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			return h.presale.Withdraw(ctx, args[0], args[1])
		})
	})
}

func runPresaleStatus(cmd *cobra.Command, args []string) error {
	project, err := parseUintArg(args[0], "project")
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		return h.query(func(ctx chirpsdk.TransactionContextInterface) error {
			state, err := presale.GetRoundState(ctx, project)
			if err != nil {
				return err
			}
			target, err := presale.GetRound1Target(ctx, project)
			if err != nil {
				return err
			}
			round1, err := presale.GetRound(ctx, project, presale.Round1)
			if err != nil {
				return err
			}
			round2, err := presale.GetRound(ctx, project, presale.Round2)
			if err != nil {
				return err
			}
			remaining, err := h.presale.GetRemainingRound2Capacity(ctx, project)
			if err != nil {
				return err
			}

			return printJSON(struct {
				Project         uint64         `json:"project"`
				State           string         `json:"state"`
				Round1Target    string         `json:"round1Target"`
				Round1          *presale.Round `json:"round1"`
				Round2          *presale.Round `json:"round2"`
				RemainingRound2 string         `json:"remainingRound2Capacity"`
			}{project, state, target, round1, round2, remaining})
		})
	})
}

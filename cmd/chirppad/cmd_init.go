package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
	"github.com/Chirpleyai/ChirpPadContracts/internal/config"
)

var (
	initAdmin  string
	initToken  string
	initHolder string
	initSupply string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the administrator, mint the genesis supply and bind the token",
	Long: `init sets up a fresh world state in one transaction: it mints the genesis
token supply, installs the administrator on both contracts and binds them to
the token address. Run it signed by the administrator account; it fails on a
world state that is already initialized.`,
	RunE: runInit,
}

var provisionFile string

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Apply a provisioning plan, one transaction per operation",
	Long: `provision reads a YAML plan of pools, vesting rules, allocations, merkle
roots and presale targets, and applies its operations in declared order. A
failing operation stops the run; operations already applied stay committed.`,
	RunE: runProvision,
}

func init() {
	initCmd.Flags().StringVar(&initAdmin, "admin", "", "administrator address (required)")
	initCmd.Flags().StringVar(&initToken, "token", "", "token address (required)")
	initCmd.Flags().StringVar(&initHolder, "holder", "", "genesis supply holder (defaults to the administrator)")
	initCmd.Flags().StringVar(&initSupply, "supply", "1000000000", "genesis token supply")
	_ = initCmd.MarkFlagRequired("admin")
	_ = initCmd.MarkFlagRequired("token")

	provisionCmd.Flags().StringVarP(&provisionFile, "file", "f", "", "provisioning plan (required)")
	_ = provisionCmd.MarkFlagRequired("file")
}

func runInit(cmd *cobra.Command, args []string) error {
	supply, err := parseAmountArg(initSupply)
	if err != nil {
		return err
	}

	holder := initHolder
	if holder == "" {
		holder = initAdmin
	}

	return withHost(func(h *host) error {
		err := h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			if err := h.token.Mint(ctx, holder, supply); err != nil {
				return err
			}
			if err := h.vesting.Initialize(ctx, initAdmin); err != nil {
				return err
			}
			if err := h.presale.Initialize(ctx, initAdmin); err != nil {
				return err
			}
			if err := h.vesting.SetTokenAddress(ctx, initToken); err != nil {
				return err
			}
			return h.presale.SetTokenAddress(ctx, initToken)
		})
		if err != nil {
			return err
		}

		logger.Info("world state initialized",
			zap.String("admin", initAdmin),
			zap.String("token", initToken),
			zap.String("supply", supply.String()),
		)
		return nil
	})
}

func runProvision(cmd *cobra.Command, args []string) error {
	plan, err := config.LoadPlan(provisionFile)
	if err != nil {
		return err
	}

	return withHost(func(h *host) error {
		for _, pool := range plan.Pools {
			err := h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
				return h.vesting.RegisterDistributionPool(ctx, pool)
			})
			if err != nil {
				return fmt.Errorf("register pool %s: %w", pool, err)
			}
		}

		for _, project := range plan.Vesting {
			for _, rule := range project.Rules {
				err := h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
					_, err := h.vesting.CreateVestingRule(ctx, project.Project,
						rule.TotalTokens, rule.IntervalLength, rule.StartTime, rule.Repetitions)
					return err
				})
				if err != nil {
					return fmt.Errorf("create rule for project %d: %w", project.Project, err)
				}
			}

			if len(project.Allocations) > 0 {
				users := make([]string, 0, len(project.Allocations))
				percentages := make([]uint64, 0, len(project.Allocations))
				for _, allocation := range project.Allocations {
					users = append(users, allocation.User)
					percentages = append(percentages, allocation.Percentage)
				}
				err := h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
					return h.vesting.SetAllocations(ctx, project.Project, users, percentages)
				})
				if err != nil {
					return fmt.Errorf("set allocations for project %d: %w", project.Project, err)
				}
			}

			if project.MerkleRoot != "" {
				err := h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
					return h.vesting.SetMerkleRoot(ctx, project.MerkleRoot)
				})
				if err != nil {
					return fmt.Errorf("set merkle root: %w", err)
				}
			}
		}

		for _, project := range plan.Presale {
			if project.Round1Target != "" {
				err := h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
					return h.presale.SetRound1Target(ctx, project.Project, project.Round1Target)
				})
				if err != nil {
					return fmt.Errorf("set round-1 target for project %d: %w", project.Project, err)
				}
			}

			if len(project.Round1Caps) > 0 {
				users := make([]string, 0, len(project.Round1Caps))
				caps := make([]string, 0, len(project.Round1Caps))
				for _, cap := range project.Round1Caps {
					users = append(users, cap.User)
					caps = append(caps, cap.Cap)
				}
				err := h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
					return h.presale.SetRound1Allocations(ctx, project.Project, users, caps)
				})
				if err != nil {
					return fmt.Errorf("set round-1 caps for project %d: %w", project.Project, err)
				}
			}

			if project.Round2MaxAllocation != "" {
				err := h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
					return h.presale.SetRound2MaxAllocation(ctx, project.Project, project.Round2MaxAllocation)
				})
				if err != nil {
					return fmt.Errorf("set round-2 cap for project %d: %w", project.Project, err)
				}
			}
		}

		logger.Info("provisioning plan applied", zap.String("plan", provisionFile))
		return nil
	})
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

var pauseCmd = &cobra.Command{
	Use:       "pause {vesting|presale}",
	Short:     "Pause a contract's user-facing operations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"vesting", "presale"},
	RunE:      runPause,
}

var unpauseCmd = &cobra.Command{
	Use:       "unpause {vesting|presale}",
	Short:     "Resume a paused contract",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"vesting", "presale"},
	RunE:      runUnpause,
}

func runPause(cmd *cobra.Command, args []string) error {
	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			switch args[0] {
			case "vesting":
				return h.vesting.Pause(ctx)
			case "presale":
				return h.presale.Pause(ctx)
			default:
				return fmt.Errorf("unknown contract %q: want vesting or presale", args[0])
			}
		})
	})
}

func runUnpause(cmd *cobra.Command, args []string) error {
	return withHost(func(h *host) error {
		return h.submit(func(ctx chirpsdk.TransactionContextInterface) error {
			switch args[0] {
			case "vesting":
				return h.vesting.Unpause(ctx)
			case "presale":
				return h.presale.Unpause(ctx)
			default:
				return fmt.Errorf("unknown contract %q: want vesting or presale", args[0])
			}
		})
	})
}

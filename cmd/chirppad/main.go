// chirppad administers the launchpad contracts against a local world state:
// the vesting allocation ledger, the presale round manager and the reference
// token ledger. Every subcommand runs as one atomic transaction whose events
// are journaled to SQLite.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Chirpleyai/ChirpPadContracts/internal/config"
)

var (
	dbPath      string
	journalPath string
	signerAddr  string
	logLevel    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chirppad",
	Short: "Administer the ChirpPad launchpad contracts",
	Long: `chirppad runs the launchpad contracts against a local world state.

Every subcommand is one transaction: either all of its state writes commit
and its events are journaled, or it leaves no trace. The signing account
comes from --signer or CHIRPPAD_SIGNER; admin operations must be signed by
the installed administrator.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		host, err := config.ParseHost()
		if err != nil {
			return err
		}

		// Precedence: explicit flag, then environment, then flag default.
		if !cmd.Flags().Changed("db") && host.DBPath != "" {
			dbPath = host.DBPath
		}
		if !cmd.Flags().Changed("journal") && host.JournalPath != "" {
			journalPath = host.JournalPath
		}
		if !cmd.Flags().Changed("signer") && host.Signer != "" {
			signerAddr = host.Signer
		}
		if !cmd.Flags().Changed("log-level") && host.LogLevel != "" {
			logLevel = host.LogLevel
		}

		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level %q: %w", logLevel, err)
		}

		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(level)
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "chirppad.db", "world state database path")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "chirppad-journal.db", "event journal database path")
	rootCmd.PersistentFlags().StringVar(&signerAddr, "signer", "", "signing account address")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	ruleCmd.AddCommand(ruleAddCmd, ruleUpdateCmd, ruleDeleteCmd, ruleListCmd)
	allocationCmd.AddCommand(allocationSetCmd, allocationProveCmd, allocationShowCmd, allocationRootCmd)
	presaleCmd.AddCommand(presaleTargetCmd, presaleCapsCmd, presaleInvestCmd,
		presaleCompleteRound1Cmd, presaleOpenRound2Cmd, presaleDisableRound2Cmd,
		presaleRemoveCmd, presaleWithdrawCmd, presaleStatusCmd)
	tokenCmd.AddCommand(tokenMintCmd, tokenApproveCmd, tokenBalanceCmd)

	rootCmd.AddCommand(initCmd, provisionCmd, ruleCmd, allocationCmd, claimCmd,
		depositCmd, presaleCmd, tokenCmd, poolsCmd, pauseCmd, unpauseCmd, eventsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

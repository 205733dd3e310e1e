package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chirpleyai/ChirpPadContracts/internal/journal"
)

var (
	eventsName  string
	eventsTx    string
	eventsLimit int
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Query the journaled contract events",
	Long: `events reads the local event journal, newest first. It never touches
world state, so it needs no signer.`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().StringVar(&eventsName, "name", "", "filter by event name")
	eventsCmd.Flags().StringVar(&eventsTx, "tx", "", "show one transaction's events in emit order")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 20, "maximum entries (0 for all)")
}

func runEvents(cmd *cobra.Command, args []string) error {
	j, err := journal.Open(journalPath)
	if err != nil {
		return err
	}
	defer j.Close()

	ctx := context.Background()

	var entries []journal.Entry
	if eventsTx != "" {
		entries, err = j.ByTx(ctx, eventsTx)
	} else {
		entries, err = j.List(ctx, eventsName, eventsLimit)
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Printf("%s  %s  #%d  %s  %s\n",
			entry.RecordedAt.Format(time.RFC3339), entry.TxID, entry.Seq, entry.Name, entry.Payload)
	}
	return nil
}

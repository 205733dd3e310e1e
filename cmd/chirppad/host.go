package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"go.uber.org/zap"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
	"github.com/Chirpleyai/ChirpPadContracts/internal/journal"
	"github.com/Chirpleyai/ChirpPadContracts/presale"
	"github.com/Chirpleyai/ChirpPadContracts/token"
	"github.com/Chirpleyai/ChirpPadContracts/vesting"
)

// host owns one open world state plus the contract set bound to it.
type host struct {
	store   *chirpsdk.BoltStore
	runtime *chirpsdk.Runtime
	journal *journal.Journal
	token   *token.Ledger
	vesting *vesting.SmartContract
	presale *presale.SmartContract
}

func openHost() (*host, error) {
	if signerAddr == "" {
		return nil, fmt.Errorf("signer required: pass --signer or set CHIRPPAD_SIGNER")
	}

	store, err := chirpsdk.OpenBolt(dbPath)
	if err != nil {
		return nil, err
	}

	j, err := journal.Open(journalPath)
	if err != nil {
		store.Close()
		return nil, err
	}

	ledger := token.NewLedger()
	return &host{
		store:   store,
		runtime: chirpsdk.NewRuntime(store),
		journal: j,
		token:   ledger,
		vesting: vesting.NewSmartContract(ledger),
		presale: presale.NewSmartContract(ledger),
	}, nil
}

func (h *host) close() {
	if err := h.journal.Close(); err != nil {
		logger.Warn("failed to close journal", zap.Error(err))
	}
	if err := h.store.Close(); err != nil {
		logger.Warn("failed to close store", zap.Error(err))
	}
}

func (h *host) signer() chirpsdk.SignerID {
	return chirpsdk.SignerID(signerAddr)
}

// submit runs fn as one transaction, journals the committed receipt and
// logs every event it emitted.
func (h *host) submit(fn func(ctx chirpsdk.TransactionContextInterface) error) error {
	receipt, err := h.runtime.Submit(h.signer(), fn)
	if err != nil {
		return err
	}

	if err := h.journal.Record(context.Background(), receipt); err != nil {
		logger.Warn("failed to journal receipt", zap.String("tx", receipt.TxID), zap.Error(err))
	}

	for _, event := range receipt.Events {
		logger.Info("event",
			zap.String("tx", receipt.TxID),
			zap.String("name", event.Name),
			zap.ByteString("payload", event.Payload),
		)
	}
	return nil
}

func (h *host) query(fn func(ctx chirpsdk.TransactionContextInterface) error) error {
	return h.runtime.Query(h.signer(), fn)
}

// withHost opens the host for one command invocation.
func withHost(fn func(h *host) error) error {
	h, err := openHost()
	if err != nil {
		return err
	}
	defer h.close()

	return fn(h)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func parseUintArg(value, name string) (uint64, error) {
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return parsed, nil
}

func parseIndexArg(value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid rule index %q", value)
	}
	return parsed, nil
}

func parseRoundArg(value string) (uint8, error) {
	parsed, err := strconv.ParseUint(value, 10, 8)
	if err != nil || (uint8(parsed) != presale.Round1 && uint8(parsed) != presale.Round2) {
		return 0, fmt.Errorf("invalid round %q: want 1 or 2", value)
	}
	return uint8(parsed), nil
}

func parseAmountArg(value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok || amount.Sign() <= 0 {
		return nil, fmt.Errorf("invalid amount %q", value)
	}
	return amount, nil
}

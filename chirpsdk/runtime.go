package chirpsdk

import (
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Contract is the base type contract structs embed. Name identifies the
// contract in logs and the event journal.
type Contract struct {
	Name string
}

// GetName returns the contract name.
func (c *Contract) GetName() string {
	return c.Name
}

// SignerID is a ClientIdentity carrying a fixed address.
type SignerID string

func (s SignerID) GetID() (string, error) {
	return string(s), nil
}

// Receipt describes a committed invocation: its id, timestamp and the events
// it emitted.
type Receipt struct {
	TxID      string
	Timestamp *timestamppb.Timestamp
	Events    []Event
}

// Runtime executes contract invocations against a Store. Each Submit is one
// atomic unit: either every state write and event commits, or none do.
type Runtime struct {
	store Store
}

// NewRuntime wraps a store.
func NewRuntime(store Store) *Runtime {
	return &Runtime{store: store}
}

// Submit runs fn inside a writable transaction. When fn fails, the
// transaction rolls back and the buffered events are discarded.
func (r *Runtime) Submit(signer ClientIdentity, fn func(ctx TransactionContextInterface) error) (*Receipt, error) {
	receipt := &Receipt{
		TxID:      uuid.NewString(),
		Timestamp: timestamppb.Now(),
	}
	err := r.store.Update(func(tx StoreTx) error {
		ctx := NewTransactionContext(tx, signer, receipt.TxID, receipt.Timestamp)
		if err := fn(ctx); err != nil {
			return err
		}
		receipt.Events = ctx.Events()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Query runs fn inside a read-only transaction. Writes and events from fn
// are rejected by the underlying transaction.
func (r *Runtime) Query(signer ClientIdentity, fn func(ctx TransactionContextInterface) error) error {
	return r.store.View(func(tx StoreTx) error {
		ctx := NewTransactionContext(tx, signer, uuid.NewString(), timestamppb.Now())
		return fn(ctx)
	})
}

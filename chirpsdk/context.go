package chirpsdk

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// KV is a key/value pair returned by prefix scans over the world state.
type KV struct {
	Key   string
	Value []byte
}

// Event is a named, JSON-encoded notification recorded by an invocation.
type Event struct {
	Name    string `json:"name"`
	Payload []byte `json:"payload"`
}

// ClientIdentity exposes the signer of the current invocation.
type ClientIdentity interface {
	GetID() (string, error)
}

// TransactionContextInterface is the surface contracts execute against. One
// context lives exactly as long as one invocation; all state reads and writes
// go through the transaction it wraps.
type TransactionContextInterface interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	DelState(key string) error
	GetStateByPrefix(prefix string) ([]KV, error)
	SetEvent(name string, payload []byte) error
	GetTxID() string
	GetTxTimestamp() (*timestamppb.Timestamp, error)
	GetClientIdentity() ClientIdentity
	EnterProtected(op string) error
	ExitProtected(op string)
}

// TransactionContext is the concrete context built by the Runtime. Tests may
// construct one directly over a MemStore transaction.
type TransactionContext struct {
	txID       string
	timestamp  *timestamppb.Timestamp
	identity   ClientIdentity
	tx         StoreTx
	events     []Event
	inProgress string
}

// NewTransactionContext wraps a store transaction with per-call metadata.
func NewTransactionContext(tx StoreTx, identity ClientIdentity, txID string, timestamp *timestamppb.Timestamp) *TransactionContext {
	return &TransactionContext{
		txID:      txID,
		timestamp: timestamp,
		identity:  identity,
		tx:        tx,
	}
}

// GetState returns the value stored under key, or nil when the key is absent.
func (c *TransactionContext) GetState(key string) ([]byte, error) {
	return c.tx.Get(key)
}

func (c *TransactionContext) PutState(key string, value []byte) error {
	return c.tx.Put(key, value)
}

func (c *TransactionContext) DelState(key string) error {
	return c.tx.Delete(key)
}

// GetStateByPrefix returns every key/value pair whose key starts with prefix,
// ordered by key.
func (c *TransactionContext) GetStateByPrefix(prefix string) ([]KV, error) {
	return c.tx.Scan(prefix)
}

// SetEvent buffers a notification for this invocation. Buffered events are
// discarded along with the state writes when the call fails.
func (c *TransactionContext) SetEvent(name string, payload []byte) error {
	if name == "" {
		return fmt.Errorf("event name cannot be empty")
	}
	c.events = append(c.events, Event{Name: name, Payload: payload})
	return nil
}

// Events returns the notifications buffered so far, in emission order.
func (c *TransactionContext) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *TransactionContext) GetTxID() string {
	return c.txID
}

func (c *TransactionContext) GetTxTimestamp() (*timestamppb.Timestamp, error) {
	if c.timestamp == nil {
		return nil, fmt.Errorf("transaction timestamp is not set")
	}
	return c.timestamp, nil
}

func (c *TransactionContext) GetClientIdentity() ClientIdentity {
	return c.identity
}

// EnterProtected marks op as in progress for the rest of the call. It fails
// with ErrReentrantCall while any protected operation already holds the
// guard, which is how a callback from the external token collaborator into a
// mutating operation is rejected.
func (c *TransactionContext) EnterProtected(op string) error {
	if c.inProgress != "" {
		return fmt.Errorf("%w: %s is already in progress", ErrReentrantCall, c.inProgress)
	}
	c.inProgress = op
	return nil
}

// ExitProtected releases the guard held by op. Releasing an op that does not
// hold the guard is a no-op, so a deferred release after a rejected enter is
// harmless.
func (c *TransactionContext) ExitProtected(op string) {
	if c.inProgress == op {
		c.inProgress = ""
	}
}

var _ TransactionContextInterface = (*TransactionContext)(nil)

package chirpsdk

import (
	"sort"
	"strings"
	"sync"
)

// StoreTx is a single transaction over the world state. Get returns nil for
// absent keys; Scan returns matches in key order.
type StoreTx interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Scan(prefix string) ([]KV, error)
}

// Store opens transactions over a world state backend. Update commits the
// transaction's writes only when fn returns nil; View rejects writes.
type Store interface {
	Update(fn func(tx StoreTx) error) error
	View(fn func(tx StoreTx) error) error
	Close() error
}

// MemStore is an in-memory Store used by tests and the provisioning
// dry-run mode. Writes are staged per transaction and folded into the base
// map only on commit.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Seed writes directly into the base map, bypassing transactions. Test setup
// only.
func (s *MemStore) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
}

// Snapshot returns a copy of the committed state. Test assertions only.
func (s *MemStore) Snapshot() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]byte, len(s.data))
	for k, v := range s.data {
		out[k] = append([]byte(nil), v...)
	}
	return out
}

func (s *MemStore) Update(fn func(tx StoreTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &memTx{
		base:    s.data,
		staged:  make(map[string][]byte),
		deleted: make(map[string]struct{}),
	}
	if err := fn(tx); err != nil {
		return err
	}
	for k := range tx.deleted {
		delete(s.data, k)
	}
	for k, v := range tx.staged {
		s.data[k] = v
	}
	return nil
}

func (s *MemStore) View(fn func(tx StoreTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &memTx{
		base:     s.data,
		staged:   make(map[string][]byte),
		deleted:  make(map[string]struct{}),
		readonly: true,
	}
	return fn(tx)
}

func (s *MemStore) Close() error {
	return nil
}

// memTx overlays staged writes on the base map. A key is never in both
// staged and deleted: Put clears any pending delete and Delete clears any
// pending write.
type memTx struct {
	base     map[string][]byte
	staged   map[string][]byte
	deleted  map[string]struct{}
	readonly bool
}

func (t *memTx) Get(key string) ([]byte, error) {
	if _, gone := t.deleted[key]; gone {
		return nil, nil
	}
	if v, ok := t.staged[key]; ok {
		return append([]byte(nil), v...), nil
	}
	if v, ok := t.base[key]; ok {
		return append([]byte(nil), v...), nil
	}
	return nil, nil
}

func (t *memTx) Put(key string, value []byte) error {
	if t.readonly {
		return ErrReadOnlyTx
	}
	delete(t.deleted, key)
	t.staged[key] = append([]byte(nil), value...)
	return nil
}

func (t *memTx) Delete(key string) error {
	if t.readonly {
		return ErrReadOnlyTx
	}
	delete(t.staged, key)
	t.deleted[key] = struct{}{}
	return nil
}

func (t *memTx) Scan(prefix string) ([]KV, error) {
	seen := make(map[string]struct{})
	var out []KV
	for k, v := range t.staged {
		if strings.HasPrefix(k, prefix) {
			out = append(out, KV{Key: k, Value: append([]byte(nil), v...)})
			seen[k] = struct{}{}
		}
	}
	for k, v := range t.base {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		if _, gone := t.deleted[k]; gone {
			continue
		}
		out = append(out, KV{Key: k, Value: append([]byte(nil), v...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

var (
	_ Store   = (*MemStore)(nil)
	_ StoreTx = (*memTx)(nil)
)

package chirpsdk

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var stateBucket = []byte("state")

// BoltStore persists the world state in a single-file bbolt database. Both
// contracts and the token ledger share one bucket; key prefixes keep their
// records apart.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if needed) the world state database at path.
func OpenBolt(path string) (*BoltStore, error) {
	path = filepath.Clean(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating state directory: %w", err)
		}
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Update(fn func(tx StoreTx) error) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return fn(&boltTx{bucket: tx.Bucket(stateBucket), writable: true})
	})
}

func (s *BoltStore) View(fn func(tx StoreTx) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return fn(&boltTx{bucket: tx.Bucket(stateBucket)})
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

type boltTx struct {
	bucket   *bbolt.Bucket
	writable bool
}

func (t *boltTx) Get(key string) ([]byte, error) {
	v := t.bucket.Get([]byte(key))
	if v == nil {
		return nil, nil
	}
	// bbolt values are only valid for the life of the transaction; copy.
	return append([]byte(nil), v...), nil
}

func (t *boltTx) Put(key string, value []byte) error {
	if !t.writable {
		return ErrReadOnlyTx
	}
	return t.bucket.Put([]byte(key), value)
}

func (t *boltTx) Delete(key string) error {
	if !t.writable {
		return ErrReadOnlyTx
	}
	return t.bucket.Delete([]byte(key))
}

func (t *boltTx) Scan(prefix string) ([]KV, error) {
	var out []KV
	c := t.bucket.Cursor()
	p := []byte(prefix)
	for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
		out = append(out, KV{Key: string(k), Value: append([]byte(nil), v...)})
	}
	return out, nil
}

var (
	_ Store   = (*BoltStore)(nil)
	_ StoreTx = (*boltTx)(nil)
)

// Package journal persists the events of committed transactions to SQLite
// so they can be queried after the fact. The contract runtime itself keeps
// no history: once a transaction commits, its receipt is the only record of
// what it emitted, and the journal is where receipts go.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    tx_id       TEXT NOT NULL,
    seq         INTEGER NOT NULL,
    name        TEXT NOT NULL,
    payload     BLOB,
    recorded_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_tx ON events(tx_id);
CREATE INDEX IF NOT EXISTS idx_events_name ON events(name);
`

// Journal is an append-only event log backed by a SQLite database.
type Journal struct {
	db *sql.DB
}

// Open opens the journal at path, creating the schema on first use.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create journal schema: %w", err)
	}

	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Entry is one journaled event. Seq preserves the emit order within its
// transaction.
type Entry struct {
	ID         int64
	TxID       string
	Seq        int
	Name       string
	Payload    []byte
	RecordedAt time.Time
}

// Record appends every event of a committed receipt in emit order. A
// receipt without events is a no-op.
func (j *Journal) Record(ctx context.Context, receipt *chirpsdk.Receipt) error {
	if receipt == nil || len(receipt.Events) == 0 {
		return nil
	}

	recordedAt := time.Now().Unix()
	if receipt.Timestamp != nil {
		recordedAt = receipt.Timestamp.GetSeconds()
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin journal transaction: %w", err)
	}
	defer tx.Rollback()

	for seq, event := range receipt.Events {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events (tx_id, seq, name, payload, recorded_at) VALUES (?, ?, ?, ?, ?)`,
			receipt.TxID, seq, event.Name, event.Payload, recordedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to record event %s: %w", event.Name, err)
		}
	}

	return tx.Commit()
}

// List returns journal entries, newest transaction first, emit order within
// a transaction. An empty name matches every event; limit 0 means no limit.
func (j *Journal) List(ctx context.Context, name string, limit int) ([]Entry, error) {
	query := `
		SELECT id, tx_id, seq, name, payload, recorded_at
		FROM events
	`
	args := []interface{}{}

	if name != "" {
		query += ` WHERE name = ?`
		args = append(args, name)
	}
	query += ` ORDER BY id DESC`

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal events: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ByTx returns the events one transaction emitted, in emit order.
func (j *Journal) ByTx(ctx context.Context, txID string) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, tx_id, seq, name, payload, recorded_at
		FROM events
		WHERE tx_id = ?
		ORDER BY seq ASC
	`, txID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction events: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		var recordedAt int64
		if err := rows.Scan(&entry.ID, &entry.TxID, &entry.Seq, &entry.Name, &entry.Payload, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal event: %w", err)
		}
		entry.RecordedAt = time.Unix(recordedAt, 0).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal events: %w", err)
	}

	return entries, nil
}

// Package usagelog records which words each generated scene practiced.
//
// The log is an append-only store keyed by a fixed log name. Two backends are
// provided: a JSON-lines file under the user config directory for CLI use,
// and a Redis list for multi-instance deployments. Records export as CSV with
// the header "timestamp,mode,verb,noun".
package usagelog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultName is the log name used when the config does not override it.
const DefaultName = "usage"

// Record is one usage-log entry. Gallery passes log one record per placed
// item with the other lexical class left empty; sentence passes log one
// record per placed group.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Mode      string    `json:"mode"`
	Verb      string    `json:"verb,omitempty"`
	Noun      string    `json:"noun,omitempty"`
}

// NewRecord creates a record stamped with the current UTC time.
func NewRecord(mode, verb, noun string) Record {
	return Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Mode:      mode,
		Verb:      verb,
		Noun:      noun,
	}
}

// Store is an append-only usage-log backend.
type Store interface {
	// Append adds a record to the log.
	Append(ctx context.Context, rec Record) error

	// List returns every record in append order.
	List(ctx context.Context) ([]Record, error)

	// Clear removes all records.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// pkg/history/entry.go

// Package history builds the record a persistence collaborator stores for a
// generated secret. It owns no storage.
package history

import (
	"time"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/strength"
	"github.com/google/uuid"
)

// TimestampLayout is the layout used when rendering CreatedAt as text.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry annotates a secret with a description and its strength label.
type Entry struct {
	ID          uuid.UUID      `json:"id" yaml:"id"`
	Secret      string         `json:"secret" yaml:"secret"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at"`
	Label       strength.Label `json:"strength" yaml:"strength"`
}

// NewEntry evaluates secret and returns the record to hand to storage.
func NewEntry(secret, description string, now time.Time) (Entry, error) {
	report, err := strength.Evaluate(secret)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:          uuid.New(),
		Secret:      secret,
		Description: description,
		CreatedAt:   now,
		Label:       report.Label,
	}, nil
}

// NewEntries annotates each secret with the same description and time.
func NewEntries(secrets []string, description string, now time.Time) ([]Entry, error) {
	out := make([]Entry, 0, len(secrets))
	for _, s := range secrets {
		e, err := NewEntry(s, description, now)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

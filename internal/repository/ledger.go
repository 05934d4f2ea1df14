package repository

import (
	"context"
	"errors"

	"lab_hours_bot/internal/models"
)

var (
	// ErrLedgerNotFound means no entry has ever been logged.
	ErrLedgerNotFound = errors.New("ledger not found")
	// ErrCorruptLedger means the ledger exists but does not follow the column schema.
	ErrCorruptLedger = errors.New("corrupt ledger")
)

// LedgerRepo is the durable, append-only store of time entries.
type LedgerRepo interface {
	// ReadAll returns every entry in append order, or ErrLedgerNotFound.
	ReadAll(ctx context.Context) ([]models.TimeEntry, error)
	// AppendOne adds e after the existing entries, creating the ledger if needed.
	AppendOne(ctx context.Context, e models.TimeEntry) error
}

package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"lab_hours_bot/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
)

// ledgerColumns is the fixed header of the ledger file.
var ledgerColumns = []string{"Date", "Month", "Year", "Start", "End", "Hours", "Task"}

const (
	colDate = iota
	colMonth
	colYear
	colStart
	colEnd
	colHours
	colTask
)

const (
	clockLayout    = "15:04"
	ledgerFileMode = 0o644
)

// LedgerCSV keeps the ledger in a single CSV file.
// Every append rewrites the whole file through a temp file and a rename.
// The mutex serializes read-modify-write within one process only.
type LedgerCSV struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

func NewLedgerCSV(fs afero.Fs, path string) *LedgerCSV {
	return &LedgerCSV{fs: fs, path: path}
}

// Path returns the ledger file location.
func (r *LedgerCSV) Path() string { return r.path }

func (r *LedgerCSV) ReadAll(ctx context.Context) ([]models.TimeEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *LedgerCSV) AppendOne(ctx context.Context, e models.TimeEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.read()
	if err != nil && !errors.Is(err, ErrLedgerNotFound) {
		return err
	}
	return r.write(append(entries, e))
}

func (r *LedgerCSV) read() ([]models.TimeEntry, error) {
	f, err := r.fs.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrLedgerNotFound
		}
		return nil, fmt.Errorf("open ledger %q: %w", r.path, err)
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(ledgerColumns)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		// zero-byte file: exists, holds nothing
		return []models.TimeEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrCorruptLedger, err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	out := make([]models.TimeEntry, 0, 64)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptLedger, err)
		}
		line, _ := cr.FieldPos(0)
		e, err := decodeRow(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCorruptLedger, line, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *LedgerCSV) write(entries []models.TimeEntry) (err error) {
	dir := filepath.Dir(r.path)
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create ledger dir %q: %w", dir, err)
	}

	tmp, err := afero.TempFile(r.fs, dir, ".hours-*.csv")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = r.fs.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err = w.Write(ledgerColumns); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	for _, e := range entries {
		if err = w.Write(encodeRow(e)); err != nil {
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp ledger: %w", err)
	}
	if err = r.fs.Chmod(tmp.Name(), ledgerFileMode); err != nil {
		return fmt.Errorf("chmod temp ledger: %w", err)
	}
	if err = r.fs.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace ledger %q: %w", r.path, err)
	}
	return nil
}

func checkHeader(header []string) error {
	for i, name := range ledgerColumns {
		if header[i] != name {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrCorruptLedger, i+1, header[i], name)
		}
	}
	return nil
}

func encodeRow(e models.TimeEntry) []string {
	return []string{
		e.Date.Format(models.DateLayout),
		strconv.Itoa(e.Month),
		strconv.Itoa(e.Year),
		e.Start,
		e.End,
		e.Hours.StringFixed(2),
		e.Task,
	}
}

func decodeRow(rec []string) (models.TimeEntry, error) {
	var (
		e   models.TimeEntry
		err error
	)
	if e.Date, err = time.ParseInLocation(models.DateLayout, rec[colDate], time.Local); err != nil {
		return e, fmt.Errorf("date %q: %w", rec[colDate], err)
	}
	if e.Month, err = strconv.Atoi(rec[colMonth]); err != nil || e.Month < 1 || e.Month > 12 {
		return e, fmt.Errorf("month %q out of range", rec[colMonth])
	}
	if e.Year, err = strconv.Atoi(rec[colYear]); err != nil {
		return e, fmt.Errorf("year %q: %w", rec[colYear], err)
	}
	for _, tok := range []string{rec[colStart], rec[colEnd]} {
		if _, err := time.Parse(clockLayout, tok); err != nil {
			return e, fmt.Errorf("clock time %q: %w", tok, err)
		}
	}
	e.Start, e.End = rec[colStart], rec[colEnd]
	if e.Hours, err = decimal.NewFromString(rec[colHours]); err != nil {
		return e, fmt.Errorf("hours %q: %w", rec[colHours], err)
	}
	if e.Hours.IsNegative() {
		return e, fmt.Errorf("hours %q is negative", rec[colHours])
	}
	e.Task = rec[colTask]
	return e, nil
}

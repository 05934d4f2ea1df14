package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lab_hours_bot/internal/models"
	"lab_hours_bot/internal/repository"

	"github.com/shopspring/decimal"
)

// Fixed summary replies.
const (
	NoEntriesLogged    = "No entries logged yet."
	NoEntriesForPeriod = "No entries found for that period."
)

type LedgerService struct {
	repo  repository.LedgerRepo
	clock Clock
}

func NewLedgerService(repo repository.LedgerRepo, clock Clock) *LedgerService {
	return &LedgerService{repo: repo, clock: clock}
}

// Append stamps p with today's date and stores it as the newest entry.
func (s *LedgerService) Append(ctx context.Context, p ParsedEntry) (models.TimeEntry, error) {
	e := models.NewTimeEntry(s.clock.Now(), p.Start, p.End, p.Hours, p.Task)
	if err := s.repo.AppendOne(ctx, e); err != nil {
		return models.TimeEntry{}, fmt.Errorf("append entry: %w", err)
	}
	return e, nil
}

func (s *LedgerService) Summarize(ctx context.Context, period *models.Period) (string, error) {
	entries, err := s.repo.ReadAll(ctx)
	if errors.Is(err, repository.ErrLedgerNotFound) {
		return NoEntriesLogged, nil
	}
	if err != nil {
		return "", fmt.Errorf("read ledger: %w", err)
	}

	if period != nil {
		entries = filterPeriod(entries, *period)
	}
	if len(entries) == 0 {
		return NoEntriesForPeriod, nil
	}
	return renderSummary(entries), nil
}

func filterPeriod(entries []models.TimeEntry, p models.Period) []models.TimeEntry {
	out := make([]models.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if p.Contains(e) {
			out = append(out, e)
		}
	}
	return out
}

// renderSummary lists entries in ledger order. The total adds up the stored,
// already rounded hours.
func renderSummary(entries []models.TimeEntry) string {
	var (
		b     strings.Builder
		total = decimal.Zero
	)
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s-%s (%sh): %s\n",
			e.Date.Format(models.DateLayout), e.Start, e.End, e.Hours.StringFixed(2), e.Task)
		total = total.Add(e.Hours)
	}
	fmt.Fprintf(&b, "\nTotal hours: %s", total.StringFixed(2))
	return b.String()
}

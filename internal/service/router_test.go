package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"lab_hours_bot/internal/models"
	"lab_hours_bot/internal/repository"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLedger records calls made by the router.
type stubLedger struct {
	appended  []ParsedEntry
	appendErr error

	summary      string
	summarizeErr error
	periods      []*models.Period
	summarized   int
}

func (s *stubLedger) Append(ctx context.Context, p ParsedEntry) (models.TimeEntry, error) {
	if s.appendErr != nil {
		return models.TimeEntry{}, s.appendErr
	}
	s.appended = append(s.appended, p)
	return models.NewTimeEntry(time.Now(), p.Start, p.End, p.Hours, p.Task), nil
}

func (s *stubLedger) Summarize(ctx context.Context, period *models.Period) (string, error) {
	s.summarized++
	s.periods = append(s.periods, period)
	return s.summary, s.summarizeErr
}

func TestRouter_LogsEntry(t *testing.T) {
	ledger := &stubLedger{}
	r := NewRouterService(ledger, nil)

	reply := r.Handle(context.Background(), "  14:30-16:30 Doing Tasks ")

	assert.Equal(t, "Logged 2.00h (14:30-16:30): Doing Tasks", reply)
	require.Len(t, ledger.appended, 1)
	assert.Equal(t, "Doing Tasks", ledger.appended[0].Task)
	assert.Zero(t, ledger.summarized)
}

func TestRouter_LogsEntryWithoutTask(t *testing.T) {
	r := NewRouterService(&stubLedger{}, nil)

	assert.Equal(t, "Logged 0.25h (9:00-9:15): ", r.Handle(context.Background(), "9:00-9:15"))
}

func TestRouter_Show(t *testing.T) {
	cases := []struct {
		in     string
		period *models.Period
	}{
		{"show", nil},
		{"SHOW", nil},
		{"  Show  ", nil},
		{"show me everything", nil},
		{"show 3-2024", &models.Period{Month: 3, Year: 2024}},
		{"Show 12-2023", &models.Period{Month: 12, Year: 2023}},
		{"show03-2024", &models.Period{Month: 3, Year: 2024}},
		{"show 3-24", nil},
		{"show 3-20245", &models.Period{Month: 3, Year: 2024}},
		{"show 3-2024 please", &models.Period{Month: 3, Year: 2024}},
		{"show 3-2024.", &models.Period{Month: 3, Year: 2024}},
		{"show me 3-2024", nil},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			ledger := &stubLedger{summary: "the summary"}
			r := NewRouterService(ledger, nil)

			assert.Equal(t, "the summary", r.Handle(context.Background(), tc.in))
			require.Len(t, ledger.periods, 1)
			assert.Equal(t, tc.period, ledger.periods[0])
			assert.Empty(t, ledger.appended)
		})
	}
}

func TestRouter_UsageHelp(t *testing.T) {
	for _, in := range []string{"not a valid entry", "", "hello", "25:00-26:00 too late"} {
		ledger := &stubLedger{}
		r := NewRouterService(ledger, nil)

		assert.Equal(t, UsageHelp, r.Handle(context.Background(), in), "input %q", in)
		assert.Empty(t, ledger.appended)
		assert.Zero(t, ledger.summarized)
	}
}

func TestRouter_RejectsEndBeforeStart(t *testing.T) {
	ledger := &stubLedger{}
	r := NewRouterService(ledger, nil)

	assert.Equal(t, InvalidRangeReply, r.Handle(context.Background(), "23:00-01:00 night shift"))
	assert.Empty(t, ledger.appended)
}

func TestRouter_StorageFailures(t *testing.T) {
	corrupt := fmt.Errorf("read ledger: %w", repository.ErrCorruptLedger)

	cases := []struct {
		name   string
		ledger *stubLedger
		in     string
		want   string
	}{
		{"append fails", &stubLedger{appendErr: errors.New("permission denied")}, "9:00-10:00 x", AppendFailedReply},
		{"append on corrupt log", &stubLedger{appendErr: corrupt}, "9:00-10:00 x", CorruptLogReply},
		{"summary fails", &stubLedger{summarizeErr: errors.New("i/o error")}, "show", ReadFailedReply},
		{"summary on corrupt log", &stubLedger{summarizeErr: corrupt}, "show 1-2024", CorruptLogReply},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRouterService(tc.ledger, nil)
			assert.Equal(t, tc.want, r.Handle(context.Background(), tc.in))
		})
	}
}

func TestRouter_EndToEndWithCSVLedger(t *testing.T) {
	fs := afero.NewMemMapFs()
	repos := repository.NewRepository(fs, "hours_log.csv")
	ledger := NewLedgerService(repos.Ledger, onDay(2024, time.March, 4))
	r := NewRouterService(ledger, nil)
	ctx := context.Background()

	assert.Equal(t, NoEntriesLogged, r.Handle(ctx, "show 3-2024"))

	assert.Equal(t, "Logged 2.00h (14:30-16:30): doing tasks", r.Handle(ctx, "14:30-16:30 doing tasks"))
	assert.Equal(t, NoEntriesForPeriod, r.Handle(ctx, "show 4-2024"))
	assert.Equal(t,
		"2024-03-04 14:30-16:30 (2.00h): doing tasks\n\nTotal hours: 2.00",
		r.Handle(ctx, "show 3-2024"))

	require.NoError(t, afero.WriteFile(fs, "hours_log.csv", []byte("garbage\n"), 0o644))
	assert.Equal(t, CorruptLogReply, r.Handle(ctx, "show"))
}

func TestNewService_Wiring(t *testing.T) {
	s := NewService(repository.NewRepository(afero.NewMemMapFs(), "hours_log.csv"), nil)

	require.NotNil(t, s.Ledger)
	require.NotNil(t, s.Router)
	assert.Equal(t, NoEntriesLogged, s.Handle(context.Background(), "show"))
}

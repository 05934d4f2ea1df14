package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParsedEntry is an interval read from a chat message, not yet stamped with a date.
type ParsedEntry struct {
	Start string
	End   string
	Hours decimal.Decimal
	Task  string
}

var (
	ErrNoMatch      = errors.New("text is not a time entry")
	ErrInvalidClock = errors.New("invalid clock time")
	ErrInvalidRange = errors.New("end time must be after start time")
)

// entryPattern matches "H:MM-HH:MM task"; everything after the end time is the task.
var entryPattern = regexp.MustCompile(`(?s)^\s*(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})\s*(.*)$`)

var minutesPerHour = decimal.NewFromInt(60)

// ParseEntry reads a time entry from text.
// Intervals crossing midnight are rejected with ErrInvalidRange, as are empty ones.
func ParseEntry(text string) (ParsedEntry, error) {
	m := entryPattern.FindStringSubmatch(text)
	if m == nil {
		return ParsedEntry{}, ErrNoMatch
	}

	start, err := parseClock(m[1])
	if err != nil {
		return ParsedEntry{}, err
	}
	end, err := parseClock(m[2])
	if err != nil {
		return ParsedEntry{}, err
	}
	if !end.After(start) {
		return ParsedEntry{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, m[1], m[2])
	}

	minutes := decimal.NewFromInt(int64(end.Sub(start) / time.Minute))
	return ParsedEntry{
		Start: m[1],
		End:   m[2],
		Hours: minutes.DivRound(minutesPerHour, 2),
		Task:  strings.TrimSpace(m[3]),
	}, nil
}

func parseClock(tok string) (time.Time, error) {
	t, err := time.Parse("15:04", tok)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidClock, tok, err)
	}
	return t, nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry is one logged interval, one row of the hours ledger.
type TimeEntry struct {
	Date  time.Time       `json:"date"`  // day the entry was logged, not the day worked
	Month int             `json:"month"` // derived from Date
	Year  int             `json:"year"`  // derived from Date
	Start string          `json:"start"` // HH:MM as typed
	End   string          `json:"end"`   // HH:MM as typed
	Hours decimal.Decimal `json:"hours"` // rounded to 2 places
	Task  string          `json:"task"`
}

// DateLayout is how Date is written to and read from the ledger.
const DateLayout = "2006-01-02"

// NewTimeEntry stamps an interval with the logging date and its derived month/year.
func NewTimeEntry(loggedAt time.Time, start, end string, hours decimal.Decimal, task string) TimeEntry {
	day := time.Date(loggedAt.Year(), loggedAt.Month(), loggedAt.Day(), 0, 0, 0, 0, loggedAt.Location())
	return TimeEntry{
		Date:  day,
		Month: int(day.Month()),
		Year:  day.Year(),
		Start: start,
		End:   end,
		Hours: hours,
		Task:  task,
	}
}

// Period narrows a summary to one calendar month.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Contains reports whether the entry's stored month/year match the period.
func (p Period) Contains(e TimeEntry) bool {
	return e.Month == p.Month && e.Year == p.Year
}

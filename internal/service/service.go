package service

import (
	"context"

	"lab_hours_bot/internal/logger"
	"lab_hours_bot/internal/models"
	"lab_hours_bot/internal/repository"
)

// Ledger appends parsed entries to the hours log and renders summaries of it.
type Ledger interface {
	Append(ctx context.Context, p ParsedEntry) (models.TimeEntry, error)
	// Summarize lists the logged entries, narrowed to period when it is not nil.
	Summarize(ctx context.Context, period *models.Period) (string, error)
}

// Router turns one inbound chat message into the reply text.
// Handle never fails: every error is resolved into a reply.
type Router interface {
	Handle(ctx context.Context, text string) string
}

type Service struct {
	Ledger
	Router
}

// NewService wires the repository layer into the ledger and the message router.
func NewService(repos *repository.Repository, log *logger.Logger) *Service {
	ledger := NewLedgerService(repos.Ledger, SystemClock{})
	return &Service{
		Ledger: ledger,
		Router: NewRouterService(ledger, log),
	}
}

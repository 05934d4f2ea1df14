package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lab_hours_bot/internal/logger"
	"lab_hours_bot/internal/models"
	"lab_hours_bot/internal/repository"

	"github.com/google/uuid"
)

// Replies that do not depend on the ledger contents.
const (
	UsageHelp         = "Please write in the format 'HH:MM-HH:MM description', or 'show' (optionally 'show MM-YYYY') to list entries."
	InvalidRangeReply = "The end time must be after the start time. " + UsageHelp
	AppendFailedReply = "Sorry, I couldn't save that entry. Please try again later."
	ReadFailedReply   = "Sorry, I couldn't read the hours log. Please try again later."
	CorruptLogReply   = "Sorry, the hours log file is damaged and can't be read."
)

const showKeyword = "show"

var showPeriodPattern = regexp.MustCompile(`^show\s*(\d{1,2})-(\d{4})`)

type RouterService struct {
	ledger Ledger
	log    *logger.Logger
}

func NewRouterService(ledger Ledger, log *logger.Logger) *RouterService {
	if log == nil {
		log = logger.Nop()
	}
	return &RouterService{ledger: ledger, log: log}
}

// Handle classifies text as a show command or a time entry and returns the reply.
func (s *RouterService) Handle(ctx context.Context, text string) string {
	msgID := uuid.NewString()
	text = strings.TrimSpace(text)

	if cmd := strings.ToLower(text); strings.HasPrefix(cmd, showKeyword) {
		return s.show(ctx, msgID, cmd)
	}
	return s.logEntry(ctx, msgID, text)
}

func (s *RouterService) show(ctx context.Context, msgID, cmd string) string {
	period := parseShowPeriod(cmd)
	summary, err := s.ledger.Summarize(ctx, period)
	if err != nil {
		s.log.Errorw("ledger_summarize_failed", "msg_id", msgID, "err", err)
		if errors.Is(err, repository.ErrCorruptLedger) {
			return CorruptLogReply
		}
		return ReadFailedReply
	}
	s.log.Debugw("summary_sent", "msg_id", msgID, "period", period)
	return summary
}

func (s *RouterService) logEntry(ctx context.Context, msgID, text string) string {
	p, err := ParseEntry(text)
	switch {
	case errors.Is(err, ErrInvalidRange):
		s.log.Infow("entry_rejected", "msg_id", msgID, "err", err)
		return InvalidRangeReply
	case err != nil:
		s.log.Debugw("entry_unparsed", "msg_id", msgID, "err", err)
		return UsageHelp
	}

	e, err := s.ledger.Append(ctx, p)
	if err != nil {
		s.log.Errorw("ledger_append_failed", "msg_id", msgID, "err", err)
		if errors.Is(err, repository.ErrCorruptLedger) {
			return CorruptLogReply
		}
		return AppendFailedReply
	}
	s.log.Infow("entry_logged", "msg_id", msgID, "date", e.Date.Format(models.DateLayout),
		"start", e.Start, "end", e.End, "hours", e.Hours.StringFixed(2))
	return fmt.Sprintf("Logged %sh (%s-%s): %s", e.Hours.StringFixed(2), e.Start, e.End, e.Task)
}

// parseShowPeriod returns the month/year of "show M-YYYY", or nil for a bare show.
func parseShowPeriod(cmd string) *models.Period {
	m := showPeriodPattern.FindStringSubmatch(cmd)
	if m == nil {
		return nil
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	return &models.Period{Month: month, Year: year}
}

package handlers

import (
	"context"
	"sync"

	"lab_hours_bot/internal/models"
	"lab_hours_bot/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockRouter struct {
	mu       sync.Mutex
	replyFn  func(text string) string
	received []string
}

func (m *mockRouter) Handle(ctx context.Context, text string) string {
	m.mu.Lock()
	m.received = append(m.received, text)
	m.mu.Unlock()
	if m.replyFn != nil {
		return m.replyFn(text)
	}
	return "reply: " + text
}

func (m *mockRouter) texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.received...)
}

type mockLedger struct {
	summary    string
	err        error
	lastPeriod *models.Period
	calls      int
}

func (m *mockLedger) Append(ctx context.Context, p service.ParsedEntry) (models.TimeEntry, error) {
	return models.TimeEntry{}, m.err
}

func (m *mockLedger) Summarize(ctx context.Context, period *models.Period) (string, error) {
	m.calls++
	m.lastPeriod = period
	return m.summary, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

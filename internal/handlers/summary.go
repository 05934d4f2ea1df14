package handlers

import (
	"net/http"
	"strconv"

	"lab_hours_bot/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errPeriodPartial = "month and year must be given together"
	errMonthInvalid  = "invalid 'month'; use 1-12"
	errYearInvalid   = "invalid 'year'; use a 4-digit year"
	errSummary       = "failed to load summary"
)

// SummaryResponse is the rendered summary text.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Hours summary
// @Description  Same text the bot sends for "show" or "show MM-YYYY".
// @Tags         ledger
// @Produce      json
// @Param        month  query     int  false  "Month 1-12 (requires year)"  example(3)
// @Param        year   query     int  false  "Year (requires month)"       example(2024)
// @Success      200    {object}  SummaryResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	period, msg := parsePeriodQuery(c.Query("month"), c.Query("year"))
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	summary, err := h.services.Ledger.Summarize(c.Request.Context(), period)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSummary, "summary_failed", err, "period", period)
		return
	}
	c.JSON(http.StatusOK, SummaryResponse{Summary: summary})
}

// parsePeriodQuery returns the period named by the query, nil for none, or a
// user-facing error message.
func parsePeriodQuery(month, year string) (*models.Period, string) {
	if month == "" && year == "" {
		return nil, ""
	}
	if month == "" || year == "" {
		return nil, errPeriodPartial
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return nil, errMonthInvalid
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 1000 || y > 9999 {
		return nil, errYearInvalid
	}
	return &models.Period{Month: m, Year: y}, ""
}

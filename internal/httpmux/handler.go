// Package httpmux serves the bot over plain net/http handlers on a gorilla/mux
// router. It exposes the same messaging contract as the gin handlers.
package httpmux

import (
	"encoding/json"
	"net/http"
	"strings"

	"lab_hours_bot/internal/logger"
	"lab_hours_bot/internal/models"
	"lab_hours_bot/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	router service.Router
	log    *logger.Logger
}

func NewHandler(router service.Router, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{router: router, log: log}
}

// Routes registers every endpoint on a fresh mux router.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/api/messages", h.PostActivity).Methods("POST")
	r.HandleFunc("/api/v1/messages", h.PostMessage).Methods("POST")
	r.Use(h.logRequests)
	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) PostActivity(w http.ResponseWriter, r *http.Request) {
	var in models.Activity
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid activity"})
		return
	}
	if !strings.EqualFold(in.Type, models.ActivityMessage) {
		h.log.Debugw("activity_ignored", "type", in.Type, "conversation", in.Conversation.ID)
		w.WriteHeader(http.StatusOK)
		return
	}

	reply := h.router.Handle(r.Context(), in.Text)
	writeJSON(w, http.StatusOK, in.Reply(uuid.NewString(), reply))
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Text == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid body: text is required"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": h.router.Handle(r.Context(), in.Text)})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.log.Debugw("http_request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

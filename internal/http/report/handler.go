package report

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfreitas/contas/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/people", h.byPerson)
	r.Get("/categories", h.byCategory)
}

func (h *Handler) byPerson(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.ByPerson(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPersonReportResponse(rep)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) byCategory(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.ByCategory(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCategoryReportResponse(rep)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

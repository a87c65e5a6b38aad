package planner

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
)

// Handler exposes the breakdown operation over HTTP.
type Handler struct {
	Gen *Generator
}

func NewHandler(g *Generator) *Handler {
	return &Handler{Gen: g}
}

func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	goal := strings.TrimSpace(req.Goal)
	timeframe := strings.TrimSpace(req.Timeframe)

	if goal == "" {
		http.Error(w, "goal is required", http.StatusBadRequest)
		return
	}
	if timeframe == "" {
		http.Error(w, "timeframe is required", http.StatusBadRequest)
		return
	}

	resp, err := h.Gen.Generate(r.Context(), goal, timeframe)
	if err != nil {
		// Full detail stays in the server log; the client only ever sees a
		// generic message.
		log.Printf("breakdown: %v", err)

		status := http.StatusInternalServerError
		if errors.Is(err, ErrUpstream) {
			status = http.StatusBadGateway
		}
		http.Error(w, "plan generation failed", status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}
}

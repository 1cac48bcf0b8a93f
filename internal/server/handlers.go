package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/star-totals/internal/metrics"
	"github.com/yourusername/star-totals/internal/models"
	"github.com/yourusername/star-totals/internal/simulation"
)

// SimulateRequest is the JSON body for POST /api/v1/simulate. Odds and
// bankroll are optional; when both are present the response carries a
// suggested stake for the recommendation.
type SimulateRequest struct {
	Home   models.TeamStats `json:"home"`
	Away   models.TeamStats `json:"away"`
	Target float64          `json:"target"`

	Odds     *decimal.Decimal `json:"odds,omitempty"`
	Bankroll *decimal.Decimal `json:"bankroll,omitempty"`
}

// SimulateResponse wraps the simulation result with the request ID and the
// optional stake suggestion.
type SimulateResponse struct {
	RequestID string                   `json:"request_id"`
	Result    *models.SimulationResult `json:"result"`
	Stake     *decimal.Decimal         `json:"suggested_stake,omitempty"`
}

// ErrorResponse is the JSON body for request failures
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	if !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded", "")
		return
	}

	requestID := uuid.New().String()
	log := s.logger.WithField("request_id", requestID)

	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", "")
		return
	}

	simCfg, err := simulation.FromConfig(&s.simCfg)
	if err != nil {
		log.WithError(err).Error("Simulation config rejected")
		writeError(w, http.StatusInternalServerError, "simulation unavailable", "")
		return
	}

	// Each request owns its simulator, and with it its random source.
	sim, err := simulation.NewSimulator(simCfg)
	if err != nil {
		log.WithError(err).Error("Failed to construct simulator")
		writeError(w, http.StatusInternalServerError, "simulation unavailable", "")
		return
	}

	start := time.Now()
	result, err := sim.Simulate(req.Home, req.Away, req.Target)
	if err != nil {
		metrics.RecordSimulationError()
		var invalid *models.InvalidInputError
		if errors.As(err, &invalid) {
			log.WithField("field", invalid.Field).Warn("Invalid simulation input")
			writeError(w, http.StatusBadRequest, invalid.Reason, invalid.Field)
			return
		}
		log.WithError(err).Error("Simulation failed")
		writeError(w, http.StatusInternalServerError, "simulation failed", "")
		return
	}
	metrics.RecordSimulation(string(result.Recommendation), result.FusedProbability, time.Since(start).Seconds())

	resp := SimulateResponse{RequestID: requestID, Result: result}
	if req.Odds != nil && req.Bankroll != nil {
		stake, err := s.sizer.SuggestStake(result.FusedProbability, *req.Odds, *req.Bankroll)
		if err != nil {
			var invalid *models.InvalidInputError
			if errors.As(err, &invalid) {
				writeError(w, http.StatusBadRequest, invalid.Reason, invalid.Field)
				return
			}
			log.WithError(err).Error("Stake sizing failed")
			writeError(w, http.StatusInternalServerError, "stake sizing failed", "")
			return
		}
		resp.Stake = &stake
	}

	log.WithFields(logrus.Fields{
		"recommendation": result.Recommendation,
		"fused_prob":     result.FusedProbability,
		"stars":          result.StarRating,
	}).Info("Simulation completed")

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"service":   "star-totals",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg, field string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Field: field})
}

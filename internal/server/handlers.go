package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/joshuaphillips-collab/mortgage-compare/internal/compare"
	"github.com/joshuaphillips-collab/mortgage-compare/internal/config"
	"github.com/joshuaphillips-collab/mortgage-compare/internal/reputation"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/output"
)

type compareResponse struct {
	Quotes     []compare.Scored     `json:"quotes"`
	Alerts     []compare.Alert      `json:"alerts"`
	Best       *compare.Scored      `json:"best,omitempty"`
	Baseline   *compare.Record      `json:"baseline,omitempty"`
	Breakevens []breakevenEntry     `json:"breakevens,omitempty"`
	Horizons   []compare.HorizonRow `json:"horizons,omitempty"`
	Summary    []string             `json:"summary,omitempty"`
	CSV        string               `json:"csv"`
	Warnings   []string             `json:"warnings,omitempty"`
	Duration   string               `json:"duration"`
}

type breakevenEntry struct {
	Index int `json:"index"`
	compare.BreakevenResult
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": s.version,
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var conf config.Configuration
	if err := json.NewDecoder(r.Body).Decode(&conf); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode session: %v", err), "server.handleCompare")
		return
	}

	response := s.runComparison(r, &conf, start)
	s.writeJSON(w, http.StatusOK, response)
}

// runComparison computes the full comparison for one session. Every call
// recomputes from the raw quotes; nothing is derived from earlier results.
func (s *Server) runComparison(r *http.Request, conf *config.Configuration, start time.Time) compareResponse {
	records := compare.Analyze(conf.Quotes, conf.HorizonOrDefault())
	alerts := compare.DetectAlerts(conf.Quotes)

	reputations, err := s.store.All(r.Context())
	if err != nil {
		s.logger.Warn("failed to load reputations; scoring without them",
			zap.String("op", "server.runComparison"),
			zap.Error(err),
		)
		reputations = map[string]reputation.Reputation{}
	}

	scored := compare.Score(records, conf.ResolveWeights(), reputations)

	response := compareResponse{
		Quotes:   scored,
		Alerts:   alerts,
		Horizons: compare.HorizonTable(records),
		Summary:  output.PlainSummary(scored),
		CSV:      output.CsvString(scored),
		Warnings: conf.ValidateConfiguration(),
		Duration: time.Since(start).String(),
	}

	if best, ok := compare.Best(scored); ok {
		response.Best = &best
	}
	if baseline, ok := compare.Baseline(records); ok {
		response.Baseline = &baseline
		for _, rec := range records {
			if rec.Index == baseline.Index {
				continue
			}
			response.Breakevens = append(response.Breakevens, breakevenEntry{
				Index:           rec.Index,
				BreakevenResult: compare.BreakevenAgainst(rec, baseline),
			})
		}
	}

	return response
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	var conf config.Configuration
	if err := json.NewDecoder(r.Body).Decode(&conf); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode session: %v", err), "server.handleSessionCreate")
		return
	}

	id := s.sessions.create(conf)
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "id")
	conf, ok := s.sessions.get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("unknown session %s", id), "server.handleSessionGet")
		return
	}

	response := s.runComparison(r, &conf, start)
	s.writeJSON(w, http.StatusOK, response)
}

// handleSessionExport returns the stored session serialized as YAML so a
// borrower can keep editing it as a local config file.
func (s *Server) handleSessionExport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	conf, ok := s.sessions.get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("unknown session %s", id), "server.handleSessionExport")
		return
	}

	encoded, err := yaml.Marshal(conf)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode session: %v", err), "server.handleSessionExport")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(encoded),
	})
}

type reputationPayload struct {
	LoanOfficer string                `json:"loanOfficer"`
	LenderName  string                `json:"lenderName"`
	Reputation  reputation.Reputation `json:"reputation"`
}

func (s *Server) handleReputationPut(w http.ResponseWriter, r *http.Request) {
	var payload reputationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode reputation: %v", err), "server.handleReputationPut")
		return
	}
	if payload.LoanOfficer == "" && payload.LenderName == "" {
		s.respondError(w, http.StatusBadRequest, "loanOfficer or lenderName is required", "server.handleReputationPut")
		return
	}

	key := reputation.Key(payload.LoanOfficer, payload.LenderName)
	if err := s.store.Put(r.Context(), key, payload.Reputation); err != nil {
		s.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store reputation: %v", err), "server.handleReputationPut")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"key": key})
}

func (s *Server) handleReputationGet(w http.ResponseWriter, r *http.Request) {
	officer := r.URL.Query().Get("officer")
	lender := r.URL.Query().Get("lender")

	if officer == "" && lender == "" {
		all, err := s.store.All(r.Context())
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to load reputations: %v", err), "server.handleReputationGet")
			return
		}
		s.writeJSON(w, http.StatusOK, all)
		return
	}

	key := reputation.Key(officer, lender)
	rep, found, err := s.store.Get(r.Context(), key)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to load reputation: %v", err), "server.handleReputationGet")
		return
	}
	if !found {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("no reputation for %s", key), "server.handleReputationGet")
		return
	}

	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string, op string) {
	s.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

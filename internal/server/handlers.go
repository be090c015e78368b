package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/promptwarden/promptwarden/internal/annotate"
	"github.com/promptwarden/promptwarden/internal/redteam"
	"github.com/promptwarden/promptwarden/internal/rules"
	"github.com/promptwarden/promptwarden/internal/store"
	"github.com/promptwarden/promptwarden/internal/websocket"
)

const maxScanBody = 1 << 20

// ScanRequest is the POST /v1/scan body.
type ScanRequest struct {
	Text string `json:"text"`
}

// ScanResponse pairs the scan result with its display segments.
type ScanResponse struct {
	Result   *rules.ScanResult  `json:"result"`
	Segments []annotate.Segment `json:"segments,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","timestamp":"%s"}`, time.Now().Format(time.RFC3339))
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	set := s.provider.Current()
	enabled := 0
	for i := range set {
		if set[i].Enabled {
			enabled++
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":          "promptwarden",
		"version":       "0.1.0",
		"total_rules":   len(set),
		"enabled_rules": enabled,
		"threshold":     s.config.Detector.Threshold,
	})
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScanBody))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	start := time.Now()
	result, err := s.scanner.Scan(r.Context(), req.Text, s.provider.Current(), s.config.Detector.Threshold)
	if err != nil {
		s.logger.Error("Scan failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "scan failed")
		return
	}

	s.logger.LogScan(result, len(req.Text))

	matched := make([]string, 0, len(result.MatchedRules))
	for i := range result.MatchedRules {
		matched = append(matched, result.MatchedRules[i].RuleID)
	}
	s.wsHub.BroadcastEvent(websocket.Event{
		Type:      websocket.EventTypeScan,
		Timestamp: time.Now(),
		Data: websocket.ScanEvent{
			TextLength:      len(req.Text),
			IsPositive:      result.IsPositive,
			Confidence:      result.Confidence,
			MatchedRules:    matched,
			CompoundThreats: len(result.CompoundThreats),
			ProcessingMS:    float64(time.Since(start).Microseconds()) / 1000,
		},
	})

	writeJSON(w, http.StatusOK, ScanResponse{
		Result:   result,
		Segments: annotate.Merge(req.Text, result.MatchedRules),
	})
}

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	set := s.provider.Current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rules":       set,
		"fingerprint": rules.Fingerprint(set),
	})
}

func (s *Server) handleStartRun(w http.ResponseWriter, r *http.Request) {
	state, _ := s.engine.State()
	if state == redteam.StateGenerating || state == redteam.StateTesting || state == redteam.StateAnalyzing {
		writeError(w, http.StatusConflict, "a red-team run is already in progress")
		return
	}

	set := s.provider.Current()
	threshold := s.config.Detector.Threshold

	go func() {
		// Runs outlive the triggering request.
		run, err := s.engine.Run(context.Background(), set, threshold)
		if err != nil {
			s.logger.Error("Red-team run failed", zap.Error(err))
			return
		}

		s.runMu.Lock()
		s.lastRun = run
		s.runMu.Unlock()

		if s.runStore != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.runStore.SaveRun(ctx, run); err != nil {
				s.logger.Error("Failed to archive red-team run",
					zap.String("run_id", run.ID), zap.Error(err))
			}
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

func (s *Server) handleRunStatus(w http.ResponseWriter, r *http.Request) {
	state, runErr := s.engine.State()
	resp := map[string]interface{}{"state": state}
	if runErr != nil {
		resp["error"] = runErr.Error()
	}

	s.runMu.Lock()
	if s.lastRun != nil {
		resp["last_run_id"] = s.lastRun.ID
		resp["last_overall_score"] = s.lastRun.Report.OverallScore
	}
	s.runMu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.runStore == nil {
		s.runMu.Lock()
		defer s.runMu.Unlock()
		if s.lastRun == nil {
			writeJSON(w, http.StatusOK, []interface{}{})
			return
		}
		writeJSON(w, http.StatusOK, []*redteam.Run{s.lastRun})
		return
	}

	summaries, err := s.runStore.ListRuns(r.Context(), 50)
	if err != nil {
		s.logger.Error("Failed to list runs", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.runMu.Lock()
	if s.lastRun != nil && s.lastRun.ID == id {
		run := s.lastRun
		s.runMu.Unlock()
		writeJSON(w, http.StatusOK, run)
		return
	}
	s.runMu.Unlock()

	if s.runStore == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}

	run, err := s.runStore.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "run not found")
			return
		}
		s.logger.Error("Failed to load run", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

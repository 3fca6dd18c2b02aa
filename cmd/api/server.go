package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"cx-metrics-go/internal/config"
	"cx-metrics-go/internal/dataset"
	"cx-metrics-go/internal/logger"
	"cx-metrics-go/internal/processor"
	"cx-metrics-go/internal/types"
)

const maxBodyBytes = 1 << 20

type server struct {
	cfg  config.Config
	proc *processor.Processor
	log  *logger.Logger
}

func newServer(cfg config.Config, proc *processor.Processor, log *logger.Logger) *server {
	return &server{cfg: cfg, proc: proc, log: log}
}

// extractRequest is the /extract body.
type extractRequest struct {
	Response  types.RawResponse          `json:"response"`
	Questions []types.QuestionDefinition `json:"questions"`
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /extract", s.handleExtract)
	mux.HandleFunc("GET /demo", s.handleDemo)
	mux.HandleFunc("GET /rollup", s.handleRollup)
	mux.HandleFunc("GET /dataset", s.handleDataset)
	return mux
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.log.WithRequest(r).Debug("health check")
	fmt.Fprint(w, "ok")
}

func (s *server) handleExtract(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "extract")
	reqLog.Info("extract request received")

	var req extractRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		reqLog.WithError(err).Warn("invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	res := s.proc.ProcessResponse(r.Context(), req.Response, req.Questions)
	reqLog.WithFields(logrus.Fields{
		"questions":   len(req.Response),
		"duration_ms": res.DurationMs,
	}).Info("extract finished")
	writeJSON(w, reqLog, http.StatusOK, res)
}

// demo endpoint (process first N rows from dataset for quick demo)
func (s *server) handleDemo(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "demo")
	records, err := dataset.Load(s.cfg.DatasetPath)
	if err != nil {
		reqLog.WithError(err).Error("dataset load error")
		http.Error(w, "dataset load error", http.StatusInternalServerError)
		return
	}
	limit := min(s.cfg.DemoLimit, len(records))
	out := make([]processor.Result, 0, limit)
	for _, rec := range records[:limit] {
		res := s.proc.ProcessResponse(r.Context(), rec.Answers, nil)
		res.ResponseID = rec.ResponseID
		out = append(out, res)
	}
	reqLog.WithField("responses", len(out)).Info("demo processed")
	writeJSON(w, reqLog, http.StatusOK, out)
}

func (s *server) handleRollup(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "rollup")
	records, err := dataset.Load(s.cfg.DatasetPath)
	if err != nil {
		reqLog.WithError(err).Error("dataset load error")
		http.Error(w, "dataset load error", http.StatusInternalServerError)
		return
	}
	batch, err := s.proc.ProcessDataset(r.Context(), records, nil)
	if err != nil {
		reqLog.WithError(err).Warn("rollup interrupted")
		http.Error(w, "rollup interrupted", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, reqLog, http.StatusOK, batch)
}

func (s *server) handleDataset(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "dataset")
	records, err := dataset.Load(s.cfg.DatasetPath)
	if err != nil {
		reqLog.WithError(err).Error("dataset load error")
		http.Error(w, "dataset load error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, reqLog, http.StatusOK, dataset.Summarize(records))
}

func writeJSON(w http.ResponseWriter, log *logrus.Entry, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

// cmd/veriscope/handlers.go
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// Server exposes the prediction pipeline over HTTP
type Server struct {
	cfg       *Config
	pipeline  *Pipeline
	auth      *AuthService
	store     *Store
	startTime time.Time
}

// NewServer creates the HTTP server wiring
func NewServer(cfg *Config, pipeline *Pipeline, auth *AuthService, store *Store) *Server {
	return &Server{
		cfg:       cfg,
		pipeline:  pipeline,
		auth:      auth,
		store:     store,
		startTime: time.Now(),
	}
}

// Router builds the route table
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(s.auth.Middleware)
	protected.HandleFunc("/predict", s.handlePredict).Methods(http.MethodPost)
	protected.HandleFunc("/batch-predict", s.handleBatchPredict).Methods(http.MethodPost)
	protected.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)

	return r
}

// predictRequest is the body of a single-claim prediction call
type predictRequest struct {
	Text string `json:"text"`
}

// handlePredict evaluates one claim and records it in the user's history
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		respondWithError(w, http.StatusBadRequest, "text is required")
		return
	}
	if len(text) > maxClaimLength {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("text exceeds %d characters", maxClaimLength))
		return
	}

	evaluation := s.pipeline.Evaluate(r.Context(), text)
	s.recordPrediction(r, evaluation)

	respondWithJSON(w, http.StatusOK, evaluation)
}

// batchPredictRequest is the body of a batch prediction call
type batchPredictRequest struct {
	Texts []string `json:"texts"`
}

// handleBatchPredict evaluates several claims on the bounded worker pool
func (s *Server) handleBatchPredict(w http.ResponseWriter, r *http.Request) {
	var req batchPredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Texts) == 0 {
		respondWithError(w, http.StatusBadRequest, "texts is required")
		return
	}
	if len(req.Texts) > maxBatchSize {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("at most %d texts per batch", maxBatchSize))
		return
	}
	for _, text := range req.Texts {
		if strings.TrimSpace(text) == "" {
			respondWithError(w, http.StatusBadRequest, "texts must not contain empty entries")
			return
		}
		if len(text) > maxClaimLength {
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("each text must be at most %d characters", maxClaimLength))
			return
		}
	}

	evaluations := s.pipeline.EvaluateBatch(r.Context(), req.Texts)
	for _, evaluation := range evaluations {
		s.recordPrediction(r, evaluation)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"predictions": evaluations,
	})
}

// recordPrediction appends an evaluation to the caller's history. History is
// best effort; a storage failure never fails the prediction response.
func (s *Server) recordPrediction(r *http.Request, evaluation Evaluation) {
	if s.store == nil {
		return
	}

	record := &PredictionRecord{
		UserID:     UserIDFromContext(r.Context()),
		Text:       truncate(evaluation.Text, maxStoredTextLength),
		Prediction: evaluation.Label,
		Confidence: evaluation.Confidence,
		IsFake:     evaluation.IsFake,
	}
	if err := s.store.SavePrediction(r.Context(), record); err != nil {
		Logger().Warning("Failed to save prediction history: %v", err)
	}
}

// handleHistory returns the caller's most recent predictions
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondWithError(w, http.StatusServiceUnavailable, "history storage is disabled")
		return
	}

	limit := int64(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	records, err := s.store.History(r.Context(), UserIDFromContext(r.Context()), limit)
	if err != nil {
		Logger().Error("History query failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"predictions": records,
	})
}

// credentialsRequest is the body of the register and login calls
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleRegister creates an account
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusBadRequest
		if ve, ok := err.(*VeriscopeError); ok && ve.Code == ErrAuthDuplicate {
			status = http.StatusConflict
		}
		respondWithError(w, status, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// handleLogin verifies credentials and returns a bearer token
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"token": token,
	})
}

// handleHealth reports component status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	components := map[string]string{
		"ai_checker":      enabledString(s.cfg.EnableAICheck),
		"news_validation": enabledString(s.cfg.EnableNewsValidation),
		"database":        "disabled",
	}
	status := "ok"

	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			components["database"] = "unreachable"
			status = "degraded"
		} else {
			components["database"] = "ok"
		}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":     status,
		"version":    s.cfg.Version,
		"uptime":     time.Since(s.startTime).String(),
		"components": components,
	})
}

// handleMetrics returns a metrics snapshot
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, collectMetrics())
}

func enabledString(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// respondWithJSON writes a JSON response
func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		Logger().Error("Failed to encode response: %v", err)
	}
}

// respondWithError writes a JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"error": message})
}

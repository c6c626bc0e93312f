// cmd/veriscope/handlers_test.go
package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer() *Server {
	cfg := &Config{Version: VERSION, JWTSecret: "test-secret", TokenTTLHours: 1}
	classifier := &stubClassifier{signal: &PredictionSignal{
		Source:     SignalLocalModel,
		Label:      LabelFake,
		Confidence: 0.85,
	}}
	pipeline := NewPipeline(classifier, nil, nil, 2)
	auth := NewAuthService(nil, cfg)
	return NewServer(cfg, pipeline, auth, nil)
}

func TestHandlePredict(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict",
		strings.NewReader(`{"text": "Aliens built the pyramids last year"}`))
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Prediction string  `json:"prediction"`
		Confidence float64 `json:"confidence"`
		IsFake     bool    `json:"is_fake"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Prediction != LabelFake || !body.IsFake {
		t.Errorf("expected fake prediction, got %+v", body)
	}
	if !almostEqual(body.Confidence, 0.85) {
		t.Errorf("expected 0.85 confidence, got %f", body.Confidence)
	}
}

func TestHandlePredictEmptyText(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict",
		strings.NewReader(`{"text": "   "}`))
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank text, got %d", rec.Code)
	}
}

func TestHandlePredictOversizedText(t *testing.T) {
	server := newTestServer()

	huge := strings.Repeat("x", maxClaimLength+1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict",
		strings.NewReader(`{"text": "`+huge+`"}`))
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized text, got %d", rec.Code)
	}
}

func TestHandleBatchPredict(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch-predict",
		strings.NewReader(`{"texts": ["claim one", "claim two"]}`))
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Predictions []Evaluation `json:"predictions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Predictions) != 2 {
		t.Errorf("expected 2 predictions, got %d", len(body.Predictions))
	}
}

func TestHandleBatchPredictTooLarge(t *testing.T) {
	server := newTestServer()

	texts := make([]string, maxBatchSize+1)
	for i := range texts {
		texts[i] = "a claim"
	}
	payload, _ := json.Marshal(map[string][]string{"texts": texts})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch-predict",
		strings.NewReader(string(payload)))
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized batch, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected ok status, got %q", body.Status)
	}
	if body.Version != VERSION {
		t.Errorf("expected version %s, got %q", VERSION, body.Version)
	}
}

func TestHandleHistoryWithoutStore(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without storage, got %d", rec.Code)
	}
}

func TestHandleLoginWithoutStore(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email": "a@b.com", "password": "password123"}`))
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without account storage, got %d", rec.Code)
	}
}

// cmd/veriscope/classifier.go
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// LocalClassifier calls the trained model server over HTTP. The model's
// architecture is opaque to this service; only the prediction contract
// matters here.
type LocalClassifier struct {
	url    string
	client *http.Client
}

// NewLocalClassifier creates the model-server client. With no URL configured
// the classifier is permanently unavailable and Predict returns nil.
func NewLocalClassifier(cfg *Config) *LocalClassifier {
	return &LocalClassifier{
		url: cfg.ClassifierURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// classifierResponse mirrors the model server's prediction payload
type classifierResponse struct {
	Prediction    string             `json:"prediction"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// Predict returns the model's signal for a claim, or nil when the model
// server is unavailable. The pipeline treats nil as an absent signal, not an
// error.
func (c *LocalClassifier) Predict(ctx context.Context, text string) *PredictionSignal {
	if c.url == "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		Logger().Warning("Classifier call failed: %v", err)
		IncrementCounter("classifier_errors")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		Logger().Warning("Classifier returned status: %s", resp.Status)
		IncrementCounter("classifier_errors")
		return nil
	}

	var payload classifierResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		Logger().Warning("Failed to parse classifier response: %v", err)
		IncrementCounter("classifier_errors")
		return nil
	}
	if payload.Prediction == "" {
		return nil
	}

	probabilities := payload.Probabilities
	if probabilities == nil {
		probabilities = binaryProbabilities(payload.Prediction, payload.Confidence)
	}

	return &PredictionSignal{
		Source:        SignalLocalModel,
		Label:         payload.Prediction,
		Confidence:    payload.Confidence,
		Probabilities: probabilities,
	}
}

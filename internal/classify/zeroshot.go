package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ZeroShotConfig configures the hosted NLI zero-shot classifier client.
type ZeroShotConfig struct {
	// BaseURL is the inference endpoint, e.g.
	// "https://api-inference.huggingface.co/models/facebook/bart-large-mnli".
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// ZeroShotClient classifies text with a hosted NLI model exposing the
// standard zero-shot inference API (inputs + candidate_labels in, ranked
// labels + scores out).
type ZeroShotClient struct {
	cfg    ZeroShotConfig
	client *http.Client
}

// NewZeroShotClient creates a client for the configured endpoint.
func NewZeroShotClient(cfg ZeroShotConfig) (*ZeroShotClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("zero-shot endpoint URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &ZeroShotClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

func (z *ZeroShotClient) Classify(ctx context.Context, text string, labels []string) (Prediction, error) {
	if len(labels) == 0 {
		return Prediction{}, ErrNoSignal
	}

	body, err := json.Marshal(zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: labels},
	})
	if err != nil {
		return Prediction{}, fmt.Errorf("marshal zero-shot request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("build zero-shot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if z.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+z.cfg.APIKey)
	}

	resp, err := z.client.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("zero-shot request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("zero-shot endpoint returned %s", resp.Status)
	}

	var out zeroShotResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Prediction{}, fmt.Errorf("decode zero-shot response: %w", err)
	}
	if len(out.Labels) == 0 || len(out.Scores) == 0 {
		return Prediction{}, fmt.Errorf("zero-shot response carried no labels")
	}

	// The API returns labels ranked by score, best first.
	score := out.Scores[0]
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return Prediction{Label: out.Labels[0], Confidence: score}, nil
}

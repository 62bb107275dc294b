package llm

import (
	"context"
	"time"

	"github.com/adhikary/tutorgraph/internal/logger"
)

// RequestRecord is the accounting data captured for one provider call.
// Request and response bodies are deliberately absent; only token counts,
// latency and the purpose label survive.
type RequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestRecorder receives one RequestRecord per provider call. The
// persistence layer satisfies it; this package stays free of storage
// concerns.
type RequestRecorder interface {
	RecordLLMRequest(ctx context.Context, rec RequestRecord) error
}

// loggingProvider records every LLM request through a RequestRecorder.
type loggingProvider struct {
	inner Provider
	rec   RequestRecorder
	log   *logger.Logger
}

// WithLogging wraps a Provider with request recording.
func WithLogging(p Provider, rec RequestRecorder, log *logger.Logger) Provider {
	return &loggingProvider{inner: p, rec: rec, log: log}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	rec := RequestRecord{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// A recording failure must not fail the request itself.
	if logErr := l.rec.RecordLLMRequest(ctx, rec); logErr != nil {
		l.log.Warn("failed to record LLM request event", "error", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adhikary/tutorgraph/internal/llm"
)

// AdaptationEventData captures one adaptation call for the audit trail.
type AdaptationEventData struct {
	StudentID  uuid.UUID         `json:"student_id"`
	Confidence float64           `json:"confidence"`
	Changed    map[string]string `json:"changed,omitempty"`
	Dominants  map[string]string `json:"dominants,omitempty"`
}

// AdaptationEvent is a stored adaptation event.
type AdaptationEvent struct {
	ID        int64
	Timestamp time.Time
	Data      AdaptationEventData
}

// LLMRequestEventData captures one LLM request for cost and latency
// accounting.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	Data      LLMRequestEventData
}

// EventRepo appends and queries the event log.
type EventRepo interface {
	AppendAdaptation(ctx context.Context, data AdaptationEventData) error
	RecentAdaptations(ctx context.Context, studentID uuid.UUID, limit int) ([]AdaptationEvent, error)

	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)
	LLMTokenTotals(ctx context.Context) (input, output int64, err error)

	llm.RequestRecorder
}

type eventRepo struct {
	db *sql.DB
}

var _ llm.RequestRecorder = (*eventRepo)(nil)

// RecordLLMRequest satisfies llm.RequestRecorder, so the provider
// middleware can be wired straight to the event log.
func (r *eventRepo) RecordLLMRequest(ctx context.Context, rec llm.RequestRecord) error {
	return r.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     rec.Provider,
		Model:        rec.Model,
		Purpose:      rec.Purpose,
		InputTokens:  rec.InputTokens,
		OutputTokens: rec.OutputTokens,
		LatencyMs:    rec.LatencyMs,
		Success:      rec.Success,
		ErrorMessage: rec.ErrorMessage,
	})
}

func (r *eventRepo) AppendAdaptation(ctx context.Context, data AdaptationEventData) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode adaptation event: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO adaptation_events (student_id, confidence, changed, data, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		data.StudentID.String(), data.Confidence, len(data.Changed), string(blob),
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append adaptation event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAdaptations(ctx context.Context, studentID uuid.UUID, limit int) ([]AdaptationEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, data, created_at FROM adaptation_events
		WHERE student_id = ? ORDER BY id DESC LIMIT ?`,
		studentID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("query adaptation events: %w", err)
	}
	defer rows.Close()

	var events []AdaptationEvent
	for rows.Next() {
		var (
			ev      AdaptationEvent
			blob    string
			created string
		)
		if err := rows.Scan(&ev.ID, &blob, &created); err != nil {
			return nil, fmt.Errorf("scan adaptation event: %w", err)
		}
		if err := json.Unmarshal([]byte(blob), &ev.Data); err != nil {
			return nil, fmt.Errorf("decode adaptation event %d: %w", ev.ID, err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			ev.Timestamp = ts
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, success, data.ErrorMessage,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, provider, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, error_message, created_at
		FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMRequestEvent
	for rows.Next() {
		var (
			ev      LLMRequestEvent
			success int
			created string
		)
		if err := rows.Scan(&ev.ID, &ev.Data.Provider, &ev.Data.Model, &ev.Data.Purpose,
			&ev.Data.InputTokens, &ev.Data.OutputTokens, &ev.Data.LatencyMs,
			&success, &ev.Data.ErrorMessage, &created); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		ev.Data.Success = success != 0
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			ev.Timestamp = ts
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepo) LLMTokenTotals(ctx context.Context) (int64, int64, error) {
	var input, output sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(input_tokens), SUM(output_tokens) FROM llm_events`,
	).Scan(&input, &output)
	if err != nil {
		return 0, 0, fmt.Errorf("sum llm tokens: %w", err)
	}
	return input.Int64, output.Int64, nil
}

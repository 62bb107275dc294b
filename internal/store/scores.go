package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adhikary/tutorgraph/internal/adapt"
)

// ScoreRepo persists per-student dimension score state. It satisfies
// adapt.ScoreStore so the engine can be wired straight to SQLite.
type ScoreRepo interface {
	adapt.ScoreStore
}

type scoreRepo struct {
	db *sql.DB
}

func (r *scoreRepo) LoadScores(ctx context.Context, studentID uuid.UUID) (adapt.StudentScores, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM dimension_scores WHERE student_id = ?`, studentID.String(),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}

	var scores adapt.StudentScores
	if err := json.Unmarshal([]byte(data), &scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	return scores, nil
}

func (r *scoreRepo) SaveScores(ctx context.Context, studentID uuid.UUID, scores adapt.StudentScores) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO dimension_scores (student_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(student_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		studentID.String(), string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}

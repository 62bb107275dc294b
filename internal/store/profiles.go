package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adhikary/tutorgraph/internal/profile"
)

// ProfileRepo stores one cognitive profile per student. A student with no
// stored profile reads back as (nil, nil); callers decide whether that
// means "use defaults".
type ProfileRepo interface {
	Get(ctx context.Context, studentID uuid.UUID) (profile.Profile, error)
	Save(ctx context.Context, studentID uuid.UUID, p profile.Profile) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Get(ctx context.Context, studentID uuid.UUID) (profile.Profile, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM profiles WHERE student_id = ?`, studentID.String(),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("stored profile for %s: %w", studentID, err)
	}
	return p, nil
}

func (r *profileRepo) Save(ctx context.Context, studentID uuid.UUID, p profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (student_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(student_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		studentID.String(), string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

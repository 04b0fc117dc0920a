package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/skillvet/interviewd/internal/interview"
)

// Interviews is a storage for interview sessions, one row per session.
// Transcript and model history are kept as JSON columns so every mutation
// is a single read-modify-write against one record.
type Interviews struct {
	db *sqlx.DB
}

// NewInterviews creates a new Interviews storage
func NewInterviews(db *sqlx.DB) (*Interviews, error) {
	createInterviewsTable := `
	CREATE TABLE IF NOT EXISTS interviews (
		id TEXT PRIMARY KEY,
		candidate_name TEXT NOT NULL,
		status TEXT NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME,
		transcript TEXT NOT NULL,
		model_history TEXT NOT NULL,
		feedback TEXT
	)
	`
	if _, err := db.Exec(createInterviewsTable); err != nil {
		return nil, fmt.Errorf("failed to create interviews table: %w", err)
	}

	return &Interviews{db: db}, nil
}

type interviewRow struct {
	ID            string     `db:"id"`
	CandidateName string     `db:"candidate_name"`
	Status        string     `db:"status"`
	StartTime     time.Time  `db:"start_time"`
	EndTime       *time.Time `db:"end_time"`
	Transcript    string     `db:"transcript"`
	ModelHistory  string     `db:"model_history"`
	Feedback      *string    `db:"feedback"`
}

// Save writes the full session record, replacing any previous version
func (i *Interviews) Save(ctx context.Context, s *interview.Session) error {
	transcript, err := json.Marshal(s.Transcript)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript for %s: %w", s.ID, err)
	}
	history, err := json.Marshal(s.ModelHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal model history for %s: %w", s.ID, err)
	}

	insertQuery := `
	INSERT OR REPLACE INTO interviews
		(id, candidate_name, status, start_time, end_time, transcript, model_history, feedback)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := i.db.ExecContext(ctx, insertQuery,
		s.ID, s.CandidateName, string(s.Status), s.StartTime, s.EndTime,
		string(transcript), string(history), s.Feedback,
	); err != nil {
		return fmt.Errorf("failed to save interview %s: %w", s.ID, err)
	}

	slog.Debug("interview saved",
		slog.String("id", s.ID),
		slog.String("status", string(s.Status)),
		slog.Int("transcript_len", len(s.Transcript)),
	)
	return nil
}

// Get returns the session for the given id
func (i *Interviews) Get(ctx context.Context, id string) (*interview.Session, error) {
	var row interviewRow
	err := i.db.GetContext(ctx, &row,
		"SELECT id, candidate_name, status, start_time, end_time, transcript, model_history, feedback FROM interviews WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", interview.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get interview %s: %w", id, err)
	}

	s := &interview.Session{
		ID:            row.ID,
		CandidateName: row.CandidateName,
		Status:        interview.Status(row.Status),
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		Feedback:      row.Feedback,
	}
	if err := json.Unmarshal([]byte(row.Transcript), &s.Transcript); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transcript for %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(row.ModelHistory), &s.ModelHistory); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model history for %s: %w", id, err)
	}
	return s, nil
}

// List returns summaries of all sessions, newest first
func (i *Interviews) List(ctx context.Context) ([]interview.Summary, error) {
	var rows []interviewRow
	err := i.db.SelectContext(ctx, &rows,
		"SELECT id, candidate_name, status, start_time FROM interviews ORDER BY start_time DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	summaries := make([]interview.Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, interview.Summary{
			ID:            row.ID,
			CandidateName: row.CandidateName,
			StartTime:     row.StartTime,
			Status:        interview.Status(row.Status),
		})
	}

	slog.Debug("read interviews",
		slog.Int("count", len(summaries)),
	)
	return summaries, nil
}

// Delete deletes the given session by id from the storage
func (i *Interviews) Delete(ctx context.Context, id string) error {
	res, err := i.db.ExecContext(ctx, "DELETE FROM interviews WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete interview %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete interview %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", interview.ErrNotFound, id)
	}

	slog.Debug("interview deleted",
		slog.String("id", id),
	)
	return nil
}

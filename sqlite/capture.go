package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// Compile-time interface verification.
var _ browseruse.CaptureService = (*CaptureService)(nil)

// CaptureService implements browseruse.CaptureService using SQLite.
type CaptureService struct {
	db *DB
}

// NewCaptureService creates a new CaptureService.
func NewCaptureService(db *DB) *CaptureService {
	return &CaptureService{db: db}
}

// SaveCapture persists a new capture.
func (s *CaptureService) SaveCapture(ctx context.Context, capture *browseruse.Capture) error {
	if err := capture.Validate(); err != nil {
		return err
	}

	if capture.ID == "" {
		capture.ID = uuid.New().String()
	}
	if capture.CapturedAt.IsZero() {
		capture.CapturedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO captures (id, url, title, content, content_hash, snapshot, captured_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, capture.ID, capture.URL, capture.Title, capture.Content, capture.ContentHash,
		capture.Snapshot, capture.CapturedAt.Format(time.RFC3339))

	return err
}

// FindCaptureByID retrieves a capture by ID.
func (s *CaptureService) FindCaptureByID(ctx context.Context, id string) (*browseruse.Capture, error) {
	var capture browseruse.Capture
	var capturedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, content, content_hash, snapshot, captured_at
		FROM captures
		WHERE id = ?
	`, id).Scan(&capture.ID, &capture.URL, &capture.Title, &capture.Content,
		&capture.ContentHash, &capture.Snapshot, &capturedAt)

	if err == sql.ErrNoRows {
		return nil, browseruse.Errorf(browseruse.ENOTFOUND, "capture not found")
	}
	if err != nil {
		return nil, err
	}

	capture.CapturedAt, err = parseRFC3339(capturedAt, "captured_at")
	if err != nil {
		return nil, err
	}

	return &capture, nil
}

// FindCaptures retrieves captures matching the filter, newest first.
func (s *CaptureService) FindCaptures(ctx context.Context, filter browseruse.CaptureFilter) ([]*browseruse.Capture, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, content, content_hash, snapshot, captured_at FROM captures WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY captured_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var captures []*browseruse.Capture
	for rows.Next() {
		var capture browseruse.Capture
		var capturedAt string

		if err := rows.Scan(&capture.ID, &capture.URL, &capture.Title, &capture.Content,
			&capture.ContentHash, &capture.Snapshot, &capturedAt); err != nil {
			return nil, err
		}

		capture.CapturedAt, err = parseRFC3339(capturedAt, "captured_at")
		if err != nil {
			return nil, err
		}

		captures = append(captures, &capture)
	}

	return captures, rows.Err()
}

// DeleteCapture permanently removes a capture.
func (s *CaptureService) DeleteCapture(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM captures WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return browseruse.Errorf(browseruse.ENOTFOUND, "capture not found")
	}

	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"linkwatch/internal/domain"
	"linkwatch/internal/storage"
)

type EventStore struct {
	db *sqlx.DB
}

func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) HasSeen(ctx context.Context, linkID, contentID string) (bool, error) {
	var seen bool
	err := s.db.GetContext(ctx, &seen,
		`SELECT EXISTS (SELECT 1 FROM link_events WHERE link_id = $1 AND content_id = $2)`,
		linkID, contentID)
	return seen, err
}

// Record inserts a link event exactly once per (link_id, content_id).
// A conflicting insert returns storage.ErrDuplicateEvent without touching the
// existing row.
func (s *EventStore) Record(ctx context.Context, event *domain.LinkEvent) error {
	query := `
		INSERT INTO link_events (
			id, link_id, content_id, content_type, title, description,
			media_url, url, published_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (link_id, content_id) DO NOTHING
		RETURNING id`

	var id string
	err := s.db.QueryRowContext(ctx, query,
		event.ID,
		event.LinkID,
		event.ContentID,
		event.ContentType,
		event.Title,
		event.Description,
		event.MediaURL,
		event.URL,
		event.PublishedAt,
		event.CreatedAt,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrDuplicateEvent
	}
	return err
}

// MarkAnnounced stamps the first successful notification time. Repeated calls
// keep the original stamp.
func (s *EventStore) MarkAnnounced(ctx context.Context, linkID, contentID string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE link_events
		SET announced_at = COALESCE(announced_at, $3)
		WHERE link_id = $1 AND content_id = $2`,
		linkID, contentID, at)
	return err
}

// ListByLink returns the recorded events for a link, newest first.
func (s *EventStore) ListByLink(ctx context.Context, linkID string, limit int) ([]domain.LinkEvent, error) {
	query := `
		SELECT id, link_id, content_id, content_type, title, description,
		       media_url, url, published_at, created_at, announced_at
		FROM link_events
		WHERE link_id = $1
		ORDER BY published_at DESC
		LIMIT $2`

	var events []domain.LinkEvent
	err := s.db.SelectContext(ctx, &events, query, linkID, limit)
	return events, err
}

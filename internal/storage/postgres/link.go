package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"linkwatch/internal/domain"
	"linkwatch/internal/storage"
)

const linkColumns = `
	id, guild_id, owner_id, platform, profile_url, profile_handle, profile_id,
	content_types, status, last_check, last_seen_id, last_seen_timestamp,
	error_count, error_message, created_at`

type LinkStore struct {
	db *sqlx.DB
}

func NewLinkStore(db *sqlx.DB) *LinkStore {
	return &LinkStore{db: db}
}

func (s *LinkStore) Create(ctx context.Context, link *domain.Link) error {
	query := `
		INSERT INTO links (
			id, guild_id, owner_id, platform, profile_url, profile_handle,
			profile_id, content_types, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		link.ID,
		link.GuildID,
		link.OwnerID,
		link.Platform,
		link.ProfileURL,
		link.ProfileHandle,
		link.ProfileID,
		pq.Array(link.ContentTypes),
		link.Status,
		link.CreatedAt,
	)
	return err
}

func (s *LinkStore) GetByID(ctx context.Context, id string) (*domain.Link, error) {
	query := `SELECT` + linkColumns + ` FROM links WHERE id = $1`

	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, id)
	link, err := scanLink(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return link, nil
}

// ListActive returns the candidate set for one watch cycle. Paused and
// errored links are excluded here, not in the engine.
func (s *LinkStore) ListActive(ctx context.Context) ([]domain.Link, error) {
	query := `SELECT` + linkColumns + ` FROM links WHERE status = $1 ORDER BY created_at`

	rows, err := s.db.QueryxContext(ctx, query, domain.LinkStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLinks(rows)
}

func (s *LinkStore) ListByGuild(ctx context.Context, guildID string) ([]domain.Link, error) {
	query := `SELECT` + linkColumns + ` FROM links WHERE guild_id = $1 ORDER BY created_at`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLinks(rows)
}

func (s *LinkStore) CountByGuild(ctx context.Context, guildID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM links WHERE guild_id = $1`, guildID)
	return count, err
}

// Delete removes a link; its events cascade at the schema level.
func (s *LinkStore) Delete(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *LinkStore) Pause(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE links SET status = $2 WHERE id = $1`, id, domain.LinkStatusPaused)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Resume reactivates a link and clears its error state. This is the only
// path out of error status.
func (s *LinkStore) Resume(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE links
		SET status = $2, error_count = 0, error_message = NULL
		WHERE id = $1`,
		id, domain.LinkStatusActive)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// MarkCheckSuccess records a successful fetch: the check timestamp advances
// and the consecutive-failure state resets.
func (s *LinkStore) MarkCheckSuccess(ctx context.Context, id string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE links
		SET last_check = $2, status = $3, error_count = 0, error_message = NULL
		WHERE id = $1`,
		id, at, domain.LinkStatusActive)
	return err
}

// MarkCheckFailure records a failed fetch with the caller-computed error
// count and status. Only link-health columns are touched.
func (s *LinkStore) MarkCheckFailure(ctx context.Context, id string, at time.Time, errCount int, status domain.LinkStatus, message string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE links
		SET last_check = $2, error_count = $3, status = $4, error_message = $5
		WHERE id = $1`,
		id, at, errCount, status, message)
	return err
}

// AdvanceWatermark moves the link's high-water mark to the given content.
func (s *LinkStore) AdvanceWatermark(ctx context.Context, id, contentID string, publishedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE links
		SET last_seen_id = $2, last_seen_timestamp = $3
		WHERE id = $1`,
		id, contentID, publishedAt)
	return err
}

func scanLink(row sqlx.ColScanner) (*domain.Link, error) {
	var link domain.Link
	var contentTypes pq.StringArray

	err := row.Scan(
		&link.ID,
		&link.GuildID,
		&link.OwnerID,
		&link.Platform,
		&link.ProfileURL,
		&link.ProfileHandle,
		&link.ProfileID,
		&contentTypes,
		&link.Status,
		&link.LastCheck,
		&link.LastSeenID,
		&link.LastSeenAt,
		&link.ErrorCount,
		&link.ErrorMessage,
		&link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	link.ContentTypes = contentTypes
	return &link, nil
}

func collectLinks(rows *sqlx.Rows) ([]domain.Link, error) {
	var links []domain.Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}
	return links, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrLinkNotFound
	}
	return nil
}

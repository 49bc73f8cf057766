package postgres

import (
	"context"
	"database/sql"
	"errors"

	"communityhub/internal/domain"
)

type inboxRepository struct {
	DB *sql.DB
}

func NewInboxRepository(db *sql.DB) domain.InboxRepository {
	return &inboxRepository{DB: db}
}

func (r *inboxRepository) List(ctx context.Context, folder string, p domain.PaginationParams) ([]*domain.InboxMessage, int, error) {
	query := `
		SELECT id, sender, recipient, subject, body, COALESCE(body_html, ''), received_at, read, folder, COUNT(*) OVER ()
		FROM inbox_messages
		WHERE folder = $1
		ORDER BY received_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, folder, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	messages := make([]*domain.InboxMessage, 0)
	total := 0
	for rows.Next() {
		m := &domain.InboxMessage{}
		if err := rows.Scan(&m.ID, &m.From, &m.To, &m.Subject, &m.Body, &m.BodyHTML, &m.ReceivedAt, &m.Read, &m.Folder, &total); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	return messages, total, rows.Err()
}

func (r *inboxRepository) GetByID(ctx context.Context, id string) (*domain.InboxMessage, error) {
	query := `
		SELECT id, sender, recipient, subject, body, COALESCE(body_html, ''), received_at, read, folder
		FROM inbox_messages
		WHERE id = $1
	`
	m := &domain.InboxMessage{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.From, &m.To, &m.Subject, &m.Body, &m.BodyHTML, &m.ReceivedAt, &m.Read, &m.Folder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// MarkRead is idempotent: marking an already-read message succeeds.
func (r *inboxRepository) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE inbox_messages SET read = TRUE WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *inboxRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM inbox_messages WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *inboxRepository) Search(ctx context.Context, q string, limit int) ([]*domain.InboxMessage, error) {
	query := `
		SELECT id, sender, recipient, subject, body, COALESCE(body_html, ''), received_at, read, folder
		FROM inbox_messages
		WHERE subject ILIKE $1 OR sender ILIKE $1 OR body ILIKE $1
		ORDER BY received_at DESC
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, "%"+q+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*domain.InboxMessage, 0)
	for rows.Next() {
		m := &domain.InboxMessage{}
		if err := rows.Scan(&m.ID, &m.From, &m.To, &m.Subject, &m.Body, &m.BodyHTML, &m.ReceivedAt, &m.Read, &m.Folder); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *inboxRepository) UnreadCount(ctx context.Context, folder string) (int, error) {
	query := `SELECT COUNT(*) FROM inbox_messages WHERE folder = $1 AND read = FALSE`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, folder).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

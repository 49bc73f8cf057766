package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"communityhub/internal/domain"
)

type sentEmailRepository struct {
	DB *sql.DB
}

func NewSentEmailRepository(db *sql.DB) domain.SentEmailRepository {
	return &sentEmailRepository{DB: db}
}

func (r *sentEmailRepository) Create(ctx context.Context, e *domain.SentEmail) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `
		INSERT INTO sent_emails (id, recipient, subject, body, sent_at, email_type, event_name, rsvp_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.To, e.Subject, e.Body, e.SentAt, e.Type, e.EventName, e.RSVPStatus,
	)
	return err
}

func (r *sentEmailRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.SentEmail, int, error) {
	query := `
		SELECT id, recipient, subject, body, sent_at, email_type, COALESCE(event_name, ''), COALESCE(rsvp_status, ''), COUNT(*) OVER ()
		FROM sent_emails
		ORDER BY sent_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	emails := make([]*domain.SentEmail, 0)
	total := 0
	for rows.Next() {
		e := &domain.SentEmail{}
		if err := rows.Scan(&e.ID, &e.To, &e.Subject, &e.Body, &e.SentAt, &e.Type, &e.EventName, &e.RSVPStatus, &total); err != nil {
			return nil, 0, err
		}
		emails = append(emails, e)
	}
	return emails, total, rows.Err()
}

func (r *sentEmailRepository) ListEvitesByEvent(ctx context.Context, eventName string, since time.Time) ([]*domain.SentEmail, error) {
	query := `
		SELECT id, recipient, subject, body, sent_at, email_type, COALESCE(event_name, ''), COALESCE(rsvp_status, '')
		FROM sent_emails
		WHERE email_type = $1 AND event_name = $2 AND sent_at >= $3
		ORDER BY sent_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.EmailTypeEvite, eventName, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := make([]*domain.SentEmail, 0)
	for rows.Next() {
		e := &domain.SentEmail{}
		if err := rows.Scan(&e.ID, &e.To, &e.Subject, &e.Body, &e.SentAt, &e.Type, &e.EventName, &e.RSVPStatus); err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

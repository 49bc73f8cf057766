package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"communityhub/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(ctx context.Context, s *domain.ContactSubmission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `
		INSERT INTO contact_submissions (id, name, email, phone, subject, message, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Name, s.Email, s.Phone, s.Subject, s.Message, s.Status, s.SubmittedAt,
	)
	return err
}

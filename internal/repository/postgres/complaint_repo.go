package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"communityhub/internal/domain"
)

type complaintRepository struct {
	DB *sql.DB
}

func NewComplaintRepository(db *sql.DB) domain.ComplaintRepository {
	return &complaintRepository{DB: db}
}

func (r *complaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
		INSERT INTO complaints (id, description, category, email, name, tracking_id, status, submitted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Description, c.Category, c.Email, c.Name, c.TrackingID, c.Status, c.SubmittedAt, c.UpdatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		// Tracking ids derive from wall-clock time; a collision is possible
		// when two complaints land in the same millisecond.
		return errors.New("tracking id collision, please retry")
	}
	return err
}

func (r *complaintRepository) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Complaint, error) {
	query := `
		SELECT id, description, category, COALESCE(email, ''), name, tracking_id, status, submitted_at, updated_at
		FROM complaints
		WHERE tracking_id = $1
	`
	c := &domain.Complaint{}
	err := r.DB.QueryRowContext(ctx, query, trackingID).Scan(
		&c.ID, &c.Description, &c.Category, &c.Email, &c.Name, &c.TrackingID, &c.Status, &c.SubmittedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

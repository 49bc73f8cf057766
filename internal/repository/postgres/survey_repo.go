package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"communityhub/internal/domain"
)

type surveyRepository struct {
	DB *sql.DB
}

func NewSurveyRepository(db *sql.DB) domain.SurveyRepository {
	return &surveyRepository{DB: db}
}

func (r *surveyRepository) ListActive(ctx context.Context, limit int) ([]*domain.Survey, int, error) {
	query := `
		SELECT id, title, status, COALESCE(questions, ''), created_at, COUNT(*) OVER ()
		FROM surveys
		WHERE status = 'active'
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	surveys := make([]*domain.Survey, 0)
	total := 0
	for rows.Next() {
		s := &domain.Survey{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Status, &s.Questions, &s.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		surveys = append(surveys, s)
	}
	return surveys, total, rows.Err()
}

func (r *surveyRepository) GetByID(ctx context.Context, id string) (*domain.Survey, error) {
	query := `
		SELECT id, title, status, COALESCE(questions, ''), created_at
		FROM surveys
		WHERE id = $1
	`
	s := &domain.Survey{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Title, &s.Status, &s.Questions, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *surveyRepository) CreateResponse(ctx context.Context, resp *domain.SurveyResponse) error {
	if resp.ID == "" {
		resp.ID = uuid.NewString()
	}
	responses, err := json.Marshal(resp.Responses)
	if err != nil {
		return fmt.Errorf("failed to encode responses: %w", err)
	}
	query := `
		INSERT INTO survey_responses (id, survey_id, responses, member_id, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.DB.ExecContext(ctx, query, resp.ID, resp.SurveyID, responses, resp.MemberID, resp.SubmittedAt)
	return err
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"communityhub/internal/domain"
)

type memberRepository struct {
	DB *sql.DB
}

func NewMemberRepository(db *sql.DB) domain.MemberRepository {
	return &memberRepository{DB: db}
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	query := `
		INSERT INTO members (id, email, first_name, last_name, name, password_hash, salt, phone, member_type, status, is_admin, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Email, m.FirstName, m.LastName, m.Name, m.PasswordHash, m.Salt,
		m.Phone, m.MemberType, m.Status, m.IsAdmin, m.JoinDate,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `
		SELECT id, email, first_name, last_name, name, password_hash, salt, phone, member_type, status, is_admin, join_date
		FROM members
		WHERE email = $1
	`
	m := &domain.Member{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&m.ID, &m.Email, &m.FirstName, &m.LastName, &m.Name, &m.PasswordHash, &m.Salt,
		&m.Phone, &m.MemberType, &m.Status, &m.IsAdmin, &m.JoinDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) List(ctx context.Context, limit int) ([]*domain.MemberSummary, int, error) {
	query := `
		SELECT id, name, first_name, last_name, member_type, status, join_date, COUNT(*) OVER ()
		FROM members
		ORDER BY join_date DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	members := make([]*domain.MemberSummary, 0)
	total := 0
	for rows.Next() {
		m := &domain.MemberSummary{}
		if err := rows.Scan(&m.ID, &m.Name, &m.FirstName, &m.LastName, &m.MemberType, &m.Status, &m.JoinDate, &total); err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}
	return members, total, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityhub/internal/domain"
)

func TestMemberRepository_Create(t *testing.T) {
	ctx := context.Background()
	joined := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	member := func() *domain.Member {
		return &domain.Member{
			ID:         "mem-1",
			Email:      "alice@example.com",
			FirstName:  "Alice",
			LastName:   "Ng",
			Name:       "Alice Ng",
			MemberType: "standard",
			Status:     "active",
			JoinDate:   joined,
		}
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO members`).
					WithArgs("mem-1", "alice@example.com", "Alice", "Ng", "Alice Ng", "", "", "", "standard", "active", false, joined).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate email maps to sentinel",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO members`).
					WithArgs("mem-1", "alice@example.com", "Alice", "Ng", "Alice Ng", "", "", "", "standard", "active", false, joined).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name: "db error passes through",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO members`).
					WithArgs("mem-1", "alice@example.com", "Alice", "Ng", "Alice Ng", "", "", "", "standard", "active", false, joined).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewMemberRepository(db)
			err = repo.Create(ctx, member())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMemberRepository_Create_GeneratesID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO members`).
		WithArgs(sqlmock.AnyArg(), "bob@example.com", "", "", "", "", "", "", "", "", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMemberRepository(db)
	m := &domain.Member{Email: "bob@example.com"}
	require.NoError(t, repo.Create(context.Background(), m))
	assert.NotEmpty(t, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	joined := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "email", "first_name", "last_name", "name", "password_hash", "salt", "phone", "member_type", "status", "is_admin", "join_date"}

	tests := []struct {
		name    string
		email   string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Member
		wantErr error
	}{
		{
			name:  "found",
			email: "alice@example.com",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM members WHERE email = \$1`).
					WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows(cols).
						AddRow("mem-1", "alice@example.com", "Alice", "Ng", "Alice Ng", "hash", "salt", "555", "standard", "active", false, joined))
			},
			want: &domain.Member{
				ID: "mem-1", Email: "alice@example.com", FirstName: "Alice", LastName: "Ng",
				Name: "Alice Ng", PasswordHash: "hash", Salt: "salt", Phone: "555",
				MemberType: "standard", Status: "active", JoinDate: joined,
			},
		},
		{
			name:  "missing maps to not found",
			email: "ghost@example.com",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM members WHERE email = \$1`).
					WithArgs("ghost@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewMemberRepository(db)
			got, err := repo.GetByEmail(ctx, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMemberRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	joined := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM members ORDER BY join_date DESC`).
		WithArgs(200).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "first_name", "last_name", "member_type", "status", "join_date", "count"}).
			AddRow("mem-2", "Bob Tran", "Bob", "Tran", "standard", "active", joined, 2).
			AddRow("mem-1", "Alice Ng", "Alice", "Ng", "premium", "active", joined, 2))

	repo := NewMemberRepository(db)
	members, total, err := repo.List(context.Background(), 200)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, members, 2)
	assert.Equal(t, "Bob Tran", members[0].Name)
	assert.Equal(t, "premium", members[1].MemberType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

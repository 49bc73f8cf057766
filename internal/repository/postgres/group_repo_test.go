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

func TestGroupRepository_CreateGroup(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO contact_groups`).
					WithArgs("grp-1", "Board", "Board members", created).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate name maps to sentinel",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO contact_groups`).
					WithArgs("grp-1", "Board", "Board members", created).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewGroupRepository(db)
			err = repo.CreateGroup(ctx, &domain.ContactGroup{
				ID: "grp-1", GroupName: "Board", Description: "Board members", CreatedAt: created,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGroupRepository_DeleteGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades contacts then group in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM group_contacts WHERE group_name = \$1`).
			WithArgs("Board").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM contact_groups WHERE group_name = \$1`).
			WithArgs("Board").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewGroupRepository(db)
		require.NoError(t, repo.DeleteGroup(ctx, "Board"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing group rolls back with not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM group_contacts WHERE group_name = \$1`).
			WithArgs("Ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM contact_groups WHERE group_name = \$1`).
			WithArgs("Ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		repo := NewGroupRepository(db)
		assert.ErrorIs(t, repo.DeleteGroup(ctx, "Ghost"), domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_AddContact(t *testing.T) {
	ctx := context.Background()
	added := time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rowsAffected int64
		wantInserted bool
	}{
		{name: "new pair inserts", rowsAffected: 1, wantInserted: true},
		{name: "existing pair is skipped", rowsAffected: 0, wantInserted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`INSERT INTO group_contacts (.+) ON CONFLICT \(group_name, email\) DO NOTHING`).
				WithArgs("ct-1", "Board", "Alice", "alice@example.com", added).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			repo := NewGroupRepository(db)
			inserted, err := repo.AddContact(ctx, &domain.GroupContact{
				ID: "ct-1", GroupName: "Board", Name: "Alice", Email: "alice@example.com", AddedAt: added,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantInserted, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGroupRepository_RemoveContacts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	emails := []string{"alice@example.com", "bob@example.com"}
	mock.ExpectExec(`DELETE FROM group_contacts WHERE group_name = \$1 AND email = ANY\(\$2\)`).
		WithArgs("Board", pq.Array(emails)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := NewGroupRepository(db)
	removed, err := repo.RemoveContacts(context.Background(), "Board", emails)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_GetGroup_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM contact_groups WHERE group_name = \$1`).
		WithArgs("Ghost").
		WillReturnError(sql.ErrNoRows)

	repo := NewGroupRepository(db)
	_, err = repo.GetGroup(context.Background(), "Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

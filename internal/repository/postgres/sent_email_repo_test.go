package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityhub/internal/domain"
)

func TestSentEmailRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sentAt := time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO sent_emails`).
		WithArgs(sqlmock.AnyArg(), "alice@example.com", "You're Invited: Diwali Night", "body", sentAt, "evite", "Diwali Night", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSentEmailRepository(db)
	entry := &domain.SentEmail{
		To:         "alice@example.com",
		Subject:    "You're Invited: Diwali Night",
		Body:       "body",
		SentAt:     sentAt,
		Type:       domain.EmailTypeEvite,
		EventName:  "Diwali Night",
		RSVPStatus: domain.RSVPPending,
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NotEmpty(t, entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSentEmailRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sentAt := time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)
	cols := []string{"id", "recipient", "subject", "body", "sent_at", "email_type", "event_name", "rsvp_status", "count"}
	mock.ExpectQuery(`SELECT (.+) FROM sent_emails ORDER BY sent_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 20).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("se-1", "a@example.com", "hello", "body", sentAt, "direct", "", "", 41))

	repo := NewSentEmailRepository(db)
	emails, total, err := repo.List(context.Background(), domain.PaginationParams{Page: 2, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, 41, total)
	require.Len(t, emails, 1)
	assert.Equal(t, domain.EmailTypeDirect, emails[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSentEmailRepository_ListEvitesByEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	since := time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)
	sentAt := since.AddDate(0, 0, 5)
	cols := []string{"id", "recipient", "subject", "body", "sent_at", "email_type", "event_name", "rsvp_status"}
	mock.ExpectQuery(`SELECT (.+) FROM sent_emails WHERE email_type = \$1 AND event_name = \$2 AND sent_at >= \$3`).
		WithArgs(domain.EmailTypeEvite, "Diwali Night", since).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("se-1", "a@example.com", "inv", "body", sentAt, "evite", "Diwali Night", "yes").
			AddRow("se-2", "b@example.com", "inv", "body", sentAt, "evite", "Diwali Night", ""))

	repo := NewSentEmailRepository(db)
	entries, err := repo.ListEvitesByEvent(context.Background(), "Diwali Night", since)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "yes", entries[0].RSVPStatus)
	assert.Empty(t, entries[1].RSVPStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"communityhub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Event, int, error) {
	query := `
		SELECT id, title, date, venue, category, COUNT(*) OVER ()
		FROM events
		WHERE date >= $1
		ORDER BY date ASC
		LIMIT $2
	`
	return r.list(ctx, query, from, limit)
}

func (r *eventRepository) ListPast(ctx context.Context, before time.Time, limit int) ([]*domain.Event, int, error) {
	query := `
		SELECT id, title, date, venue, category, COUNT(*) OVER ()
		FROM events
		WHERE date < $1
		ORDER BY date DESC
		LIMIT $2
	`
	return r.list(ctx, query, before, limit)
}

func (r *eventRepository) list(ctx context.Context, query string, pivot time.Time, limit int) ([]*domain.Event, int, error) {
	rows, err := r.DB.QueryContext(ctx, query, pivot, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	total := 0
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Venue, &e.Category, &total); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

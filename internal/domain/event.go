package domain

import (
	"context"
	"time"
)

// Event is a community event.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Venue    string    `json:"venue"`
	Category string    `json:"category"`
}

// EventRepository defines event queries. Upcoming events are ordered by date
// ascending, past events descending.
type EventRepository interface {
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*Event, int, error)
	ListPast(ctx context.Context, before time.Time, limit int) ([]*Event, int, error)
}

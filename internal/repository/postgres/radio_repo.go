package postgres

import (
	"context"
	"database/sql"

	"communityhub/internal/domain"
)

type radioRepository struct {
	DB *sql.DB
}

func NewRadioRepository(db *sql.DB) domain.RadioRepository {
	return &radioRepository{DB: db}
}

func (r *radioRepository) ListStations(ctx context.Context, limit int) ([]*domain.RadioStation, error) {
	query := `
		SELECT id, name, stream_url, is_playing, COALESCE(current_track, '')
		FROM radio_stations
		ORDER BY name ASC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := make([]*domain.RadioStation, 0)
	for rows.Next() {
		s := &domain.RadioStation{}
		if err := rows.Scan(&s.ID, &s.Name, &s.StreamURL, &s.IsPlaying, &s.CurrentTrack); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

func (r *radioRepository) ListSchedule(ctx context.Context, limit int) ([]*domain.RadioShow, int, error) {
	query := `
		SELECT id, title, COALESCE(host, ''), start_time, end_time, COUNT(*) OVER ()
		FROM radio_schedule
		ORDER BY start_time ASC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	shows := make([]*domain.RadioShow, 0)
	total := 0
	for rows.Next() {
		s := &domain.RadioShow{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Host, &s.StartTime, &s.EndTime, &total); err != nil {
			return nil, 0, err
		}
		shows = append(shows, s)
	}
	return shows, total, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"

	"communityhub/internal/domain"
)

type sponsorRepository struct {
	DB *sql.DB
}

func NewSponsorRepository(db *sql.DB) domain.SponsorRepository {
	return &sponsorRepository{DB: db}
}

func (r *sponsorRepository) ListActive(ctx context.Context, limit int) ([]*domain.Sponsor, int, error) {
	query := `
		SELECT id, name, tier, COALESCE(logo_url, ''), COALESCE(website, ''), active, COUNT(*) OVER ()
		FROM sponsors
		WHERE active = TRUE
		ORDER BY tier ASC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sponsors := make([]*domain.Sponsor, 0)
	total := 0
	for rows.Next() {
		s := &domain.Sponsor{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Tier, &s.LogoURL, &s.Website, &s.Active, &total); err != nil {
			return nil, 0, err
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, total, rows.Err()
}

func (r *sponsorRepository) ListTiers(ctx context.Context, limit int) ([]*domain.SponsorTier, error) {
	query := `
		SELECT id, name, sort_order
		FROM sponsor_tiers
		ORDER BY sort_order ASC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiers := make([]*domain.SponsorTier, 0)
	for rows.Next() {
		t := &domain.SponsorTier{}
		if err := rows.Scan(&t.ID, &t.Name, &t.SortOrder); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

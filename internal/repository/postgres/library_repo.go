package postgres

import (
	"context"
	"database/sql"

	"communityhub/internal/domain"
)

type libraryRepository struct {
	DB *sql.DB
}

func NewLibraryRepository(db *sql.DB) domain.LibraryRepository {
	return &libraryRepository{DB: db}
}

func (r *libraryRepository) ListDocuments(ctx context.Context, category string, limit int) ([]*domain.Document, int, error) {
	query := `
		SELECT id, title, category, url, is_public, created_at, COUNT(*) OVER ()
		FROM documents
		WHERE is_public = TRUE AND ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0)
	total := 0
	for rows.Next() {
		d := &domain.Document{}
		if err := rows.Scan(&d.ID, &d.Title, &d.Category, &d.URL, &d.IsPublic, &d.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		docs = append(docs, d)
	}
	return docs, total, rows.Err()
}

func (r *libraryRepository) ListMagazines(ctx context.Context, limit int) ([]*domain.Magazine, int, error) {
	query := `
		SELECT id, title, status, url, publish_date, COUNT(*) OVER ()
		FROM magazines
		WHERE status = 'published'
		ORDER BY publish_date DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	magazines := make([]*domain.Magazine, 0)
	total := 0
	for rows.Next() {
		m := &domain.Magazine{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Status, &m.URL, &m.PublishDate, &total); err != nil {
			return nil, 0, err
		}
		magazines = append(magazines, m)
	}
	return magazines, total, rows.Err()
}

func (r *libraryRepository) ListGuide(ctx context.Context, category string, limit int) ([]*domain.GuideListing, int, error) {
	query := `
		SELECT id, name, category, COALESCE(phone, ''), COALESCE(website, ''), status, COUNT(*) OVER ()
		FROM guide_listings
		WHERE status = 'active' AND ($1 = '' OR category = $1)
		ORDER BY name ASC
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	listings := make([]*domain.GuideListing, 0)
	total := 0
	for rows.Next() {
		g := &domain.GuideListing{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Category, &g.Phone, &g.Website, &g.Status, &total); err != nil {
			return nil, 0, err
		}
		listings = append(listings, g)
	}
	return listings, total, rows.Err()
}

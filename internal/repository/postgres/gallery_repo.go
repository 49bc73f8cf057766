package postgres

import (
	"context"
	"database/sql"

	"communityhub/internal/domain"
)

type galleryRepository struct {
	DB *sql.DB
}

func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{DB: db}
}

func (r *galleryRepository) ListPublicAlbums(ctx context.Context, limit int) ([]*domain.PhotoAlbum, int, error) {
	query := `
		SELECT id, title, COALESCE(cover_url, ''), is_public, created_at, COUNT(*) OVER ()
		FROM photo_albums
		WHERE is_public = TRUE
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	albums := make([]*domain.PhotoAlbum, 0)
	total := 0
	for rows.Next() {
		a := &domain.PhotoAlbum{}
		if err := rows.Scan(&a.ID, &a.Title, &a.CoverURL, &a.IsPublic, &a.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		albums = append(albums, a)
	}
	return albums, total, rows.Err()
}

func (r *galleryRepository) ListAlbumPhotos(ctx context.Context, albumID string, limit int) ([]*domain.Photo, int, error) {
	query := `
		SELECT id, COALESCE(album_id, ''), url, COALESCE(caption, ''), sort_order, is_public, COALESCE(uploaded_by, ''), created_at, COUNT(*) OVER ()
		FROM photos
		WHERE album_id = $1
		ORDER BY sort_order ASC
		LIMIT $2
	`
	return r.listPhotos(ctx, query, albumID, limit)
}

func (r *galleryRepository) ListPublicPhotos(ctx context.Context, limit int) ([]*domain.Photo, int, error) {
	query := `
		SELECT id, COALESCE(album_id, ''), url, COALESCE(caption, ''), sort_order, is_public, COALESCE(uploaded_by, ''), created_at, COUNT(*) OVER ()
		FROM photos
		WHERE is_public = TRUE
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanPhotos(rows)
}

func (r *galleryRepository) ListMemberPhotos(ctx context.Context, memberID string, limit int) ([]*domain.Photo, int, error) {
	if memberID == "" {
		query := `
			SELECT id, COALESCE(album_id, ''), url, COALESCE(caption, ''), sort_order, is_public, COALESCE(uploaded_by, ''), created_at, COUNT(*) OVER ()
			FROM photos
			ORDER BY created_at DESC
			LIMIT $1
		`
		rows, err := r.DB.QueryContext(ctx, query, limit)
		if err != nil {
			return nil, 0, err
		}
		defer rows.Close()
		return scanPhotos(rows)
	}
	query := `
		SELECT id, COALESCE(album_id, ''), url, COALESCE(caption, ''), sort_order, is_public, COALESCE(uploaded_by, ''), created_at, COUNT(*) OVER ()
		FROM photos
		WHERE uploaded_by = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.listPhotos(ctx, query, memberID, limit)
}

func (r *galleryRepository) listPhotos(ctx context.Context, query, filter string, limit int) ([]*domain.Photo, int, error) {
	rows, err := r.DB.QueryContext(ctx, query, filter, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanPhotos(rows)
}

func scanPhotos(rows *sql.Rows) ([]*domain.Photo, int, error) {
	photos := make([]*domain.Photo, 0)
	total := 0
	for rows.Next() {
		p := &domain.Photo{}
		if err := rows.Scan(&p.ID, &p.AlbumID, &p.URL, &p.Caption, &p.SortOrder, &p.IsPublic, &p.UploadedBy, &p.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		photos = append(photos, p)
	}
	return photos, total, rows.Err()
}

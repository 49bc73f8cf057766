package domain

import (
	"context"
	"time"
)

// Sponsor is an association sponsor, listed by tier.
type Sponsor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tier    string `json:"tier"`
	LogoURL string `json:"logoUrl,omitempty"`
	Website string `json:"website,omitempty"`
	Active  bool   `json:"active"`
}

// SponsorTier is a sponsorship level with an explicit display order.
type SponsorTier struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"order"`
}

// PhotoAlbum groups gallery photos.
type PhotoAlbum struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CoverURL  string    `json:"coverUrl,omitempty"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
}

// Photo is a single gallery image. SortOrder drives album ordering.
type Photo struct {
	ID         string    `json:"id"`
	AlbumID    string    `json:"albumId,omitempty"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption,omitempty"`
	SortOrder  int       `json:"order"`
	IsPublic   bool      `json:"isPublic"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Document is a public association document (meeting minutes, bylaws, ...).
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	URL       string    `json:"url"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
}

// Magazine is a published community magazine issue.
type Magazine struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	URL         string    `json:"url"`
	PublishDate time.Time `json:"publishDate"`
}

// GuideListing is an entry in the community business/services guide.
type GuideListing struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
	Status   string `json:"status"`
}

// RadioStation is the internet-radio station configuration snapshot.
type RadioStation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StreamURL    string `json:"streamUrl"`
	IsPlaying    bool   `json:"isPlaying"`
	CurrentTrack string `json:"currentTrack,omitempty"`
}

// RadioShow is a scheduled radio program.
type RadioShow struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Host      string    `json:"host,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// SponsorRepository lists active sponsors (ascending by tier) and tiers
// (ascending by explicit sort order).
type SponsorRepository interface {
	ListActive(ctx context.Context, limit int) ([]*Sponsor, int, error)
	ListTiers(ctx context.Context, limit int) ([]*SponsorTier, error)
}

// GalleryRepository serves albums and photos.
type GalleryRepository interface {
	ListPublicAlbums(ctx context.Context, limit int) ([]*PhotoAlbum, int, error)
	ListAlbumPhotos(ctx context.Context, albumID string, limit int) ([]*Photo, int, error)
	ListPublicPhotos(ctx context.Context, limit int) ([]*Photo, int, error)
	ListMemberPhotos(ctx context.Context, memberID string, limit int) ([]*Photo, int, error)
}

// LibraryRepository serves documents, magazines, and guide listings.
type LibraryRepository interface {
	ListDocuments(ctx context.Context, category string, limit int) ([]*Document, int, error)
	ListMagazines(ctx context.Context, limit int) ([]*Magazine, int, error)
	ListGuide(ctx context.Context, category string, limit int) ([]*GuideListing, int, error)
}

// RadioRepository serves the station snapshot and program schedule.
type RadioRepository interface {
	ListStations(ctx context.Context, limit int) ([]*RadioStation, error)
	ListSchedule(ctx context.Context, limit int) ([]*RadioShow, int, error)
}

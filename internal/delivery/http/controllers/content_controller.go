package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

// Listing limits per entity, matching the public site's page sizes.
const (
	eventListLimit    = 50
	sponsorListLimit  = 100
	tierListLimit     = 20
	albumListLimit    = 50
	albumPhotoLimit   = 200
	photoListLimit    = 100
	documentListLimit = 100
	magazineListLimit = 20
	guideListLimit    = 100
)

// ContentController serves the read-only public content listings: events,
// sponsors, gallery, documents, magazines, and the community guide. These
// routes are plain repository reads with no business rules, so the
// controller talks to the repository ports directly.
type ContentController struct {
	Logger   *slog.Logger
	Events   domain.EventRepository
	Sponsors domain.SponsorRepository
	Gallery  domain.GalleryRepository
	Library  domain.LibraryRepository
}

func NewContentController(logger *slog.Logger, events domain.EventRepository, sponsors domain.SponsorRepository, gallery domain.GalleryRepository, library domain.LibraryRepository) *ContentController {
	return &ContentController{
		Logger:   logger,
		Events:   events,
		Sponsors: sponsors,
		Gallery:  gallery,
		Library:  library,
	}
}

func (c *ContentController) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteError(w, http.StatusInternalServerError, message+": "+err.Error())
}

// EventsResponse is the body of the event listing routes.
type EventsResponse struct {
	Success bool            `json:"success"`
	Events  []*domain.Event `json:"events"`
	Total   int             `json:"total"`
}

// UpcomingEvents handles GET /get_events (ascending by date).
func (c *ContentController) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	events, total, err := c.Events.ListUpcoming(r.Context(), time.Now(), eventListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventsResponse{Success: true, Events: events, Total: total})
}

// PastEvents handles GET /get_past_events (descending by date).
func (c *ContentController) PastEvents(w http.ResponseWriter, r *http.Request) {
	events, total, err := c.Events.ListPast(r.Context(), time.Now(), eventListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch past events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventsResponse{Success: true, Events: events, Total: total})
}

// SponsorList handles GET /get_sponsors (active, ascending by tier).
func (c *ContentController) SponsorList(w http.ResponseWriter, r *http.Request) {
	sponsors, total, err := c.Sponsors.ListActive(r.Context(), sponsorListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch sponsors")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success  bool              `json:"success"`
		Sponsors []*domain.Sponsor `json:"sponsors"`
		Total    int               `json:"total"`
	}{true, sponsors, total})
}

// SponsorTiers handles GET /get_sponsor_tiers (ascending by sort order).
func (c *ContentController) SponsorTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := c.Sponsors.ListTiers(r.Context(), tierListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch sponsor tiers")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool                  `json:"success"`
		Tiers   []*domain.SponsorTier `json:"tiers"`
	}{true, tiers})
}

// GalleryAlbums handles GET /get_gallery (public albums, newest first).
func (c *ContentController) GalleryAlbums(w http.ResponseWriter, r *http.Request) {
	albums, total, err := c.Gallery.ListPublicAlbums(r.Context(), albumListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch galleries")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success   bool                 `json:"success"`
		Galleries []*domain.PhotoAlbum `json:"galleries"`
		Total     int                  `json:"total"`
	}{true, albums, total})
}

// PhotosResponse is the body of the photo listing routes.
type PhotosResponse struct {
	Success bool            `json:"success"`
	Photos  []*domain.Photo `json:"photos"`
	Total   int             `json:"total"`
}

// AlbumPhotos handles GET /get_album_photos?albumId= (ascending by order).
func (c *ContentController) AlbumPhotos(w http.ResponseWriter, r *http.Request) {
	albumID := helpers.Query(r, "albumId")
	if albumID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "albumId is required")
		return
	}
	photos, total, err := c.Gallery.ListAlbumPhotos(r.Context(), albumID, albumPhotoLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch album photos")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, PhotosResponse{Success: true, Photos: photos, Total: total})
}

// PublicPhotos handles GET /getPublicPhotos.
func (c *ContentController) PublicPhotos(w http.ResponseWriter, r *http.Request) {
	photos, total, err := c.Gallery.ListPublicPhotos(r.Context(), photoListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch public photos")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, PhotosResponse{Success: true, Photos: photos, Total: total})
}

// MemberPhotos handles GET /getMemberPhotos?memberId=. With no memberId it
// lists all photos, newest first.
func (c *ContentController) MemberPhotos(w http.ResponseWriter, r *http.Request) {
	photos, total, err := c.Gallery.ListMemberPhotos(r.Context(), helpers.Query(r, "memberId"), photoListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch member photos")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, PhotosResponse{Success: true, Photos: photos, Total: total})
}

// Documents handles GET /get_documents?category=.
func (c *ContentController) Documents(w http.ResponseWriter, r *http.Request) {
	docs, total, err := c.Library.ListDocuments(r.Context(), helpers.Query(r, "category"), documentListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch documents")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success   bool               `json:"success"`
		Documents []*domain.Document `json:"documents"`
		Total     int                `json:"total"`
	}{true, docs, total})
}

// Magazines handles GET /get_magazines (published, newest first).
func (c *ContentController) Magazines(w http.ResponseWriter, r *http.Request) {
	magazines, total, err := c.Library.ListMagazines(r.Context(), magazineListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch magazines")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success   bool               `json:"success"`
		Magazines []*domain.Magazine `json:"magazines"`
		Total     int                `json:"total"`
	}{true, magazines, total})
}

// Guide handles GET /get_guide?category= (active listings, by name).
func (c *ContentController) Guide(w http.ResponseWriter, r *http.Request) {
	listings, total, err := c.Library.ListGuide(r.Context(), helpers.Query(r, "category"), guideListLimit)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch guide")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success  bool                   `json:"success"`
		Listings []*domain.GuideListing `json:"listings"`
		Total    int                    `json:"total"`
	}{true, listings, total})
}

// SetupCollections handles GET /get_setup_collections: the admin checklist of
// expected storage collections.
func (c *ContentController) SetupCollections(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success             bool     `json:"success"`
		ExpectedCollections []string `json:"expectedCollections"`
		Message             string   `json:"message"`
	}{
		Success: true,
		ExpectedCollections: []string{
			"Events", "Members", "RadioStations", "RadioSchedule",
			"Sponsors", "SponsorTiers", "PhotoAlbums", "Photos",
			"Surveys", "SurveyResponses", "Complaints", "ContactSubmissions",
			"Documents", "Magazines", "GuideListings",
			"SentEmails", "InboxMessages", "ContactGroups", "GroupContacts",
		},
		Message: "Create these collections in the database if they do not exist",
	})
}

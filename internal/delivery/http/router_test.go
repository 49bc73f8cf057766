package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityhub/internal/delivery/http/controllers"
)

func newTestRouter() *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRouter(Controllers{
		Health:    controllers.NewHealthController(),
		Content:   controllers.NewContentController(logger, nil, nil, nil, nil),
		Member:    controllers.NewMemberController(logger, nil),
		Community: controllers.NewCommunityController(logger, nil),
		Email:     controllers.NewEmailController(logger, nil),
		Radio:     controllers.NewRadioController(logger, nil),
		Zelle:     controllers.NewZelleController(),
	})
}

// Every route path must answer OPTIONS with an empty 200 preflight reply.
func TestRouter_PreflightOnEveryPath(t *testing.T) {
	paths := []string{
		"/health",
		"/get_events", "/get_past_events",
		"/get_sponsors", "/get_sponsor_tiers",
		"/get_gallery", "/get_album_photos", "/getPublicPhotos", "/getMemberPhotos",
		"/get_documents", "/get_magazines", "/get_guide", "/get_setup_collections",
		"/get_members", "/member_login", "/member_signup",
		"/get_surveys", "/get_survey", "/submit_survey",
		"/submit_complaint", "/complaint_status", "/submit_contact",
		"/email_status", "/email_unread", "/email_inbox", "/email_message",
		"/email_search", "/contacts", "/rsvp_check", "/sent_history",
		"/email_mark_read", "/email_delete", "/send_email", "/send_evite",
		"/contact_group_create", "/contact_group_delete",
		"/contact_group_add", "/contact_group_remove",
		"/get_radio", "/get_radio_schedule", "/get_radio_status",
		"/radio_start", "/radio_next", "/radio_previous",
		"/zelle_stats", "/zelle_payments", "/zelle_poller", "/zelle_members", "/zelle_history",
		"/zelle_scan", "/zelle_verify", "/zelle_reject", "/zelle_match", "/zelle_seed",
	}

	mux := newTestRouter()
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type, Authorization, X-Requested-With", rec.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestRouter_Health(t *testing.T) {
	mux := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ZelleStubsNeverFail(t *testing.T) {
	mux := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/zelle_stats", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["configured"])
	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(0), stats["total"])

	req = httptest.NewRequest(http.MethodPost, "/zelle_scan", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RadioControlRoutes(t *testing.T) {
	mux := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/radio_start", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Radio control not available via HTTP", body["message"])

	req = httptest.NewRequest(http.MethodGet, "/radio_start", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Use POST for radio control", body["message"])
}

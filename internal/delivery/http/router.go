package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communityhub/internal/delivery/http/controllers"
	"communityhub/internal/delivery/http/helpers"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Health    *controllers.HealthController
	Content   *controllers.ContentController
	Member    *controllers.MemberController
	Community *controllers.CommunityController
	Email     *controllers.EmailController
	Radio     *controllers.RadioController
	Zelle     *controllers.ZelleController
}

// router registers method-scoped patterns and one OPTIONS preflight handler
// per unique path, so every route answers CORS preflight the same way.
type router struct {
	mux        *http.ServeMux
	preflights map[string]bool
}

func (rt *router) handle(method, path string, h http.HandlerFunc) {
	rt.mux.HandleFunc(method+" "+path, h)
	if !rt.preflights[path] {
		rt.preflights[path] = true
		rt.mux.HandleFunc("OPTIONS "+path, helpers.Preflight)
	}
}

func (rt *router) get(path string, h http.HandlerFunc)  { rt.handle(http.MethodGet, path, h) }
func (rt *router) post(path string, h http.HandlerFunc) { rt.handle(http.MethodPost, path, h) }

// NewRouter mounts the full HTTP surface.
func NewRouter(c Controllers) *http.ServeMux {
	rt := &router{mux: http.NewServeMux(), preflights: map[string]bool{}}

	rt.get("/health", c.Health.Health)

	// Public content.
	rt.get("/get_events", c.Content.UpcomingEvents)
	rt.get("/get_past_events", c.Content.PastEvents)
	rt.get("/get_sponsors", c.Content.SponsorList)
	rt.get("/get_sponsor_tiers", c.Content.SponsorTiers)
	rt.get("/get_gallery", c.Content.GalleryAlbums)
	rt.get("/get_album_photos", c.Content.AlbumPhotos)
	rt.get("/getPublicPhotos", c.Content.PublicPhotos)
	rt.get("/getMemberPhotos", c.Content.MemberPhotos)
	rt.get("/get_documents", c.Content.Documents)
	rt.get("/get_magazines", c.Content.Magazines)
	rt.get("/get_guide", c.Content.Guide)
	rt.get("/get_setup_collections", c.Content.SetupCollections)

	// Members.
	rt.get("/get_members", c.Member.List)
	rt.post("/member_login", c.Member.Login)
	rt.post("/member_signup", c.Member.Signup)

	// Surveys, complaints, contact form.
	rt.get("/get_surveys", c.Community.Surveys)
	rt.get("/get_survey", c.Community.Survey)
	rt.post("/submit_survey", c.Community.SubmitSurvey)
	rt.post("/submit_complaint", c.Community.SubmitComplaint)
	rt.get("/complaint_status", c.Community.ComplaintStatus)
	rt.post("/submit_contact", c.Community.SubmitContact)

	// Email gateway.
	rt.get("/email_status", c.Email.Status)
	rt.get("/email_unread", c.Email.Unread)
	rt.get("/email_inbox", c.Email.Inbox)
	rt.get("/email_message", c.Email.Message)
	rt.get("/email_search", c.Email.SearchInbox)
	rt.get("/contacts", c.Email.Contacts)
	rt.get("/rsvp_check", c.Email.RSVPCheck)
	rt.get("/sent_history", c.Email.SentHistory)
	rt.post("/email_mark_read", c.Email.MarkRead)
	rt.post("/email_delete", c.Email.DeleteMessage)
	rt.post("/send_email", c.Email.SendEmail)
	rt.post("/send_evite", c.Email.SendEvite)
	rt.post("/contact_group_create", c.Email.CreateGroup)
	rt.post("/contact_group_delete", c.Email.DeleteGroup)
	rt.post("/contact_group_add", c.Email.AddContacts)
	rt.post("/contact_group_remove", c.Email.RemoveContacts)

	// Radio.
	rt.get("/get_radio", c.Radio.Stations)
	rt.get("/get_radio_schedule", c.Radio.Schedule)
	rt.get("/get_radio_status", c.Radio.PlayerStatus)
	rt.post("/radio_start", c.Radio.ControlUnavailable)
	rt.post("/radio_next", c.Radio.ControlUnavailable)
	rt.post("/radio_previous", c.Radio.ControlUnavailable)
	rt.get("/radio_start", c.Radio.ControlMethodHint)
	rt.get("/radio_next", c.Radio.ControlMethodHint)
	rt.get("/radio_previous", c.Radio.ControlMethodHint)

	// Zelle reconciliation stubs.
	rt.get("/zelle_stats", c.Zelle.Stats)
	rt.get("/zelle_payments", c.Zelle.Payments)
	rt.get("/zelle_poller", c.Zelle.Poller)
	rt.get("/zelle_members", c.Zelle.Members)
	rt.get("/zelle_history", c.Zelle.History)
	rt.post("/zelle_scan", c.Zelle.Unconfigured)
	rt.post("/zelle_verify", c.Zelle.Unconfigured)
	rt.post("/zelle_reject", c.Zelle.Unconfigured)
	rt.post("/zelle_match", c.Zelle.Unconfigured)
	rt.post("/zelle_seed", c.Zelle.Unconfigured)

	rt.mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return rt.mux
}

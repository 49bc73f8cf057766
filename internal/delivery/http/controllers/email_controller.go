package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

// SendEmailRequest is the request body for POST /send_email. To/CC/BCC are
// comma-separated address lists.
type SendEmailRequest struct {
	To       string `json:"to"`
	CC       string `json:"cc"`
	BCC      string `json:"bcc"`
	ReplyTo  string `json:"reply_to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	BodyHTML string `json:"body_html"`
}

// Validate implements Validator.
func (s SendEmailRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.To) == "" {
		errs = append(errs, "Recipient (to) is required")
	}
	if strings.TrimSpace(s.Subject) == "" {
		errs = append(errs, "Subject is required")
	}
	if s.Body == "" && s.BodyHTML == "" {
		errs = append(errs, "Body is required")
	}
	return errs
}

// SendEviteRequest is the request body for POST /send_evite.
type SendEviteRequest struct {
	Recipients []domain.EviteRecipient `json:"recipients"`
	EventName  string                  `json:"event_name"`
	EventDate  string                  `json:"event_date"`
	EventTime  string                  `json:"event_time"`
	Venue      string                  `json:"venue"`
	Message    string                  `json:"message"`
	Subject    string                  `json:"subject"`
}

// Validate implements Validator.
func (s SendEviteRequest) Validate() []string {
	var errs []string
	if len(s.Recipients) == 0 {
		errs = append(errs, "At least one recipient is required")
	}
	if strings.TrimSpace(s.EventName) == "" {
		errs = append(errs, "Event name is required")
	}
	return errs
}

// MessageIDRequest is the request body for POST /email_mark_read and
// POST /email_delete.
type MessageIDRequest struct {
	ID string `json:"id"`
}

// Validate implements Validator.
func (m MessageIDRequest) Validate() []string {
	if strings.TrimSpace(m.ID) == "" {
		return []string{"Message ID is required"}
	}
	return nil
}

// CreateGroupRequest is the request body for POST /contact_group_create.
type CreateGroupRequest struct {
	GroupName   string `json:"group_name"`
	Description string `json:"description"`
}

// Validate implements Validator.
func (c CreateGroupRequest) Validate() []string {
	if strings.TrimSpace(c.GroupName) == "" {
		return []string{"Group name is required"}
	}
	return nil
}

// GroupNameRequest is the request body for POST /contact_group_delete.
type GroupNameRequest struct {
	GroupName string `json:"group_name"`
}

// Validate implements Validator.
func (g GroupNameRequest) Validate() []string {
	if strings.TrimSpace(g.GroupName) == "" {
		return []string{"Group name is required"}
	}
	return nil
}

// AddContactsRequest is the request body for POST /contact_group_add.
type AddContactsRequest struct {
	GroupName string                `json:"group_name"`
	Contacts  []domain.ContactInput `json:"contacts"`
}

// Validate implements Validator.
func (a AddContactsRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.GroupName) == "" {
		errs = append(errs, "Group name is required")
	}
	if len(a.Contacts) == 0 {
		errs = append(errs, "At least one contact is required")
	}
	return errs
}

// RemoveContactsRequest is the request body for POST /contact_group_remove.
type RemoveContactsRequest struct {
	GroupName string   `json:"group_name"`
	Emails    []string `json:"emails"`
}

// Validate implements Validator.
func (r RemoveContactsRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.GroupName) == "" {
		errs = append(errs, "Group name is required")
	}
	if len(r.Emails) == 0 {
		errs = append(errs, "At least one email is required")
	}
	return errs
}

// EviteResponse is the response body for POST /send_evite. The batch reports
// success even when individual recipients failed.
type EviteResponse struct {
	Success     bool                  `json:"success"`
	Message     string                `json:"message"`
	SentCount   int                   `json:"sent_count"`
	FailedCount int                   `json:"failed_count"`
	Failed      []domain.EviteFailure `json:"failed,omitempty"`
}

// EmailController handles the email gateway routes: status, outbound sends,
// the mirrored inbox, contact groups, RSVP rollups, and the sent history.
type EmailController struct {
	Logger  *slog.Logger
	Service domain.EmailService
}

func NewEmailController(logger *slog.Logger, svc domain.EmailService) *EmailController {
	return &EmailController{Logger: logger, Service: svc}
}

func (c *EmailController) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteError(w, http.StatusInternalServerError, message+": "+err.Error())
}

// Status godoc
// @Summary Email gateway status
// @Description Reports whether an outbound provider credential is configured, without sending anything.
// @Tags email
// @Produce json
// @Success 200 {object} map[string]any "success, configured, provider"
// @Router /email_status [get]
func (c *EmailController) Status(w http.ResponseWriter, r *http.Request) {
	configured := c.Service.Configured(r.Context())
	status := "ready"
	if !configured {
		status = "not_configured"
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success    bool   `json:"success"`
		Configured bool   `json:"configured"`
		Provider   string `json:"provider"`
		Status     string `json:"status"`
	}{true, configured, c.Service.ProviderName(), status})
}

// Unread handles GET /email_unread.
func (c *EmailController) Unread(w http.ResponseWriter, r *http.Request) {
	count, err := c.Service.UnreadCount(r.Context())
	if err != nil {
		c.fail(w, r, err, "Failed to count unread messages")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success     bool `json:"success"`
		UnreadCount int  `json:"unread_count"`
	}{true, count})
}

// Inbox handles GET /email_inbox?folder=&page=&per_page=.
func (c *EmailController) Inbox(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	messages, total, err := c.Service.Inbox(r.Context(), helpers.Query(r, "folder"), p)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch inbox")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success  bool                   `json:"success"`
		Messages []*domain.InboxMessage `json:"messages"`
		Total    int                    `json:"total"`
		Page     int                    `json:"page"`
		PerPage  int                    `json:"per_page"`
	}{true, messages, total, p.Page, p.PerPage})
}

// Message handles GET /email_message?id=.
func (c *EmailController) Message(w http.ResponseWriter, r *http.Request) {
	id := helpers.Query(r, "id")
	if id == "" {
		helpers.WriteError(w, http.StatusBadRequest, "Message ID is required")
		return
	}
	msg, err := c.Service.Message(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Message not found")
			return
		}
		c.fail(w, r, err, "Failed to fetch message")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool                 `json:"success"`
		Message *domain.InboxMessage `json:"message"`
	}{true, msg})
}

// SearchInbox handles GET /email_search?q=. Search never errors: failures and
// blank queries come back as an empty result set.
func (c *EmailController) SearchInbox(w http.ResponseWriter, r *http.Request) {
	messages := c.Service.Search(r.Context(), helpers.Query(r, "q"))
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success  bool                   `json:"success"`
		Messages []*domain.InboxMessage `json:"messages"`
		Count    int                    `json:"count"`
	}{true, messages, len(messages)})
}

// MarkRead handles POST /email_mark_read.
func (c *EmailController) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req MessageIDRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.MarkRead(r.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Message not found")
			return
		}
		c.fail(w, r, err, "Failed to mark message read")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Message marked as read"})
}

// DeleteMessage handles POST /email_delete.
func (c *EmailController) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageIDRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.DeleteMessage(r.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Message not found")
			return
		}
		c.fail(w, r, err, "Failed to delete message")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Message deleted"})
}

// SendEmail godoc
// @Summary Send a direct email
// @Description Sends one email through the configured provider and records it in the sent log. Returns 503 when no provider is configured; a provider rejection surfaces its status and body verbatim.
// @Tags email
// @Accept json
// @Produce json
// @Param body body SendEmailRequest true "Email"
// @Success 200 {object} map[string]any "success, message"
// @Failure 400 {object} helpers.ErrorEnvelope
// @Failure 500 {object} helpers.ErrorEnvelope
// @Failure 503 {object} helpers.ErrorEnvelope
// @Router /send_email [post]
func (c *EmailController) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req SendEmailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.SendDirect(r.Context(), &domain.DirectEmailRequest{
		To:       req.To,
		CC:       req.CC,
		BCC:      req.BCC,
		ReplyTo:  req.ReplyTo,
		Subject:  req.Subject,
		Body:     req.Body,
		BodyHTML: req.BodyHTML,
	})
	if err != nil {
		c.writeSendError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Email sent successfully"})
}

// SendEvite godoc
// @Summary Send a batch evite
// @Description Sends the event invitation to each recipient in order. Per-recipient failures are reported in the response without failing the batch.
// @Tags email
// @Accept json
// @Produce json
// @Param body body SendEviteRequest true "Evite batch"
// @Success 200 {object} EviteResponse
// @Failure 400 {object} helpers.ErrorEnvelope
// @Failure 500 {object} helpers.ErrorEnvelope
// @Failure 503 {object} helpers.ErrorEnvelope
// @Router /send_evite [post]
func (c *EmailController) SendEvite(w http.ResponseWriter, r *http.Request) {
	var req SendEviteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.SendEvite(r.Context(), &domain.EviteRequest{
		Recipients: req.Recipients,
		EventName:  req.EventName,
		EventDate:  req.EventDate,
		EventTime:  req.EventTime,
		Venue:      req.Venue,
		Message:    req.Message,
		Subject:    req.Subject,
	})
	if err != nil {
		c.writeSendError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EviteResponse{
		Success:     true,
		Message:     "Sent " + strconv.Itoa(result.SentCount) + " invitation(s)",
		SentCount:   result.SentCount,
		FailedCount: len(result.Failed),
		Failed:      result.Failed,
	})
}

// Contacts handles GET /contacts: every group with its resolved membership.
func (c *EmailController) Contacts(w http.ResponseWriter, r *http.Request) {
	groups, err := c.Service.Contacts(r.Context())
	if err != nil {
		c.fail(w, r, err, "Failed to fetch contacts")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool                        `json:"success"`
		Groups  []*domain.GroupWithContacts `json:"groups"`
		Total   int                         `json:"total"`
	}{true, groups, len(groups)})
}

// CreateGroup handles POST /contact_group_create.
func (c *EmailController) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	group, err := c.Service.CreateGroup(r.Context(), req.GroupName, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateGroup) {
			helpers.WriteError(w, http.StatusBadRequest, "Group already exists")
			return
		}
		c.fail(w, r, err, "Failed to create group")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Group   *domain.ContactGroup `json:"group"`
	}{true, "Group created", group})
}

// DeleteGroup handles POST /contact_group_delete. Deleting a group also
// removes its contacts.
func (c *EmailController) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	var req GroupNameRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.DeleteGroup(r.Context(), req.GroupName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Group not found")
			return
		}
		c.fail(w, r, err, "Failed to delete group")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Group and its contacts deleted"})
}

// AddContacts handles POST /contact_group_add. Duplicate (group, email) pairs
// are skipped; addedCount reports how many contacts were actually inserted.
func (c *EmailController) AddContacts(w http.ResponseWriter, r *http.Request) {
	var req AddContactsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	added, err := c.Service.AddContacts(r.Context(), req.GroupName, req.Contacts)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Group not found")
			return
		}
		c.fail(w, r, err, "Failed to add contacts")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		AddedCount int    `json:"added_count"`
	}{true, "Added " + strconv.Itoa(added) + " contact(s)", added})
}

// RemoveContacts handles POST /contact_group_remove.
func (c *EmailController) RemoveContacts(w http.ResponseWriter, r *http.Request) {
	var req RemoveContactsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	removed, err := c.Service.RemoveContacts(r.Context(), req.GroupName, req.Emails)
	if err != nil {
		c.fail(w, r, err, "Failed to remove contacts")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		RemovedCount int    `json:"removed_count"`
	}{true, "Removed " + strconv.Itoa(removed) + " contact(s)", removed})
}

// RSVPCheck handles GET /rsvp_check?event_name=&days_back=. days_back
// defaults to 30.
func (c *EmailController) RSVPCheck(w http.ResponseWriter, r *http.Request) {
	eventName := helpers.Query(r, "event_name")
	if eventName == "" {
		helpers.WriteError(w, http.StatusBadRequest, "event_name is required")
		return
	}
	daysBack := 0
	if s := helpers.Query(r, "days_back"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			daysBack = v
		}
	}
	summary, err := c.Service.RSVPCheck(r.Context(), eventName, daysBack)
	if err != nil {
		c.fail(w, r, err, "Failed to check RSVPs")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success   bool                `json:"success"`
		EventName string              `json:"event_name"`
		Summary   *domain.RSVPSummary `json:"summary"`
	}{true, eventName, summary})
}

// SentHistory handles GET /sent_history?page=&per_page=.
func (c *EmailController) SentHistory(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	emails, total, err := c.Service.SentHistory(r.Context(), p)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch sent history")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool                `json:"success"`
		Emails  []*domain.SentEmail `json:"emails"`
		Total   int                 `json:"total"`
		Page    int                 `json:"page"`
		PerPage int                 `json:"per_page"`
	}{true, emails, total, p.Page, p.PerPage})
}

// writeSendError maps send failures: missing provider credentials are a 503,
// a provider rejection passes its status text through, anything else is a 500.
func (c *EmailController) writeSendError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrMailerNotConfigured) {
		helpers.WriteError(w, http.StatusServiceUnavailable, "Email service not configured")
		return
	}
	var sendErr *domain.SendError
	if errors.As(err, &sendErr) {
		c.Logger.ErrorContext(r.Context(), "provider rejected send", "path", r.URL.Path, "status", sendErr.StatusCode, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to send email: "+sendErr.Error())
		return
	}
	c.fail(w, r, err, "Failed to send email")
}

package domain

import (
	"context"
	"time"
)

// Sent email types recorded in the outbound log.
const (
	EmailTypeDirect = "direct"
	EmailTypeEvite  = "evite"
)

// RSVP statuses tracked on evite log entries. Records with no status are
// counted as pending.
const (
	RSVPYes     = "yes"
	RSVPNo      = "no"
	RSVPMaybe   = "maybe"
	RSVPPending = "pending"
)

// DefaultFolder is the inbox folder used when a listing request names none.
const DefaultFolder = "INBOX"

// OutboundEmail is one provider payload: a single recipient block plus
// subject and bodies. Address lists are already split and trimmed.
type OutboundEmail struct {
	To       []string
	CC       []string
	BCC      []string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer sends a single outbound email through the delivery provider
// (infrastructure port). Configured reports whether a usable credential is
// available; when it returns false, Send must not be attempted.
type Mailer interface {
	Send(ctx context.Context, msg *OutboundEmail) error
	Configured(ctx context.Context) bool
	Provider() string
}

// EmailTemplateRenderer renders email content from a named template set.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SentEmail is one entry in the append-only outbound mail log.
type SentEmail struct {
	ID         string    `json:"id"`
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sentAt"`
	Type       string    `json:"type"`
	EventName  string    `json:"eventName,omitempty"`
	RSVPStatus string    `json:"rsvpStatus,omitempty"`
}

// InboxMessage mirrors one externally received email. Read and Folder are the
// only fields the gateway mutates.
type InboxMessage struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	BodyHTML   string    `json:"bodyHtml,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
	Read       bool      `json:"read"`
	Folder     string    `json:"folder"`
}

// ContactGroup is a named mailing group.
type ContactGroup struct {
	ID          string    `json:"id"`
	GroupName   string    `json:"groupName"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GroupContact is one member of a contact group, keyed by group name rather
// than group id. (groupName, email) pairs are unique.
type GroupContact struct {
	ID        string    `json:"id"`
	GroupName string    `json:"groupName"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	AddedAt   time.Time `json:"addedAt"`
}

// GroupWithContacts is a group plus its resolved membership, as returned by
// the contacts listing.
type GroupWithContacts struct {
	ContactGroup
	Contacts []*GroupContact `json:"contacts"`
}

// ContactInput is one contact to add to a group.
type ContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DirectEmailRequest carries a direct send. To/CC/BCC are raw comma-separated
// address lists as received from the client.
type DirectEmailRequest struct {
	To       string
	CC       string
	BCC      string
	ReplyTo  string
	Subject  string
	Body     string
	BodyHTML string
}

// EviteRecipient is one invitee in a batch evite send.
type EviteRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// EviteRequest carries one batch evite send for a named event.
type EviteRequest struct {
	Recipients []EviteRecipient
	EventName  string
	EventDate  string
	EventTime  string
	Venue      string
	Message    string
	Subject    string
}

// EviteFailure records one recipient the batch could not reach.
type EviteFailure struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// EviteResult is the accumulated outcome of a batch evite send. A batch
// succeeds as a whole even when individual recipients fail.
type EviteResult struct {
	SentCount int
	Failed    []EviteFailure
}

// RSVPSummary is the read-only rollup derived from evite log entries.
// Total always equals Yes + No + Maybe + Pending.
type RSVPSummary struct {
	Total   int `json:"total"`
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Maybe   int `json:"maybe"`
	Pending int `json:"pending"`
}

// SentEmailRepository is the append-mostly outbound log store.
type SentEmailRepository interface {
	Create(ctx context.Context, e *SentEmail) error
	List(ctx context.Context, p PaginationParams) ([]*SentEmail, int, error)
	ListEvitesByEvent(ctx context.Context, eventName string, since time.Time) ([]*SentEmail, error)
}

// InboxRepository stores the mirrored inbound mailbox.
type InboxRepository interface {
	List(ctx context.Context, folder string, p PaginationParams) ([]*InboxMessage, int, error)
	GetByID(ctx context.Context, id string) (*InboxMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, limit int) ([]*InboxMessage, error)
	UnreadCount(ctx context.Context, folder string) (int, error)
}

// GroupRepository stores contact groups and their members.
type GroupRepository interface {
	CreateGroup(ctx context.Context, g *ContactGroup) error
	GetGroup(ctx context.Context, name string) (*ContactGroup, error)
	DeleteGroup(ctx context.Context, name string) error
	ListGroups(ctx context.Context) ([]*ContactGroup, error)
	ListContacts(ctx context.Context, groupName string) ([]*GroupContact, error)
	AddContact(ctx context.Context, c *GroupContact) (bool, error)
	RemoveContacts(ctx context.Context, groupName string, emails []string) (int, error)
}

// EmailService is the email gateway: outbound sends, the sent log, the
// mirrored inbox, contact groups, and the RSVP rollup.
type EmailService interface {
	Configured(ctx context.Context) bool
	ProviderName() string
	SendDirect(ctx context.Context, req *DirectEmailRequest) error
	SendEvite(ctx context.Context, req *EviteRequest) (*EviteResult, error)
	Inbox(ctx context.Context, folder string, p PaginationParams) ([]*InboxMessage, int, error)
	Message(ctx context.Context, id string) (*InboxMessage, error)
	MarkRead(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) error
	Search(ctx context.Context, q string) []*InboxMessage
	UnreadCount(ctx context.Context) (int, error)
	Contacts(ctx context.Context) ([]*GroupWithContacts, error)
	CreateGroup(ctx context.Context, name, description string) (*ContactGroup, error)
	DeleteGroup(ctx context.Context, name string) error
	AddContacts(ctx context.Context, groupName string, contacts []ContactInput) (int, error)
	RemoveContacts(ctx context.Context, groupName string, emails []string) (int, error)
	RSVPCheck(ctx context.Context, eventName string, daysBack int) (*RSVPSummary, error)
	SentHistory(ctx context.Context, p PaginationParams) ([]*SentEmail, int, error)
}

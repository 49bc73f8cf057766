package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityhub/internal/domain"
)

const searchResultLimit = 50

type emailService struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	sentRepo  domain.SentEmailRepository
	inboxRepo domain.InboxRepository
	groupRepo domain.GroupRepository
	logger    *slog.Logger
}

// NewEmailService wires the email gateway: provider sends, the sent log, the
// mirrored inbox, contact groups, and the RSVP rollup.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, sentRepo domain.SentEmailRepository, inboxRepo domain.InboxRepository, groupRepo domain.GroupRepository, logger *slog.Logger) domain.EmailService {
	return &emailService{
		mailer:    mailer,
		renderer:  renderer,
		sentRepo:  sentRepo,
		inboxRepo: inboxRepo,
		groupRepo: groupRepo,
		logger:    logger,
	}
}

func (s *emailService) Configured(ctx context.Context) bool {
	return s.mailer.Configured(ctx)
}

func (s *emailService) ProviderName() string {
	return s.mailer.Provider()
}

// SendDirect sends one email to the comma-separated recipients in req. The
// send only counts when the provider accepts it; the sent-log write afterward
// is best effort and never fails the call.
func (s *emailService) SendDirect(ctx context.Context, req *domain.DirectEmailRequest) error {
	if !s.mailer.Configured(ctx) {
		return domain.ErrMailerNotConfigured
	}

	msg := &domain.OutboundEmail{
		To:       splitAddresses(req.To),
		CC:       splitAddresses(req.CC),
		BCC:      splitAddresses(req.BCC),
		ReplyTo:  strings.TrimSpace(req.ReplyTo),
		Subject:  req.Subject,
		TextBody: req.Body,
		HTMLBody: req.BodyHTML,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return err
	}

	s.logSent(ctx, &domain.SentEmail{
		To:      req.To,
		Subject: req.Subject,
		Body:    firstNonEmpty(req.Body, req.BodyHTML),
		SentAt:  time.Now(),
		Type:    domain.EmailTypeDirect,
	})
	return nil
}

// eviteTemplateData feeds the embedded evite templates.
type eviteTemplateData struct {
	Name      string
	EventName string
	EventDate string
	EventTime string
	Venue     string
	Message   string
}

// SendEvite sends the invitation to each recipient in order, one provider
// call at a time, so per-recipient accounting stays deterministic and the
// provider is not hit with a burst. Recipients with an empty email are
// skipped silently; other failures are collected without aborting the batch.
func (s *emailService) SendEvite(ctx context.Context, req *domain.EviteRequest) (*domain.EviteResult, error) {
	if !s.mailer.Configured(ctx) {
		return nil, domain.ErrMailerNotConfigured
	}

	result := &domain.EviteResult{}
	for _, recipient := range req.Recipients {
		addr := strings.TrimSpace(recipient.Email)
		if addr == "" {
			continue
		}

		subject, htmlBody, textBody, err := s.renderer.Render("evite", eviteTemplateData{
			Name:      recipient.Name,
			EventName: req.EventName,
			EventDate: req.EventDate,
			EventTime: req.EventTime,
			Venue:     req.Venue,
			Message:   req.Message,
		})
		if err != nil {
			result.Failed = append(result.Failed, domain.EviteFailure{Email: addr, Error: err.Error()})
			continue
		}
		if req.Subject != "" {
			subject = req.Subject
		}

		msg := &domain.OutboundEmail{
			To:       []string{addr},
			Subject:  subject,
			TextBody: textBody,
			HTMLBody: htmlBody,
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			result.Failed = append(result.Failed, domain.EviteFailure{Email: addr, Error: err.Error()})
			continue
		}

		result.SentCount++
		s.logSent(ctx, &domain.SentEmail{
			To:         addr,
			Subject:    subject,
			Body:       textBody,
			SentAt:     time.Now(),
			Type:       domain.EmailTypeEvite,
			EventName:  req.EventName,
			RSVPStatus: domain.RSVPPending,
		})
	}
	return result, nil
}

// logSent appends to the outbound log. A logging fault must never turn a
// successful send into a reported failure, so errors are only logged.
func (s *emailService) logSent(ctx context.Context, entry *domain.SentEmail) {
	if err := s.sentRepo.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record sent email", "to", entry.To, "type", entry.Type, "err", err)
	}
}

func (s *emailService) Inbox(ctx context.Context, folder string, p domain.PaginationParams) ([]*domain.InboxMessage, int, error) {
	if folder == "" {
		folder = domain.DefaultFolder
	}
	messages, total, err := s.inboxRepo.List(ctx, folder, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inbox: %w", err)
	}
	return messages, total, nil
}

func (s *emailService) Message(ctx context.Context, id string) (*domain.InboxMessage, error) {
	return s.inboxRepo.GetByID(ctx, id)
}

func (s *emailService) MarkRead(ctx context.Context, id string) error {
	return s.inboxRepo.MarkRead(ctx, id)
}

func (s *emailService) DeleteMessage(ctx context.Context, id string) error {
	return s.inboxRepo.Delete(ctx, id)
}

// Search degrades to an empty result set on any failure; the UI must never
// see a raw error for search.
func (s *emailService) Search(ctx context.Context, q string) []*domain.InboxMessage {
	q = strings.TrimSpace(q)
	if q == "" {
		return []*domain.InboxMessage{}
	}
	messages, err := s.inboxRepo.Search(ctx, q, searchResultLimit)
	if err != nil {
		s.logger.Warn("inbox search failed", "query", q, "err", err)
		return []*domain.InboxMessage{}
	}
	return messages
}

func (s *emailService) UnreadCount(ctx context.Context) (int, error) {
	return s.inboxRepo.UnreadCount(ctx, domain.DefaultFolder)
}

func (s *emailService) Contacts(ctx context.Context) ([]*domain.GroupWithContacts, error) {
	groups, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	out := make([]*domain.GroupWithContacts, 0, len(groups))
	for _, g := range groups {
		contacts, err := s.groupRepo.ListContacts(ctx, g.GroupName)
		if err != nil {
			return nil, fmt.Errorf("failed to list contacts for %q: %w", g.GroupName, err)
		}
		out = append(out, &domain.GroupWithContacts{ContactGroup: *g, Contacts: contacts})
	}
	return out, nil
}

func (s *emailService) CreateGroup(ctx context.Context, name, description string) (*domain.ContactGroup, error) {
	group := &domain.ContactGroup{
		GroupName:   strings.TrimSpace(name),
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *emailService) DeleteGroup(ctx context.Context, name string) error {
	return s.groupRepo.DeleteGroup(ctx, strings.TrimSpace(name))
}

// AddContacts inserts each contact, skipping entries without an email and
// pairs the group already holds. The returned count is how many rows were
// actually added.
func (s *emailService) AddContacts(ctx context.Context, groupName string, contacts []domain.ContactInput) (int, error) {
	groupName = strings.TrimSpace(groupName)
	if _, err := s.groupRepo.GetGroup(ctx, groupName); err != nil {
		return 0, err
	}

	added := 0
	for _, c := range contacts {
		email := strings.TrimSpace(strings.ToLower(c.Email))
		if email == "" {
			continue
		}
		inserted, err := s.groupRepo.AddContact(ctx, &domain.GroupContact{
			GroupName: groupName,
			Name:      strings.TrimSpace(c.Name),
			Email:     email,
			AddedAt:   time.Now(),
		})
		if err != nil {
			return added, fmt.Errorf("failed to add contact %q: %w", email, err)
		}
		if inserted {
			added++
		}
	}
	return added, nil
}

func (s *emailService) RemoveContacts(ctx context.Context, groupName string, emails []string) (int, error) {
	cleaned := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(strings.ToLower(e))
		if e != "" {
			cleaned = append(cleaned, e)
		}
	}
	if len(cleaned) == 0 {
		return 0, nil
	}
	return s.groupRepo.RemoveContacts(ctx, strings.TrimSpace(groupName), cleaned)
}

// RSVPCheck rolls up the evite log for one event over the lookback window.
// Records with no recorded status count as pending, so total always equals
// yes+no+maybe+pending.
func (s *emailService) RSVPCheck(ctx context.Context, eventName string, daysBack int) (*domain.RSVPSummary, error) {
	if daysBack <= 0 {
		daysBack = 30
	}
	since := time.Now().AddDate(0, 0, -daysBack)
	entries, err := s.sentRepo.ListEvitesByEvent(ctx, eventName, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load evites: %w", err)
	}

	summary := &domain.RSVPSummary{Total: len(entries)}
	for _, e := range entries {
		switch e.RSVPStatus {
		case domain.RSVPYes:
			summary.Yes++
		case domain.RSVPNo:
			summary.No++
		case domain.RSVPMaybe:
			summary.Maybe++
		default:
			summary.Pending++
		}
	}
	return summary, nil
}

func (s *emailService) SentHistory(ctx context.Context, p domain.PaginationParams) ([]*domain.SentEmail, int, error) {
	emails, total, err := s.sentRepo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sent history: %w", err)
	}
	return emails, total, nil
}

// splitAddresses turns a comma-separated address list into trimmed
// individual addresses, dropping empties.
func splitAddresses(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

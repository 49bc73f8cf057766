package domain

import (
	"context"
	"time"
)

// Survey is a member survey. Only active surveys are listed publicly.
type Survey struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Questions string    `json:"questions,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SurveyResponse is a submitted answer set. Responses are an opaque map from
// the gateway's point of view.
type SurveyResponse struct {
	ID          string         `json:"id"`
	SurveyID    string         `json:"surveyId"`
	Responses   map[string]any `json:"responses"`
	MemberID    string         `json:"memberId"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

// Complaint is a resident complaint with a generated tracking id.
type Complaint struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Email       string    `json:"email,omitempty"`
	Name        string    `json:"name"`
	TrackingID  string    `json:"trackingId"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	UpdatedAt   time.Time `json:"lastUpdated"`
}

// ComplaintInput carries the fields accepted by complaint submission.
type ComplaintInput struct {
	Description string
	Category    string
	Email       string
	Name        string
}

// ContactSubmission is a general contact-form message.
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// SurveyRepository defines survey and response persistence.
type SurveyRepository interface {
	ListActive(ctx context.Context, limit int) ([]*Survey, int, error)
	GetByID(ctx context.Context, id string) (*Survey, error)
	CreateResponse(ctx context.Context, r *SurveyResponse) error
}

// ComplaintRepository defines complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, c *Complaint) error
	GetByTrackingID(ctx context.Context, trackingID string) (*Complaint, error)
}

// ContactRepository stores contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, s *ContactSubmission) error
}

// CommunityService groups the survey, complaint, and contact-form operations.
type CommunityService interface {
	ListSurveys(ctx context.Context) ([]*Survey, int, error)
	GetSurvey(ctx context.Context, id string) (*Survey, error)
	SubmitSurvey(ctx context.Context, surveyID, memberID string, responses map[string]any) (string, error)
	SubmitComplaint(ctx context.Context, in *ComplaintInput) (*Complaint, error)
	ComplaintStatus(ctx context.Context, trackingID string) (*Complaint, error)
	SubmitContact(ctx context.Context, s *ContactSubmission) (string, error)
}

package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

// SubmitSurveyRequest is the request body for POST /submit_survey.
type SubmitSurveyRequest struct {
	SurveyID  string         `json:"surveyId"`
	Responses map[string]any `json:"responses"`
	MemberID  string         `json:"memberId"`
}

// Validate implements Validator.
func (s SubmitSurveyRequest) Validate() []string {
	if strings.TrimSpace(s.SurveyID) == "" {
		return []string{"Survey ID and responses are required"}
	}
	return nil
}

// SubmitComplaintRequest is the request body for POST /submit_complaint.
type SubmitComplaintRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Email       string `json:"email"`
	Name        string `json:"name"`
}

// Validate implements Validator.
func (s SubmitComplaintRequest) Validate() []string {
	if strings.TrimSpace(s.Description) == "" {
		return []string{"Description is required"}
	}
	return nil
}

// SubmitContactRequest is the request body for POST /submit_contact.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (s SubmitContactRequest) Validate() []string {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Message) == "" {
		return []string{"Name and message are required"}
	}
	return nil
}

// CommunityController handles surveys, complaints, and the contact form.
type CommunityController struct {
	Logger  *slog.Logger
	Service domain.CommunityService
}

func NewCommunityController(logger *slog.Logger, svc domain.CommunityService) *CommunityController {
	return &CommunityController{Logger: logger, Service: svc}
}

func (c *CommunityController) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteError(w, http.StatusInternalServerError, message+": "+err.Error())
}

// Surveys handles GET /get_surveys (active surveys, newest first).
func (c *CommunityController) Surveys(w http.ResponseWriter, r *http.Request) {
	surveys, total, err := c.Service.ListSurveys(r.Context())
	if err != nil {
		c.fail(w, r, err, "Failed to fetch surveys")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool             `json:"success"`
		Surveys []*domain.Survey `json:"surveys"`
		Total   int              `json:"total"`
	}{true, surveys, total})
}

// Survey handles GET /get_survey?id=.
func (c *CommunityController) Survey(w http.ResponseWriter, r *http.Request) {
	id := helpers.Query(r, "id")
	if id == "" {
		helpers.WriteError(w, http.StatusBadRequest, "Survey ID is required")
		return
	}
	survey, err := c.Service.GetSurvey(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Survey not found")
			return
		}
		c.fail(w, r, err, "Failed to fetch survey")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool           `json:"success"`
		Survey  *domain.Survey `json:"survey"`
	}{true, survey})
}

// SubmitSurvey handles POST /submit_survey.
func (c *CommunityController) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	var req SubmitSurveyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	responseID, err := c.Service.SubmitSurvey(r.Context(), req.SurveyID, req.MemberID, req.Responses)
	if err != nil {
		c.fail(w, r, err, "Failed to submit survey")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		ResponseID string `json:"responseId"`
	}{true, "Survey response submitted", responseID})
}

// SubmitComplaint godoc
// @Summary Submit a complaint
// @Description Records a complaint and returns its generated tracking id (CMP-<base36 timestamp>).
// @Tags community
// @Accept json
// @Produce json
// @Param body body SubmitComplaintRequest true "Complaint"
// @Success 200 {object} map[string]any "success, message, trackingId, id"
// @Failure 400 {object} helpers.ErrorEnvelope
// @Failure 500 {object} helpers.ErrorEnvelope
// @Router /submit_complaint [post]
func (c *CommunityController) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	var req SubmitComplaintRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	complaint, err := c.Service.SubmitComplaint(r.Context(), &domain.ComplaintInput{
		Description: req.Description,
		Category:    req.Category,
		Email:       req.Email,
		Name:        req.Name,
	})
	if err != nil {
		c.fail(w, r, err, "Failed to submit complaint")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		TrackingID string `json:"trackingId"`
		ID         string `json:"id"`
	}{true, "Complaint submitted successfully", complaint.TrackingID, complaint.ID})
}

// ComplaintStatus handles GET /complaint_status?trackingId=.
func (c *CommunityController) ComplaintStatus(w http.ResponseWriter, r *http.Request) {
	trackingID := helpers.Query(r, "trackingId")
	if trackingID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "Tracking ID is required")
		return
	}
	complaint, err := c.Service.ComplaintStatus(r.Context(), trackingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Complaint not found")
			return
		}
		c.fail(w, r, err, "Failed to check complaint status")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success     bool   `json:"success"`
		Status      string `json:"status"`
		TrackingID  string `json:"trackingId"`
		SubmittedAt string `json:"submittedAt"`
		LastUpdated string `json:"lastUpdated"`
	}{true, complaint.Status, complaint.TrackingID,
		complaint.SubmittedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		complaint.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")})
}

// SubmitContact handles POST /submit_contact.
func (c *CommunityController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.SubmitContact(r.Context(), &domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.fail(w, r, err, "Failed to submit contact form")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		ID      string `json:"id"`
	}{true, "Thank you for your message! We will get back to you soon.", id})
}

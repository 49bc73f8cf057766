package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"communityhub/internal/domain"
)

const surveyListLimit = 20

type communityService struct {
	surveyRepo    domain.SurveyRepository
	complaintRepo domain.ComplaintRepository
	contactRepo   domain.ContactRepository
}

// NewCommunityService creates the survey/complaint/contact-form service.
func NewCommunityService(surveyRepo domain.SurveyRepository, complaintRepo domain.ComplaintRepository, contactRepo domain.ContactRepository) domain.CommunityService {
	return &communityService{
		surveyRepo:    surveyRepo,
		complaintRepo: complaintRepo,
		contactRepo:   contactRepo,
	}
}

func (s *communityService) ListSurveys(ctx context.Context) ([]*domain.Survey, int, error) {
	surveys, total, err := s.surveyRepo.ListActive(ctx, surveyListLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list surveys: %w", err)
	}
	return surveys, total, nil
}

func (s *communityService) GetSurvey(ctx context.Context, id string) (*domain.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}
	return survey, nil
}

func (s *communityService) SubmitSurvey(ctx context.Context, surveyID, memberID string, responses map[string]any) (string, error) {
	if responses == nil {
		responses = map[string]any{}
	}
	if memberID == "" {
		memberID = "anonymous"
	}
	resp := &domain.SurveyResponse{
		SurveyID:    surveyID,
		Responses:   responses,
		MemberID:    memberID,
		SubmittedAt: time.Now(),
	}
	if err := s.surveyRepo.CreateResponse(ctx, resp); err != nil {
		return "", fmt.Errorf("failed to submit survey: %w", err)
	}
	return resp.ID, nil
}

func (s *communityService) SubmitComplaint(ctx context.Context, in *domain.ComplaintInput) (*domain.Complaint, error) {
	category := in.Category
	if category == "" {
		category = "general"
	}
	name := in.Name
	if name == "" {
		name = "Anonymous"
	}
	now := time.Now()
	complaint := &domain.Complaint{
		Description: in.Description,
		Category:    category,
		Email:       strings.TrimSpace(in.Email),
		Name:        name,
		TrackingID:  newTrackingID(now),
		Status:      "submitted",
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to submit complaint: %w", err)
	}
	return complaint, nil
}

func (s *communityService) ComplaintStatus(ctx context.Context, trackingID string) (*domain.Complaint, error) {
	complaint, err := s.complaintRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to check complaint status: %w", err)
	}
	return complaint, nil
}

func (s *communityService) SubmitContact(ctx context.Context, submission *domain.ContactSubmission) (string, error) {
	if submission.Subject == "" {
		submission.Subject = "Contact Form"
	}
	submission.Status = "new"
	submission.SubmittedAt = time.Now()
	if err := s.contactRepo.Create(ctx, submission); err != nil {
		return "", fmt.Errorf("failed to submit contact form: %w", err)
	}
	return submission.ID, nil
}

// newTrackingID derives a complaint tracking id from wall-clock milliseconds,
// base-36 encoded: CMP-<uppercase base36 timestamp>.
func newTrackingID(now time.Time) string {
	return "CMP-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
}

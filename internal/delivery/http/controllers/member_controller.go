package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginRequest is the request body for POST /member_login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	if strings.TrimSpace(l.Email) == "" || l.Password == "" {
		return []string{"Email and password are required"}
	}
	return nil
}

// SignupRequest is the request body for POST /member_signup. Only email is
// required.
type SignupRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// Validate implements Validator.
func (s SignupRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "Email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// MemberPayload is the member projection returned by login and signup.
// It never carries password material.
type MemberPayload struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	MemberType string `json:"memberType"`
	IsAdmin    bool   `json:"isAdmin"`
}

// LoginResponse is the response body for POST /member_login.
type LoginResponse struct {
	Success bool          `json:"success"`
	Member  MemberPayload `json:"member"`
	Token   string        `json:"token"`
}

// SignupResponse is the response body for POST /member_signup.
type SignupResponse struct {
	Success bool          `json:"success"`
	Member  MemberPayload `json:"member"`
	Message string        `json:"message"`
}

// MemberController handles member listing, signup, and login.
type MemberController struct {
	Logger  *slog.Logger
	Service domain.MemberService
}

func NewMemberController(logger *slog.Logger, svc domain.MemberService) *MemberController {
	return &MemberController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List members
// @Description Returns the safe public member projection (no email, phone, or credentials).
// @Tags members
// @Produce json
// @Success 200 {object} map[string]any "success, members, total"
// @Failure 500 {object} helpers.ErrorEnvelope
// @Router /get_members [get]
func (c *MemberController) List(w http.ResponseWriter, r *http.Request) {
	members, total, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch members: "+err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success bool                    `json:"success"`
		Members []*domain.MemberSummary `json:"members"`
		Total   int                     `json:"total"`
	}{true, members, total})
}

// Login godoc
// @Summary Member login
// @Description Authenticate with email and password. Unknown email and wrong password return the same 401.
// @Tags members
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} helpers.ErrorEnvelope
// @Failure 401 {object} helpers.ErrorEnvelope
// @Failure 500 {object} helpers.ErrorEnvelope
// @Router /member_login [post]
func (c *MemberController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	member, token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Login failed: "+err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Member:  memberPayload(member),
		Token:   token,
	})
}

// Signup godoc
// @Summary Member signup
// @Description Register a new member. Email must be unique; password, when supplied, is stored as a salted hash.
// @Tags members
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Signup data"
// @Success 200 {object} SignupResponse
// @Failure 400 {object} helpers.ErrorEnvelope
// @Failure 500 {object} helpers.ErrorEnvelope
// @Router /member_signup [post]
func (c *MemberController) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	member, err := c.Service.Signup(r.Context(), &domain.SignupInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		if strings.Contains(err.Error(), "invalid email") {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Signup failed: "+err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SignupResponse{
		Success: true,
		Member:  memberPayload(member),
		Message: "Registration successful",
	})
}

func memberPayload(m *domain.Member) MemberPayload {
	return MemberPayload{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		MemberType: m.MemberType,
		IsAdmin:    m.IsAdmin,
	}
}

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityhub/internal/domain"
)

// fakeMemberService implements domain.MemberService for handler tests.
type fakeMemberService struct {
	signupMember *domain.Member
	signupErr    error
	loginMember  *domain.Member
	loginToken   string
	loginErr     error
	lastSignup   *domain.SignupInput
}

func (f *fakeMemberService) Signup(ctx context.Context, in *domain.SignupInput) (*domain.Member, error) {
	f.lastSignup = in
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return f.signupMember, nil
}

func (f *fakeMemberService) Login(ctx context.Context, email, password string) (*domain.Member, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.loginMember, f.loginToken, nil
}

func (f *fakeMemberService) List(ctx context.Context) ([]*domain.MemberSummary, int, error) {
	return []*domain.MemberSummary{{ID: "mem-1", Name: "Alice Ng"}}, 1, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestMemberController_Login(t *testing.T) {
	member := &domain.Member{ID: "mem-1", Name: "Alice Ng", Email: "alice@example.com", MemberType: "standard"}

	tests := []struct {
		name       string
		body       string
		svc        *fakeMemberService
		wantStatus int
		wantError  string
	}{
		{
			name:       "success returns member and token",
			body:       `{"email":"alice@example.com","password":"s3cret"}`,
			svc:        &fakeMemberService{loginMember: member, loginToken: "jwt-token"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad credentials are 401",
			body:       `{"email":"alice@example.com","password":"wrong"}`,
			svc:        &fakeMemberService{loginErr: domain.ErrInvalidCredentials},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid email or password",
		},
		{
			name:       "missing fields are 400",
			body:       `{"email":"alice@example.com"}`,
			svc:        &fakeMemberService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email and password are required",
		},
		{
			name:       "malformed body validates as empty",
			body:       `{not json`,
			svc:        &fakeMemberService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewMemberController(discardLogger(), tt.svc)
			rec := postJSON(t, c.Login, "/member_login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			body := decodeBody(t, rec)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "jwt-token", body["token"])
				memberBody, ok := body["member"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "mem-1", memberBody["id"])
				assert.NotContains(t, memberBody, "passwordHash")
			} else {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestMemberController_Signup(t *testing.T) {
	member := &domain.Member{ID: "mem-2", Name: "Bob Tran", Email: "bob@example.com", MemberType: "standard"}

	tests := []struct {
		name       string
		body       string
		svc        *fakeMemberService
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			body:       `{"email":"bob@example.com","firstName":"Bob","lastName":"Tran","password":"pw"}`,
			svc:        &fakeMemberService{signupMember: member},
			wantStatus: http.StatusOK,
		},
		{
			name:       "duplicate email is 400",
			body:       `{"email":"bob@example.com"}`,
			svc:        &fakeMemberService{signupErr: domain.ErrDuplicateEmail},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email already registered",
		},
		{
			name:       "missing email is 400",
			body:       `{}`,
			svc:        &fakeMemberService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email is required",
		},
		{
			name:       "invalid email is 400",
			body:       `{"email":"nope"}`,
			svc:        &fakeMemberService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewMemberController(discardLogger(), tt.svc)
			rec := postJSON(t, c.Signup, "/member_signup", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "Registration successful", body["message"])
			} else {
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestMemberController_List_SafeProjection(t *testing.T) {
	c := NewMemberController(discardLogger(), &fakeMemberService{})
	req := httptest.NewRequest(http.MethodGet, "/get_members", nil)
	rec := httptest.NewRecorder()
	c.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
	members, ok := body["members"].([]any)
	require.True(t, ok)
	first, ok := members[0].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, first, "email")
	assert.NotContains(t, first, "phone")
}

package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"communityhub/internal/domain"
)

const (
	defaultMemberType = "standard"
	memberListLimit   = 200
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type memberService struct {
	memberRepo  domain.MemberRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewMemberService creates a MemberService with the given repository and auth ports.
func NewMemberService(memberRepo domain.MemberRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.MemberService {
	return &memberService{
		memberRepo:  memberRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *memberService) Signup(ctx context.Context, in *domain.SignupInput) (*domain.Member, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("invalid email format")
	}

	member := &domain.Member{
		Email:      email,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Phone:      strings.TrimSpace(in.Phone),
		MemberType: defaultMemberType,
		Status:     "active",
		JoinDate:   time.Now(),
	}
	member.Name = strings.TrimSpace(member.FirstName + " " + member.LastName)

	// Password is optional at signup; accounts created without one can only
	// log in after a password is set through the member portal.
	if in.Password != "" {
		salt, err := s.hasher.GenerateSalt()
		if err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}
		hash, err := s.hasher.Hash(salt, in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		member.Salt = salt
		member.PasswordHash = hash
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

func (s *memberService) Login(ctx context.Context, email, password string) (*domain.Member, string, error) {
	member, err := s.memberRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get member: %w", err)
	}
	if member.PasswordHash == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(member.PasswordHash, member.Salt, password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(member.ID, member.Email, member.IsAdmin, s.tokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return member, token, nil
}

func (s *memberService) List(ctx context.Context) ([]*domain.MemberSummary, int, error) {
	members, total, err := s.memberRepo.List(ctx, memberListLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	return members, total, nil
}

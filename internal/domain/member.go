package domain

import (
	"context"
	"time"
)

// Member is a registered community member. Password material is never
// serialized; login responses and member listings expose projections only.
type Member struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	MemberType   string    `json:"memberType"`
	Status       string    `json:"status"`
	IsAdmin      bool      `json:"isAdmin"`
	JoinDate     time.Time `json:"joinDate"`
}

// MemberSummary is the safe public projection returned by the member listing.
// It deliberately omits email, phone, and all credential material.
type MemberSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	MemberType string    `json:"memberType"`
	Status     string    `json:"status"`
	JoinDate   time.Time `json:"joinDate"`
}

// SignupInput carries the fields accepted by member signup. Only Email is
// required; Password, when present, is hashed before storage.
type SignupInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Phone     string
}

// PasswordHasher hashes and verifies member passwords (infrastructure port).
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (string, error)
	Compare(hash, salt, password string) error
}

// TokenIssuer signs authentication tokens for logged-in members.
type TokenIssuer interface {
	Issue(memberID, email string, isAdmin bool, expiry time.Duration) (string, error)
}

// MemberRepository defines member persistence.
type MemberRepository interface {
	Create(ctx context.Context, m *Member) error
	GetByEmail(ctx context.Context, email string) (*Member, error)
	List(ctx context.Context, limit int) ([]*MemberSummary, int, error)
}

// MemberService defines member signup, login, and listing.
type MemberService interface {
	Signup(ctx context.Context, in *SignupInput) (*Member, error)
	Login(ctx context.Context, email, password string) (*Member, string, error)
	List(ctx context.Context) ([]*MemberSummary, int, error)
}

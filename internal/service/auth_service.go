package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/karankatare99/uber/internal/auth"
	"github.com/karankatare99/uber/internal/domain"
	"github.com/karankatare99/uber/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoSession          = errors.New("no valid session")
	ErrEmptyPatch         = errors.New("no fields to update")
)

type AuthService struct {
	users repository.UserRepository
	codec *auth.TokenCodec
}

func NewAuthService(users repository.UserRepository, codec *auth.TokenCodec) *AuthService {
	return &AuthService{
		users: users,
		codec: codec,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	UserType  domain.UserType
}

type LoginInput struct {
	Email    string
	Password string
}

// ProfilePatch is a partial update of the name fields. A nil field is
// left untouched; at least one must be set.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
}

type AuthResult struct {
	User         *domain.User
	SessionToken string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)

	// Check if email is taken
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hashedPassword,
		UserType:     input.UserType,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, err
	}
	user.SessionToken = token

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, SessionToken: token}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, err
	}

	// Overwriting the stored token supersedes any earlier session
	if err := s.users.UpdateSessionToken(ctx, user.ID, token); err != nil {
		return nil, err
	}
	user.SessionToken = token

	return &AuthResult{User: user, SessionToken: token}, nil
}

// Session resolves the user identified by a presented session token. The
// token must verify and must equal the one stored on the user record; any
// failure along the way is reported uniformly as ErrNoSession.
func (s *AuthService) Session(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.codec.Verify(tokenString)
	if err != nil {
		return nil, ErrNoSession
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrNoSession
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrNoSession
	}

	if user.SessionToken != tokenString {
		return nil, ErrNoSession
	}

	return user, nil
}

// Logout clears the stored session token when the presented cookie still
// verifies. A missing or invalid token is not an error; logout always wins.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}

	claims, err := s.codec.Verify(tokenString)
	if err != nil {
		return nil
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil
	}

	return s.users.ClearSessionToken(ctx, userID)
}

// UpdateProfile applies a partial name update and re-issues the session
// token so its claims stay consistent with the stored record.
func (s *AuthService) UpdateProfile(ctx context.Context, tokenString string, patch ProfilePatch) (*AuthResult, error) {
	user, err := s.Session(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	if patch.FirstName == nil && patch.LastName == nil {
		return nil, ErrEmptyPatch
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	user.UpdatedAt = time.Now()

	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, err
	}
	user.SessionToken = token

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, SessionToken: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

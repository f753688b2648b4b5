// Package identity registers accounts and signs users in: form validation,
// Argon2id password hashing, HS256 bearer tokens and sign-in throttling.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/store"
)

// UserStore is the persistence the service needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *store.User, cred store.Credential) error
	UserByEmail(ctx context.Context, email string) (*store.User, *store.Credential, error)
}

var _ UserStore = (*store.DB)(nil)

// Session is a successful sign-in.
type Session struct {
	Identity model.Identity
	Token    string
}

// Service implements registration, sign-in and token verification.
type Service struct {
	users   UserStore
	tokens  *Tokens
	limiter *SignInLimiter
	logger  *zap.Logger
}

// NewService creates an identity service. limiter may be nil.
func NewService(users UserStore, tokens *Tokens, limiter *SignInLimiter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, tokens: tokens, limiter: limiter, logger: logger}
}

// Register creates an account and signs it in.
func (s *Service) Register(ctx context.Context, name, email, password string) (Session, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if err := ValidateRegister(RegisterInput{Name: name, Email: email, Password: password}); err != nil {
		return Session{}, err
	}

	salt, err := RandBytes(saltLen)
	if err != nil {
		return Session{}, fmt.Errorf("generate salt: %w", err)
	}
	u := &store.User{Name: name, Email: email}
	cred := store.Credential{PasswordHash: HashPassword([]byte(password), salt), Salt: salt}
	if err := s.users.CreateUser(ctx, u, cred); err != nil {
		return Session{}, err
	}
	s.logger.Info("user registered", zap.String("uid", u.UID))
	return s.session(u)
}

// SignIn checks credentials. Unknown emails and wrong passwords both return
// errs.ErrUnauthorized; throttled attempts return errs.ErrRateLimited.
func (s *Service) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if err := ValidateSignIn(SignInInput{Email: email, Password: password}); err != nil {
		return Session{}, err
	}
	if s.limiter != nil && !s.limiter.Allow(email) {
		s.logger.Warn("sign-in throttled", zap.String("email", email))
		return Session{}, errs.ErrRateLimited
	}

	u, cred, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Session{}, errs.ErrUnauthorized
		}
		return Session{}, err
	}
	if !VerifyPassword([]byte(password), cred.Salt, cred.PasswordHash) {
		return Session{}, errs.ErrUnauthorized
	}
	return s.session(u)
}

// Authenticate verifies a bearer token.
func (s *Service) Authenticate(token string) (model.Identity, error) {
	return s.tokens.Verify(token)
}

func (s *Service) session(u *store.User) (Session, error) {
	id := model.Identity{UID: u.UID, DisplayName: u.Name, Email: u.Email}
	token, _, err := s.tokens.Issue(id)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{Identity: id, Token: token}, nil
}

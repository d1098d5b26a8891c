package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/articles-app/internal/config"
	"github.com/articles-app/internal/models"
	"github.com/articles-app/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type tokenEntry struct {
	username  string
	expiresAt time.Time
}

// authService checks passwords against bcrypt hashes and keeps issued
// tokens in memory. Tokens do not survive a server restart.
type authService struct {
	users  map[string]*models.User
	ttl    time.Duration
	now    func() time.Time
	log    zerolog.Logger
	mu     sync.Mutex
	tokens map[string]tokenEntry
}

func newAuthService(cfg config.AuthConfig, log zerolog.Logger) (*authService, error) {
	users := make(map[string]*models.User, len(cfg.Users))
	for name, password := range cfg.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", name, err)
		}
		users[name] = &models.User{Username: name, PasswordHash: hash}
	}

	log.Info().Int("users", len(users)).Dur("token_ttl", cfg.TokenTTL).Msg("Initializing auth service")

	return &authService{
		users:  users,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
		log:    log.With().Str("service", "auth").Logger(),
		tokens: make(map[string]tokenEntry),
	}, nil
}

// NewAuthService creates an AuthService for the configured users
func NewAuthService(cfg config.AuthConfig, log zerolog.Logger) (AuthService, error) {
	return newAuthService(cfg, log)
}

// Login verifies credentials and issues a fresh opaque token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if errs := validation.ValidateCredentials(req); len(errs) > 0 {
		return "", errs
	}

	username := strings.TrimSpace(req.Username)
	user, ok := s.users[username]
	if !ok {
		s.log.Warn().Str("username", username).Msg("Login for unknown user")
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		s.log.Warn().Str("username", username).Msg("Login with wrong password")
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()

	s.mu.Lock()
	s.tokens[token] = tokenEntry{username: username, expiresAt: s.now().Add(s.ttl)}
	s.pruneLocked()
	s.mu.Unlock()

	s.log.Info().Str("username", username).Msg("User logged in")
	return token, nil
}

// Authenticate resolves a token to the username it was issued for
func (s *authService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrTokenRequired
	}
	if !validation.IsValidToken(token) {
		return "", ErrTokenInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok {
		return "", ErrTokenInvalid
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.tokens, token)
		return "", ErrTokenInvalid
	}
	return entry.username, nil
}

// pruneLocked drops expired tokens. Caller holds s.mu.
func (s *authService) pruneLocked() {
	now := s.now()
	for token, entry := range s.tokens {
		if !now.Before(entry.expiresAt) {
			delete(s.tokens, token)
		}
	}
}

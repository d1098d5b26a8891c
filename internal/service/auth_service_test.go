package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/articles-app/internal/config"
	"github.com/articles-app/internal/models"
	"github.com/articles-app/internal/validation"
	"github.com/rs/zerolog"
)

func newTestAuthService(t *testing.T) *authService {
	t.Helper()
	svc, err := newAuthService(config.AuthConfig{
		Users:    map[string]string{"admin": "1234"},
		TokenTTL: time.Hour,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("newAuthService failed: %v", err)
	}
	return svc
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, &models.LoginRequest{Username: "admin", Password: "1234"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !validation.IsValidToken(token) {
		t.Errorf("Expected a UUID token, got %q", token)
	}

	username, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if username != "admin" {
		t.Errorf("Expected username 'admin', got %q", username)
	}
}

func TestAuthService_LoginTrimsInput(t *testing.T) {
	svc := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), &models.LoginRequest{Username: " admin ", Password: "1234 "}); err != nil {
		t.Errorf("Expected trimmed credentials to match, got %v", err)
	}
}

func TestAuthService_LoginRejects(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{name: "wrong password", req: models.LoginRequest{Username: "admin", Password: "4321"}, wantErr: ErrInvalidCredentials},
		{name: "unknown user", req: models.LoginRequest{Username: "guest", Password: "1234"}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	_, err := svc.Login(ctx, &models.LoginRequest{Username: "ad"})
	var verr validation.Errors
	if !errors.As(err, &verr) {
		t.Errorf("Expected validation errors, got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Authenticate(ctx, ""); !errors.Is(err, ErrTokenRequired) {
		t.Errorf("Expected ErrTokenRequired, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "abc"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid for malformed token, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid for unknown token, got %v", err)
	}
}

func TestAuthService_TokenExpires(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	token, err := svc.Login(ctx, &models.LoginRequest{Username: "admin", Password: "1234"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	now = now.Add(59 * time.Minute)
	if _, err := svc.Authenticate(ctx, token); err != nil {
		t.Errorf("Expected token to be live before TTL, got %v", err)
	}

	now = now.Add(time.Minute)
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid after TTL, got %v", err)
	}
	if len(svc.tokens) != 0 {
		t.Errorf("Expected expired token to be dropped, have %d", len(svc.tokens))
	}
}

func TestAuthService_PasswordComparedVerbatim(t *testing.T) {
	svc, err := newAuthService(config.AuthConfig{
		Users:    map[string]string{"bob": " pw12"},
		TokenTTL: time.Hour,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("newAuthService failed: %v", err)
	}
	ctx := context.Background()

	if _, err := svc.Login(ctx, &models.LoginRequest{Username: "bob", Password: " pw12"}); err != nil {
		t.Errorf("Expected login with the configured password to succeed, got %v", err)
	}
	if _, err := svc.Login(ctx, &models.LoginRequest{Username: "bob", Password: "pw12"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected trimmed password to be rejected, got %v", err)
	}
}

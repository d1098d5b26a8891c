package service

import (
	"context"
	"errors"

	"github.com/articles-app/internal/config"
	"github.com/articles-app/internal/models"
	"github.com/articles-app/internal/repository"
	"github.com/rs/zerolog"
)

var (
	// ErrInvalidCredentials is returned when a username/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenRequired is returned when a request carries no token.
	ErrTokenRequired = errors.New("token required")
	// ErrTokenInvalid is returned when a token is unknown, malformed or expired.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrNotFound is returned when an article does not exist.
	ErrNotFound = errors.New("article not found")
)

// AuthService defines the interface for login and token checks
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context) ([]models.Article, error)
	Create(ctx context.Context, in models.ArticleInput) (*models.Article, error)
	Update(ctx context.Context, id int, in models.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	Seed(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Article ArticleService
	// Health is optional; when nil only the article count is checked
	Health HealthChecker
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, health HealthChecker, cfg *config.Config, log zerolog.Logger) (*Services, error) {
	authSvc, err := newAuthService(cfg.Auth, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:    authSvc,
		Article: newArticleService(repos.Article, log),
		Health:  health,
	}, nil
}

package mocks

import (
	"context"

	"github.com/articles-app/internal/models"
	"github.com/articles-app/internal/service"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	// Tokens maps issued tokens to usernames
	Tokens    map[string]string
	LoginFunc func(ctx context.Context, req *models.LoginRequest) (string, error)
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{Tokens: make(map[string]string)}
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	for token, username := range m.Tokens {
		if username == req.Username {
			return token, nil
		}
	}
	return "", service.ErrInvalidCredentials
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", service.ErrTokenRequired
	}
	username, ok := m.Tokens[token]
	if !ok {
		return "", service.ErrTokenInvalid
	}
	return username, nil
}

// MockHealthChecker is a mock implementation of HealthChecker
type MockHealthChecker struct {
	Err   error
	Calls int
}

var _ service.HealthChecker = (*MockHealthChecker)(nil)

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	m.Calls++
	return m.Err
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	Articles   []models.Article
	NextID     int
	CreateFunc func(ctx context.Context, in models.ArticleInput) (*models.Article, error)
	Err        error
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{NextID: 1}
}

func (m *MockArticleService) List(ctx context.Context) ([]models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	articles := make([]models.Article, len(m.Articles))
	copy(articles, m.Articles)
	return articles, nil
}

func (m *MockArticleService) Create(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	article := models.Article{ID: m.NextID, Title: in.Title, Text: in.Text, Topic: in.Topic}
	m.NextID++
	m.Articles = append(m.Articles, article)
	return &article, nil
}

func (m *MockArticleService) Update(ctx context.Context, id int, in models.ArticleInput) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Articles {
		if m.Articles[i].ID == id {
			m.Articles[i] = models.Article{ID: id, Title: in.Title, Text: in.Text, Topic: in.Topic}
			updated := m.Articles[i]
			return &updated, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *MockArticleService) Delete(ctx context.Context, id int) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Articles {
		if m.Articles[i].ID == id {
			m.Articles = append(m.Articles[:i], m.Articles[i+1:]...)
			return nil
		}
	}
	return service.ErrNotFound
}

func (m *MockArticleService) Count(ctx context.Context) (int, error) {
	return len(m.Articles), m.Err
}

func (m *MockArticleService) Seed(ctx context.Context) (int, error) {
	return 0, m.Err
}

package mocks

import (
	"context"
	"net/http"

	"github.com/articles-app/internal/client"
	"github.com/articles-app/internal/models"
)

// MockArticlesAPI is a scriptable stand-in for *client.Client
type MockArticlesAPI struct {
	LoginFunc  func(ctx context.Context, username, password string) (*models.LoginResponse, error)
	ListFunc   func(ctx context.Context, token string) (*models.ArticlesResponse, error)
	CreateFunc func(ctx context.Context, token string, article models.ArticleInput) (*models.ArticleResponse, error)
	UpdateFunc func(ctx context.Context, token string, id int, article models.ArticleInput) (*models.ArticleResponse, error)
	DeleteFunc func(ctx context.Context, token string, id int) (*models.MessageResponse, error)

	// Tokens records the token passed to every authenticated call
	Tokens []string
}

func NewMockArticlesAPI() *MockArticlesAPI {
	return &MockArticlesAPI{}
}

// Unauthorized builds the error a 401 response produces
func Unauthorized(message string) error {
	return &client.APIError{Op: "mock", Status: http.StatusUnauthorized, Message: message}
}

// StatusError builds the error any other non-2xx response produces
func StatusError(status int, message string) error {
	return &client.APIError{Op: "mock", Status: status, Message: message}
}

func (m *MockArticlesAPI) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return &models.LoginResponse{}, nil
}

func (m *MockArticlesAPI) ListArticles(ctx context.Context, token string) (*models.ArticlesResponse, error) {
	m.Tokens = append(m.Tokens, token)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	return &models.ArticlesResponse{Articles: []models.Article{}}, nil
}

func (m *MockArticlesAPI) CreateArticle(ctx context.Context, token string, article models.ArticleInput) (*models.ArticleResponse, error) {
	m.Tokens = append(m.Tokens, token)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token, article)
	}
	return &models.ArticleResponse{}, nil
}

func (m *MockArticlesAPI) UpdateArticle(ctx context.Context, token string, id int, article models.ArticleInput) (*models.ArticleResponse, error) {
	m.Tokens = append(m.Tokens, token)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token, id, article)
	}
	return &models.ArticleResponse{}, nil
}

func (m *MockArticlesAPI) DeleteArticle(ctx context.Context, token string, id int) (*models.MessageResponse, error) {
	m.Tokens = append(m.Tokens, token)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token, id)
	}
	return &models.MessageResponse{}, nil
}

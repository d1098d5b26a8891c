package repository

import (
	"context"
	"errors"

	"github.com/articles-app/internal/database"
	"github.com/articles-app/internal/models"
)

// ErrNotFound is returned when an update or delete targets a missing row
var ErrNotFound = errors.New("record not found")

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	var articles ArticleRepository
	switch db.Driver {
	case database.DriverSQLite:
		articles = NewSQLiteArticleRepo(db)
	default:
		articles = NewArticleRepo(db)
	}
	return &Repositories{
		Article: articles,
	}
}

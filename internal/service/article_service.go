package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/articles-app/internal/models"
	"github.com/articles-app/internal/repository"
	"github.com/articles-app/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
}

func newArticleService(repo repository.ArticleRepository, log zerolog.Logger) *articleService {
	return &articleService{
		repo: repo,
		log:  log.With().Str("service", "article").Logger(),
	}
}

// NewArticleService creates an ArticleService backed by repo
func NewArticleService(repo repository.ArticleRepository, log zerolog.Logger) ArticleService {
	return newArticleService(repo, log)
}

// List returns every article
func (s *articleService) List(ctx context.Context) ([]models.Article, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Create validates and stores a new article
func (s *articleService) Create(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	in, errs := validation.ValidateArticle(in)
	if len(errs) > 0 {
		return nil, errs
	}

	article := &models.Article{Title: in.Title, Text: in.Text, Topic: in.Topic}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.Info().Int("article_id", article.ID).Str("topic", article.Topic).Msg("Article created")
	return article, nil
}

// Update validates and replaces the editable fields of article id
func (s *articleService) Update(ctx context.Context, id int, in models.ArticleInput) (*models.Article, error) {
	in, errs := validation.ValidateArticle(in)
	if len(errs) > 0 {
		return nil, errs
	}

	article := &models.Article{ID: id, Title: in.Title, Text: in.Text, Topic: in.Topic}
	if err := s.repo.Update(ctx, article); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update article %d: %w", id, err)
	}

	s.log.Info().Int("article_id", id).Msg("Article updated")
	return article, nil
}

// Delete removes article id
func (s *articleService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete article %d: %w", id, err)
	}

	s.log.Info().Int("article_id", id).Msg("Article deleted")
	return nil
}

// Count returns the number of stored articles
func (s *articleService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

var seedArticles = []models.ArticleInput{
	{Title: "Closures", Text: "Things to consider when working with closures.", Topic: "JavaScript"},
	{Title: "Hooks", Text: "useState and useEffect cover most components.", Topic: "React"},
	{Title: "Middleware", Text: "Express middleware runs in the order it is registered.", Topic: "Node"},
}

// Seed stores a few starter articles when the store is empty and reports
// how many were added
func (s *articleService) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, in := range seedArticles {
		article := &models.Article{Title: in.Title, Text: in.Text, Topic: in.Topic}
		if err := s.repo.Create(ctx, article); err != nil {
			return 0, fmt.Errorf("seed article %q: %w", in.Title, err)
		}
	}

	s.log.Info().Int("count", len(seedArticles)).Msg("Seeded articles")
	return len(seedArticles), nil
}

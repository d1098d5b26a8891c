package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/articles-app/internal/database"
	"github.com/articles-app/internal/models"
)

// articleRepo is the PostgreSQL implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new PostgreSQL article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List returns all articles in id order
func (r *articleRepo) List(ctx context.Context) ([]models.Article, error) {
	query := `
		SELECT id, title, text, topic, created_at, updated_at
		FROM articles ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		var article models.Article
		if err := rows.Scan(
			&article.ID, &article.Title, &article.Text, &article.Topic,
			&article.CreatedAt, &article.UpdatedAt,
		); err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT id, title, text, topic, created_at, updated_at
		FROM articles WHERE id = $1
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Text, &article.Topic,
		&article.CreatedAt, &article.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Create inserts a new article and sets its server-assigned ID
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO articles (title, text, topic, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		article.Title, article.Text, article.Topic, now, now,
	).Scan(&article.ID)
	if err != nil {
		return err
	}
	article.CreatedAt = now
	article.UpdatedAt = now
	return nil
}

// Update replaces the editable fields of an existing article
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	now := time.Now().UTC()
	query := `
		UPDATE articles SET title = $1, text = $2, topic = $3, updated_at = $4
		WHERE id = $5
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		article.Title, article.Text, article.Topic, now, article.ID,
	).Scan(&article.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	article.UpdatedAt = now
	return nil
}

// Delete removes an article by ID
func (r *articleRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

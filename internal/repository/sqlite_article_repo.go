package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/articles-app/internal/database"
	"github.com/articles-app/internal/models"
)

// sqliteArticleRepo is the SQLite implementation of ArticleRepository
type sqliteArticleRepo struct {
	db *database.DB
}

// NewSQLiteArticleRepo creates a new SQLite article repository
func NewSQLiteArticleRepo(db *database.DB) ArticleRepository {
	return &sqliteArticleRepo{db: db}
}

func (r *sqliteArticleRepo) List(ctx context.Context) ([]models.Article, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, text, topic, created_at, updated_at FROM articles ORDER BY id")
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

func (r *sqliteArticleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	var article models.Article
	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, text, topic, created_at, updated_at FROM articles WHERE id = ?", id,
	).Scan(
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

func (r *sqliteArticleRepo) Create(ctx context.Context, article *models.Article) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO articles (title, text, topic, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		article.Title, article.Text, article.Topic, now, now,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	article.ID = int(id)
	article.CreatedAt = now
	article.UpdatedAt = now
	return nil
}

func (r *sqliteArticleRepo) Update(ctx context.Context, article *models.Article) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		"UPDATE articles SET title = ?, text = ?, topic = ?, updated_at = ? WHERE id = ?",
		article.Title, article.Text, article.Topic, now, article.ID,
	)
	if err != nil {
		return err
	}
	if err := requireAffected(result); err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, "SELECT created_at FROM articles WHERE id = ?", article.ID).
		Scan(&article.CreatedAt)
	if err != nil {
		return err
	}
	article.UpdatedAt = now
	return nil
}

func (r *sqliteArticleRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *sqliteArticleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

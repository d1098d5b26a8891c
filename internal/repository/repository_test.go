package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/articles-app/internal/database"
	"github.com/articles-app/internal/models"
	"github.com/articles-app/internal/repository"
	"github.com/rs/zerolog"
)

func newSQLiteRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	db, err := database.NewSQLite(":memory:", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return repository.New(db)
}

func TestSQLiteArticleRepository_CRUD(t *testing.T) {
	repo := newSQLiteRepos(t).Article
	ctx := context.Background()

	first := &models.Article{Title: "Closures", Text: "scope", Topic: "JavaScript"}
	second := &models.Article{Title: "Hooks", Text: "state", Topic: "React"}
	for _, a := range []*models.Article{first, second} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if first.ID == 0 || second.ID <= first.ID {
		t.Fatalf("Expected increasing server-assigned IDs, got %d and %d", first.ID, second.ID)
	}

	articles, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(articles) != 2 || articles[0].Title != "Closures" {
		t.Fatalf("Unexpected list %+v", articles)
	}

	first.Title = "Closures, revisited"
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	stored, err := repo.GetByID(ctx, first.ID)
	if err != nil || stored == nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.Title != "Closures, revisited" {
		t.Errorf("Expected updated title, got %q", stored.Title)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 article, got %d", count)
	}
}

func TestSQLiteArticleRepository_Missing(t *testing.T) {
	repo := newSQLiteRepos(t).Article
	ctx := context.Background()

	article, err := repo.GetByID(ctx, 404)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if article != nil {
		t.Errorf("Expected nil for missing article, got %+v", article)
	}

	if err := repo.Update(ctx, &models.Article{ID: 404, Title: "t", Text: "x", Topic: "Node"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on update, got %v", err)
	}
	if err := repo.Delete(ctx, 404); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on delete, got %v", err)
	}
}

func TestSQLiteArticleRepository_EmptyListIsNotNil(t *testing.T) {
	repo := newSQLiteRepos(t).Article

	articles, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if articles == nil {
		t.Error("Expected an empty slice so the API encodes []")
	}
}

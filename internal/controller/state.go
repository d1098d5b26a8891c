package controller

import "github.com/articles-app/internal/models"

// Screen is the view currently shown
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenArticles
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenArticles:
		return "articles"
	default:
		return "unknown"
	}
}

// State is everything the views render from
type State struct {
	Screen           Screen
	Message          string
	Spinner          bool
	Articles         []models.Article
	CurrentArticleID *int
}

// CurrentArticle returns the selected article when the selection names one
// that is still in the collection
func (s State) CurrentArticle() (models.Article, bool) {
	if s.CurrentArticleID == nil {
		return models.Article{}, false
	}
	for _, a := range s.Articles {
		if a.ID == *s.CurrentArticleID {
			return a, true
		}
	}
	return models.Article{}, false
}

// clone returns a copy that shares no memory with s
func (s State) clone() State {
	out := s
	if s.Articles != nil {
		out.Articles = make([]models.Article, len(s.Articles))
		copy(out.Articles, s.Articles)
	}
	if s.CurrentArticleID != nil {
		id := *s.CurrentArticleID
		out.CurrentArticleID = &id
	}
	return out
}

func appendArticle(articles []models.Article, a models.Article) []models.Article {
	out := make([]models.Article, 0, len(articles)+1)
	out = append(out, articles...)
	return append(out, a)
}

func replaceArticle(articles []models.Article, a models.Article) []models.Article {
	out := make([]models.Article, len(articles))
	for i, existing := range articles {
		if existing.ID == a.ID {
			out[i] = a
		} else {
			out[i] = existing
		}
	}
	return out
}

func removeArticle(articles []models.Article, id int) []models.Article {
	out := make([]models.Article, 0, len(articles))
	for _, existing := range articles {
		if existing.ID != id {
			out = append(out, existing)
		}
	}
	return out
}

// Package controller owns the client's view state and runs every user
// intent against the API.
//
// Each data operation clears the message and raises the spinner, calls the
// API, applies the result to the article collection, and lowers the spinner
// whatever the outcome. A 401 from any call clears the stored token and
// returns the user to the login screen. Operations are not serialized: two
// overlapping calls each apply their own result in completion order.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/articles-app/internal/client"
	"github.com/articles-app/internal/models"
	"github.com/articles-app/internal/session"
	"github.com/rs/zerolog"
)

// Messages set by the controller itself rather than the server
const (
	GoodbyeMessage       = "Goodbye!"
	DefaultErrorMessage  = "Something bad happened"
	loginFallbackMessage = "Somethin' horrible logging in: %s"
)

// API is the remote surface the controller drives. *client.Client satisfies it.
type API interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	ListArticles(ctx context.Context, token string) (*models.ArticlesResponse, error)
	CreateArticle(ctx context.Context, token string, article models.ArticleInput) (*models.ArticleResponse, error)
	UpdateArticle(ctx context.Context, token string, id int, article models.ArticleInput) (*models.ArticleResponse, error)
	DeleteArticle(ctx context.Context, token string, id int) (*models.MessageResponse, error)
}

var _ API = (*client.Client)(nil)

// Controller is the single owner of State
type Controller struct {
	api   API
	store session.Store
	log   zerolog.Logger

	mu          sync.Mutex
	state       State
	subscribers []func(State)
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the controller's logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log.With().Str("component", "controller").Logger() }
}

// New creates a controller. It starts on the articles screen when store
// already holds a token and on the login screen otherwise.
func New(api API, store session.Store, opts ...Option) *Controller {
	c := &Controller{
		api:   api,
		store: store,
		log:   zerolog.Nop(),
		state: State{Screen: ScreenLogin, Articles: []models.Article{}},
	}
	for _, opt := range opts {
		opt(c)
	}
	if _, ok := c.token(); ok {
		c.state.Screen = ScreenArticles
	}
	return c
}

// Subscribe registers fn to receive a snapshot after every state change
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	c.mu.Unlock()
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// CurrentArticle returns the article selected for editing, if any
func (c *Controller) CurrentArticle() (models.Article, bool) {
	return c.State().CurrentArticle()
}

// SetCurrentArticleID selects an article for editing
func (c *Controller) SetCurrentArticleID(id int) {
	c.update(func(s *State) { s.CurrentArticleID = &id })
}

// ClearCurrentArticleID drops the selection
func (c *Controller) ClearCurrentArticleID() {
	c.update(func(s *State) { s.CurrentArticleID = nil })
}

// Navigate switches screens without touching the session, like following
// a navigation link
func (c *Controller) Navigate(screen Screen) {
	c.update(func(s *State) { s.Screen = screen })
}

// Logout forgets the stored token and returns to the login screen
func (c *Controller) Logout() {
	_, had := c.token()
	if had {
		if err := c.store.Clear(); err != nil {
			c.log.Error().Err(err).Msg("Failed to clear session")
		}
	}
	c.update(func(s *State) {
		if had {
			s.Message = GoodbyeMessage
		}
		s.Screen = ScreenLogin
	})
	c.log.Info().Bool("had_session", had).Msg("Logged out")
}

// Login authenticates, stores the returned token and moves to the articles
// screen
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.begin()
	defer c.end()

	resp, err := c.api.Login(ctx, username, password)
	if err != nil {
		c.fail("login", err, fmt.Sprintf(loginFallbackMessage, causeOf(err)))
		return err
	}

	if err := c.store.Save(resp.Token); err != nil {
		c.log.Error().Err(err).Msg("Failed to save session")
		c.update(func(s *State) { s.Message = "Could not save session: " + err.Error() })
		return fmt.Errorf("save session: %w", err)
	}

	c.update(func(s *State) {
		s.Message = resp.Message
		s.Screen = ScreenArticles
	})
	c.log.Info().Str("username", username).Msg("Logged in")
	return nil
}

// GetArticles replaces the collection with the server's list
func (c *Controller) GetArticles(ctx context.Context) error {
	c.begin()
	defer c.end()

	token, _ := c.token()
	resp, err := c.api.ListArticles(ctx, token)
	if err != nil {
		c.fail("list articles", err, DefaultErrorMessage)
		return err
	}

	c.update(func(s *State) {
		s.Message = resp.Message
		s.Articles = append([]models.Article{}, resp.Articles...)
	})
	c.log.Debug().Int("count", len(resp.Articles)).Msg("Articles loaded")
	return nil
}

// PostArticle creates an article and appends the stored version
func (c *Controller) PostArticle(ctx context.Context, article models.ArticleInput) error {
	c.begin()
	defer c.end()

	token, _ := c.token()
	resp, err := c.api.CreateArticle(ctx, token, article)
	if err != nil {
		c.fail("create article", err, DefaultErrorMessage)
		return err
	}

	c.update(func(s *State) {
		s.Message = resp.Message
		s.Articles = appendArticle(s.Articles, resp.Article)
	})
	c.log.Debug().Int("article_id", resp.Article.ID).Msg("Article created")
	return nil
}

// UpdateArticle replaces article id and clears the selection
func (c *Controller) UpdateArticle(ctx context.Context, id int, article models.ArticleInput) error {
	c.begin()
	defer c.end()

	token, _ := c.token()
	resp, err := c.api.UpdateArticle(ctx, token, id, article)
	if err != nil {
		c.fail("update article", err, DefaultErrorMessage)
		return err
	}

	updated := resp.Article
	updated.ID = id
	c.update(func(s *State) {
		s.Message = resp.Message
		s.Articles = replaceArticle(s.Articles, updated)
		s.CurrentArticleID = nil
	})
	c.log.Debug().Int("article_id", id).Msg("Article updated")
	return nil
}

// DeleteArticle removes article id
func (c *Controller) DeleteArticle(ctx context.Context, id int) error {
	c.begin()
	defer c.end()

	token, _ := c.token()
	resp, err := c.api.DeleteArticle(ctx, token, id)
	if err != nil {
		c.fail("delete article", err, DefaultErrorMessage)
		return err
	}

	c.update(func(s *State) {
		s.Message = resp.Message
		s.Articles = removeArticle(s.Articles, id)
	})
	c.log.Debug().Int("article_id", id).Msg("Article deleted")
	return nil
}

func (c *Controller) begin() {
	c.update(func(s *State) {
		s.Message = ""
		s.Spinner = true
	})
}

func (c *Controller) end() {
	c.update(func(s *State) { s.Spinner = false })
}

// fail reports err as the message. Authorization failures also end the
// session.
func (c *Controller) fail(op string, err error, fallback string) {
	message := client.MessageOr(err, fallback)
	unauthorized := client.IsUnauthorized(err)

	c.log.Warn().Err(err).Str("op", op).Int("status", client.StatusOf(err)).Msg("Operation failed")

	if unauthorized {
		if clearErr := c.store.Clear(); clearErr != nil {
			c.log.Error().Err(clearErr).Msg("Failed to clear session")
		}
	}
	c.update(func(s *State) {
		s.Message = message
		if unauthorized {
			s.Screen = ScreenLogin
		}
	})
}

func (c *Controller) token() (string, bool) {
	token, ok, err := c.store.Load()
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to load session")
		return "", false
	}
	return token, ok
}

// update applies fn under the lock and notifies subscribers outside it
func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state.clone()
	subscribers := append([]func(State){}, c.subscribers...)
	c.mu.Unlock()

	for _, sub := range subscribers {
		sub(snapshot)
	}
}

// causeOf describes why a request failed for the login fallback message
func causeOf(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Err != nil {
			return apiErr.Err.Error()
		}
		return fmt.Sprintf("request failed with status code %d", apiErr.Status)
	}
	return err.Error()
}

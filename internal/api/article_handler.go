package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/articles-app/internal/models"
	"github.com/articles-app/internal/service"
	"github.com/articles-app/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles the article collection endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.services.Article.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ArticlesResponse{
		Articles: articles,
		Message:  fmt.Sprintf("Here are your articles, %s!", c.GetString(usernameKey)),
	})
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ArticleResponse{
		Article: *article,
		Message: fmt.Sprintf("Well done, %s. Great article!", c.GetString(usernameKey)),
	})
}

// Update handles PUT /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ArticleResponse{
		Article: *article,
		Message: fmt.Sprintf("Nice update, %s!", c.GetString(usernameKey)),
	})
}

// Delete handles DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	if err := h.services.Article.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Article %d was deleted, %s!", id, c.GetString(usernameKey)),
	})
}

// articleID parses the :id path parameter, writing a 400 when it is not a
// positive integer
func articleID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "article id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// fail maps service errors to status codes
func (h *ArticleHandler) fail(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": verr.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Article not found"})
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Article request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong on the server"})
	}
}

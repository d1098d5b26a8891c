package models

import (
	"time"
)

// Article represents an article in the system
type Article struct {
	ID        int       `json:"article_id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Text      string    `json:"text" db:"text"`
	Topic     string    `json:"topic" db:"topic"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// ValidTopics defines allowed article topics
var ValidTopics = map[string]bool{
	"JavaScript": true,
	"React":      true,
	"Node":       true,
}

// Topics lists the allowed topics in display order
var Topics = []string{"JavaScript", "React", "Node"}

// ArticleInput is the request body for creating or updating an article
type ArticleInput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

// Input returns the editable fields of the article
func (a Article) Input() ArticleInput {
	return ArticleInput{Title: a.Title, Text: a.Text, Topic: a.Topic}
}

// ArticlesResponse is the body of GET /api/articles
type ArticlesResponse struct {
	Articles []Article `json:"articles"`
	Message  string    `json:"message"`
}

// ArticleResponse is the body of POST /api/articles and PUT /api/articles/:id
type ArticleResponse struct {
	Article Article `json:"article"`
	Message string  `json:"message"`
}

// MessageResponse is the body of DELETE /api/articles/:id and of every error
type MessageResponse struct {
	Message string `json:"message"`
}

package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/articles-app/internal/models"
	"github.com/google/uuid"
)

// Field limits
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 4
	MaxPasswordLength = 64
	MaxTitleLength    = 200
	MaxTextLength     = 10000
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Errors is a non-empty list of validation errors usable as an error
type Errors []ValidationError

// Error reports the first message, which is what the API sends to clients
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Message
}

// ValidateCredentials validates a login request
func ValidateCredentials(req *models.LoginRequest) Errors {
	var errors Errors

	username := strings.TrimSpace(req.Username)
	if username == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	} else if n := utf8.RuneCountInString(username); n < MinUsernameLength || n > MaxUsernameLength {
		errors = append(errors, ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength),
			Value:   username,
		})
	}

	// Passwords are compared verbatim; whitespace is only rejected when it is all there is.
	if strings.TrimSpace(req.Password) == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	} else if n := utf8.RuneCountInString(req.Password); n < MinPasswordLength || n > MaxPasswordLength {
		errors = append(errors, ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength),
		})
	}

	return errors
}

// ValidateArticle validates an article body and returns the trimmed input
func ValidateArticle(in models.ArticleInput) (models.ArticleInput, Errors) {
	var errors Errors

	out := models.ArticleInput{
		Title: strings.TrimSpace(in.Title),
		Text:  strings.TrimSpace(in.Text),
		Topic: strings.TrimSpace(in.Topic),
	}

	// Validate title
	if out.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	} else if utf8.RuneCountInString(out.Title) > MaxTitleLength {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength),
		})
	}

	// Validate text
	if out.Text == "" {
		errors = append(errors, ValidationError{Field: "text", Message: "text is required"})
	} else if utf8.RuneCountInString(out.Text) > MaxTextLength {
		errors = append(errors, ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text must be at most %d characters", MaxTextLength),
		})
	}

	// Validate topic
	if out.Topic == "" {
		errors = append(errors, ValidationError{Field: "topic", Message: "topic is required"})
	} else if !models.ValidTopics[out.Topic] {
		errors = append(errors, ValidationError{
			Field:   "topic",
			Message: "topic must be one of: " + strings.Join(models.Topics, ", "),
			Value:   out.Topic,
		})
	}

	return out, errors
}

// IsValidToken checks that a token has the shape the server issues
func IsValidToken(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

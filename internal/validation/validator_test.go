package validation

import (
	"strings"
	"testing"

	"github.com/articles-app/internal/models"
	"github.com/google/uuid"
)

func TestValidateArticle(t *testing.T) {
	tests := []struct {
		name       string
		input      models.ArticleInput
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid article",
			input:      models.ArticleInput{Title: "Hooks", Text: "useState is neat", Topic: "React"},
			wantErrors: 0,
		},
		{
			name:       "missing title",
			input:      models.ArticleInput{Text: "body", Topic: "Node"},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace only text",
			input:      models.ArticleInput{Title: "t", Text: "   \n\t", Topic: "Node"},
			wantErrors: 1,
			wantFields: []string{"text"},
		},
		{
			name:       "unknown topic",
			input:      models.ArticleInput{Title: "t", Text: "x", Topic: "Rust"},
			wantErrors: 1,
			wantFields: []string{"topic"},
		},
		{
			name:       "topic is case sensitive",
			input:      models.ArticleInput{Title: "t", Text: "x", Topic: "react"},
			wantErrors: 1,
			wantFields: []string{"topic"},
		},
		{
			name:       "everything missing",
			input:      models.ArticleInput{},
			wantErrors: 3,
			wantFields: []string{"title", "text", "topic"},
		},
		{
			name:       "title too long",
			input:      models.ArticleInput{Title: strings.Repeat("a", MaxTitleLength+1), Text: "x", Topic: "JavaScript"},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errors := ValidateArticle(tt.input)

			if len(errors) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %+v", tt.wantErrors, len(errors), errors)
			}

			for i, field := range tt.wantFields {
				if i >= len(errors) {
					break
				}
				if errors[i].Field != field {
					t.Errorf("Expected error %d on field %q, got %q", i, field, errors[i].Field)
				}
			}
		})
	}
}

func TestValidateArticle_TrimsFields(t *testing.T) {
	out, errors := ValidateArticle(models.ArticleInput{Title: "  Title ", Text: "\ttext\n", Topic: " Node "})
	if len(errors) != 0 {
		t.Fatalf("Expected no errors, got %+v", errors)
	}
	if out.Title != "Title" || out.Text != "text" || out.Topic != "Node" {
		t.Errorf("Expected trimmed input, got %+v", out)
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name       string
		req        models.LoginRequest
		wantFields []string
	}{
		{name: "valid", req: models.LoginRequest{Username: "admin", Password: "1234"}},
		{name: "missing both", req: models.LoginRequest{}, wantFields: []string{"username", "password"}},
		{name: "short username", req: models.LoginRequest{Username: "ab", Password: "1234"}, wantFields: []string{"username"}},
		{name: "short password", req: models.LoginRequest{Username: "admin", Password: "123"}, wantFields: []string{"password"}},
		{name: "blank password", req: models.LoginRequest{Username: "admin", Password: "    "}, wantFields: []string{"password"}},
		{name: "password with spaces counts verbatim", req: models.LoginRequest{Username: "admin", Password: " pw1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateCredentials(&tt.req)
			if len(errors) != len(tt.wantFields) {
				t.Fatalf("Expected %d errors, got %+v", len(tt.wantFields), errors)
			}
			for i, field := range tt.wantFields {
				if errors[i].Field != field {
					t.Errorf("Expected error on %q, got %q", field, errors[i].Field)
				}
			}
		})
	}
}

func TestErrors_Error(t *testing.T) {
	var empty Errors
	if empty.Error() != "validation failed" {
		t.Errorf("Expected generic text for empty list, got %q", empty.Error())
	}

	errs := Errors{{Field: "title", Message: "title is required"}, {Field: "text", Message: "text is required"}}
	if errs.Error() != "title is required" {
		t.Errorf("Expected first message as error text, got %q", errs.Error())
	}
}

func TestIsValidToken(t *testing.T) {
	if !IsValidToken(uuid.NewString()) {
		t.Error("Expected generated UUID to be valid")
	}
	if IsValidToken("abc") {
		t.Error("Expected 'abc' to be invalid")
	}
	if IsValidToken("") {
		t.Error("Expected empty token to be invalid")
	}
}

package views_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/articles-app/internal/controller"
	"github.com/articles-app/internal/models"
	"github.com/articles-app/internal/views"
)

func TestRender_LoginScreen(t *testing.T) {
	var buf bytes.Buffer
	views.Render(&buf, controller.State{Screen: controller.ScreenLogin, Message: "Goodbye!"})

	out := buf.String()
	for _, want := range []string{"Goodbye!", "Login", "Articles", "Log in to see your articles."} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Please wait") {
		t.Error("Spinner shown while off")
	}
}

func TestRender_ArticlesScreen(t *testing.T) {
	id := 2
	state := controller.State{
		Screen:  controller.ScreenArticles,
		Spinner: true,
		Articles: []models.Article{
			{ID: 1, Title: "Closures", Text: "scope", Topic: "JavaScript"},
			{ID: 2, Title: "Hooks", Text: "state", Topic: "React"},
		},
		CurrentArticleID: &id,
	}

	var buf bytes.Buffer
	views.Render(&buf, state)
	out := buf.String()

	for _, want := range []string{"Please wait...", "#1 Closures", "[JavaScript]", "> #2 Hooks", "Editing #2 Hooks"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestArticles_Empty(t *testing.T) {
	var buf bytes.Buffer
	views.Articles(&buf, nil, nil)

	if !strings.Contains(buf.String(), "No articles yet") {
		t.Errorf("Expected empty notice, got %q", buf.String())
	}
}

func TestLoginForm(t *testing.T) {
	var out bytes.Buffer
	forms := views.NewForms(strings.NewReader(" admin \n1234"), &out)

	creds, err := forms.LoginForm()
	if err != nil {
		t.Fatalf("LoginForm failed: %v", err)
	}
	if creds.Username != "admin" || creds.Password != "1234" {
		t.Errorf("Unexpected credentials %+v", creds)
	}
	if !strings.Contains(out.String(), "Username: ") || !strings.Contains(out.String(), "Password: ") {
		t.Errorf("Expected prompts, got %q", out.String())
	}
}

func TestLoginForm_PasswordKeptVerbatim(t *testing.T) {
	forms := views.NewForms(strings.NewReader("bob\r\n pw12 \r\n"), &bytes.Buffer{})

	creds, err := forms.LoginForm()
	if err != nil {
		t.Fatalf("LoginForm failed: %v", err)
	}
	if creds.Username != "bob" || creds.Password != " pw12 " {
		t.Errorf("Unexpected credentials %+q", creds)
	}
}

func TestLoginForm_Aborted(t *testing.T) {
	forms := views.NewForms(strings.NewReader("admin\n"), &bytes.Buffer{})

	if _, err := forms.LoginForm(); !errors.Is(err, views.ErrAborted) {
		t.Errorf("Expected ErrAborted, got %v", err)
	}
}

func TestArticleForm_Create(t *testing.T) {
	var out bytes.Buffer
	forms := views.NewForms(strings.NewReader("Hooks\nuseState\nReact\n"), &out)

	in, err := forms.ArticleForm(nil)
	if err != nil {
		t.Fatalf("ArticleForm failed: %v", err)
	}
	if in != (models.ArticleInput{Title: "Hooks", Text: "useState", Topic: "React"}) {
		t.Errorf("Unexpected input %+v", in)
	}
	if !strings.Contains(out.String(), "Create Article") {
		t.Errorf("Expected create heading, got %q", out.String())
	}
}

func TestArticleForm_EditKeepsDefaults(t *testing.T) {
	var out bytes.Buffer
	forms := views.NewForms(strings.NewReader("\nnew text\n\n"), &out)
	current := &models.Article{ID: 4, Title: "Hooks", Text: "old", Topic: "React"}

	in, err := forms.ArticleForm(current)
	if err != nil {
		t.Fatalf("ArticleForm failed: %v", err)
	}
	if in != (models.ArticleInput{Title: "Hooks", Text: "new text", Topic: "React"}) {
		t.Errorf("Unexpected input %+v", in)
	}
	if !strings.Contains(out.String(), "Edit Article #4") || !strings.Contains(out.String(), "Title [Hooks]: ") {
		t.Errorf("Expected edit heading and defaults, got %q", out.String())
	}
}

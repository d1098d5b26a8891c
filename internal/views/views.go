// Package views renders controller state to a terminal and reads the form
// input that becomes user intents.
package views

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/articles-app/internal/controller"
	"github.com/articles-app/internal/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	activeStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveStyle = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	topicStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// ErrAborted is returned when input ends before a form is complete
var ErrAborted = errors.New("input closed")

// Spinner writes the busy indicator when on
func Spinner(w io.Writer, on bool) {
	if on {
		fmt.Fprintln(w, spinnerStyle.Render("Please wait..."))
	}
}

// Message writes the status banner when there is something to say
func Message(w io.Writer, message string) {
	if message != "" {
		fmt.Fprintln(w, messageStyle.Render(message))
	}
}

// Nav writes the screen links, marking the current one
func Nav(w io.Writer, screen controller.Screen) {
	link := func(s controller.Screen, label string) string {
		if s == screen {
			return activeStyle.Render(label)
		}
		return inactiveStyle.Render(label)
	}
	fmt.Fprintf(w, "%s | %s\n", link(controller.ScreenLogin, "Login"), link(controller.ScreenArticles, "Articles"))
}

// Articles writes the article list, marking the one being edited
func Articles(w io.Writer, articles []models.Article, currentID *int) {
	fmt.Fprintln(w, headingStyle.Render("Articles"))
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles yet")
		return
	}
	for _, a := range articles {
		line := fmt.Sprintf("#%d %s %s", a.ID, a.Title, topicStyle.Render("["+a.Topic+"]"))
		if currentID != nil && *currentID == a.ID {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		fmt.Fprintln(w, line)
		if a.Text != "" {
			fmt.Fprintf(w, "    %s\n", a.Text)
		}
	}
}

// Render writes the whole screen for state
func Render(w io.Writer, state controller.State) {
	Spinner(w, state.Spinner)
	Message(w, state.Message)
	Nav(w, state.Screen)

	switch state.Screen {
	case controller.ScreenLogin:
		fmt.Fprintln(w, headingStyle.Render("Login"))
		fmt.Fprintln(w, "Log in to see your articles.")
	case controller.ScreenArticles:
		if current, ok := state.CurrentArticle(); ok {
			fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Editing #%d %s", current.ID, current.Title)))
		}
		Articles(w, state.Articles, state.CurrentArticleID)
	}
}

// Credentials is the intent emitted by the login form
type Credentials struct {
	Username string
	Password string
}

// Forms reads form fields line by line
type Forms struct {
	in  *bufio.Reader
	out io.Writer
}

// NewForms creates a form reader over in that prompts on out
func NewForms(in io.Reader, out io.Writer) *Forms {
	return &Forms{in: bufio.NewReader(in), out: out}
}

// Line prompts once and returns the trimmed answer
func (f *Forms) Line(prompt string) (string, error) {
	line, err := f.rawLine(prompt)
	return strings.TrimSpace(line), err
}

// rawLine prompts once and strips only the line ending
func (f *Forms) rawLine(prompt string) (string, error) {
	fmt.Fprint(f.out, prompt)
	line, err := f.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// LoginForm reads a username and password
func (f *Forms) LoginForm() (Credentials, error) {
	username, err := f.Line("Username: ")
	if err != nil {
		return Credentials{}, err
	}
	password, err := f.rawLine("Password: ")
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Username: username, Password: password}, nil
}

// ArticleForm reads title, text and topic. When current is set its values
// are offered as defaults and an empty answer keeps them.
func (f *Forms) ArticleForm(current *models.Article) (models.ArticleInput, error) {
	var defaults models.ArticleInput
	heading := "Create Article"
	if current != nil {
		defaults = current.Input()
		heading = fmt.Sprintf("Edit Article #%d", current.ID)
	}
	fmt.Fprintln(f.out, headingStyle.Render(heading))

	ask := func(label, def string) (string, error) {
		prompt := label + ": "
		if def != "" {
			prompt = fmt.Sprintf("%s [%s]: ", label, def)
		}
		value, err := f.Line(prompt)
		if err != nil {
			return "", err
		}
		if value == "" {
			return def, nil
		}
		return value, nil
	}

	title, err := ask("Title", defaults.Title)
	if err != nil {
		return models.ArticleInput{}, err
	}
	text, err := ask("Text", defaults.Text)
	if err != nil {
		return models.ArticleInput{}, err
	}
	topic, err := ask("Topic ("+strings.Join(models.Topics, ", ")+")", defaults.Topic)
	if err != nil {
		return models.ArticleInput{}, err
	}
	return models.ArticleInput{Title: title, Text: text, Topic: topic}, nil
}

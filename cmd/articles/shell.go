package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/articles-app/internal/controller"
	"github.com/articles-app/internal/views"
	"github.com/spf13/cobra"
)

const shellHelp = `Commands:
  login             log in
  logout            forget the session
  list              refresh the article list
  new               create an article
  edit <id>         select an article and edit it
  cancel            drop the current selection
  delete <id>       delete an article
  articles          show the articles screen
  help              show this help
  quit              leave the shell`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := current
		ctx := cmd.Context()

		// Show the busy line as soon as a request starts.
		a.ctrl.Subscribe(func(s controller.State) {
			if s.Spinner {
				views.Spinner(cmd.ErrOrStderr(), true)
			}
		})

		fmt.Fprintln(a.out, shellHelp)
		if a.ctrl.State().Screen == controller.ScreenArticles {
			a.ctrl.GetArticles(ctx)
		}
		views.Render(a.out, a.ctrl.State())

		for {
			line, err := a.forms.Line("> ")
			if errors.Is(err, views.ErrAborted) {
				return nil
			}
			if err != nil {
				return err
			}

			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}

			switch fields[0] {
			case "quit", "exit":
				return nil
			case "help":
				fmt.Fprintln(a.out, shellHelp)
				continue
			case "login":
				creds, err := a.forms.LoginForm()
				if err != nil {
					return nil
				}
				if a.ctrl.Login(ctx, creds.Username, creds.Password) == nil {
					a.ctrl.GetArticles(ctx)
				}
			case "logout":
				a.ctrl.Logout()
			case "list":
				a.ctrl.GetArticles(ctx)
			case "articles":
				a.ctrl.Navigate(controller.ScreenArticles)
			case "new":
				in, err := a.forms.ArticleForm(nil)
				if err != nil {
					return nil
				}
				a.ctrl.PostArticle(ctx, in)
			case "edit":
				id, ok := shellID(a, fields)
				if !ok {
					continue
				}
				a.ctrl.SetCurrentArticleID(id)
				article, found := a.ctrl.CurrentArticle()
				if !found {
					a.ctrl.ClearCurrentArticleID()
					fmt.Fprintf(a.out, "No article #%d in the list; try 'list' first\n", id)
					continue
				}
				views.Render(a.out, a.ctrl.State())
				in, err := a.forms.ArticleForm(&article)
				if err != nil {
					return nil
				}
				a.ctrl.UpdateArticle(ctx, id, in)
			case "cancel":
				a.ctrl.ClearCurrentArticleID()
			case "delete":
				id, ok := shellID(a, fields)
				if !ok {
					continue
				}
				a.ctrl.DeleteArticle(ctx, id)
			default:
				fmt.Fprintf(a.out, "Unknown command %q (try 'help')\n", fields[0])
				continue
			}

			views.Render(a.out, a.ctrl.State())
		}
	},
}

func shellID(a *app, fields []string) (int, bool) {
	if len(fields) != 2 {
		fmt.Fprintf(a.out, "usage: %s <id>\n", fields[0])
		return 0, false
	}
	id, err := parseID(fields[1])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return 0, false
	}
	return id, true
}

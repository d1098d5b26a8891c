package main

import (
	"fmt"
	"strconv"

	"github.com/articles-app/internal/models"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
	articleTitle  string
	articleText   string
	articleTopic  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and remember the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, password := loginUsername, loginPassword
		if username == "" || password == "" {
			creds, err := current.forms.LoginForm()
			if err != nil {
				return err
			}
			username, password = creds.Username, creds.Password
		}
		return current.finish(current.ctrl.Login(cmd.Context(), username, password))
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current.ctrl.Logout()
		return current.finish(nil)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.finish(current.ctrl.GetArticles(cmd.Context()))
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an article",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := models.ArticleInput{Title: articleTitle, Text: articleText, Topic: articleTopic}
		if in.Title == "" && in.Text == "" && in.Topic == "" {
			var err error
			if in, err = current.forms.ArticleForm(nil); err != nil {
				return err
			}
		}
		return current.finish(current.ctrl.PostArticle(cmd.Context(), in))
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctrl := current.ctrl
		if err := ctrl.GetArticles(cmd.Context()); err != nil {
			return current.finish(err)
		}
		ctrl.SetCurrentArticleID(id)
		article, ok := ctrl.CurrentArticle()
		if !ok {
			ctrl.ClearCurrentArticleID()
			return fmt.Errorf("article %d not found", id)
		}

		in := article.Input()
		if cmd.Flags().Changed("title") {
			in.Title = articleTitle
		}
		if cmd.Flags().Changed("text") {
			in.Text = articleText
		}
		if cmd.Flags().Changed("topic") {
			in.Topic = articleTopic
		}
		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("text") && !cmd.Flags().Changed("topic") {
			if in, err = current.forms.ArticleForm(&article); err != nil {
				return err
			}
		}
		return current.finish(ctrl.UpdateArticle(cmd.Context(), id, in))
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return current.finish(current.ctrl.DeleteArticle(cmd.Context(), id))
	},
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("article id must be a positive integer, got %q", s)
	}
	return id, nil
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username (prompted when empty)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when empty)")

	for _, cmd := range []*cobra.Command{createCmd, updateCmd} {
		cmd.Flags().StringVar(&articleTitle, "title", "", "Article title")
		cmd.Flags().StringVar(&articleText, "text", "", "Article text")
		cmd.Flags().StringVar(&articleTopic, "topic", "", "Article topic (JavaScript, React, Node)")
	}
}

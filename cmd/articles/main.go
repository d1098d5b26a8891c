package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/articles-app/internal/client"
	"github.com/articles-app/internal/config"
	"github.com/articles-app/internal/controller"
	"github.com/articles-app/internal/session"
	"github.com/articles-app/internal/views"
	"github.com/articles-app/pkg/logger"
	"github.com/spf13/cobra"
)

// errReported marks failures whose message was already rendered
var errReported = errors.New("reported")

var (
	configFile  string
	apiURL      string
	sessionFile string
	debugMode   bool
)

// app is what every subcommand works with
type app struct {
	ctrl  *controller.Controller
	forms *views.Forms
	out   io.Writer
}

var current *app

var rootCmd = &cobra.Command{
	Use:           "articles",
	Short:         "Log in and manage articles on an articles API",
	Long:          `A terminal client for the articles API: log in once, then list, create, edit and delete articles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

func newApp(in io.Reader, out, errOut io.Writer) (*app, error) {
	cfg, err := config.LoadClient(configFile)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if sessionFile != "" {
		cfg.SessionFile = sessionFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := "warn"
	if debugMode {
		level = "debug"
	}
	log := logger.New(logger.Options{Out: errOut, Level: level, Format: "pretty", Service: "articles"})
	log.Debug().Str("api_url", cfg.APIURL).Str("session_file", cfg.SessionFile).Msg("Client configured")

	api := client.New(cfg.APIURL, client.WithTimeout(cfg.Timeout), client.WithLogger(log))
	ctrl := controller.New(api, session.NewFileStore(cfg.SessionFile), controller.WithLogger(log))

	return &app{
		ctrl:  ctrl,
		forms: views.NewForms(in, out),
		out:   out,
	}, nil
}

// finish renders the state and turns an operation error into errReported
func (a *app) finish(err error) error {
	views.Render(a.out, a.ctrl.State())
	if err != nil {
		return errReported
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML client config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the articles API")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", "", "Where the login token is kept")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(loginCmd, logoutCmd, listCmd, createCmd, updateCmd, deleteCmd, shellCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

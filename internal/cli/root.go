// Package cli implements the shrtnr command tree. Every command resolves
// settings (flag > stored > default), performs one contract call and
// renders the result; exit code 0 on success, 1 on any failure.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"shrtnr/internal/client"
	"shrtnr/internal/config"
)

const (
	exitOK    = 0
	exitError = 1
)

// app carries per-invocation state shared by all commands.
type app struct {
	store config.Provider
	st    styles

	// Root-level overrides, highest precedence.
	apiURL string
	apiKey string
}

func (a *app) client() *client.Client {
	stored, _ := a.store.Load()
	cfg := config.Resolve(config.Config{APIURL: a.apiURL, APIKey: a.apiKey}, stored)
	return client.New(cfg.APIURL, cfg.APIKey)
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string) int {
	_ = godotenv.Load()

	a := &app{
		store: config.NewFileStore(config.DefaultPath()),
		st:    defaultStyles(),
	}

	root := a.rootCmd()
	root.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, a.renderError(err))
		return exitError
	}
	return exitOK
}

func (a *app) rootCmd() *cobra.Command {
	var custom string
	var noCopy bool

	root := &cobra.Command{
		Use:           "shrtnr [url]",
		Short:         "CLI for SHRTNR - the badass URL shortener",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.st.Accent.Render(logo))
				return cmd.Help()
			}
			return a.runShorten(cmd, args[0], custom, noCopy)
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api-url", a.apiURL, "Override the API base URL for this invocation")
	root.PersistentFlags().StringVarP(&a.apiKey, "api-key", "k", a.apiKey, "API key for authentication")
	root.Flags().StringVarP(&custom, "custom", "c", "", "Custom short code")
	root.Flags().BoolVar(&noCopy, "no-copy", false, "Don't copy to clipboard")

	root.AddCommand(
		a.configCmd(),
		a.statsCmd(),
		a.listCmd(),
		a.trendingCmd(),
		a.deleteCmd(),
		a.qrCmd(),
		a.keysCmd(),
	)
	return root
}

// renderError turns adapter failures into the user-facing form: API
// details verbatim, connectivity failures with the configured base URL and
// a hint, decode failures as a generic message.
func (a *app) renderError(err error) string {
	if ce, ok := client.AsError(err); ok {
		switch ce.Kind {
		case client.ErrNetwork:
			return a.st.Danger.Render("Failed to connect to SHRTNR API") + "\n" +
				a.st.Muted.Render("API URL: "+ce.BaseURL) + "\n" +
				a.st.Muted.Render("Make sure the server is running.")
		case client.ErrAPI:
			return a.st.Danger.Render(ce.Error())
		case client.ErrMalformed:
			return a.st.Danger.Render("Unexpected response from the SHRTNR API")
		}
	}
	return a.st.Danger.Render(err.Error())
}

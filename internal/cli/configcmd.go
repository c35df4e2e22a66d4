package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shrtnr/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	var setURL string
	var setKey string
	var show bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configure the SHRTNR CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			stored, _ := a.store.Load()

			if show || (setURL == "" && setKey == "") {
				effective := config.Resolve(config.Config{}, stored)
				fmt.Fprintln(out, a.st.Muted.Render("Current configuration:"))
				fmt.Fprintln(out, a.st.Muted.Render("API URL: ")+a.st.Accent.Render(effective.APIURL))
				key := "Not set"
				if stored.APIKey != "" {
					tail := stored.APIKey
					if len(tail) > 4 {
						tail = tail[len(tail)-4:]
					}
					key = "***" + tail
				}
				fmt.Fprintln(out, a.st.Muted.Render("API Key: ")+a.st.Accent.Render(key))
				return nil
			}

			if setURL != "" {
				stored.APIURL = setURL
			}
			if setKey != "" {
				stored.APIKey = setKey
			}
			if err := a.store.Save(stored); err != nil {
				return err
			}
			fmt.Fprintln(out, a.st.Success.Render("Configuration saved!"))
			return nil
		},
	}

	cmd.Flags().StringVar(&setURL, "set-api-url", "", "Set and persist the API URL")
	cmd.Flags().StringVar(&setKey, "set-api-key", "", "Set and persist the default API key")
	cmd.Flags().BoolVar(&show, "show", false, "Show current configuration")
	return cmd
}

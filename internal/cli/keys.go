package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *app) keysCmd() *cobra.Command {
	keys := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys",
	}

	keys.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a new API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.client().CreateKey(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.st.Success.Render("API key created!"))
			fmt.Fprintln(out, a.st.Muted.Render("Name: ")+key.Name)
			fmt.Fprintln(out, a.st.Muted.Render("Key:  ")+a.st.AccentBold.Render(key.Key))
			fmt.Fprintln(out, a.st.Warn.Render("Store it now; it is shown only once."))
			return nil
		},
	})

	keys.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List API keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client().ListKeys(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, a.st.Muted.Render("No API keys."))
				return nil
			}
			for _, k := range list {
				status := a.st.Success.Render("active")
				if !k.IsActive {
					status = a.st.Muted.Render("revoked")
				}
				masked := k.Key
				if len(masked) > 4 {
					masked = "***" + masked[len(masked)-4:]
				}
				fmt.Fprintf(out, "%d  %s  %s  %s\n", k.ID, k.Name, a.st.Accent.Render(masked), status)
			}
			return nil
		},
	})

	keys.AddCommand(&cobra.Command{
		Use:   "revoke <id>",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("key id must be a number: %q", args[0])
			}
			if err := a.client().RevokeKey(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.st.Success.Render("API key revoked"))
			return nil
		},
	})

	return keys
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shrtnr/internal/api"
)

func (a *app) listCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your shortened URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := a.client().ListURLs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.st.Success.Render(fmt.Sprintf("Found %d URLs", len(links))))
			fmt.Fprintln(out)
			if len(links) == 0 {
				fmt.Fprintln(out, a.st.Muted.Render("No URLs found. Create one with: shrtnr <url>"))
				return nil
			}
			a.printLinks(cmd, links)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of URLs to show")
	return cmd
}

func (a *app) trendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Show links trending by recent click velocity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := a.client().Trending(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.st.AccentBold.Render("Trending"))
			if len(links) == 0 {
				fmt.Fprintln(out, a.st.Muted.Render("No trending links yet. Be the first!"))
				return nil
			}
			a.printLinks(cmd, links)
			return nil
		},
	}
}

func (a *app) printLinks(cmd *cobra.Command, links []api.ShortLink) {
	out := cmd.OutOrStdout()
	for i, l := range links {
		orig := l.OriginalURL
		if len(orig) > 40 {
			orig = orig[:40] + "..."
		}
		fmt.Fprintln(out,
			a.st.Muted.Render(fmt.Sprintf("%d. ", i+1))+
				a.st.Accent.Render("/"+l.ShortCode)+
				a.st.Muted.Render(" → ")+
				orig+
				a.st.Muted.Render(fmt.Sprintf(" (%d clicks)", l.ClickCount)))
	}
}

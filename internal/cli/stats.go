package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [code]",
		Short: "Get stats for a short URL, or global stats with no code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.runURLStats(cmd, args[0])
			}
			return a.runGlobalStats(cmd)
		},
	}
}

func (a *app) runURLStats(cmd *cobra.Command, code string) error {
	st, err := a.client().URLStats(cmd.Context(), code)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.st.Success.Render("Stats retrieved!"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, a.st.Muted.Render("Short Code: ")+a.st.Accent.Render("/"+st.ShortCode))
	fmt.Fprintln(out, a.st.Muted.Render("Original:   ")+st.OriginalURL)
	fmt.Fprintln(out, a.st.Muted.Render("Clicks:     ")+a.st.Warn.Render(fmt.Sprintf("%d", st.ClickCount)))
	fmt.Fprintln(out, a.st.Muted.Render("Created:    ")+st.CreatedAt.Format("2006-01-02"))

	if len(st.TopReferrers) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, a.st.Muted.Render("Top Referrers:"))
		for i, ref := range st.TopReferrers {
			fmt.Fprintln(out, a.st.Muted.Render(fmt.Sprintf("  %d. ", i+1))+ref.Referrer+a.st.Muted.Render(fmt.Sprintf(" (%d)", ref.Count)))
		}
	}
	return nil
}

func (a *app) runGlobalStats(cmd *cobra.Command) error {
	stats, err := a.client().GlobalStats(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.st.AccentBold.Render("SHRTNR Global Stats"))
	fmt.Fprintln(out, a.st.Muted.Render(strings.Repeat("─", 30)))
	fmt.Fprintln(out, a.st.Muted.Render("Total URLs:    ")+a.st.Warn.Render(fmt.Sprintf("%d", stats.TotalURLs)))
	fmt.Fprintln(out, a.st.Muted.Render("Total Clicks:  ")+a.st.Warn.Render(fmt.Sprintf("%d", stats.TotalClicks)))
	fmt.Fprintln(out, a.st.Muted.Render("URLs Today:    ")+a.st.Success.Render(fmt.Sprintf("%d", stats.URLsToday)))
	fmt.Fprintln(out, a.st.Muted.Render("Clicks Today:  ")+a.st.Success.Render(fmt.Sprintf("%d", stats.ClicksToday)))
	return nil
}

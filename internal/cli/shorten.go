package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shrtnr/internal/api"
	"shrtnr/internal/clipboard"
)

func (a *app) runShorten(cmd *cobra.Command, rawURL string, custom string, noCopy bool) error {
	url, ok := api.CleanURL(rawURL)
	if !ok {
		return errors.New("url must not be empty")
	}

	resp, err := a.client().Shorten(cmd.Context(), api.ShortenRequest{
		URL:        url,
		CustomCode: api.SanitizeCustomCode(custom),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.st.Success.Render("URL shortened!"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, a.st.Muted.Render("Original:  ")+url)
	fmt.Fprintln(out, a.st.Muted.Render("Short URL: ")+a.st.AccentBold.Render(resp.ShortURL))
	fmt.Fprintln(out)

	if !noCopy {
		// The CLI has direct clipboard authority; no bridge involved.
		if err := clipboard.Copy(resp.ShortURL); err != nil {
			fmt.Fprintln(out, a.st.Warn.Render("Could not copy to clipboard: "+err.Error()))
		} else {
			fmt.Fprintln(out, a.st.Muted.Render("Copied to clipboard!"))
		}
	}
	return nil
}

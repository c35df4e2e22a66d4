package cli

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete a short URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client().DeleteURL(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.st.Success.Render("Deleted /"+args[0]))
			return nil
		},
	}
}

func (a *app) qrCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "qr <code>",
		Short: "Get the QR code for a short URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client().QRCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), resp.QRCode)
				return nil
			}
			img, err := decodeDataURI(resp.QRCode)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, img, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.st.Success.Render("QR code written to "+outPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the decoded PNG to a file instead of printing the data URI")
	return cmd
}

// decodeDataURI extracts the payload of a data:...;base64,... URI.
func decodeDataURI(uri string) ([]byte, error) {
	_, rest, found := strings.Cut(uri, ",")
	if !found || !strings.Contains(uri, ";base64") {
		return nil, errors.New("service returned an unexpected QR code format")
	}
	return base64.StdEncoding.DecodeString(rest)
}

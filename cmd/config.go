package cmd

import (
	"fmt"

	"github.com/bnema/mastodon-list-manager/internal/adapters/credentials"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the credential file",
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := credentials.Render(app.creds, format)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	show.Flags().StringVar(&format, "format", credentials.FormatTOML, "output format: toml or yaml")

	cmd.AddCommand(show)
	return cmd
}

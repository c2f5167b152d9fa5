package cmd

import (
	"os"

	"github.com/bnema/mastodon-list-manager/internal/adapters/credentials"
	"github.com/bnema/mastodon-list-manager/internal/version"
	"github.com/spf13/cobra"
)

const skipWiringAnnotation = "mlm/skip-wiring"

type rootOptions struct {
	configPath string
	debug      bool
}

func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		debug, _ := root.PersistentFlags().GetBool("debug")
		writeError(root.ErrOrStderr(), err, debug)
	}
	return err
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	app := newApp()

	rootCmd := &cobra.Command{
		Use:   "mlm",
		Short: "Mastodon list manager: export and import follows and lists as CSV",
		Long: "mlm (Mastodon list manager) exports followers, following and lists of a Mastodon account to CSV, " +
			"and follows accounts or fills lists from CSV files.",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipsWiring(cmd) {
				return nil
			}
			return app.wire(*opts, cmd.ErrOrStderr())
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", envOrDefault("MLM_CONFIG", credentials.DefaultPath), "path to the credential file (env MLM_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log every API request and print full error chains")

	rootCmd.AddCommand(
		newVersionCmd(),
		newWhoamiCmd(app),
		newFollowCmd(app),
		newUnfollowCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}

// skipsWiring reports commands that never read the config file. cobra's
// built-in help command runs the persistent hooks like any other.
func skipsWiring(cmd *cobra.Command) bool {
	return cmd.Annotations[skipWiringAnnotation] == "true" || cmd.Name() == "help"
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

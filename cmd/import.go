package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/mastodon-list-manager/internal/adapters/csvcodec"
	"github.com/bnema/mastodon-list-manager/internal/adapters/render"
	"github.com/bnema/mastodon-list-manager/internal/application"
	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/spf13/cobra"
)

func newImportCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Follow accounts or fill a list from a CSV file",
	}

	cmd.AddCommand(
		newImportFollowingCmd(app),
		newImportListCmd(app),
	)

	return cmd
}

func newImportFollowingCmd(app *app) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "following FILE",
		Short: "Follow every account in FILE (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readImportFile(cmd, args[0])
			if err != nil {
				return err
			}

			return runImport(cmd, app, "following", "Following accounts...", func(ctx context.Context) (domain.ImportReport, error) {
				return app.service.ImportFollowing(ctx, application.ImportFollowingCommand{Rows: rows, Replace: replace})
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "unfollow every account you follow first")

	return cmd
}

func newImportListCmd(app *app) *cobra.Command {
	var replace, create bool

	cmd := &cobra.Command{
		Use:   "list FILE LIST_NAME",
		Short: "Add every account in FILE to an existing list (--create to make a new one)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readImportFile(cmd, args[0])
			if err != nil {
				return err
			}

			name := args[1]
			return runImport(cmd, app, fmt.Sprintf("list %q", name), fmt.Sprintf("Filling list %q...", name), func(ctx context.Context) (domain.ImportReport, error) {
				return app.service.ImportList(ctx, application.ImportListCommand{List: name, Rows: rows, Replace: replace, Create: create})
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "remove every current member of the list first")
	cmd.Flags().BoolVar(&create, "create", false, "create the list when no list has this title")

	return cmd
}

func readImportFile(cmd *cobra.Command, path string) ([]domain.ImportRow, error) {
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open import file: %w", err)
		}
		defer func() { _ = file.Close() }()
		in = file
	}

	rows, err := csvcodec.Read(in)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// runImport prints the report whenever the import got to process rows, so a
// partial failure still shows what was applied.
func runImport(cmd *cobra.Command, app *app, target, label string, run func(context.Context) (domain.ImportReport, error)) error {
	var report domain.ImportReport
	err := runWithProgress(cmd.Context(), cmd.ErrOrStderr(), app.interactive(cmd.ErrOrStderr()), label, func(ctx context.Context, _ progressFunc) error {
		var err error
		report, err = run(ctx)
		return err
	})
	if err != nil && !errors.Is(err, domain.ErrImportIncomplete) {
		return err
	}

	rendered, renderErr := render.ImportReport(target, report)
	if renderErr != nil {
		return joinLine(err, fmt.Errorf("render import report: %w", renderErr))
	}
	if _, writeErr := fmt.Fprintln(cmd.OutOrStdout(), rendered); writeErr != nil {
		return joinLine(err, fmt.Errorf("print import report: %w", writeErr))
	}

	return err
}

// joinLine combines an import error with a reporting error on one line.
func joinLine(err, reportErr error) error {
	if err == nil {
		return reportErr
	}
	return fmt.Errorf("%w; %v", err, reportErr)
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/mastodon-list-manager/internal/adapters/csvcodec"
	"github.com/bnema/mastodon-list-manager/internal/adapters/render"
	"github.com/bnema/mastodon-list-manager/internal/application"
	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/bnema/mastodon-list-manager/internal/ports"
	"github.com/spf13/cobra"
)

type exportFunc func(ctx context.Context, sink ports.AccountSink) (application.ExportResult, error)

func newExportCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export followers, following or lists as CSV",
	}

	cmd.AddCommand(
		newExportFollowersCmd(app),
		newExportFollowingCmd(app),
		newExportListCmd(app),
		newExportAllListsCmd(app),
	)

	return cmd
}

func newExportFollowersCmd(app *app) *cobra.Command {
	var account, file string

	cmd := &cobra.Command{
		Use:   "followers",
		Short: "Export the accounts following you, or following --account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeExport(cmd, app, file, "Exporting followers...", func(ctx context.Context, sink ports.AccountSink) (application.ExportResult, error) {
				return app.service.ExportFollowers(ctx, application.ExportFollowsCommand{Account: account}, sink)
			})
		},
	}

	cmd.Flags().StringVarP(&account, "account", "a", "", "export the followers of this account (user@host) instead")
	cmd.Flags().StringVarP(&file, "file", "f", "", "write CSV to this file instead of stdout")

	return cmd
}

func newExportFollowingCmd(app *app) *cobra.Command {
	var account, file string
	var unlisted bool

	cmd := &cobra.Command{
		Use:   "following",
		Short: "Export the accounts you follow, or that --account follows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeExport(cmd, app, file, "Exporting following...", func(ctx context.Context, sink ports.AccountSink) (application.ExportResult, error) {
				if unlisted {
					return app.service.ExportUnlisted(ctx, sink)
				}
				return app.service.ExportFollowing(ctx, application.ExportFollowsCommand{Account: account}, sink)
			})
		},
	}

	cmd.Flags().StringVarP(&account, "account", "a", "", "export the accounts this account (user@host) follows instead")
	cmd.Flags().BoolVar(&unlisted, "unlisted", false, "only export followed accounts that are on none of your lists")
	cmd.Flags().StringVarP(&file, "file", "f", "", "write CSV to this file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("account", "unlisted")

	return cmd
}

func newExportListCmd(app *app) *cobra.Command {
	var name, file string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Export the members of a list, or show all lists when --name is omitted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return printListSummaries(cmd, app)
			}

			return writeExport(cmd, app, file, fmt.Sprintf("Exporting list %q...", name), func(ctx context.Context, sink ports.AccountSink) (application.ExportResult, error) {
				return app.service.ExportList(ctx, name, sink)
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "title of the list to export")
	cmd.Flags().StringVarP(&file, "file", "f", "", "write CSV to this file instead of stdout")

	return cmd
}

func printListSummaries(cmd *cobra.Command, app *app) error {
	var summaries []application.ListSummary
	err := runWithProgress(cmd.Context(), cmd.ErrOrStderr(), app.interactive(cmd.ErrOrStderr()), "Counting list members...", func(ctx context.Context, _ progressFunc) error {
		var err error
		summaries, err = app.service.ListSummaries(ctx)
		return err
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.ListsTable(summaries))
	return err
}

func newExportAllListsCmd(app *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "all-lists",
		Short: "Export every list to <dir>/<title>.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}

			names := listFileNames{}
			var results []application.ExportResult
			var paths []string
			err := runWithProgress(cmd.Context(), cmd.ErrOrStderr(), app.interactive(cmd.ErrOrStderr()), "Exporting lists...", func(ctx context.Context, progress progressFunc) error {
				var err error
				results, err = app.service.ExportAllLists(ctx, func(list domain.List, fill func(ports.AccountSink) error) error {
					path := filepath.Join(dir, names.next(list)+".csv")
					paths = append(paths, path)
					return csvcodec.WriteFileAtomic(path, func(out io.Writer) error {
						return writeCSV(out, progress, fill)
					})
				})
				return err
			})
			if err != nil {
				return err
			}

			for i, result := range results {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), render.ExportSummary(result.Rows, paths[i])); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write the CSV files to")

	return cmd
}

// listFileNames keeps file names unique when two titles sanitise to the same
// name.
type listFileNames map[string]struct{}

func (n listFileNames) next(list domain.List) string {
	name := list.FileName()
	if _, taken := n[name]; taken {
		name = name + "-" + string(list.ID)
	}
	n[name] = struct{}{}
	return name
}

// writeExport streams CSV to stdout, or to file through an atomic rename so an
// aborted export never leaves a partial file behind.
func writeExport(cmd *cobra.Command, app *app, file, label string, export exportFunc) error {
	if file == "" || file == "-" {
		return writeCSV(cmd.OutOrStdout(), nil, func(sink ports.AccountSink) error {
			_, err := export(cmd.Context(), sink)
			return err
		})
	}

	var result application.ExportResult
	err := runWithProgress(cmd.Context(), cmd.ErrOrStderr(), app.interactive(cmd.ErrOrStderr()), label, func(ctx context.Context, progress progressFunc) error {
		return csvcodec.WriteFileAtomic(file, func(out io.Writer) error {
			return writeCSV(out, progress, func(sink ports.AccountSink) error {
				var err error
				result, err = export(ctx, sink)
				return err
			})
		})
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.ExportSummary(result.Rows, file))
	return err
}

func writeCSV(out io.Writer, progress progressFunc, fill func(ports.AccountSink) error) error {
	writer := csvcodec.NewWriter(out)
	if err := writer.WriteHeader(); err != nil {
		return err
	}

	var sink ports.AccountSink = writer
	if progress != nil {
		sink = progressSink{writer: writer, progress: progress}
	}
	if err := fill(sink); err != nil {
		return err
	}

	return writer.Flush()
}

type progressSink struct {
	writer   *csvcodec.Writer
	progress progressFunc
}

func (s progressSink) Write(accounts ...domain.Account) error {
	if err := s.writer.Write(accounts...); err != nil {
		return err
	}
	s.progress(s.writer.Rows())
	return nil
}

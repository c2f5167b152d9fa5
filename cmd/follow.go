package cmd

import (
	"fmt"

	"github.com/bnema/mastodon-list-manager/internal/application"
	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/spf13/cobra"
)

func newFollowCmd(app *app) *cobra.Command {
	opts := domain.DefaultFollowOptions()

	cmd := &cobra.Command{
		Use:   "follow ACCOUNT",
		Short: "Follow an account (user@host)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.service.Follow(cmd.Context(), application.FollowCommand{Account: args[0], Options: opts})
			if err != nil {
				return err
			}

			if result.Pending() {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Follow request sent to %s (awaiting approval)\n", result.Account.Handle)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Followed %s\n", result.Account.Handle)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Boosts, "boosts", opts.Boosts, "show boosts from the account in the home timeline")
	cmd.Flags().BoolVar(&opts.Notify, "notify", opts.Notify, "notify when the account posts")

	return cmd
}

func newUnfollowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow ACCOUNT",
		Short: "Unfollow an account (user@host)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.service.Unfollow(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Unfollowed %s\n", result.Account.Handle)
			return err
		},
	}
}

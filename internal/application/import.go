package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mastodon-list-manager/internal/domain"
)

// removeBatchSize bounds the account_ids[] sent in one list removal.
const removeBatchSize = 50

// ImportFollowing follows every account in cmd.Rows in file order, one
// follow request per distinct handle. Per-row failures are collected in the
// report; the returned error wraps domain.ErrImportIncomplete when any row
// failed.
func (s *Service) ImportFollowing(ctx context.Context, cmd ImportFollowingCommand) (domain.ImportReport, error) {
	report := domain.ImportReport{Rows: len(cmd.Rows)}

	if cmd.Replace {
		removed, err := s.unfollowAll(ctx)
		report.Removed = removed
		if err != nil {
			return report, err
		}
	}

	seen := map[string]struct{}{}
	for _, row := range cmd.Rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		account, ok, err := s.resolveRow(ctx, row, seen, &report)
		if err != nil {
			return report, err
		}
		if !ok {
			continue
		}

		rel, err := s.api.Follow(ctx, account.ID, row.Options)
		if err != nil {
			if isFatal(err) {
				return report, err
			}
			report.Fail(row, err)
			continue
		}
		if rel.Pending() {
			report.Pending = append(report.Pending, account.Handle)
		}
		report.Applied++
	}

	return report, report.Err()
}

// ImportList adds every account in cmd.Rows to the named list. A missing list
// is only created when cmd.Create is set. Accounts that are not followed are
// followed first; a follow awaiting approval fails the row with
// domain.ErrFollowPending.
func (s *Service) ImportList(ctx context.Context, cmd ImportListCommand) (domain.ImportReport, error) {
	report := domain.ImportReport{Rows: len(cmd.Rows)}

	list, created, err := s.importTarget(ctx, cmd)
	if err != nil {
		return report, err
	}

	members := map[domain.AccountID]struct{}{}
	if !created {
		existing, err := collect(ctx, s.api.ListAccounts(list.ID))
		if err != nil {
			return report, fmt.Errorf("read list %q: %w", list.Title, err)
		}
		for _, member := range existing {
			members[member.ID] = struct{}{}
		}

		if cmd.Replace && len(existing) > 0 {
			removed, err := s.emptyList(ctx, list, existing)
			report.Removed = removed
			if err != nil {
				return report, err
			}
			members = map[domain.AccountID]struct{}{}
		}
	}

	seen := map[string]struct{}{}
	for _, row := range cmd.Rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		account, ok, err := s.resolveRow(ctx, row, seen, &report)
		if err != nil {
			return report, err
		}
		if !ok {
			continue
		}
		if _, ok := members[account.ID]; ok {
			report.Skipped++
			continue
		}

		if err := s.addToList(ctx, list, account, row.Options); err != nil {
			if isFatal(err) {
				return report, err
			}
			report.Fail(row, err)
			continue
		}
		members[account.ID] = struct{}{}
		report.Applied++
	}

	return report, report.Err()
}

func (s *Service) importTarget(ctx context.Context, cmd ImportListCommand) (domain.List, bool, error) {
	if cmd.Create {
		return s.findOrCreateList(ctx, cmd.List)
	}

	list, err := s.findList(ctx, cmd.List)
	if err != nil {
		return domain.List{}, false, err
	}
	return list, false, nil
}

// addToList makes sure the account is followed, then adds it to the list.
func (s *Service) addToList(ctx context.Context, list domain.List, account domain.Account, opts domain.FollowOptions) error {
	rel, err := s.api.Relationship(ctx, account.ID)
	if err != nil {
		return err
	}

	if !rel.Following {
		if rel.Pending() {
			return pendingError(account)
		}
		rel, err = s.api.Follow(ctx, account.ID, opts)
		if err != nil {
			return err
		}
		if rel.Pending() {
			return pendingError(account)
		}
		if !rel.Following {
			return fmt.Errorf("follow of %s was not applied", account.Handle)
		}
		s.logger.Info("followed before adding to list", "handle", account.Handle.String(), "list", list.Title)
	}

	return s.api.AddToList(ctx, list.ID, account.ID)
}

func pendingError(account domain.Account) error {
	return fmt.Errorf("%w: %s has not approved the follow request yet; import again once it is accepted", domain.ErrFollowPending, account.Handle)
}

// resolveRow turns a row into an account. ok is false when the row was
// recorded as a duplicate or a failure; err is only set for failures that
// should stop the whole import.
func (s *Service) resolveRow(ctx context.Context, row domain.ImportRow, seen map[string]struct{}, report *domain.ImportReport) (domain.Account, bool, error) {
	if row.Handle == "" {
		report.Fail(row, errors.New("missing handle"))
		return domain.Account{}, false, nil
	}

	handle, err := s.parseHandle(ctx, row.Handle)
	if err != nil {
		if isFatal(err) {
			return domain.Account{}, false, err
		}
		report.Fail(row, err)
		return domain.Account{}, false, nil
	}

	if _, dup := seen[handle.Key()]; dup {
		s.logger.Debug("skipping duplicate handle", "line", row.Line, "handle", handle.String())
		report.Duplicates++
		return domain.Account{}, false, nil
	}
	seen[handle.Key()] = struct{}{}

	account, err := s.api.LookupAccount(ctx, handle)
	if err != nil {
		if isFatal(err) {
			return domain.Account{}, false, err
		}
		report.Fail(row, err)
		return domain.Account{}, false, nil
	}

	return account, true, nil
}

func (s *Service) unfollowAll(ctx context.Context) (int, error) {
	me, err := s.Whoami(ctx)
	if err != nil {
		return 0, err
	}
	following, err := collect(ctx, s.api.Following(me.ID))
	if err != nil {
		return 0, fmt.Errorf("read following: %w", err)
	}

	removed := 0
	for _, account := range following {
		if _, err := s.api.Unfollow(ctx, account.ID); err != nil {
			return removed, fmt.Errorf("replace following: unfollow %s: %w", account.Handle, err)
		}
		removed++
	}

	s.logger.Info("cleared following", "count", removed)
	return removed, nil
}

func (s *Service) emptyList(ctx context.Context, list domain.List, members []domain.Account) (int, error) {
	removed := 0
	for start := 0; start < len(members); start += removeBatchSize {
		end := min(start+removeBatchSize, len(members))
		ids := make([]domain.AccountID, 0, end-start)
		for _, member := range members[start:end] {
			ids = append(ids, member.ID)
		}
		if err := s.api.RemoveFromList(ctx, list.ID, ids...); err != nil {
			return removed, fmt.Errorf("replace list %q: %w", list.Title, err)
		}
		removed += len(ids)
	}

	s.logger.Info("cleared list", "title", list.Title, "count", removed)
	return removed, nil
}

// isFatal reports errors that would fail every remaining row the same way.
func isFatal(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrRateLimited) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

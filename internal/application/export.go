package application

import (
	"context"
	"fmt"

	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/bnema/mastodon-list-manager/internal/ports"
)

// ExportFollowers streams the followers of the signed-in user, or of
// cmd.Account when set, to sink in server order.
func (s *Service) ExportFollowers(ctx context.Context, cmd ExportFollowsCommand, sink ports.AccountSink) (ExportResult, error) {
	return s.exportFollows(ctx, cmd, sink, ports.AccountDirectory.Followers)
}

func (s *Service) ExportFollowing(ctx context.Context, cmd ExportFollowsCommand, sink ports.AccountSink) (ExportResult, error) {
	return s.exportFollows(ctx, cmd, sink, ports.AccountDirectory.Following)
}

func (s *Service) exportFollows(ctx context.Context, cmd ExportFollowsCommand, sink ports.AccountSink, collection func(ports.AccountDirectory, domain.AccountID) ports.AccountPager) (ExportResult, error) {
	home, err := s.Home(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	subject, directory, err := s.subject(ctx, cmd.Account)
	if err != nil {
		return ExportResult{}, err
	}

	rows, err := drain(ctx, collection(directory, subject.ID), home, sink)
	if err != nil {
		return ExportResult{Subject: subject.Handle, Rows: rows}, fmt.Errorf("export %s: %w", subject.Handle, err)
	}

	return ExportResult{Subject: subject.Handle, Rows: rows}, nil
}

// subject resolves whose collection to read. Accounts on other instances are
// read anonymously from their own server.
func (s *Service) subject(ctx context.Context, raw string) (domain.Account, ports.AccountDirectory, error) {
	if raw == "" {
		me, err := s.Whoami(ctx)
		if err != nil {
			return domain.Account{}, nil, err
		}
		return me, s.api, nil
	}

	handle, err := s.parseHandle(ctx, raw)
	if err != nil {
		return domain.Account{}, nil, err
	}
	directory, err := s.directoryFor(ctx, handle)
	if err != nil {
		return domain.Account{}, nil, err
	}
	account, err := directory.LookupAccount(ctx, handle)
	if err != nil {
		return domain.Account{}, nil, err
	}

	return account.Localize(handle.Host()), directory, nil
}

// ExportUnlisted streams the followed accounts that belong to none of the
// user's lists.
func (s *Service) ExportUnlisted(ctx context.Context, sink ports.AccountSink) (ExportResult, error) {
	me, err := s.Whoami(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	lists, err := s.Lists(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	listed := map[domain.AccountID]struct{}{}
	for _, list := range lists {
		members, err := collect(ctx, s.api.ListAccounts(list.ID))
		if err != nil {
			return ExportResult{}, fmt.Errorf("read list %q: %w", list.Title, err)
		}
		for _, member := range members {
			listed[member.ID] = struct{}{}
		}
	}

	counter := &countingSink{next: sink}
	filtered := sinkFunc(func(accounts ...domain.Account) error {
		keep := make([]domain.Account, 0, len(accounts))
		for _, account := range accounts {
			if _, ok := listed[account.ID]; !ok {
				keep = append(keep, account)
			}
		}
		if len(keep) == 0 {
			return nil
		}
		return counter.Write(keep...)
	})

	if _, err := drain(ctx, s.api.Following(me.ID), me.Handle.Host(), filtered); err != nil {
		return ExportResult{Subject: me.Handle, Rows: counter.rows}, fmt.Errorf("export unlisted following: %w", err)
	}

	return ExportResult{Subject: me.Handle, Rows: counter.rows}, nil
}

// ExportList streams the members of the named list. A missing list is
// reported, never created.
func (s *Service) ExportList(ctx context.Context, name string, sink ports.AccountSink) (ExportResult, error) {
	list, err := s.findList(ctx, name)
	if err != nil {
		return ExportResult{}, err
	}

	return s.exportList(ctx, list, sink)
}

func (s *Service) exportList(ctx context.Context, list domain.List, sink ports.AccountSink) (ExportResult, error) {
	home, err := s.Home(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	rows, err := drain(ctx, s.api.ListAccounts(list.ID), home, sink)
	if err != nil {
		return ExportResult{List: list, Rows: rows}, fmt.Errorf("export list %q: %w", list.Title, err)
	}

	return ExportResult{List: list, Rows: rows}, nil
}

// ExportAllLists writes every list through export, one destination per list,
// stopping at the first failure.
func (s *Service) ExportAllLists(ctx context.Context, export ListExporter) ([]ExportResult, error) {
	lists, err := s.Lists(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]ExportResult, 0, len(lists))
	for _, list := range lists {
		var result ExportResult
		err := export(list, func(sink ports.AccountSink) error {
			var exportErr error
			result, exportErr = s.exportList(ctx, list, sink)
			return exportErr
		})
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// ListSummaries counts the members of every list.
func (s *Service) ListSummaries(ctx context.Context) ([]ListSummary, error) {
	lists, err := s.Lists(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ListSummary, 0, len(lists))
	for _, list := range lists {
		counter := &countingSink{}
		if _, err := drain(ctx, s.api.ListAccounts(list.ID), "", counter); err != nil {
			return nil, fmt.Errorf("count list %q: %w", list.Title, err)
		}
		summaries = append(summaries, ListSummary{List: list, Members: counter.rows})
	}

	return summaries, nil
}

// drain copies every page of pager into sink and returns the number of rows
// written. Accounts are localized against home.
func drain(ctx context.Context, pager ports.AccountPager, home string, sink ports.AccountSink) (int, error) {
	rows := 0
	for pager.Next(ctx) {
		page := pager.Accounts()
		localized := make([]domain.Account, 0, len(page))
		for _, account := range page {
			localized = append(localized, account.Localize(home))
		}
		if len(localized) == 0 {
			continue
		}
		if err := sink.Write(localized...); err != nil {
			return rows, fmt.Errorf("write accounts: %w", err)
		}
		rows += len(localized)
	}
	if err := pager.Err(); err != nil {
		return rows, err
	}

	return rows, nil
}

func collect(ctx context.Context, pager ports.AccountPager) ([]domain.Account, error) {
	var accounts []domain.Account
	for pager.Next(ctx) {
		accounts = append(accounts, pager.Accounts()...)
	}
	if err := pager.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

type sinkFunc func(accounts ...domain.Account) error

func (f sinkFunc) Write(accounts ...domain.Account) error {
	return f(accounts...)
}

type countingSink struct {
	next ports.AccountSink
	rows int
}

func (c *countingSink) Write(accounts ...domain.Account) error {
	if c.next != nil {
		if err := c.next.Write(accounts...); err != nil {
			return err
		}
	}
	c.rows += len(accounts)
	return nil
}

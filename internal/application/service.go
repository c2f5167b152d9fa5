package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/bnema/mastodon-list-manager/internal/ports"
)

// ErrRemoteUnavailable is returned when a command names an account on another
// instance but no directory factory was configured.
var ErrRemoteUnavailable = errors.New("remote instances are not reachable from this command")

// Service runs one command invocation against the signed-in account. It
// memoises the authenticated account and the owned lists, so a Service must
// not outlive the invocation that created it.
type Service struct {
	api    ports.MastodonAPI
	remote ports.DirectoryFactory
	logger *slog.Logger

	me          *domain.Account
	lists       []domain.List
	listsLoaded bool
}

func NewService(api ports.MastodonAPI, remote ports.DirectoryFactory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{
		api:    api,
		remote: remote,
		logger: logger,
	}
}

// Whoami returns the authenticated account with a fully-qualified handle.
func (s *Service) Whoami(ctx context.Context) (domain.Account, error) {
	if s.me != nil {
		return *s.me, nil
	}

	me, err := s.api.VerifyCredentials(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	me = me.Localize(me.Host())
	s.me = &me

	s.logger.Debug("authenticated", "handle", me.Handle.String())
	return me, nil
}

// Home is the host of the instance the user is signed in to.
func (s *Service) Home(ctx context.Context) (string, error) {
	me, err := s.Whoami(ctx)
	if err != nil {
		return "", err
	}
	return me.Handle.Host(), nil
}

// Lists returns the owned lists. The server is asked once per Service.
func (s *Service) Lists(ctx context.Context) ([]domain.List, error) {
	if s.listsLoaded {
		return s.lists, nil
	}

	lists, err := s.api.Lists(ctx)
	if err != nil {
		return nil, err
	}
	s.lists = lists
	s.listsLoaded = true

	s.logger.Debug("loaded lists", "count", len(lists))
	return lists, nil
}

func (s *Service) findList(ctx context.Context, name string) (domain.List, error) {
	if strings.TrimSpace(name) == "" {
		return domain.List{}, fmt.Errorf("%w: empty list name", domain.ErrListNotFound)
	}

	lists, err := s.Lists(ctx)
	if err != nil {
		return domain.List{}, err
	}

	list, ok := domain.FindList(lists, name)
	if !ok {
		return domain.List{}, fmt.Errorf("%w: %q", domain.ErrListNotFound, strings.TrimSpace(name))
	}
	return list, nil
}

func (s *Service) findOrCreateList(ctx context.Context, name string) (domain.List, bool, error) {
	list, err := s.findList(ctx, name)
	if err == nil {
		return list, false, nil
	}
	if !errors.Is(err, domain.ErrListNotFound) || strings.TrimSpace(name) == "" {
		return domain.List{}, false, err
	}

	list, err = s.api.CreateList(ctx, strings.TrimSpace(name))
	if err != nil {
		return domain.List{}, false, err
	}
	s.lists = append(s.lists, list)

	s.logger.Info("created list", "title", list.Title, "id", string(list.ID))
	return list, true, nil
}

// parseHandle accepts user@host, @user@host, or a bare username on the home
// instance.
func (s *Service) parseHandle(ctx context.Context, raw string) (domain.Handle, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "@")
	if trimmed != "" && !strings.Contains(trimmed, "@") {
		home, err := s.Home(ctx)
		if err != nil {
			return "", err
		}
		trimmed += "@" + home
	}

	return domain.ParseHandle(trimmed)
}

// directoryFor picks the authenticated client for home accounts and an
// anonymous directory on the account's own instance otherwise.
func (s *Service) directoryFor(ctx context.Context, handle domain.Handle) (ports.AccountDirectory, error) {
	home, err := s.Home(ctx)
	if err != nil {
		return nil, err
	}
	if handle.Host() == home {
		return s.api, nil
	}
	if s.remote == nil {
		return nil, fmt.Errorf("%w: %s", ErrRemoteUnavailable, handle)
	}

	directory, err := s.remote(handle.Host())
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", handle.Host(), err)
	}
	return directory, nil
}

func (s *Service) resolve(ctx context.Context, raw string) (domain.Account, error) {
	handle, err := s.parseHandle(ctx, raw)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.api.LookupAccount(ctx, handle)
	if err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

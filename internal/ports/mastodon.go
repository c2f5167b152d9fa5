package ports

import (
	"context"

	"github.com/bnema/mastodon-list-manager/internal/domain"
)

// AccountPager walks a paginated account collection one page at a time.
// Err is nil after Next returns false only when the server reported no further
// pages.
type AccountPager interface {
	Next(ctx context.Context) bool
	Accounts() []domain.Account
	Err() error
}

// AccountDirectory is the read-only surface available on any instance,
// including ones the user is not signed in to.
type AccountDirectory interface {
	LookupAccount(ctx context.Context, handle domain.Handle) (domain.Account, error)
	Followers(id domain.AccountID) AccountPager
	Following(id domain.AccountID) AccountPager
}

type MastodonAPI interface {
	AccountDirectory

	VerifyCredentials(ctx context.Context) (domain.Account, error)
	Relationship(ctx context.Context, id domain.AccountID) (domain.Relationship, error)
	Follow(ctx context.Context, id domain.AccountID, opts domain.FollowOptions) (domain.Relationship, error)
	Unfollow(ctx context.Context, id domain.AccountID) (domain.Relationship, error)

	Lists(ctx context.Context) ([]domain.List, error)
	CreateList(ctx context.Context, title string) (domain.List, error)
	ListAccounts(id domain.ListID) AccountPager
	AddToList(ctx context.Context, id domain.ListID, accounts ...domain.AccountID) error
	RemoveFromList(ctx context.Context, id domain.ListID, accounts ...domain.AccountID) error
}

// DirectoryFactory returns an unauthenticated directory for another instance.
type DirectoryFactory func(host string) (AccountDirectory, error)

// AccountSink receives accounts in server order as pages arrive.
type AccountSink interface {
	Write(accounts ...domain.Account) error
}

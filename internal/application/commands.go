package application

import (
	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/bnema/mastodon-list-manager/internal/ports"
)

type FollowCommand struct {
	Account string
	Options domain.FollowOptions
}

// ExportFollowsCommand selects whose followers or following to export. An
// empty Account means the signed-in user.
type ExportFollowsCommand struct {
	Account string
}

type ImportFollowingCommand struct {
	Rows    []domain.ImportRow
	Replace bool
}

// ImportListCommand fills an existing list. Create allows a missing list to
// be created first; without it a missing list is domain.ErrListNotFound.
type ImportListCommand struct {
	List    string
	Rows    []domain.ImportRow
	Replace bool
	Create  bool
}

// ListExporter opens the destination for one list and calls fill with a sink
// for its rows. The destination should only become visible when fill
// succeeds.
type ListExporter func(list domain.List, fill func(sink ports.AccountSink) error) error

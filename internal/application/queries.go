package application

import "github.com/bnema/mastodon-list-manager/internal/domain"

// ListSummary is one row of the list overview.
type ListSummary struct {
	List    domain.List
	Members int
}

// ExportResult describes a finished export.
type ExportResult struct {
	Subject domain.Handle
	List    domain.List
	Rows    int
}

// MutationResult is the state the target account ended in.
type MutationResult struct {
	Account      domain.Account
	Relationship domain.Relationship
}

// Pending reports a follow that the target still has to approve.
func (r MutationResult) Pending() bool {
	return r.Relationship.Pending()
}

package application

import (
	"context"
	"fmt"
)

// Follow resolves the account and sends one follow request. A locked
// account answers with a pending relationship, which is not an error.
func (s *Service) Follow(ctx context.Context, cmd FollowCommand) (MutationResult, error) {
	account, err := s.resolve(ctx, cmd.Account)
	if err != nil {
		return MutationResult{}, err
	}

	rel, err := s.api.Follow(ctx, account.ID, cmd.Options)
	if err != nil {
		return MutationResult{}, fmt.Errorf("follow %s: %w", account.Handle, err)
	}

	s.logger.Info("followed", "handle", account.Handle.String(), "pending", rel.Pending())
	return MutationResult{Account: account, Relationship: rel}, nil
}

func (s *Service) Unfollow(ctx context.Context, handle string) (MutationResult, error) {
	account, err := s.resolve(ctx, handle)
	if err != nil {
		return MutationResult{}, err
	}

	rel, err := s.api.Unfollow(ctx, account.ID)
	if err != nil {
		return MutationResult{}, fmt.Errorf("unfollow %s: %w", account.Handle, err)
	}

	s.logger.Info("unfollowed", "handle", account.Handle.String())
	return MutationResult{Account: account, Relationship: rel}, nil
}

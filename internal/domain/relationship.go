package domain

type Relationship struct {
	ID         AccountID
	Following  bool
	Requested  bool
	FollowedBy bool
}

// Pending reports a follow request that the target has not accepted yet.
func (r Relationship) Pending() bool {
	return r.Requested && !r.Following
}

type FollowOptions struct {
	Boosts bool
	Notify bool
}

func DefaultFollowOptions() FollowOptions {
	return FollowOptions{Boosts: true}
}

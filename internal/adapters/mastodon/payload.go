package mastodon

import "github.com/bnema/mastodon-list-manager/internal/domain"

type accountPayload struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Acct        string `json:"acct"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
}

func (p accountPayload) toDomain() domain.Account {
	return domain.Account{
		ID:          domain.AccountID(p.ID),
		Handle:      domain.Handle(p.Acct),
		Username:    p.Username,
		DisplayName: p.DisplayName,
		URL:         p.URL,
	}
}

func accountsToDomain(payloads []accountPayload) []domain.Account {
	accounts := make([]domain.Account, 0, len(payloads))
	for _, p := range payloads {
		accounts = append(accounts, p.toDomain())
	}
	return accounts
}

type relationshipPayload struct {
	ID         string `json:"id"`
	Following  bool   `json:"following"`
	Requested  bool   `json:"requested"`
	FollowedBy bool   `json:"followed_by"`
}

func (p relationshipPayload) toDomain() domain.Relationship {
	return domain.Relationship{
		ID:         domain.AccountID(p.ID),
		Following:  p.Following,
		Requested:  p.Requested,
		FollowedBy: p.FollowedBy,
	}
}

type listPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (p listPayload) toDomain() domain.List {
	return domain.List{ID: domain.ListID(p.ID), Title: p.Title}
}

type searchPayload struct {
	Accounts []accountPayload `json:"accounts"`
}

type followRequest struct {
	Reblogs bool `json:"reblogs"`
	Notify  bool `json:"notify"`
}

type listAccountsRequest struct {
	AccountIDs []string `json:"account_ids"`
}

type createListRequest struct {
	Title string `json:"title"`
}

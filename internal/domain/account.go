package domain

import (
	"net/url"
	"strings"
)

type AccountID string

// Account is a profile as observed from the server. Values are never mutated
// after they leave the API adapter.
type Account struct {
	ID          AccountID
	Handle      Handle
	Username    string
	DisplayName string
	URL         string
	LocalURL    string
}

// Host returns the host of the account's profile URL.
func (a Account) Host() string {
	parsed, err := url.Parse(a.URL)
	if err != nil {
		return ""
	}

	return strings.ToLower(parsed.Hostname())
}

// Localize fills Handle and LocalURL relative to the instance the caller is
// signed in to. A bare local acct gains the profile host so that exported
// handles stay portable.
func (a Account) Localize(home string) Account {
	host := a.Host()
	if !strings.Contains(string(a.Handle), "@") && host != "" {
		a.Handle = Handle(string(a.Handle) + "@" + host)
	}

	home = strings.ToLower(strings.TrimSpace(home))
	if home == "" || a.Username == "" {
		return a
	}

	if host == "" || host == home {
		a.LocalURL = "https://" + home + "/@" + a.Username
		return a
	}

	a.LocalURL = "https://" + home + "/@" + a.Username + "@" + host
	return a
}

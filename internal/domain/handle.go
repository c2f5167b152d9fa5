package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Handle is the canonical user@host address of an account.
type Handle string

// ParseHandle accepts "@user@host" or "user@host" and rejects bare usernames.
func ParseHandle(raw string) (Handle, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "@")
	user, host, ok := strings.Cut(trimmed, "@")
	if !ok || user == "" || host == "" || strings.Contains(host, "@") {
		return "", fmt.Errorf("%w: %q (use the full address, user@host)", ErrInvalidHandle, raw)
	}

	return Handle(trimmed), nil
}

func (h Handle) String() string {
	return string(h)
}

func (h Handle) Username() string {
	user, _, _ := strings.Cut(string(h), "@")
	return user
}

func (h Handle) Host() string {
	_, host, _ := strings.Cut(string(h), "@")
	return strings.ToLower(host)
}

// Key is the case-folded form used to detect duplicate handles.
func (h Handle) Key() string {
	return cases.Fold().String(string(h))
}

// Equal reports whether two handles address the same account.
func (h Handle) Equal(other Handle) bool {
	return h.Key() == other.Key()
}

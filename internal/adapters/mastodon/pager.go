package mastodon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/bnema/mastodon-list-manager/internal/ports"
	"github.com/tomnomnom/linkheader"
)

var ErrCursorLoop = errors.New("pagination cursor repeated")

// Pager follows the rel="next" Link header of an account collection. It
// requests one page per call to Next and stops when the server stops
// advertising a next page.
type Pager struct {
	client *Client
	first  string

	next     string
	started  bool
	done     bool
	seen     map[string]struct{}
	accounts []domain.Account
	pages    int
	err      error
}

var _ ports.AccountPager = (*Pager)(nil)

func newPager(client *Client, first string) *Pager {
	p := &Pager{client: client, first: first}
	p.Reset()
	return p
}

// Reset rewinds the pager so the next call to Next fetches the first page
// again.
func (p *Pager) Reset() {
	p.next = p.first
	p.started = false
	p.done = false
	p.seen = map[string]struct{}{}
	p.accounts = nil
	p.pages = 0
	p.err = nil
}

func (p *Pager) Next(ctx context.Context) bool {
	p.accounts = nil
	if p.done || p.err != nil {
		return false
	}
	if p.started && p.next == "" {
		p.done = true
		return false
	}

	endpoint := p.next
	if _, ok := p.seen[endpoint]; ok {
		p.err = fmt.Errorf("%w: %s", ErrCursorLoop, endpoint)
		return false
	}
	p.seen[endpoint] = struct{}{}
	p.started = true

	var page []accountPayload
	header, err := p.client.get(ctx, endpoint, &page)
	if err != nil {
		p.err = fmt.Errorf("fetch page %d: %w", p.pages+1, err)
		return false
	}

	p.pages++
	p.accounts = accountsToDomain(page)

	next, err := p.nextLink(header, endpoint)
	if err != nil {
		p.err = err
		return false
	}
	if len(page) == 0 {
		next = ""
	}
	p.next = next

	return true
}

func (p *Pager) Accounts() []domain.Account {
	return p.accounts
}

func (p *Pager) Err() error {
	return p.err
}

// Pages is the number of pages fetched since the last Reset.
func (p *Pager) Pages() int {
	return p.pages
}

func (p *Pager) nextLink(header http.Header, current string) (string, error) {
	links := linkheader.ParseMultiple(header.Values("Link")).FilterByRel("next")
	if len(links) == 0 {
		return "", nil
	}

	raw := strings.TrimSpace(links[0].URL)
	if raw == "" {
		return "", nil
	}

	base, err := url.Parse(current)
	if err != nil {
		return "", fmt.Errorf("parse current page url: %w", err)
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse next page link %q: %w", raw, err)
	}

	resolved := base.ResolveReference(ref)
	if !strings.EqualFold(resolved.Host, p.client.baseURL.Host) {
		return "", fmt.Errorf("next page link %q points away from %s", raw, p.client.baseURL.Host)
	}

	return resolved.String(), nil
}

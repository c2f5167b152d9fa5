package mastodon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/bnema/mastodon-list-manager/internal/ports"
	"github.com/google/uuid"
)

const (
	// Largest page size Mastodon honours for account collections.
	pageLimit           = "80"
	maxResponseBytes    = 8 << 20
	defaultUserAgent    = "mlm"
	idempotencyKeyField = "Idempotency-Key"
)

// Client is a thin wrapper over the Mastodon REST API. A Client without an
// access token can only read public collections.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	userAgent  string
	newKey     func() string
}

var _ ports.MastodonAPI = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if strings.TrimSpace(userAgent) != "" {
			c.userAgent = userAgent
		}
	}
}

func New(baseURL, accessToken string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("mastodon base url required")
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", baseURL)
	}

	client := &Client{
		baseURL:    parsed,
		token:      strings.TrimSpace(accessToken),
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
		userAgent:  defaultUserAgent,
		newKey:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Host is the hostname of the instance the client talks to.
func (c *Client) Host() string {
	return strings.ToLower(c.baseURL.Hostname())
}

func (c *Client) VerifyCredentials(ctx context.Context) (domain.Account, error) {
	var payload accountPayload
	if _, err := c.get(ctx, c.endpoint("/api/v1/accounts/verify_credentials", nil), &payload); err != nil {
		return domain.Account{}, fmt.Errorf("verify credentials: %w", err)
	}

	return payload.toDomain(), nil
}

// LookupAccount resolves a handle to an account. Handles the server has not
// seen yet are resolved through a federated search.
func (c *Client) LookupAccount(ctx context.Context, handle domain.Handle) (domain.Account, error) {
	var payload accountPayload
	_, err := c.get(ctx, c.endpoint("/api/v1/accounts/lookup", url.Values{"acct": {handle.String()}}), &payload)
	if err == nil {
		return payload.toDomain(), nil
	}
	if !IsStatus(err, http.StatusNotFound) {
		return domain.Account{}, fmt.Errorf("lookup %s: %w", handle, err)
	}
	if c.token == "" {
		return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, handle)
	}

	c.logger.Debug("lookup missed, falling back to search", "handle", handle.String())

	var results searchPayload
	query := url.Values{
		"q":       {handle.String()},
		"type":    {"accounts"},
		"resolve": {"true"},
		"limit":   {"5"},
	}
	if _, err := c.get(ctx, c.endpoint("/api/v2/search", query), &results); err != nil {
		return domain.Account{}, fmt.Errorf("search %s: %w", handle, err)
	}

	for _, candidate := range results.Accounts {
		account := candidate.toDomain()
		if account.Handle.Equal(handle) {
			return account, nil
		}
		if !strings.Contains(candidate.Acct, "@") && strings.EqualFold(candidate.Acct, handle.Username()) && handle.Host() == c.Host() {
			return account, nil
		}
	}

	return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, handle)
}

func (c *Client) Relationship(ctx context.Context, id domain.AccountID) (domain.Relationship, error) {
	var payload []relationshipPayload
	query := url.Values{"id[]": {string(id)}}
	if _, err := c.get(ctx, c.endpoint("/api/v1/accounts/relationships", query), &payload); err != nil {
		return domain.Relationship{}, fmt.Errorf("relationship %s: %w", id, err)
	}
	for _, rel := range payload {
		if rel.ID == string(id) {
			return rel.toDomain(), nil
		}
	}

	return domain.Relationship{}, fmt.Errorf("%w: relationship for account id %s", domain.ErrAccountNotFound, id)
}

func (c *Client) Followers(id domain.AccountID) ports.AccountPager {
	return c.pager(accountPath(id, "followers"))
}

func (c *Client) Following(id domain.AccountID) ports.AccountPager {
	return c.pager(accountPath(id, "following"))
}

func (c *Client) Follow(ctx context.Context, id domain.AccountID, opts domain.FollowOptions) (domain.Relationship, error) {
	var payload relationshipPayload
	body := followRequest{Reblogs: opts.Boosts, Notify: opts.Notify}
	if err := c.send(ctx, http.MethodPost, c.endpoint(accountPath(id, "follow"), nil), body, &payload); err != nil {
		return domain.Relationship{}, fmt.Errorf("follow %s: %w", id, err)
	}

	return payload.toDomain(), nil
}

func (c *Client) Unfollow(ctx context.Context, id domain.AccountID) (domain.Relationship, error) {
	var payload relationshipPayload
	if err := c.send(ctx, http.MethodPost, c.endpoint(accountPath(id, "unfollow"), nil), nil, &payload); err != nil {
		return domain.Relationship{}, fmt.Errorf("unfollow %s: %w", id, err)
	}

	return payload.toDomain(), nil
}

func (c *Client) Lists(ctx context.Context) ([]domain.List, error) {
	var payload []listPayload
	if _, err := c.get(ctx, c.endpoint("/api/v1/lists", nil), &payload); err != nil {
		return nil, fmt.Errorf("get lists: %w", err)
	}

	lists := make([]domain.List, 0, len(payload))
	for _, p := range payload {
		lists = append(lists, p.toDomain())
	}
	return lists, nil
}

func (c *Client) CreateList(ctx context.Context, title string) (domain.List, error) {
	var payload listPayload
	if err := c.send(ctx, http.MethodPost, c.endpoint("/api/v1/lists", nil), createListRequest{Title: title}, &payload); err != nil {
		return domain.List{}, fmt.Errorf("create list %q: %w", title, err)
	}

	return payload.toDomain(), nil
}

func (c *Client) ListAccounts(id domain.ListID) ports.AccountPager {
	return c.pager(listPath(id))
}

// AddToList adds followed accounts to a list. The server answers 422 when an
// account is already a member, which is treated as success.
func (c *Client) AddToList(ctx context.Context, id domain.ListID, accounts ...domain.AccountID) error {
	if len(accounts) == 0 {
		return nil
	}

	body := listAccountsRequest{AccountIDs: accountIDStrings(accounts)}
	err := c.send(ctx, http.MethodPost, c.endpoint(listPath(id), nil), body, nil)
	if IsStatus(err, http.StatusUnprocessableEntity) {
		c.logger.Debug("account already on list", "list", string(id), "accounts", len(accounts))
		return nil
	}
	if err != nil {
		return fmt.Errorf("add to list %s: %w", id, err)
	}
	return nil
}

func (c *Client) RemoveFromList(ctx context.Context, id domain.ListID, accounts ...domain.AccountID) error {
	if len(accounts) == 0 {
		return nil
	}

	query := url.Values{"account_ids[]": accountIDStrings(accounts)}
	if err := c.send(ctx, http.MethodDelete, c.endpoint(listPath(id), query), nil, nil); err != nil {
		return fmt.Errorf("remove from list %s: %w", id, err)
	}
	return nil
}

func (c *Client) pager(path string) *Pager {
	return newPager(c, c.endpoint(path, url.Values{"limit": {pageLimit}}))
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + path
	u.RawQuery = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) get(ctx context.Context, endpoint string, out any) (http.Header, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) send(ctx context.Context, method, endpoint string, body any, out any) error {
	_, err := c.do(ctx, method, endpoint, body, out)
	return err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) (http.Header, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}
	if method != http.MethodGet {
		request.Header.Set(idempotencyKeyField, c.newKey())
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	c.logger.Debug("api request",
		"method", method,
		"path", request.URL.Path,
		"query", request.URL.RawQuery,
		"status", response.StatusCode,
	)

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
		return response.Header, newAPIError(method, request.URL.Path, response, data)
	}

	if out == nil {
		return response.Header, nil
	}

	if err := json.NewDecoder(io.LimitReader(response.Body, maxResponseBytes)).Decode(out); err != nil {
		return response.Header, fmt.Errorf("decode %s response: %w", request.URL.Path, err)
	}

	return response.Header, nil
}

func accountPath(id domain.AccountID, action string) string {
	return "/api/v1/accounts/" + url.PathEscape(string(id)) + "/" + action
}

func listPath(id domain.ListID) string {
	return "/api/v1/lists/" + url.PathEscape(string(id)) + "/accounts"
}

func accountIDStrings(ids []domain.AccountID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}

package mastodon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/mastodon-list-manager/internal/adapters/mastodon/mastodontest"
	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, server *mastodontest.Server) *Client {
	t.Helper()

	client, err := New(server.URL, server.Token)
	require.NoError(t, err)
	return client
}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := New("  ", "token")
	require.Error(t, err)

	client, err := New("mastodon.example/", "token")
	require.NoError(t, err)
	assert.Equal(t, "mastodon.example", client.Host())
	assert.Equal(t, "https://mastodon.example/api/v1/lists", client.endpoint("/api/v1/lists", nil))
}

func TestVerifyCredentialsSendsBearerToken(t *testing.T) {
	t.Parallel()

	server := mastodontest.NewServer(t)
	server.Token = "secret-token"
	server.SetMe("owner")

	account, err := newTestClient(t, server).VerifyCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Handle("owner"), account.Handle)
	assert.Equal(t, "owner", account.Username)
}

func TestVerifyCredentialsMapsUnauthorized(t *testing.T) {
	t.Parallel()

	server := mastodontest.NewServer(t)
	server.Token = "secret-token"
	server.SetMe("owner")

	client, err := New(server.URL, "wrong-token")
	require.NoError(t, err)

	_, err = client.VerifyCredentials(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "The access token is invalid")
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
}

func TestLookupAccountLocalAndRemote(t *testing.T) {
	t.Parallel()

	server := mastodontest.NewServer(t)
	server.SetMe("owner")
	localID := server.AddAccount("alice", "")
	remoteID := server.AddAccount("bob", "far.example")
	client := newTestClient(t, server)

	local, err := client.LookupAccount(context.Background(), domain.Handle("alice@"+server.Host()))
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID(localID), local.ID)

	remote, err := client.LookupAccount(context.Background(), "bob@far.example")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID(remoteID), remote.ID)
	assert.Equal(t, domain.Handle("bob@far.example"), remote.Handle)
}

func TestLookupAccountFallsBackToSearch(t *testing.T) {
	t.Parallel()

	var searched bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/accounts/lookup":
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprint(w, `{"error":"Record not found"}`)
		case "/api/v2/search":
			searched = true
			assert.Equal(t, "true", r.URL.Query().Get("resolve"))
			assert.Equal(t, "accounts", r.URL.Query().Get("type"))
			_, _ = fmt.Fprint(w, `{"accounts":[{"id":"7","username":"other","acct":"other@far.example"},{"id":"8","username":"carol","acct":"carol@far.example","url":"https://far.example/@carol"}]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL, "token")
	require.NoError(t, err)

	account, err := client.LookupAccount(context.Background(), "Carol@far.example")
	require.NoError(t, err)
	assert.True(t, searched)
	assert.Equal(t, domain.AccountID("8"), account.ID)
}

func TestLookupAccountNotFound(t *testing.T) {
	t.Parallel()

	server := mastodontest.NewServer(t)
	server.Token = "secret-token"
	server.SetMe("owner")

	_, err := newTestClient(t, server).LookupAccount(context.Background(), "ghost@nowhere.example")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Equal(t, 1, server.Calls("GET search"))
}

func TestFollowSendsOptionsAndIdempotencyKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/accounts/42/follow", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]bool{"reblogs": false, "notify": true}, body)

		_, _ = fmt.Fprint(w, `{"id":"42","following":false,"requested":true}`)
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL, "token", WithUserAgent("mlm-test"))
	require.NoError(t, err)

	rel, err := client.Follow(context.Background(), "42", domain.FollowOptions{Boosts: false, Notify: true})
	require.NoError(t, err)
	assert.True(t, rel.Pending())
}

func TestRelationshipAndListMutations(t *testing.T) {
	t.Parallel()

	server := mastodontest.NewServer(t)
	server.SetMe("owner")
	alice := server.AddAccount("alice", "far.example")
	bob := server.AddAccount("bob", "far.example")
	stranger := server.AddAccount("carol", "far.example")
	server.AddFollowing(alice)
	server.AddFollowing(bob)
	client := newTestClient(t, server)
	ctx := context.Background()

	rel, err := client.Relationship(ctx, domain.AccountID(alice))
	require.NoError(t, err)
	assert.True(t, rel.Following)

	list, err := client.CreateList(ctx, "Friends")
	require.NoError(t, err)
	assert.Equal(t, "Friends", list.Title)

	require.NoError(t, client.AddToList(ctx, list.ID, domain.AccountID(alice), domain.AccountID(bob)))
	assert.Equal(t, []string{alice, bob}, server.ListMembers("Friends"))

	require.NoError(t, client.AddToList(ctx, list.ID, domain.AccountID(bob)), "already a member")
	assert.Equal(t, []string{alice, bob}, server.ListMembers("Friends"))

	require.NoError(t, client.RemoveFromList(ctx, list.ID, domain.AccountID(alice)))
	assert.Equal(t, []string{bob}, server.ListMembers("Friends"))

	err = client.AddToList(ctx, list.ID, domain.AccountID(stranger))
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))

	require.NoError(t, client.AddToList(ctx, list.ID))
	require.NoError(t, client.RemoveFromList(ctx, list.ID))

	lists, err := client.Lists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.List{{ID: list.ID, Title: "Friends"}}, lists)
}

func TestRateLimitedResponseCarriesReset(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Reset", "2026-10-18T12:30:00.000Z")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = fmt.Fprint(w, `{"error":"Too many requests"}`)
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL, "token")
	require.NoError(t, err)

	_, err = client.Lists(context.Background())
	require.ErrorIs(t, err, domain.ErrRateLimited)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 2026, apiErr.ResetAt.Year())
	assert.Equal(t, "Too many requests", apiErr.Message)
}

func TestNonJSONErrorBodyIsKept(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = fmt.Fprint(w, "<html>bad gateway</html>")
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL, "token")
	require.NoError(t, err)

	_, err = client.VerifyCredentials(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502 Bad Gateway")
	assert.Contains(t, err.Error(), "bad gateway")
}

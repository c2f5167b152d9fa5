package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/bnema/mastodon-list-manager/internal/ports"
	"github.com/bnema/mastodon-list-manager/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServiceWhoamiIsMemoised(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().VerifyCredentials(mockAnyContext()).Return(domain.Account{
		ID:       "1",
		Handle:   "owner",
		Username: "owner",
		URL:      "https://home.example/@owner",
	}, nil).Once()

	me, err := service.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Handle("owner@home.example"), me.Handle)

	home, err := service.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "home.example", home)
}

func TestServiceFollowIssuesOneMutation(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	alice := domain.Account{ID: "7", Handle: "alice@far.example"}
	opts := domain.FollowOptions{Boosts: false, Notify: true}
	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("alice@far.example")).Return(alice, nil).Once()
	api.EXPECT().Follow(mockAnyContext(), domain.AccountID("7"), opts).Return(domain.Relationship{ID: "7", Following: true}, nil).Once()

	result, err := service.Follow(context.Background(), FollowCommand{Account: "@alice@far.example", Options: opts})
	require.NoError(t, err)
	assert.Equal(t, alice, result.Account)
	assert.False(t, result.Pending())
}

func TestServiceFollowReportsPendingRequest(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("locked@far.example")).Return(domain.Account{ID: "8"}, nil)
	api.EXPECT().Follow(mockAnyContext(), domain.AccountID("8"), domain.DefaultFollowOptions()).Return(domain.Relationship{ID: "8", Requested: true}, nil)

	result, err := service.Follow(context.Background(), FollowCommand{Account: "locked@far.example", Options: domain.DefaultFollowOptions()})
	require.NoError(t, err)
	assert.True(t, result.Pending())
}

func TestServiceFollowNotFoundSendsNoMutation(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("ghost@far.example")).Return(domain.Account{}, domain.ErrAccountNotFound)

	_, err := service.Follow(context.Background(), FollowCommand{Account: "ghost@far.example"})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	api.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceUnfollowBareUsernameUsesHomeInstance(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().VerifyCredentials(mockAnyContext()).Return(domain.Account{ID: "1", Handle: "owner", Username: "owner", URL: "https://home.example/@owner"}, nil)
	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("bob@home.example")).Return(domain.Account{ID: "9", Handle: "bob"}, nil)
	api.EXPECT().Unfollow(mockAnyContext(), domain.AccountID("9")).Return(domain.Relationship{ID: "9"}, nil).Once()

	_, err := service.Unfollow(context.Background(), "bob")
	require.NoError(t, err)
}

func TestServiceFollowRejectsMalformedHandle(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	_, err := service.Follow(context.Background(), FollowCommand{Account: "alice@"})
	require.ErrorIs(t, err, domain.ErrInvalidHandle)
}

func TestServiceExportListMissingDoesNotCreate(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)
	sink := mocks.NewMockAccountSink(t)

	api.EXPECT().Lists(mockAnyContext()).Return([]domain.List{{ID: "1", Title: "Other"}}, nil).Once()

	_, err := service.ExportList(context.Background(), "Friends", sink)
	require.ErrorIs(t, err, domain.ErrListNotFound)
	api.AssertNotCalled(t, "CreateList", mock.Anything, mock.Anything)
	sink.AssertNotCalled(t, "Write")
}

func TestServiceExportStopsOnPagerError(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	pager := mocks.NewMockAccountPager(t)
	sink := mocks.NewMockAccountSink(t)
	service := NewService(api, nil, nil)

	me := domain.Account{ID: "1", Handle: "owner", Username: "owner", URL: "https://home.example/@owner"}
	first := domain.Account{ID: "2", Handle: "amy@far.example", Username: "amy", URL: "https://far.example/@amy"}
	fetchErr := errors.New("fetch page 2: boom")

	api.EXPECT().VerifyCredentials(mockAnyContext()).Return(me, nil)
	api.EXPECT().Followers(domain.AccountID("1")).Return(pager)
	pager.EXPECT().Next(mockAnyContext()).Return(true).Once()
	pager.EXPECT().Accounts().Return([]domain.Account{first}).Once()
	pager.EXPECT().Next(mockAnyContext()).Return(false).Once()
	pager.EXPECT().Err().Return(fetchErr)
	sink.EXPECT().Write(first.Localize("home.example")).Return(nil).Once()

	result, err := service.ExportFollowers(context.Background(), ExportFollowsCommand{}, sink)
	require.ErrorIs(t, err, fetchErr)
	assert.Equal(t, 1, result.Rows)
}

func TestServiceImportListResolvesListOnce(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	list := domain.List{ID: "90", Title: "Friends"}
	api.EXPECT().Lists(mockAnyContext()).Return([]domain.List{list}, nil).Once()
	api.EXPECT().ListAccounts(domain.ListID("90")).Return(&slicePager{}).Once()

	rows := make([]domain.ImportRow, 0, 4)
	for i, name := range []string{"a", "b", "c", "d"} {
		handle := domain.Handle(name + "@far.example")
		id := domain.AccountID(name)
		rows = append(rows, domain.ImportRow{Line: i + 2, Handle: handle.String(), Options: domain.DefaultFollowOptions()})
		api.EXPECT().LookupAccount(mockAnyContext(), handle).Return(domain.Account{ID: id, Handle: handle}, nil).Once()
		api.EXPECT().Relationship(mockAnyContext(), id).Return(domain.Relationship{ID: id, Following: true}, nil).Once()
		api.EXPECT().AddToList(mockAnyContext(), domain.ListID("90"), id).Return(nil).Once()
	}

	report, err := service.ImportList(context.Background(), ImportListCommand{List: "Friends", Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Applied)
	assert.Empty(t, report.Failures)
}

func TestServiceImportListPendingFollowBlocksAdd(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().Lists(mockAnyContext()).Return([]domain.List{{ID: "90", Title: "Friends"}}, nil)
	api.EXPECT().ListAccounts(domain.ListID("90")).Return(&slicePager{})
	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("locked@far.example")).Return(domain.Account{ID: "5", Handle: "locked@far.example"}, nil)
	api.EXPECT().Relationship(mockAnyContext(), domain.AccountID("5")).Return(domain.Relationship{ID: "5", Requested: true}, nil)

	report, err := service.ImportList(context.Background(), ImportListCommand{
		List: "Friends",
		Rows: []domain.ImportRow{{Line: 2, Handle: "locked@far.example"}},
	})
	require.ErrorIs(t, err, domain.ErrImportIncomplete)
	require.Len(t, report.Failures, 1)
	assert.ErrorIs(t, report.Failures[0], domain.ErrFollowPending)
	assert.Equal(t, 2, report.Failures[0].Line)
	api.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "AddToList", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceImportListFollowsBeforeAdding(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	opts := domain.FollowOptions{Boosts: false}
	api.EXPECT().Lists(mockAnyContext()).Return([]domain.List{{ID: "90", Title: "Friends"}}, nil)
	api.EXPECT().ListAccounts(domain.ListID("90")).Return(&slicePager{})
	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("new@far.example")).Return(domain.Account{ID: "6", Handle: "new@far.example"}, nil)
	api.EXPECT().Relationship(mockAnyContext(), domain.AccountID("6")).Return(domain.Relationship{ID: "6"}, nil)
	api.EXPECT().Follow(mockAnyContext(), domain.AccountID("6"), opts).Return(domain.Relationship{ID: "6", Following: true}, nil).Once()
	api.EXPECT().AddToList(mockAnyContext(), domain.ListID("90"), domain.AccountID("6")).Return(nil).Once()

	report, err := service.ImportList(context.Background(), ImportListCommand{
		List: "Friends",
		Rows: []domain.ImportRow{{Line: 2, Handle: "new@far.example", Options: opts}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Applied)
}

func TestServiceImportListFollowThatBecomesPendingFailsRow(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().Lists(mockAnyContext()).Return([]domain.List{{ID: "90", Title: "Friends"}}, nil)
	api.EXPECT().ListAccounts(domain.ListID("90")).Return(&slicePager{})
	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("locked@far.example")).Return(domain.Account{ID: "5", Handle: "locked@far.example"}, nil)
	api.EXPECT().Relationship(mockAnyContext(), domain.AccountID("5")).Return(domain.Relationship{ID: "5"}, nil)
	api.EXPECT().Follow(mockAnyContext(), domain.AccountID("5"), mock.Anything).Return(domain.Relationship{ID: "5", Requested: true}, nil)

	report, err := service.ImportList(context.Background(), ImportListCommand{
		List: "Friends",
		Rows: []domain.ImportRow{{Line: 2, Handle: "locked@far.example"}},
	})
	require.ErrorIs(t, err, domain.ErrImportIncomplete)
	require.Len(t, report.Failures, 1)
	assert.ErrorIs(t, report.Failures[0], domain.ErrFollowPending)
	api.AssertNotCalled(t, "AddToList", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceImportListSkipsExistingMembers(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	member := domain.Account{ID: "3", Handle: "kept@far.example"}
	api.EXPECT().Lists(mockAnyContext()).Return([]domain.List{{ID: "90", Title: "Friends"}}, nil)
	api.EXPECT().ListAccounts(domain.ListID("90")).Return(&slicePager{pages: [][]domain.Account{{member}}})
	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("kept@far.example")).Return(member, nil)

	report, err := service.ImportList(context.Background(), ImportListCommand{
		List: "Friends",
		Rows: []domain.ImportRow{{Line: 2, Handle: "kept@far.example"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Zero(t, report.Applied)
}

func TestServiceImportListCreatesMissingList(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().Lists(mockAnyContext()).Return(nil, nil).Once()
	api.EXPECT().CreateList(mockAnyContext(), "Friends").Return(domain.List{ID: "91", Title: "Friends"}, nil).Once()

	report, err := service.ImportList(context.Background(), ImportListCommand{List: " Friends ", Create: true})
	require.NoError(t, err)
	assert.Zero(t, report.Rows)

	lists, err := service.Lists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.List{{ID: "91", Title: "Friends"}}, lists)
}

func TestServiceImportListMissingListWithoutCreate(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().Lists(mockAnyContext()).Return([]domain.List{{ID: "7", Title: "Family"}}, nil).Once()

	report, err := service.ImportList(context.Background(), ImportListCommand{
		List: "Freinds",
		Rows: []domain.ImportRow{{Line: 2, Handle: "amy@far.example"}},
	})
	require.ErrorIs(t, err, domain.ErrListNotFound)
	assert.Zero(t, report.Applied)
	api.AssertNotCalled(t, "CreateList", mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "LookupAccount", mock.Anything, mock.Anything)
}

func TestServiceImportFollowingPartialFailure(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	var rows []domain.ImportRow
	for i, name := range []string{"a", "b", "missing", "d", "e"} {
		handle := domain.Handle(name + "@far.example")
		rows = append(rows, domain.ImportRow{Line: i + 2, Handle: handle.String(), Options: domain.DefaultFollowOptions()})
		if name == "missing" {
			api.EXPECT().LookupAccount(mockAnyContext(), handle).Return(domain.Account{}, domain.ErrAccountNotFound)
			continue
		}
		id := domain.AccountID(name)
		api.EXPECT().LookupAccount(mockAnyContext(), handle).Return(domain.Account{ID: id, Handle: handle}, nil)
		api.EXPECT().Follow(mockAnyContext(), id, domain.DefaultFollowOptions()).Return(domain.Relationship{ID: id, Following: true}, nil).Once()
	}

	report, err := service.ImportFollowing(context.Background(), ImportFollowingCommand{Rows: rows})
	require.ErrorIs(t, err, domain.ErrImportIncomplete)
	assert.Equal(t, 4, report.Applied)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 4, report.Failures[0].Line)
	assert.Equal(t, "missing@far.example", report.Failures[0].Handle)
	assert.ErrorIs(t, report.Failures[0], domain.ErrAccountNotFound)
	api.AssertNumberOfCalls(t, "Follow", 4)
}

func TestServiceImportFollowingSkipsDuplicatesAndBadRows(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("Alice@far.example")).Return(domain.Account{ID: "1", Handle: "alice@far.example"}, nil).Once()
	api.EXPECT().Follow(mockAnyContext(), domain.AccountID("1"), mock.Anything).Return(domain.Relationship{ID: "1", Following: true}, nil).Once()

	report, err := service.ImportFollowing(context.Background(), ImportFollowingCommand{Rows: []domain.ImportRow{
		{Line: 2, Handle: "Alice@far.example"},
		{Line: 3, Handle: "@alice@FAR.example"},
		{Line: 4, Handle: ""},
		{Line: 5, Handle: "not-a-handle@"},
	}})
	require.ErrorIs(t, err, domain.ErrImportIncomplete)
	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, 1, report.Duplicates)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, 4, report.Failures[0].Line)
	assert.ErrorIs(t, report.Failures[1], domain.ErrInvalidHandle)
}

func TestServiceImportFollowingAbortsWhenUnauthorized(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("a@far.example")).Return(domain.Account{}, domain.ErrUnauthorized).Once()

	report, err := service.ImportFollowing(context.Background(), ImportFollowingCommand{Rows: []domain.ImportRow{
		{Line: 2, Handle: "a@far.example"},
		{Line: 3, Handle: "b@far.example"},
	}})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NotErrorIs(t, err, domain.ErrImportIncomplete)
	assert.Zero(t, report.Applied)
}

func TestServiceImportFollowingPendingIsApplied(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("locked@far.example")).Return(domain.Account{ID: "5", Handle: "locked@far.example"}, nil)
	api.EXPECT().Follow(mockAnyContext(), domain.AccountID("5"), mock.Anything).Return(domain.Relationship{ID: "5", Requested: true}, nil)

	report, err := service.ImportFollowing(context.Background(), ImportFollowingCommand{Rows: []domain.ImportRow{{Line: 2, Handle: "locked@far.example"}}})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, []domain.Handle{"locked@far.example"}, report.Pending)
}

func TestServiceExportFollowersForRemoteAccountUsesDirectory(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	remote := mocks.NewMockMastodonAPI(t)
	var requestedHost string
	factory := func(host string) (ports.AccountDirectory, error) {
		requestedHost = host
		return remote, nil
	}
	service := NewService(api, factory, nil)

	api.EXPECT().VerifyCredentials(mockAnyContext()).Return(domain.Account{ID: "1", Handle: "owner", Username: "owner", URL: "https://home.example/@owner"}, nil)
	remote.EXPECT().LookupAccount(mockAnyContext(), domain.Handle("zoe@far.example")).Return(domain.Account{ID: "44", Handle: "zoe", Username: "zoe", URL: "https://far.example/@zoe"}, nil)
	remote.EXPECT().Followers(domain.AccountID("44")).Return(&slicePager{pages: [][]domain.Account{{
		{ID: "45", Handle: "kim", Username: "kim", URL: "https://far.example/@kim"},
	}}})

	var got []domain.Account
	sink := sinkFunc(func(accounts ...domain.Account) error {
		got = append(got, accounts...)
		return nil
	})

	result, err := service.ExportFollowers(context.Background(), ExportFollowsCommand{Account: "zoe@far.example"}, sink)
	require.NoError(t, err)
	assert.Equal(t, "far.example", requestedHost)
	assert.Equal(t, domain.Handle("zoe@far.example"), result.Subject)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Handle("kim@far.example"), got[0].Handle)
	assert.Equal(t, "https://home.example/@kim@far.example", got[0].LocalURL)
}

func TestServiceExportRemoteWithoutFactory(t *testing.T) {
	api := mocks.NewMockMastodonAPI(t)
	service := NewService(api, nil, nil)

	api.EXPECT().VerifyCredentials(mockAnyContext()).Return(domain.Account{ID: "1", Handle: "owner", Username: "owner", URL: "https://home.example/@owner"}, nil)

	_, err := service.ExportFollowing(context.Background(), ExportFollowsCommand{Account: "zoe@far.example"}, sinkFunc(func(...domain.Account) error { return nil }))
	require.ErrorIs(t, err, ErrRemoteUnavailable)
}

// slicePager serves fixed pages.
type slicePager struct {
	pages [][]domain.Account
	next  int
	page  []domain.Account
	err   error
}

func (p *slicePager) Next(context.Context) bool {
	if p.next >= len(p.pages) {
		p.page = nil
		return false
	}
	p.page = p.pages[p.next]
	p.next++
	return true
}

func (p *slicePager) Accounts() []domain.Account {
	return p.page
}

func (p *slicePager) Err() error {
	return p.err
}

func mockAnyContext() interface{} {
	return mock.Anything
}

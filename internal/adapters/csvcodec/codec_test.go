package csvcodec

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterEmitsHeaderAndRowsInOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(
		domain.Account{Handle: "zed@b.example", DisplayName: "Zed, the \"last\"", URL: "https://b.example/@zed", LocalURL: "https://home/@zed@b.example"},
		domain.Account{Handle: "amy@a.example", DisplayName: "Amy", URL: "https://a.example/@amy"},
	))
	require.NoError(t, w.Flush())

	want := "handle,display_name,profile_url,local_url\n" +
		"zed@b.example,\"Zed, the \"\"last\"\"\",https://b.example/@zed,https://home/@zed@b.example\n" +
		"amy@a.example,Amy,https://a.example/@amy,\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, w.Rows())
}

func TestWriterHeaderOnlyForEmptyExport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())

	assert.Equal(t, "handle,display_name,profile_url,local_url\n", buf.String())
}

func TestRoundTripPreservesHandles(t *testing.T) {
	t.Parallel()

	accounts := []domain.Account{
		{Handle: "Émile@café.example", DisplayName: "Émile"},
		{Handle: "o'neil@x.test"},
		{Handle: "bob@y.test"},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(accounts...))
	require.NoError(t, w.Flush())

	rows, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, rows, len(accounts))
	for i, row := range rows {
		assert.Equal(t, accounts[i].Handle.String(), row.Handle)
		assert.Equal(t, i+2, row.Line)
		assert.Equal(t, domain.DefaultFollowOptions(), row.Options)
	}
}

func TestReadAcceptsMastodonFollowingExport(t *testing.T) {
	t.Parallel()

	input := "\ufeffAccount address,Show boosts,Notify on new posts,Languages\n" +
		"alice@a.example,false,true,\n" +
		"\n" +
		"bob@b.example,true,false,en\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "alice@a.example", rows[0].Handle)
	assert.Equal(t, domain.FollowOptions{Boosts: false, Notify: true}, rows[0].Options)
	assert.Equal(t, 2, rows[0].Line)

	assert.Equal(t, "bob@b.example", rows[1].Handle)
	assert.Equal(t, domain.FollowOptions{Boosts: true, Notify: false}, rows[1].Options)
	assert.Equal(t, 4, rows[1].Line)
}

func TestReadKeepsRowsWithEmptyHandle(t *testing.T) {
	t.Parallel()

	rows, err := Read(strings.NewReader("handle,display_name\n,Nobody\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Handle)
}

func TestReadRejectsMissingHandleColumn(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader("name,url\nx,y\n"))
	require.ErrorIs(t, err, ErrMissingHandleColumn)

	_, err = Read(strings.NewReader(""))
	require.ErrorIs(t, err, ErrMissingHandleColumn)
}

func TestWriteFileAtomicReplacesOnSuccess(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileAtomicLeavesNothingOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	boom := errors.New("fetch aborted")

	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "handle\npartial@x.test\n")
		return boom
	})
	require.ErrorIs(t, err, boom)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

package httpclient

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesTransportConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	client := New(cfg)

	assert.Zero(t, client.Timeout)

	tr, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, cfg.TLSHandshake, tr.TLSHandshakeTimeout)
	assert.Equal(t, cfg.ResponseHeader, tr.ResponseHeaderTimeout)
	assert.Equal(t, cfg.MaxIdleConnsPerHost, tr.MaxIdleConnsPerHost)
}

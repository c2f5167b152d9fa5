package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/bnema/mastodon-list-manager/internal/adapters/credentials"
	"github.com/bnema/mastodon-list-manager/internal/adapters/httpclient"
	"github.com/bnema/mastodon-list-manager/internal/adapters/mastodon"
	"github.com/bnema/mastodon-list-manager/internal/application"
	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/bnema/mastodon-list-manager/internal/logging"
	"github.com/bnema/mastodon-list-manager/internal/ports"
	"github.com/bnema/mastodon-list-manager/internal/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

// app carries what every command needs. It is filled by wire once flags are
// parsed, so nothing touches the config file for `version` or `--help`.
type app struct {
	logger      *slog.Logger
	creds       domain.Credentials
	service     *application.Service
	httpClient  *http.Client
	interactive func(io.Writer) bool
}

func newApp() *app {
	return &app{
		logger:      logging.Discard(),
		interactive: isTerminal,
	}
}

func (a *app) wire(opts rootOptions, stderr io.Writer) error {
	a.logger = logging.New(logging.Options{Debug: opts.debug, Writer: stderr})

	creds, err := credentials.Load(opts.configPath, viper.New(), a.logger)
	if err != nil {
		return err
	}
	a.creds = creds

	if a.httpClient == nil {
		a.httpClient = httpclient.New(httpclient.DefaultConfig())
	}

	client, err := mastodon.New(creds.BaseURL, creds.AccessToken, a.clientOptions()...)
	if err != nil {
		return fmt.Errorf("%w: base_url in %s: %w", domain.ErrConfig, creds.Source, err)
	}

	a.service = application.NewService(client, a.remoteDirectory, a.logger)
	a.logger.Debug("wired", "config", creds.Source, "instance", client.Host())
	return nil
}

func (a *app) clientOptions() []mastodon.Option {
	return []mastodon.Option{
		mastodon.WithHTTPClient(a.httpClient),
		mastodon.WithLogger(a.logger),
		mastodon.WithUserAgent("mlm/" + version.Version),
	}
}

// remoteDirectory reads public collections from another instance without
// credentials.
func (a *app) remoteDirectory(host string) (ports.AccountDirectory, error) {
	client, err := mastodon.New("https://"+host, "", a.clientOptions()...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

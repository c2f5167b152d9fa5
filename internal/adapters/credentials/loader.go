package credentials

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/spf13/viper"
)

const (
	DefaultPath = "config.json"
	EnvPrefix   = "MLM"

	baseURLKey      = "base_url"
	clientKeyKey    = "client_key"
	clientIDKey     = "client_id"
	clientSecretKey = "client_secret"
	accessTokenKey  = "access_token"
)

// Load reads the credential file at path. Each field may be overridden by an
// MLM_-prefixed environment variable. client_id is accepted in place of
// client_key for files written by older releases.
func Load(path string, cfg *viper.Viper, logger *slog.Logger) (domain.Credentials, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Credentials{}, fmt.Errorf("%w: config file %s not found", domain.ErrConfig, path)
		}
		return domain.Credentials{}, fmt.Errorf("%w: config file %s is unreadable: %w", domain.ErrConfig, path, err)
	}
	if info.IsDir() {
		return domain.Credentials{}, fmt.Errorf("%w: config path %s is a directory", domain.ErrConfig, path)
	}

	cfg.SetConfigFile(path)
	cfg.SetConfigType("json")
	cfg.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{baseURLKey, clientKeyKey, clientIDKey, clientSecretKey, accessTokenKey} {
		if err := cfg.BindEnv(key); err != nil {
			return domain.Credentials{}, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if err := cfg.ReadInConfig(); err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: config file %s is not valid JSON: %w", domain.ErrConfig, path, err)
	}

	creds := domain.Credentials{
		BaseURL:      strings.TrimSpace(cfg.GetString(baseURLKey)),
		ClientKey:    strings.TrimSpace(cfg.GetString(clientKeyKey)),
		ClientSecret: strings.TrimSpace(cfg.GetString(clientSecretKey)),
		AccessToken:  strings.TrimSpace(cfg.GetString(accessTokenKey)),
		Source:       path,
	}
	if creds.ClientKey == "" {
		if legacy := strings.TrimSpace(cfg.GetString(clientIDKey)); legacy != "" {
			logger.Debug("config uses deprecated client_id field", "path", path)
			creds.ClientKey = legacy
		}
	}

	if missing := missingFields(creds); len(missing) > 0 {
		return domain.Credentials{}, fmt.Errorf("%w: config file %s is missing %s", domain.ErrConfig, path, strings.Join(missing, ", "))
	}

	return creds, nil
}

func missingFields(creds domain.Credentials) []string {
	var missing []string
	if creds.BaseURL == "" {
		missing = append(missing, baseURLKey)
	}
	if creds.ClientKey == "" {
		missing = append(missing, clientKeyKey)
	}
	if creds.ClientSecret == "" {
		missing = append(missing, clientSecretKey)
	}
	if creds.AccessToken == "" {
		missing = append(missing, accessTokenKey)
	}
	return missing
}

package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/mastodon-list-manager/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

type renderedSchema struct {
	Source       string `toml:"source" yaml:"source"`
	BaseURL      string `toml:"base_url" yaml:"base_url"`
	ClientKey    string `toml:"client_key" yaml:"client_key"`
	ClientSecret string `toml:"client_secret" yaml:"client_secret"`
	AccessToken  string `toml:"access_token" yaml:"access_token"`
}

// Render prints the effective bundle in the given format with every secret
// masked.
func Render(creds domain.Credentials, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatTOML:
		return RenderTOML(creds)
	case FormatYAML:
		return RenderYAML(creds)
	default:
		return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, format, FormatTOML, FormatYAML)
	}
}

func RenderTOML(creds domain.Credentials) (string, error) {
	data, err := toml.Marshal(masked(creds))
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	return string(data), nil
}

func RenderYAML(creds domain.Credentials) (string, error) {
	data, err := yaml.Marshal(masked(creds))
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	return string(data), nil
}

func masked(creds domain.Credentials) renderedSchema {
	return renderedSchema{
		Source:       creds.Source,
		BaseURL:      creds.BaseURL,
		ClientKey:    redact(creds.ClientKey),
		ClientSecret: redact(creds.ClientSecret),
		AccessToken:  redact(creds.AccessToken),
	}
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

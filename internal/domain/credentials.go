package domain

// Credentials is the bundle loaded once at startup. Nothing mutates it after
// loading.
type Credentials struct {
	BaseURL      string
	ClientKey    string
	ClientSecret string
	AccessToken  string
	// Source is the file the bundle was read from.
	Source string
}

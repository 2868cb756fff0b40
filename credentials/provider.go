package credentials

import (
	"errors"
	"fmt"
	"os"
)

// NewsAPIKey is the credential key of the news search provider.
const NewsAPIKey = "NEWS_API_KEY"

// ErrNotFound is returned when a credential is not configured.
var ErrNotFound = errors.New("credential not found")

// Provider defines the interface for credential providers
type Provider interface {
	GetCredential(key string) (string, error)
}

// EnvProvider retrieves credentials from environment variables
type EnvProvider struct{}

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

func (p *EnvProvider) GetCredential(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return value, nil
}

// StaticProvider serves a fixed set of credentials, for tests and for
// values that came from a config file.
type StaticProvider struct {
	credentials map[string]string
}

func NewStaticProvider(creds map[string]string) *StaticProvider {
	return &StaticProvider{
		credentials: creds,
	}
}

func (p *StaticProvider) GetCredential(key string) (string, error) {
	value, ok := p.credentials[key]
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return value, nil
}

// Chain asks each provider in order and returns the first credential found.
type Chain []Provider

func (c Chain) GetCredential(key string) (string, error) {
	for _, p := range c {
		if v, err := p.GetCredential(key); err == nil {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, key)
}

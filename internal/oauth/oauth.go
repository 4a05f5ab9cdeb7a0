// ABOUTME: OAuth provider registry and identity token acquisition
// ABOUTME: Decouples platform sign-in flows from the backend token exchange

package oauth

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Providers the backend exchange accepts.
const (
	ProviderGoogle = "google"
	ProviderApple  = "apple"
)

// TokenSource supplies a provider identity token. The interactive sign-in
// handshake (redirects, consent screens) is platform functionality that
// lives behind this interface.
type TokenSource interface {
	IdentityToken(ctx context.Context, provider string) (string, error)
}

// Registry validates provider names before token acquisition.
type Registry struct {
	providers map[string]struct{}
}

// NewRegistry creates a registry of the given provider names.
func NewRegistry(names ...string) *Registry {
	r := &Registry{providers: make(map[string]struct{}, len(names))}
	for _, name := range names {
		r.providers[strings.ToLower(name)] = struct{}{}
	}
	return r
}

// DefaultRegistry covers the providers the backend accepts.
func DefaultRegistry() *Registry {
	return NewRegistry(ProviderGoogle, ProviderApple)
}

// Lookup returns the canonical provider name, or an error naming the
// supported providers.
func (r *Registry) Lookup(name string) (string, error) {
	canonical := strings.ToLower(strings.TrimSpace(name))
	if _, ok := r.providers[canonical]; !ok {
		return "", fmt.Errorf("unknown provider %q (supported: %s)", name, strings.Join(r.Names(), ", "))
	}
	return canonical, nil
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnvTokenSource reads a pre-acquired identity token from the
// WAYFARER_OAUTH_TOKEN environment variable. Suits CI and scripting where
// no interactive provider flow is available.
type EnvTokenSource struct{}

func (EnvTokenSource) IdentityToken(ctx context.Context, provider string) (string, error) {
	token := os.Getenv("WAYFARER_OAUTH_TOKEN")
	if token == "" {
		return "", fmt.Errorf("WAYFARER_OAUTH_TOKEN is not set")
	}
	return token, nil
}

// StaticTokenSource returns a fixed identity token.
type StaticTokenSource struct {
	Token string
}

func (s StaticTokenSource) IdentityToken(ctx context.Context, provider string) (string, error) {
	if s.Token == "" {
		return "", fmt.Errorf("no identity token configured")
	}
	return s.Token, nil
}

// ABOUTME: Tests for the OAuth provider registry and token sources
// ABOUTME: Verifies provider name validation and env-based token acquisition

package oauth

import (
	"context"
	"testing"
)

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"canonical google", "google", "google", false},
		{"canonical apple", "apple", "apple", false},
		{"mixed case", "Google", "google", false},
		{"surrounding space", "  apple  ", "apple", false},
		{"unknown provider", "github", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Lookup(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Lookup(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	names := DefaultRegistry().Names()
	if len(names) != 2 || names[0] != "apple" || names[1] != "google" {
		t.Errorf("Names() = %v, want [apple google]", names)
	}
}

func TestEnvTokenSource(t *testing.T) {
	t.Setenv("WAYFARER_OAUTH_TOKEN", "env-id-token")

	token, err := EnvTokenSource{}.IdentityToken(context.Background(), ProviderGoogle)
	if err != nil {
		t.Fatalf("IdentityToken returned error: %v", err)
	}
	if token != "env-id-token" {
		t.Errorf("token = %q, want env-id-token", token)
	}
}

func TestEnvTokenSource_Unset(t *testing.T) {
	t.Setenv("WAYFARER_OAUTH_TOKEN", "")

	if _, err := (EnvTokenSource{}).IdentityToken(context.Background(), ProviderGoogle); err == nil {
		t.Error("expected error when WAYFARER_OAUTH_TOKEN is unset")
	}
}

func TestStaticTokenSource(t *testing.T) {
	token, err := StaticTokenSource{Token: "fixed"}.IdentityToken(context.Background(), ProviderApple)
	if err != nil {
		t.Fatalf("IdentityToken returned error: %v", err)
	}
	if token != "fixed" {
		t.Errorf("token = %q, want fixed", token)
	}

	if _, err := (StaticTokenSource{}).IdentityToken(context.Background(), ProviderApple); err == nil {
		t.Error("expected error for empty static token")
	}
}

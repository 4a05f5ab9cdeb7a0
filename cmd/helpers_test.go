// ABOUTME: Shared helpers for command tests
// ABOUTME: Isolates credential storage and seeds remembered sessions

package cmd

import (
	"encoding/json"
	"testing"

	"github.com/wayfarerhq/wayfarer-cli/internal/credstore"
	"github.com/wayfarerhq/wayfarer-cli/internal/models"
)

// isolateCredentials points the credential store at a throwaway directory.
func isolateCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

// seedSession persists a remembered session for commands to restore.
func seedSession(t *testing.T, user *models.User, accessToken, refreshToken string) {
	t.Helper()
	store := credstore.NewFileStore(credstore.DefaultConfigDir())
	if err := store.Set(credstore.KeyAccessToken, accessToken); err != nil {
		t.Fatalf("seed access token: %v", err)
	}
	if err := store.Set(credstore.KeyRefreshToken, refreshToken); err != nil {
		t.Fatalf("seed refresh token: %v", err)
	}
	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			t.Fatalf("marshal user: %v", err)
		}
		if err := store.Set(credstore.KeyUser, string(data)); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
}

// persistedValue reads one key back from the isolated credential store.
func persistedValue(t *testing.T, key string) (string, bool) {
	t.Helper()
	store := credstore.NewFileStore(credstore.DefaultConfigDir())
	value, ok, err := store.Get(key)
	if err != nil {
		t.Fatalf("read persisted %q: %v", key, err)
	}
	return value, ok
}

func tripUser() *models.User {
	return &models.User{ID: 1, Name: "Ada Voss", Email: "ada@example.com"}
}

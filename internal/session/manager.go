// ABOUTME: Session manager owning the current user and token pair
// ABOUTME: Mediates login, refresh, logout, and durable credential persistence

package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/wayfarerhq/wayfarer-cli/internal/api"
	"github.com/wayfarerhq/wayfarer-cli/internal/credstore"
	"github.com/wayfarerhq/wayfarer-cli/internal/models"
	"github.com/wayfarerhq/wayfarer-cli/internal/oauth"
)

// Manager mediates every credential exchange with the backend and keeps
// in-memory and durable session state consistent. Construct one per running
// program and pass it to whatever needs authentication state. In-memory
// state is authoritative; durable writes are best-effort.
type Manager struct {
	client *api.Client
	store  credstore.Store

	mu           sync.RWMutex
	currentUser  *models.User
	accessToken  string
	refreshToken string
	remember     bool

	// Collapses concurrent refresh attempts into one exchange.
	refreshGroup singleflight.Group
}

// NewManager creates a session manager backed by the given API client and
// credential store.
func NewManager(client *api.Client, store credstore.Store) *Manager {
	return &Manager{client: client, store: store}
}

// Login authenticates with email and password. On success the session holds
// the returned user and tokens; with remember set they are also persisted.
// Failures are returned as *AuthError with a display-ready message.
func (m *Manager) Login(ctx context.Context, email, password string, remember bool) (*models.User, error) {
	if email == "" || password == "" {
		return nil, &AuthError{Message: "Email and password are required"}
	}

	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		slog.Warn("Login failed", "email", email, "error", err)
		return nil, authErrorFrom(err, "Login failed")
	}

	m.establish(resp, remember)
	return resp.User, nil
}

// Signup registers a new account. Same session contract as Login.
func (m *Manager) Signup(ctx context.Context, params *models.SignupParams, remember bool) (*models.User, error) {
	if params == nil || params.Name == "" || params.Email == "" || params.Password == "" {
		return nil, &AuthError{Message: "Name, email, and password are required"}
	}

	resp, err := m.client.Signup(ctx, params)
	if err != nil {
		slog.Warn("Signup failed", "email", params.Email, "error", err)
		return nil, authErrorFrom(err, "Signup failed")
	}

	m.establish(resp, remember)
	return resp.User, nil
}

// LoginWithProvider acquires a third-party identity token through src and
// exchanges it for a local session. Returns the normalized identity, or nil
// on any failure: OAuth callers show a generic message without
// distinguishing causes.
func (m *Manager) LoginWithProvider(ctx context.Context, src oauth.TokenSource, provider string, remember bool) *models.OAuthIdentity {
	idToken, err := src.IdentityToken(ctx, provider)
	if err != nil {
		slog.Warn("Provider token acquisition failed", "provider", provider, "error", err)
		return nil
	}

	resp, err := m.client.ExchangeOAuth(ctx, provider, idToken)
	if err != nil {
		slog.Warn("OAuth exchange failed", "provider", provider, "error", err)
		return nil
	}

	m.establish(resp, remember)

	identity := &models.OAuthIdentity{Provider: provider}
	if resp.User != nil {
		identity.ID = resp.User.ID
		identity.Email = resp.User.Email
		identity.Name = resp.User.Name
	}
	return identity
}

// Logout invalidates the session. The remote call is best-effort: local and
// durable state are cleared regardless of its outcome, so logout never
// fails visibly.
func (m *Manager) Logout(ctx context.Context) {
	token := m.AccessToken()
	if token != "" {
		if err := m.client.Logout(ctx, token); err != nil {
			slog.Warn("Remote logout failed", "error", err)
		}
	}

	m.clear()
}

// CurrentUser returns the authenticated user. A cached user comes back
// without network traffic; otherwise the backend is asked who the token
// belongs to. A rejected token triggers exactly one refresh, then one
// retried fetch. Returns nil when no user can be established.
func (m *Manager) CurrentUser(ctx context.Context) *models.User {
	m.mu.RLock()
	cached := m.currentUser
	token := m.accessToken
	m.mu.RUnlock()

	if cached != nil {
		return cached
	}
	if token == "" {
		return nil
	}

	user, err := m.client.Me(ctx, token)
	if err == nil {
		m.setUser(user)
		return user
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		slog.Warn("Current user fetch failed", "error", err)
		return nil
	}

	// The backend rejected the token. Refresh once; a second rejection is
	// terminal because a failed refresh clears the session.
	if err := m.RefreshAccessToken(ctx); err != nil {
		return nil
	}

	user, err = m.client.Me(ctx, m.AccessToken())
	if err != nil {
		slog.Warn("Current user fetch failed after refresh", "error", err)
		return nil
	}

	m.setUser(user)
	return user
}

// RefreshAccessToken exchanges the refresh token for a new access token.
// Concurrent callers share one in-flight exchange and its outcome. Success
// updates the in-memory token pair and re-persists it for remembered
// sessions. Any failure clears all session state, durable included: this is
// the single point where a stale refresh token forces a full logout.
func (m *Manager) RefreshAccessToken(ctx context.Context) error {
	_, err, _ := m.refreshGroup.Do("refresh", func() (interface{}, error) {
		return nil, m.refresh(ctx)
	})
	return err
}

// refresh performs the token exchange behind the singleflight group.
func (m *Manager) refresh(ctx context.Context) error {
	m.mu.RLock()
	refreshToken := m.refreshToken
	remember := m.remember
	m.mu.RUnlock()

	if refreshToken == "" {
		m.clear()
		return &AuthError{Message: "Session expired"}
	}

	resp, err := m.client.Refresh(ctx, refreshToken)
	if err != nil {
		slog.Warn("Token refresh failed, clearing session", "error", err)
		m.clear()
		return authErrorFrom(err, "Session expired")
	}

	m.mu.Lock()
	m.accessToken = resp.AccessToken
	if resp.RefreshToken != "" {
		m.refreshToken = resp.RefreshToken
	}
	newRefreshToken := m.refreshToken
	if resp.User != nil {
		m.currentUser = resp.User
	}
	m.mu.Unlock()

	slog.Debug("Access token refreshed")

	if remember {
		m.persistTokens(resp.AccessToken, newRefreshToken)
	}
	return nil
}

// InitializeAuth restores a remembered session from the credential store.
// Restored state is trusted the same way a fresh login is: a persisted user
// record satisfies the next CurrentUser call without a round trip, and a
// stale access token heals through the refresh path on first use. Unreadable
// or unparseable persisted state clears the store and yields nil.
func (m *Manager) InitializeAuth(ctx context.Context) *models.User {
	accessToken, ok, err := m.store.Get(credstore.KeyAccessToken)
	if err != nil {
		slog.Warn("Failed to read persisted credentials, clearing", "error", err)
		m.clearStore()
		return nil
	}
	if !ok || accessToken == "" {
		return nil
	}

	refreshToken, _, err := m.store.Get(credstore.KeyRefreshToken)
	if err != nil {
		slog.Warn("Failed to read persisted refresh token, clearing", "error", err)
		m.clearStore()
		return nil
	}

	userJSON, hasUser, err := m.store.Get(credstore.KeyUser)
	if err != nil {
		slog.Warn("Failed to read persisted user, clearing", "error", err)
		m.clearStore()
		return nil
	}

	var user *models.User
	if hasUser && userJSON != "" {
		user = &models.User{}
		if err := json.Unmarshal([]byte(userJSON), user); err != nil {
			slog.Warn("Persisted user record is corrupt, clearing", "error", err)
			m.clearStore()
			return nil
		}
	}

	m.mu.Lock()
	m.currentUser = user
	m.accessToken = accessToken
	m.refreshToken = refreshToken
	m.remember = true
	m.mu.Unlock()

	slog.Debug("Restored persisted session", "has_user", user != nil)

	return m.CurrentUser(ctx)
}

// ForgotPassword asks the backend to send a reset email. No session state
// is touched.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return &AuthError{Message: "Email is required"}
	}
	if err := m.client.ForgotPassword(ctx, email); err != nil {
		return authErrorFrom(err, "Password reset request failed")
	}
	return nil
}

// ResetPassword completes a password reset with the emailed token. No
// session state is touched.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return &AuthError{Message: "Reset token and new password are required"}
	}
	if err := m.client.ResetPassword(ctx, token, newPassword); err != nil {
		return authErrorFrom(err, "Password reset failed")
	}
	return nil
}

// Do runs fn with the current access token. When the backend rejects the
// token (401/403), it refreshes once and reruns fn once with the new token.
// A failed refresh propagates fn's original rejection.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context, accessToken string) error) error {
	token := m.AccessToken()
	if token == "" {
		return &AuthError{Message: "Not logged in"}
	}

	err := fn(ctx, token)
	if err == nil || !api.IsAuthFailure(err) {
		return err
	}

	if refreshErr := m.RefreshAccessToken(ctx); refreshErr != nil {
		return err
	}

	return fn(ctx, m.AccessToken())
}

// IsAuthenticated reports whether both a current user and an access token
// are held. The refresh token is a recovery credential and does not count.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentUser != nil && m.accessToken != ""
}

// AccessToken returns the in-memory access token, or "" when signed out.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accessToken
}

// CachedUser returns the in-memory user without any network traffic.
func (m *Manager) CachedUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentUser
}

// establish replaces the session state with the result of a successful
// auth exchange and persists it when remembered.
func (m *Manager) establish(resp *models.AuthResponse, remember bool) {
	m.mu.Lock()
	m.currentUser = resp.User
	m.accessToken = resp.AccessToken
	m.refreshToken = resp.RefreshToken
	m.remember = remember
	m.mu.Unlock()

	slog.Debug("Session established", "remember", remember)

	if remember {
		m.persistTokens(resp.AccessToken, resp.RefreshToken)
		m.persistUser(resp.User)
	}
}

// setUser updates only the cached user.
func (m *Manager) setUser(user *models.User) {
	m.mu.Lock()
	m.currentUser = user
	m.mu.Unlock()
}

// persistTokens writes the token pair to the durable store. Failures are
// logged, never returned: in-memory state stays authoritative.
func (m *Manager) persistTokens(accessToken, refreshToken string) {
	if err := m.store.Set(credstore.KeyAccessToken, accessToken); err != nil {
		slog.Warn("Failed to persist access token", "error", err)
	}
	if refreshToken == "" {
		return
	}
	if err := m.store.Set(credstore.KeyRefreshToken, refreshToken); err != nil {
		slog.Warn("Failed to persist refresh token", "error", err)
	}
}

// persistUser writes the serialized user record to the durable store.
func (m *Manager) persistUser(user *models.User) {
	if user == nil {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		slog.Warn("Failed to serialize user", "error", err)
		return
	}
	if err := m.store.Set(credstore.KeyUser, string(data)); err != nil {
		slog.Warn("Failed to persist user", "error", err)
	}
}

// clear wipes in-memory state and durable credentials. Clearing is
// unconditional and idempotent: logout always wins.
func (m *Manager) clear() {
	m.mu.Lock()
	m.currentUser = nil
	m.accessToken = ""
	m.refreshToken = ""
	m.remember = false
	m.mu.Unlock()

	m.clearStore()
}

// clearStore removes every persisted credential key.
func (m *Manager) clearStore() {
	for _, key := range []string{credstore.KeyAccessToken, credstore.KeyRefreshToken, credstore.KeyUser} {
		if err := m.store.Delete(key); err != nil {
			slog.Warn("Failed to clear persisted credential", "key", key, "error", err)
		}
	}
}

// ABOUTME: Auth endpoint bindings for the Wayfarer backend
// ABOUTME: Login, signup, logout, me, refresh, password recovery, OAuth exchange

package api

import (
	"context"
	"net/http"

	"github.com/wayfarerhq/wayfarer-cli/internal/models"
)

// loginRequest is the /auth/login body
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// refreshRequest is the /auth/refresh body
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// oauthRequest is the /auth/oauth exchange body
type oauthRequest struct {
	IDToken  string `json:"id_token"`
	Provider string `json:"provider"`
}

// Login exchanges email and password for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	body := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Signup registers a new account and returns its first token pair.
func (c *Client) Signup(ctx context.Context, params *models.SignupParams) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", params, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Logout invalidates the token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

// Me returns the user the access token belongs to.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	body := refreshRequest{RefreshToken: refreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", "", body, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// ForgotPassword asks the backend to email a reset token.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", "", body, nil)
}

// ResetPassword completes a password reset with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "new_password": newPassword}
	return c.do(ctx, http.MethodPost, "/auth/reset-password", "", body, nil)
}

// ExchangeOAuth trades a provider identity token for a local token pair.
func (c *Client) ExchangeOAuth(ctx context.Context, provider, idToken string) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	body := oauthRequest{IDToken: idToken, Provider: provider}
	if err := c.do(ctx, http.MethodPost, "/auth/oauth", "", body, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

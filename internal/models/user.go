// ABOUTME: User identity and auth payload types shared across packages
// ABOUTME: Mirrors the backend's JSON contracts for users and token exchanges

package models

// User is the backend's user record. Profile preference fields are optional
// and filled in during signup or later profile edits.
type User struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TravelStyle    string `json:"travel_style,omitempty"`
	BudgetRange    string `json:"budget_range,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

// AuthResponse is the token payload returned by login, signup, refresh,
// and the OAuth exchange. Refresh responses may omit the user.
type AuthResponse struct {
	User         *User  `json:"user,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

// SignupParams carries the signup request fields. Name, Email, and
// Password are required; the rest are optional preferences.
type SignupParams struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	TravelStyle    string `json:"travel_style,omitempty"`
	BudgetRange    string `json:"budget_range,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

// OAuthIdentity is a normalized third-party identity returned after a
// successful OAuth exchange.
type OAuthIdentity struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

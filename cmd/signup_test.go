// ABOUTME: Tests for the signup command
// ABOUTME: Verifies account creation, preference passthrough, and rejections

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wayfarerhq/wayfarer-cli/internal/credstore"
	"github.com/wayfarerhq/wayfarer-cli/internal/models"
)

func TestSignupCommand_Success(t *testing.T) {
	isolateCredentials(t)

	var gotParams models.SignupParams
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/signup" {
			http.NotFound(w, r)
			return
		}
		json.NewDecoder(r.Body).Decode(&gotParams)
		json.NewEncoder(w).Encode(models.AuthResponse{
			User:         &models.User{ID: 2, Name: gotParams.Name, Email: gotParams.Email},
			AccessToken:  "signup-access",
			RefreshToken: "signup-refresh",
		})
	}))
	defer server.Close()

	apiURL = server.URL
	signupName = "Noah Reyes"
	signupEmail = "noah@example.com"
	signupPassword = "hunter22"
	signupStyle = "culture"
	signupBudget = "moderate"
	defer func() {
		apiURL = ""
		signupName = ""
		signupEmail = ""
		signupPassword = ""
		signupStyle = ""
		signupBudget = ""
	}()

	var buf bytes.Buffer
	exitCode := runSignup(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("Welcome aboard, Noah Reyes")) {
		t.Errorf("expected welcome message, got %q", buf.String())
	}
	if gotParams.TravelStyle != "culture" || gotParams.BudgetRange != "moderate" {
		t.Errorf("preferences sent = %+v, want culture/moderate", gotParams)
	}
	if token, ok := persistedValue(t, credstore.KeyAccessToken); !ok || token != "signup-access" {
		t.Errorf("persisted access token = %q (present=%v), want signup-access", token, ok)
	}
}

func TestSignupCommand_EmailTaken(t *testing.T) {
	isolateCredentials(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	}))
	defer server.Close()

	apiURL = server.URL
	signupName = "Noah Reyes"
	signupEmail = "noah@example.com"
	signupPassword = "hunter22"
	defer func() {
		apiURL = ""
		signupName = ""
		signupEmail = ""
		signupPassword = ""
	}()

	var buf bytes.Buffer
	exitCode := runSignup(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Email already registered")) {
		t.Errorf("expected rejection detail, got %q", buf.String())
	}
	if _, ok := persistedValue(t, credstore.KeyAccessToken); ok {
		t.Error("credentials persisted after failed signup")
	}
}

// ABOUTME: Tests for the token command
// ABOUTME: Verifies token printing for scripting and signed-out handling

package cmd

import (
	"bytes"
	"context"
	"testing"
)

func TestTokenCommand_PrintsToken(t *testing.T) {
	isolateCredentials(t)
	seedSession(t, tripUser(), "cli-access", "cli-refresh")

	apiURL = "http://localhost:1"
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runToken(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	// Exactly the token and a newline so it composes with $(wayfarer token)
	if buf.String() != "cli-access\n" {
		t.Errorf("output = %q, want bare token", buf.String())
	}
}

func TestTokenCommand_NotSignedIn(t *testing.T) {
	isolateCredentials(t)

	var buf bytes.Buffer
	exitCode := runToken(context.Background(), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Not signed in")) {
		t.Errorf("expected guidance message, got %q", buf.String())
	}
}

package service

import (
	"context"
	"errors"
	"testing"
)

func TestLoginMatchesPlaintextCredentials(t *testing.T) {
	gw, _ := startBackend(t)
	auth := NewAuthService(gw)
	ctx := context.Background()

	user, err := auth.Login(ctx, "admin", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("username = %q, want admin", user.Username)
	}

	current, ok := auth.CurrentUser()
	if !ok || current.Username != "admin" {
		t.Errorf("session not recorded: %v %v", current, ok)
	}

	auth.Logout()
	if _, ok := auth.CurrentUser(); ok {
		t.Error("session survives logout")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	gw, _ := startBackend(t)
	auth := NewAuthService(gw)
	ctx := context.Background()

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"nobody", "password123"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := auth.Login(ctx, tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): err = %v, want ErrInvalidCredentials", tc.username, tc.password, err)
		}
	}
	if _, ok := auth.CurrentUser(); ok {
		t.Error("failed login must not open a session")
	}
}

func TestLoginReportsUnreachableBackend(t *testing.T) {
	gw, flaky := startBackend(t)
	auth := NewAuthService(gw)

	flaky.setFail(true)
	if _, err := auth.Login(context.Background(), "admin", "password123"); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("err = %v, want ErrStoreUnavailable", err)
	}
}

package services

import (
	"testing"
)

func TestAccountRoundTrip(t *testing.T) {
	account, err := NewAccount("Round Trip", "roundtrip@example.com", "a-strong-password")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := NewAccount("Round Trip", "roundtrip@example.com", "a-strong-password"); err == nil {
		t.Error("duplicate signup succeeded")
	}

	logged, token, err := LoginAccount("roundtrip@example.com", "a-strong-password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != account.ID {
		t.Errorf("login returned account %d, want %d", logged.ID, account.ID)
	}

	authed, err := AuthenticateToken(token)
	if err != nil {
		t.Fatalf("authenticate token: %v", err)
	}
	if authed.ID != account.ID {
		t.Errorf("token resolved to account %d, want %d", authed.ID, account.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	if _, err := NewAccount("Bad Cred", "badcred@example.com", "a-strong-password"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, _, err := LoginAccount("badcred@example.com", "wrong-password"); err == nil {
		t.Error("login with wrong password succeeded")
	}
	if _, _, err := LoginAccount("nobody@example.com", "a-strong-password"); err == nil {
		t.Error("login with unknown email succeeded")
	}
}

func TestAuthenticateTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := AuthenticateToken(token); err == nil {
			t.Errorf("AuthenticateToken(%q) succeeded", token)
		}
	}
}

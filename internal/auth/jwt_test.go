// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func newTestManager(t *testing.T, lifetime time.Duration) *Manager {
	t.Helper()
	m, err := NewManager(testSecret, lifetime)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestNewManagerRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewManager("short", time.Hour)
	if err == nil {
		t.Fatal("expected error for short secret")
	}
	if !strings.Contains(err.Error(), "32 characters") {
		t.Errorf("error = %q, want mention of the length requirement", err)
	}
}

func TestNewManagerRejectsNonPositiveLifetime(t *testing.T) {
	t.Parallel()

	for _, lifetime := range []time.Duration{0, -time.Hour} {
		if _, err := NewManager(testSecret, lifetime); err == nil {
			t.Errorf("lifetime %s: expected error", lifetime)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, time.Hour)
	token, err := m.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Errorf("subject = %q, want %q", claims.Subject, "user-42")
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, time.Hour)

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr string
	}{
		{
			name: "garbage token",
			token: func(*testing.T) string {
				return "not.a.token"
			},
			wantErr: "parse token",
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   "user-1",
					IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				})
				signed, err := tok.SignedString([]byte(testSecret))
				if err != nil {
					t.Fatalf("SignedString: %v", err)
				}
				return signed
			},
			wantErr: "parse token",
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				other, err := NewManager("another-secret-key-also-32-chars-plus", time.Hour)
				if err != nil {
					t.Fatalf("NewManager: %v", err)
				}
				tok, err := other.GenerateToken("user-1")
				if err != nil {
					t.Fatalf("GenerateToken: %v", err)
				}
				return tok
			},
			wantErr: "parse token",
		},
		{
			name: "unsigned token rejected",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"})
				signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
				if err != nil {
					t.Fatalf("SignedString: %v", err)
				}
				return signed
			},
			wantErr: "parse token",
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				})
				signed, err := tok.SignedString([]byte(testSecret))
				if err != nil {
					t.Fatalf("SignedString: %v", err)
				}
				return signed
			},
			wantErr: "missing subject",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := m.ValidateToken(tt.token(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, time.Hour)
	if _, err := m.GenerateToken(""); err == nil {
		t.Error("expected error for empty user id")
	}
}

package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	tok, err := iss.Issue("u1", "admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	c, err := iss.Parse(tok)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.UserID != "u1" || c.Role != "admin" || c.Subject != "u1" {
		t.Errorf("claims = %+v", c)
	}
}

func TestParseRejects(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	good, _ := iss.Issue("u1", "member")

	expired := NewIssuer("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _ := expired.Issue("u1", "member")

	other, _ := NewIssuer("other", time.Hour).Issue("u1", "member")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"wrong secret", other},
		{"expired", old},
		{"truncated", good[:len(good)-4]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := iss.Parse(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc ", "abc"},
		{"Basic abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		if got := BearerToken(r); got != tt.want {
			t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("x")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "x" {
		t.Error("hash equals the password")
	}
	if !CheckPassword(hash, "x") {
		t.Error("CheckPassword rejected the right password")
	}
	if CheckPassword(hash, "y") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

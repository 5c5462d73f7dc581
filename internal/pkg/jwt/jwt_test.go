package jwt

import (
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	SetSecret("test-secret")

	token, err := Sign("user-1", true, false, time.Hour)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if !claims.VIP || claims.IsAdmin {
		t.Errorf("flags = vip:%v admin:%v, want vip:true admin:false", claims.VIP, claims.IsAdmin)
	}
}

func TestParseExpiredToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := Sign("user-1", false, false, -time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseWrongSecret(t *testing.T) {
	SetSecret("secret-a")
	token, err := Sign("user-1", false, true, time.Hour)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	SetSecret("secret-b")
	defer SetSecret("secret-a")
	if _, err := Parse(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

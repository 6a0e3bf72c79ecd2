package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	claims := Claims{UserID: "u1", Name: "Maria", Role: RoleSupervisor, EmployeeID: "e1"}
	token, err := GenerateToken("secret", claims, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	parsed, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if parsed.UserID != "u1" || parsed.Role != RoleSupervisor || parsed.EmployeeID != "e1" {
		t.Fatalf("unexpected claims: %+v", parsed)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u1", Role: RoleHR}, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ParseToken("other", token); err == nil {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestRefreshTokenHashRoundTrip(t *testing.T) {
	hash, err := HashRefreshToken("opaque-secret")
	if err != nil {
		t.Fatalf("hash refresh token: %v", err)
	}
	if err := CheckRefreshToken(hash, "opaque-secret"); err != nil {
		t.Fatalf("check refresh token: %v", err)
	}
	if err := CheckRefreshToken(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch for wrong secret")
	}
}

func TestSplitRefreshToken(t *testing.T) {
	id, secret, ok := splitRefreshToken("abc.def.ghi")
	if !ok || id != "abc" || secret != "def.ghi" {
		t.Fatalf("unexpected split: %q %q %v", id, secret, ok)
	}
	if _, _, ok := splitRefreshToken("no-separator"); ok {
		t.Fatal("expected malformed token to be rejected")
	}
	if _, _, ok := splitRefreshToken(".secret"); ok {
		t.Fatal("expected empty session id to be rejected")
	}
}

func TestRolePredicates(t *testing.T) {
	if !IsAdmin(RoleHR) || !IsAdmin(RoleBPRH) {
		t.Fatal("rh and bp_rh must be admins")
	}
	if IsAdmin(RoleSupervisor) {
		t.Fatal("supervisor must not be admin")
	}
	if !CanEvaluate(RoleSupervisor) {
		t.Fatal("supervisor must be able to evaluate")
	}
	if CanEvaluate(RoleColaborador) {
		t.Fatal("colaborador must not evaluate")
	}
	if ValidRole("manager") {
		t.Fatal("unknown role accepted")
	}
}

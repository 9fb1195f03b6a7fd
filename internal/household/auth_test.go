package household

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue(Member{ID: 42, HouseholdID: 7})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.MemberID != 42 {
		t.Errorf("MemberID = %d, want 42", claims.MemberID)
	}
	if claims.HouseholdID != 7 {
		t.Errorf("HouseholdID = %d, want 7", claims.HouseholdID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Issue(Member{ID: 1, HouseholdID: 1})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := NewTokenIssuer("secret-b").Parse(token); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	for _, bad := range []string{"", "not.a.token", strings.Repeat("x", 200)} {
		if _, err := issuer.Parse(bad); err == nil {
			t.Errorf("expected Parse(%q) to fail", bad)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not be the plaintext")
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("expected non-matching password to fail")
	}
}

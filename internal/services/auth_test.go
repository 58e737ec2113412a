package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/types"
)

func TestMintAndParseToken(t *testing.T) {
	svc := NewAuthService(newSeedLogger(t), "test-secret", time.Hour)

	userID := uuid.New()
	token, err := svc.MintToken(userID, types.RoleInstructor)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("subject = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != types.RoleInstructor {
		t.Fatalf("role = %q, want instructor", claims.Role)
	}
	if !claims.Role.IsStaff() {
		t.Fatal("instructor must count as staff")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	minter := NewAuthService(newSeedLogger(t), "secret-a", time.Hour)
	verifier := NewAuthService(newSeedLogger(t), "secret-b", time.Hour)

	token, err := minter.MintToken(uuid.New(), types.RoleStudent)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("token verified under the wrong secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(newSeedLogger(t), "test-secret", -time.Minute)

	token, err := svc.MintToken(uuid.New(), types.RoleStudent)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := svc.ParseToken(token); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newSeedLogger(t), "test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", strings.Repeat("x", 200)} {
		if _, err := svc.ParseToken(tok); err == nil {
			t.Fatalf("garbage token %q verified", tok)
		}
	}
}

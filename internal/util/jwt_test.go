package util

import (
	"testing"
	"time"

	"smart_survey_backend/internal/model"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{Name: "Ana", Email: "a@x.com"}
	user.ID = 7

	token, tokenID, err := GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token id")
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWT returned error: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "a@x.com" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "a@x.com"}
	user.ID = 1

	token, _, err := GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{Email: "a@x.com"}
	user.ID = 1

	token, _, err := GenerateJWT(user, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	user := &model.User{Email: "a@x.com"}
	user.ID = 1

	_, first, err := GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}
	_, second, err := GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}
	if first == second {
		t.Error("expected distinct token ids per issuance")
	}
}

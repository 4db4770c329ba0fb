package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"smart_survey_backend/internal/config"
	"smart_survey_backend/internal/model"
	"smart_survey_backend/internal/repository"
	"smart_survey_backend/internal/util"
)

type stubTokenStore struct {
	mu     sync.Mutex
	active map[uint]string
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{active: map[uint]string{}}
}

func (s *stubTokenStore) Save(_ context.Context, userID uint, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[userID] = tokenID
	return nil
}

func (s *stubTokenStore) Active(_ context.Context, userID uint, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[userID] == tokenID, nil
}

func (s *stubTokenStore) Revoke(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, userID)
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *stubTokenStore) {
	t.Helper()
	db := newTestDB(t)
	tokens := newStubTokenStore()
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	return NewAuthService(repository.NewUserRepository(db), tokens, cfg), tokens
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Ana", "a@x.com", "Secret123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 || token == "" {
		t.Fatalf("expected persisted user and token, got id=%d token=%q", user.ID, token)
	}
	if user.Password == "Secret123" {
		t.Fatal("password stored in plain text")
	}

	if _, _, err := svc.Login(ctx, "a@x.com", "Secret123"); err != nil {
		t.Fatalf("Login after Register returned error: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Ana", "a@x.com", "Secret123"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, _, err := svc.Register(ctx, "Otra", "a@x.com", "Secret456")
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("duplicate Register error = %v, want ErrEmailRegistered", err)
	}

	var count int64
	if err := svc.UserRepo.DB.Model(&model.User{}).Where("email = ?", "a@x.com").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("user rows = %d, want 1", count)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Ana", "a@x.com", "Secret123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, _, err := svc.Login(ctx, "a@x.com", "WrongPassword")
	if !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", err)
	}

	// 不存在的邮箱返回同一个错误
	_, _, err = svc.Login(ctx, "nadie@x.com", "Secret123")
	if !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginInvalidatesPreviousToken(t *testing.T) {
	svc, tokens := newTestAuthService(t)
	ctx := context.Background()

	user, firstToken, err := svc.Register(ctx, "Ana", "a@x.com", "Secret123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	firstClaims, err := util.ParseJWT(firstToken, "test-secret")
	if err != nil {
		t.Fatalf("parse first token: %v", err)
	}

	if _, _, err := svc.Login(ctx, "a@x.com", "Secret123"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	active, err := tokens.Active(ctx, user.ID, firstClaims.TokenID)
	if err != nil {
		t.Fatalf("Active returned error: %v", err)
	}
	if active {
		t.Error("expected first token to be revoked after re-login")
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, tokens := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Ana", "a@x.com", "Secret123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if err := svc.Logout(ctx, user.ID); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	active, err := tokens.Active(ctx, user.ID, claims.TokenID)
	if err != nil {
		t.Fatalf("Active returned error: %v", err)
	}
	if active {
		t.Error("expected token to be inactive after logout")
	}

	// 重复登出不报错
	if err := svc.Logout(ctx, user.ID); err != nil {
		t.Fatalf("second Logout returned error: %v", err)
	}
}

package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterReturnsUserAndToken(t *testing.T) {
	router := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                  "Ana",
		"email":                 "a@x.com",
		"password":              "Secret123",
		"password_confirmation": "Secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !env.Success {
		t.Error("expected success envelope")
	}
	if env.Data["token_type"] != "Bearer" {
		t.Errorf("token_type = %v", env.Data["token_type"])
	}
	user, _ := env.Data["user"].(map[string]interface{})
	if user["email"] != "a@x.com" {
		t.Errorf("user = %v", user)
	}
}

func TestRegisterValidationCollectsAllErrors(t *testing.T) {
	router := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                  "Ana",
		"email":                 "not-an-email",
		"password":              "short",
		"password_confirmation": "different",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	for _, field := range []string{"email", "password", "password_confirmation"} {
		if len(env.Errors[field]) == 0 {
			t.Errorf("missing errors for %q: %v", field, env.Errors)
		}
	}
}

func TestRegisterDuplicateEmailIsValidationError(t *testing.T) {
	router := setupTestRouter(t)
	registerUser(t, router, "Ana", "a@x.com", "Secret123")

	w, env := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                  "Otra",
		"email":                 "a@x.com",
		"password":              "Secret456",
		"password_confirmation": "Secret456",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(env.Errors["email"]) == 0 {
		t.Errorf("expected email error, got %v", env.Errors)
	}
}

func TestLoginSuccessIncludesCompletionFlag(t *testing.T) {
	router := setupTestRouter(t)
	registerUser(t, router, "Ana", "a@x.com", "Secret123")

	w, env := doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@x.com",
		"password": "Secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	user, _ := env.Data["user"].(map[string]interface{})
	if user["has_completed_survey"] != false {
		t.Errorf("has_completed_survey = %v, want false", user["has_completed_survey"])
	}
	if env.Data["token"] == "" {
		t.Error("expected token in login response")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := setupTestRouter(t)
	registerUser(t, router, "Ana", "a@x.com", "Secret123")

	for _, body := range []gin.H{
		{"email": "a@x.com", "password": "WrongPassword"},
		{"email": "nadie@x.com", "password": "Secret123"},
	} {
		w, env := doRequest(t, router, http.MethodPost, "/api/auth/login", "", body)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		// 邮箱不存在与密码错误不可区分
		if env.Message != "Credenciales inválidas" {
			t.Errorf("message = %q", env.Message)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{"/api/auth/me", "/api/survey/status", "/api/survey/questions", "/api/survey/results", "/api/user"} {
		w, _ := doRequest(t, router, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d", path, w.Code)
		}
	}

	w, _ := doRequest(t, router, http.MethodGet, "/api/auth/me", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d", w.Code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	router := setupTestRouter(t)
	token := registerUser(t, router, "Ana", "a@x.com", "Secret123")

	w, _ := doRequest(t, router, http.MethodPost, "/api/auth/logout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: status = %d, body %s", w.Code, w.Body.String())
	}

	w, _ = doRequest(t, router, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("me after logout: status = %d", w.Code)
	}
}

func TestReloginInvalidatesOldToken(t *testing.T) {
	router := setupTestRouter(t)
	oldToken := registerUser(t, router, "Ana", "a@x.com", "Secret123")

	w, env := doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@x.com",
		"password": "Secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d", w.Code)
	}
	newToken, _ := env.Data["token"].(string)

	w, _ = doRequest(t, router, http.MethodGet, "/api/auth/me", oldToken, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("old token after re-login: status = %d", w.Code)
	}
	w, _ = doRequest(t, router, http.MethodGet, "/api/auth/me", newToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("new token: status = %d", w.Code)
	}
}

func TestMeIncludesSurveyState(t *testing.T) {
	router := setupTestRouter(t)
	token := registerUser(t, router, "Ana", "a@x.com", "Secret123")

	_, env := doRequest(t, router, http.MethodGet, "/api/auth/me", token, nil)
	user, _ := env.Data["user"].(map[string]interface{})
	if user["has_completed_survey"] != false {
		t.Errorf("has_completed_survey = %v, want false", user["has_completed_survey"])
	}
	if user["survey_response"] != nil {
		t.Errorf("survey_response = %v, want null", user["survey_response"])
	}

	w, _ := doRequest(t, router, http.MethodPost, "/api/survey/submit", token, validSubmitBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: status = %d, body %s", w.Code, w.Body.String())
	}

	_, env = doRequest(t, router, http.MethodGet, "/api/auth/me", token, nil)
	user, _ = env.Data["user"].(map[string]interface{})
	if user["has_completed_survey"] != true {
		t.Errorf("has_completed_survey = %v, want true", user["has_completed_survey"])
	}
	if user["survey_response"] == nil {
		t.Error("expected latest survey_response in me payload")
	}
}

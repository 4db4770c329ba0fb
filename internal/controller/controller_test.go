package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"smart_survey_backend/internal/config"
	"smart_survey_backend/internal/middleware"
	"smart_survey_backend/internal/repository"
	"smart_survey_backend/internal/service"
	"smart_survey_backend/pkg/database"
	"smart_survey_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type memTokenStore struct {
	mu     sync.Mutex
	active map[uint]string
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{active: map[uint]string{}}
}

func (s *memTokenStore) Save(_ context.Context, userID uint, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[userID] = tokenID
	return nil
}

func (s *memTokenStore) Active(_ context.Context, userID uint, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[userID] == tokenID, nil
}

func (s *memTokenStore) Revoke(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, userID)
	return nil
}

// setupTestRouter 按 app.registerRoutes 的布局搭一个不依赖 MySQL/Redis 的路由
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	tokens := newMemTokenStore()

	userRepo := repository.NewUserRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)

	authSvc := service.NewAuthService(userRepo, tokens, cfg)
	surveySvc := service.NewSurveyService(surveyRepo)

	authCtl := NewAuthController(authSvc, surveySvc)
	surveyCtl := NewSurveyController(surveySvc, authSvc)
	healthCtl := NewHealthController(db)

	router := gin.New()

	public := router.Group("/api")
	{
		public.GET("/health", healthCtl.HealthCheck)
		public.GET("/test", healthCtl.Ping)
		public.POST("/auth/register", authCtl.Register)
		public.POST("/auth/login", authCtl.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, tokens))
	{
		authGroup.POST("/auth/logout", authCtl.Logout)
		authGroup.GET("/auth/me", authCtl.Me)
		authGroup.GET("/survey/questions", surveyCtl.GetQuestions)
		authGroup.POST("/survey/submit", surveyCtl.Submit)
		authGroup.GET("/survey/results", surveyCtl.GetResults)
		authGroup.GET("/survey/status", surveyCtl.CheckStatus)
		authGroup.GET("/user", authCtl.CurrentUser)
	}

	return router
}

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
	Errors  map[string][]string    `json:"errors"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		// /api/user 返回裸对象，解析失败时保持零值
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func registerUser(t *testing.T, router *gin.Engine, name, email, password string) string {
	t.Helper()
	w, env := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                  name,
		"email":                 email,
		"password":              password,
		"password_confirmation": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	token, _ := env.Data["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response %s", email, w.Body.String())
	}
	return token
}

func validSubmitBody() gin.H {
	return gin.H{
		"favorite_framework":    "X",
		"experience_level":      "Senior",
		"programming_languages": []string{"PHP"},
		"teamwork_rating":       5,
		"agile_experience":      true,
	}
}

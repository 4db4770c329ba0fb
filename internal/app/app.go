package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"smart_survey_backend/internal/config"
	"smart_survey_backend/internal/controller"
	"smart_survey_backend/internal/repository"
	"smart_survey_backend/internal/service"
	"smart_survey_backend/pkg/database"
	"smart_survey_backend/pkg/logger"
	"smart_survey_backend/pkg/monitoring"
	"smart_survey_backend/pkg/security"
	"smart_survey_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	mu sync.RWMutex // 保护可热更新的配置
}

type repositories struct {
	user   *repository.UserRepository
	survey *repository.SurveyRepository
	tokens repository.TokenStore
}

type services struct {
	auth   *service.AuthService
	survey *service.SurveyService
}

type controllers struct {
	auth   *controller.AuthController
	survey *controller.SurveyController
	health *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:   repository.NewUserRepository(db),
		survey: repository.NewSurveyRepository(db),
		tokens: repository.NewRedisTokenStore(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}
	s.auth = service.NewAuthService(repos.user, repos.tokens, cfg)
	s.survey = service.NewSurveyService(repos.survey)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:   controller.NewAuthController(s.auth, s.survey),
		survey: controller.NewSurveyController(s.survey, s.auth),
		health: controller.NewHealthController(db),
	}
}

// allowedOrigins 每次请求读取当前配置，配合 ApplyConfig 实现热更新
func (a *App) allowedOrigins() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Config.CORS.AllowedOrigins
}

// ApplyConfig 配置文件变更后由 configwatcher 调用
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	a.Config.CORS = cfg.CORS
	a.mu.Unlock()
	logger.Log.Info("Config reloaded", zap.Strings("cors_allowed_origins", cfg.CORS.AllowedOrigins))
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.allowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	// release 模式默认不自动迁移，除非显式传入 -migrate
	runMigrations := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, runMigrations)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("smart-survey", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

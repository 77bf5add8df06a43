package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"thinkquest_backend/internal/config"
	"thinkquest_backend/internal/controller"
	"thinkquest_backend/internal/repository"
	"thinkquest_backend/internal/service"
	"thinkquest_backend/pkg/database"
	"thinkquest_backend/pkg/logger"
	"thinkquest_backend/pkg/monitoring"
	"thinkquest_backend/pkg/security"
	"thinkquest_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	problem  *repository.ProblemRepository
	quiz     *repository.QuizRepository
	progress *repository.ProgressRepository
}

type services struct {
	gemini      *service.GeminiService
	score       *service.ScoreService
	persona     *service.PersonaService
	storage     *service.StorageService
	auth        *service.AuthService
	user        *service.UserService
	problem     *service.ProblemService
	quiz        *service.QuizService
	progress    *service.ProgressService
	leaderboard *service.LeaderboardService
	avatar      *service.AvatarService
}

type controllers struct {
	auth     *controller.AuthController
	score    *controller.ScoreController
	chat     *controller.ChatController
	quiz     *controller.QuizController
	progress *controller.ProgressController
	quest    *controller.QuestController
	avatar   *controller.AvatarController
	problem  *controller.ProblemController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig runs the registered hot-reload callbacks with a freshly
// loaded configuration.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		problem:  repository.NewProblemRepository(db),
		quiz:     repository.NewQuizRepository(db),
		progress: repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.gemini = service.NewGeminiService(cfg.Gemini)
	s.storage = service.NewStorageService(cfg)
	s.score = service.NewScoreService(s.gemini)
	s.persona = service.NewPersonaService(s.gemini, s.gemini)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.problem = service.NewProblemService(repos.problem, rdb)
	s.quiz = service.NewQuizService(repos.quiz, repos.user)
	s.progress = service.NewProgressService(repos.progress, repos.problem)
	s.leaderboard = service.NewLeaderboardService(repos.user, repos.problem)
	s.avatar = service.NewAvatarService(repos.user)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, s.user),
		score:    controller.NewScoreController(s.score, s.persona, s.storage),
		chat:     controller.NewChatController(s.persona),
		quiz:     controller.NewQuizController(s.quiz),
		progress: controller.NewProgressController(s.progress),
		quest:    controller.NewQuestController(s.leaderboard, s.progress),
		avatar:   controller.NewAvatarController(s.avatar),
		problem:  controller.NewProblemController(s.problem),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
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

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("thinkquest-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
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

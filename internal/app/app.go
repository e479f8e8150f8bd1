package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tryout_backend/internal/config"
	"tryout_backend/internal/controller"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/service"
	"tryout_backend/pkg/database"
	"tryout_backend/pkg/logger"
	"tryout_backend/pkg/monitoring"
	"tryout_backend/pkg/security"
	"tryout_backend/pkg/tracing"

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
	admin        *repository.AdminRepository
	category     *repository.CategoryRepository
	subCategory  *repository.SubCategoryRepository
	question     *repository.QuestionRepository
	student      *repository.StudentRepository
	testSession  *repository.TestSessionRepository
	note         *repository.NoteRepository
	noteCategory *repository.NoteCategoryRepository
}

type services struct {
	auth         *service.AuthService
	category     *service.CategoryService
	subCategory  *service.SubCategoryService
	question     *service.QuestionService
	student      *service.StudentService
	testSession  *service.TestSessionService
	note         *service.NoteService
	noteCategory *service.NoteCategoryService
}

type controllers struct {
	auth         *controller.AuthController
	category     *controller.CategoryController
	subCategory  *controller.SubCategoryController
	question     *controller.QuestionController
	student      *controller.StudentController
	testSession  *controller.TestSessionController
	note         *controller.NoteController
	noteCategory *controller.NoteCategoryController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded configuration out to registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		admin:        repository.NewAdminRepository(db),
		category:     repository.NewCategoryRepository(db),
		subCategory:  repository.NewSubCategoryRepository(db),
		question:     repository.NewQuestionRepository(db),
		student:      repository.NewStudentRepository(db),
		testSession:  repository.NewTestSessionRepository(db),
		note:         repository.NewNoteRepository(db),
		noteCategory: repository.NewNoteCategoryRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.admin, cfg)
	s.category = service.NewCategoryService(repos.category)
	s.subCategory = service.NewSubCategoryService(repos.subCategory, repos.category)
	s.question = service.NewQuestionService(repos.question, repos.subCategory)
	s.student = service.NewStudentService(repos.student, repos.testSession, rdb)
	s.testSession = service.NewTestSessionService(repos.testSession, repos.student, repos.subCategory, repos.question, rdb)
	s.note = service.NewNoteService(repos.note, repos.noteCategory)
	s.noteCategory = service.NewNoteCategoryService(repos.noteCategory, repos.note)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		category:     controller.NewCategoryController(s.category),
		subCategory:  controller.NewSubCategoryController(s.subCategory),
		question:     controller.NewQuestionController(s.question),
		student:      controller.NewStudentController(s.student),
		testSession:  controller.NewTestSessionController(s.testSession),
		note:         controller.NewNoteController(s.note),
		noteCategory: controller.NewNoteCategoryController(s.noteCategory),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
		if window <= 0 {
			window = time.Minute
		}
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

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
	}

	// The cache is an accelerator, not a dependency; services treat a
	// nil client as cache-off.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("tryout-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

	logger.Log.Sync()
	log.Println("Server exiting")
}

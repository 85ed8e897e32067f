package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus_hub_backend/internal/config"
	"campus_hub_backend/internal/controller"
	"campus_hub_backend/internal/service"
	"campus_hub_backend/internal/store"
	"campus_hub_backend/pkg/database"
	"campus_hub_backend/pkg/logger"
	"campus_hub_backend/pkg/monitoring"
	"campus_hub_backend/pkg/security"
	"campus_hub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Store           *store.EntityStore
	backend         store.Backend
	services        *services
	configCallbacks []func(*config.Config)
}

type services struct {
	userData *service.UserDataService
	academic *service.AcademicService
	note     *service.NoteService
	chat     *service.ChatService
	course   *service.CourseService
	backup   *service.BackupService
}

type controllers struct {
	user     *controller.UserController
	academic *controller.AcademicController
	note     *controller.NoteController
	chat     *controller.ChatController
	course   *controller.CourseController
	userData *controller.UserDataController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 配置热更新入口，由 configwatcher 驱动
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("配置已热更新")
}

// initBackend 按配置选择实体存储后端
func initBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Store.Driver {
	case "mysql":
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return store.NewGormBackend(db)
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisBackend(rdb), nil
	default:
		return store.NewMemoryBackend(), nil
	}
}

func (a *App) initServices(entityStore *store.EntityStore, cfg *config.Config) (*services, error) {
	provider, err := service.NewStorageProvider(&cfg.Backup)
	if err != nil {
		return nil, err
	}

	return &services{
		userData: service.NewUserDataService(entityStore),
		academic: service.NewAcademicService(entityStore),
		note:     service.NewNoteService(entityStore),
		chat:     service.NewChatService(entityStore),
		course:   service.NewCourseService(entityStore),
		backup:   service.NewBackupService(entityStore, provider),
	}, nil
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		user:     controller.NewUserController(s.userData),
		academic: controller.NewAcademicController(s.academic),
		note:     controller.NewNoteController(s.note),
		chat:     controller.NewChatController(s.chat),
		course:   controller.NewCourseController(s.course),
		userData: controller.NewUserDataController(s.userData, s.backup),
		health:   controller.NewHealthController(a.backend),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 统计对账兜底：写统计失败的用户定期以集合为准重算
func (a *App) startBackgroundTasks(entityStore *store.EntityStore) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if n := entityStore.ReconcilePending(); n > 0 {
				logger.Log.Info("统计对账完成", zap.Int("users", n))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	backend, err := initBackend(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage backend", zap.Error(err))
		log.Fatalf("Failed to initialize storage backend: %v", err)
	}
	app.backend = backend
	app.Store = store.NewEntityStore(backend, logger.Log)

	services, err := app.initServices(app.Store, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
		log.Fatalf("Failed to initialize services: %v", err)
	}
	app.services = services
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("campus-hub", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Backup.Type == "local" {
		router.Static("/backups", cfg.Backup.LocalPath)
	}

	app.startBackgroundTasks(app.Store)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
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

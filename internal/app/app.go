package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"treinahub_backend/internal/config"
	"treinahub_backend/internal/controller"
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/service"
	"treinahub_backend/pkg/configwatcher"
	"treinahub_backend/pkg/database"
	"treinahub_backend/pkg/logger"
	"treinahub_backend/pkg/monitoring"
	"treinahub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	cfg    *config.Config
	db     *gorm.DB
	cache  *redis.Client
	engine *gin.Engine
}

type repositories struct {
	user       *repository.UserRepository
	training   *repository.TrainingRepository
	simulado   *repository.SimuladoRepository
	historico  *repository.HistoricoRepository
	resultado  *repository.ResultadoRepository
	trilha     *repository.TrilhaRepository
	pdi        *repository.PdiRepository
	category   *repository.CategoryRepository
	department *repository.DepartmentRepository
	badge      *repository.BadgeRepository
	article    *repository.ArticleRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	training    *service.TrainingService
	simulado    *service.SimuladoService
	achievement *service.AchievementService
	progress    *service.ProgressService
	ranking     *service.RankingService
	trilha      *service.TrilhaService
	pdi         *service.PdiService
	taxonomy    *service.TaxonomyService
	article     *service.ArticleService
	badge       *service.BadgeService
	report      *service.ReportService
	backup      *service.BackupService
	storage     *service.StorageService
}

type controllers struct {
	auth     *controller.AuthController
	training *controller.TrainingController
	simulado *controller.SimuladoController
	progress *controller.ProgressController
	pdi      *controller.PdiController
	trilha   *controller.TrilhaController
	taxonomy *controller.TaxonomyController
	article  *controller.ArticleController
	user     *controller.UserController
	report   *controller.ReportController
	backup   *controller.BackupController
	upload   *controller.UploadController
	badge    *controller.BadgeController
}

func New(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)

	// Em release a migração só roda com -migrate; em debug roda sempre.
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		return nil, err
	}

	cache, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// O serviço continua sem cache; o catálogo passa direto pelo banco.
		logger.Log.Warn("Redis indisponível, seguindo sem cache", zap.Error(err))
		cache = nil
	}

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("treinahub-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Warn("tracing desabilitado", zap.Error(err))
		}
	}
	monitoring.Init()

	repos := buildRepositories(db)
	svcs, err := buildServices(cfg, db, cache, repos)
	if err != nil {
		return nil, err
	}
	ctls := buildControllers(repos, svcs)

	if err := ensureAdminUser(repos.user); err != nil {
		return nil, err
	}

	app := &App{cfg: cfg, db: db, cache: cache}
	app.engine = buildRouter(cfg, ctls)

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if reloaded, ok := newCfg.(*config.Config); ok {
			*cfg = *reloaded
			logger.Log.Info("configuração recarregada")
		}
	})

	return app, nil
}

func buildRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		training:   repository.NewTrainingRepository(db),
		simulado:   repository.NewSimuladoRepository(db),
		historico:  repository.NewHistoricoRepository(db),
		resultado:  repository.NewResultadoRepository(db),
		trilha:     repository.NewTrilhaRepository(db),
		pdi:        repository.NewPdiRepository(db),
		category:   repository.NewCategoryRepository(db),
		department: repository.NewDepartmentRepository(db),
		badge:      repository.NewBadgeRepository(db),
		article:    repository.NewArticleRepository(db),
	}
}

func buildServices(cfg *config.Config, db *gorm.DB, cache *redis.Client, r *repositories) (*services, error) {
	achievement := service.NewAchievementService(r.user, r.resultado, r.badge)
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	return &services{
		auth:        service.NewAuthService(r.user, cfg),
		user:        service.NewUserService(r.user, r.historico, r.resultado),
		training:    service.NewTrainingService(r.training, r.historico, cache, cfg.Gamification.DefaultPoints),
		simulado:    service.NewSimuladoService(r.simulado, r.resultado, achievement),
		achievement: achievement,
		progress:    service.NewProgressService(r.training, r.historico, r.trilha),
		ranking:     service.NewRankingService(r.user, r.resultado),
		trilha:      service.NewTrilhaService(r.trilha, r.training),
		pdi:         service.NewPdiService(r.pdi, r.user),
		taxonomy:    service.NewTaxonomyService(r.category, r.department),
		article:     service.NewArticleService(r.article),
		badge:       service.NewBadgeService(r.badge),
		report:      service.NewReportService(r.user, r.training, r.simulado, r.historico, r.resultado),
		backup:      service.NewBackupService(db, r.user),
		storage:     storage,
	}, nil
}

func buildControllers(r *repositories, s *services) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, r.user),
		training: controller.NewTrainingController(s.training, r.user),
		simulado: controller.NewSimuladoController(s.simulado, r.user),
		progress: controller.NewProgressController(s.progress, s.ranking, r.user),
		pdi:      controller.NewPdiController(s.pdi, r.user),
		trilha:   controller.NewTrilhaController(s.trilha),
		taxonomy: controller.NewTaxonomyController(s.taxonomy),
		article:  controller.NewArticleController(s.article),
		user:     controller.NewUserController(s.user, s.achievement),
		report:   controller.NewReportController(s.report),
		backup:   controller.NewBackupController(s.backup),
		upload:   controller.NewUploadController(s.storage),
		badge:    controller.NewBadgeController(s.badge),
	}
}

// ensureAdminUser garante uma conta administrativa no primeiro boot. A senha
// vem de TREINAHUB_ADMIN_PASSWORD e deve ser trocada após o primeiro login.
func ensureAdminUser(users *repository.UserRepository) error {
	existing, err := users.FindByEmail("admin@treinahub.com.br")
	if err != nil || existing != nil {
		return err
	}
	password := os.Getenv("TREINAHUB_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashed, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:       "Administrador",
		Email:      "admin@treinahub.com.br",
		Password:   hashed,
		Role:       model.Admin,
		Department: model.DepartmentAll,
		Active:     true,
	}
	if err := users.Create(admin); err != nil {
		return err
	}
	logger.Log.Info("conta administrativa criada", zap.String("email", admin.Email))
	return nil
}

// Run sobe o servidor HTTP e espera SIGINT/SIGTERM para desligar sem derrubar
// requisições em andamento.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.cfg.Server.Port,
		Handler: a.engine,
	}

	go func() {
		logger.Log.Info("servidor iniciado", zap.String("porta", a.cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("desligando o servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if a.cache != nil {
		a.cache.Close()
	}
	logger.Log.Info("servidor finalizado")
	return nil
}

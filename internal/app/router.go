package app

import (
	"net/http"
	"time"

	"treinahub_backend/docs"
	"treinahub_backend/internal/config"
	"treinahub_backend/internal/middleware"
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/util"
	"treinahub_backend/pkg/monitoring"
	"treinahub_backend/pkg/security"
	"treinahub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func buildRouter(cfg *config.Config, ctl *controllers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(security.CORS(cfg.CORS.AllowedOrigins))
	r.Use(security.Secure())
	r.Use(monitoring.MetricsMiddleware())
	if cfg.Tracing.Enabled {
		r.Use(tracing.GinMiddleware())
	}
	if cfg.RateLimit.MaxRequests > 0 {
		window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
		r.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", monitoring.PrometheusHandler())

	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Storage.Type == util.StorageLocal {
		r.Static("/uploads", cfg.Storage.LocalPath)
	}

	api := r.Group("/api/v1")
	api.POST("/auth/login", ctl.auth.Login)

	// Rotas de funcionário: qualquer usuário autenticado e ativo.
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(cfg))
	{
		auth.GET("/me", ctl.auth.Profile)
		auth.PUT("/me/senha", ctl.auth.ChangePassword)

		auth.GET("/treinamentos", ctl.training.Catalog)
		auth.GET("/treinamentos/:id", ctl.training.Get)
		auth.POST("/treinamentos/:id/concluir", ctl.training.Complete)
		auth.POST("/treinamentos/:id/refazer", ctl.training.Retake)
		auth.POST("/treinamentos/:id/progresso", ctl.training.WatchProgress)

		auth.GET("/simulados", ctl.simulado.List)
		auth.GET("/simulados/:id", ctl.simulado.Get)
		auth.GET("/simulados/:id/elegibilidade", ctl.simulado.Eligibility)
		auth.GET("/simulados/:id/tentativas", ctl.simulado.History)
		auth.POST("/simulados/:id/tentativas", ctl.simulado.Attempt)

		auth.GET("/progresso", ctl.progress.Summary)
		auth.GET("/certificados", ctl.progress.Certificates)
		auth.GET("/trilhas", ctl.progress.Trilhas)
		auth.GET("/trilhas/:id", ctl.progress.Trilha)
		auth.GET("/ranking", ctl.progress.Ranking)

		auth.GET("/pdis", ctl.pdi.Mine)
		auth.PUT("/pdis/:id/status", ctl.pdi.SetStatus)

		auth.GET("/artigos", ctl.article.List)
		auth.GET("/artigos/:id", ctl.article.Get)

		auth.GET("/categorias", ctl.taxonomy.Categories)
		auth.GET("/departamentos", ctl.taxonomy.Departments)
	}

	// Rotas administrativas.
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/dashboard", ctl.report.Dashboard)

		admin.GET("/usuarios", ctl.user.List)
		admin.POST("/usuarios", ctl.user.Create)
		admin.POST("/usuarios/importar", ctl.backup.ImportUsersCSV)
		admin.GET("/usuarios/:id", ctl.user.Get)
		admin.PUT("/usuarios/:id", ctl.user.Update)
		admin.DELETE("/usuarios/:id", ctl.user.Delete)
		admin.PUT("/usuarios/:id/ativo", ctl.user.SetActive)
		admin.POST("/usuarios/:id/zerar", ctl.user.ResetProgress)
		admin.POST("/usuarios/:id/conquistas", ctl.user.RefreshAchievements)

		admin.GET("/treinamentos", ctl.training.AdminList)
		admin.POST("/treinamentos", ctl.training.Create)
		admin.PUT("/treinamentos/:id", ctl.training.Update)
		admin.DELETE("/treinamentos/:id", ctl.training.Delete)
		admin.GET("/treinamentos/:id/conclusoes", ctl.training.Completions)

		admin.GET("/simulados", ctl.simulado.AdminList)
		admin.POST("/simulados", ctl.simulado.Create)
		admin.PUT("/simulados/:id", ctl.simulado.Update)
		admin.DELETE("/simulados/:id", ctl.simulado.Delete)

		admin.GET("/trilhas", ctl.trilha.AdminList)
		admin.POST("/trilhas", ctl.trilha.Create)
		admin.PUT("/trilhas/:id", ctl.trilha.Update)
		admin.DELETE("/trilhas/:id", ctl.trilha.Delete)

		admin.GET("/pdis", ctl.pdi.AdminList)
		admin.POST("/pdis", ctl.pdi.Create)
		admin.PUT("/pdis/:id", ctl.pdi.Update)
		admin.DELETE("/pdis/:id", ctl.pdi.Delete)

		admin.POST("/categorias", ctl.taxonomy.CreateCategory)
		admin.PUT("/categorias/:id", ctl.taxonomy.UpdateCategory)
		admin.DELETE("/categorias/:id", ctl.taxonomy.DeleteCategory)
		admin.POST("/departamentos", ctl.taxonomy.CreateDepartment)
		admin.PUT("/departamentos/:id", ctl.taxonomy.UpdateDepartment)
		admin.DELETE("/departamentos/:id", ctl.taxonomy.DeleteDepartment)

		admin.GET("/artigos", ctl.article.AdminList)
		admin.POST("/artigos", ctl.article.Create)
		admin.PUT("/artigos/:id", ctl.article.Update)
		admin.DELETE("/artigos/:id", ctl.article.Delete)

		admin.GET("/medalhas", ctl.badge.List)
		admin.POST("/medalhas", ctl.badge.Create)
		admin.PUT("/medalhas/:id", ctl.badge.Update)
		admin.DELETE("/medalhas/:id", ctl.badge.Delete)

		admin.GET("/relatorios/geral", ctl.report.General)
		admin.GET("/relatorios/geral/xlsx", ctl.report.ExportXLSX)
		admin.GET("/relatorios/usuarios/:id", ctl.report.Individual)

		admin.POST("/uploads/videos", ctl.upload.UploadVideo)
		admin.POST("/uploads/materiais", ctl.upload.UploadAttachment)

		admin.GET("/backup/exportar", ctl.backup.Export)
		admin.POST("/backup/importar", ctl.backup.Import)
	}

	return r
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/project-showcase-api/internal/auth"
	"github.com/yukikurage/project-showcase-api/internal/config"
	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/handlers"
	"github.com/yukikurage/project-showcase-api/internal/logger"
	"github.com/yukikurage/project-showcase-api/internal/middleware"
	"github.com/yukikurage/project-showcase-api/internal/repository"
	"github.com/yukikurage/project-showcase-api/internal/services"
	"github.com/yukikurage/project-showcase-api/internal/validation"
	"gorm.io/gorm"
)

// Services bundles the business services shared by the HTTP server and the admin CLI.
type Services struct {
	Auth     *services.AuthService
	Batches  *services.BatchService
	Projects *services.ProjectService
	Users    *services.UserService
}

// NewServices wires repositories and services on top of db.
func NewServices(cfg *config.Config, db *gorm.DB, log zerolog.Logger) *Services {
	userRepo := repository.NewUserRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	hasher := auth.NewBcryptHasher(0)
	tokens := auth.NewTokenManager(auth.TokenConfig{
		Secret:    cfg.JWT.Secret,
		ExpiresIn: cfg.JWT.ExpiresIn,
		Issuer:    cfg.JWT.Issuer,
	})

	batchService := services.NewBatchService(batchRepo, userRepo, cfg.Batch.DefaultDepartment)

	return &Services{
		Auth:     services.NewAuthService(userRepo, batchRepo, batchService, tokens, hasher, cfg.Admin, log),
		Batches:  batchService,
		Projects: services.NewProjectService(projectRepo, batchRepo, userRepo),
		Users:    services.NewUserService(userRepo, projectRepo, batchService, hasher, log),
	}
}

// NewRouter builds the gin engine with every API route.
func NewRouter(svc *Services, log zerolog.Logger) *gin.Engine {
	validation.Init()

	r := gin.New()
	r.Use(logger.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		apierrors.InternalError(c, "")
		c.Abort()
	}))

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "Route not found")
	})

	authHandler := handlers.NewAuthHandler(svc.Auth)
	batchHandler := handlers.NewBatchHandler(svc.Batches)
	projectHandler := handlers.NewProjectHandler(svc.Projects)
	userHandler := handlers.NewUserHandler(svc.Users)

	requireAuth := middleware.RequireAuth(svc.Auth)
	requireAdmin := middleware.RequireAdmin()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Project Showcase API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/init-admin", authHandler.InitAdmin)
			authRoutes.GET("/profile", requireAuth, authHandler.Profile)
			authRoutes.POST("/register-student", requireAuth, requireAdmin, authHandler.RegisterStudent)
			authRoutes.POST("/create-batch", requireAuth, requireAdmin, batchHandler.CreateBatch)
			authRoutes.GET("/batches", requireAuth, requireAdmin, batchHandler.ListBatches)
			authRoutes.GET("/batches/:batchId", requireAuth, middleware.RequireBatchAccess("batchId"), batchHandler.GetBatch)
			authRoutes.DELETE("/batches/:batchId", requireAuth, requireAdmin, batchHandler.DeleteBatch)
		}

		// Project routes
		projects := api.Group("/projects")
		{
			projects.GET("/public", projectHandler.ListPublicProjects)
			projects.GET("/public/batches", batchHandler.ListPublicBatches)

			protected := projects.Group("")
			protected.Use(requireAuth)
			{
				protected.GET("", projectHandler.ListProjects)
				protected.POST("", projectHandler.CreateProject)
				protected.GET("/admin/stats", requireAdmin, projectHandler.Stats)
				protected.GET("/batch/:batchId", middleware.RequireBatchAccess("batchId"), projectHandler.ListBatchProjects)
				protected.GET("/:id", projectHandler.GetProject)
				protected.PUT("/:id", projectHandler.UpdateProject)
				protected.DELETE("/:id", projectHandler.DeleteProject)
				protected.POST("/:id/approve", requireAdmin, projectHandler.ApproveProject)
			}
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("", requireAdmin, userHandler.ListUsers)
			users.GET("/admin/stats", requireAdmin, userHandler.Stats)
			users.POST("/change-password", userHandler.ChangePassword)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.POST("/:id/deactivate", requireAdmin, userHandler.DeactivateUser)
			users.POST("/:id/reactivate", requireAdmin, userHandler.ReactivateUser)
		}
	}

	return r
}

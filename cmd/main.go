package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/database"
	_ "github.com/lshigami/edulearn/docs" // Swagger docs
	adminctrl "github.com/lshigami/edulearn/internal/controller/admin"
	instructorctrl "github.com/lshigami/edulearn/internal/controller/instructor"
	userctrl "github.com/lshigami/edulearn/internal/controller/user"
	"github.com/lshigami/edulearn/internal/logger"
	"github.com/lshigami/edulearn/internal/middleware"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/lshigami/edulearn/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title EduLearn Assessment & Certification API
// @version 1.0
// @description Assessment scoring, course progress and certificate issuance for the EduLearn platform.
// @contact.name API Support
// @contact.email support@edulearn.example
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger.Init("info", "console")

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			middleware.NewAuthenticator,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewCourseRepository,
			repository.NewAssessmentRepository,
			repository.NewAttemptRepository,
			repository.NewCertificateRepository,
		),

		fx.Provide(
			service.NewAnswerKeyScorer,
			service.NewTokenGenerator,
			service.NewCourseSummaryService,
			service.NewCertificateService,
			service.NewAssessmentService,
			service.NewSubmissionService,
			service.NewGradingAssistantService,
			service.NewCourseService,
		),

		fx.Provide(
			userctrl.NewTestResultController,
			userctrl.NewCertificateController,
			userctrl.NewCatalogController,
			instructorctrl.NewInstructorController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(func(cfg *config.Config) { logger.Init(cfg.Log.Level, cfg.Log.Format) }),
		fx.Invoke(MigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(cfg.Server.AllowOrigins) == 0 || cfg.Server.AllowOrigins[0] == "*" {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	auth *middleware.Authenticator,
	testResultCtrl *userctrl.TestResultController,
	certificateCtrl *userctrl.CertificateController,
	catalogCtrl *userctrl.CatalogController,
	instructorCtrl *instructorctrl.InstructorController,
	adminCtrl *adminctrl.AdminController,
) {
	public := router.Group("/api/v1")
	authed := public.Group("", auth.RequireAuth())
	instructor := authed.Group("/instructor", middleware.RequireRole(model.RoleTeacher, model.RoleAdmin))
	admin := authed.Group("/admin", middleware.RequireRole(model.RoleAdmin))

	catalogCtrl.RegisterRoutes(public)
	certificateCtrl.RegisterRoutes(public, authed)
	testResultCtrl.RegisterRoutes(authed)
	instructorCtrl.RegisterRoutes(instructor)
	adminCtrl.RegisterRoutes(admin)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EduLearn API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}

func MigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

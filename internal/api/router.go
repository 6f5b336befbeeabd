package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/simonindia/hr-portal/docs"
	"github.com/simonindia/hr-portal/internal/api/handler"
	"github.com/simonindia/hr-portal/internal/api/middleware"
	"github.com/simonindia/hr-portal/internal/core/domain"
	"github.com/simonindia/hr-portal/internal/core/service"
	mongodb "github.com/simonindia/hr-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/simonindia/hr-portal/internal/infrastructure/db/redis"
	"github.com/simonindia/hr-portal/internal/infrastructure/storage"
	"github.com/simonindia/hr-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit("16M")) // matches the image upload cap
	e.Use(echoprometheus.NewMiddleware("hrportal"))

	// --- Dependencies ---
	creds, err := resolveAdminCredentials(cfg.Admin)
	if err != nil {
		return nil, err
	}

	images, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	sessions := redisdb.NewSessionStore(rdb)
	authService := service.NewAuthService(creds, sessions, cfg.JWTSecret, cfg.SessionTTL, log)
	newsService := service.NewNewsService(mongodb.NewNewsRepository(db), images, log)
	referralService := service.NewReferralService(mongodb.NewReferralRepository(db), log)

	authHandler := handler.NewAuthHandler(authService)
	newsHandler := handler.NewNewsHandler(newsService, images)
	referralHandler := handler.NewReferralHandler(referralService)
	pageHandler := handler.NewPageHandler(cfg.WebDir)
	requireAuth := middleware.Auth(authService)

	// --- Pages (rendering is owned by the frontend assets) ---
	e.GET("/", pageHandler.Landing)
	e.GET("/Application", pageHandler.Application)
	e.GET("/employee-corner", pageHandler.EmployeeCorner)
	e.GET("/forms", pageHandler.Forms)
	e.GET("/login", pageHandler.Login)

	// --- Auth ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/api/auth/check", authHandler.CheckAuth)

	// --- News posts ---
	e.GET("/api/news", newsHandler.List)
	e.POST("/api/news", newsHandler.Create, requireAuth)
	e.PUT("/api/news/:id", newsHandler.Update, requireAuth)
	e.DELETE("/api/news/:id", newsHandler.Delete, requireAuth)
	e.GET("/uploads/images/:filename", newsHandler.ServeImage)

	// --- Referrals ---
	e.GET("/api/referrals", referralHandler.List, requireAuth)
	e.POST("/api/referrals", referralHandler.Create)
	e.GET("/api/referrals/export-excel", referralHandler.Export, requireAuth)

	// --- Ops (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}

// resolveAdminCredentials turns the configured pair into ready-to-compare
// credentials. A plaintext ADMIN_PASSWORD is only accepted as a bootstrap
// convenience: it is hashed here and never kept around.
func resolveAdminCredentials(cfg config.AdminConfig) (domain.AdminCredentials, error) {
	hash := cfg.PasswordHash
	if hash == "" {
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.AdminCredentials{}, err
		}
		hash = string(generated)
	}

	return domain.AdminCredentials{
		Username:     cfg.Username,
		PasswordHash: hash,
	}, nil
}

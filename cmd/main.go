package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"campuseats/api/handler"
	apiMiddleware "campuseats/api/middleware"
	"campuseats/api/routes"
	"campuseats/config"
	"campuseats/internal/repository"
	"campuseats/internal/service"
	"campuseats/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := config.Connect(cfg)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}

	validate := validator.New()

	tokens := utils.TokenManager{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.TokenTTL,
	}
	mfaTokens := service.MFATokenIssuer{
		Secret: []byte(cfg.MFATokenSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    5 * time.Minute,
	}

	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	hasher := service.BcryptPasswordHasher{Cost: cfg.BcryptCost}
	codes := service.NumericCodeGenerator{}
	auditor := service.NewAuditor(auditRepo, logger)

	var mailer service.Mailer
	if cfg.EmailTransport == "resend" && cfg.ResendAPIKey != "" {
		mailer = service.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		mailer = &service.JSONMailer{Logger: logger}
	}

	verificationConfig := service.VerificationConfig{
		CodeTTL:         cfg.CodeTTL,
		ResendCooldown:  cfg.ResendCooldown,
		IncludeDevCodes: cfg.IncludeDevCodes(),
	}
	userVerification := service.NewVerificationService(
		service.NewUserAccountStore(userRepo),
		mailer, hasher, codes, service.RealClock{}, logger, verificationConfig,
	)
	restaurantVerification := service.NewVerificationService(
		service.NewRestaurantAccountStore(restaurantRepo),
		mailer, hasher, codes, service.RealClock{}, logger, verificationConfig,
	)

	userService := service.NewUserService(userRepo, userVerification, hasher, tokens, auditor)
	restaurantService := service.NewRestaurantService(restaurantRepo, restaurantVerification, hasher, tokens, auditor)
	menuService := service.NewMenuService(menuItemRepo, restaurantRepo)
	orderService := service.NewOrderService(orderRepo, restaurantRepo, menuItemRepo, auditor, logger)
	adminService := service.NewAdminService(
		adminRepo, restaurantRepo, hasher, tokens, mfaTokens,
		service.NewTOTPProvider(cfg.JWTIssuer), auditor, logger,
	)

	if err := adminService.SeedIfMissing(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.WithError(err).Fatal("admin seed failed")
	}

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	router := routes.NewRouter(
		app,
		handler.NewAuthHandler(userService, validate),
		handler.NewRestaurantHandler(restaurantService, menuService, orderService, validate),
		handler.NewAdminHandler(adminService, validate),
		handler.NewOrderHandler(orderService),
		handler.NewPublicHandler(restaurantService, menuService),
		apiMiddleware.AuthMiddleware{JWT: &tokens},
	)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.Addr,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.WithField("addr", cfg.Addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

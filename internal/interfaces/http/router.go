// Package http assembles the web application: repositories, use cases,
// handlers and routes, in that order.
package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminusecases "helpdesk/internal/application/admin/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	adminhandler "helpdesk/internal/interfaces/http/handlers/admin"
	authhandler "helpdesk/internal/interfaces/http/handlers/auth"
	tickethandler "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/interfaces/http/views"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// NewRouter builds the gin engine with every page wired up. redisClient may
// be nil, in which case login and register run without rate limiting.
func NewRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, log logger.Interface) (*gin.Engine, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))

	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery())

	templates, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	// Repositories.
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Shared services.
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokens := auth.NewSessionTokenService(cfg.Auth.Session.Secret)
	markdownService := markdown.NewService()

	// Use cases.
	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, tokens, cfg.Auth.Session, log)
	logoutUC := userusecases.NewLogoutUseCase(sessionRepo, log)
	bootstrapUC := userusecases.NewBootstrapAdminUseCase(userRepo, hasher, cfg.Auth.AdminSetupToken, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, sessionRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, commentRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, log)
	changeStatusUC := ticketusecases.NewChangeTicketStatusUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(gormDB, ticketRepo, commentRepo, log)
	deleteCommentUC := ticketusecases.NewDeleteCommentUseCase(commentRepo, log)

	dashboardUC := adminusecases.NewGetDashboardUseCase(userRepo, ticketRepo, commentRepo, log)

	// Handlers.
	authHandler := authhandler.NewHandler(registerUC, loginUC, logoutUC, bootstrapUC, cfg.Auth.Cookie, log)
	ticketHandler := tickethandler.NewHandler(
		createTicketUC, listTicketsUC, getTicketUC, updateTicketUC, addCommentUC,
		userRepo, markdownService, log,
	)
	adminHandler := adminhandler.NewHandler(
		dashboardUC, changeStatusUC, deleteTicketUC, deleteCommentUC, deleteUserUC, log,
	)

	authMW := middleware.NewAuthMiddleware(tokens, sessionRepo, log)
	loginLimiter, registerLimiter := buildRateLimiters(cfg, redisClient)

	routes.RegisterAuthRoutes(router, authHandler, authMW, loginLimiter, registerLimiter)
	routes.RegisterTicketRoutes(router, ticketHandler, authMW)
	routes.RegisterAdminRoutes(router, adminHandler, authMW)

	return router, nil
}

func buildRateLimiters(cfg *config.Config, redisClient *redis.Client) (gin.HandlerFunc, gin.HandlerFunc) {
	noop := func(c *gin.Context) { c.Next() }
	if redisClient == nil {
		return noop, noop
	}

	window := time.Duration(cfg.RateLimit.LoginWindowS) * time.Second
	login := middleware.NewRateLimiter(redisClient, cfg.RateLimit.LoginLimit, window)
	register := middleware.NewRateLimiter(redisClient, cfg.RateLimit.RegisterLimit, window)
	return login.Limit(), register.Limit()
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production", "prod":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

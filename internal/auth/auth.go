package auth

import (
	"fmt"

	authhttp "bookmarks-api/internal/auth/adapter/http"
	"bookmarks-api/internal/auth/adapter/persistence/mongodb"
	"bookmarks-api/internal/auth/adapter/security"
	"bookmarks-api/internal/auth/config"
	"bookmarks-api/internal/auth/domain/repository"
	"bookmarks-api/internal/auth/usecase"
	"bookmarks-api/internal/shared/database"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Module represents the complete authentication module
type Module struct {
	repository repository.AuthRepository
	tokenSvc   repository.TokenService
	usecase    usecase.AuthUsecaseInterface
	handler    *authhttp.AuthHTTPHandler
	users      *authhttp.UserHTTPHandler
	config     *config.Config
}

// NewModule creates a new authentication module instance
func NewModule(db *mongo.Database, sequences *database.SequenceGenerator, cfg *config.Config) (*Module, error) {
	authRepo, err := mongodb.NewMongoAuthRepository(db, sequences)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth repository: %w", err)
	}

	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	authUsecase := usecase.NewAuthUsecase(authRepo, security.NewBcryptHasher(), tokenSvc)

	return &Module{
		repository: authRepo,
		tokenSvc:   tokenSvc,
		usecase:    authUsecase,
		handler:    authhttp.NewAuthHTTPHandler(authUsecase),
		users:      authhttp.NewUserHTTPHandler(authUsecase),
		config:     cfg,
	}, nil
}

// RegisterRoutes registers the credential and profile routes with the provided router
func (m *Module) RegisterRoutes(router fiber.Router) {
	middleware := m.Middleware()
	m.handler.SetupAuthRoutes(router, middleware)
	m.users.SetupUserRoutes(router, middleware)
}

// Usecase returns the auth usecase for external access
func (m *Module) Usecase() usecase.AuthUsecaseInterface {
	return m.usecase
}

// Middleware returns the bearer guard middleware
func (m *Module) Middleware() *authhttp.AuthMiddleware {
	return authhttp.NewAuthMiddleware(m.usecase)
}

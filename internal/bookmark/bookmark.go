package bookmark

import (
	"fmt"

	authhttp "bookmarks-api/internal/auth/adapter/http"
	bookmarkhttp "bookmarks-api/internal/bookmark/adapter/http"
	"bookmarks-api/internal/bookmark/adapter/persistence"
	"bookmarks-api/internal/bookmark/adapter/persistence/mongodb"
	"bookmarks-api/internal/bookmark/config"
	"bookmarks-api/internal/bookmark/domain/repository"
	"bookmarks-api/internal/bookmark/usecase"
	"bookmarks-api/internal/shared/database"
	"bookmarks-api/internal/shared/eventbus"
	"bookmarks-api/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Module represents the complete bookmark module
type Module struct {
	repository repository.BookmarkRepository
	usecase    usecase.BookmarkUsecaseInterface
	handler    *bookmarkhttp.BookmarkHTTPHandler
	bus        *eventbus.EventBus
}

// NewModule creates a new bookmark module instance. The Redis client is
// optional; without it no activity log is attached to the event bus.
func NewModule(
	db *mongo.Database,
	sequences *database.SequenceGenerator,
	redisClient *redis.Client,
	redisCfg *config.RedisConfig,
	log logger.Logger,
) (*Module, error) {
	repo, err := mongodb.NewMongoBookmarkRepository(db, sequences)
	if err != nil {
		return nil, fmt.Errorf("failed to create bookmark repository: %w", err)
	}

	bus := eventbus.NewEventBus(log)
	if redisClient != nil {
		activityLog := persistence.NewRedisActivityLog(redisClient, redisCfg.StreamName, redisCfg.StreamMaxLen, log)
		activityLog.RegisterHandlers(bus)
	}

	bookmarkUsecase := usecase.NewBookmarkUsecase(repo, bus)

	return &Module{
		repository: repo,
		usecase:    bookmarkUsecase,
		handler:    bookmarkhttp.NewBookmarkHTTPHandler(bookmarkUsecase),
		bus:        bus,
	}, nil
}

// RegisterRoutes registers the bookmark routes behind the given bearer guard
func (m *Module) RegisterRoutes(router fiber.Router, middleware *authhttp.AuthMiddleware) {
	m.handler.SetupBookmarkRoutes(router, middleware)
}

// Usecase returns the bookmark usecase for external access
func (m *Module) Usecase() usecase.BookmarkUsecaseInterface {
	return m.usecase
}

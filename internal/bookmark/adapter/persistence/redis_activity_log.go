package persistence

import (
	"context"

	"bookmarks-api/internal/bookmark/domain/model"
	"bookmarks-api/internal/shared/eventbus"
	"bookmarks-api/internal/shared/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisActivityLog appends bookmark mutation events to a Redis Stream.
// Delivery is best effort: a failed append is logged and never fails the
// request that produced the event.
type RedisActivityLog struct {
	client *redis.Client
	stream string
	maxLen int64
	logger logger.Logger
}

// NewRedisActivityLog creates a new Redis-backed activity log
func NewRedisActivityLog(client *redis.Client, stream string, maxLen int64, log logger.Logger) *RedisActivityLog {
	return &RedisActivityLog{
		client: client,
		stream: stream,
		maxLen: maxLen,
		logger: log.WithComponent("activity_log"),
	}
}

// RegisterHandlers subscribes the activity log to all bookmark mutation events.
func (l *RedisActivityLog) RegisterHandlers(bus eventbus.EventBusInterface) {
	bus.Subscribe(model.EventBookmarkCreated, l.Append)
	bus.Subscribe(model.EventBookmarkUpdated, l.Append)
	bus.Subscribe(model.EventBookmarkDeleted, l.Append)
}

// Append writes one event to the stream, trimming it to the configured
// approximate maximum length.
func (l *RedisActivityLog) Append(ctx context.Context, event eventbus.Event) error {
	payload, ok := event.Data().(model.BookmarkEvent)
	if !ok {
		l.logger.Warnf("Dropping event %s with unexpected payload type", event.Type())
		return nil
	}

	_, err := l.client.XAdd(ctx, &redis.XAddArgs{
		Stream: l.stream,
		MaxLen: l.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"event_id":    uuid.New().String(),
			"type":        event.Type(),
			"bookmark_id": payload.BookmarkID,
			"owner_id":    payload.OwnerID,
			"timestamp":   payload.OccurredAt.UnixNano(),
		},
	}).Result()
	if err != nil {
		l.logger.Errorf("Failed to append %s to stream %s: %v", event.Type(), l.stream, err)
		return err
	}

	return nil
}

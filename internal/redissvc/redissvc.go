package redissvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-manager/internal/logger"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

const (
	// EventsChannel is the pub/sub channel store events are published on.
	EventsChannel = "inventory:events"

	// EventsLogKey holds the most recent events, newest first.
	EventsLogKey = "inventory:events:log"

	// EventsLogSize caps EventsLogKey.
	EventsLogSize = 100

	publishTimeout = 2 * time.Second
)

type RedisService struct {
	rdb *redis.Client
	log *logger.Logger
}

func NewRedisService(rdb *redis.Client, log *logger.Logger) *RedisService {
	return &RedisService{
		rdb: rdb,
		log: log,
	}
}

// Connect opens a client for addr and pings it.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// EncodeEvent returns the JSON payload published for ev.
func EncodeEvent(ev repo.Event) ([]byte, error) {
	return json.Marshal(ev)
}

// Publish sends ev to EventsChannel and prepends it to the capped event log.
func (a *RedisService) Publish(ctx context.Context, ev repo.Event) error {
	data, err := EncodeEvent(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	_, err = a.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Publish(ctx, EventsChannel, data)
		pipe.LPush(ctx, EventsLogKey, data)
		pipe.LTrim(ctx, EventsLogKey, 0, EventsLogSize-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.Kind, err)
	}
	return nil
}

// RecentEvents returns up to n events from the log, newest first.
func (a *RedisService) RecentEvents(ctx context.Context, n int64) ([]repo.Event, error) {
	items, err := a.rdb.LRange(ctx, EventsLogKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	events := make([]repo.Event, 0, len(items))
	for _, item := range items {
		var ev repo.Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// Listener returns a repo.Listener that publishes every event. Failures are
// logged and never reach the caller of the store operation.
func (a *RedisService) Listener() repo.Listener {
	return func(ev repo.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := a.Publish(ctx, ev); err != nil {
			a.log.Warn().Err(err).Str("kind", string(ev.Kind)).Msg("event not published")
		}
	}
}

package redissvc_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-manager/internal/logger"
	"github.com/rogerio-castellano/inventory-manager/internal/redissvc"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	ev := repo.Event{
		Kind:      repo.EventProductAdded,
		ProductID: 7,
		Metrics:   repo.Metrics{TotalProducts: 5, NewestItem: "Tea", Threshold: 5},
		At:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := redissvc.EncodeEvent(ev)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "product.added", decoded["kind"])
	assert.Equal(t, 7.0, decoded["product_id"])
	assert.Equal(t, "Tea", decoded["metrics"].(map[string]any)["newest_item"])
}

func TestListener_UnreachableRedisDoesNotFailTheStore(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	svc := redissvc.NewRedisService(rdb, logger.Nop())

	s := repo.NewProductStore()
	s.Subscribe(svc.Listener())

	_, err := s.Add(9, "Jam", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, s.TotalCount())
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := redissvc.Connect(ctx, "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}

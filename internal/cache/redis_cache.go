package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cargo-tracking-service/internal/model"
	"cargo-tracking-service/internal/notify"
)

// RedisDispatchLog keeps the latest notification dispatch per tracking id so
// support staff can inspect delivery outcomes without trawling server logs.
type RedisDispatchLog struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDispatchLog(rdb *redis.Client, ttl time.Duration) *RedisDispatchLog {
	return &RedisDispatchLog{rdb: rdb, ttl: ttl}
}

type dispatchValue struct {
	Status       string        `json:"status"`
	Result       notify.Result `json:"result"`
	DispatchedAt time.Time     `json:"dispatchedAt"`
}

func (l *RedisDispatchLog) StoreDispatch(ctx context.Context, trackingID string, status model.Status, result notify.Result, at time.Time) error {
	key := "dispatch:" + trackingID
	val := dispatchValue{
		Status:       string(status),
		Result:       result,
		DispatchedAt: at.UTC(),
	}

	b, err := json.Marshal(val)
	if err != nil {
		return err
	}

	return l.rdb.Set(ctx, key, b, l.ttl).Err()
}

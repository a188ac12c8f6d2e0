package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taxipark/pkg/logger"
)

const keyPrefix = "taxipark:session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.ILogger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, log logger.ILogger) IStore {
	return &redisStore{client: client, ttl: ttl, log: log}
}

func (r *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		r.log.Error("failed to load session", logger.Error(err))
		return nil, fmt.Errorf("load session: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		r.log.Warning("dropping corrupt session", logger.Error(err))
		return nil, ErrNotFound
	}

	return &Session{ID: id, Data: data}, nil
}

func (r *redisStore) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s.Data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	pipe := r.client.TxPipeline()
	if prev := s.Previous(); prev != "" {
		pipe.Del(ctx, keyPrefix+prev)
	}
	pipe.Set(ctx, keyPrefix+s.ID, raw, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.log.Error("failed to save session", logger.Error(err))
		return fmt.Errorf("save session: %w", err)
	}

	s.MarkSaved()
	return nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		r.log.Error("failed to delete session", logger.Error(err))
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

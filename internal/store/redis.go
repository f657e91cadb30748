package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	allResultsKey     = "cortex:results"
	userResultsPrefix = "cortex:results:user:"
	progressKeyPrefix = "cortex:progress:"
)

// Redis stores each result twice: once in a per-user list and once in a
// global list, so both reads stay a single LRANGE.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an existing client. Close closes it.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// OpenRedis connects to addr and pings it.
func OpenRedis(ctx context.Context, addr, password string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedis(client), nil
}

func (r *Redis) AppendResult(ctx context.Context, res TestResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, userResultsPrefix+res.UserID, data)
		pipe.RPush(ctx, allResultsKey, data)
		return nil
	})
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

func (r *Redis) ResultsForUser(ctx context.Context, userID string) ([]TestResult, error) {
	return r.readList(ctx, userResultsPrefix+userID)
}

func (r *Redis) AllResults(ctx context.Context) ([]TestResult, error) {
	return r.readList(ctx, allResultsKey)
}

func (r *Redis) readList(ctx context.Context, key string) ([]TestResult, error) {
	items, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	out := make([]TestResult, 0, len(items))
	for _, item := range items {
		var res TestResult
		if err := json.Unmarshal([]byte(item), &res); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *Redis) SaveProgress(ctx context.Context, p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	return r.client.Set(ctx, progressKeyPrefix+p.UserID, data, 0).Err()
}

func (r *Redis) GetProgress(ctx context.Context, userID string) (*Progress, error) {
	data, err := r.client.Get(ctx, progressKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	return &p, nil
}

func (r *Redis) Close() error { return r.client.Close() }

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a best-effort JSON cache for the public list endpoints.
// Every miss or redis failure just falls through to the store.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func New(cfg Config) *Client {
	ttl := cfg.TTL

	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &Client{rdb: rdb, ttl: ttl}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetJSON returns the cached payload for key, or false on miss or any
// redis error.
func (c *Client) GetJSON(ctx context.Context, key string) (json.RawMessage, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()

	if err != nil {
		return nil, false
	}

	return json.RawMessage(raw), true
}

// SetJSON stores v under key for the configured TTL. Failures are
// dropped; the cache never gets to break a request.
func (c *Client) SetJSON(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)

	if err != nil {
		return
	}

	_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	_ = c.rdb.Del(ctx, keys...).Err()
}

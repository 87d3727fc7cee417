// Package cache stores rendered listings in redis as JSON.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ticker"

// Cache contains the methods needed to read and write cached values
type Cache interface {
	Get(ctx context.Context, key string, v interface{}) (bool, error)
	Set(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

// New connects to the redis server at the given URL. An empty URL disables
// caching
func New(url string) (Cache, error) {
	if url == "" {
		return Nop(), nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}

	return FromClient(redis.NewClient(opts)), nil
}

// FromClient wraps an existing redis client
func FromClient(client *redis.Client) Cache {
	return &redisCache{client: client}
}

type redisCache struct {
	client *redis.Client
}

func (rc *redisCache) Get(ctx context.Context, key string, v interface{}) (bool, error) {
	b, err := rc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to get cached value")
	}

	err = json.Unmarshal(b, v)
	return err == nil, errors.Wrap(err, "failed to unmarshal cached value")
}

func (rc *redisCache) Set(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value")
	}

	return errors.Wrap(rc.client.Set(ctx, key, b, ttl).Err(), "failed to set cached value")
}

// Nop returns a cache that stores nothing
func Nop() Cache {
	return nopCache{}
}

type nopCache struct{}

func (nopCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (nopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

// Key joins the given parts into a namespaced cache key
func Key(parts ...interface{}) string {
	strs := make([]string, 0, len(parts)+1)
	strs = append(strs, keyPrefix)
	for _, p := range parts {
		strs = append(strs, fmt.Sprint(p))
	}

	return strings.Join(strs, ":")
}

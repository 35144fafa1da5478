package checkers

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

type RedisChecker struct {
	client goredis.UniversalClient
}

func NewRedisChecker(client goredis.UniversalClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

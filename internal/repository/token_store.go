package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore 记录每个用户当前唯一有效的 token_id。
// 登录/注册覆盖写入即吊销旧令牌，登出删除即吊销当前令牌。
type TokenStore interface {
	Save(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error
	Active(ctx context.Context, userID uint, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uint) error
}

type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("auth:user:%d", userID)
}

func (s *RedisTokenStore) Save(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(userID), tokenID, ttl).Err()
}

func (s *RedisTokenStore) Active(ctx context.Context, userID uint, tokenID string) (bool, error) {
	current, err := s.rdb.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return current == tokenID, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, sessionKey(userID)).Err()
}

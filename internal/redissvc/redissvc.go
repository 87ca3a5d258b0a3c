package redissvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/pharmalink/internal/cart"
)

const (
	cartKeyPrefix        = "cart:"
	checkoutKeyPrefix    = "checkout:"
	cartTTL              = 12 * time.Hour
	idempotencyKeyTTL    = 24 * time.Hour
	defaultClientTimeout = 2 * time.Second
)

// RedisService keeps session carts and checkout idempotency keys in Redis.
type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

// Connect builds a client for addr and checks that it answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  defaultClientTimeout,
		ReadTimeout:  defaultClientTimeout,
		WriteTimeout: defaultClientTimeout,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

func (a *RedisService) Get(ctx context.Context, owner string) (*cart.Cart, error) {
	data, err := a.rdb.Get(ctx, cartKeyPrefix+owner).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(owner), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart of %s: %w", owner, err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode cart of %s: %w", owner, err)
	}
	return &c, nil
}

// Save stores the cart. Idle carts expire after cartTTL.
func (a *RedisService) Save(ctx context.Context, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart of %s: %w", c.Owner, err)
	}
	if err := a.rdb.Set(ctx, cartKeyPrefix+c.Owner, data, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart of %s: %w", c.Owner, err)
	}
	return nil
}

func (a *RedisService) Delete(ctx context.Context, owner string) error {
	return a.rdb.Del(ctx, cartKeyPrefix+owner).Err()
}

// Claim reserves an idempotency key. It returns false when the key was
// already claimed within the last idempotencyKeyTTL.
func (a *RedisService) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := a.rdb.SetNX(ctx, checkoutKeyPrefix+key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (a *RedisService) Release(ctx context.Context, key string) error {
	return a.rdb.Del(ctx, checkoutKeyPrefix+key).Err()
}

var (
	_ cart.Store   = (*RedisService)(nil)
	_ cart.Claimer = (*RedisService)(nil)
)

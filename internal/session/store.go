package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop-service/internal/cart"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store — сессионное key-value хранилище поверх Redis. Корзина живёт здесь
// до оформления заказа и не касается персистентного слоя.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewStore(addr, password string, db int, ttl time.Duration, log *zap.Logger) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Redis connected successfully", zap.String("addr", addr))

	return &Store{
		client: rdb,
		ttl:    ttl,
		log:    log,
	}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("session:%s:cart", sessionID)
}

// LoadCart возвращает корзину сессии; отсутствие ключа — пустая корзина.
func (s *Store) LoadCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, err
	}

	c := cart.New()
	if err := json.Unmarshal(data, c); err != nil {
		// битые данные сессии не должны валить запрос
		s.log.Warn("corrupt session cart, resetting", zap.String("session", sessionID), zap.Error(err))
		return cart.New(), nil
	}
	return c, nil
}

func (s *Store) SaveCart(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err()
}

func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

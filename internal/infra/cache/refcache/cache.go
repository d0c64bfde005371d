// Package refcache кэширует справочные данные (корты, тренеры, инвентарь, правила)
// в Redis. Значения хранятся целыми коллекциями в JSON, по ключу на коллекцию.
// Справочники маленькие и читаются целиком, поэтому кэшируются списками.
package refcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/config"
)

// Ключи коллекций справочных данных
const (
	keyCourts    = "cc:courts"
	keyCoaches   = "cc:coaches"
	keyEquipment = "cc:equipment"
	keyRules     = "cc:rules"
)

// Cache обертка над Redis клиентом с TTL для справочных данных
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient создает новый клиент Redis на основе конфигурации
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// New создает новый кэш справочных данных
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// getList читает коллекцию из кэша; при промахе загружает через load и кэширует.
// Ошибки Redis не фатальны: при недоступности кэша читаем напрямую из источника.
func getList[T any](ctx context.Context, c *Cache, key string, load func(ctx context.Context) ([]*T, error)) ([]*T, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var items []*T
		if err := json.Unmarshal([]byte(val), &items); err == nil {
			return items, nil
		}
		// Испорченное значение перезаписываем свежими данными
	} else if err != redis.Nil {
		items, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		return items, nil
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("refcache: failed to marshal %s: %w", key, err)
	}

	// Ошибку записи в кэш игнорируем: данные уже загружены
	_ = c.client.Set(ctx, key, data, c.ttl).Err()

	return items, nil
}

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"drinks-marketplace-service/internal/models"
)

// SearchCache caches paginated drink-search results in Redis. The
// browser debounces keystrokes at ~300ms, but popular queries still
// repeat constantly across users; a short TTL keeps them off Postgres.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// CachedDrinkPage is a cached drink-search result page
type CachedDrinkPage struct {
	Drinks     []models.Drink         `json:"drinks"`
	Pagination *models.PaginationInfo `json:"pagination"`
}

// NewSearchCache connects to Redis. When Redis is unreachable the
// cache degrades to a no-op rather than failing startup.
func NewSearchCache(redisURL string, ttlSeconds int) (*SearchCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return &SearchCache{
			client: nil,
			ttl:    time.Duration(ttlSeconds) * time.Second,
		}, nil
	}

	return &SearchCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Key derives a stable cache key from the filter set and page window
func Key(filters *models.DrinkFilters, page, limit int) string {
	payload, _ := json.Marshal(struct {
		Filters *models.DrinkFilters `json:"filters"`
		Page    int                  `json:"page"`
		Limit   int                  `json:"limit"`
	}{filters, page, limit})

	sum := sha256.Sum256(payload)
	return "drinks:search:" + hex.EncodeToString(sum[:16])
}

// Get retrieves a cached page. A miss (or unavailable Redis) returns
// nil, nil.
func (c *SearchCache) Get(ctx context.Context, key string) (*CachedDrinkPage, error) {
	if c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var page CachedDrinkPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Set caches a result page
func (c *SearchCache) Set(ctx context.Context, key string, page *CachedDrinkPage) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(page)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	models "travelbook/internal"
)

// RedisCache holds public query projections for a short TTL so the
// unauthenticated endpoint does not hammer the catalog on every poll.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetTravelOptions(ctx context.Context, key string) ([]models.TravelOptionSummary, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var options []models.TravelOptionSummary
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (c *RedisCache) SetTravelOptions(ctx context.Context, key string, options []models.TravelOptionSummary) error {
	payload, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// QueryKey derives a stable cache key from the public query filter.
func QueryKey(filter models.SearchFilter) string {
	date := ""
	if filter.DepartureDate != nil {
		date = filter.DepartureDate.UTC().Format("2006-01-02")
	}
	parts := []string{
		"query:travel-options",
		strings.ToLower(filter.Source),
		strings.ToLower(filter.Destination),
		date,
	}
	return strings.Join(parts, ":")
}

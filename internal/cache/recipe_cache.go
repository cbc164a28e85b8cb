package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"recipeshare/internal/model"
)

const recipeListKey = "recipes:all"

// RecipeCache keeps the full recipe list in redis between writes. A miss is
// not an error; the service falls through to the database.
type RecipeCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewRecipeCache(client *redisv9.Client, ttl time.Duration) *RecipeCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &RecipeCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RecipeCache) GetAll(ctx context.Context) ([]model.Recipe, bool, error) {
	raw, err := c.client.Get(ctx, recipeListKey).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get recipes failed: %w", err)
	}

	var recipes []model.Recipe
	if err := json.Unmarshal([]byte(raw), &recipes); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached recipes failed: %w", err)
	}
	return recipes, true, nil
}

func (c *RecipeCache) SetAll(ctx context.Context, recipes []model.Recipe) error {
	payload, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("marshal recipe cache failed: %w", err)
	}
	if err := c.client.Set(ctx, recipeListKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set recipes failed: %w", err)
	}
	return nil
}

func (c *RecipeCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, recipeListKey).Err(); err != nil {
		return fmt.Errorf("redis delete recipes failed: %w", err)
	}
	return nil
}

package placement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultIssuedTTL = 45 * time.Minute

// IssuedSet records the question ids handed to a learner for a step, so a
// later submission can be validated against what was actually issued.
type IssuedSet struct {
	QuestionIDs []string  `json:"question_ids"`
	IssuedAt    time.Time `json:"issued_at"`
}

// IssuedCache defines issued-set storage (implemented by the Redis-backed Cache).
type IssuedCache interface {
	Get(ctx context.Context, userID uuid.UUID, step Step) (*IssuedSet, error)
	Set(ctx context.Context, userID uuid.UUID, step Step, set IssuedSet) error
	Invalidate(ctx context.Context, userID uuid.UUID, step Step) error
}

// Cache provides Redis-backed issued-set storage with a TTL matching the
// allowed test window.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ IssuedCache = (*Cache)(nil)

// NewCache creates an issued-set cache. A non-positive ttl falls back to the
// default test window.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultIssuedTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(userID uuid.UUID, step Step) string {
	return fmt.Sprintf("placement:issued:%s:%d", userID, step)
}

// Get returns the issued set, or nil when none is outstanding.
func (c *Cache) Get(ctx context.Context, userID uuid.UUID, step Step) (*IssuedSet, error) {
	data, err := c.client.Get(ctx, c.key(userID, step)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var set IssuedSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// Set stores the issued set for the step's test window.
func (c *Cache) Set(ctx context.Context, userID uuid.UUID, step Step, set IssuedSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID, step), data, c.ttl).Err()
}

// Invalidate drops the issued set once the attempt is recorded.
func (c *Cache) Invalidate(ctx context.Context, userID uuid.UUID, step Step) error {
	return c.client.Del(ctx, c.key(userID, step)).Err()
}

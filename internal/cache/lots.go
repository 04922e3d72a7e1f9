package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/service/ports"
)

const (
	lotAvailableKeyPrefix = "parking_lot:available:"
	defaultTTL            = 5 * time.Minute
)

// LotAvailability is a read-through cache over the per-lot free-space
// count. It is a single scoped collaborator rebuilt from the authoritative
// space registry on demand, never a process-wide singleton. The registry
// still answers when redis is down; the cache is a fast path, not a
// dependency.
type LotAvailability struct {
	client *redis.Client
	spaces ports.SpaceRepo
	ttl    time.Duration
	logger logger.Logger
}

func NewLotAvailability(client *redis.Client, spaces ports.SpaceRepo, ttl time.Duration, logger logger.Logger) *LotAvailability {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &LotAvailability{client: client, spaces: spaces, ttl: ttl, logger: logger}
}

func (c *LotAvailability) Available(ctx context.Context, lotID int64) (int, error) {
	key := lotKey(lotID)

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		if n, convErr := strconv.Atoi(cached); convErr == nil {
			return n, nil
		}
	} else if err != redis.Nil {
		c.logger.Error("lot cache read failed",
			logger.Int64("lot_id", lotID),
			logger.String("error", err.Error()),
		)
	}

	n, err := c.spaces.CountAvailable(ctx, lotID)
	if err != nil {
		return 0, fmt.Errorf("count available spaces: %w", err)
	}

	if err = c.client.Set(ctx, key, n, c.ttl).Err(); err != nil {
		c.logger.Error("lot cache write failed",
			logger.Int64("lot_id", lotID),
			logger.String("error", err.Error()),
		)
	}

	return n, nil
}

func (c *LotAvailability) Invalidate(ctx context.Context, lotID int64) error {
	if err := c.client.Del(ctx, lotKey(lotID)).Err(); err != nil {
		return fmt.Errorf("invalidate lot cache: %w", err)
	}
	return nil
}

func lotKey(lotID int64) string {
	return lotAvailableKeyPrefix + strconv.FormatInt(lotID, 10)
}

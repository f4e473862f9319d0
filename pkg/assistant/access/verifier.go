package access

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"hr-assistant-be/internal/dto"
)

// Verifier enforces the per-user daily turn quota backed by Redis. The
// counter lives under one key per user and day and expires on its own.
type Verifier struct {
	client *redis.Client
	limit  int
}

func NewVerifier(client *redis.Client, limit int) *Verifier {
	return &Verifier{client: client, limit: limit}
}

func usageKey(userId string, now time.Time) string {
	return fmt.Sprintf("assistant:usage:%s:%s", userId, now.Format("20060102"))
}

// ConsumeTurn increments today's counter and fails with a limit error when
// the quota is already spent. Redis being unreachable does not block the
// turn; quota enforcement degrades open.
func (v *Verifier) ConsumeTurn(ctx context.Context, userId string) error {
	now := time.Now()
	key := usageKey(userId, now)

	used, err := v.client.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("[WARN] Quota check unavailable, allowing turn: %v", err)
		return nil
	}
	if used == 1 {
		endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		v.client.ExpireAt(ctx, key, endOfDay)
	}

	if used > int64(v.limit) {
		endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		return &dto.LimitExceededError{
			Limit:      v.limit,
			Used:       int(used) - 1,
			ResetAfter: endOfDay,
		}
	}
	return nil
}

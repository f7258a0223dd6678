package mw

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"previplan/internal/redisx"
)

// Fixed-window counter: first INCR in a window sets the expiry.
var rateLimitScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then redis.call('PEXPIRE', KEYS[1], ARGV[1]) end
return current`)

func rateLimitKey(c *fiber.Ctx) string {
	sub := ""
	if ac, _ := c.Locals("auth").(*AuthContext); ac != nil {
		sub = ac.Subject
	}
	return fmt.Sprintf("ip:%s|sub:%s", c.IP(), sub)
}

// RateLimitDefault limits requests per ip+subject over a fixed window.
// With Redis the counter is shared across instances; without it Fiber's
// in-memory limiter covers the single-process case. A Redis error lets
// the request through rather than failing closed.
func RateLimitDefault(rdb *redisx.Client, windowSec int, limit int) fiber.Handler {
	if rdb == nil {
		return limiter.New(limiter.Config{
			Max:          limit,
			Expiration:   time.Duration(windowSec) * time.Second,
			KeyGenerator: rateLimitKey,
			LimitReached: func(_ *fiber.Ctx) error {
				return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
			},
		})
	}
	return func(c *fiber.Ctx) error {
		key := "rl:" + rateLimitKey(c)
		ctx, cancel := context.WithTimeout(c.Context(), 200*time.Millisecond)
		defer cancel()
		res, err := rateLimitScript.Run(ctx, rdb, []string{key}, int64(windowSec)*1000).Result()
		if err != nil {
			return c.Next()
		}
		n, _ := res.(int64)
		c.Set("X-RateLimit-Limit", fmt.Sprint(limit))
		c.Set("X-RateLimit-Remaining", fmt.Sprint(lo.Max([]int64{0, int64(limit) - n})))
		if n > int64(limit) {
			c.Set("Retry-After", fmt.Sprint(windowSec))
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		return c.Next()
	}
}

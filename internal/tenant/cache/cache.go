package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vetrovegor/storefront/internal/tenant"
	redisclient "github.com/vetrovegor/storefront/pkg/client/redis"
)

const keyNamespace = "storefront:branding"

// BrandingCache keeps tenant branding across sessions so that a new session
// for a known tenant does not hit the backend for it.
type BrandingCache struct {
	client redisclient.Client
	ttl    time.Duration
}

func NewBrandingCache(client redisclient.Client, ttl time.Duration) *BrandingCache {
	return &BrandingCache{client: client, ttl: ttl}
}

func (c *BrandingCache) Get(ctx context.Context, slug string) (tenant.Branding, bool, error) {
	raw, err := c.client.Get(ctx, key(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return tenant.Branding{}, false, nil
		}
		return tenant.Branding{}, false, err
	}

	var b tenant.Branding
	if err := json.Unmarshal(raw, &b); err != nil {
		// a corrupt entry is dropped and reported as a miss
		if err := c.Invalidate(ctx, slug); err != nil {
			return tenant.Branding{}, false, err
		}
		return tenant.Branding{}, false, nil
	}

	return b, true, nil
}

func (c *BrandingCache) Set(ctx context.Context, slug string, b tenant.Branding) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key(slug), raw, c.ttl).Err()
}

func (c *BrandingCache) Invalidate(ctx context.Context, slug string) error {
	return c.client.Del(ctx, key(slug)).Err()
}

func key(slug string) string {
	return keyNamespace + ":" + strings.ToLower(strings.TrimSpace(slug))
}

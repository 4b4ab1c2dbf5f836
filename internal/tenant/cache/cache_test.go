package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrovegor/storefront/internal/tenant"
)

type fakeRedis struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	default:
		f.data[key] = fmt.Sprint(v)
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestBrandingCache(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	c := NewBrandingCache(fake, time.Minute)

	_, ok, err := c.Get(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, ok)

	b := tenant.Branding{
		Name:       "acme",
		LogoURL:    "https://cdn/logo.png",
		BannerURLs: []string{"a", "b"},
		Socials:    tenant.SocialLinks{WhatsApp: "https://wa.me/1"},
		Colors:     tenant.ThemeColors{Primary: "#000"},
	}
	require.NoError(t, c.Set(ctx, " ACME ", b))
	assert.Equal(t, time.Minute, fake.ttls["storefront:branding:acme"])

	got, ok, err := c.Get(ctx, "acme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b, got)

	require.NoError(t, c.Invalidate(ctx, "acme"))
	_, ok, err = c.Get(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBrandingCache_Errors(t *testing.T) {
	ctx := context.Background()

	fake := newFakeRedis()
	fake.data["storefront:branding:acme"] = "{not json"
	_, ok, err := NewBrandingCache(fake, time.Minute).Get(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotContains(t, fake.data, "storefront:branding:acme", "corrupt entry is dropped")

	fake.getErr = errors.New("connection refused")
	_, _, err = NewBrandingCache(fake, time.Minute).Get(ctx, "acme")
	assert.Error(t, err)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func withMiniredis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
}

func TestAside_FetchesOnMissAndCaches(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	calls := 0
	var got cachedThing
	err := Aside(ctx, "thing:1", &got, time.Minute, func() error {
		calls++
		got = cachedThing{ID: 1, Name: "first"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "first", got.Name)

	// Second read is served from cache, fetch not invoked.
	var again cachedThing
	err = Aside(ctx, "thing:1", &again, time.Minute, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "first", again.Name)
}

func TestAside_NilClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	calls := 0
	var got cachedThing
	for i := 0; i < 2; i++ {
		err := Aside(ctx, "thing:2", &got, time.Minute, func() error {
			calls++
			got = cachedThing{ID: 2, Name: "uncached"}
			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestInvalidate(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(7), cachedThing{ID: 7}, time.Minute))

	var got cachedThing
	found, err := GetJSON(ctx, PostKey(7), &got)
	require.NoError(t, err)
	assert.True(t, found)

	InvalidatePost(ctx, 7)

	found, err = GetJSON(ctx, PostKey(7), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

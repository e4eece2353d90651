//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a limiter of 2 per second with a burst of 1 has a 500ms emission interval;
// burst + 1 requests land instantly, then the clock has to catch up

func testlimiter() (*RateLimiter, *MemoryKV, *time.Time) {
	kv := NewMemoryKV()
	now := time.Unix(1700000000, 0)
	kv.Clock = func() time.Time { return now }
	rl := &RateLimiter{KV: kv, Interval: 500 * time.Millisecond, Burst: 1}
	return rl, kv, &now
}

func TestGCRABurstThenDeny(t *testing.T) {
	rl, _, _ := testlimiter()
	ctx := context.Background()

	d, ae := rl.Allow(ctx, "1.2.3.4")
	require.Nil(t, ae)
	assert.True(t, d.Allowed)

	d, ae = rl.Allow(ctx, "1.2.3.4")
	require.Nil(t, ae)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	d, ae = rl.Allow(ctx, "1.2.3.4")
	require.Nil(t, ae)
	assert.False(t, d.Allowed)
	assert.Equal(t, rl.Interval, d.RetryIn)
}

func TestGCRARecoversWithTime(t *testing.T) {
	rl, _, now := testlimiter()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, ae := rl.Allow(ctx, "k")
		require.Nil(t, ae)
		require.True(t, d.Allowed)
	}
	d, ae := rl.Allow(ctx, "k")
	require.Nil(t, ae)
	require.False(t, d.Allowed)

	*now = now.Add(d.RetryIn)
	d, ae = rl.Allow(ctx, "k")
	require.Nil(t, ae)
	assert.True(t, d.Allowed)
}

func TestGCRAKeysAreIndependent(t *testing.T) {
	rl, _, _ := testlimiter()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, ae := rl.Allow(ctx, "a")
		require.Nil(t, ae)
		require.True(t, d.Allowed)
	}
	d, ae := rl.Allow(ctx, "a")
	require.Nil(t, ae)
	require.False(t, d.Allowed)

	d, ae = rl.Allow(ctx, "b")
	require.Nil(t, ae)
	assert.True(t, d.Allowed)
}

func TestGCRAStaleTATFloorsAtNow(t *testing.T) {
	rl, _, now := testlimiter()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, ae := rl.Allow(ctx, "k")
		require.Nil(t, ae)
	}

	// a long quiet spell must not bank extra credit beyond the burst
	*now = now.Add(time.Hour)
	allowed := 0
	for i := 0; i < 5; i++ {
		d, ae := rl.Allow(ctx, "k")
		require.Nil(t, ae)
		if d.Allowed {
			allowed++
		}
	}
	assert.Equal(t, 2, allowed)
}

func TestGCRAReleasesLock(t *testing.T) {
	rl, kv, _ := testlimiter()
	ctx := context.Background()

	_, ae := rl.Allow(ctx, "k")
	require.Nil(t, ae)

	_, held, e := kv.Get(ctx, "lock:k")
	require.NoError(t, e)
	assert.False(t, held)
}

func TestMemoryKVHonorsTTL(t *testing.T) {
	kv := NewMemoryKV()
	now := time.Unix(1700000000, 0)
	kv.Clock = func() time.Time { return now }
	ctx := context.Background()

	ok, e := kv.SetNX(ctx, "k", "1", time.Second)
	require.NoError(t, e)
	require.True(t, ok)

	ok, e = kv.SetNX(ctx, "k", "2", time.Second)
	require.NoError(t, e)
	assert.False(t, ok)

	now = now.Add(2 * time.Second)
	ok, e = kv.SetNX(ctx, "k", "3", time.Second)
	require.NoError(t, e)
	assert.True(t, ok)
}

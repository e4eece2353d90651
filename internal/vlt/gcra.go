//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// GENERIC CELL RATE ALGORITHM
//
// each client key carries one value: the theoretical arrival time (TAT) of
// its next conforming request; a request conforms when now has caught up to
// within burst emission intervals of the TAT, and a conforming request
// pushes the TAT one interval further out
//

// RateLimiter - GCRA over a KVStore; safe for concurrent use because every
// read-modify-write cycle runs under a per-key lock in the store itself
type RateLimiter struct {
	KV       KVStore
	Interval time.Duration // period / rate: one "emission"
	Burst    int
}

// NewRateLimiter - sized from the launch configuration
func NewRateLimiter(kv KVStore) *RateLimiter {
	cfg := lnch.Config
	period := time.Duration(cfg.RatePeriodSec) * time.Second
	return &RateLimiter{
		KV:       kv,
		Interval: period / time.Duration(cfg.RatePerPeriod),
		Burst:    cfg.RateBurst,
	}
}

// Decision - the limiter's verdict plus what the client should be told
type Decision struct {
	Allowed   bool
	Remaining int           // conforming requests left right now
	RetryIn   time.Duration // zero when allowed
}

// Allow - run one GCRA update for the key
func (rl *RateLimiter) Allow(ctx context.Context, key string) (Decision, *str.APIError) {
	unlock, ae := rl.lock(ctx, key)
	if ae != nil {
		return Decision{}, ae
	}
	defer unlock()

	now, e := rl.KV.Now(ctx)
	if e != nil {
		return Decision{}, str.NewAPIError(str.ErrInternal, e.Error())
	}

	tat := now
	if raw, ok, e := rl.KV.Get(ctx, "tat:"+key); e != nil {
		return Decision{}, str.NewAPIError(str.ErrInternal, e.Error())
	} else if ok {
		if ns, pe := strconv.ParseInt(raw, 10, 64); pe == nil {
			tat = time.Unix(0, ns)
		}
	}
	if tat.Before(now) {
		tat = now
	}

	allowedat := tat.Add(-time.Duration(rl.Burst) * rl.Interval)
	if now.Before(allowedat) {
		return Decision{Allowed: false, RetryIn: allowedat.Sub(now)}, nil
	}

	newtat := tat.Add(rl.Interval)
	if e := rl.KV.Set(ctx, "tat:"+key, strconv.FormatInt(newtat.UnixNano(), 10)); e != nil {
		return Decision{}, str.NewAPIError(str.ErrInternal, e.Error())
	}

	remaining := rl.Burst - int(newtat.Sub(now)/rl.Interval)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: true, Remaining: remaining}, nil
}

// lock - spin on SetNX until the per-key lock is ours; a neighbor holding it
// past LOCKTIMEOUT turns into a 503 rather than a hang
func (rl *RateLimiter) lock(ctx context.Context, key string) (func(), *str.APIError) {
	const (
		SPIN = 5 * time.Millisecond
		FAIL = "could not acquire the rate-limit lock for '%s'"
	)

	lk := "lock:" + key
	deadline := time.Now().Add(vv.LOCKTIMEOUT)
	for {
		ok, e := rl.KV.SetNX(ctx, lk, "1", vv.LOCKTIMEOUT)
		if e != nil {
			return nil, str.NewAPIError(str.ErrInternal, e.Error())
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, str.NewAPIError(str.ErrLockError, fmt.Sprintf(FAIL, key))
		}
		time.Sleep(SPIN)
	}
	return func() { _ = rl.KV.Del(context.Background(), lk) }, nil
}

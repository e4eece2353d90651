//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

var msg = lnch.Msg

//
// KEY-VALUE VAULT
//
// the rate limiter needs five primitives: get, set, set-if-absent with
// expiry, delete, and the store's own clock; redis provides them in PROD and
// DEV, an in-process vault stands in under TEST so the suite needs no daemon
//

// KVStore - what the limiter requires of its backing store
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, val string) error
	SetNX(ctx context.Context, key string, val string, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
	Now(ctx context.Context) (time.Time, error)
}

//
// REDIS
//

// RedisKV - the production store; the clock is the redis server's own so
// every replica of this service agrees on the time
type RedisKV struct {
	rdb *redis.Client
}

// NewRedisKV - connect per the launch configuration and ping once so a dead
// redis fails the boot rather than the first request
func NewRedisKV() *RedisKV {
	const (
		FAIL = "NewRedisKV() cannot reach redis at '%s'"
	)

	rl := lnch.Config.RDLogin
	addr := fmt.Sprintf("%s:%d", rl.Host, rl.Port)
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: rl.Pass, DB: rl.DB})

	if e := rdb.Ping(context.Background()).Err(); e != nil {
		msg.CRIT(fmt.Sprintf(FAIL, addr))
		msg.EC(e)
	}
	return &RedisKV{rdb: rdb}
}

func (kv *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, e := kv.rdb.Get(ctx, key).Result()
	if e == redis.Nil {
		return "", false, nil
	}
	if e != nil {
		return "", false, e
	}
	return v, true, nil
}

func (kv *RedisKV) Set(ctx context.Context, key string, val string) error {
	return kv.rdb.Set(ctx, key, val, 0).Err()
}

func (kv *RedisKV) SetNX(ctx context.Context, key string, val string, ttl time.Duration) (bool, error) {
	return kv.rdb.SetNX(ctx, key, val, ttl).Result()
}

func (kv *RedisKV) Del(ctx context.Context, key string) error {
	return kv.rdb.Del(ctx, key).Err()
}

func (kv *RedisKV) Now(ctx context.Context) (time.Time, error) {
	return kv.rdb.Time(ctx).Result()
}

//
// IN-PROCESS VAULT
//

type memoryentry struct {
	val     string
	expires time.Time // zero means never
}

// MemoryKV - a mutex-guarded vault; Clock is swappable so the limiter tests
// can march time forward deterministically
type MemoryKV struct {
	mutex sync.RWMutex
	vals  map[string]memoryentry
	Clock func() time.Time
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{vals: make(map[string]memoryentry), Clock: time.Now}
}

func (kv *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	kv.mutex.RLock()
	defer kv.mutex.RUnlock()
	ent, ok := kv.vals[key]
	if !ok || (!ent.expires.IsZero() && kv.Clock().After(ent.expires)) {
		return "", false, nil
	}
	return ent.val, true, nil
}

func (kv *MemoryKV) Set(ctx context.Context, key string, val string) error {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()
	kv.vals[key] = memoryentry{val: val}
	return nil
}

func (kv *MemoryKV) SetNX(ctx context.Context, key string, val string, ttl time.Duration) (bool, error) {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()
	if ent, ok := kv.vals[key]; ok {
		if ent.expires.IsZero() || kv.Clock().Before(ent.expires) {
			return false, nil
		}
	}
	var exp time.Time
	if ttl > 0 {
		exp = kv.Clock().Add(ttl)
	}
	kv.vals[key] = memoryentry{val: val, expires: exp}
	return true, nil
}

func (kv *MemoryKV) Del(ctx context.Context, key string) error {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()
	delete(kv.vals, key)
	return nil
}

func (kv *MemoryKV) Now(ctx context.Context) (time.Time, error) {
	return kv.Clock(), nil
}

// NewKVStore - redis unless running under TEST
func NewKVStore() KVStore {
	if lnch.Config.Env == vv.ENVTEST {
		return NewMemoryKV()
	}
	return NewRedisKV()
}

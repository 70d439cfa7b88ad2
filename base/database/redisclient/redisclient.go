// Package redisclient builds redigo pools with the dial timeouts and
// liveness checks shared by every binary.
package redisclient

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/auctionhouse/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second

	// fresh pods occasionally lose the first dial to the cluster,
	// retry a few times before giving up
	dialAttempts = 4
)

// RedisParam tunes pool sizing and connect retries.
type RedisParam struct {
	PoolMultiplier float64
	Retry          bool
}

// MustConnectRedis is ConnectRedis, panicking when redis cannot be
// reached.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis builds a pool for uri and proves it with a ping. With
// a RedisParam the pool is sized from the core count, otherwise a
// generous default applies.
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle, maxActive, retry := 200, 1024, false
	if len(param) > 0 {
		cores := float64(runtime.NumCPU())
		// a quarter of the pool may sit idle
		maxIdle = int(cores * param[0].PoolMultiplier / 4)
		maxActive = int(cores * param[0].PoolMultiplier)
		retry = param[0].Retry
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}

	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// recycled within the last second, assume alive
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	if err := ping(p, uri, retry); err != nil {
		return nil, err
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")
	return p, nil
}

// ping dials and pings once, or up to dialAttempts times with a
// jittered pause when retry is on. Retry stays off in unit tests so
// a missing server fails fast.
func ping(p *redis.Pool, uri string, retry bool) error {
	attempts := 1
	if retry {
		attempts = dialAttempts
	}

	jitter := rand.New(rand.NewSource(time.Now().UnixNano()))

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(time.Second + time.Duration(jitter.Float32()*1000)*time.Millisecond)
		}

		c, err := p.Dial()
		if err != nil {
			lastErr = err
			log.Log().WithFields(log.Fields{"redisURI": uri, "err": err, "attempt": i}).Error("fail to dial Redis")
			continue
		}

		_, err = c.Do("PING")
		c.Close()
		if err != nil {
			lastErr = err
			log.Log().WithFields(log.Fields{"redisURI": uri, "err": err, "attempt": i}).Error("fail to ping Redis")
			continue
		}
		return nil
	}
	return lastErr
}

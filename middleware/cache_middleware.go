package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/service/cache"
	compoundcache "github.com/x-xyz/auctionhouse/service/cache/compoundCache"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/auctionhouse/service/cache/provider/redis"
	"github.com/x-xyz/auctionhouse/service/redis"
)

const cacheMiddlewarePfx = "httpCacheMiddleware"

var (
	cacheMiddlewareLocalCache provider.Provider
	cacheMiddlewareRedisCache provider.Provider

	setupCacheOnce sync.Once
)

// SetupCache initializes the providers shared by every CacheHttp instance.
// Call it once from main before mounting routes.
func SetupCache(redis redis.Service) {
	setupCacheOnce.Do(func() {
		cacheMiddlewareLocalCache = primitive.NewPrimitive(cacheMiddlewarePfx, 1024)
		cacheMiddlewareRedisCache = redisCache.NewRedis(redis)
	})
}

// Response is the cached body and header of a previously served request.
type Response struct {
	Value  []byte
	Header http.Header
}

// teeWriter mirrors everything written to the client into a buffer so the
// response can be cached after the handler ran.
type teeWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *teeWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *teeWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *teeWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *teeWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

// canonicalizeQuery sorts multi-valued params in place so two URLs that
// differ only in param order share one cache entry.
func canonicalizeQuery(u *url.URL) {
	q := u.Query()
	for _, vs := range q {
		sort.Strings(vs)
	}
	u.RawQuery = q.Encode()
}

func generateKey(rawURL string) string {
	h := fnv.New64a()
	io.WriteString(h, rawURL)
	return strconv.FormatUint(h.Sum64(), 36)
}

// CacheHttp serves responses from cache for ttl, keyed on the canonicalized
// request URL. Entries live in redis plus a short-lived in-process layer, so
// an instance never keeps serving a stale listing for long after a bid lands.
func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if cacheMiddlewareLocalCache == nil || cacheMiddlewareRedisCache == nil {
		panic("need SetupCache before using CacheHttp")
	}

	localTTL := 10 * time.Second
	if ttl < localTTL {
		localTTL = ttl
	}

	store := compoundcache.NewCompoundCache([]cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   localTTL,
			Pfx:   cacheMiddlewarePfx,
			Cache: cacheMiddlewareLocalCache,
		}),
		cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   cacheMiddlewarePfx,
			Cache: cacheMiddlewareRedisCache,
		}),
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			canonicalizeQuery(c.Request().URL)
			key := generateKey(c.Request().URL.String())

			cached := Response{}
			switch err := store.Get(ctx, key, &cached); err {
			case nil:
				for k, v := range cached.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().WriteHeader(http.StatusOK)
				c.Response().Write(cached.Value)
				return nil
			case cache.ErrNotFound:
			default:
				ctx.WithFields(log.Fields{"err": err}).Error("failed to read response cache")
			}

			body := new(bytes.Buffer)
			writer := &teeWriter{
				statusCode:     http.StatusOK,
				Writer:         io.MultiWriter(c.Response().Writer, body),
				ResponseWriter: c.Response().Writer,
			}
			c.Response().Writer = writer

			if err := next(c); err != nil {
				c.Error(err)
			}

			// errors are not cached, they should clear as soon as the
			// backend recovers
			if writer.statusCode >= 400 {
				return nil
			}

			entry := Response{Value: body.Bytes(), Header: writer.Header()}
			if err := store.Set(ctx, key, entry); err != nil {
				ctx.WithFields(log.Fields{"err": err}).Error("failed to cache response")
			}
			return nil
		}
	}
}

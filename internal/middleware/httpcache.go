package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	apiCachePrefix      = "svx:api-cache:"
	defaultHTTPCacheTTL = 15 * time.Second
	httpCacheMaxBody    = 1 << 20
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body"`
}

type cacheBodyWriter struct {
	gin.ResponseWriter
	body     []byte
	overflow bool
}

func (w *cacheBodyWriter) Write(data []byte) (int, error) {
	if !w.overflow {
		if len(w.body)+len(data) > httpCacheMaxBody {
			w.overflow = true
		} else {
			w.body = append(w.body, data...)
		}
	}
	return w.ResponseWriter.Write(data)
}

// HTTPCache caches successful anonymous GET responses in Redis, keyed by the
// full request URI. The key carries no credentials, so on gated routes the
// cache must be mounted after the gate. Search and category listings are the
// intended targets; mutations purge via PurgeHTTPCache.
func HTTPCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = defaultHTTPCacheTTL
	}
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodGet || IsAuthenticated(c) {
			c.Next()
			return
		}

		key := apiCachePrefix + c.Request.URL.RequestURI()
		if raw, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil && len(raw) > 0 {
			var payload cachedResponse
			if json.Unmarshal(raw, &payload) == nil && payload.Status > 0 {
				c.Header("x-svx-cache", "hit")
				c.Data(payload.Status, payload.ContentType, payload.Body)
				c.Abort()
				return
			}
		}

		buffer := &cacheBodyWriter{ResponseWriter: c.Writer}
		c.Writer = buffer
		c.Next()

		status := c.Writer.Status()
		if status != http.StatusOK || buffer.overflow || len(buffer.body) == 0 {
			return
		}
		raw, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        buffer.body,
		})
		if err != nil {
			return
		}
		_ = rdb.Set(c.Request.Context(), key, raw, ttl).Err()
	}
}

// PurgeHTTPCache drops all cached responses. Called after content mutations.
func PurgeHTTPCache(ctx context.Context, rdb *redis.Client) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	var cursor uint64
	var deleted int64
	for {
		keys, next, err := rdb.Scan(ctx, cursor, apiCachePrefix+"*", 200).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-emprec/internal/shared/contextutil"
	"go-emprec/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	idempotencyLockTTL = 30 * time.Second
)

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Location    string `json:"location,omitempty"`
	Body        []byte `json:"body"`
}

// bodyRecorder tees everything the handler writes.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func idempotencyKeys(c *gin.Context, key string) (cacheKey, lockKey string) {
	cacheKey = "idemp:" + c.FullPath() + ":" + key
	return cacheKey, cacheKey + ":lock"
}

// Idempotency replays the stored response of a POST that carries an
// Idempotency-Key already seen within ttl. While the first request is
// still running, repeats get 409. Responses with a 5xx status are not
// stored so the client may retry. Redis failures let the request through.
func Idempotency(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, logger).With(zap.String("idempotency_key", idempKey))
		cacheKey, lockKey := idempotencyKeys(c, idempKey)

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var stored storedResponse
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr == nil {
				log.Info("idempotent replay", zap.Int("status", stored.Status))
				replay(c, stored)
				return
			}
			log.Warn("idempotency cache entry unreadable, ignoring")
		case !errors.Is(err, redis.Nil):
			log.Warn("idempotency lookup failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}

		locked, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !locked {
			response.Error(c, http.StatusConflict, "A request with this Idempotency-Key is still being processed")
			return
		}
		// The handler may have committed even if the client went away.
		storeCtx := context.WithoutCancel(ctx)
		defer func() {
			if err := rdb.Del(storeCtx, lockKey).Err(); err != nil {
				log.Warn("idempotency unlock failed", zap.Error(err))
			}
		}()

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status >= http.StatusInternalServerError {
			return
		}

		payload, err := json.Marshal(storedResponse{
			Status:      status,
			ContentType: rec.Header().Get("Content-Type"),
			Location:    rec.Header().Get("Location"),
			Body:        rec.body.Bytes(),
		})
		if err != nil {
			log.Warn("idempotency encode failed", zap.Error(err))
			return
		}
		if err := rdb.Set(storeCtx, cacheKey, string(payload), ttl).Err(); err != nil {
			log.Warn("idempotency store failed", zap.Error(err))
		}
	}
}

func replay(c *gin.Context, stored storedResponse) {
	c.Header(HeaderReplayed, "true")
	if stored.Location != "" {
		c.Header("Location", stored.Location)
	}
	contentType := stored.ContentType
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}
	c.Data(stored.Status, contentType, stored.Body)
	c.Abort()
}

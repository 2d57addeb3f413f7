package notice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/casebook/internal/platform/logger"
)

const (
	SessionCookieName = "casebook_sid"
	redisKeyPrefix    = "casebook:notices:"
	redisTTL          = 5 * time.Minute
)

// RedisStore keeps notices server-side, keyed by an opaque session cookie.
type RedisStore struct {
	log    *logger.Logger
	rdb    *goredis.Client
	secure bool
}

func NewRedisStore(log *logger.Logger, addr string, secure bool) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{
		log:    log.With("service", "RedisNoticeStore"),
		rdb:    rdb,
		secure: secure,
	}, nil
}

func (s *RedisStore) Add(c *gin.Context, n Notice) error {
	sid := s.sessionID(c, true)
	raw, err := json.Marshal(n)
	if err != nil {
		return err
	}
	ctx := c.Request.Context()
	key := redisKeyPrefix + sid
	_, err = s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.RPush(ctx, key, raw)
		p.Expire(ctx, key, redisTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis push notice: %w", err)
	}
	c.Set(pendingKey, append(pending(c), n))
	return nil
}

func (s *RedisStore) Pop(c *gin.Context) ([]Notice, error) {
	sid := s.sessionID(c, false)
	if sid == "" {
		return nil, nil
	}
	ctx := c.Request.Context()
	key := redisKeyPrefix + sid

	var lrange *goredis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		lrange = p.LRange(ctx, key, 0, -1)
		p.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis pop notices: %w", err)
	}

	out := make([]Notice, 0, len(lrange.Val()))
	for _, raw := range lrange.Val() {
		var n Notice
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			s.log.Warn("Dropping undecodable notice", "error", err)
			continue
		}
		out = append(out, n)
	}
	c.Set(pendingKey, []Notice{})
	return out, nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) sessionID(c *gin.Context, create bool) string {
	if v, ok := c.Get(SessionCookieName); ok {
		return v.(string)
	}
	if sid, err := c.Cookie(SessionCookieName); err == nil {
		if _, perr := uuid.Parse(sid); perr == nil {
			return sid
		}
	}
	if !create {
		return ""
	}
	sid := uuid.New().String()
	c.Set(SessionCookieName, sid)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, sid, 0, "/", "", s.secure, true)
	return sid
}

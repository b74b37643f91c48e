package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"polar-backend/internal/config"
	"polar-backend/internal/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Report cache keys
const (
	SummaryKey   = "reports:summary"
	DashboardKey = "reports:dashboard"
	BoardKey     = "reports:board"

	ReportTTL = 5 * time.Minute
)

var client *redis.Client

// Report keys carry the process boot id and a generation that every data
// change bumps. A report built before a change is written under the old
// generation and never read again.
var (
	bootID     = uuid.NewString()[:8]
	generation atomic.Uint64
)

// Key returns the live cache key for a report base key. Callers take the key
// before building the value they store under it.
func Key(base string) string {
	return keyAt(base, generation.Load())
}

func keyAt(base string, gen uint64) string {
	return fmt.Sprintf("%s:%s:g%d", base, bootID, gen)
}

func reportKeys(gen uint64) []string {
	return []string{keyAt(SummaryKey, gen), keyAt(DashboardKey, gen), keyAt(BoardKey, gen)}
}

// Init initializes the Redis connection. With no address configured the cache
// stays disabled and every call below is a no-op.
func Init(cfg *config.Config) error {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Enabled reports whether a Redis connection is live
func Enabled() bool {
	return client != nil
}

func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidateReportCaches retires every derived report
func InvalidateReportCaches(ctx context.Context) {
	old := generation.Add(1) - 1
	InvalidateKeys(ctx, reportKeys(old)...)
}

// InvalidateOnChange retires report caches whenever the store changes entity
// data. Session-only events leave the caches alone. Listeners run inside the
// store's commit, so the Redis round trip happens off that path.
func InvalidateOnChange(s *store.Store) func() {
	return s.Subscribe(func(ev store.Event) {
		if !ev.Kind.ChangesData() {
			return
		}
		old := generation.Add(1) - 1
		if client == nil {
			return
		}
		go func(keys []string) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			InvalidateKeys(ctx, keys...)
		}(reportKeys(old))
	})
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

type Cache struct {
	RDB *redis.Client
	sf  singleflight.Group
}

func New(addr, pass string, db int) *Cache {
	return &Cache{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
	}
}

func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	// 先读缓存
	if b, err := c.RDB.Get(ctx, key).Bytes(); err == nil {
		return b, nil
	}
	// single flight 合并回源
	v, err, _ := c.sf.Do(key, func() (any, error) {
		b, e := load(ctx)
		if e != nil {
			return nil, e
		}
		_ = c.RDB.Set(ctx, key, b, ttl).Err()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Version / Bump：写路径递增版本号，读路径把版本号拼进 key，
// 避免按前缀扫描删除。版本 key 不设 TTL。
func (c *Cache) Version(ctx context.Context, name string) int64 {
	n, err := c.RDB.Get(ctx, "ver:"+name).Int64()
	if err != nil {
		return 0
	}
	return n
}

func (c *Cache) Bump(ctx context.Context, name string) {
	_ = c.RDB.Incr(ctx, "ver:"+name).Err()
}

func VersionedKey(name string, ver int64, parts ...string) string {
	key := fmt.Sprintf("%s:v%d", name, ver)
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

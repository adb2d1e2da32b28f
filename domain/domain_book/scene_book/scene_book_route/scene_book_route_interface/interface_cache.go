package scene_book_route_interface

import (
	"context"
	"time"
)

// CacheRepository 推荐结果缓存
// 键为不透明字符串；并发访问下同键后写覆盖先写即可，不要求跨键事务
type CacheRepository interface {
	// Get 命中时将缓存值解码进value并返回true；未命中返回false且不报错
	Get(ctx context.Context, key string, value interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

package repository_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/cgbookstore/go-backend-clean-architecture/domain/domain_book/scene_book/scene_book_route/scene_book_route_interface"
)

type badgerCacheRepository struct {
	db *badger.DB
}

// NewBadgerCacheRepository 基于badger的嵌入式缓存，TTL由存储引擎原生管理，
// 过期条目读取时自动不可见，无需后台清理协程
func NewBadgerCacheRepository(db *badger.DB) scene_book_route_interface.CacheRepository {
	return &badgerCacheRepository{db: db}
}

func (r *badgerCacheRepository) Get(ctx context.Context, key string, value interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("读取缓存失败: %w", err)
	}

	if err := json.Unmarshal(raw, value); err != nil {
		// 解码失败按未命中处理，同时清掉坏条目
		_ = r.Delete(ctx, key)
		return false, nil
	}

	return true, nil
}

func (r *badgerCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("编码缓存值失败: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), raw)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("写入缓存失败: %w", err)
	}

	return nil
}

func (r *badgerCacheRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("删除缓存失败: %w", err)
	}

	return nil
}

package bootstrap

import (
	"log"

	badger "github.com/dgraph-io/badger/v4"
)

// NewCacheDatabase 打开嵌入式缓存库，TTL过期由badger自身维护
func NewCacheDatabase(env *Env) *badger.DB {
	opts := badger.DefaultOptions(env.CacheDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("打开缓存数据库失败: ", err)
	}

	return db
}

func CloseCacheDatabase(db *badger.DB) {
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		log.Printf("关闭缓存数据库失败: %v", err)
	}
}

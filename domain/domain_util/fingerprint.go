package domain_util

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ShelfStatePair 参与指纹计算的书架状态单元
type ShelfStatePair struct {
	BookID    string
	ShelfType string
}

// ShelfFingerprint 对用户当前书架状态求确定性哈希
// 缓存键必须包含该指纹：书架增删后指纹改变，旧缓存自然失效，
// 否则会返回过期结果甚至已上架的书
func ShelfFingerprint(pairs []ShelfStatePair) string {
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, p.BookID+":"+p.ShelfType)
	}
	sort.Strings(lines)

	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:8])
}

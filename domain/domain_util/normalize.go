package domain_util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// 书库数据以葡萄牙语为主，体裁/作者匹配前先去掉变音符号再小写折叠
// 例如 "Ficção Científica" 与 "ficcao cientifica" 视为同一个键
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// MatchKey 生成体裁/作者的匹配键
func MatchKey(s string) string {
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

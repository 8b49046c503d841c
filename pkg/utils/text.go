package utils

import (
	"strings"
	"unicode"
)

// Excerpt 生成摘要：在长度上限前的最后一个空白处截断，并追加省略号
func Excerpt(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}

	cut := max
	for i := max; i > 0; i-- {
		if unicode.IsSpace(runes[i-1]) {
			cut = i - 1
			break
		}
	}
	// 没有空白可断，硬截断
	return strings.TrimRight(string(runes[:cut]), " \t\n") + "..."
}

// Highlight 大小写不敏感地将 keyword 的每次出现包裹在 <mark> 标签中
func Highlight(s string, keyword string) string {
	if keyword == "" {
		return s
	}

	lowerS := strings.ToLower(s)
	lowerKey := strings.ToLower(keyword)
	if len(lowerS) != len(s) {
		// 大小写转换改变了字节长度，退化为原样返回，避免错位
		return s
	}

	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerS[start:], lowerKey)
		if idx < 0 {
			b.WriteString(s[start:])
			break
		}
		idx += start
		b.WriteString(s[start:idx])
		b.WriteString("<mark>")
		b.WriteString(s[idx : idx+len(keyword)])
		b.WriteString("</mark>")
		start = idx + len(keyword)
	}
	return b.String()
}

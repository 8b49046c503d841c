package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	// 短于上限时原样返回
	assert.Equal(t, "hello world", Excerpt("hello world", 20))

	// 在上限前的最后一个空白处截断
	got := Excerpt("the quick brown fox jumps over the lazy dog", 12)
	assert.Equal(t, "the quick...", got)

	// 没有空白时硬截断
	got = Excerpt("abcdefghijklmnopqrstuvwxyz", 10)
	assert.Equal(t, "abcdefghij...", got)

	// 上限为 0 时不截断
	assert.Equal(t, "abc", Excerpt("abc", 0))
}

func TestHighlight(t *testing.T) {
	// 大小写不敏感，保留原文大小写
	got := Highlight("Go is great. GO GO GO!", "go")
	assert.Equal(t, "<mark>Go</mark> is great. <mark>GO</mark> <mark>GO</mark> <mark>GO</mark>!", got)

	// 无命中时原样返回
	assert.Equal(t, "hello", Highlight("hello", "xyz"))

	// 空关键词不处理
	assert.Equal(t, "hello", Highlight("hello", ""))
}

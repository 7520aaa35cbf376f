package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julienpequegnot/curator/internal/record"
)

func TestShortContentUnmodified(t *testing.T) {
	body := strings.Repeat("字", 500)
	out := Render(record.Record{Title: "T", Content: body}, "zhihu")

	assert.Contains(t, out, "\n"+body+"\n")
	assert.NotContains(t, out, body+"...")
}

func TestLongContentTruncated(t *testing.T) {
	body := strings.Repeat("a", 499) + "界" + "tail beyond the limit"
	out := Render(record.Record{Title: "T", Content: body}, "gzh")

	want := strings.Repeat("a", 499) + "界..."
	assert.Contains(t, out, "\n"+want+"\n")
	assert.NotContains(t, out, "tail beyond")
}

func TestTruncateCountsCharacters(t *testing.T) {
	r := New(3)
	assert.Equal(t, "核心优...", r.Truncate("核心优势"))
	assert.Equal(t, "核心优", r.Truncate("核心优"))
	assert.Equal(t, "", r.Truncate(""))
}

func TestUnknownStyleFallsBack(t *testing.T) {
	rec := record.Record{ID: 1, Title: "T1", Content: "C1"}

	assert.Equal(t, Render(rec, "xiaohongshu"), Render(rec, "twitter"))
	assert.Equal(t, Render(rec, "xiaohongshu"), Render(rec, ""))
}

func TestZhihuTemplate(t *testing.T) {
	out := Render(record.Record{Title: "T1", Content: "C1"}, "zhihu")

	assert.True(t, strings.HasPrefix(out, "\n## T1\n"))
	assert.Contains(t, out, "核心优势")
	assert.Contains(t, out, "\nC1\n")
	assert.True(t, strings.HasSuffix(out, "*关注我，持续分享 AI 编程实战经验*\n        "))
}

func TestEveryStyleHasBothPlaceholders(t *testing.T) {
	for _, s := range Styles() {
		tpl := templates[s]
		assert.Equal(t, 1, strings.Count(tpl, "{title}"), s)
		assert.Equal(t, 1, strings.Count(tpl, "{content}"), s)
	}
}

func TestSubstitutionIsVerbatim(t *testing.T) {
	rec := record.Record{Title: "{content} & <b>", Content: "{title} 100% $1"}
	out := Render(rec, "gzh")

	assert.Contains(t, out, "标题：{content} & <b>\n")
	assert.Contains(t, out, "\n{title} 100% $1\n")
}

func TestParseStyle(t *testing.T) {
	s, ok := ParseStyle("gzh")
	assert.True(t, ok)
	assert.Equal(t, GZH, s)

	_, ok = ParseStyle("weibo")
	assert.False(t, ok)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	rec := record.Record{ID: 1, Title: "T1", Content: "C1"}

	path, text, err := New(0).Write(dir, rec, "zhihu")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "article_1_zhihu.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(data))
	assert.Contains(t, string(data), "## T1")
	assert.Contains(t, string(data), "核心优势")
	assert.Contains(t, string(data), "C1")
}

func TestArticlePathKeepsRequestedStyle(t *testing.T) {
	assert.Equal(t, filepath.Join("d", "article_7_weibo.md"), ArticlePath("d", 7, "weibo"))
	assert.Equal(t, filepath.Join("d", "article_7_.._x.md"), ArticlePath("d", 7, "../x"))
}

func TestArticlePathEmptyStyleUsesDefault(t *testing.T) {
	assert.Equal(t, filepath.Join("d", "article_1_xiaohongshu.md"), ArticlePath("d", 1, ""))
}

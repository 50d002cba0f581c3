package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "b-article.json", `{
		"contentId": "article-b",
		"title": "B",
		"internalLinks": [{"targetId": "article-a", "anchorText": "back"}]
	}`)
	writeFixture(t, dir, "a-article.json", `{
		"contentId": "article-a",
		"url": "/a",
		"mediaReferences": ["media-1"],
		"relatedContentIds": ["article-b"]
	}`)
	writeFixture(t, dir, "notes.txt", "not json, ignored")

	contents, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, contents, 2)

	// File-name order keeps replays deterministic.
	assert.Equal(t, "article-a", contents[0].ContentID)
	assert.Equal(t, "article-b", contents[1].ContentID)
	assert.Equal(t, "/a", contents[0].URL)
	require.Len(t, contents[1].InternalLinks, 1)
	assert.Equal(t, "article-a", contents[1].InternalLinks[0].TargetID)
}

func TestLoadDir_Empty(t *testing.T) {
	contents, err := LoadDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestLoadDir_MissingDir(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadDir_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "bad.json", `{"contentId": `)

	_, err := LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

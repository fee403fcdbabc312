package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, dir, name, body string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()

	writeSeed(t, dir, "b.json", `{"title":"B","author":{"name":"n","email":"e"},"content":"","datePublished":"2024-01-02","likes":0,"comments":[],"tags":[]}`)
	writeSeed(t, dir, "a.json", `{"title":"A","author":{"name":"n","email":"e"},"content":"","datePublished":"2024-01-01","likes":3,"comments":[],"tags":["x"]}`)
	writeSeed(t, dir, "nested/c.JSON", `{"title":"C","author":{"name":"n","email":"e"},"content":"c","datePublished":"2024-01-03","likes":1,"comments":[],"tags":[]}`)
	writeSeed(t, dir, "notes.txt", `not a post`)

	p := NewPosts()
	added, err := LoadSeed(dir, p)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	var titles []string
	for _, post := range p.GetAll() {
		titles = append(titles, post.Title)
	}
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestLoadSeedSkipsInvalid(t *testing.T) {
	dir := t.TempDir()

	writeSeed(t, dir, "1.json", examplePostJSON)
	writeSeed(t, dir, "2.json", examplePostJSON)
	writeSeed(t, dir, "3.json", `{"title":"no author"}`)
	writeSeed(t, dir, "4.json", `{"likes":"many"}`)
	writeSeed(t, dir, "5.json", `{broken`)

	p := NewPosts()
	added, err := LoadSeed(dir, p)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, p.Len())
}

func TestLoadSeedMissingDir(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope"), NewPosts())
	assert.Error(t, err)
}

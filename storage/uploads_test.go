package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("files", name)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"][0]
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "http://localhost:8080/", zerolog.Nop())
	require.NoError(t, err)

	name, err := store.Save(fileHeader(t, "photo.png", "image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(name), "original extension kept")
	assert.NotEqual(t, "photo.png", name, "stored under a unique name")

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	assert.Equal(t, "http://localhost:8080/uploads/"+name, store.URL(name))

	store.Remove(name)
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))

	// Removing a missing or empty name does not panic or error.
	store.Remove(name)
	store.Remove("")
}

func TestSaveAll(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "http://localhost:8080", zerolog.Nop())
	require.NoError(t, err)

	names, err := store.SaveAll([]*multipart.FileHeader{
		fileHeader(t, "a.png", "a"),
		fileHeader(t, "b.jpg", "b"),
	})
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.NotEqual(t, names[0], names[1])

	store.RemoveAll(names)
	for _, name := range names {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err))
	}
}

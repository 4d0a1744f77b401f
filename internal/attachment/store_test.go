package attachment_test

import (
	"os"
	"path/filepath"
	"testing"

	"tenant-ledger/internal/attachment"
	"tenant-ledger/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*attachment.Store, string, string) {
	base := t.TempDir()
	photoDir := filepath.Join(base, "tenant_photos")
	docsDir := filepath.Join(base, "tenant_documents")
	store := attachment.NewStore(photoDir, docsDir)
	require.NoError(t, store.Init())
	return store, photoDir, docsDir
}

func writeSource(t *testing.T, name string, content []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestInit_CreatesDirectories(t *testing.T) {
	_, photoDir, docsDir := setupStore(t)

	for _, dir := range []string{photoDir, docsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSave_StoresUnderContentHash(t *testing.T) {
	store, photoDir, _ := setupStore(t)
	source := writeSource(t, "id-photo.jpg", []byte("photo bytes"))

	dest, stored, err := store.Save(source, attachment.CategoryPhotos)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, photoDir, filepath.Dir(dest))
	assert.Equal(t, ".jpg", filepath.Ext(dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("photo bytes"), data)
}

func TestSave_DeduplicatesByContent(t *testing.T) {
	store, _, docsDir := setupStore(t)

	// Same bytes under different source names land on the same destination
	first := writeSource(t, "lease-v1.pdf", []byte("identical contents"))
	second := writeSource(t, "renamed-copy.pdf", []byte("identical contents"))

	destA, stored, err := store.Save(first, attachment.CategoryDocuments)
	require.NoError(t, err)
	assert.True(t, stored)

	destB, stored, err := store.Save(second, attachment.CategoryDocuments)
	require.NoError(t, err)
	assert.True(t, stored)

	assert.Equal(t, destA, destB)

	entries, err := os.ReadDir(docsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_DifferentContentDifferentPaths(t *testing.T) {
	store, _, _ := setupStore(t)

	destA, _, err := store.Save(writeSource(t, "a.pdf", []byte("one")), attachment.CategoryDocuments)
	require.NoError(t, err)
	destB, _, err := store.Save(writeSource(t, "b.pdf", []byte("two")), attachment.CategoryDocuments)
	require.NoError(t, err)

	assert.NotEqual(t, destA, destB)
}

func TestSave_MissingSourceIsNotAnError(t *testing.T) {
	store, photoDir, _ := setupStore(t)

	dest, stored, err := store.Save(filepath.Join(t.TempDir(), "nope.jpg"), attachment.CategoryPhotos)
	assert.NoError(t, err)
	assert.False(t, stored)
	assert.Empty(t, dest)

	// Nothing was written
	entries, err := os.ReadDir(photoDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_UnknownCategory(t *testing.T) {
	store, _, _ := setupStore(t)
	source := writeSource(t, "a.pdf", []byte("bytes"))

	_, _, err := store.Save(source, attachment.Category("receipts"))
	var validationErr *ledger.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSave_UnwritableDestination(t *testing.T) {
	base := t.TempDir()
	store := attachment.NewStore(filepath.Join(base, "photos"), filepath.Join(base, "docs"))
	// Init deliberately skipped: destination directories do not exist

	source := writeSource(t, "a.jpg", []byte("bytes"))
	_, _, err := store.Save(source, attachment.CategoryPhotos)
	var storageErr *ledger.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestSave_KeepsExtensionPerCategory(t *testing.T) {
	store, _, _ := setupStore(t)

	// Same content, different extensions: stored as separate files
	destPDF, _, err := store.Save(writeSource(t, "doc.pdf", []byte("same")), attachment.CategoryDocuments)
	require.NoError(t, err)
	destJPG, _, err := store.Save(writeSource(t, "doc.jpg", []byte("same")), attachment.CategoryDocuments)
	require.NoError(t, err)

	assert.NotEqual(t, destPDF, destJPG)
	assert.Equal(t, ".pdf", filepath.Ext(destPDF))
	assert.Equal(t, ".jpg", filepath.Ext(destJPG))
}

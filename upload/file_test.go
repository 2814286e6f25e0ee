package upload

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexballas/xdropzone/internal/logging"
)

func TestNewURIFile_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, make([]byte, 1536), 0o644))

	f, err := NewURIFile(storage.NewFileURI(path))
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", f.Name())
	assert.Equal(t, int64(1536), f.Size())
	assert.Equal(t, path, f.URI().Path())
}

func TestNewURIFile_Errors(t *testing.T) {
	_, err := NewURIFile(nil)
	assert.Error(t, err)

	_, err = NewURIFile(storage.NewFileURI(filepath.Join(t.TempDir(), "missing.pdf")))
	assert.Error(t, err)

	_, err = NewURIFile(storage.NewFileURI(t.TempDir()))
	assert.Error(t, err)
}

func TestFilesFromURIs_SkipsUnreadable(t *testing.T) {
	test.NewApp()

	dir := t.TempDir()
	good := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(good, []byte("png"), 0o644))

	files := FilesFromURIs([]fyne.URI{
		storage.NewFileURI(good),
		storage.NewFileURI(dir),
		storage.NewFileURI(filepath.Join(dir, "gone.png")),
	}, logging.Nop())

	require.Len(t, files, 1)
	assert.Equal(t, "a.png", files[0].Name())
	assert.Equal(t, int64(3), files[0].Size())
}

func TestURIFile_IdentityDrivesRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	first, err := NewURIFile(storage.NewFileURI(path))
	require.NoError(t, err)
	second, err := NewURIFile(storage.NewFileURI(path))
	require.NoError(t, err)

	c := NewController(pdfConfig(true))
	c.Submit([]File{first, second})

	c.RemoveFile(&CandidateFile{File: second})
	files := c.Files()
	require.Len(t, files, 1)
	assert.Same(t, first, files[0].File)
}

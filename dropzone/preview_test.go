package dropzone

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexballas/xdropzone/internal/logging"
	"github.com/alexballas/xdropzone/upload"
)

func writePNG(t *testing.T, dir, name string, w, h int) *upload.URIFile {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	uf, err := upload.NewURIFile(storage.NewFileURI(p))
	require.NoError(t, err)
	return uf
}

func candidate(f upload.File, ext string) *upload.CandidateFile {
	return &upload.CandidateFile{File: f, Size: f.Size(), Extension: ext}
}

func TestLetterbox_Landscape(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for x := 0; x < 100; x++ {
		for y := 0; y < 50; y++ {
			src.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}

	dst := letterbox(src, 48)
	require.Equal(t, image.Rect(0, 0, 48, 48), dst.Bounds())

	_, _, _, top := dst.At(24, 2).RGBA()
	assert.Zero(t, top, "bar above the image should be transparent")
	_, _, _, mid := dst.At(24, 24).RGBA()
	assert.NotZero(t, mid)
}

func TestLetterbox_EmptySource(t *testing.T) {
	dst := letterbox(image.NewRGBA(image.Rect(0, 0, 0, 0)), 48)
	assert.Equal(t, image.Rect(0, 0, 48, 48), dst.Bounds())
}

func TestPreviewer_LoadCachesImages(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, "photo.png", 64, 32)

	docPath := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(docPath, []byte("%PDF"), 0o600))
	doc, err := upload.NewURIFile(storage.NewFileURI(docPath))
	require.NoError(t, err)

	p := NewPreviewer(logging.Nop())
	files := []*upload.CandidateFile{candidate(img, "PNG"), candidate(doc, "PDF"), nil}

	added, err := p.Load(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	cached, ok := p.Cached(img.URI())
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, previewSize, previewSize), cached.Bounds())

	_, ok = p.Cached(doc.URI())
	assert.False(t, ok)

	added, err = p.Load(context.Background(), files)
	require.NoError(t, err)
	assert.Zero(t, added, "cached previews are not decoded again")
}

func TestPreviewer_SkipsUndecodable(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "broken.jpg")
	require.NoError(t, os.WriteFile(p, []byte("not a jpeg"), 0o600))
	broken, err := upload.NewURIFile(storage.NewFileURI(p))
	require.NoError(t, err)

	added, err := NewPreviewer(logging.Nop()).Load(context.Background(), []*upload.CandidateFile{candidate(broken, "JPG")})
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestPreviewer_ManyFiles(t *testing.T) {
	dir := t.TempDir()
	var files []*upload.CandidateFile
	for _, name := range []string{"a.png", "b.png", "c.png", "d.png", "e.png", "f.png"} {
		files = append(files, candidate(writePNG(t, dir, name, 10, 20), "PNG"))
	}

	added, err := NewPreviewer(logging.Nop()).Load(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, len(files), added)
}

func TestPreviewer_IgnoresPlainFiles(t *testing.T) {
	p := NewPreviewer(logging.Nop())
	added, err := p.Load(context.Background(), []*upload.CandidateFile{candidate(&fakeFile{name: "x.png", size: 1}, "PNG")})
	require.NoError(t, err)
	assert.Zero(t, added)
	_, ok := p.Cached(nil)
	assert.False(t, ok)
}

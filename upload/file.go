package upload

import (
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/rs/zerolog"
)

// File is a raw file offered to the controller. Candidates are matched by
// interface equality, so implementations must be comparable; pointer types
// are the norm.
type File interface {
	Name() string
	Size() int64
}

// URIFile is a File backed by a fyne.URI. The size is captured once when
// the value is built.
type URIFile struct {
	uri  fyne.URI
	size int64
}

// NewURIFile sizes the resource behind u. Local files are sized with a
// stat call, anything else is streamed through storage.Reader.
func NewURIFile(u fyne.URI) (*URIFile, error) {
	if u == nil {
		return nil, fmt.Errorf("nil uri")
	}

	if u.Scheme() == "file" {
		info, err := os.Stat(u.Path())
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", u.Path(), err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", u.Path())
		}
		return &URIFile{uri: u, size: info.Size()}, nil
	}

	r, err := storage.Reader(u)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", u, err)
	}
	defer r.Close()

	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", u, err)
	}
	return &URIFile{uri: u, size: n}, nil
}

func (f *URIFile) Name() string  { return f.uri.Name() }
func (f *URIFile) Size() int64   { return f.size }
func (f *URIFile) URI() fyne.URI { return f.uri }

// FilesFromURIs converts dropped or picked URIs, skipping (and logging)
// the ones that cannot be sized, such as folders.
func FilesFromURIs(uris []fyne.URI, log zerolog.Logger) []File {
	files := make([]File, 0, len(uris))
	for _, u := range uris {
		f, err := NewURIFile(u)
		if err != nil {
			log.Warn().Err(err).Msg("skipping dropped item")
			continue
		}
		files = append(files, f)
	}
	return files
}

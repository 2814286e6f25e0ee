package dropzone

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/alexballas/xdropzone/internal/logging"
	"github.com/alexballas/xdropzone/upload"
)

const (
	previewSize          = 48
	maxConcurrentDecodes = 4
)

// Previewer builds small letterboxed previews of image candidates and
// keeps them in memory, keyed by URI.
type Previewer struct {
	cache sync.Map // string -> image.Image
	size  int
	log   zerolog.Logger
}

func NewPreviewer(log zerolog.Logger) *Previewer {
	return &Previewer{size: previewSize, log: logging.Component(log, "preview")}
}

// Cached returns the preview for u if one has been generated.
func (p *Previewer) Cached(u fyne.URI) (image.Image, bool) {
	if u == nil {
		return nil, false
	}
	img, ok := p.cache.Load(u.String())
	if !ok {
		return nil, false
	}
	return img.(image.Image), true
}

// Load generates the missing previews for files. Files that are not
// PNG or JPEG, not backed by a URI, or fail to decode are skipped.
// It returns how many previews were added.
func (p *Previewer) Load(ctx context.Context, files []*upload.CandidateFile) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDecodes)

	var mu sync.Mutex
	added := 0
	seen := make(map[string]bool)

	for _, c := range files {
		u, ok := previewURI(c)
		if !ok || seen[u.String()] {
			continue
		}
		seen[u.String()] = true
		if _, ok := p.Cached(u); ok {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := p.render(u)
			if err != nil {
				p.log.Debug().Err(err).Str("file", u.Name()).Msg("no preview")
				return nil
			}
			p.cache.Store(u.String(), img)
			mu.Lock()
			added++
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	return added, err
}

func previewURI(c *upload.CandidateFile) (fyne.URI, bool) {
	if c == nil {
		return nil, false
	}
	switch c.Extension {
	case "PNG", "JPG", "JPEG":
	default:
		return nil, false
	}
	f, ok := c.File.(*upload.URIFile)
	if !ok {
		return nil, false
	}
	return f.URI(), true
}

func (p *Previewer) render(u fyne.URI) (image.Image, error) {
	r, err := storage.Reader(u)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return letterbox(img, p.size), nil
}

// letterbox scales img to fit a size×size square, centred on a
// transparent background.
func letterbox(img image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))

	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if w == 0 || h == 0 {
		return dst
	}

	scaledW, scaledH := size, size
	if w > h {
		scaledH = max(1, size*h/w)
	} else {
		scaledW = max(1, size*w/h)
	}

	x := (size - scaledW) / 2
	y := (size - scaledH) / 2
	draw.ApproxBiLinear.Scale(dst, image.Rect(x, y, x+scaledW, y+scaledH), img, src, draw.Over, nil)
	return dst
}

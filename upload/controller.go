// Package upload holds the file selection state behind the drop zone: the
// acceptance rules, the ordered batch of validated candidates and the
// notifications a host screen reacts to.
package upload

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/alexballas/xdropzone/internal/logging"
)

// Option customises a Controller.
type Option func(*Controller)

// WithLogger routes controller logging to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = logging.Component(l, "upload")
	}
}

type subscriber struct {
	id int
	fn func(Event)
}

// Controller owns the current batch of candidate files.
type Controller struct {
	mu     sync.Mutex
	config SelectionConfig
	batch  []*CandidateFile

	subs   []subscriber
	nextID int

	log zerolog.Logger
}

// NewController returns a controller with an empty batch.
func NewController(cfg SelectionConfig, opts ...Option) *Controller {
	c := &Controller{
		config: cfg.Normalized(),
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure replaces the acceptance rules. The current batch is left as
// it is and nothing is emitted.
func (c *Controller) Configure(cfg SelectionConfig) {
	c.mu.Lock()
	c.config = cfg.Normalized()
	c.mu.Unlock()
}

func (c *Controller) Config() SelectionConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

// AcceptString is the browse filter of the current config.
func (c *Controller) AcceptString() string {
	return c.Config().AcceptString()
}

// Subscribe registers fn for every future event. Events are delivered
// synchronously, in registration order, after the controller lock has
// been released. The returned func stops delivery.
func (c *Controller) Subscribe(fn func(Event)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Files returns a copy of the batch in insertion order.
func (c *Controller) Files() []*CandidateFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// HasErrors reports whether any candidate failed validation.
func (c *Controller) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.batch {
		if !f.Valid() {
			return true
		}
	}
	return false
}

// ValidFiles returns the candidates without a validation error.
func (c *Controller) ValidFiles() []*CandidateFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	var valid []*CandidateFile
	for _, f := range c.batch {
		if f.Valid() {
			valid = append(valid, f)
		}
	}
	return valid
}

// Submit validates files and merges them into the batch. Single selection
// keeps only the first file and replaces the batch; multiple selection
// appends. An empty submission does nothing.
func (c *Controller) Submit(files []File) {
	if len(files) == 0 {
		return
	}

	c.mu.Lock()
	cfg := c.config
	validated := make([]*CandidateFile, 0, len(files))
	for _, f := range files {
		candidate := cfg.Validate(f)
		if !candidate.Valid() {
			c.log.Info().
				Str("file", candidate.Name()).
				Int64("size", candidate.Size).
				Str("reason", candidate.Error).
				Msg("file rejected")
		}
		validated = append(validated, candidate)
	}

	if cfg.AllowMultiple {
		c.batch = append(c.batch, validated...)
	} else {
		c.batch = validated[:1]
	}
	ev := Event{Kind: SelectionChanged, Files: c.snapshotLocked()}
	c.mu.Unlock()

	c.log.Debug().Int("submitted", len(files)).Int("batch", len(ev.Files)).Msg("selection changed")
	c.emit(ev)
}

// RemoveFile drops the first candidate backed by the same File. Nothing is
// emitted when no entry matches.
func (c *Controller) RemoveFile(candidate *CandidateFile) {
	if candidate == nil {
		return
	}

	c.mu.Lock()
	var removed *CandidateFile
	for i, f := range c.batch {
		if f.File == candidate.File {
			removed = f
			c.batch = append(c.batch[:i:i], c.batch[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if removed == nil {
		return
	}
	c.log.Debug().Str("file", removed.Name()).Msg("file removed")
	c.emit(Event{Kind: FileRemoved, File: removed})
}

// ClearFiles empties the batch and always emits FilesCleared.
func (c *Controller) ClearFiles() {
	c.mu.Lock()
	c.batch = nil
	c.mu.Unlock()

	c.log.Debug().Msg("files cleared")
	c.emit(Event{Kind: FilesCleared})
}

// RequestUpload hands the batch to subscribers. Errored candidates are
// included; refusing them is up to the host. An empty batch is ignored.
func (c *Controller) RequestUpload() {
	c.mu.Lock()
	if len(c.batch) == 0 {
		c.mu.Unlock()
		return
	}
	ev := Event{Kind: UploadRequested, Files: c.snapshotLocked()}
	c.mu.Unlock()

	c.log.Debug().Int("batch", len(ev.Files)).Msg("upload requested")
	c.emit(ev)
}

func (c *Controller) snapshotLocked() []*CandidateFile {
	out := make([]*CandidateFile, len(c.batch))
	copy(out, c.batch)
	return out
}

func (c *Controller) emit(ev Event) {
	c.mu.Lock()
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(ev)
	}
}

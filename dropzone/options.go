package dropzone

import (
	"github.com/rs/zerolog"

	"github.com/alexballas/xdropzone/internal/logging"
)

// Option customises the drop zone widgets.
type Option func(*settings)

type settings struct {
	log       zerolog.Logger
	previewer *Previewer
}

// WithLogger routes widget logging to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) {
		s.log = l
	}
}

// WithPreviewer shares one preview cache between lists.
func WithPreviewer(p *Previewer) Option {
	return func(s *settings) {
		s.previewer = p
	}
}

func newSettings(opts []Option) settings {
	s := settings{log: logging.Nop()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.previewer == nil {
		s.previewer = NewPreviewer(s.log)
	}
	return s
}

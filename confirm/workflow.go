// Package confirm asks the user to confirm or cancel an action and hands
// the answer back exactly once.
package confirm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alexballas/xdropzone/internal/logging"
)

// Presentation policy shared by every request.
const (
	DialogWidth   float32 = 400
	MaxWidthRatio float32 = 0.9
)

// ErrNoWindow is returned when there is no parent window to show a
// dialog on.
var ErrNoWindow = errors.New("confirm: no parent window")

// Presentation is what a Presenter draws: a fully resolved request plus
// the shared size policy.
type Presentation struct {
	Request
	Width         float32
	MaxWidthRatio float32
}

// Presenter shows a modal for p and calls resolve once it is closed.
// An error from Present means nothing was shown.
type Presenter interface {
	Present(p Presentation, resolve func(Result, error)) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(p Presentation, resolve func(Result, error)) error

func (f PresenterFunc) Present(p Presentation, resolve func(Result, error)) error {
	return f(p, resolve)
}

// Option customises a Workflow.
type Option func(*Workflow)

// WithLogger routes workflow logging to l.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Workflow) {
		w.log = logging.Component(l, "confirm")
	}
}

// Workflow composes requests and hands them to a Presenter. It holds no
// per-request state, so any number of confirmations may be open at once.
type Workflow struct {
	presenter Presenter
	log       zerolog.Logger
}

// New returns a Workflow drawing through p.
func New(p Presenter, opts ...Option) *Workflow {
	w := &Workflow{
		presenter: p,
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// OpenConfirmDialog shows req and returns a handle to its single result.
func (w *Workflow) OpenConfirmDialog(req Request) (*Pending, error) {
	if w.presenter == nil {
		return nil, errors.New("confirm: no presenter")
	}

	resolved := req.Resolved()
	p := newPending(resolved)
	log := w.log.With().Str("request", p.ID.String()).Str("title", resolved.Title).Logger()

	presentation := Presentation{
		Request:       resolved,
		Width:         DialogWidth,
		MaxWidthRatio: MaxWidthRatio,
	}
	err := w.presenter.Present(presentation, func(r Result, err error) {
		if !p.resolve(r, err) {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("confirmation failed")
			return
		}
		log.Debug().Stringer("result", r).Msg("confirmation resolved")
	})
	if err != nil {
		log.Error().Err(err).Msg("could not open confirmation")
		return nil, fmt.Errorf("open confirmation %q: %w", resolved.Title, err)
	}

	log.Debug().Str("severity", string(resolved.Severity)).Msg("confirmation opened")
	return p, nil
}

// OpenDeleteConfirmation asks before deleting itemName. The name is placed
// in the Markdown message as is.
func (w *Workflow) OpenDeleteConfirmation(itemName string) (*Pending, error) {
	return w.OpenConfirmDialog(DeleteRequest(itemName))
}

// OpenUnsavedChangesDialog asks before leaving with unsaved changes.
func (w *Workflow) OpenUnsavedChangesDialog() (*Pending, error) {
	return w.OpenConfirmDialog(UnsavedChangesRequest())
}

// OpenLogoutConfirmation asks before signing out.
func (w *Workflow) OpenLogoutConfirmation() (*Pending, error) {
	return w.OpenConfirmDialog(LogoutRequest())
}

// OpenClearDataConfirmation asks before clearing every dataType entry.
func (w *Workflow) OpenClearDataConfirmation(dataType string) (*Pending, error) {
	return w.OpenConfirmDialog(ClearDataRequest(dataType))
}

func DeleteRequest(itemName string) Request {
	return Request{
		Title:       "Delete Confirmation",
		Message:     fmt.Sprintf("Are you sure you want to delete **%s**? This action cannot be undone.", itemName),
		ConfirmText: "Delete",
		CancelText:  "Cancel",
		Severity:    SeverityDanger,
	}
}

func UnsavedChangesRequest() Request {
	return Request{
		Title:       "Unsaved Changes",
		Message:     "You have unsaved changes. Are you sure you want to leave this page?",
		ConfirmText: "Leave",
		CancelText:  "Stay",
		Severity:    SeverityWarning,
	}
}

func LogoutRequest() Request {
	return Request{
		Title:       "Sign Out",
		Message:     "Are you sure you want to sign out?",
		ConfirmText: "Sign Out",
		CancelText:  "Cancel",
		Severity:    SeverityInfo,
	}
}

func ClearDataRequest(dataType string) Request {
	return Request{
		Title:       "Clear " + dataType,
		Message:     fmt.Sprintf("Are you sure you want to clear all %s? This action cannot be undone.", strings.ToLower(dataType)),
		ConfirmText: "Clear",
		CancelText:  "Cancel",
		Severity:    SeverityDanger,
	}
}

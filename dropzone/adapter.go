// Package dropzone renders the upload drop target and the selected batch,
// and turns drag, drop and browse input into controller submissions.
package dropzone

import (
	"github.com/alexballas/xdropzone/upload"
)

// State is the drag state of a drop target.
type State int

const (
	Idle State = iota
	DragOver
)

func (s State) String() string {
	if s == DragOver {
		return "drag_over"
	}
	return "idle"
}

// Adapter maps drag and drop signals onto a Controller. Each signal
// reports whether it was consumed; disabled controllers consume nothing.
// Adapter methods are meant to be called from the UI goroutine.
type Adapter struct {
	// OnStateChanged is called after every transition between states.
	OnStateChanged func(State)

	controller *upload.Controller
	state      State
}

func NewAdapter(c *upload.Controller) *Adapter {
	return &Adapter{controller: c}
}

func (a *Adapter) disabled() bool {
	return a.controller.Config().Disabled
}

func (a *Adapter) DragEnter() bool {
	if a.disabled() {
		return false
	}
	a.setState(DragOver)
	return true
}

func (a *Adapter) DragOver() bool {
	if a.disabled() {
		return false
	}
	a.setState(DragOver)
	return true
}

func (a *Adapter) DragLeave() bool {
	if a.disabled() {
		return false
	}
	a.setState(Idle)
	return true
}

// Drop ends the drag and submits files, if there are any.
func (a *Adapter) Drop(files []upload.File) bool {
	if a.disabled() {
		return false
	}
	a.setState(Idle)
	if len(files) > 0 {
		a.controller.Submit(files)
	}
	return true
}

// Pick submits files chosen through the browse picker. Drag state is not
// touched.
func (a *Adapter) Pick(files []upload.File) {
	if len(files) == 0 {
		return
	}
	a.controller.Submit(files)
}

func (a *Adapter) IsDragOver() bool {
	return a.state == DragOver
}

func (a *Adapter) State() State {
	return a.state
}

func (a *Adapter) setState(s State) {
	if a.state == s {
		return
	}
	a.state = s
	if a.OnStateChanged != nil {
		a.OnStateChanged(s)
	}
}

package dropzone

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/alexballas/xdropzone/dialog"
	"github.com/alexballas/xdropzone/internal/logging"
	"github.com/alexballas/xdropzone/upload"
)

// pickerFunc opens a browse picker and reports the chosen files.
type pickerFunc func(parent fyne.Window, multiple bool, filter storage.FileFilter, done func([]fyne.URI, error))

// DropZone is the drop target: an upload prompt with the acceptance hint
// and a Browse button. Call Attach to receive files dropped on the
// window.
type DropZone struct {
	widget.BaseWidget

	adapter    *Adapter
	controller *upload.Controller
	window     fyne.Window
	openPicker pickerFunc

	bg     *canvas.Rectangle
	prompt *widget.Label
	hint   *widget.Label
	browse *widget.Button

	log zerolog.Logger
}

var _ desktop.Hoverable = (*DropZone)(nil)

func NewDropZone(c *upload.Controller, opts ...Option) *DropZone {
	s := newSettings(opts)
	z := &DropZone{
		adapter:    NewAdapter(c),
		controller: c,
		openPicker: showPicker,
		log:        logging.Component(s.log, "dropzone"),
	}

	z.bg = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	z.bg.StrokeWidth = 2
	z.bg.CornerRadius = theme.InputRadiusSize()
	z.prompt = widget.NewLabelWithStyle("Drag and drop files here", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	z.hint = widget.NewLabel("")
	z.hint.Alignment = fyne.TextAlignCenter
	z.hint.Importance = widget.LowImportance
	z.browse = widget.NewButtonWithIcon("Browse files", theme.FolderOpenIcon(), z.Browse)
	z.browse.Importance = widget.HighImportance

	z.adapter.OnStateChanged = func(State) {
		z.Refresh()
	}
	z.ExtendBaseWidget(z)
	z.update()
	return z
}

// Adapter returns the drag state machine behind the zone.
func (z *DropZone) Adapter() *Adapter {
	return z.adapter
}

// Attach receives drops on w. Only drops inside the zone are taken.
func (z *DropZone) Attach(w fyne.Window) {
	z.window = w
	w.SetOnDropped(z.dropped)
}

func (z *DropZone) dropped(pos fyne.Position, uris []fyne.URI) {
	if !z.contains(pos) {
		return
	}
	files := upload.FilesFromURIs(uris, z.log)
	if !z.adapter.Drop(files) {
		z.log.Debug().Int("items", len(uris)).Msg("drop ignored, zone disabled")
	}
}

func (z *DropZone) contains(pos fyne.Position) bool {
	if !z.Visible() {
		return false
	}
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(z)
	size := z.Size()
	return pos.X >= origin.X && pos.Y >= origin.Y &&
		pos.X < origin.X+size.Width && pos.Y < origin.Y+size.Height
}

// Browse opens the picker with the controller's rules and submits what
// the user chooses.
func (z *DropZone) Browse() {
	cfg := z.controller.Config()
	if cfg.Disabled {
		return
	}
	if z.window == nil {
		z.log.Warn().Msg("browse needs an attached window")
		return
	}

	z.openPicker(z.window, cfg.AllowMultiple, cfg.ExtensionFilter(), func(uris []fyne.URI, err error) {
		if err != nil {
			z.log.Error().Err(err).Msg("browse failed")
			return
		}
		z.adapter.Pick(upload.FilesFromURIs(uris, z.log))
	})
}

func showPicker(parent fyne.Window, multiple bool, filter storage.FileFilter, done func([]fyne.URI, error)) {
	d := dialog.NewFileOpen(func(readers []fyne.URIReadCloser, err error) {
		uris := make([]fyne.URI, 0, len(readers))
		for _, r := range readers {
			uris = append(uris, r.URI())
			_ = r.Close()
		}
		done(uris, err)
	}, parent, multiple)

	if f, ok := d.(interface{ SetFilter(storage.FileFilter) }); ok && filter != nil {
		f.SetFilter(filter)
	}
	d.Show()
}

func (z *DropZone) MouseIn(*desktop.MouseEvent) {
	z.adapter.DragEnter()
}

func (z *DropZone) MouseMoved(*desktop.MouseEvent) {
	z.adapter.DragOver()
}

func (z *DropZone) MouseOut() {
	z.adapter.DragLeave()
}

// Refresh also picks up a reconfigured controller.
func (z *DropZone) Refresh() {
	z.update()
	z.BaseWidget.Refresh()
}

func (z *DropZone) update() {
	cfg := z.controller.Config()

	z.hint.SetText(hintText(cfg))
	if cfg.Disabled {
		z.browse.Disable()
	} else {
		z.browse.Enable()
	}

	switch {
	case cfg.Disabled:
		z.bg.StrokeColor = theme.Color(theme.ColorNameDisabled)
	case z.adapter.IsDragOver():
		z.bg.StrokeColor = theme.Color(theme.ColorNamePrimary)
	default:
		z.bg.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	}
	z.bg.Refresh()
}

func hintText(cfg upload.SelectionConfig) string {
	types := "No file types accepted"
	if len(cfg.AcceptedExtensions) > 0 {
		types = fmt.Sprintf("Accepted: %s", cfg.AcceptString())
	}
	if cfg.MaxFileSizeBytes > 0 {
		types += fmt.Sprintf(" (max %s)", upload.FormatFileSize(cfg.MaxFileSizeBytes))
	}
	return types
}

func (z *DropZone) CreateRenderer() fyne.WidgetRenderer {
	icon := widget.NewIcon(theme.UploadIcon())
	body := container.NewVBox(
		container.NewCenter(container.NewGridWrap(fyne.NewSquareSize(theme.IconInlineSize()*3), icon)),
		z.prompt,
		z.hint,
		container.NewCenter(z.browse),
	)
	return widget.NewSimpleRenderer(container.NewStack(z.bg, container.NewPadded(container.NewCenter(body))))
}

package dropzone

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/alexballas/xdropzone/internal/logging"
	"github.com/alexballas/xdropzone/upload"
)

const rowIconSize = 48

// FileList shows the controller's batch, one row per candidate, and
// follows it through controller events.
type FileList struct {
	widget.BaseWidget

	// OnRemove is called by a row's remove button. It defaults to
	// removing the file from the controller.
	OnRemove func(*upload.CandidateFile)

	controller *upload.Controller
	previews   *Previewer
	files      []*upload.CandidateFile
	list       *widget.List
	empty      *widget.Label
	cancel     func()
	log        zerolog.Logger
}

func NewFileList(c *upload.Controller, opts ...Option) *FileList {
	s := newSettings(opts)
	l := &FileList{
		controller: c,
		previews:   s.previewer,
		log:        logging.Component(s.log, "file_list"),
	}
	l.OnRemove = c.RemoveFile

	l.list = widget.NewList(
		func() int { return len(l.files) },
		func() fyne.CanvasObject { return newFileRow() },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id >= len(l.files) {
				return
			}
			candidate := l.files[id]
			o.(*fileRow).bind(candidate, l.previewFor(candidate), func() {
				if l.OnRemove != nil {
					l.OnRemove(candidate)
				}
			})
		},
	)
	l.empty = widget.NewLabelWithStyle("No files selected", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	l.cancel = c.Subscribe(func(upload.Event) {
		fyne.Do(l.sync)
	})
	l.ExtendBaseWidget(l)
	l.sync()
	return l
}

// Files returns the rows currently shown.
func (l *FileList) Files() []*upload.CandidateFile {
	return l.files
}

// Close stops following the controller.
func (l *FileList) Close() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *FileList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(l.list, l.empty))
}

func (l *FileList) sync() {
	l.files = l.controller.Files()
	if len(l.files) == 0 {
		l.empty.Show()
		l.list.Hide()
	} else {
		l.empty.Hide()
		l.list.Show()
	}
	l.list.Refresh()
	l.loadPreviews(l.files)
}

func (l *FileList) loadPreviews(files []*upload.CandidateFile) {
	go func() {
		added, err := l.previews.Load(context.Background(), files)
		if err != nil {
			l.log.Warn().Err(err).Msg("preview generation stopped")
		}
		if added > 0 {
			fyne.Do(l.list.Refresh)
		}
	}()
}

func (l *FileList) previewFor(c *upload.CandidateFile) *canvas.Image {
	u, ok := previewURI(c)
	if !ok {
		return nil
	}
	img, ok := l.previews.Cached(u)
	if !ok {
		return nil
	}
	return canvas.NewImageFromImage(img)
}

type fileRow struct {
	widget.BaseWidget

	icon    *widget.Icon
	preview *fyne.Container
	name    *widget.Label
	size    *widget.Label
	err     *widget.Label
	remove  *widget.Button
}

func newFileRow() *fileRow {
	r := &fileRow{
		icon:    widget.NewIcon(theme.FileIcon()),
		preview: container.NewStack(),
		name:    widget.NewLabel(""),
		size:    widget.NewLabel(""),
		err:     widget.NewLabel(""),
		remove:  widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
	}
	r.name.Truncation = fyne.TextTruncateEllipsis
	r.name.TextStyle = fyne.TextStyle{Bold: true}
	r.size.Importance = widget.LowImportance
	r.err.Importance = widget.DangerImportance
	r.err.Truncation = fyne.TextTruncateEllipsis
	r.remove.Importance = widget.LowImportance
	r.ExtendBaseWidget(r)
	return r
}

func (r *fileRow) bind(c *upload.CandidateFile, preview *canvas.Image, remove func()) {
	r.name.SetText(c.Name())
	r.size.SetText(upload.FormatFileSize(c.Size))

	// Rows keep the error line even when empty so they stay one height.
	r.err.SetText(c.Error)

	if preview != nil {
		preview.FillMode = canvas.ImageFillContain
		r.preview.Objects = []fyne.CanvasObject{preview}
		r.icon.Hide()
	} else {
		r.preview.Objects = nil
		r.icon.Show()
	}
	r.preview.Refresh()
	r.remove.OnTapped = remove
}

func (r *fileRow) CreateRenderer() fyne.WidgetRenderer {
	thumb := container.NewGridWrap(fyne.NewSquareSize(rowIconSize), container.NewStack(r.icon, r.preview))
	details := container.NewVBox(r.name, r.size, r.err)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, thumb, container.NewCenter(r.remove), details))
}

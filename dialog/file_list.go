package dialog

import (
	"os"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alexballas/xdropzone/upload"
)

// entry caches what sorting and rendering need, so the list does not stat
// the same file on every comparison.
type entry struct {
	uri   fyne.URI
	isDir bool
	size  int64 // -1 when unknown
}

func newEntry(u fyne.URI) entry {
	e := entry{uri: u, size: -1}
	e.isDir, _ = storage.CanList(u)
	if e.isDir || u.Scheme() != "file" {
		return e
	}
	if info, err := os.Stat(u.Path()); err == nil {
		e.size = info.Size()
	}
	return e
}

type fileList struct {
	picker FilePicker

	list *widget.List

	files        []entry
	filtered     []entry
	activeFilter string
	sortOrder    FileSortOrder
}

func newFileList(p FilePicker) *fileList {
	f := &fileList{
		picker:    p,
		sortOrder: SortNameAsc,
	}

	f.list = widget.NewList(
		func() int { return len(f.filtered) },
		func() fyne.CanvasObject { return newFileItem(f.picker) },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			item := o.(*fileItem)
			item.id = id
			if id < len(f.filtered) {
				item.setEntry(f.filtered[id])
				item.setSelected(f.picker.IsSelected(f.filtered[id].uri))
			}
		},
	)
	return f
}

func (f *fileList) setFiles(files []fyne.URI) {
	f.files = make([]entry, len(files))
	for i, u := range files {
		f.files[i] = newEntry(u)
	}
	f.applyFilter()
	f.refresh()
}

func (f *fileList) setFilter(filter string) {
	f.activeFilter = strings.ToLower(filter)
	f.applyFilter()
	f.refresh()
}

func (f *fileList) setSortOrder(order FileSortOrder) {
	f.sortOrder = order
	f.sort()
	f.refresh()
}

func (f *fileList) applyFilter() {
	f.filtered = f.filtered[:0]
	for _, e := range f.files {
		if f.activeFilter == "" || strings.Contains(strings.ToLower(e.uri.Name()), f.activeFilter) {
			f.filtered = append(f.filtered, e)
		}
	}
	f.sort()
}

func (f *fileList) sort() {
	sort.SliceStable(f.filtered, func(i, j int) bool {
		a, b := f.filtered[i], f.filtered[j]
		if a.isDir != b.isDir {
			return a.isDir
		}

		name1 := strings.ToLower(a.uri.Name())
		name2 := strings.ToLower(b.uri.Name())

		// While searching, names starting with the query win over the
		// chosen order.
		if f.activeFilter != "" {
			prefix1 := strings.HasPrefix(name1, f.activeFilter)
			prefix2 := strings.HasPrefix(name2, f.activeFilter)
			if prefix1 != prefix2 {
				return prefix1
			}
			return name1 < name2
		}

		switch f.sortOrder {
		case SortNameDesc:
			return name1 > name2
		case SortSizeAsc:
			if a.size != b.size {
				return a.size < b.size
			}
		case SortSizeDesc:
			if a.size != b.size {
				return a.size > b.size
			}
		}
		return name1 < name2
	})
}

func (f *fileList) uriAt(id int) (fyne.URI, bool) {
	if id < 0 || id >= len(f.filtered) {
		return nil, false
	}
	return f.filtered[id].uri, true
}

func (f *fileList) refresh() {
	f.list.Refresh()
}

type fileItem struct {
	widget.BaseWidget
	picker FilePicker
	id     int
	uri    fyne.URI

	icon  *widget.FileIcon
	label *widget.Label
	size  *widget.Label
	bg    *canvas.Rectangle

	lastClick time.Time
}

func newFileItem(p FilePicker) *fileItem {
	item := &fileItem{
		picker: p,
		icon:   widget.NewFileIcon(nil),
		label:  widget.NewLabel(""),
		size:   widget.NewLabel(""),
		bg:     canvas.NewRectangle(theme.Color(theme.ColorNameSelection)),
	}
	item.bg.Hide()
	item.label.Truncation = fyne.TextTruncateEllipsis
	item.size.Alignment = fyne.TextAlignTrailing
	item.size.Importance = widget.LowImportance
	item.ExtendBaseWidget(item)
	return item
}

func (i *fileItem) setEntry(e entry) {
	i.uri = e.uri
	i.icon.SetURI(e.uri)
	i.label.SetText(e.uri.Name())
	if e.size < 0 {
		i.size.SetText("")
	} else {
		i.size.SetText(upload.FormatFileSize(e.size))
	}
}

func (i *fileItem) setSelected(selected bool) {
	if selected {
		i.bg.Show()
	} else {
		i.bg.Hide()
	}
	i.Refresh()
}

func (i *fileItem) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewBorder(nil, nil,
		container.NewGridWrap(fyne.NewSquareSize(fileInlineIconSize), i.icon),
		i.size, i.label)
	return widget.NewSimpleRenderer(container.NewStack(i.bg, row))
}

// Tapped only handles selection on mobile; desktop selection happens in
// MouseUp so modifiers are known. A second tap inside the double tap delay
// opens the entry.
func (i *fileItem) Tapped(*fyne.PointEvent) {
	if fyne.CurrentDevice().IsMobile() {
		i.picker.Select(i.id)
		return
	}

	now := time.Now()
	if now.Sub(i.lastClick) < fyne.CurrentApp().Driver().DoubleTapDelay() {
		if l, err := storage.ListerForURI(i.uri); err == nil {
			i.picker.SetLocation(l)
		} else {
			i.picker.Select(i.id)
			i.picker.OpenSelection()
		}
	}
	i.lastClick = now
}

var _ desktop.Mouseable = (*fileItem)(nil)

func (i *fileItem) MouseDown(*desktop.MouseEvent) {}

func (i *fileItem) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}

	switch {
	case e.Modifier&fyne.KeyModifierShortcutDefault != 0:
		i.picker.ToggleSelection(i.id)
	case e.Modifier&fyne.KeyModifierShift != 0:
		i.picker.ExtendSelection(i.id)
	default:
		i.picker.Select(i.id)
	}
}

// Package dialog is the browse picker behind the drop zone: a Fyne file
// open dialog with multi-selection, search and an extension filter.
package dialog

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// ShowFileOpen creates and shows a file dialog allowing the user to choose
// one or more files to open.
func ShowFileOpen(callback func(readers []fyne.URIReadCloser, err error), parent fyne.Window, allowMultiple bool) {
	NewFileOpen(callback, parent, allowMultiple).Show()
}

// NewFileOpen creates a file dialog allowing the user to choose one or
// more files. A cancelled dialog calls back with (nil, nil).
func NewFileOpen(callback func(readers []fyne.URIReadCloser, err error), parent fyne.Window, allowMultiple bool) dialog.Dialog {
	d := &fileDialog{
		parent:        parent,
		callback:      callback,
		allowMultiple: allowMultiple,
		selected:      make(map[string]fyne.URI),
		dir:           effectiveStartingDir(),
		anchor:        -1,
	}
	d.loadPrefs()
	return d
}

type fileDialog struct {
	callback func([]fyne.URIReadCloser, error)
	onClosed func()
	parent   fyne.Window
	dir      fyne.ListableURI

	selected map[string]fyne.URI
	anchor   int // Shift-select start

	sidebar    *sidebar
	fileList   *fileList
	breadcrumb *breadcrumb

	win         *widget.PopUp
	fileName    *widget.Label
	searchEntry *widget.Entry
	open        *widget.Button
	dismiss     *widget.Button
	dismissText string

	originalOnTypedKey func(*fyne.KeyEvent)

	allowMultiple   bool
	showHidden      bool
	sortOrder       FileSortOrder
	extensionFilter storage.FileFilter
}

func (f *fileDialog) Show() {
	if fileOpenOSOverride(f) {
		return
	}

	content := f.makeUI()
	f.win = widget.NewModalPopUp(content, f.parent.Canvas())
	f.win.Resize(fyne.NewSize(900, 600))
	f.win.Show()

	// Registered after Show so the modal's own key handling stays first.
	f.originalOnTypedKey = f.parent.Canvas().OnTypedKey()
	f.parent.Canvas().SetOnTypedKey(f.typedKeyHook)
	f.refreshDir(f.dir)
}

func (f *fileDialog) Hide() {
	if f.parent != nil && f.parent.Canvas() != nil && f.win != nil {
		f.parent.Canvas().SetOnTypedKey(f.originalOnTypedKey)
	}
	if f.win != nil {
		f.win.Hide()
	}
	if f.onClosed != nil {
		f.onClosed()
	}
}

func (f *fileDialog) Dismiss() {
	f.Hide()
}

func (f *fileDialog) MinSize() fyne.Size {
	if f.win != nil {
		return f.win.Content.MinSize()
	}
	return fyne.NewSize(600, 400)
}

func (f *fileDialog) Position() fyne.Position {
	if f.win != nil {
		return f.win.Content.Position()
	}
	return fyne.NewPos(0, 0)
}

func (f *fileDialog) SetOnClosed(closed func()) {
	f.onClosed = closed
}

func (f *fileDialog) SetDismissText(text string) {
	f.dismissText = text
	if f.dismiss != nil {
		f.dismiss.SetText(text)
	}
}

func (f *fileDialog) Refresh() {
	if f.win != nil {
		f.refreshDir(f.dir)
	}
}

func (f *fileDialog) Resize(size fyne.Size) {
	if f.win != nil {
		f.win.Resize(size)
	}
}

// SetFilter limits the listed files; folders are always shown.
func (f *fileDialog) SetFilter(filter storage.FileFilter) {
	f.extensionFilter = filter
	if f.win != nil {
		f.refreshDir(f.dir)
	}
}

// SetLocation changes the starting folder, or navigates when shown.
func (f *fileDialog) SetLocation(dir fyne.ListableURI) {
	if dir == nil {
		return
	}
	if f.win == nil {
		f.dir = dir
		return
	}
	if f.searchEntry != nil {
		f.searchEntry.SetText("")
	}
	f.sidebar.SyncSelection(dir)
	f.refreshDir(dir)
}

func (f *fileDialog) IsMultiSelect() bool {
	return f.allowMultiple
}

func (f *fileDialog) Select(id int) {
	uri, ok := f.fileList.uriAt(id)
	if !ok {
		return
	}
	f.selected = map[string]fyne.URI{uri.String(): uri}
	f.anchor = id
	f.selectionChanged()
}

func (f *fileDialog) ToggleSelection(id int) {
	if !f.allowMultiple {
		f.Select(id)
		return
	}
	uri, ok := f.fileList.uriAt(id)
	if !ok {
		return
	}
	if f.IsSelected(uri) {
		delete(f.selected, uri.String())
	} else {
		f.selected[uri.String()] = uri
	}
	f.anchor = id
	f.selectionChanged()
}

func (f *fileDialog) ExtendSelection(id int) {
	if !f.allowMultiple {
		f.Select(id)
		return
	}
	if _, ok := f.fileList.uriAt(id); !ok {
		return
	}
	if f.anchor == -1 {
		f.anchor = 0
	}

	start, end := f.anchor, id
	if start > end {
		start, end = end, start
	}
	f.selected = make(map[string]fyne.URI)
	for i := start; i <= end; i++ {
		if u, ok := f.fileList.uriAt(i); ok {
			f.selected[u.String()] = u
		}
	}
	f.selectionChanged()
}

func (f *fileDialog) IsSelected(uri fyne.URI) bool {
	_, ok := f.selected[uri.String()]
	return ok
}

func (f *fileDialog) OpenSelection() {
	if f.open != nil && !f.open.Disabled() {
		f.open.OnTapped()
	}
}

func (f *fileDialog) selectionChanged() {
	f.updateFooter()
	f.fileList.refresh()
}

// typedKeyHook opens the selection on Enter, unless a text input such as
// the search entry has focus.
func (f *fileDialog) typedKeyHook(ev *fyne.KeyEvent) {
	if f.originalOnTypedKey != nil {
		f.originalOnTypedKey(ev)
	}
	if f.win == nil || ev == nil {
		return
	}
	if ev.Name != fyne.KeyReturn && ev.Name != fyne.KeyEnter {
		return
	}

	focused := f.parent.Canvas().Focused()
	allowed := focused == nil
	if !allowed && f.fileList != nil && focused == f.fileList.list {
		allowed = true
	}
	if !allowed || len(f.selected) == 0 {
		return
	}
	f.OpenSelection()
}

func (f *fileDialog) makeUI() fyne.CanvasObject {
	f.sidebar = newSidebar(f)
	f.fileList = newFileList(f)
	f.fileList.sortOrder = f.sortOrder
	f.breadcrumb = newBreadcrumb(f)

	f.fileName = widget.NewLabel("")
	f.fileName.Truncation = fyne.TextTruncateEllipsis

	f.open = widget.NewButton(lang.L("Open"), f.handleOpenTapped)
	f.open.Importance = widget.HighImportance
	f.open.Disable()

	dismissText := f.dismissText
	if dismissText == "" {
		dismissText = lang.L("Cancel")
	}
	f.dismiss = widget.NewButton(dismissText, func() {
		f.Hide()
		if f.callback != nil {
			f.callback(nil, nil)
		}
	})
	footer := container.NewBorder(nil, nil, nil, container.NewHBox(f.dismiss, f.open), f.fileName)

	f.searchEntry = widget.NewEntry()
	f.searchEntry.SetPlaceHolder(lang.L("Search..."))
	f.searchEntry.OnChanged = f.fileList.setFilter

	sortSelect := widget.NewSelect(sortLabels(), func(s string) {
		f.sortOrder = sortOrderFor(s)
		fyne.CurrentApp().Preferences().SetInt(sortOrderKey, int(f.sortOrder))
		f.fileList.setSortOrder(f.sortOrder)
	})
	sortSelect.SetSelected(sortLabels()[f.sortOrder])

	hidden := widget.NewCheck(lang.L("Show Hidden Files"), func(show bool) {
		f.showHidden = show
		fyne.CurrentApp().Preferences().SetBool(showHiddenKey, show)
		f.refreshDir(f.dir)
	})
	hidden.Checked = f.showHidden

	title := lang.L("Open File")
	if f.allowMultiple {
		title = lang.L("Open Files")
	}
	titleLabel := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	search := container.NewGridWrap(fyne.NewSize(220, f.searchEntry.MinSize().Height), f.searchEntry)
	header := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, container.NewHBox(search, sortSelect, hidden)),
		widget.NewSeparator(),
	)

	split := container.NewHSplit(
		container.NewPadded(f.sidebar.list),
		container.NewBorder(container.NewPadded(f.breadcrumb.scroll), nil, nil, nil, f.fileList.list),
	)
	split.SetOffset(0.25)

	f.updateFooter()
	return container.NewBorder(header, footer, nil, nil, split)
}

func sortLabels() []string {
	return []string{
		lang.L("Name (A-Z)"),
		lang.L("Name (Z-A)"),
		lang.L("Size (smallest)"),
		lang.L("Size (largest)"),
	}
}

func sortOrderFor(label string) FileSortOrder {
	for i, l := range sortLabels() {
		if l == label {
			return FileSortOrder(i)
		}
	}
	return SortNameAsc
}

func (f *fileDialog) refreshDir(dir fyne.ListableURI) {
	if dir == nil {
		return
	}
	f.dir = dir

	if f.breadcrumb != nil {
		f.breadcrumb.update(dir)
	}

	files, err := dir.List()
	if err != nil {
		fyne.LogError("could not list "+dir.String(), err)
		return
	}

	var visible []fyne.URI
	for _, file := range files {
		if !f.showHidden && isHidden(file) {
			continue
		}
		if isDir, _ := storage.CanList(file); isDir {
			visible = append(visible, file)
			continue
		}
		if f.extensionFilter == nil || f.extensionFilter.Matches(file) {
			visible = append(visible, file)
		}
	}

	if f.fileList != nil {
		f.fileList.setFiles(visible)
	}
	f.selected = make(map[string]fyne.URI)
	f.anchor = -1
	f.updateFooter()
}

func (f *fileDialog) updateFooter() {
	if f.open == nil || f.fileName == nil {
		return
	}

	var names []string
	hasDir := false
	for _, u := range f.selected {
		names = append(names, u.Name())
		if isDir, _ := storage.CanList(u); isDir {
			hasDir = true
		}
	}
	f.fileName.SetText(strings.Join(names, ", "))

	// A lone folder is opened for navigation; folders mixed into a multi
	// selection cannot be returned.
	if len(f.selected) == 0 || (len(f.selected) > 1 && hasDir) {
		f.open.Disable()
		return
	}
	f.open.Enable()
}

func (f *fileDialog) handleOpenTapped() {
	if len(f.selected) == 1 {
		for _, u := range f.selected {
			if l, err := storage.ListerForURI(u); err == nil {
				f.SetLocation(l)
				return
			}
		}
	}

	readers := make([]fyne.URIReadCloser, 0, len(f.selected))
	// Keep the list order rather than map order.
	for _, e := range f.fileList.filtered {
		if !f.IsSelected(e.uri) {
			continue
		}
		r, err := storage.Reader(e.uri)
		if err != nil {
			fyne.LogError("could not open "+e.uri.String(), err)
			continue
		}
		readers = append(readers, r)
	}

	f.Hide()
	if f.callback != nil {
		f.callback(readers, nil)
	}
}

func (f *fileDialog) loadPrefs() {
	prefs := fyne.CurrentApp().Preferences()
	f.showHidden = prefs.Bool(showHiddenKey)

	order := FileSortOrder(prefs.Int(sortOrderKey))
	if order < SortNameAsc || order > SortSizeDesc {
		order = SortNameAsc
	}
	f.sortOrder = order
}

func isHidden(file fyne.URI) bool {
	if file.Scheme() != "file" {
		return false
	}
	name := filepath.Base(file.Path())
	return name == "" || name[0] == '.'
}

func effectiveStartingDir() fyne.ListableURI {
	if dir, err := os.UserHomeDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			return lister
		}
	}
	lister, _ := storage.ListerForURI(storage.NewFileURI("/"))
	return lister
}

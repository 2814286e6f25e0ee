package dialog

import (
	"fyne.io/fyne/v2"
)

const (
	fileInlineIconSize = 24
	showHiddenKey      = "xdropzone:pickerShowHidden"
	sortOrderKey       = "xdropzone:pickerSortOrder"
)

// FileSortOrder is the ordering of the picker list. Folders always come
// first.
type FileSortOrder int

const (
	SortNameAsc FileSortOrder = iota
	SortNameDesc
	SortSizeAsc
	SortSizeDesc
)

type favoriteItem struct {
	locName string
	locIcon fyne.Resource
	loc     fyne.ListableURI
}

// FilePicker is what the list, sidebar and breadcrumb drive.
type FilePicker interface {
	SetLocation(dir fyne.ListableURI)
	Select(id int)
	ToggleSelection(id int)
	ExtendSelection(id int)
	IsSelected(uri fyne.URI) bool
	OpenSelection()
	IsMultiSelect() bool
}

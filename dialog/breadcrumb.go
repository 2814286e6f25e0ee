package dialog

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// maxBreadcrumbDepth guards against storage backends whose Parent never
// reaches a root.
const maxBreadcrumbDepth = 64

type breadcrumb struct {
	picker  FilePicker
	content *fyne.Container
	scroll  *container.Scroll
}

func newBreadcrumb(p FilePicker) *breadcrumb {
	b := &breadcrumb{
		picker:  p,
		content: container.NewHBox(),
	}
	b.scroll = container.NewHScroll(container.NewPadded(b.content))
	return b
}

// pathTo lists dir and its ancestors, root first.
func pathTo(dir fyne.ListableURI) []fyne.ListableURI {
	var chain []fyne.ListableURI
	for current := dir; current != nil && len(chain) < maxBreadcrumbDepth; {
		chain = append(chain, current)

		parent, err := storage.Parent(current)
		if err != nil || parent == nil || parent.String() == current.String() {
			break
		}
		current, _ = storage.ListerForURI(parent)
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func (b *breadcrumb) update(dir fyne.ListableURI) {
	if b == nil || b.content == nil {
		return
	}

	b.content.Objects = nil
	for _, loc := range pathTo(dir) {
		loc := loc
		b.content.Add(widget.NewButton(loc.Name(), func() {
			b.picker.SetLocation(loc)
		}))
	}
	b.content.Refresh()
}

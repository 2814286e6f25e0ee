//go:build android || ios

package dialog

import (
	"fyne.io/fyne/v2"
	fynedialog "fyne.io/fyne/v2/dialog"
)

// fileOpenOSOverride hands over to the stock Fyne picker, which uses the
// platform document picker and returns a single file.
func fileOpenOSOverride(f *fileDialog) bool {
	d := fynedialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		var readers []fyne.URIReadCloser
		if reader != nil {
			readers = []fyne.URIReadCloser{reader}
		}
		fyne.Do(func() {
			if f.callback != nil {
				f.callback(readers, err)
			}
			if f.onClosed != nil {
				f.onClosed()
			}
		})
	}, f.parent)
	if f.extensionFilter != nil {
		d.SetFilter(f.extensionFilter)
	}
	d.Show()
	return true
}

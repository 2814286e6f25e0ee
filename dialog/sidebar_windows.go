//go:build windows

package dialog

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/sys/windows"
)

func logicalDrives() []string {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		fyne.LogError("Error calling GetLogicalDrives", err)
		return nil
	}

	var drives []string
	for i := 0; i < 26; i++ {
		if mask&(1<<i) != 0 {
			drives = append(drives, string(rune('A'+i))+":")
		}
	}
	return drives
}

func getPlaces() []favoriteItem {
	var places []favoriteItem
	for _, drive := range logicalDrives() {
		root, err := storage.ListerForURI(storage.NewFileURI(drive + string(os.PathSeparator)))
		if err != nil {
			continue
		}
		places = append(places, favoriteItem{
			locName: drive,
			locIcon: theme.StorageIcon(),
			loc:     root,
		})
	}
	return places
}

package dialog

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/FyshOS/fancyfs"
)

type sidebar struct {
	picker FilePicker
	list   *widget.List
	items  []favoriteItem

	// syncing suppresses OnSelected while the highlight follows navigation.
	syncing bool
}

func newSidebar(p FilePicker) *sidebar {
	s := &sidebar{picker: p}
	s.items = loadFavorites()

	s.list = widget.NewList(
		func() int { return len(s.items) },
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.FolderIcon()),
				widget.NewLabel(lang.L("Template")),
			)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id >= len(s.items) {
				return
			}
			item := s.items[id]
			box := o.(*fyne.Container)
			box.Objects[0].(*widget.Icon).SetResource(item.locIcon)
			box.Objects[1].(*widget.Label).SetText(lang.L(item.locName))
		},
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		if s.syncing || id >= len(s.items) {
			return
		}
		s.picker.SetLocation(s.items[id].loc)
	}
	return s
}

// SyncSelection highlights the favourite matching dir, or clears the
// highlight when dir is not a favourite.
func (s *sidebar) SyncSelection(dir fyne.ListableURI) {
	if s == nil || s.list == nil || dir == nil {
		return
	}
	s.syncing = true
	defer func() { s.syncing = false }()

	for i, item := range s.items {
		if item.loc != nil && item.loc.String() == dir.String() {
			s.list.Select(i)
			return
		}
	}
	s.list.UnselectAll()
}

func loadFavorites() []favoriteItem {
	var items []favoriteItem

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return placesOrEmpty()
	}
	homeURI := storage.NewFileURI(homeDir)
	if l, err := storage.ListerForURI(homeURI); err == nil {
		items = append(items, favoriteItem{
			locName: "Home",
			locIcon: folderIcon(homeURI, theme.HomeIcon()),
			loc:     l,
		})
	}

	names := []string{"Desktop", "Documents", "Downloads", "Pictures"}
	if runtime.GOOS == "darwin" {
		names = append(names, "Movies")
	} else {
		names = append(names, "Videos")
	}
	for _, name := range names {
		uri, err := favoriteLocation(homeURI, name)
		if err != nil {
			continue
		}
		l, err := storage.ListerForURI(uri)
		if err != nil {
			continue
		}
		items = append(items, favoriteItem{
			locName: name,
			locIcon: folderIcon(uri, theme.FolderIcon()),
			loc:     l,
		})
	}

	return append(items, placesOrEmpty()...)
}

func placesOrEmpty() []favoriteItem {
	places := getPlaces()
	if places == nil {
		return []favoriteItem{}
	}
	return places
}

// folderIcon prefers the folder art fancyfs finds (.directory files,
// macOS folder icons) over the stock icon.
func folderIcon(u fyne.URI, fallback fyne.Resource) fyne.Resource {
	details, err := fancyfs.DetailsForFolder(u)
	if err != nil || details == nil || details.BackgroundResource == nil {
		return fallback
	}
	return details.BackgroundResource
}

// favoriteLocation resolves a well known folder. On XDG desktops the user
// may have renamed or moved it, so xdg-user-dir is asked first.
func favoriteLocation(homeURI fyne.URI, name string) (fyne.URI, error) {
	switch runtime.GOOS {
	case "linux", "openbsd", "freebsd", "netbsd":
	default:
		return storage.Child(homeURI, name)
	}

	const cmdName = "xdg-user-dir"
	if _, err := exec.LookPath(cmdName); err != nil {
		return storage.Child(homeURI, name)
	}

	out, err := exec.Command(cmdName, strings.ToUpper(name)).Output()
	if err != nil {
		return storage.Child(homeURI, name)
	}

	loc := storage.NewFileURI(filepath.Clean(strings.TrimSpace(string(out))))
	// xdg-user-dir answers $HOME for folders it does not know.
	if loc.String() == homeURI.String() {
		return storage.Child(homeURI, name)
	}
	return loc, nil
}

package dialog

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
)

type mockPicker struct {
	selected map[string]bool
}

func (m *mockPicker) SetLocation(fyne.ListableURI) {}
func (m *mockPicker) Select(int)                   {}
func (m *mockPicker) ToggleSelection(int)          {}
func (m *mockPicker) ExtendSelection(int)          {}
func (m *mockPicker) IsSelected(uri fyne.URI) bool { return m.selected[uri.String()] }
func (m *mockPicker) OpenSelection()               {}
func (m *mockPicker) IsMultiSelect() bool          { return true }

func names(fl *fileList) []string {
	out := make([]string, len(fl.filtered))
	for i, e := range fl.filtered {
		out[i] = e.uri.Name()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFileList_SortAndFilter(t *testing.T) {
	test.NewApp()
	fl := newFileList(&mockPicker{})

	fl.setFiles([]fyne.URI{
		storage.NewFileURI("/nonexistent/apple.png"),
		storage.NewFileURI("/nonexistent/pineapple.png"),
		storage.NewFileURI("/nonexistent/banana.png"),
	})

	fl.setSortOrder(SortNameAsc)
	if got := names(fl); !equal(got, []string{"apple.png", "banana.png", "pineapple.png"}) {
		t.Fatalf("unexpected ascending order %v", got)
	}

	fl.setSortOrder(SortNameDesc)
	if got := names(fl); !equal(got, []string{"pineapple.png", "banana.png", "apple.png"}) {
		t.Fatalf("unexpected descending order %v", got)
	}

	// Prefix matches lead while searching, whatever the sort order.
	fl.setFilter("APPLE")
	if got := names(fl); !equal(got, []string{"apple.png", "pineapple.png"}) {
		t.Fatalf("unexpected filtered order %v", got)
	}

	fl.setFilter("")
	if len(fl.filtered) != 3 {
		t.Fatalf("expected filter reset to show 3 files, got %d", len(fl.filtered))
	}
}

func TestFileList_SizeSortAndFoldersFirst(t *testing.T) {
	test.NewApp()
	dir := t.TempDir()
	write := func(name string, size int) fyne.URI {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, make([]byte, size), 0o600); err != nil {
			t.Fatal(err)
		}
		return storage.NewFileURI(p)
	}
	big := write("big.pdf", 2048)
	small := write("small.pdf", 10)
	sub := filepath.Join(dir, "zfolder")
	if err := os.Mkdir(sub, 0o700); err != nil {
		t.Fatal(err)
	}

	fl := newFileList(&mockPicker{})
	fl.setFiles([]fyne.URI{big, storage.NewFileURI(sub), small})

	fl.setSortOrder(SortSizeAsc)
	if got := names(fl); !equal(got, []string{"zfolder", "small.pdf", "big.pdf"}) {
		t.Fatalf("unexpected size ascending order %v", got)
	}

	fl.setSortOrder(SortSizeDesc)
	if got := names(fl); !equal(got, []string{"zfolder", "big.pdf", "small.pdf"}) {
		t.Fatalf("unexpected size descending order %v", got)
	}

	if fl.filtered[1].size != 2048 {
		t.Fatalf("expected cached size 2048, got %d", fl.filtered[1].size)
	}
	if fl.filtered[0].size != -1 {
		t.Fatalf("expected folders to have unknown size, got %d", fl.filtered[0].size)
	}
}

func TestFileList_URIAtBounds(t *testing.T) {
	test.NewApp()
	fl := newFileList(&mockPicker{})
	fl.setFiles([]fyne.URI{storage.NewFileURI("/nonexistent/a.pdf")})

	if _, ok := fl.uriAt(-1); ok {
		t.Fatal("expected negative id to be rejected")
	}
	if _, ok := fl.uriAt(1); ok {
		t.Fatal("expected out of range id to be rejected")
	}
	if u, ok := fl.uriAt(0); !ok || u.Name() != "a.pdf" {
		t.Fatalf("expected a.pdf at 0, got %v", u)
	}
}

func TestFileItem_ShowsSize(t *testing.T) {
	test.NewApp()
	dir := t.TempDir()
	p := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(p, make([]byte, 1536), 0o600); err != nil {
		t.Fatal(err)
	}

	item := newFileItem(&mockPicker{})
	item.setEntry(newEntry(storage.NewFileURI(p)))
	if got := item.size.Text; got != "1.5 KB" {
		t.Fatalf("expected size label 1.5 KB, got %q", got)
	}
	if got := item.label.Text; got != "doc.pdf" {
		t.Fatalf("expected name label doc.pdf, got %q", got)
	}
}

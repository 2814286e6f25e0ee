package dropzone

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"github.com/alexballas/xdropzone/upload"
)

func tempFile(t *testing.T, name string, size int) fyne.URI {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, make([]byte, size), 0o600); err != nil {
		t.Fatal(err)
	}
	return storage.NewFileURI(p)
}

func TestDropZone_Hint(t *testing.T) {
	test.NewApp()
	z := NewDropZone(upload.NewController(upload.DefaultSelectionConfig()))

	if got, want := z.hint.Text, "Accepted: .pdf,.png,.jpg,.jpeg (max 10 MB)"; got != want {
		t.Fatalf("expected hint %q, got %q", want, got)
	}

	if got := hintText(upload.SelectionConfig{}); got != "No file types accepted" {
		t.Fatalf("expected empty hint, got %q", got)
	}
}

func TestDropZone_HoverHighlights(t *testing.T) {
	test.NewApp()
	z := NewDropZone(upload.NewController(upload.DefaultSelectionConfig()))
	w := test.NewWindow(z)
	defer w.Close()

	z.MouseIn(nil)
	if !z.Adapter().IsDragOver() {
		t.Fatal("expected hover to enter drag over")
	}
	if z.bg.StrokeColor != theme.Color(theme.ColorNamePrimary) {
		t.Fatal("expected highlight colour while hovering")
	}

	z.MouseOut()
	if z.Adapter().IsDragOver() {
		t.Fatal("expected leaving to return to idle")
	}
}

func TestDropZone_Disabled(t *testing.T) {
	test.NewApp()
	cfg := upload.DefaultSelectionConfig()
	cfg.Disabled = true
	c := upload.NewController(cfg)
	z := NewDropZone(c)

	if !z.browse.Disabled() {
		t.Fatal("expected browse to be disabled")
	}
	z.MouseIn(nil)
	if z.Adapter().IsDragOver() {
		t.Fatal("expected disabled zone to ignore hover")
	}

	cfg.Disabled = false
	c.Configure(cfg)
	z.Refresh()
	if z.browse.Disabled() {
		t.Fatal("expected browse to be enabled after reconfiguring")
	}
}

func TestDropZone_DropInsideZone(t *testing.T) {
	a := test.NewApp()
	c := upload.NewController(upload.DefaultSelectionConfig())
	z := NewDropZone(c)
	w := a.NewWindow("drop")
	w.SetContent(z)
	w.Resize(fyne.NewSize(400, 300))
	z.Attach(w)

	origin := a.Driver().AbsolutePositionForObject(z)
	outside := origin.Add(fyne.NewPos(z.Size().Width+10, z.Size().Height+10))
	z.dropped(outside, []fyne.URI{tempFile(t, "miss.pdf", 10)})
	if len(c.Files()) != 0 {
		t.Fatal("expected drops outside the zone to be ignored")
	}

	inside := origin.Add(fyne.NewPos(z.Size().Width/2, z.Size().Height/2))
	z.dropped(inside, []fyne.URI{tempFile(t, "hit.pdf", 10)})
	files := c.Files()
	if len(files) != 1 || files[0].Name() != "hit.pdf" {
		t.Fatalf("expected hit.pdf to be submitted, got %v", files)
	}
}

func TestDropZone_BrowseUsesControllerRules(t *testing.T) {
	a := test.NewApp()
	cfg := upload.DefaultSelectionConfig()
	cfg.AllowMultiple = false
	c := upload.NewController(cfg)
	z := NewDropZone(c)
	w := a.NewWindow("browse")
	w.SetContent(z)
	z.Attach(w)

	picked := tempFile(t, "scan.png", 20)
	var gotMultiple bool
	var gotFilter storage.FileFilter
	z.openPicker = func(_ fyne.Window, multiple bool, filter storage.FileFilter, done func([]fyne.URI, error)) {
		gotMultiple = multiple
		gotFilter = filter
		done([]fyne.URI{picked}, nil)
	}

	test.Tap(z.browse)

	if gotMultiple {
		t.Fatal("expected single selection picker")
	}
	if gotFilter == nil || !gotFilter.Matches(picked) {
		t.Fatal("expected the extension filter to accept png")
	}
	if files := c.Files(); len(files) != 1 || files[0].Name() != "scan.png" {
		t.Fatalf("expected scan.png to be picked, got %v", files)
	}
}

func TestFileList_FollowsController(t *testing.T) {
	test.NewApp()
	c := upload.NewController(upload.DefaultSelectionConfig())
	l := NewFileList(c)
	defer l.Close()
	w := test.NewWindow(l)
	defer w.Close()

	if len(l.Files()) != 0 || l.empty.Hidden {
		t.Fatal("expected empty list")
	}

	c.Submit([]upload.File{&fakeFile{name: "a.pdf", size: 10}, &fakeFile{name: "b.exe", size: 10}})
	fyne.DoAndWait(func() {})
	if got := len(l.Files()); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	if !l.empty.Hidden {
		t.Fatal("expected empty label to be hidden")
	}

	c.ClearFiles()
	fyne.DoAndWait(func() {})
	if got := len(l.Files()); got != 0 {
		t.Fatalf("expected rows to clear, got %d", got)
	}
}

func TestFileList_RemoveHook(t *testing.T) {
	test.NewApp()
	c := upload.NewController(upload.DefaultSelectionConfig())
	c.Submit([]upload.File{&fakeFile{name: "a.pdf", size: 10}})
	l := NewFileList(c)
	defer l.Close()

	var asked *upload.CandidateFile
	l.OnRemove = func(cf *upload.CandidateFile) { asked = cf }

	row := newFileRow()
	candidate := l.Files()[0]
	row.bind(candidate, nil, func() { l.OnRemove(candidate) })
	test.Tap(row.remove)

	if asked != candidate {
		t.Fatal("expected the remove hook to receive the row's candidate")
	}
	if len(c.Files()) != 1 {
		t.Fatal("expected the override to keep the file")
	}
}

func TestFileRow_ShowsError(t *testing.T) {
	test.NewApp()
	row := newFileRow()
	row.bind(&upload.CandidateFile{File: &fakeFile{name: "big.pdf", size: 2048}, Size: 2048, Extension: "PDF", Error: "File size exceeds 1 KB limit"}, nil, nil)

	if row.size.Text != "2 KB" {
		t.Fatalf("expected size 2 KB, got %q", row.size.Text)
	}
	if row.err.Text != "File size exceeds 1 KB limit" {
		t.Fatalf("unexpected error text %q", row.err.Text)
	}
}

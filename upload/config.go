package upload

import (
	"slices"
	"strings"

	"fyne.io/fyne/v2/storage"
)

// DefaultMaxFileSize is the size limit used when no config says otherwise.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// SelectionConfig holds the acceptance rules of a Controller. It is a plain
// value; change it by passing a new one to Configure.
type SelectionConfig struct {
	// AcceptedExtensions are upper-case extensions without the dot,
	// e.g. "PDF".
	AcceptedExtensions []string
	// MaxFileSizeBytes rejects bigger files. Zero or less disables the
	// size check.
	MaxFileSizeBytes int64
	// AllowMultiple appends submissions to the batch instead of replacing
	// it with a single file.
	AllowMultiple bool
	// Disabled makes the drop and browse inputs ignore the user.
	Disabled bool
}

// DefaultSelectionConfig accepts common documents and images up to 10 MiB.
func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		AcceptedExtensions: []string{"PDF", "PNG", "JPG", "JPEG"},
		MaxFileSizeBytes:   DefaultMaxFileSize,
		AllowMultiple:      true,
	}
}

// Normalized returns a copy with extensions upper-cased, stripped of a
// leading dot and de-duplicated. Order is kept.
func (c SelectionConfig) Normalized() SelectionConfig {
	out := c
	out.AcceptedExtensions = make([]string, 0, len(c.AcceptedExtensions))
	for _, ext := range c.AcceptedExtensions {
		ext = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" || slices.Contains(out.AcceptedExtensions, ext) {
			continue
		}
		out.AcceptedExtensions = append(out.AcceptedExtensions, ext)
	}
	return out
}

// Accepts reports whether the upper-case extension is allowed.
func (c SelectionConfig) Accepts(ext string) bool {
	return slices.Contains(c.AcceptedExtensions, ext)
}

// AcceptString is the picker filter form of AcceptedExtensions,
// e.g. ".pdf,.png".
func (c SelectionConfig) AcceptString() string {
	if len(c.AcceptedExtensions) == 0 {
		return ""
	}
	parts := make([]string, len(c.AcceptedExtensions))
	for i, ext := range c.AcceptedExtensions {
		parts[i] = "." + strings.ToLower(ext)
	}
	return strings.Join(parts, ",")
}

// ExtensionFilter returns the accepted extensions as a picker filter, or
// nil when every extension would be refused anyway.
func (c SelectionConfig) ExtensionFilter() storage.FileFilter {
	accept := c.AcceptString()
	if accept == "" {
		return nil
	}
	return storage.NewExtensionFileFilter(strings.Split(accept, ","))
}

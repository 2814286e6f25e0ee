package upload

import (
	"fmt"
	"strings"
)

// CandidateFile is a File together with its validation outcome.
type CandidateFile struct {
	File      File
	Size      int64
	Extension string
	// Error is empty for a file that passed validation.
	Error string
}

// Valid reports whether the candidate carries no validation error.
func (c *CandidateFile) Valid() bool {
	return c.Error == ""
}

// Name is a shortcut for c.File.Name().
func (c *CandidateFile) Name() string {
	return c.File.Name()
}

// extensionOf returns the upper-cased text after the last dot. A name with
// no dot is its own extension.
func extensionOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return strings.ToUpper(name[i+1:])
	}
	return strings.ToUpper(name)
}

// Validate builds the candidate for f. The extension check runs last and
// replaces a size error, so an unsupported type is always the reported
// reason.
func (c SelectionConfig) Validate(f File) *CandidateFile {
	candidate := &CandidateFile{
		File:      f,
		Size:      f.Size(),
		Extension: extensionOf(f.Name()),
	}

	if c.MaxFileSizeBytes > 0 && candidate.Size > c.MaxFileSizeBytes {
		candidate.Error = fmt.Sprintf("File size exceeds %s limit", FormatFileSize(c.MaxFileSizeBytes))
	}

	if !c.Accepts(candidate.Extension) {
		candidate.Error = fmt.Sprintf("File type .%s not supported", candidate.Extension)
	}

	return candidate
}

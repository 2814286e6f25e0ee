package upload

// EventKind identifies what a Controller notification is about.
type EventKind int

const (
	// SelectionChanged carries the whole batch after a submit.
	SelectionChanged EventKind = iota
	// FileRemoved carries the candidate that was taken out of the batch.
	FileRemoved
	// FilesCleared fires on every ClearFiles call, even on an empty batch.
	FilesCleared
	// UploadRequested carries the whole batch, errored entries included.
	UploadRequested
)

func (k EventKind) String() string {
	switch k {
	case SelectionChanged:
		return "selection_changed"
	case FileRemoved:
		return "file_removed"
	case FilesCleared:
		return "files_cleared"
	case UploadRequested:
		return "upload_requested"
	default:
		return "unknown"
	}
}

// Event is delivered to Controller subscribers.
type Event struct {
	Kind EventKind
	// Files is a snapshot of the batch for SelectionChanged and
	// UploadRequested.
	Files []*CandidateFile
	// File is set for FileRemoved.
	File *CandidateFile
}

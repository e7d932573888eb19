package scaffold

import "fmt"

// Phase identifies where in the generation run an error occurred. A run
// moves strictly forward: validating the target, creating directories,
// writing files, creating the venv, complete.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseValidatingTarget
	PhaseCreatingDirectories
	PhaseWritingFiles
	PhaseCreatingVenv
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseValidatingTarget:
		return "validating target"
	case PhaseCreatingDirectories:
		return "creating directories"
	case PhaseWritingFiles:
		return "writing files"
	case PhaseCreatingVenv:
		return "creating virtual environment"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// DirectoryExistsError means the target root already exists. Nothing was
// written; pyhatch never merges into an existing directory.
type DirectoryExistsError struct {
	Path string
}

func (e *DirectoryExistsError) Error() string {
	return fmt.Sprintf("directory already exists: %s", e.Path)
}

// FilesystemError wraps an OS-level failure during generation. The run
// aborts at the failing phase; entries created before the failure are left
// in place.
type FilesystemError struct {
	Phase Phase
	Err   error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error while %s: %v", e.Phase, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

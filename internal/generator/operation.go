package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and
// executed.
//
// Validate checks if the operation would succeed without executing it.
// force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after
// Validate succeeds.
//
// Description returns a human-readable description for output
// (e.g., "Create demo/setup.cfg (312 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// MkdirOp creates a directory (and any missing parents).
//
// Validation rejects the operation when the path already exists as a
// regular file. An existing directory is not a conflict; MkdirAll is
// idempotent.
type MkdirOp struct {
	Path string
	Mode fs.FileMode // Directory permissions; 0755 when zero
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	if op.Path == "" {
		return fmt.Errorf("mkdir: empty path")
	}
	if info, err := os.Stat(op.Path); err == nil && !info.IsDir() {
		return fmt.Errorf("cannot create directory %s: path exists as a file", op.Path)
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	mode := op.Mode
	if mode == 0 {
		mode = 0755
	}
	return os.MkdirAll(op.Path, mode)
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create %s%c", op.Path, filepath.Separator)
}

// WriteFileOp creates a new file with content.
//
// Validation behavior:
//   - Checks for file conflicts unless force=true
//   - Allows empty content (zero bytes) but rejects nil content
//
// Execution behavior:
//   - Creates parent directories if needed
//   - Writes the file with the specified Mode
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

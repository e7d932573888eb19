package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pyhatch/pyhatch/internal/execx"
)

// VenvDirName is the virtual environment directory created inside the
// project root.
const VenvDirName = "venv"

// VenvCreator creates a virtual environment inside a project root and
// returns its path. Implementations shell out to the host Python; tests
// substitute a fake.
type VenvCreator interface {
	Create(ctx context.Context, projectRoot string) (string, error)
}

// PythonVenv creates virtual environments by invoking the host Python's
// venv module, preferring python3 and falling back to python.
type PythonVenv struct {
	executor *execx.Executor
	spinner  bool
}

// NewPythonVenv creates a venv runner. spinner controls whether a progress
// spinner is shown while the interpreter works.
func NewPythonVenv(spinner bool) *PythonVenv {
	return &PythonVenv{
		executor: execx.NewExecutor(nil),
		spinner:  spinner,
	}
}

func (p *PythonVenv) Create(ctx context.Context, projectRoot string) (string, error) {
	interpreter, err := findInterpreter()
	if err != nil {
		return "", err
	}

	venvPath := filepath.Join(projectRoot, VenvDirName)

	if p.spinner {
		err = p.executor.RunWithSpinner(ctx, "Creating virtual environment", interpreter, "-m", "venv", venvPath)
	} else {
		err = p.executor.Run(ctx, interpreter, "-m", "venv", venvPath)
	}
	if err != nil {
		return "", fmt.Errorf("creating virtual environment: %w", err)
	}

	return venvPath, nil
}

// findInterpreter locates a Python interpreter on PATH.
func findInterpreter() (string, error) {
	for _, candidate := range []string{"python3", "python"} {
		if execx.LookPath(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no Python interpreter found on PATH (tried python3, python)")
}

package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestProject represents a temporary directory a pyhatch project is
// generated into during integration tests.
type TestProject struct {
	Root string
	Name string
	t    *testing.T
}

// NewTestProject creates a temporary base directory for one generation run
func NewTestProject(t *testing.T, name string) *TestProject {
	t.Helper()

	return &TestProject{
		Root: t.TempDir(),
		Name: name,
		t:    t,
	}
}

// RunPyhatch executes a pyhatch command with the project's base directory
// as working directory. The binary is built by the test script and sits
// two levels above test/integration.
func (p *TestProject) RunPyhatch(args ...string) error {
	p.t.Helper()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	binPath := filepath.Join(cwd, "..", "..", "pyhatch")
	cmd := exec.Command(binPath, args...)
	cmd.Dir = p.Root

	output, err := cmd.CombinedOutput()
	if err != nil {
		p.t.Logf("pyhatch command failed: %s\nOutput: %s", err, string(output))
		return err
	}

	p.t.Logf("pyhatch output: %s", string(output))
	return nil
}

// FileExists checks whether a path exists inside the generated project
func (p *TestProject) FileExists(rel string) bool {
	_, err := os.Stat(filepath.Join(p.Root, p.Name, rel))
	return err == nil
}

// ReadFile reads a file from the generated project
func (p *TestProject) ReadFile(rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(p.Root, p.Name, rel))
	return string(data), err
}

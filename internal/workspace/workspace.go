// Package workspace manages the ephemeral per-request directories that hold
// source files and compiled artifacts.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is a single per-request directory.
type Workspace struct {
	Dir string
}

// Path returns the path of a file inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Manager creates and destroys workspaces under a single temp root. The root
// is shared by all requests; the random suffix in each workspace name is the
// only discipline keeping concurrent requests apart.
type Manager struct {
	root string
	log  *slog.Logger
}

// NewManager returns a manager rooted at root, or the platform temp dir when
// root is empty.
func NewManager(root string, logger *slog.Logger) *Manager {
	if root == "" {
		root = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{root: root, log: logger}
}

// Root returns the temp root all workspaces are created under.
func (m *Manager) Root() string { return m.root }

// Acquire creates a fresh directory named {tag}_{uuid}.
func (m *Manager) Acquire(tag string) (*Workspace, error) {
	dir := filepath.Join(m.root, tag+"_"+uuid.New().String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	return &Workspace{Dir: dir}, nil
}

// Release removes the workspace tree and everything in it. Cleanup is
// best-effort: failures are logged and never surfaced to the request.
func (m *Manager) Release(ws *Workspace) {
	if ws == nil {
		return
	}
	if err := os.RemoveAll(ws.Dir); err != nil {
		m.log.Warn("workspace cleanup failed", "dir", ws.Dir, "error", err)
	}
}

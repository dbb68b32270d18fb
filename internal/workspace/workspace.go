package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docxclean/internal/logfields"
)

const dirPrefix = "docxclean"

// Manager handles the lifecycle of one run's working directory.
type Manager struct {
	baseDir  string
	tempDir  string
	retained bool // If true, Cleanup leaves the directory on disk
}

// NewManager creates a workspace manager with an ephemeral, uniquely named directory.
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir}
}

// NewRetainedManager creates a workspace manager whose directory survives Cleanup.
func NewRetainedManager(baseDir string) *Manager {
	m := NewManager(baseDir)
	m.retained = true
	return m
}

// Create creates the workspace directory.
func (m *Manager) Create() error {
	if m.tempDir != "" {
		return fmt.Errorf("workspace already created: %s", m.tempDir)
	}

	timestamp := time.Now().Format("20060102-150405")
	name := fmt.Sprintf("%s-%s-%s", dirPrefix, timestamp, uuid.NewString()[:8])
	tempDir := filepath.Join(m.baseDir, name)

	if err := os.MkdirAll(m.baseDir, 0o750); err != nil {
		return fmt.Errorf("failed to create workspace base directory: %w", err)
	}
	// Mkdir (not MkdirAll) so a name collision surfaces instead of sharing a tree.
	if err := os.Mkdir(tempDir, 0o750); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	m.tempDir = tempDir
	slog.Debug("Created workspace", logfields.Path(tempDir))
	return nil
}

// GetPath returns the path to the workspace directory.
func (m *Manager) GetPath() string {
	return m.tempDir
}

// Retained reports whether Cleanup keeps the directory.
func (m *Manager) Retained() bool {
	return m.retained
}

// Cleanup removes the workspace directory. It is safe to call more than once
// and before Create.
func (m *Manager) Cleanup() error {
	if m.tempDir == "" {
		return nil
	}

	if m.retained {
		slog.Info("Keeping workspace", logfields.Path(m.tempDir))
		return nil
	}

	if err := os.RemoveAll(m.tempDir); err != nil {
		return fmt.Errorf("failed to cleanup workspace: %w", err)
	}

	slog.Debug("Cleaned up workspace", logfields.Path(m.tempDir))
	m.tempDir = ""
	return nil
}

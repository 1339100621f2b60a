package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"sportlog/internal/config"
	"sportlog/internal/ports"
)

// Ensure Launcher implements FileLauncher
var _ ports.FileLauncher = (*Launcher)(nil)

// Launcher opens heart-rate monitor files with the desktop's default application
type Launcher struct {
	baseDir string
	goos    string
}

// NewLauncher creates a launcher resolving relative HRM paths against baseDir,
// usually the directory of the logbook
func NewLauncher(baseDir string) *Launcher {
	return &Launcher{
		baseDir: baseDir,
		goos:    runtime.GOOS,
	}
}

// Resolve returns the absolute path of an existing HRM file
func (l *Launcher) Resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("exercise has no HRM file")
	}

	path, err := config.ExpandHome(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.baseDir, path)
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("HRM file not available: %w", err)
	}
	return path, nil
}

// Command returns the platform command that opens path
func (l *Launcher) Command(path string) (*exec.Cmd, error) {
	switch l.goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", l.goos)
	}
}

// Open resolves path and starts the viewer without waiting for it
func (l *Launcher) Open(path string) error {
	resolved, err := l.Resolve(path)
	if err != nil {
		return err
	}

	cmd, err := l.Command(resolved)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", resolved, err)
	}
	// reap the child once the viewer exits
	go cmd.Wait()
	return nil
}

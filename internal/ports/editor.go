package ports

import "os/exec"

// EditorOpener defines the interface for editing text in an external editor
type EditorOpener interface {
	// OpenFile opens the specified file in the user's preferred editor and waits
	// It uses $EDITOR environment variable, falling back to common editors
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a file in the editor
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)

	// WriteScratch stores text in a temporary file and returns its path
	WriteScratch(text string) (string, error)

	// ReadScratch returns the edited text and removes the scratch file
	ReadScratch(path string) (string, error)
}

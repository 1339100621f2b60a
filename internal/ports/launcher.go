package ports

// FileLauncher opens a file with the desktop's default application
type FileLauncher interface {
	Open(path string) error
}

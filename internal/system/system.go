package system

import "os"

// FileSystem defines the filesystem operations the wizard needs, so tests
// can swap in a fake.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	IsNotExist(err error) bool
	ReadFile(name string) ([]byte, error)
	UserHomeDir() (string, error)
}

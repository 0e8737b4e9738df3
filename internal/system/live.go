package system

import "os"

type LiveFileSystem struct{}

func (fs LiveFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (fs LiveFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (fs LiveFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fs LiveFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

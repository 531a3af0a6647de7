package cgroups

import (
	"os"

	"golang.org/x/sys/unix"
)

// FS 是 CpusetManager 访问 cgroup 文件系统所需的能力
type FS interface {
	Mkdir(path string, perm os.FileMode) error
	// Remove 只删除空目录，不会删除普通文件
	Remove(path string) error
	ReadDir(path string) ([]os.DirEntry, error)
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
}

// HostFS 直接操作本机文件系统
type HostFS struct{}

var _ FS = HostFS{}

func (HostFS) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

func (HostFS) Remove(path string) error {
	if err := unix.Rmdir(path); err != nil {
		return &os.PathError{Op: "rmdir", Path: path, Err: err}
	}
	return nil
}

func (HostFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (HostFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (HostFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile 不截断、不创建文件，cgroup 控制文件只能由内核创建
func (HostFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

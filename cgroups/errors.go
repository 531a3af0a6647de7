package cgroups

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCreationFailed 表示 mkdir 调用成功，但目录随后并不存在
var ErrCreationFailed = errors.New("cpuset creation failed")

// IOError 包装文件系统或挂载进程返回的错误
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "io error: " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioErrorf(err error, format string, args ...interface{}) error {
	return &IOError{Err: errors.WithMessagef(err, format, args...)}
}

// MountError 表示 mount 命令执行失败，Output 为命令的合并输出
type MountError struct {
	Path   string
	Output string
	Err    error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("mount cpuset at %s failed: %v: %s", e.Path, e.Err, e.Output)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

// InvalidSetPathError 表示无法从路径中取出 cpuset 名字
type InvalidSetPathError struct {
	Path string
}

func (e *InvalidSetPathError) Error() string {
	return fmt.Sprintf("invalid set path %q", e.Path)
}

// InvalidNameError 表示 cpuset 名字不是单个路径分量
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid cpuset name %q", e.Name)
}

package cgroups

import (
	"fmt"
	"path/filepath"

	"cpusetctl/cgroups/cpurange"
	"cpusetctl/constant"

	"github.com/pkg/errors"
)

// Set 是一个 cpuset 目录解析后的状态
type Set struct {
	Name         string
	Cpus         cpurange.CpuRange
	CpuExclusive bool
}

func (s Set) String() string {
	return fmt.Sprintf("%s cpus=%q exclusive=%t", s.Name, s.Cpus.String(), s.CpuExclusive)
}

// LoadSet 读取 path 下的控制文件，还原出 Set
func LoadSet(fsys FS, path string) (Set, error) {
	name, err := setName(path)
	if err != nil {
		return Set{}, err
	}

	cpusFile := filepath.Join(path, constant.CpusetCpus)
	content, err := fsys.ReadFile(cpusFile)
	if err != nil {
		return Set{}, ioErrorf(err, "read %s", cpusFile)
	}
	cpus, err := cpurange.Parse(string(content))
	if err != nil {
		return Set{}, errors.WithMessagef(err, "parse %s", cpusFile)
	}

	exclusiveFile := filepath.Join(path, constant.CpusetCpuExclusive)
	content, err = fsys.ReadFile(exclusiveFile)
	if err != nil {
		return Set{}, ioErrorf(err, "read %s", exclusiveFile)
	}
	exclusive, err := cpurange.ParseFlag(string(content))
	if err != nil {
		return Set{}, errors.WithMessagef(err, "parse %s", exclusiveFile)
	}

	return Set{Name: name, Cpus: cpus, CpuExclusive: exclusive}, nil
}

// setName 取路径的最后一个分量作为 cpuset 名字
func setName(path string) (string, error) {
	if path == "" {
		return "", &InvalidSetPathError{Path: path}
	}
	name := filepath.Base(filepath.Clean(path))
	switch name {
	case string(filepath.Separator), ".", "..":
		return "", &InvalidSetPathError{Path: path}
	}
	return name, nil
}

// validName 检查 name 是否是单个路径分量
func validName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return &InvalidNameError{Name: name}
	}
	return nil
}

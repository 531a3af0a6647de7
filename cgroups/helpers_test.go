package cgroups

import (
	"os"
	"path/filepath"

	"cpusetctl/constant"

	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/gomega"
)

// fakeMounter 记录 Mount 调用，用于代替真正的 mount 命令
type fakeMounter struct {
	mounted  bool
	mountErr error
	mounts   []string
}

func (m *fakeMounter) Mounted(path string) (bool, error) {
	return m.mounted, nil
}

func (m *fakeMounter) Mount(path string) error {
	if m.mountErr != nil {
		return m.mountErr
	}
	m.mounts = append(m.mounts, path)
	m.mounted = true
	return nil
}

// tempDir 创建测试用的临时目录，在测试结束后删除
func tempDir() string {
	dir, err := os.MkdirTemp("", "cpuset-test-*")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(os.RemoveAll, dir)
	return dir
}

// populate 模拟内核在 cpuset 目录中创建控制文件
func populate(dir, cpus, exclusive string) {
	Expect(os.WriteFile(filepath.Join(dir, constant.CpusetCpus), []byte(cpus), constant.Perm0644)).To(Succeed())
	Expect(os.WriteFile(filepath.Join(dir, constant.CpusetCpuExclusive), []byte(exclusive), constant.Perm0644)).To(Succeed())
}

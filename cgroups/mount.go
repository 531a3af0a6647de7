package cgroups

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/moby/sys/mountinfo"
	log "github.com/sirupsen/logrus"
)

// Mounter 负责在指定目录挂载 cpuset 子系统
type Mounter interface {
	// Mounted 判断 path 上是否已经挂载了 cgroup 文件系统
	Mounted(path string) (bool, error)
	Mount(path string) error
}

// ExecMounter 通过 mount 命令挂载，通过 /proc/self/mountinfo 查询挂载表
type ExecMounter struct{}

var _ Mounter = ExecMounter{}

func (ExecMounter) Mounted(path string) (bool, error) {
	return mountedAs(path, "cgroup")
}

// mountedAs 判断 path 上是否挂载了 fstype 类型的文件系统
func mountedAs(path, fstype string) (bool, error) {
	// 挂载表中记录的是干净的绝对路径
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	mounts, err := mountinfo.GetMounts(mountinfo.SingleEntryFilter(abs))
	if err != nil {
		return false, err
	}
	for _, m := range mounts {
		if m.FSType == fstype {
			log.Debugf("%s already mounted, options %s", path, m.VFSOptions)
			return true, nil
		}
	}
	return false, nil
}

// Mount 执行 mount -t cgroup -ocpuset cpuset <path>
func (ExecMounter) Mount(path string) error {
	out, err := exec.Command("mount", "-t", "cgroup", "-ocpuset", "cpuset", path).CombinedOutput()
	if err != nil {
		return &MountError{Path: path, Output: strings.TrimSpace(string(out)), Err: err}
	}
	return nil
}

package constant

import "os"

const (
	Perm0755 os.FileMode = 0755
	Perm0644 os.FileMode = 0644
)

// CpusetPath 是 cpuset 子系统的默认挂载点
const CpusetPath = "/sys/fs/cgroup/cpuset"

// cpuset 目录中由内核维护的控制文件
const (
	CpusetCpus         = "cpuset.cpus"
	CpusetMems         = "cpuset.mems"
	CpusetCpuExclusive = "cpuset.cpu_exclusive"
	Tasks              = "tasks"
)

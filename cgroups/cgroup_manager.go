package cgroups

import (
	"os"
	"path/filepath"
	"strconv"

	"cpusetctl/cgroups/cpurange"
	"cpusetctl/constant"

	log "github.com/sirupsen/logrus"
)

type ListOptions struct{}

type CreateOptions struct {
	Name string
}

type RemoveOptions struct {
	Name string
}

// UpdateOptions 中为 nil 的字段不会被写入
type UpdateOptions struct {
	Name         string
	Cpus         *cpurange.CpuRange
	Mems         *cpurange.CpuRange
	CpuExclusive *bool
}

type AttachOptions struct {
	Name string
	Pid  int
}

type CpusetManager struct {
	// cpuset hierarchy 的挂载点，每个子目录对应一个 cpuset
	Path    string
	FS      FS
	Mounter Mounter
}

func NewCpusetManager(path string) *CpusetManager {
	return &CpusetManager{
		Path:    path,
		FS:      HostFS{},
		Mounter: ExecMounter{},
	}
}

// Init 创建挂载点目录并挂载 cpuset 子系统，已经挂载时跳过
func (c *CpusetManager) Init() error {
	if _, err := c.FS.Stat(c.Path); err != nil {
		if !os.IsNotExist(err) {
			return ioErrorf(err, "stat %s", c.Path)
		}
		if err = c.FS.Mkdir(c.Path, constant.Perm0755); err != nil {
			return ioErrorf(err, "mkdir %s", c.Path)
		}
		log.Infof("created %s", c.Path)
	}

	mounted, err := c.Mounter.Mounted(c.Path)
	if err != nil {
		return ioErrorf(err, "read mount table for %s", c.Path)
	}
	if mounted {
		log.Infof("cpuset already mounted at %s", c.Path)
		return nil
	}
	if err = c.Mounter.Mount(c.Path); err != nil {
		return err
	}
	log.Infof("mounted cpuset at %s", c.Path)
	return nil
}

// List 返回挂载点下所有的 cpuset，非目录的条目被忽略
func (c *CpusetManager) List(opts *ListOptions) ([]Set, error) {
	entries, err := c.FS.ReadDir(c.Path)
	if err != nil {
		return nil, ioErrorf(err, "read dir %s", c.Path)
	}
	sets := make([]Set, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		set, err := LoadSet(c.FS, filepath.Join(c.Path, entry.Name()))
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	log.Debugf("found sets: %v", sets)
	return sets, nil
}

// Create 在挂载点下创建名为 opts.Name 的 cpuset
func (c *CpusetManager) Create(opts *CreateOptions) error {
	if err := validName(opts.Name); err != nil {
		return err
	}
	p := filepath.Join(c.Path, opts.Name)
	log.Infof("creating set %s", p)

	if err := c.FS.Mkdir(p, constant.Perm0755); err != nil {
		return ioErrorf(err, "mkdir %s", p)
	}
	// 内核可能拒绝创建而不返回错误，这里再确认一次
	if _, err := c.FS.Stat(p); err != nil {
		log.Errorf("cpuset %s creation failed: %v", opts.Name, err)
		return ErrCreationFailed
	}
	return nil
}

// Remove 删除名为 opts.Name 的 cpuset，cpuset 中还有进程或子 cpuset 时会失败
func (c *CpusetManager) Remove(opts *RemoveOptions) error {
	if err := validName(opts.Name); err != nil {
		return err
	}
	p := filepath.Join(c.Path, opts.Name)
	log.Infof("removing set %s", p)

	if err := c.FS.Remove(p); err != nil {
		return ioErrorf(err, "rmdir %s", p)
	}
	return nil
}

// Update 将 opts 中给出的配置写入 cpuset 的控制文件
func (c *CpusetManager) Update(opts *UpdateOptions) error {
	if err := validName(opts.Name); err != nil {
		return err
	}
	p := filepath.Join(c.Path, opts.Name)
	if _, err := c.FS.Stat(p); err != nil {
		return ioErrorf(err, "stat %s", p)
	}

	// 先写 cpus 和 mems，内核要求 exclusive 的 cpuset 已经分配了 CPU
	if opts.Cpus != nil {
		log.Debugf("set %s %s to %q (%d cpus)", opts.Name, constant.CpusetCpus, opts.Cpus.String(), len(opts.Cpus.Cpus()))
		if err := c.writeControl(p, constant.CpusetCpus, opts.Cpus.String()); err != nil {
			return err
		}
	}
	if opts.Mems != nil {
		if err := c.writeControl(p, constant.CpusetMems, opts.Mems.String()); err != nil {
			return err
		}
	}
	if opts.CpuExclusive != nil {
		if err := c.writeControl(p, constant.CpusetCpuExclusive, cpurange.FormatFlag(*opts.CpuExclusive)); err != nil {
			return err
		}
	}
	return nil
}

// Attach 将进程 PID 加入到 cpuset 中
func (c *CpusetManager) Attach(opts *AttachOptions) error {
	if err := validName(opts.Name); err != nil {
		return err
	}
	p := filepath.Join(c.Path, opts.Name)
	log.Infof("attaching pid %d to set %s", opts.Pid, opts.Name)
	return c.writeControl(p, constant.Tasks, strconv.Itoa(opts.Pid))
}

func (c *CpusetManager) writeControl(dir, file, value string) error {
	p := filepath.Join(dir, file)
	if err := c.FS.WriteFile(p, []byte(value), constant.Perm0644); err != nil {
		return ioErrorf(err, "write %q to %s", value, p)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"cpusetctl/cgroups"
	"cpusetctl/cgroups/cpurange"

	"github.com/urfave/cli"
)

// newManager 使用全局参数 --path 构造 CpusetManager，测试中可以替换
var newManager = func(context *cli.Context) *cgroups.CpusetManager {
	return cgroups.NewCpusetManager(context.GlobalString("path"))
}

var initCommand = cli.Command{
	Name:  "init",
	Usage: "create and mount the cpuset file system",
	Action: func(context *cli.Context) error {
		return newManager(context).Init()
	},
}

var listCommand = cli.Command{
	Name:  "list",
	Usage: "list existing cpusets",
	Action: func(context *cli.Context) error {
		sets, err := newManager(context).List(&cgroups.ListOptions{})
		if err != nil {
			return err
		}
		return printSets(context.App.Writer, sets)
	},
}

var createCommand = cli.Command{
	Name:  "create",
	Usage: "create a new cpuset, e.g.: create --name group0",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "name",
			Usage: "name for new cpuset",
		},
	},
	Action: func(context *cli.Context) error {
		name, err := requireName(context)
		if err != nil {
			return err
		}
		return newManager(context).Create(&cgroups.CreateOptions{Name: name})
	},
}

var removeCommand = cli.Command{
	Name:  "remove",
	Usage: "remove a cpuset, e.g.: remove --name group0",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "name",
			Usage: "name of cpuset to be removed",
		},
	},
	Action: func(context *cli.Context) error {
		name, err := requireName(context)
		if err != nil {
			return err
		}
		return newManager(context).Remove(&cgroups.RemoveOptions{Name: name})
	},
}

var setCommand = cli.Command{
	Name:  "set",
	Usage: "configure a cpuset, e.g.: set --name group0 --cpus 0-3 --mems 0 --exclusive true",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "name",
			Usage: "name of cpuset to configure",
		},
		cli.StringFlag{
			Name:  "cpus", // 与 cpuset.cpus 格式相同
			Usage: "cpus, e.g.: --cpus 0-3 or --cpus 0,2",
		},
		cli.StringFlag{
			Name:  "mems",
			Usage: "memory nodes, e.g.: --mems 0",
		},
		cli.StringFlag{
			Name:  "exclusive",
			Usage: "exclusive cpu ownership, true or false",
		},
	},
	Action: func(context *cli.Context) error {
		name, err := requireName(context)
		if err != nil {
			return err
		}
		opts := &cgroups.UpdateOptions{Name: name}
		if context.IsSet("cpus") {
			cpus, err := cpurange.Parse(context.String("cpus"))
			if err != nil {
				return err
			}
			opts.Cpus = &cpus
		}
		if context.IsSet("mems") {
			mems, err := cpurange.Parse(context.String("mems"))
			if err != nil {
				return err
			}
			opts.Mems = &mems
		}
		if context.IsSet("exclusive") {
			exclusive, err := strconv.ParseBool(context.String("exclusive"))
			if err != nil {
				return &cpurange.BoolError{Text: context.String("exclusive")}
			}
			opts.CpuExclusive = &exclusive
		}
		return newManager(context).Update(opts)
	},
}

var attachCommand = cli.Command{
	Name:  "attach",
	Usage: "move a process into a cpuset, e.g.: attach --name group0 --pid 1234",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "name",
			Usage: "name of cpuset",
		},
		cli.IntFlag{
			Name:  "pid",
			Usage: "pid of the process, defaults to the invoking shell",
		},
	},
	Action: func(context *cli.Context) error {
		name, err := requireName(context)
		if err != nil {
			return err
		}
		pid := context.Int("pid")
		if pid == 0 {
			pid = os.Getppid()
		}
		return newManager(context).Attach(&cgroups.AttachOptions{Name: name, Pid: pid})
	},
}

func requireName(context *cli.Context) (string, error) {
	name := context.String("name")
	if name == "" {
		return "", fmt.Errorf("missing cpuset name")
	}
	return name, nil
}

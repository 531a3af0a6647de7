package main

import (
	"os"

	"cpusetctl/constant"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const usage = `cpusetctl manages cgroup-v1 cpusets.
			Mount the cpuset hierarchy, then create, list and remove cpusets.`

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "cpusetctl"
	app.Usage = usage

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "path, p",
			Usage:  "path for cpuset file system",
			Value:  constant.CpusetPath,
			EnvVar: "CPUSET_PATH",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level, e.g.: --log-level info",
			Value:  "debug",
			EnvVar: "CPUSET_LOG_LEVEL",
		},
	}

	app.Commands = []cli.Command{
		initCommand,
		listCommand,
		createCommand,
		removeCommand,
		setCommand,
		attachCommand,
	}

	app.Before = func(context *cli.Context) error {
		level, err := log.ParseLevel(context.GlobalString("log-level"))
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		return nil
	}

	return app
}

// Package main for the iomon daemon executable.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/NVIDIA/iomon/cmn"
	"github.com/NVIDIA/iomon/cmn/nlog"
	"github.com/NVIDIA/iomon/iod"
	"github.com/NVIDIA/iomon/sys"
)

const maxprocs = 4

var (
	build     string
	buildtime string
)

var flags struct {
	config  string
	device  string
	listen  string
	logdir  string
	version bool
}

func init() {
	flag.StringVar(&flags.config, "config", "", "configuration file (JSON or YAML); empty: built-in defaults")
	flag.StringVar(&flags.device, "device", "", "block device to monitor, e.g. sda (overrides disk.device)")
	flag.StringVar(&flags.listen, "listen", "", "HTTP listen address (overrides net.listen)")
	flag.StringVar(&flags.logdir, "logdir", "", "log directory (overrides log.dir)")
	flag.BoolVar(&flags.version, "version", false, "print version and exit")
	nlog.InitFlags(flag.CommandLine)
}

func main() {
	flag.Parse()
	version := cmn.VersionIomon + "." + build
	if flags.version {
		fmt.Printf("version %s (build %s)\n", version, buildtime)
		os.Exit(0)
	}

	config, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	cmn.GCO.Put(config)

	if config.Log.Dir != "" {
		nlog.SetLogDir(config.Log.Dir)
	}
	if config.Log.ToStderr {
		nlog.SetToStderr(true)
	}
	if level, err := strconv.Atoi(config.Log.Level); err == nil {
		nlog.SetVerbosity(level)
	} else {
		nlog.Warningf("invalid log.level %q, using default", config.Log.Level)
	}
	nlog.SetTitle(fmt.Sprintf("iomon version %s (build %s)", version, buildtime))

	sys.GoEnvMaxprocs(maxprocs)

	ecode := iod.Run(cmn.GCO.Get())
	nlog.FlushExit()
	os.Exit(ecode)
}

func loadConfig() (config *cmn.Config, err error) {
	if flags.config != "" {
		if config, err = cmn.LoadConfig(flags.config); err != nil {
			return nil, err
		}
	} else {
		config = cmn.DefaultConfig()
	}
	if flags.device != "" {
		config.Disk.Device = flags.device
		config.Disk.StatPath = ""
	}
	if flags.listen != "" {
		config.Net.Listen = flags.listen
	}
	if flags.logdir != "" {
		config.Log.Dir = flags.logdir
	}
	return config, config.Validate()
}

func exitf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, "iomon: "+f+"\n", a...)
	os.Exit(1)
}

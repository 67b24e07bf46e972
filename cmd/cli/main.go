// Package main for iomonctl, the command-line client of the iomon daemon.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/NVIDIA/iomon/cmd/cli/cli"
	"github.com/NVIDIA/iomon/cmn"
)

var (
	build     string
	buildtime string
)

func dispatchInterruptHandler() {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt)
	go func() {
		<-stopCh
		os.Exit(0)
	}()
}

func main() {
	dispatchInterruptHandler()

	if err := cli.Run(cmn.VersionCLI+"."+build, buildtime, os.Args); err != nil {
		exitf("%v", err)
	}
}

func exitf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

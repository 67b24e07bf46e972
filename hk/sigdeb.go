//go:build debug

// Package hk runs named periodic callbacks on a single goroutine:
// disk sampling, task polling, publishing, persistence, and cleanup.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package hk

import (
	"os/signal"
	"syscall"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/nlog"
)

func (hk *hk) setSignal() {
	signal.Notify(hk.sigCh,
		// log
		syscall.SIGHUP,
		// terminate
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		// flush logs
		syscall.SIGUSR1,
	)
}

func (hk *hk) handleSignal(s syscall.Signal) (err error) {
	switch s {
	case syscall.SIGHUP:
		logRuntime()
	case syscall.SIGUSR1:
		nlog.Flush()
	case syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
		signal.Stop(hk.sigCh)
		err = cos.NewSignalError(s)
		hk.Stop(err)
	default:
		nlog.Errorln("unexpected signal:", s)
	}
	return err
}

//go:build !debug

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
)

func (hk *hk) setSignal() {
	signal.Notify(hk.sigCh,
		// log
		syscall.SIGHUP,
		// terminate
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}

func (hk *hk) handleSignal(s syscall.Signal) error {
	if s == syscall.SIGHUP {
		logRuntime()
		return nil
	}
	signal.Stop(hk.sigCh)
	err := cos.NewSignalError(s)
	hk.Stop(err)
	return err
}

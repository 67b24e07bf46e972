// Package hk runs named periodic callbacks on a single goroutine:
// disk sampling, task polling, publishing, persistence, and cleanup.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package hk

import (
	"runtime"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/nlog"
)

// logRuntime shows up in the log with some useful info (SIGHUP)
func logRuntime() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	nlog.Infoln("ngr [", runtime.NumGoroutine(), runtime.GOMAXPROCS(0), "] heap [",
		cos.ToSizeIEC(int64(ms.HeapAlloc), 1), cos.ToSizeIEC(int64(ms.HeapSys), 1), "] num-gc [", ms.NumGC, "] hk [", HK.actions.Len(), "]")
}

// Package sys reads per-process I/O accounting and tracks it across process churn
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package sys

import (
	"os"
	"runtime"

	"github.com/NVIDIA/iomon/cmn/nlog"
)

// GoEnvMaxprocs logs Go runtime environment overrides and, unless GOMAXPROCS
// is set explicitly, caps it at limit (the monitor needs very few threads).
func GoEnvMaxprocs(limit int) {
	if val, exists := os.LookupEnv("GOMEMLIMIT"); exists {
		nlog.Warningln("Go environment: GOMEMLIMIT =", val)
	}
	if val, exists := os.LookupEnv("GOMAXPROCS"); exists {
		nlog.Warningln("Go environment: GOMAXPROCS =", val)
		return
	}
	if maxprocs := runtime.GOMAXPROCS(0); limit > 0 && maxprocs > limit {
		nlog.Infof("Reducing GOMAXPROCS (prev = %d) to %d", maxprocs, limit)
		runtime.GOMAXPROCS(limit)
	}
}

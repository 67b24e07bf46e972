//go:build !unix

// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import "os"

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

//go:build unix

// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import "golang.org/x/sys/unix"

func readable(path string) bool { return unix.Access(path, unix.R_OK) == nil }

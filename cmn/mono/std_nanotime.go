//go:build !mono

// Package mono provides low-level monotonic time
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mono

import "time"

var start = time.Now()

// monotonic reading relative to process start
func NanoTime() int64 { return int64(time.Since(start)) }

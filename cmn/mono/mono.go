// Package mono provides low-level monotonic time
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mono

import "time"

func Since(started int64) time.Duration { return time.Duration(NanoTime() - started) }

// NanoTime in milliseconds: block-device ticks are kept in ms
func MilliTime() int64 { return NanoTime() / int64(time.Millisecond) }

// Package hk runs named periodic callbacks on a single goroutine:
// disk sampling, task polling, publishing, persistence, and cleanup.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package hk

import "time"

// fixed intervals of the daemon's own upkeep
const (
	FlushLogsIval     = 10 * time.Second // nlog.Flush
	ShrinkJournalIval = time.Hour        // compact the stall journal file
	LoadAvgIval       = time.Minute      // refresh the system load gauge
)

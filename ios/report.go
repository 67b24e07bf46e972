// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

// BEWARE: change in this source MAY require re-running go generate ..

//go:generate msgp -tests=false -marshal=false

type (
	// DiskPerf is the rate view of one interval
	DiskPerf struct {
		ReadPerf  float64 `json:"read_perf" msg:"read_perf"`   // B/s
		ReadIOs   float64 `json:"read_ios" msg:"read_ios"`     // IOPS
		WritePerf float64 `json:"write_perf" msg:"write_perf"` // B/s
		WriteIOs  float64 `json:"write_ios" msg:"write_ios"`   // IOPS
		Queue     float64 `json:"queue" msg:"queue"`           // average # of requests in flight
	}
	// MonitorReport is a point-in-time copy of the Monitor state
	MonitorReport struct {
		Mean      DiskPerf `json:"mean" msg:"mean"`
		Std       DiskPerf `json:"std" msg:"std"`
		Last      DiskPerf `json:"last" msg:"last"`
		Tripped   []string `json:"tripped,omitempty" msg:"tripped,limit=5"` // at most one per metric
		Samples   uint64   `json:"samples" msg:"samples"`
		Discarded uint64   `json:"discarded" msg:"discarded"`
		Sigma     float64  `json:"sigma" msg:"sigma"`
		Window    int      `json:"window" msg:"window"`
		Fill      int      `json:"fill" msg:"fill"`
		Valid     bool     `json:"valid" msg:"valid"`
		Stall     bool     `json:"stall" msg:"stall"`
	}
)

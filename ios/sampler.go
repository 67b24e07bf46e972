// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

// sampler turns consecutive raw snapshots into per-interval rates
type sampler struct {
	prev      DiskStats
	primed    bool
	samples   uint64
	discarded uint64
}

// next always advances the previous snapshot; it returns a sample only
// when there was a previous snapshot, time moved forward, and no counter
// went backwards (reset or device swap).
func (s *sampler) next(cur *DiskStats) (inc DiskStats, perf DiskPerf, ok bool) {
	prev := s.prev
	s.prev = *cur
	if !s.primed {
		s.primed = true
		return
	}
	if cur.Regressed(&prev) {
		s.discarded++
		return
	}
	inc = cur.Sub(&prev)
	if perf, ok = PerfOf(&inc); !ok {
		s.discarded++
		return
	}
	s.samples++
	return
}

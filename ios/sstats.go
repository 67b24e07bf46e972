// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import "math"

// streamStats maintains mean and population standard deviation over a
// caller-managed sliding window: every evict must match an earlier add.
type streamStats struct {
	n     int
	sum   float64
	sumSq float64
}

func (s *streamStats) add(x float64) {
	s.n++
	s.sum += x
	s.sumSq += x * x
}

func (s *streamStats) evict(x float64) {
	s.n--
	s.sum -= x
	s.sumSq -= x * x
}

func (s *streamStats) mean() float64 {
	if s.n == 0 {
		return 0
	}
	return s.sum / float64(s.n)
}

func (s *streamStats) std() float64 {
	if s.n == 0 {
		return 0
	}
	var (
		mean = s.sum / float64(s.n)
		v    = s.sumSq/float64(s.n) - mean*mean
	)
	// rounding may push the variance slightly below zero
	return math.Sqrt(max(0, v))
}

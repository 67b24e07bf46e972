// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"fmt"
	"sync"

	"github.com/NVIDIA/iomon/cmn/debug"
)

type (
	// Monitor keeps a window of the most recent per-interval rates and flags
	// a stall when the latest one falls outside mean +/- sigma*std.
	// Read and write throughput/IOPS are higher-is-better, queue depth is
	// lower-is-better.
	Monitor struct {
		buf     []DiskPerf // ring of up to `window` samples
		head    int
		size    int
		stats   [numPerf]streamStats
		mean    DiskPerf
		std     DiskPerf
		last    DiskPerf
		smplr   sampler
		sigma   float64
		window  int
		tripped uint8 // bitmask of metric indices
		valid   bool
		stall   bool
		mu      sync.Mutex
	}
)

func NewMonitor(window int, sigma float64) *Monitor {
	debug.Assertf(window >= 2 && sigma >= 0, "window %d, sigma %f", window, sigma)
	return &Monitor{
		buf:    make([]DiskPerf, window),
		window: window,
		sigma:  sigma,
	}
}

// Update feeds the next raw snapshot. When the snapshot yields a sample
// (not the first one, not a counter reset, time moved forward) it becomes
// part of the baseline and the stall flag is recomputed; otherwise the stall
// flag is cleared. Returns the increment and its rates when sampled.
func (m *Monitor) Update(raw *DiskStats) (inc DiskStats, perf DiskPerf, ok bool) {
	m.mu.Lock()
	inc, perf, ok = m.smplr.next(raw)
	if !ok {
		m.stall, m.tripped = false, 0
		m.mu.Unlock()
		return
	}
	m.add(&perf)
	m.refreshBaseline()
	m.last = perf
	m.tripped = 0
	if m.valid {
		m.tripped = m.trips(&perf)
	}
	m.stall = m.tripped != 0
	m.mu.Unlock()
	return
}

func (m *Monitor) Stall() bool {
	m.mu.Lock()
	stall := m.stall
	m.mu.Unlock()
	return stall
}

func (m *Monitor) Valid() bool {
	m.mu.Lock()
	valid := m.valid
	m.mu.Unlock()
	return valid
}

// Baseline returns the current window mean and standard deviation
func (m *Monitor) Baseline() (mean, std DiskPerf) {
	m.mu.Lock()
	mean, std = m.mean, m.std
	m.mu.Unlock()
	return
}

func (m *Monitor) Report() (r MonitorReport) {
	m.mu.Lock()
	r = MonitorReport{
		Mean:      m.mean,
		Std:       m.std,
		Last:      m.last,
		Tripped:   trippedNames(m.tripped),
		Samples:   m.smplr.samples,
		Discarded: m.smplr.discarded,
		Sigma:     m.sigma,
		Window:    m.window,
		Fill:      m.size,
		Valid:     m.valid,
		Stall:     m.stall,
	}
	m.mu.Unlock()
	return
}

func (m *Monitor) String() string {
	r := m.Report()
	return fmt.Sprintf("monitor[w=%d/%d, sigma=%.1f, valid=%t, stall=%t]", r.Fill, r.Window, r.Sigma, r.Valid, r.Stall)
}

//
// internals (caller holds the lock)
//

func (m *Monitor) add(perf *DiskPerf) {
	debug.AssertMutexLocked(&m.mu)
	if m.size == m.window {
		old := m.buf[m.head].fields()
		for i := range m.stats {
			m.stats[i].evict(old[i])
		}
		m.buf[m.head] = *perf
		m.head = (m.head + 1) % m.window
	} else {
		m.buf[(m.head+m.size)%m.window] = *perf
		m.size++
	}
	cur := perf.fields()
	for i := range m.stats {
		m.stats[i].add(cur[i])
	}
	debug.Assert(m.stats[mQueue].n == m.size, m.stats[mQueue].n, m.size)
	if m.size == m.window {
		m.valid = true
	}
}

func (m *Monitor) refreshBaseline() {
	debug.AssertMutexLocked(&m.mu)
	var mean, std [numPerf]float64
	for i := range m.stats {
		mean[i], std[i] = m.stats[i].mean(), m.stats[i].std()
	}
	m.mean, m.std = perfFrom(mean), perfFrom(std)
}

func (m *Monitor) detect(perf *DiskPerf) bool { return m.trips(perf) != 0 }

// trips returns the bitmask of metrics deviating beyond sigma*std in the
// unfavorable direction; zero std means zero tolerance.
func (m *Monitor) trips(perf *DiskPerf) (mask uint8) {
	var (
		cur  = perf.fields()
		mean = m.mean.fields()
		std  = m.std.fields()
	)
	for i := range cur {
		var dev float64
		if i == mQueue {
			dev = cur[i] - mean[i]
		} else {
			dev = mean[i] - cur[i]
		}
		if dev > m.sigma*std[i] {
			mask |= 1 << i
		}
	}
	return mask
}

func trippedNames(mask uint8) (names []string) {
	for i := range numPerf {
		if mask&(1<<i) != 0 {
			names = append(names, perfNames[i])
		}
	}
	return names
}

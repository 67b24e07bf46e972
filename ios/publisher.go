// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"sync"
	"time"
)

type (
	// Publisher accumulates per-interval increments over a publish period
	Publisher struct {
		prev   DiskStats
		acc    DiskStats
		last   Summary
		mu     sync.Mutex
		primed bool
	}
	// Summary of one publish period
	Summary struct {
		Stats     DiskStats `json:"stats"`
		Perf      DiskPerf  `json:"perf"`
		Published time.Time `json:"published"`
	}
)

func NewPublisher() *Publisher { return &Publisher{} }

// Update accumulates the increment since the previous snapshot.
// A regressed snapshot restarts differencing from itself.
func (p *Publisher) Update(cur *DiskStats) {
	p.mu.Lock()
	if p.primed && !cur.Regressed(&p.prev) {
		inc := cur.Sub(&p.prev)
		if inc.ElapsedMs() > 0 {
			p.acc.Add(&inc)
		}
	}
	p.prev, p.primed = *cur, true
	p.mu.Unlock()
}

// Previous returns the most recent raw snapshot
func (p *Publisher) Previous() DiskStats {
	p.mu.Lock()
	prev := p.prev
	p.mu.Unlock()
	return prev
}

// Publish closes the current period and resets the accumulator;
// returns false when nothing was accumulated.
func (p *Publisher) Publish(now time.Time) (s Summary, ok bool) {
	p.mu.Lock()
	if p.acc.Counter == 0 {
		p.mu.Unlock()
		return s, false
	}
	s.Stats = p.acc
	s.Perf, _ = PerfOf(&p.acc)
	s.Published = now
	p.last = s
	p.acc = DiskStats{}
	p.mu.Unlock()
	return s, true
}

// Last returns the most recently published summary
func (p *Publisher) Last() (s Summary, ok bool) {
	p.mu.Lock()
	s, ok = p.last, p.last.Stats.Counter > 0
	p.mu.Unlock()
	return
}

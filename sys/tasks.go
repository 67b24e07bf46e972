// Package sys reads per-process I/O accounting and tracks it across process churn
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package sys

import (
	"maps"
	"sort"
	"sync"
)

type (
	// Tasks reconciles the live process table (keyed by pid) with the
	// historical per-command aggregate of exited processes (keyed by command
	// name), so that per-command totals survive process churn.
	Tasks struct {
		running map[int]TaskInfo
		old     map[string]TaskInfo
		mu      sync.Mutex
	}
	// UpdateStats summarizes one reconciliation
	UpdateStats struct {
		Running int
		Started int
		Exited  int
	}
)

func NewTasks() *Tasks {
	return &Tasks{
		running: make(map[int]TaskInfo, 256),
		old:     make(map[string]TaskInfo, 64),
	}
}

// Update replaces the live table with snapshot. Processes present in the
// previous table but absent from the snapshot, or present with a different
// start time (pid reuse), have exited: their final counters move into the
// historical aggregate of their command.
func (t *Tasks) Update(snapshot []TaskInfo) (us UpdateStats) {
	running := make(map[int]TaskInfo, len(snapshot))
	for i := range snapshot {
		task := &snapshot[i]
		running[task.Pid] = *task
	}

	t.mu.Lock()
	for pid, prev := range t.running {
		cur, ok := running[pid]
		if ok && cur.StartTime == prev.StartTime {
			continue
		}
		t.retire(&prev)
		us.Exited++
	}
	for pid, cur := range running {
		if prev, ok := t.running[pid]; !ok || prev.StartTime != cur.StartTime {
			us.Started++
		}
	}
	t.running = running
	us.Running = len(running)
	t.mu.Unlock()
	return us
}

func (t *Tasks) retire(task *TaskInfo) {
	agg, ok := t.old[task.Cmd]
	if !ok {
		agg.Cmd = task.Cmd
	}
	agg.Add(task)
	t.old[task.Cmd] = agg
}

// Running returns a copy of the live table
func (t *Tasks) Running() map[int]TaskInfo {
	t.mu.Lock()
	running := maps.Clone(t.running)
	t.mu.Unlock()
	return running
}

// Old returns a copy of the historical per-command aggregate
func (t *Tasks) Old() map[string]TaskInfo {
	t.mu.Lock()
	old := maps.Clone(t.old)
	t.mu.Unlock()
	return old
}

// Merged returns one entry per command name across live and exited
// processes, sorted by total bytes (descending) and then by name.
// An entry keeps pid and start time only when a single live process
// contributes to it.
func (t *Tasks) Merged() []TaskInfo {
	t.mu.Lock()
	byCmd := make(map[string]TaskInfo, len(t.old)+len(t.running))
	maps.Copy(byCmd, t.old)
	for _, task := range t.running {
		if agg, ok := byCmd[task.Cmd]; ok {
			agg.Add(&task)
			byCmd[task.Cmd] = agg
		} else {
			byCmd[task.Cmd] = task
		}
	}
	t.mu.Unlock()

	merged := make([]TaskInfo, 0, len(byCmd))
	for _, task := range byCmd {
		merged = append(merged, task)
	}
	SortTasks(merged)
	return merged
}

// restore merges a previously persisted historical aggregate
func (t *Tasks) restore(old map[string]TaskInfo) {
	t.mu.Lock()
	for cmd, task := range old {
		cmd = boundCmd(cmd)
		task.Cmd = cmd
		agg, ok := t.old[cmd]
		if !ok {
			agg.Cmd = cmd
		}
		agg.Add(&task)
		t.old[cmd] = agg
	}
	t.mu.Unlock()
}

func SortTasks(tasks []TaskInfo) {
	sort.Slice(tasks, func(i, j int) bool {
		ti, tj := tasks[i].TotalBytes(), tasks[j].TotalBytes()
		if ti != tj {
			return ti > tj
		}
		if tasks[i].Cmd != tasks[j].Cmd {
			return tasks[i].Cmd < tasks[j].Cmd
		}
		return tasks[i].Pid < tasks[j].Pid
	})
}

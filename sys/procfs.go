// Package sys reads per-process I/O accounting and tracks it across process churn
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package sys

import (
	"github.com/pkg/errors"
	"github.com/prometheus/procfs"
)

// ReadTasks enumerates processes under procRoot (typically /proc).
// Processes that exit or deny access while being read are skipped;
// an unreadable root yields no tasks and an error.
func ReadTasks(procRoot string) ([]TaskInfo, error) {
	fs, err := procfs.NewFS(procRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", procRoot)
	}
	procs, err := fs.AllProcs()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %q", procRoot)
	}
	tasks := make([]TaskInfo, 0, len(procs))
	for _, p := range procs {
		task, err := readTask(p)
		if err != nil {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func readTask(p procfs.Proc) (TaskInfo, error) {
	pio, err := p.IO()
	if err != nil {
		return TaskInfo{}, err
	}
	stat, err := p.Stat()
	if err != nil {
		return TaskInfo{}, err
	}
	return TaskInfo{
		Cmd:                 boundCmd(stat.Comm),
		Pid:                 p.PID,
		StartTime:           stat.Starttime,
		Rchar:               pio.RChar,
		Wchar:               pio.WChar,
		Syscr:               pio.SyscR,
		Syscw:               pio.SyscW,
		ReadBytes:           pio.ReadBytes,
		WriteBytes:          pio.WriteBytes,
		CancelledWriteBytes: uint64(max(pio.CancelledWriteBytes, 0)),
	}, nil
}

// LoadAverage returns the 1, 5, and 15 minutes system load average
func LoadAverage(procRoot string) (*procfs.LoadAvg, error) {
	fs, err := procfs.NewFS(procRoot)
	if err != nil {
		return nil, err
	}
	return fs.LoadAvg()
}

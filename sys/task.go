// Package sys reads per-process I/O accounting and tracks it across process churn
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package sys

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BEWARE: change in this source MAY require re-running go generate ..

//go:generate msgp -tests=false -marshal=false
//msgp:limit arrays:65536

// MaxCmdLen bounds the command name, as the kernel's TASK_COMM_LEN
const MaxCmdLen = 16

type (
	// TaskInfo is the I/O accounting of one process (/proc/<pid>/io), or the
	// aggregate of several processes sharing a command name, in which case Pid and
	// StartTime are zero.
	TaskInfo struct {
		Cmd                 string `json:"cmd" msg:"cmd"`
		Pid                 int    `json:"pid" msg:"pid"`
		StartTime           uint64 `json:"starttime" msg:"starttime"` // clock ticks since boot
		Rchar               uint64 `json:"rchar" msg:"rchar"`
		Wchar               uint64 `json:"wchar" msg:"wchar"`
		Syscr               uint64 `json:"syscr" msg:"syscr"`
		Syscw               uint64 `json:"syscw" msg:"syscw"`
		ReadBytes           uint64 `json:"read_bytes" msg:"read_bytes"`
		WriteBytes          uint64 `json:"write_bytes" msg:"write_bytes"`
		CancelledWriteBytes uint64 `json:"cancelled_write_bytes" msg:"cancelled_write_bytes"`
	}
	// TaskList is the wire form of a task table
	TaskList []TaskInfo
)

// Add accumulates the counters of src; identity fields are cleared
func (t *TaskInfo) Add(src *TaskInfo) {
	t.Rchar += src.Rchar
	t.Wchar += src.Wchar
	t.Syscr += src.Syscr
	t.Syscw += src.Syscw
	t.ReadBytes += src.ReadBytes
	t.WriteBytes += src.WriteBytes
	t.CancelledWriteBytes += src.CancelledWriteBytes
	t.Pid, t.StartTime = 0, 0
}

// TotalBytes is the storage traffic attributed to the task
func (t *TaskInfo) TotalBytes() uint64 { return t.ReadBytes + t.WriteBytes }

func (t *TaskInfo) String() string {
	if t.Pid == 0 {
		return fmt.Sprintf("%s[rd %d, wr %d]", t.Cmd, t.ReadBytes, t.WriteBytes)
	}
	return fmt.Sprintf("%s(%d)[rd %d, wr %d]", t.Cmd, t.Pid, t.ReadBytes, t.WriteBytes)
}

// boundCmd cuts the name to MaxCmdLen bytes without splitting a rune, and
// replaces invalid UTF-8 so that the name encodes as a string on the wire
func boundCmd(cmd string) string {
	if len(cmd) > MaxCmdLen {
		cut := MaxCmdLen
		for i := 1; i < utf8.UTFMax && !utf8.RuneStart(cmd[cut]); i++ {
			cut--
		}
		cmd = cmd[:cut]
	}
	return strings.ToValidUTF8(cmd, "?")
}

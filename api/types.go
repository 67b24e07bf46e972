// Package api provides iomon query API over HTTP
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"time"

	"github.com/NVIDIA/iomon/ios"
	"github.com/NVIDIA/iomon/journal"
	"github.com/NVIDIA/iomon/sys"
)

// BEWARE: change in this source MAY require re-running go generate ..

//go:generate msgp -tests=false -marshal=false
//msgp:ignore PublishInfo EMMCInfo JournalInfo

// msgpack is supported for the two polled-at-high-rate responses; the rest is JSON

type (
	// DiskInfo is the response to GET /v1/disk
	DiskInfo struct {
		Device string            `json:"device" msg:"device"`
		RunID  string            `json:"run_id" msg:"run_id"`
		Report ios.MonitorReport `json:"report" msg:"report"`
	}
	// TasksInfo is the response to GET /v1/tasks
	TasksInfo struct {
		Tasks   sys.TaskList `json:"tasks" msg:"tasks"`
		Running bool         `json:"running" msg:"running"` // live table (true) or merged per-command view
		Total   int          `json:"total" msg:"total"`     // before applying ?top=
	}
	PublishInfo struct {
		Device  string      `json:"device"`
		Summary ios.Summary `json:"summary"`
		Ok      bool        `json:"ok"` // false until the first period is published
	}
	EMMCInfo struct {
		ios.EMMCInfo
		PreEOLStr    string    `json:"pre_eol_str"`
		LifeTimeAStr string    `json:"lifetime_a_str"`
		LifeTimeBStr string    `json:"lifetime_b_str"`
		Read         time.Time `json:"read"`
	}
	JournalInfo struct {
		Events  []journal.Event `json:"events"`
		Dropped int64           `json:"dropped"` // corrupted records deleted since start
	}
)

func NewEMMCInfo(info *ios.EMMCInfo, read time.Time) *EMMCInfo {
	out := &EMMCInfo{EMMCInfo: *info, PreEOLStr: info.PreEOLString(), Read: read}
	if info.LifeTimeEst {
		out.LifeTimeAStr, out.LifeTimeBStr = ios.LifeTimeString(info.LifeTimeA), ios.LifeTimeString(info.LifeTimeB)
	}
	return out
}

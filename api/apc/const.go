// Package apc: API constants shared by the iomon daemon and its clients
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

import "time"

// RESTful URL path: l1/l2
const (
	// l1
	Version = "v1"
	// l2
	Disk    = "disk"
	Tasks   = "tasks"
	Publish = "publish"
	EMMC    = "emmc"
	Journal = "journal"

	// not versioned
	Metrics = "metrics"
)

var (
	URLPathDisk    = "/" + Version + "/" + Disk
	URLPathTasks   = "/" + Version + "/" + Tasks
	URLPathPublish = "/" + Version + "/" + Publish
	URLPathEMMC    = "/" + Version + "/" + EMMC
	URLPathJournal = "/" + Version + "/" + Journal
	URLPathMetrics = "/" + Metrics
)

// query parameters
const (
	QparamRunning = "running" // tasks: live table instead of the merged per-command view
	QparamTop     = "top"     // tasks: limit
	QparamN       = "n"       // journal: number of most recent events
)

// headers
const (
	HeaderPrefix = "iomon-"
	HdrRunID     = HeaderPrefix + "run-id"
	HdrDevice    = HeaderPrefix + "device"
)

// in re: "Slowloris Attack"
const ReadHeaderTimeout = 16 * time.Second

const DefaultTimeout = 10 * time.Second

// Package iod is the iomon daemon: it samples the disk and the process table
// on a schedule and serves the results over HTTP.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package iod

import (
	"math"
	"path/filepath"
	"strings"
	"sync"
	ratomic "sync/atomic"
	"time"

	"github.com/NVIDIA/iomon/cmn"
	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/nlog"
	"github.com/NVIDIA/iomon/hk"
	"github.com/NVIDIA/iomon/ios"
	"github.com/NVIDIA/iomon/journal"
	"github.com/NVIDIA/iomon/stats"
	"github.com/NVIDIA/iomon/sys"

	"github.com/pkg/errors"
)

// housekeeping callbacks
const (
	hkDisk    = "disk"
	hkTasks   = "tasks"
	hkPublish = "publish"
	hkPersist = "persist-history"
	hkShrink  = "shrink-journal"
	hkFlush   = "flush-logs"
	hkLoad    = "load-avg"
	hkEMMC    = "emmc"
)

type (
	Daemon struct {
		config    *cmn.Config
		monitor   *ios.Monitor
		publisher *ios.Publisher
		tasks     *sys.Tasks
		journal   *journal.Journal
		exporter  *stats.Exporter
		srv       *server
		rg        *rungroup
		runID     string
		device    string
		statPath  string
		emmcPath  string
		emmc      emmcState
		load      ratomic.Uint64 // math.Float64bits(max(load1, load5))

		// owned by the hk goroutine
		stall    bool
		readErrs int64
		taskErrs int64
	}
	emmcState struct {
		info ios.EMMCInfo
		read time.Time
		ok   bool
		mu   sync.RWMutex
	}
)

// New resolves the device, restores per-command history, opens the journal,
// and wires the exporter and HTTP server; nothing runs until Run.
func New(config *cmn.Config) (*Daemon, error) {
	d := &Daemon{config: config, runID: cmn.GenRunID()}
	if err := d.initDisk(); err != nil {
		return nil, err
	}
	d.monitor = ios.NewMonitor(config.Disk.Window, config.Disk.Sigma)
	d.publisher = ios.NewPublisher()

	d.tasks = sys.NewTasks()
	if n, err := d.tasks.Load(config.Tasks.PersistPath); err != nil {
		nlog.Warningln("failed to restore task history (starting afresh):", err)
	} else if n > 0 {
		nlog.Infoln("restored history of", n, "commands from", config.Tasks.PersistPath)
	}

	j, err := journal.Open(config.Journal.Path, config.Journal.TTL.D())
	if err != nil {
		return nil, err
	}
	d.journal = j

	d.exporter = stats.NewExporter(&stats.Sources{
		Monitor: d.monitor,
		Tasks:   d.tasks,
		EMMC:    d.emmcInfo,
		Device:  d.device,
	})
	d.srv = newServer(d, config.Net.Listen)
	return d, nil
}

func (d *Daemon) initDisk() error {
	disk := d.config.Disk // copy
	if disk.Device == "" && disk.StatPath == "" {
		dev, err := ios.PickDisk(disk.SysBlock)
		if err != nil {
			return errors.Wrap(err, "no device configured")
		}
		disk.Device = dev
	}
	if disk.Device == "" {
		disk.Device = filepath.Base(filepath.Dir(disk.StatPath))
	}
	d.device, d.statPath = disk.Device, disk.StatFile()

	d.emmcPath = disk.EMMCPath
	if d.emmcPath == "" && strings.HasPrefix(d.device, "mmcblk") {
		d.emmcPath = ios.FindEXTCSD(ios.DefaultDebugfs)
	}
	nlog.Infoln("monitoring", d.device, "via", d.statPath, "run-id", d.runID)
	return nil
}

func (d *Daemon) RunID() string  { return d.runID }
func (d *Daemon) Device() string { return d.device }

// Run blocks until the first runner terminates (signal, listener failure)
// and then saves the history and closes the journal.
func (d *Daemon) Run() error {
	hk.Init()
	d.rg = newRungroup()
	d.rg.add(hk.HK)
	d.rg.add(d.srv)
	d.regHK()

	err := d.rg.run()
	d.shutdown()
	return err
}

func (d *Daemon) regHK() {
	var (
		disk  = &d.config.Disk
		tasks = &d.config.Tasks
	)
	hk.Reg(hkDisk, d.diskTick, 0)
	hk.Reg(hkTasks, d.tasksTick, 0)
	hk.Reg(hkPublish, d.publishTick, disk.PublishPeriod.D())
	hk.Reg(hkPersist, d.persistTick, tasks.PersistInterval.D())
	hk.Reg(hkShrink, d.shrinkTick, hk.ShrinkJournalIval)
	hk.Reg(hkFlush, d.flushTick, hk.FlushLogsIval)
	hk.Reg(hkLoad, d.loadTick, 0)
	if d.emmcPath != "" {
		hk.Reg(hkEMMC, d.emmcTick, 0)
	}
}

func (d *Daemon) shutdown() {
	if err := d.tasks.Save(d.config.Tasks.PersistPath, d.runID); err != nil {
		nlog.Errorln("failed to save task history:", err)
	}
	if err := d.journal.Close(); err != nil {
		nlog.Errorln("failed to close journal:", err)
	}
	nlog.Flush()
}

func (d *Daemon) maxLoad() float64 { return math.Float64frombits(d.load.Load()) }

func (d *Daemon) emmcInfo() (ios.EMMCInfo, bool) {
	d.emmc.mu.RLock()
	info, ok := d.emmc.info, d.emmc.ok
	d.emmc.mu.RUnlock()
	return info, ok
}

// Run is the daemon's main; returns the process exit code
func Run(config *cmn.Config) int {
	d, err := New(config)
	if err != nil {
		nlog.Errorln("failed to start:", err)
		return 1
	}
	err = d.Run()
	if err == nil {
		nlog.Infoln("Terminated OK")
		return 0
	}
	if e, ok := err.(*cos.ErrSignal); ok {
		nlog.Infof("Terminated OK (via %v)", e)
		return e.ExitCode()
	}
	nlog.Errorln("Terminated with err:", err)
	return 1
}

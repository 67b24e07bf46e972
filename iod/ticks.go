// Package iod is the iomon daemon: it samples the disk and the process table
// on a schedule and serves the results over HTTP.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package iod

import (
	"math"
	"time"

	"github.com/NVIDIA/iomon/cmn/nlog"
	"github.com/NVIDIA/iomon/hk"
	"github.com/NVIDIA/iomon/ios"
	"github.com/NVIDIA/iomon/journal"
	"github.com/NVIDIA/iomon/stats"
	"github.com/NVIDIA/iomon/sys"
)

const emmcIval = time.Hour

// all callbacks run on the hk goroutine

func (d *Daemon) diskTick(int64) time.Duration {
	ival := d.config.Disk.Interval.D()
	ds, err := ios.ReadStats(d.statPath, d.device)
	if err != nil {
		// log the first failure in a row
		if d.readErrs == 0 {
			nlog.Errorln(d.device, "failed to read stats:", err)
		}
		d.readErrs++
		return ival
	}
	if d.readErrs > 0 {
		nlog.Infoln(d.device, "stats readable again after", d.readErrs, "failures")
		d.readErrs = 0
	}
	d.sample(&ds)
	return ival
}

// sample feeds both the monitor and the publisher and records stall transitions
func (d *Daemon) sample(ds *ios.DiskStats) {
	_, perf, ok := d.monitor.Update(ds)
	d.publisher.Update(ds)

	stall := d.monitor.Stall()
	if stall == d.stall {
		return
	}
	d.stall = stall

	mean, std := d.monitor.Baseline()
	ev := &journal.Event{
		Device: d.device,
		RunID:  d.runID,
		Mean:   mean,
		Std:    std,
		Load:   d.maxLoad(),
	}
	if ok {
		ev.Sample = perf
	}
	if stall {
		ev.Kind = journal.KindOnset
		d.exporter.StallEvent(stats.StallOnset)
		nlog.Warningln(d.device, "stall:", d.monitor.Report().Tripped, "sample [", perf.String(), "] baseline [", mean.String(), "]")
	} else {
		ev.Kind = journal.KindRecovery
		d.exporter.StallEvent(stats.StallRecovery)
		nlog.Infoln(d.device, "recovered from stall")
	}
	if err := d.journal.Record(ev); err != nil {
		nlog.Errorln("failed to record", ev.Kind, "event:", err)
	}
}

func (d *Daemon) tasksTick(int64) time.Duration {
	ival := d.config.Tasks.Interval.D()
	snapshot, err := sys.ReadTasks(d.config.Tasks.ProcRoot)
	if err != nil {
		if d.taskErrs == 0 {
			nlog.Errorln("failed to read tasks:", err)
		}
		d.taskErrs++
		return ival
	}
	d.taskErrs = 0
	us := d.tasks.Update(snapshot)
	d.exporter.TasksUpdated(us)
	if nlog.V(4) {
		nlog.Infof("tasks: %d running, %d started, %d exited", us.Running, us.Started, us.Exited)
	}
	return ival
}

func (d *Daemon) publishTick(int64) time.Duration {
	if s, ok := d.publisher.Publish(time.Now()); ok {
		nlog.Infof("%s: %s, in-flight avg %.2f over %d intervals",
			d.device, s.Perf.String(), s.Stats.IOAvg, s.Stats.Counter)
		d.exporter.Published(&s)
	}
	return d.config.Disk.PublishPeriod.D()
}

func (d *Daemon) persistTick(int64) time.Duration {
	if err := d.tasks.Save(d.config.Tasks.PersistPath, d.runID); err != nil {
		nlog.Errorln("failed to save task history:", err)
	}
	return d.config.Tasks.PersistInterval.D()
}

func (d *Daemon) shrinkTick(int64) time.Duration {
	if err := d.journal.Shrink(); err != nil {
		nlog.Warningln("failed to shrink journal:", err)
	}
	return hk.ShrinkJournalIval
}

func (*Daemon) flushTick(int64) time.Duration {
	nlog.Flush()
	return hk.FlushLogsIval
}

func (d *Daemon) loadTick(int64) time.Duration {
	avg, err := sys.LoadAverage(d.config.Tasks.ProcRoot)
	if err != nil {
		nlog.Warningln("failed to read load average:", err)
		return hk.UnregInterval
	}
	d.exporter.SetLoad(avg.Load1, avg.Load5, avg.Load15)
	d.load.Store(math.Float64bits(max(avg.Load1, avg.Load5)))
	return hk.LoadAvgIval
}

func (d *Daemon) emmcTick(int64) time.Duration {
	info, err := ios.ReadEMMC(d.emmcPath)
	if err != nil {
		nlog.Warningln("eMMC health unavailable:", err)
		return hk.UnregInterval
	}
	d.emmc.mu.Lock()
	d.emmc.info, d.emmc.read, d.emmc.ok = info, time.Now(), true
	d.emmc.mu.Unlock()
	if info.PreEOL > 1 {
		nlog.Warningln(d.device, "eMMC pre-EOL:", info.PreEOLString())
	}
	return emmcIval
}

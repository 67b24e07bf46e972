// Package stats exports disk monitor, process I/O, and flash health metrics to Prometheus.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package stats

import (
	"github.com/NVIDIA/iomon/cmn/debug"
	"github.com/NVIDIA/iomon/ios"

	"github.com/prometheus/client_golang/prometheus"
)

type (
	counter    struct{ prometheus.Counter }
	counterVec struct{ *prometheus.CounterVec }
	gauge      struct{ prometheus.Gauge }
	gaugeVec   struct{ *prometheus.GaugeVec }

	// collector samples its sources at scrape time
	collector struct {
		src      *Sources
		promDesc map[string]*prometheus.Desc
	}
)

// interface guard
var _ prometheus.Collector = (*collector)(nil)

func (v counterVec) inc(label string)             { v.WithLabelValues(label).Inc() }
func (v gaugeVec) set(label string, val float64) { v.WithLabelValues(label).Set(val) }

// metric names (scrape-time)
const (
	diskPerf      = "disk_perf"
	diskValid     = "disk_valid"
	diskStall     = "disk_stall"
	diskFill      = "disk_window_fill"
	diskSamples   = "disk_samples_total"
	diskDiscarded = "disk_discarded_total"
	taskRead      = "task_read_bytes"
	taskWrite     = "task_write_bytes"
	taskCancelled = "task_cancelled_write_bytes"
	emmcPreEOL    = "emmc_pre_eol"
	emmcLifeTime  = "emmc_lifetime"
)

func newCollector(src *Sources) *collector {
	c := &collector{src: src, promDesc: make(map[string]*prometheus.Desc, 16)}
	constLabels := prometheus.Labels{"device": src.Device}
	c.reg(diskPerf, "rolling baseline and last sample of the disk rates", []string{"metric", "stat"}, constLabels)
	c.reg(diskValid, "1 when the baseline window is full", nil, constLabels)
	c.reg(diskStall, "1 when the last sample tripped the baseline", nil, constLabels)
	c.reg(diskFill, "number of samples in the baseline window", nil, constLabels)
	c.reg(diskSamples, "accepted samples", nil, constLabels)
	c.reg(diskDiscarded, "discarded snapshots (counter reset or no elapsed time)", nil, constLabels)
	c.reg(taskRead, "bytes read from storage per command", []string{"cmd"}, nil)
	c.reg(taskWrite, "bytes written to storage per command", []string{"cmd"}, nil)
	c.reg(taskCancelled, "cancelled write bytes per command", []string{"cmd"}, nil)
	c.reg(emmcPreEOL, "eMMC pre-EOL info (1 normal, 2 warning, 3 urgent)", nil, constLabels)
	c.reg(emmcLifeTime, "eMMC device life time estimate in 10% steps", []string{"type"}, constLabels)
	return c
}

func (c *collector) reg(name, help string, variableLabels []string, constLabels prometheus.Labels) {
	fullqn := prometheus.BuildFQName(namespace, "", name)
	c.promDesc[name] = prometheus.NewDesc(fullqn, help, variableLabels, constLabels)
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	for _, desc := range c.promDesc {
		ch <- desc
	}
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	if c.src.Monitor != nil {
		c.collectDisk(ch)
	}
	if c.src.Tasks != nil {
		c.collectTasks(ch)
	}
	if c.src.EMMC != nil {
		if info, ok := c.src.EMMC(); ok {
			c.collectEMMC(ch, &info)
		}
	}
}

func (c *collector) collectDisk(ch chan<- prometheus.Metric) {
	r := c.src.Monitor.Report()
	for _, p := range []struct {
		stat string
		perf *ios.DiskPerf
	}{{"mean", &r.Mean}, {"std", &r.Std}, {"last", &r.Last}} {
		p.perf.Range(func(name string, v float64) {
			c.send(ch, diskPerf, prometheus.GaugeValue, v, name, p.stat)
		})
	}
	c.send(ch, diskValid, prometheus.GaugeValue, b2f(r.Valid))
	c.send(ch, diskStall, prometheus.GaugeValue, b2f(r.Stall))
	c.send(ch, diskFill, prometheus.GaugeValue, float64(r.Fill))
	c.send(ch, diskSamples, prometheus.CounterValue, float64(r.Samples))
	c.send(ch, diskDiscarded, prometheus.CounterValue, float64(r.Discarded))
}

// top N commands by total bytes; series come and go with the ranking
func (c *collector) collectTasks(ch chan<- prometheus.Metric) {
	merged := c.src.Tasks.Merged()
	if len(merged) > c.src.TopTasks {
		merged = merged[:c.src.TopTasks]
	}
	for i := range merged {
		task := &merged[i]
		c.send(ch, taskRead, prometheus.GaugeValue, float64(task.ReadBytes), task.Cmd)
		c.send(ch, taskWrite, prometheus.GaugeValue, float64(task.WriteBytes), task.Cmd)
		c.send(ch, taskCancelled, prometheus.GaugeValue, float64(task.CancelledWriteBytes), task.Cmd)
	}
}

func (c *collector) collectEMMC(ch chan<- prometheus.Metric, info *ios.EMMCInfo) {
	c.send(ch, emmcPreEOL, prometheus.GaugeValue, float64(info.PreEOL))
	if info.LifeTimeEst {
		c.send(ch, emmcLifeTime, prometheus.GaugeValue, float64(info.LifeTimeA), "a")
		c.send(ch, emmcLifeTime, prometheus.GaugeValue, float64(info.LifeTimeB), "b")
	}
}

func (c *collector) send(ch chan<- prometheus.Metric, name string, typ prometheus.ValueType, fv float64, variableLabels ...string) {
	desc, ok := c.promDesc[name]
	debug.Assert(ok, name)
	m, err := prometheus.NewConstMetric(desc, typ, fv, variableLabels...)
	debug.AssertNoErr(err)
	if err == nil {
		ch <- m
	}
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

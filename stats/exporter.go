// Package stats exports disk monitor, process I/O, and flash health metrics to Prometheus.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package stats

import (
	"net/http"

	"github.com/NVIDIA/iomon/ios"
	"github.com/NVIDIA/iomon/sys"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "iomon"

// default cardinality bound on per-command series
const DefaultTopTasks = 32

type (
	// Sources are the live objects sampled on every scrape
	Sources struct {
		Monitor  *ios.Monitor
		Tasks    *sys.Tasks
		EMMC     func() (ios.EMMCInfo, bool)
		Device   string
		TopTasks int
	}

	// Exporter owns a private registry: scrape-time collector plus
	// event-driven counters and gauges updated by the daemon.
	Exporter struct {
		reg     *prometheus.Registry
		coll    *collector
		stalls  counterVec
		load    gaugeVec
		running gauge
		exited  counter
		period  gaugeVec
	}
)

func NewExporter(src *Sources) *Exporter {
	if src.TopTasks <= 0 {
		src.TopTasks = DefaultTopTasks
	}
	e := &Exporter{
		reg:  prometheus.NewRegistry(),
		coll: newCollector(src),
	}
	constLabels := prometheus.Labels{"device": src.Device}
	e.stalls = counterVec{prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   "disk",
		Name:        "stall_events_total",
		Help:        "number of stall onsets and recoveries",
		ConstLabels: constLabels,
	}, []string{"kind"})}
	e.period = gaugeVec{prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   "disk",
		Name:        "period_perf",
		Help:        "rates over the last published period",
		ConstLabels: constLabels,
	}, []string{"metric"})}
	e.load = gaugeVec{prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "load_average",
		Help:      "system load average",
	}, []string{"period"})}
	e.running = gauge{prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "tasks",
		Name:      "running",
		Help:      "number of live processes",
	})}
	e.exited = counter{prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tasks",
		Name:      "exited_total",
		Help:      "number of processes retired into the per-command history",
	})}
	e.reg.MustRegister(
		e.coll,
		e.stalls,
		e.period,
		e.load,
		e.running,
		e.exited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)
	return e
}

func (e *Exporter) Registry() *prometheus.Registry { return e.reg }

func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.reg, promhttp.HandlerOpts{Registry: e.reg})
}

//
// event-driven updates
//

const (
	StallOnset    = "onset"
	StallRecovery = "recovery"
)

func (e *Exporter) StallEvent(kind string) { e.stalls.inc(kind) }

func (e *Exporter) SetLoad(load1, load5, load15 float64) {
	e.load.set("1m", load1)
	e.load.set("5m", load5)
	e.load.set("15m", load15)
}

func (e *Exporter) TasksUpdated(us sys.UpdateStats) {
	e.running.Set(float64(us.Running))
	e.exited.Add(float64(us.Exited))
}

func (e *Exporter) Published(s *ios.Summary) {
	s.Perf.Range(e.period.set)
	e.period.set("io_avg", s.Stats.IOAvg)
}

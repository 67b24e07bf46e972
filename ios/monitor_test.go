// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"bytes"
	"sync"

	"github.com/tinylib/msgp/msgp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func uniformPerf(v float64) DiskPerf {
	return DiskPerf{ReadPerf: v, ReadIOs: v, WritePerf: v, WriteIOs: v, Queue: v}
}

// deviate moves every metric by `by` in the unfavorable direction
func deviate(mean, std DiskPerf, i float64) DiskPerf {
	return DiskPerf{
		ReadPerf:  mean.ReadPerf - i*std.ReadPerf,
		ReadIOs:   mean.ReadIOs - i*std.ReadIOs,
		WritePerf: mean.WritePerf - i*std.WritePerf,
		WriteIOs:  mean.WriteIOs - i*std.WriteIOs,
		Queue:     mean.Queue + i*std.Queue,
	}
}

// push adds samples and refreshes the baseline holding the lock, as Update does
func push(m *Monitor, perfs ...DiskPerf) {
	m.mu.Lock()
	for i := range perfs {
		m.add(&perfs[i])
	}
	m.refreshBaseline()
	m.mu.Unlock()
}

func detect(m *Monitor, perf DiskPerf) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.detect(&perf)
}

func addStats(a, b DiskStats) DiskStats {
	return DiskStats{
		ReadIOs:      a.ReadIOs + b.ReadIOs,
		ReadMerges:   a.ReadMerges + b.ReadMerges,
		ReadSectors:  a.ReadSectors + b.ReadSectors,
		ReadTicks:    a.ReadTicks + b.ReadTicks,
		WriteIOs:     a.WriteIOs + b.WriteIOs,
		WriteMerges:  a.WriteMerges + b.WriteMerges,
		WriteSectors: a.WriteSectors + b.WriteSectors,
		WriteTicks:   a.WriteTicks + b.WriteTicks,
		IOInFlight:   a.IOInFlight + b.IOInFlight,
		IOTicks:      a.IOTicks + b.IOTicks,
		IOInQueue:    a.IOInQueue + b.IOInQueue,
		EndTime:      a.EndTime + b.EndTime,
	}
}

var (
	normInc = DiskStats{
		ReadIOs:      200,
		ReadSectors:  200,
		ReadTicks:    200,
		WriteIOs:     100,
		WriteSectors: 100,
		WriteTicks:   100,
		IOTicks:      600,
		IOInQueue:    300,
		EndTime:      100,
	}
	stallInc = DiskStats{
		ReadIOs:      200,
		ReadSectors:  20,
		ReadTicks:    200,
		WriteIOs:     100,
		WriteSectors: 10,
		WriteTicks:   100,
		IOTicks:      600,
		IOInQueue:    1200,
		EndTime:      100,
	}
)

var _ = Describe("Monitor", func() {
	Describe("detect", func() {
		// [9, 11, 9, 11] * k has mean 10k and std k, exactly, for k a power of 2
		DescribeTable("trips iff the deviation exceeds sigma*std",
			func(k, sigma float64) {
				m := NewMonitor(4, sigma)
				push(m, uniformPerf(9*k), uniformPerf(11*k), uniformPerf(9*k), uniformPerf(11*k))
				Expect(m.Valid()).To(BeTrue())
				mean, std := m.Baseline()
				Expect(mean).To(Equal(uniformPerf(10 * k)))
				Expect(std).To(Equal(uniformPerf(k)))

				for i := 0.0; i < 2*sigma; i += 0.5 {
					Expect(detect(m, deviate(mean, std, i))).To(Equal(i > sigma), "i=%.1f sigma=%.1f", i, sigma)
				}
			},
			Entry("k=1, sigma=1", 1.0, 1.0),
			Entry("k=4, sigma=1.5", 4.0, 1.5),
			Entry("k=1024, sigma=2", 1024.0, 2.0),
			Entry("k=1/8, sigma=3", 0.125, 3.0),
		)

		It("tolerates nothing when std is zero", func() {
			norm := DiskPerf{ReadPerf: 10 * 1024, ReadIOs: 50, WritePerf: 5 * 1024, WriteIOs: 25, Queue: 5}
			for _, sigma := range []float64{0, 1, 3, 100} {
				m := NewMonitor(5, sigma)
				push(m, norm, norm, norm, norm, norm)
				_, std := m.Baseline()
				Expect(std).To(Equal(DiskPerf{}))

				Expect(detect(m, norm)).To(BeFalse())

				better := norm
				better.ReadPerf *= 2
				better.Queue = 1
				Expect(detect(m, better)).To(BeFalse())

				slower := norm
				slower.WriteIOs -= 0.5
				Expect(detect(m, slower)).To(BeTrue())

				deeper := norm
				deeper.Queue += 0.01
				Expect(detect(m, deeper)).To(BeTrue())
			}
		})

		It("flags a halved read throughput", func() {
			m := NewMonitor(3, 2)
			push(m, DiskPerf{ReadPerf: 100}, DiskPerf{ReadPerf: 100}, DiskPerf{ReadPerf: 100})
			perf := DiskPerf{ReadPerf: 50}
			Expect(detect(m, perf)).To(BeTrue())
			m.mu.Lock()
			mask := m.trips(&perf)
			m.mu.Unlock()
			Expect(trippedNames(mask)).To(Equal([]string{"read_perf"}))
		})
	})

	Describe("window", func() {
		It("evicts the oldest sample", func() {
			m := NewMonitor(3, 1)
			push(m, uniformPerf(1), uniformPerf(2), uniformPerf(3), uniformPerf(4))
			r := m.Report()
			Expect(r.Fill).To(Equal(3))
			Expect(r.Mean.ReadPerf).To(Equal(3.0))
			m.mu.Lock()
			n := m.stats[mQueue].n
			m.mu.Unlock()
			Expect(n).To(Equal(3))
		})
	})

	Describe("Update", func() {
		const (
			window = 20
			sigma  = 3.0
		)
		var (
			m    *Monitor
			base DiskStats
		)
		BeforeEach(func() {
			m = NewMonitor(window, sigma)
			base = DiskStats{}
			_, _, ok := m.Update(&base)
			Expect(ok).To(BeFalse())
		})

		feed := func(inc DiskStats) bool {
			base = addStats(base, inc)
			_, _, ok := m.Update(&base)
			return ok
		}

		It("computes rates from increments", func() {
			Expect(feed(normInc)).To(BeTrue())
			r := m.Report()
			Expect(r.Last).To(Equal(DiskPerf{
				ReadPerf:  200 * SectorSize * 10,
				ReadIOs:   2000,
				WritePerf: 100 * SectorSize * 10,
				WriteIOs:  1000,
				Queue:     3,
			}))
			Expect(r.Samples).To(BeEquivalentTo(1))
		})

		It("becomes valid at a full window and detects a stall", func() {
			for i := range 100 {
				Expect(feed(normInc)).To(BeTrue())
				Expect(m.Valid()).To(Equal(i+1 >= window), "i=%d", i)
				Expect(m.Stall()).To(BeFalse())
			}

			Expect(feed(stallInc)).To(BeTrue())
			Expect(m.Valid()).To(BeTrue())
			Expect(m.Stall()).To(BeTrue())
			Expect(m.Report().Tripped).To(ConsistOf("read_perf", "write_perf", "queue"))

			for range 10 {
				Expect(feed(normInc)).To(BeTrue())
				Expect(m.Valid()).To(BeTrue())
				Expect(m.Stall()).To(BeFalse())
			}
		})

		It("never reports a stall before the window fills", func() {
			for range window - 2 {
				feed(normInc)
			}
			feed(stallInc)
			Expect(m.Valid()).To(BeFalse())
			Expect(m.Stall()).To(BeFalse())
		})

		It("clears the stall on a discarded read and stays valid", func() {
			for range window {
				feed(normInc)
			}
			feed(stallInc)
			Expect(m.Stall()).To(BeTrue())

			// counter reset
			reset := DiskStats{ReadIOs: 1, EndTime: base.EndTime + 100}
			_, _, ok := m.Update(&reset)
			Expect(ok).To(BeFalse())
			Expect(m.Stall()).To(BeFalse())
			Expect(m.Valid()).To(BeTrue())
			Expect(m.Report().Discarded).To(BeEquivalentTo(1))

			// differencing resumes from the reset snapshot
			base = reset
			Expect(feed(normInc)).To(BeTrue())
			Expect(m.Report().Last.ReadIOs).To(Equal(2000.0))
		})

		It("discards zero elapsed time", func() {
			feed(normInc)
			same := base
			same.ReadIOs += 10
			_, _, ok := m.Update(&same)
			Expect(ok).To(BeFalse())
			Expect(m.Report().Fill).To(Equal(1))
		})

		It("keeps reports consistent while updating concurrently", func() {
			const samples = 5 * window
			var (
				wg   sync.WaitGroup
				done = make(chan struct{})
			)
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				defer close(done)
				for range samples {
					feed(normInc)
				}
			}()

			var wasValid bool
		loop:
			for {
				r := m.Report()
				Expect(r.Fill).To(BeNumerically("<=", r.Window))
				Expect(r.Valid).To(Equal(r.Fill == r.Window), "%+v", r)
				Expect(r.Valid || !wasValid).To(BeTrue(), "valid reverted")
				Expect(r.Stall).To(BeFalse())
				wasValid = wasValid || r.Valid
				if m.Valid() {
					mean, _ := m.Baseline()
					Expect(mean.ReadPerf).To(BeNumerically(">", 0))
				}
				select {
				case <-done:
					break loop
				default:
				}
			}
			wg.Wait()

			r := m.Report()
			Expect(r.Samples).To(BeEquivalentTo(samples))
			Expect(r.Valid).To(BeTrue())
		})

		It("ignores in-flight decreasing", func() {
			inc := normInc
			inc.IOInFlight = 7
			feed(inc)
			base.IOInFlight = 0
			base = addStats(base, normInc)
			_, _, ok := m.Update(&base)
			Expect(ok).To(BeTrue())
		})
	})

	Describe("msgpack", func() {
		It("round-trips the report", func() {
			in := MonitorReport{
				Mean: uniformPerf(10), Std: uniformPerf(1), Last: uniformPerf(4),
				Tripped: []string{"read_perf", "queue"},
				Samples: 42, Discarded: 1, Sigma: 3, Window: 20, Fill: 20, Valid: true, Stall: true,
			}
			var buf bytes.Buffer
			w := msgp.NewWriter(&buf)
			Expect(in.EncodeMsg(w)).To(Succeed())
			Expect(w.Flush()).To(Succeed())
			Expect(buf.Len()).To(BeNumerically("<=", in.Msgsize()))

			var out MonitorReport
			Expect(out.DecodeMsg(msgp.NewReader(&buf))).To(Succeed())
			Expect(out).To(Equal(in))
		})

		It("rejects a tripped list longer than the metric count", func() {
			b := msgp.AppendMapHeader(nil, 1)
			b = msgp.AppendString(b, "tripped")
			b = msgp.AppendArrayHeader(b, 1<<31)
			var out MonitorReport
			Expect(out.DecodeMsg(msgp.NewReader(bytes.NewReader(b)))).To(MatchError(msgp.ErrLimitExceeded))

			in := MonitorReport{Tripped: make([]string, numPerf+1)}
			var buf bytes.Buffer
			w := msgp.NewWriter(&buf)
			Expect(in.EncodeMsg(w)).To(Succeed())
			Expect(w.Flush()).To(Succeed())
			Expect(out.DecodeMsg(msgp.NewReader(&buf))).To(MatchError(msgp.ErrLimitExceeded))
		})
	})
})

// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/ios"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const statLine = "  195330     5371 12133722   123062    72616    69412  2969880   466290        3   175356   589403        0        0        0        0\n"

func writeStat(dir, disk, line string) string {
	fqn := ios.StatPath(dir, disk)
	Expect(os.MkdirAll(filepath.Dir(fqn), 0o755)).To(Succeed())
	Expect(os.WriteFile(fqn, []byte(line), cos.PermRWR)).To(Succeed())
	return fqn
}

func statOf(s ios.DiskStats) string {
	return fmt.Sprintf("%d %d %d %d %d %d %d %d %d %d %d 0 0 0 0\n",
		s.ReadIOs, s.ReadMerges, s.ReadSectors, s.ReadTicks, s.WriteIOs, s.WriteMerges, s.WriteSectors,
		s.WriteTicks, s.IOInFlight, s.IOTicks, s.IOInQueue)
}

var _ = Describe("DiskStats", func() {
	var dir string
	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("reads sysfs stat", func() {
		fqn := writeStat(dir, "sda", statLine)
		ds, err := ios.ReadDiskStats(fqn)
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.ReadIOs).To(BeEquivalentTo(195330))
		Expect(ds.ReadSectors).To(BeEquivalentTo(12133722))
		Expect(ds.WriteIOs).To(BeEquivalentTo(72616))
		Expect(ds.WriteTicks).To(BeEquivalentTo(466290))
		Expect(ds.IOInFlight).To(BeEquivalentTo(3))
		Expect(ds.IOTicks).To(BeEquivalentTo(175356))
		Expect(ds.IOInQueue).To(BeEquivalentTo(589403))
		Expect(ds.EndTime).To(BeNumerically(">", 0))
	})

	It("leaves the previous value intact on failure", func() {
		fqn := writeStat(dir, "sda", statLine)
		good, err := ios.ReadDiskStats(fqn)
		Expect(err).NotTo(HaveOccurred())

		stats := good
		if ds, err := ios.ReadDiskStats("/this/is/wrong"); err == nil {
			stats = ds
		} else {
			Expect(cos.IsNotExist(err)).To(BeTrue())
		}
		Expect(stats).To(Equal(good))

		short := writeStat(dir, "sdb", "1 2 3\n")
		_, err = ios.ReadDiskStats(short)
		Expect(err).To(HaveOccurred())

		garbage := writeStat(dir, "sdc", "1 2 3 4 5 6 7 8 9 ten 11\n")
		_, err = ios.ReadDiskStats(garbage)
		Expect(err).To(HaveOccurred())
	})

	It("parses /proc/diskstats", func() {
		lines := "   8       0 sda" + statLine + "   8       1 sda1 10 0 20 0 0 0 0 0 0 0 0\n"
		fqn := filepath.Join(dir, "diskstats")
		Expect(os.WriteFile(fqn, []byte(lines), cos.PermRWR)).To(Succeed())

		ds, err := ios.ReadProcDiskstats(fqn, "sda1")
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.ReadIOs).To(BeEquivalentTo(10))
		Expect(ds.ReadSectors).To(BeEquivalentTo(20))

		ds, ok := ios.ParseDiskstatsLine("   8       0 sda"+statLine, "sda")
		Expect(ok).To(BeTrue())
		Expect(ds.IOInQueue).To(BeEquivalentTo(589403))

		_, ok = ios.ParseDiskstatsLine("   8       0 sda"+statLine, "sdb")
		Expect(ok).To(BeFalse())

		_, err = ios.ReadProcDiskstats(fqn, "nvme0n1")
		Expect(cos.IsErrNotFound(err)).To(BeTrue())

		// ReadStats picks the format by file name
		ds, err = ios.ReadStats(fqn, "sda1")
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.ReadIOs).To(BeEquivalentTo(10))
		sysfs := writeStat(dir, "sda", "10 0 20 0 0 0 0 0 0 0 0\n")
		ds, err = ios.ReadStats(sysfs, "ignored")
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.ReadSectors).To(BeEquivalentTo(20))
	})

	It("accumulates increments to the overall increment", func() {
		var (
			fqn   = filepath.Join(dir, "stat")
			cur   = ios.DiskStats{ReadIOs: 1000, ReadSectors: 8000, WriteIOs: 10, IOTicks: 50, IOInQueue: 70}
			base  ios.DiskStats
			prev  ios.DiskStats
			acc   ios.DiskStats
			steps = []ios.DiskStats{
				{ReadIOs: 5, ReadMerges: 1, ReadSectors: 40, ReadTicks: 3, IOInFlight: 2, IOTicks: 4, IOInQueue: 9},
				{WriteIOs: 7, WriteMerges: 2, WriteSectors: 56, WriteTicks: 11, IOInFlight: 0, IOTicks: 12, IOInQueue: 30},
				{ReadIOs: 1, WriteIOs: 1, ReadSectors: 8, WriteSectors: 8, IOInFlight: 5, IOTicks: 1, IOInQueue: 2},
				{},
			}
		)
		for i := -1; i < len(steps); i++ {
			if i >= 0 {
				s := steps[i]
				cur = ios.DiskStats{
					ReadIOs: cur.ReadIOs + s.ReadIOs, ReadMerges: cur.ReadMerges + s.ReadMerges,
					ReadSectors: cur.ReadSectors + s.ReadSectors, ReadTicks: cur.ReadTicks + s.ReadTicks,
					WriteIOs: cur.WriteIOs + s.WriteIOs, WriteMerges: cur.WriteMerges + s.WriteMerges,
					WriteSectors: cur.WriteSectors + s.WriteSectors, WriteTicks: cur.WriteTicks + s.WriteTicks,
					IOInFlight: s.IOInFlight, IOTicks: cur.IOTicks + s.IOTicks, IOInQueue: cur.IOInQueue + s.IOInQueue,
				}
			}
			Expect(os.WriteFile(fqn, []byte(statOf(cur)), cos.PermRWR)).To(Succeed())
			ds, err := ios.ReadDiskStats(fqn)
			Expect(err).NotTo(HaveOccurred())
			if i < 0 {
				base, prev = ds, ds
				continue
			}
			Expect(ds.Regressed(&prev)).To(BeFalse())
			inc := ds.Sub(&prev)
			acc.Add(&inc)
			prev = ds
		}
		overall := prev.Sub(&base)
		Expect(acc.Counter).To(BeEquivalentTo(len(steps)))

		// everything but the in-flight gauge
		overall.IOInFlight, acc.IOInFlight = 0, 0
		overall.Counter, overall.IOAvg = acc.Counter, acc.IOAvg
		Expect(acc).To(Equal(overall))
		Expect(acc.IOAvg).To(BeNumerically("~", (2.0+0+5+0)/4))
	})

	It("detects regressions but not in-flight drops", func() {
		prev := ios.DiskStats{ReadIOs: 10, IOInFlight: 4, EndTime: 100}
		cur := prev
		cur.IOInFlight = 0
		cur.EndTime = 200
		Expect(cur.Regressed(&prev)).To(BeFalse())

		cur.ReadIOs = 9
		Expect(cur.Regressed(&prev)).To(BeTrue())

		cur.ReadIOs, cur.EndTime = 10, 50
		Expect(cur.Regressed(&prev)).To(BeTrue())
	})

	It("converts an increment into rates", func() {
		inc := ios.DiskStats{
			ReadIOs: 50, ReadSectors: 2048, WriteIOs: 20, WriteSectors: 1024, IOInQueue: 1500,
			StartTime: 1000, EndTime: 3000,
		}
		perf, ok := ios.PerfOf(&inc)
		Expect(ok).To(BeTrue())
		Expect(perf.ReadPerf).To(Equal(2048.0 * 512 / 2))
		Expect(perf.ReadIOs).To(Equal(25.0))
		Expect(perf.WritePerf).To(Equal(1024.0 * 512 / 2))
		Expect(perf.WriteIOs).To(Equal(10.0))
		Expect(perf.Queue).To(Equal(0.75))

		inc.EndTime = inc.StartTime
		_, ok = ios.PerfOf(&inc)
		Expect(ok).To(BeFalse())
	})
})

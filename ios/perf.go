// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"fmt"

	"github.com/NVIDIA/iomon/cmn/cos"
)

// metric indices
const (
	mReadPerf = iota
	mReadIOs
	mWritePerf
	mWriteIOs
	mQueue

	numPerf
)

var perfNames = [numPerf]string{"read_perf", "read_ios", "write_perf", "write_ios", "queue"}

func (p *DiskPerf) fields() [numPerf]float64 {
	return [numPerf]float64{p.ReadPerf, p.ReadIOs, p.WritePerf, p.WriteIOs, p.Queue}
}

func perfFrom(f [numPerf]float64) DiskPerf {
	return DiskPerf{ReadPerf: f[mReadPerf], ReadIOs: f[mReadIOs], WritePerf: f[mWritePerf], WriteIOs: f[mWriteIOs], Queue: f[mQueue]}
}

// PerfOf converts an increment (see DiskStats.Sub) into rates;
// returns false when the interval is empty.
func PerfOf(inc *DiskStats) (perf DiskPerf, ok bool) {
	ms := inc.ElapsedMs()
	if ms <= 0 {
		return perf, false
	}
	// per second: scale by 1000 before dividing by milliseconds
	elapsed := float64(ms)
	perf = DiskPerf{
		ReadPerf:  float64(inc.ReadSectors) * SectorSize * 1000 / elapsed,
		ReadIOs:   float64(inc.ReadIOs) * 1000 / elapsed,
		WritePerf: float64(inc.WriteSectors) * SectorSize * 1000 / elapsed,
		WriteIOs:  float64(inc.WriteIOs) * 1000 / elapsed,
		Queue:     float64(inc.IOInQueue) / elapsed,
	}
	return perf, true
}

func (p *DiskPerf) String() string {
	return fmt.Sprintf("rd %s (%.1f iops) wr %s (%.1f iops) q %.2f",
		cos.ToRateIEC(p.ReadPerf, 1), p.ReadIOs, cos.ToRateIEC(p.WritePerf, 1), p.WriteIOs, p.Queue)
}

// Range visits the metrics in a fixed order using their wire names
func (p *DiskPerf) Range(fn func(name string, v float64)) {
	f := p.fields()
	for i := range numPerf {
		fn(perfNames[i], f[i])
	}
}

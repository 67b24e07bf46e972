// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/mono"

	"github.com/pkg/errors"
)

// The "sectors" in question are the standard UNIX 512-byte sectors, not any device- or filesystem-specific block size
// (from https://www.kernel.org/doc/Documentation/block/stat.txt)
const SectorSize = 512

// number of leading counters in a sysfs stat line that we consume
const numCounters = 11

// Based on:
// - https://www.kernel.org/doc/Documentation/iostats.txt
// - https://www.kernel.org/doc/Documentation/block/stat.txt
type DiskStats struct {
	ReadIOs      uint64 `json:"read_ios"`      // 1 - # of reads completed
	ReadMerges   uint64 `json:"read_merges"`   // 2 - # of reads merged
	ReadSectors  uint64 `json:"read_sectors"`  // 3 - # of sectors read
	ReadTicks    uint64 `json:"read_ticks"`    // 4 - # ms spent reading
	WriteIOs     uint64 `json:"write_ios"`     // 5 - # writes completed
	WriteMerges  uint64 `json:"write_merges"`  // 6 - # writes merged
	WriteSectors uint64 `json:"write_sectors"` // 7 - # of sectors written
	WriteTicks   uint64 `json:"write_ticks"`   // 8 - # of milliseconds spent writing
	IOInFlight   uint64 `json:"io_in_flight"`  // 9 - # of I/Os currently in progress (gauge)
	IOTicks      uint64 `json:"io_ticks"`      // 10 - # of milliseconds spent doing I/Os
	IOInQueue    uint64 `json:"io_in_queue"`   // 11 - weighted # of milliseconds spent doing I/Os

	StartTime int64 `json:"start_time"` // ms
	EndTime   int64 `json:"end_time"`   // ms

	// publisher bookkeeping
	Counter uint64  `json:"counter"`
	IOAvg   float64 `json:"io_avg"`
}

// counters returns pointers to the 11 kernel counters, in sysfs order
func (ds *DiskStats) counters() [numCounters]*uint64 {
	return [numCounters]*uint64{
		&ds.ReadIOs, &ds.ReadMerges, &ds.ReadSectors, &ds.ReadTicks,
		&ds.WriteIOs, &ds.WriteMerges, &ds.WriteSectors, &ds.WriteTicks,
		&ds.IOInFlight, &ds.IOTicks, &ds.IOInQueue,
	}
}

const inFlightIdx = 8

func (ds *DiskStats) IsZero() bool {
	for _, c := range ds.counters() {
		if *c != 0 {
			return false
		}
	}
	return ds.EndTime == 0
}

// Regressed returns true if any monotonic counter of ds is smaller than in prev
// (IOInFlight excluded) or the end timestamp went backwards.
func (ds *DiskStats) Regressed(prev *DiskStats) bool {
	cur, old := ds.counters(), prev.counters()
	for i := range cur {
		if i != inFlightIdx && *cur[i] < *old[i] {
			return true
		}
	}
	return ds.EndTime < prev.EndTime
}

// Sub returns the increment from prev to ds; IOInFlight is taken as-is
// and the resulting interval is [prev.EndTime, ds.EndTime].
// The caller checks Regressed first.
func (ds *DiskStats) Sub(prev *DiskStats) (inc DiskStats) {
	cur, old, out := ds.counters(), prev.counters(), inc.counters()
	for i := range cur {
		if i == inFlightIdx {
			*out[i] = *cur[i]
		} else {
			*out[i] = *cur[i] - *old[i]
		}
	}
	inc.StartTime, inc.EndTime = prev.EndTime, ds.EndTime
	return inc
}

// Add accumulates increment inc into ds; IOInFlight is averaged (IOAvg) rather
// than summed, and Counter counts accumulated intervals.
func (ds *DiskStats) Add(inc *DiskStats) {
	dst, src := ds.counters(), inc.counters()
	for i := range dst {
		if i != inFlightIdx {
			*dst[i] += *src[i]
		}
	}
	if ds.Counter == 0 {
		ds.StartTime = inc.StartTime
	}
	ds.IOInFlight = inc.IOInFlight
	ds.IOAvg = (ds.IOAvg*float64(ds.Counter) + float64(inc.IOInFlight)) / float64(ds.Counter+1)
	ds.Counter++
	if inc.EndTime > ds.EndTime {
		ds.EndTime = inc.EndTime
	}
}

// ElapsedMs is the length of the [StartTime, EndTime] interval
func (ds *DiskStats) ElapsedMs() int64 { return ds.EndTime - ds.StartTime }

func (ds *DiskStats) String() string {
	return fmt.Sprintf("rd(%d ios, %d sectors) wr(%d ios, %d sectors) inflight %d ticks %d queue %d",
		ds.ReadIOs, ds.ReadSectors, ds.WriteIOs, ds.WriteSectors, ds.IOInFlight, ds.IOTicks, ds.IOInQueue)
}

/////////////
// readers //
/////////////

// ReadDiskStats reads a sysfs block-device `stat` file (e.g. /sys/block/sda/stat)
// and stamps the result with the current monotonic time in milliseconds.
func ReadDiskStats(path string) (ds DiskStats, err error) {
	line, err := cos.ReadOneLine(path)
	if err != nil {
		return ds, errors.Wrapf(err, "failed to read disk stats %q", path)
	}
	if err = ds.parse(strings.Fields(line)); err != nil {
		return DiskStats{}, errors.Wrapf(err, "%q", path)
	}
	ds.EndTime = mono.MilliTime()
	return ds, nil
}

// ReadStats reads either a sysfs stat file or, when path names a
// diskstats table (e.g. /proc/diskstats), the line of dev in it
func ReadStats(path, dev string) (DiskStats, error) {
	if filepath.Base(path) == "diskstats" {
		return ReadProcDiskstats(path, dev)
	}
	return ReadDiskStats(path)
}

// ReadProcDiskstats finds the named device in /proc/diskstats
func ReadProcDiskstats(path, dev string) (ds DiskStats, err error) {
	var found bool
	err = cos.ReadLines(path, func(line string) error {
		if parsed, ok := ParseDiskstatsLine(line, dev); ok {
			ds, found = parsed, true
			return io.EOF
		}
		return nil
	})
	if err != nil {
		return ds, errors.Wrapf(err, "failed to read %q", path)
	}
	if !found {
		return ds, cos.NewErrNotFound(nil, "device "+dev+" in "+path)
	}
	ds.EndTime = mono.MilliTime()
	return ds, nil
}

// ParseDiskstatsLine parses one /proc/diskstats line, which carries three
// leading fields (major, minor, name) ahead of the sysfs counters.
func ParseDiskstatsLine(line, dev string) (ds DiskStats, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 3+numCounters || fields[2] != dev {
		return ds, false
	}
	if err := ds.parse(fields[3:]); err != nil {
		return DiskStats{}, false
	}
	return ds, true
}

func (ds *DiskStats) parse(fields []string) error {
	if len(fields) < numCounters {
		return fmt.Errorf("expecting at least %d fields, got %d", numCounters, len(fields))
	}
	for i, c := range ds.counters() {
		v, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "field %d", i+1)
		}
		*c = v
	}
	return nil
}

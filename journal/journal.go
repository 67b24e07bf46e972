// Package journal keeps a time-ordered, self-expiring record of disk stall onsets and recoveries.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package journal

import (
	"fmt"
	"strconv"
	"sync"
	ratomic "sync/atomic"
	"time"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/nlog"
	"github.com/NVIDIA/iomon/ios"

	"github.com/pkg/errors"
)

const stallCollection = "stall"

const (
	KindOnset    = "onset"
	KindRecovery = "recovery"
)

type (
	Event struct {
		Time   time.Time    `json:"time"`
		Device string       `json:"device"`
		RunID  string       `json:"run_id"`
		Kind   string       `json:"kind"`
		Sample ios.DiskPerf `json:"sample"`
		Mean   ios.DiskPerf `json:"mean"`
		Std    ios.DiskPerf `json:"std"`
		Load   float64      `json:"load"`
	}
	Journal struct {
		driver  Driver
		ttl     time.Duration
		last    int64 // last key, to keep keys unique
		dropped ratomic.Int64
		mu      sync.Mutex
	}
)

func (ev *Event) String() string {
	return fmt.Sprintf("%s %s %s: %s", ev.Time.Format(time.RFC3339), ev.Device, ev.Kind, ev.Sample.String())
}

// Open opens the journal at path (":memory:" for a volatile one);
// events older than ttl expire.
func Open(path string, ttl time.Duration) (*Journal, error) {
	driver, err := NewBuntDB(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open journal %q", path)
	}
	return New(driver, ttl), nil
}

func New(driver Driver, ttl time.Duration) *Journal {
	return &Journal{driver: driver, ttl: ttl}
}

func (j *Journal) Record(ev *Event) error {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	j.mu.Lock()
	ts := max(ev.Time.UnixNano(), j.last+1)
	j.last = ts
	j.mu.Unlock()
	key := fmt.Sprintf("%020d", ts)
	return j.driver.SetString(stallCollection, key, string(cos.MustMarshal(ev)), j.ttl)
}

// Recent returns up to n most recent events, newest first; n <= 0: all.
// Entries that fail to decode are skipped and then deleted.
func (j *Journal) Recent(n int) ([]Event, error) {
	var (
		events  []Event
		corrupt []string
		errs    = cos.NewErrs()
	)
	err := j.driver.Descend(stallCollection, n, func(key, value string) bool {
		var ev Event
		if err := cos.JSON.UnmarshalFromString(value, &ev); err != nil {
			corrupt = append(corrupt, key)
			errs.Add(fmt.Errorf("entry %s: %w", keyString(key), err))
			return true
		}
		events = append(events, ev)
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(corrupt) > 0 {
		nlog.Warningf("journal: dropping %d corrupted record%s: %s", len(corrupt), cos.Plural(len(corrupt)), errs.Error())
		for _, key := range corrupt {
			if err := j.driver.Delete(stallCollection, key); err != nil && !IsErrNotFound(err) {
				nlog.Errorln("journal:", err)
			}
		}
		j.dropped.Add(int64(len(corrupt)))
	}
	return events, nil
}

// Dropped returns the number of corrupted entries deleted so far
func (j *Journal) Dropped() int64 { return j.dropped.Load() }

func (j *Journal) Len() (int, error) { return j.driver.Count(stallCollection) }

func (j *Journal) Shrink() error { return j.driver.Shrink() }

func (j *Journal) Close() error { return j.driver.Close() }

// ParseKey converts event key back to its timestamp
func ParseKey(key string) (time.Time, error) {
	ns, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, ns), nil
}

func keyString(key string) string {
	if at, err := ParseKey(key); err == nil {
		return at.Format(time.RFC3339Nano)
	}
	return strconv.Quote(key)
}

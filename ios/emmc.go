// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// eMMC EXT_CSD register (JEDEC JESD84-B51), exposed by debugfs as a hex string
// of 512 bytes, e.g. /sys/kernel/debug/mmc0/mmc0:0001/ext_csd
const (
	extCSDRevIdx       = 192
	extPreEOLInfoIdx   = 267
	extLifeTimeEstAIdx = 268
	extLifeTimeEstBIdx = 269

	extCSDRev50 = 7 // life-time estimates introduced in eMMC 5.0
)

const (
	DefaultDebugfs = "/sys/kernel/debug"
	extCSDGlob     = "mmc*/mmc*:*/ext_csd"
)

var emmcVersions = [...]string{"4.0", "4.1", "4.2", "4.3", "Obsolete", "4.41", "4.5", "5.0", "5.1"}

type EMMCInfo struct {
	Version     string `json:"version"`
	Revision    uint8  `json:"revision"`
	PreEOL      uint8  `json:"pre_eol"`      // 1: normal, 2: warning, 3: urgent
	LifeTimeA   uint8  `json:"lifetime_a"`   // 1..10: used in 10% steps, 11: exceeded
	LifeTimeB   uint8  `json:"lifetime_b"`   // ditto
	LifeTimeEst bool   `json:"lifetime_est"` // false for revisions before 5.0
}

// ParseEXTCSD decodes the hex dump of the EXT_CSD register
func ParseEXTCSD(hex string) (info EMMCInfo, err error) {
	hex = strings.TrimSpace(hex)
	if info.Revision, err = hexByte(hex, extCSDRevIdx); err != nil {
		return info, err
	}
	if int(info.Revision) < len(emmcVersions) {
		info.Version = emmcVersions[info.Revision]
	} else {
		info.Version = "Unknown"
	}
	if info.Revision < extCSDRev50 {
		return info, nil
	}
	if info.PreEOL, err = hexByte(hex, extPreEOLInfoIdx); err != nil {
		return info, err
	}
	if info.LifeTimeA, err = hexByte(hex, extLifeTimeEstAIdx); err != nil {
		return info, err
	}
	if info.LifeTimeB, err = hexByte(hex, extLifeTimeEstBIdx); err != nil {
		return info, err
	}
	info.LifeTimeEst = true
	return info, nil
}

func hexByte(hex string, idx int) (uint8, error) {
	off := idx * 2
	if len(hex) < off+2 {
		return 0, fmt.Errorf("ext_csd too short: %d chars, need byte %d", len(hex), idx)
	}
	v, err := strconv.ParseUint(hex[off:off+2], 16, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "ext_csd byte %d", idx)
	}
	return uint8(v), nil
}

func ReadEMMC(path string) (info EMMCInfo, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return info, errors.Wrapf(err, "failed to read %q", path)
	}
	return ParseEXTCSD(string(b))
}

func (info *EMMCInfo) PreEOLString() string {
	switch info.PreEOL {
	case 1:
		return "normal"
	case 2:
		return "warning"
	case 3:
		return "urgent"
	default:
		return "undefined"
	}
}

// LifeTimeString formats a life-time estimate byte as a used-percentage range
func LifeTimeString(est uint8) string {
	switch {
	case est == 0:
		return "undefined"
	case est <= 10:
		return fmt.Sprintf("%d%%-%d%%", (est-1)*10, est*10)
	case est == 11:
		return "exceeded"
	default:
		return "reserved"
	}
}

// FindEXTCSD returns the first ext_csd register file under debugfs, if any
func FindEXTCSD(debugfs string) string {
	matches, err := filepath.Glob(filepath.Join(debugfs, extCSDGlob))
	if err != nil || len(matches) == 0 {
		return ""
	}
	return matches[0]
}

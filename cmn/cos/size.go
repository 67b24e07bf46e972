// Package cos provides common low-level types and utilities for all iomon packages
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"math"
	"strconv"
)

// IEC (binary) units
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
)

// ToSizeIEC formats bytes using IEC units with the given number of fractional digits
func ToSizeIEC(b int64, digits int) string {
	switch {
	case b >= TiB:
		return _fmt(float64(b)/float64(TiB), digits) + "TiB"
	case b >= GiB:
		return _fmt(float64(b)/float64(GiB), digits) + "GiB"
	case b >= MiB:
		return _fmt(float64(b)/float64(MiB), digits) + "MiB"
	case b >= KiB:
		return _fmt(float64(b)/float64(KiB), digits) + "KiB"
	default:
		return strconv.FormatInt(b, 10) + "B"
	}
}

// same as above, for rates
func ToRateIEC(bps float64, digits int) string {
	if bps <= 0 || math.IsNaN(bps) {
		return "0B/s"
	}
	return ToSizeIEC(int64(bps), digits) + "/s"
}

func _fmt(f float64, digits int) string {
	return strconv.FormatFloat(f, 'f', digits, 64)
}

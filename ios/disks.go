// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/NVIDIA/iomon/cmn/cos"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

// preferred devices, in order: embedded flash, then the first SCSI/SATA disk
var preferred = []string{"mmcblk0", "sda"}

// fallback name prefixes, in order
var prefixes = []string{"nvme", "vd", "sd", "mmcblk", "xvd"}

// ListDisks returns the sorted names of block devices under sysBlock
// (typically /sys/block) that have a readable `stat` file.
func ListDisks(sysBlock string) ([]string, error) {
	names, err := godirwalk.ReadDirnames(sysBlock, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %q", sysBlock)
	}
	disks := names[:0]
	for _, name := range names {
		if readable(StatPath(sysBlock, name)) {
			disks = append(disks, name)
		}
	}
	sort.Strings(disks)
	return disks, nil
}

// PickDisk selects the device to monitor
func PickDisk(sysBlock string) (string, error) {
	disks, err := ListDisks(sysBlock)
	if err != nil {
		return "", err
	}
	for _, pref := range preferred {
		for _, disk := range disks {
			if disk == pref {
				return disk, nil
			}
		}
	}
	for _, prefix := range prefixes {
		for _, disk := range disks {
			if strings.HasPrefix(disk, prefix) {
				return disk, nil
			}
		}
	}
	return "", cos.NewErrNotFound(nil, "block device under "+sysBlock)
}

func StatPath(sysBlock, disk string) string { return filepath.Join(sysBlock, disk, "stat") }

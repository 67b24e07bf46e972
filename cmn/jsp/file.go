// Package jsp (JSON persistence) provides utilities to store and load arbitrary
// JSON-encoded structures with optional checksumming and compression.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package jsp

import (
	"os"
	"strconv"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/mono"
	"github.com/NVIDIA/iomon/cmn/nlog"
)

// Save writes v to a temporary file and renames it into place
func Save(fqn string, v any, opts Options) (err error) {
	var (
		file *os.File
		tmp  = fqn + ".tmp." + strconv.FormatInt(mono.NanoTime(), 36)
	)
	if file, err = cos.CreateFile(tmp); err != nil {
		return
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if err = Encode(file, v, opts); err != nil {
		file.Close()
		return
	}
	if err = file.Sync(); err != nil {
		file.Close()
		return
	}
	if err = file.Close(); err != nil {
		return
	}
	return os.Rename(tmp, fqn)
}

// Load decodes fqn into v; a file with a bad checksum is removed
func Load(fqn string, v any, opts Options) error {
	file, err := os.Open(fqn)
	if err != nil {
		return err
	}
	err = Decode(file, v, opts, fqn)
	file.Close()
	if err != nil && IsErrBadCksum(err) {
		if errRm := os.Remove(fqn); errRm == nil {
			nlog.Errorf("%v: removed %s", err, fqn)
		} else {
			nlog.Errorf("%v: failed to remove %s: %v", err, fqn, errRm)
		}
	}
	return err
}

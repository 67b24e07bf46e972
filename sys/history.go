// Package sys reads per-process I/O accounting and tracks it across process churn
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package sys

import (
	"time"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/jsp"

	"github.com/pkg/errors"
)

// history file format version
const historyVer = 1

type history struct {
	Old   map[string]TaskInfo `json:"old"`
	RunID string              `json:"run_id"`
	Saved time.Time           `json:"saved"`
}

// Save persists the historical per-command aggregate (compressed and checksummed)
func (t *Tasks) Save(fqn, runID string) error {
	h := history{Old: t.Old(), RunID: runID, Saved: time.Now()}
	if err := jsp.Save(fqn, &h, jsp.CCSign(historyVer)); err != nil {
		return errors.Wrapf(err, "failed to save task history %q", fqn)
	}
	return nil
}

// Load merges a persisted aggregate into t. A missing file is not an error;
// a corrupted one is removed (see jsp.Load) and reported.
func (t *Tasks) Load(fqn string) (n int, err error) {
	var h history
	if err = jsp.Load(fqn, &h, jsp.CCSign(historyVer)); err != nil {
		if cos.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "failed to load task history %q", fqn)
	}
	t.restore(h.Old)
	return len(h.Old), nil
}

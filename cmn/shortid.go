// Package cmn provides common types and utilities for the iomon daemon and its clients
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

// NOTE: `shortid` uses hardcoded 01/2016 as a starting timestamp
import (
	"sync"

	"github.com/NVIDIA/iomon/cmn/mono"

	"github.com/teris-io/shortid"
)

// alphabet similar to shortid.DEFAULT_ABC
const runidABC = "-5nZJDft6LuzsjGNpPwY7rQa39vehq4i1cV2FROo8yHSlC0BUEdWbIxMmTgKXAk_"

var (
	sid  *shortid.Shortid
	once sync.Once
)

func InitShortid(seed uint64) {
	once.Do(func() { sid = shortid.MustNew(1 /*worker*/, runidABC, seed) })
}

// GenRunID generates a short user-friendly id identifying a daemon run
func GenRunID() (id string) {
	InitShortid(uint64(mono.NanoTime()))
	for range 4 {
		var err error
		id, err = sid.Generate()
		if err == nil && id[0] != '-' && id[0] != '_' && id[len(id)-1] != '-' && id[len(id)-1] != '_' {
			return id
		}
	}
	return id
}

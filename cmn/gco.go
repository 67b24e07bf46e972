// Package cmn provides common types and utilities for the iomon daemon and its clients
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	ratomic "sync/atomic"
)

// GCO (Global Config Owner) holds the current configuration; readers
// call Get() and must treat the result as read-only.
type gco struct {
	c ratomic.Pointer[Config]
}

var GCO = newGCO()

func newGCO() *gco {
	g := &gco{}
	g.c.Store(DefaultConfig())
	return g
}

func (gco *gco) Get() *Config       { return gco.c.Load() }
func (gco *gco) Put(config *Config) { gco.c.Store(config) }

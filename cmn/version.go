// Package cmn provides common types and utilities for the iomon daemon and its clients
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

// NOTE: the build number is appended at link time (see cmd/*/main.go)
const (
	VersionIomon = "1.0"
	VersionCLI   = "1.0"
)

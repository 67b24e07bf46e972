// Package journal keeps a time-ordered, self-expiring record of disk stall onsets and recoveries.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package journal

import (
	"fmt"
	"strings"
	"time"
)

// ## Collection ##
//   A collection is a key prefix separated from the key by CollectionSepa.
// ## Keys ##
//   Event keys are zero-padded nanosecond timestamps, so that the key order
//   is the time order.
// ## Errors ##
//   Driver errors are converted to journal errors (see ErrNotFound).

const CollectionSepa = "##"

type (
	Driver interface {
		// sync to disk and release
		Close() error
		// write already marshaled value that expires after ttl (zero: never)
		SetString(collection, key, data string, ttl time.Duration) error
		GetString(collection, key string) (string, error)
		Delete(collection, key string) error
		// visit up to `limit` values in descending key order (zero: all)
		Descend(collection string, limit int, cb func(key, value string) bool) error
		Count(collection string) (int, error)
		// compact the append-only file
		Shrink() error
	}

	ErrNotFound struct {
		collection string
		key        string
	}
)

func makePath(collection, key string) string { return collection + CollectionSepa + key }

// ParsePath extracts collection and key names from the full key path
func ParsePath(path string) (string, string) {
	pos := strings.Index(path, CollectionSepa)
	if pos < 0 {
		return path, ""
	}
	return path[:pos], path[pos+len(CollectionSepa):]
}

func NewErrNotFound(collection, key string) *ErrNotFound {
	return &ErrNotFound{collection: collection, key: key}
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.collection, e.key)
}

func IsErrNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

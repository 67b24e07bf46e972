// Package journal keeps a time-ordered, self-expiring record of disk stall onsets and recoveries.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package journal

import (
	"errors"
	"time"

	"github.com/NVIDIA/iomon/cmn/nlog"

	"github.com/tidwall/buntdb"
)

const autoShrinkSize = 1 << 20 // 1 MiB

type BuntDriver struct {
	driver *buntdb.DB
}

// interface guard
var _ Driver = (*BuntDriver)(nil)

// NewBuntDB opens (or creates) the database; ":memory:" keeps it in memory.
func NewBuntDB(path string) (*BuntDriver, error) {
	driver, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	var cfg buntdb.Config
	if err := driver.ReadConfig(&cfg); err != nil {
		driver.Close()
		return nil, err
	}
	cfg.SyncPolicy = buntdb.EverySecond
	cfg.AutoShrinkMinSize = autoShrinkSize
	if err := driver.SetConfig(cfg); err != nil {
		driver.Close()
		return nil, err
	}
	return &BuntDriver{driver: driver}, nil
}

func buntToCommonErr(err error, collection, key string) error {
	if errors.Is(err, buntdb.ErrNotFound) {
		return NewErrNotFound(collection, key)
	}
	return err
}

func (bd *BuntDriver) Close() error { return bd.driver.Close() }

func (bd *BuntDriver) SetString(collection, key, data string, ttl time.Duration) error {
	var opts *buntdb.SetOptions
	if ttl > 0 {
		opts = &buntdb.SetOptions{Expires: true, TTL: ttl}
	}
	name := makePath(collection, key)
	err := bd.driver.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(name, data, opts)
		return err
	})
	return buntToCommonErr(err, collection, key)
}

func (bd *BuntDriver) GetString(collection, key string) (value string, err error) {
	name := makePath(collection, key)
	err = bd.driver.View(func(tx *buntdb.Tx) error {
		var err error
		value, err = tx.Get(name)
		return err
	})
	return value, buntToCommonErr(err, collection, key)
}

func (bd *BuntDriver) Delete(collection, key string) error {
	name := makePath(collection, key)
	err := bd.driver.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(name)
		return err
	})
	return buntToCommonErr(err, collection, key)
}

func (bd *BuntDriver) Descend(collection string, limit int, cb func(key, value string) bool) error {
	var (
		pattern = makePath(collection, "*")
		cnt     int
	)
	err := bd.driver.View(func(tx *buntdb.Tx) error {
		return tx.DescendKeys(pattern, func(path, value string) bool {
			_, key := ParsePath(path)
			cnt++
			return cb(key, value) && (limit <= 0 || cnt < limit)
		})
	})
	return buntToCommonErr(err, collection, "")
}

func (bd *BuntDriver) Count(collection string) (n int, err error) {
	pattern := makePath(collection, "*")
	err = bd.driver.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(pattern, func(string, string) bool {
			n++
			return true
		})
	})
	return n, err
}

func (bd *BuntDriver) Shrink() error {
	err := bd.driver.Shrink()
	if err != nil && !errors.Is(err, buntdb.ErrShrinkInProcess) {
		return err
	}
	if err != nil {
		nlog.Infoln("journal:", err)
	}
	return nil
}

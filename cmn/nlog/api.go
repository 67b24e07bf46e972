// Package nlog - iomon logger, provides buffering, timestamping, writing, and
// flushing/syncing/rotating
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"flag"
	"sync/atomic"
)

var MaxSize int64 = 4 * 1024 * 1024

var verbosity atomic.Int32

func InitFlags(flset *flag.FlagSet) {
	flset.BoolVar(&toStderr, "logtostderr", false, "log to standard error instead of files")
	flset.BoolVar(&alsoToStderr, "alsologtostderr", false, "log to standard error as well as files")
}

func Infoln(args ...any)                  { log(sevInfo, 0, "", args...) }
func Infof(format string, args ...any)    { log(sevInfo, 0, format, args...) }
func Warningln(args ...any)               { log(sevWarn, 0, "", args...) }
func Warningf(format string, args ...any) { log(sevWarn, 0, format, args...) }
func Errorln(args ...any)                 { log(sevErr, 0, "", args...) }
func Errorf(format string, args ...any)   { log(sevErr, 0, format, args...) }

func SetLogDir(dir string) { logDir = dir }
func SetTitle(s string)    { title = s }
func SetToStderr(v bool)   { toStderr = v }

func SetVerbosity(level int) { verbosity.Store(int32(level)) }

// V reports whether verbosity is at least `level` (config: log.level)
func V(level int) bool { return int(verbosity.Load()) >= level }

// Flush writes out buffered log lines; called periodically (see hk) and at exit
func Flush() {
	for _, sev := range []severity{sevErr, sevInfo} {
		if nlog := nlogs[sev]; nlog != nil {
			nlog.mw.Lock()
			nlog.flush()
			nlog.mw.Unlock()
		}
	}
}

func FlushExit() {
	stopping.Store(true)
	Flush()
	for _, sev := range []severity{sevErr, sevInfo} {
		if nlog := nlogs[sev]; nlog != nil && nlog.file != nil {
			nlog.file.Sync()
			nlog.file.Close()
			nlog.file = nil
		}
	}
}

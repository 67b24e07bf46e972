//go:build debug

// Package debug provides debug utilities
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"sync"

	"github.com/NVIDIA/iomon/cmn/nlog"
)

func ON() bool { return true }

func Assert(cond bool, a ...any) {
	if !cond {
		nlog.Flush()
		if len(a) > 0 {
			panic("DEBUG PANIC: " + fmt.Sprint(a...))
		}
		panic("DEBUG PANIC")
	}
}

func AssertNoErr(err error) {
	if err != nil {
		nlog.Flush()
		panic(err)
	}
}

func Assertf(cond bool, f string, a ...any) {
	if !cond {
		nlog.Flush()
		panic("DEBUG PANIC: " + fmt.Sprintf(f, a...))
	}
}

// the caller must be holding m
func AssertMutexLocked(m *sync.Mutex) {
	if m.TryLock() {
		m.Unlock()
		nlog.Flush()
		panic("DEBUG PANIC: mutex not locked")
	}
}

func Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/debug/pprof/":          pprof.Index,
		"/debug/pprof/cmdline":   pprof.Cmdline,
		"/debug/pprof/profile":   pprof.Profile,
		"/debug/pprof/symbol":    pprof.Symbol,
		"/debug/pprof/heap":      pprof.Handler("heap").ServeHTTP,
		"/debug/pprof/goroutine": pprof.Handler("goroutine").ServeHTTP,
	}
}

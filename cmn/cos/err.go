// Package cos provides common low-level types and utilities for all iomon packages
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	ratomic "sync/atomic"
	"syscall"

	"github.com/NVIDIA/iomon/cmn/debug"
)

type (
	ErrNotFound struct {
		where fmt.Stringer
		what  string
	}
	ErrSignal struct {
		signal syscall.Signal
	}
	Errs struct {
		errs []error
		cnt  int64
		cap  int
		mu   sync.Mutex
	}
)

var ErrWorkChanFull = errors.New("work channel full")

// ErrNotFound

func NewErrNotFound(where fmt.Stringer, what string) *ErrNotFound {
	return &ErrNotFound{where: where, what: what}
}

func (e *ErrNotFound) Error() string {
	s := e.what
	if !strings.Contains(s, "not exist") && !strings.Contains(s, "not found") {
		s += " does not exist"
	}
	if e.where == nil {
		return s
	}
	return e.where.String() + ": " + s
}

func IsErrNotFound(err error) bool {
	var e *ErrNotFound
	return errors.As(err, &e)
}

func IsNotExist(err error) bool {
	return IsErrNotFound(err) || os.IsNotExist(err) || errors.Is(err, os.ErrNotExist)
}

// Errs is a thread-safe, bounded, deduplicated collection of errors

const defaultMaxErrs = 8

func NewErrs(maxErrs ...int) Errs {
	capacity := defaultMaxErrs
	if len(maxErrs) > 0 && maxErrs[0] > 0 {
		capacity = maxErrs[0]
	}
	return Errs{
		errs: make([]error, 0, capacity),
		cap:  capacity,
	}
}

func (e *Errs) Add(err error) {
	debug.Assert(err != nil)
	e.mu.Lock()
	for _, added := range e.errs {
		if added.Error() == err.Error() {
			e.mu.Unlock()
			return
		}
	}
	if len(e.errs) < e.cap {
		e.errs = append(e.errs, err)
		ratomic.StoreInt64(&e.cnt, int64(len(e.errs)))
	}
	e.mu.Unlock()
}

func (e *Errs) Cnt() int { return int(ratomic.LoadInt64(&e.cnt)) }

func (e *Errs) JoinErr() (cnt int, err error) {
	if cnt = e.Cnt(); cnt > 0 {
		e.mu.Lock()
		err = errors.Join(e.errs...)
		e.mu.Unlock()
	}
	return
}

func (e *Errs) Error() string {
	cnt := e.Cnt()
	if cnt == 0 {
		return ""
	}
	e.mu.Lock()
	err := e.errs[0]
	e.mu.Unlock()
	if cnt > 1 {
		err = fmt.Errorf("%v (and %d more error%s)", err, cnt-1, Plural(cnt-1))
	}
	return err.Error()
}

func (e *Errs) Unwrap() []error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.errs)
}

//
// ErrSignal
//

// https://tldp.org/LDP/abs/html/exitcodes.html
func (e *ErrSignal) ExitCode() int               { return 128 + int(e.signal) }
func NewSignalError(s syscall.Signal) *ErrSignal { return &ErrSignal{signal: s} }
func (e *ErrSignal) Error() string               { return fmt.Sprintf("Signal %d", e.signal) }

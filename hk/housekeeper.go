// Package hk runs named periodic callbacks on a single goroutine:
// disk sampling, task polling, publishing, persistence, and cleanup.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package hk

import (
	"container/heap"
	"os"
	ratomic "sync/atomic"
	"syscall"
	"time"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/debug"
	"github.com/NVIDIA/iomon/cmn/mono"
	"github.com/NVIDIA/iomon/cmn/nlog"
)

const workChanCap = 16

// returned by a callback to unregister itself
const UnregInterval = 365 * 24 * time.Hour

type (
	// Func is called with the current mono time and returns the delay until the next call
	Func func(now int64) time.Duration

	op struct {
		f        Func
		name     string
		interval time.Duration
	}
	action struct {
		f    Func
		name string
		due  int64 // mono
	}
	actions []action

	hk struct {
		stopCh  cos.StopCh
		sigCh   chan os.Signal
		actions *actions
		timer   *time.Timer
		workCh  chan op
		running ratomic.Bool
	}
)

var HK *hk

// interface guard
var _ cos.Runner = (*hk)(nil)

func Init() {
	HK = &hk{
		workCh:  make(chan op, workChanCap),
		sigCh:   make(chan os.Signal, 1),
		actions: &actions{},
	}
	HK.stopCh.Init()
	heap.Init(HK.actions)
}

func WaitStarted() {
	for !HK.running.Load() {
		time.Sleep(10 * time.Millisecond)
	}
}

// Reg schedules f; zero interval calls it right away (on the hk goroutine)
func Reg(name string, f Func, interval time.Duration) {
	debug.Assert(interval != UnregInterval, name)
	HK.workCh <- op{name: name, f: f, interval: interval}

	if l, c := len(HK.workCh), workChanCap; l >= (c - c>>2) {
		nlog.Errorln(cos.ErrWorkChanFull, "len", l, "cap", c)
	}
}

func Unreg(name string) {
	HK.workCh <- op{name: name, interval: UnregInterval}
}

// non-presence is fine
func UnregIf(name string, f Func) {
	HK.workCh <- op{name: name, f: f, interval: UnregInterval}
}

////////
// hk //
////////

func (*hk) Name() string { return "hk" }

func (*hk) Stop(error) { HK.stopCh.Close() }

func (hk *hk) Run() (err error) {
	hk.setSignal()
	hk.timer = time.NewTimer(time.Hour)
	hk.running.Store(true)
	err = hk._run()
	hk.timer.Stop()
	hk.running.Store(false)
	return err
}

func (hk *hk) _run() error {
	for {
		select {
		case <-hk.stopCh.Listen():
			return nil
		case <-hk.timer.C:
			hk.fire()
		case op := <-hk.workCh:
			hk.apply(&op)
		case s, ok := <-hk.sigCh:
			if !ok {
				break
			}
			if err := hk.handleSignal(s.(syscall.Signal)); err != nil {
				return err
			}
		}
	}
}

// call the earliest-due action and reschedule (or drop) it
func (hk *hk) fire() {
	if hk.actions.Len() == 0 {
		return
	}
	var (
		item    = hk.actions.peek()
		started = mono.NanoTime()
		ival    = item.f(started)
	)
	if ival == UnregInterval {
		heap.Remove(hk.actions, 0)
	} else {
		now := mono.NanoTime()
		item.due = now + ival.Nanoseconds()
		heap.Fix(hk.actions, 0)

		if d := time.Duration(now - started); d > time.Second {
			nlog.Warningln("call [", item.name, "] took", d.String())
		}
	}
	hk.updateTimer()
}

func (hk *hk) apply(op *op) {
	idx := hk.byName(op.name)
	switch {
	case op.interval != UnregInterval && idx >= 0:
		nlog.Errorln("duplicated name [", op.name, "] - not registering")
	case op.interval != UnregInterval:
		var (
			ival = op.interval
			now  = mono.NanoTime()
		)
		if ival == 0 {
			if ival = op.f(now); ival == UnregInterval {
				return
			}
		}
		heap.Push(hk.actions, action{name: op.name, f: op.f, due: now + ival.Nanoseconds()})
	case idx >= 0:
		heap.Remove(hk.actions, idx)
	case op.f == nil:
		nlog.Warningln(op.name, "not found (already removed?)")
	}
	hk.updateTimer()
}

func (hk *hk) updateTimer() {
	if hk.actions.Len() == 0 {
		hk.timer.Stop()
		return
	}
	d := hk.actions.peek().due - mono.NanoTime()
	hk.timer.Reset(time.Duration(d))
}

func (hk *hk) byName(name string) int {
	for i := range *hk.actions {
		if (*hk.actions)[i].name == name {
			return i
		}
	}
	return -1
}

/////////////
// actions //
/////////////

func (a actions) Len() int           { return len(a) }
func (a actions) Less(i, j int) bool { return a[i].due < a[j].due }
func (a actions) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a actions) peek() *action      { return &a[0] }
func (a *actions) Push(x any)        { *a = append(*a, x.(action)) }

func (a *actions) Pop() any {
	old := *a
	n := len(old)
	item := old[n-1]
	*a = old[:n-1]
	return item
}

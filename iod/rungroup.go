// Package iod is the iomon daemon: it samples the disk and the process table
// on a schedule and serves the results over HTTP.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package iod

import (
	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/nlog"
)

type rungroup struct {
	runarr []cos.Runner
	runmap map[string]cos.Runner // redundant, named
	errCh  chan error
}

func newRungroup() *rungroup {
	return &rungroup{
		runarr: make([]cos.Runner, 0, 4),
		runmap: make(map[string]cos.Runner, 4),
	}
}

func (g *rungroup) add(r cos.Runner) {
	g.runarr = append(g.runarr, r)
	g.runmap[r.Name()] = r
}

// run starts all runners and waits for the first one to terminate;
// then stops the rest and returns the first runner's error.
func (g *rungroup) run() error {
	if len(g.runarr) == 0 {
		return nil
	}
	g.errCh = make(chan error, len(g.runarr))
	for _, r := range g.runarr {
		go func(r cos.Runner) {
			err := r.Run()
			if err != nil {
				nlog.Warningf("runner [%s] exited with err [%v]", r.Name(), err)
			}
			g.errCh <- err
		}(r)
	}

	// wait here for (any/first) runner termination
	err := <-g.errCh
	for _, r := range g.runarr {
		r.Stop(err)
	}
	for range len(g.runarr) - 1 {
		<-g.errCh
	}
	return err
}

// Package iod is the iomon daemon: it samples the disk and the process table
// on a schedule and serves the results over HTTP.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package iod

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/NVIDIA/iomon/api"
	"github.com/NVIDIA/iomon/api/apc"
	"github.com/NVIDIA/iomon/cmn"
	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/debug"
	"github.com/NVIDIA/iomon/cmn/nlog"
	"github.com/NVIDIA/iomon/sys"
)

const (
	shutdownTimeout = 5 * time.Second
	dfltJournalN    = 20
)

type server struct {
	d   *Daemon
	s   *http.Server
	mux *http.ServeMux
}

// interface guard
var _ cos.Runner = (*server)(nil)

func newServer(d *Daemon, addr string) *server {
	srv := &server{d: d, mux: http.NewServeMux()}
	srv.mux.HandleFunc(apc.URLPathDisk, srv.get(srv.diskHandler))
	srv.mux.HandleFunc(apc.URLPathTasks, srv.get(srv.tasksHandler))
	srv.mux.HandleFunc(apc.URLPathPublish, srv.get(srv.publishHandler))
	srv.mux.HandleFunc(apc.URLPathEMMC, srv.get(srv.emmcHandler))
	srv.mux.HandleFunc(apc.URLPathJournal, srv.get(srv.journalHandler))
	srv.mux.Handle(apc.URLPathMetrics, d.exporter.Handler())
	if debug.ON() {
		nlog.Warningln("debug build: serving /debug/pprof")
		for path, h := range debug.Handlers() {
			srv.mux.HandleFunc(path, h)
		}
	}
	srv.s = &http.Server{
		Addr:              addr,
		Handler:           srv.mux,
		ReadHeaderTimeout: apc.ReadHeaderTimeout,
	}
	return srv
}

func (*server) Name() string { return "http" }

func (srv *server) Run() error {
	nlog.Infoln("listening on", srv.s.Addr)
	if err := srv.s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (srv *server) Stop(err error) {
	nlog.Infoln("stopping http server:", err)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	if err := srv.s.Shutdown(ctx); err != nil {
		nlog.Warningln("http shutdown:", err)
	}
	cancel()
}

// get wraps a handler: GET only, identity headers
func (srv *server) get(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			cmn.WriteErr(w, r, fmt.Errorf("invalid method %s", r.Method), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set(apc.HdrRunID, srv.d.runID)
		w.Header().Set(apc.HdrDevice, srv.d.device)
		h(w, r)
	}
}

func (srv *server) diskHandler(w http.ResponseWriter, r *http.Request) {
	info := &api.DiskInfo{Device: srv.d.device, RunID: srv.d.runID, Report: srv.d.monitor.Report()}
	cmn.WriteResp(w, r, info)
}

func (srv *server) tasksHandler(w http.ResponseWriter, r *http.Request) {
	var (
		query = r.URL.Query()
		info  = &api.TasksInfo{}
		err   error
	)
	if s := query.Get(apc.QparamRunning); s != "" {
		if info.Running, err = strconv.ParseBool(s); err != nil {
			cmn.WriteErr(w, r, fmt.Errorf("invalid %s=%q", apc.QparamRunning, s))
			return
		}
	}
	top, err := parseInt(query.Get(apc.QparamTop), 0)
	if err != nil {
		cmn.WriteErr(w, r, fmt.Errorf("invalid %s: %v", apc.QparamTop, err))
		return
	}
	if info.Running {
		running := srv.d.tasks.Running()
		info.Tasks = make(sys.TaskList, 0, len(running))
		for _, task := range running {
			info.Tasks = append(info.Tasks, task)
		}
		sys.SortTasks(info.Tasks)
	} else {
		info.Tasks = srv.d.tasks.Merged()
	}
	info.Total = len(info.Tasks)
	if top > 0 && top < len(info.Tasks) {
		info.Tasks = info.Tasks[:top]
	}
	cmn.WriteResp(w, r, info)
}

func (srv *server) publishHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := srv.d.publisher.Last()
	cmn.WriteResp(w, r, &api.PublishInfo{Device: srv.d.device, Summary: s, Ok: ok})
}

func (srv *server) emmcHandler(w http.ResponseWriter, r *http.Request) {
	srv.d.emmc.mu.RLock()
	info, read, ok := srv.d.emmc.info, srv.d.emmc.read, srv.d.emmc.ok
	srv.d.emmc.mu.RUnlock()
	if !ok {
		err := cos.NewErrNotFound(nil, srv.d.device+": eMMC health")
		cmn.WriteErr(w, r, err, http.StatusNotFound)
		return
	}
	cmn.WriteResp(w, r, api.NewEMMCInfo(&info, read))
}

func (srv *server) journalHandler(w http.ResponseWriter, r *http.Request) {
	n, err := parseInt(r.URL.Query().Get(apc.QparamN), dfltJournalN)
	if err != nil {
		cmn.WriteErr(w, r, fmt.Errorf("invalid %s: %v", apc.QparamN, err))
		return
	}
	events, err := srv.d.journal.Recent(n)
	if err != nil {
		cmn.WriteErr(w, r, err, http.StatusInternalServerError)
		return
	}
	cmn.WriteResp(w, r, &api.JournalInfo{Events: events, Dropped: srv.d.journal.Dropped()})
}

func parseInt(s string, dflt int) (int, error) {
	if s == "" {
		return dflt, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil && n < 0 {
		err = fmt.Errorf("negative value %d", n)
	}
	return n, err
}

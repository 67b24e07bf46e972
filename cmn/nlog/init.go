// Package nlog - iomon logger, provides buffering, timestamping, writing, and
// flushing/syncing/rotating
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var (
	host    = "unknown"
	sevText = []string{sevInfo: "INFO", sevWarn: "WARNING", sevErr: "ERROR"}
)

var (
	nlogs [3]*nlog

	logDir string
	arg0   string
	title  string

	toStderr     bool
	alsoToStderr bool

	pid int

	onceInitFiles sync.Once
	errInitFiles  error

	stopping atomic.Bool // true when exiting
)

func init() {
	pid = os.Getpid()
	arg0 = filepath.Base(os.Args[0])
	if h, err := os.Hostname(); err == nil {
		host = _shortHost(h)
	}
}

func initFiles() {
	if logDir == "" {
		logDir = filepath.Join(os.TempDir(), "iomon")
	}
	now := time.Now()
	for _, sev := range []severity{sevErr, sevInfo} {
		nlog := newNlog(sev)
		if err := nlog.rotate(now); err != nil {
			errInitFiles = fmt.Errorf("unable to create logs in %q: %v", logDir, err)
			return
		}
		nlogs[sev] = nlog
	}
}

func sname() string {
	if strings.HasSuffix(arg0, ".test") {
		return "iomon-test"
	}
	return arg0
}

func _shortHost(hostname string) string {
	if before, _, ok := strings.Cut(hostname, "."); ok {
		return before
	}
	return hostname
}

func fcreate(tag string, t time.Time) (f *os.File, fname string, err error) {
	if err = os.MkdirAll(logDir, os.ModePerm); err != nil {
		return
	}
	name, link := logfname(tag, t)
	fname = filepath.Join(logDir, name)
	f, err = os.OpenFile(fname, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return
	}
	// re-symlink
	symlink := filepath.Join(logDir, link)
	os.Remove(symlink)
	os.Symlink(name, symlink)
	return
}

func logfname(tag string, t time.Time) (name, link string) {
	s := sname()
	name = fmt.Sprintf("%s.%s.%s.%02d%02d-%02d%02d%02d.%d",
		s,
		host,
		tag,
		t.Month(),
		t.Day(),
		t.Hour(),
		t.Minute(),
		t.Second(),
		pid)
	return name, s + "." + tag
}

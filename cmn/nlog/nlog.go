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
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	nlogBufSize  = 64 * 1024
	nlogLineSize = 4 * 1024
)

type severity int

const (
	sevInfo severity = iota
	sevWarn
	sevErr
)

type nlog struct {
	file *os.File
	pw   fixed
	line fixed
	size int64
	sev  severity
	mw   sync.Mutex
}

var pool = sync.Pool{
	New: func() any {
		return &fixed{buf: make([]byte, nlogLineSize)}
	},
}

func newNlog(sev severity) *nlog {
	return &nlog{
		sev:  sev,
		pw:   fixed{buf: make([]byte, nlogBufSize)},
		line: fixed{buf: make([]byte, nlogLineSize)},
	}
}

// main function
func log(sev severity, depth int, format string, args ...any) {
	if toStderr {
		fb := alloc()
		sprintf(sev, depth, format, fb, args...)
		os.Stderr.Write(fb.bytes())
		free(fb)
		return
	}
	onceInitFiles.Do(initFiles)
	if errInitFiles != nil {
		fb := alloc()
		sprintf(sev, depth, format, fb, args...)
		os.Stderr.Write(fb.bytes())
		free(fb)
		return
	}
	if sev == sevInfo && !alsoToStderr {
		// fast path
		nlogs[sevInfo].printf(sev, depth, format, args...)
		return
	}

	// warnings and errors go to both logs
	fb := alloc()
	sprintf(sev, depth, format, fb, args...)
	if alsoToStderr || sev >= sevErr {
		os.Stderr.Write(fb.bytes())
	}
	if sev >= sevWarn {
		nlog := nlogs[sevErr]
		nlog.mw.Lock()
		nlog.write(fb)
		nlog.mw.Unlock()
	}
	nlog := nlogs[sevInfo]
	nlog.mw.Lock()
	nlog.write(fb)
	nlog.mw.Unlock()
	free(fb)
}

func (nlog *nlog) printf(sev severity, depth int, format string, args ...any) {
	nlog.mw.Lock()
	nlog.line.reset()
	sprintf(sev, depth+1, format, &nlog.line, args...)
	nlog.write(&nlog.line)
	nlog.mw.Unlock()
}

// under mw-lock
func (nlog *nlog) write(line *fixed) {
	if nlog.pw.avail() < line.woff {
		nlog.flush()
	}
	nlog.pw.Write(line.bytes())
}

// under mw-lock
func (nlog *nlog) flush() {
	if nlog.pw.woff == 0 || nlog.file == nil {
		return
	}
	n, err := nlog.file.Write(nlog.pw.bytes())
	if err != nil {
		os.Stderr.WriteString("Error: [nlog] " + err.Error() + "\n")
		os.Stderr.Write(nlog.pw.bytes())
	}
	nlog.pw.reset()
	nlog.size += int64(n)
	if nlog.size >= MaxSize && !stopping.Load() {
		nlog.file.Close()
		if err := nlog.rotate(time.Now()); err != nil {
			os.Stderr.WriteString("Error: [nlog] failed to rotate: " + err.Error() + "\n")
		}
	}
}

func (nlog *nlog) rotate(now time.Time) (err error) {
	var (
		s    = fmt.Sprintf("host %s, %s for %s/%s\n", host, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		snow = now.Format("2006/01/02 15:04:05")
	)
	if nlog.file, _, err = fcreate(sevText[nlog.sev], now); err != nil {
		return
	}
	nlog.size = 0
	if title == "" {
		_, err = nlog.file.WriteString("Started up at " + snow + ", " + s)
	} else {
		nlog.file.WriteString("Rotated at " + snow + ", " + s)
		_, err = nlog.file.WriteString(title)
	}
	return
}

//
// utils
//

func formatHdr(s severity, depth int, fb *fixed) {
	const char = "IWE"
	_, fn, ln, ok := runtime.Caller(3 + depth)
	if !ok {
		return
	}
	idx := strings.LastIndexByte(fn, filepath.Separator)
	if idx > 0 {
		fn = fn[idx+1:]
	}
	if l := len(fn); l > 3 {
		fn = fn[:l-3]
	}
	fb.writeByte(char[s])
	fb.writeByte(' ')
	fb.writeString(time.Now().Format("15:04:05.000000"))
	fb.writeByte(' ')
	fb.writeString(fn)
	fb.writeByte(':')
	fb.writeString(strconv.Itoa(ln))
	fb.writeByte(' ')
}

func sprintf(sev severity, depth int, format string, fb *fixed, args ...any) {
	formatHdr(sev, depth+1, fb)
	if format == "" {
		fmt.Fprintln(fb, args...)
	} else {
		fmt.Fprintf(fb, format, args...)
	}
	fb.eol()
}

func alloc() *fixed {
	fb := pool.Get().(*fixed)
	fb.reset()
	return fb
}

func free(fb *fixed) { pool.Put(fb) }

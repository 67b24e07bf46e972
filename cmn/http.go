// Package cmn provides common configuration, HTTP, and identity utilities for iomon
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"bytes"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/cmn/nlog"

	jsoniter "github.com/json-iterator/go"
	"github.com/tinylib/msgp/msgp"
)

const httpProto = "http"

// Error structure for HTTP errors
type HTTPError struct {
	Status     int    `json:"status"`
	Message    string `json:"message"`
	Method     string `json:"method"`
	URLPath    string `json:"url_path"`
	RemoteAddr string `json:"remote_addr"`
	Trace      string `json:"trace"`
}

// e.g.: Not Found: eMMC not present: GET /v1/emmc from 127.0.0.1:54064| ([http.go, #120] <- [server.go, #84])
func (e *HTTPError) String() string {
	return http.StatusText(e.Status) + ": " + e.Message + ": " + e.Method + " " + e.URLPath + " from " + e.RemoteAddr + "| (" + e.Trace + ")"
}

func (e *HTTPError) Error() string {
	// do not escape <, >, and &
	buf := new(bytes.Buffer)
	enc := jsoniter.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return err.Error()
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// NewHTTPError returns HTTPError and true when `msg` is itself a JSON-formatted HTTPError
func NewHTTPError(r *http.Request, msg string, status int) (*HTTPError, bool) {
	var httpErr HTTPError
	if err := jsoniter.UnmarshalFromString(msg, &httpErr); err == nil && httpErr.Status != 0 {
		return &httpErr, true
	}
	e := &HTTPError{Status: status, Message: msg}
	if r != nil {
		e.Method, e.URLPath, e.RemoteAddr = r.Method, r.URL.Path, r.RemoteAddr
	}
	return e, false
}

func IsStatusNotFound(err error) bool {
	httpErr, ok := err.(*HTTPError)
	return ok && httpErr.Status == http.StatusNotFound
}

// URLPath returns a HTTP URL path by joining all segments with "/"
func URLPath(segments ...string) string {
	return path.Join("/", path.Join(segments...))
}

// PrependProtocol prepends `http://` when the URL has no scheme
func PrependProtocol(url string, protocol ...string) string {
	if url == "" || strings.Contains(url, "://") {
		return url
	}
	proto := httpProto
	if len(protocol) == 1 {
		proto = protocol[0]
	}
	return proto + "://" + url
}

// WriteErr writes detailed error (includes line and file) to response writer
func WriteErr(w http.ResponseWriter, r *http.Request, err error, errCode ...int) {
	status := http.StatusBadRequest
	if len(errCode) > 0 && errCode[0] >= http.StatusBadRequest {
		status = errCode[0]
	}
	httpErr, isHTTPError := NewHTTPError(r, err.Error(), status)
	if !isHTTPError {
		var trace bytes.Buffer
		for i := 1; i < 4; i++ {
			if _, file, line, ok := runtime.Caller(i); ok {
				if i > 1 {
					trace.WriteString(" <- ")
				}
				fmt.Fprintf(&trace, "[%s, #%d]", filepath.Base(file), line)
			}
		}
		httpErr.Trace = trace.String()
	}
	if status >= http.StatusInternalServerError {
		nlog.Errorln(httpErr.String())
	} else if nlog.V(4) {
		nlog.Infoln(httpErr.String())
	}
	w.Header().Set(cos.HdrContentType, cos.ContentJSON)
	w.Header().Set(cos.HdrContentTypeOptions, "nosniff")
	w.WriteHeader(httpErr.Status)
	w.Write([]byte(httpErr.Error()))
}

// WantsMsgpack returns true when the client asks for msgpack-encoded response
func WantsMsgpack(r *http.Request) bool {
	return strings.Contains(r.Header.Get(cos.HdrAccept), cos.ContentMsgPack)
}

// WriteResp encodes `v` as msgpack when requested and supported; JSON otherwise.
func WriteResp(w http.ResponseWriter, r *http.Request, v any) {
	if enc, ok := v.(msgp.Encodable); ok && WantsMsgpack(r) {
		w.Header().Set(cos.HdrContentType, cos.ContentMsgPack)
		mw := msgp.NewWriterSize(w, 10*cos.KiB)
		if err := enc.EncodeMsg(mw); err != nil {
			nlog.Errorln("failed to encode msgpack response:", err)
			return
		}
		if err := mw.Flush(); err != nil {
			nlog.Warningln("failed to flush msgpack response:", err)
		}
		return
	}
	w.Header().Set(cos.HdrContentType, cos.ContentJSON)
	if err := cos.JSON.NewEncoder(w).Encode(v); err != nil {
		nlog.Warningln("failed to write json response:", err)
	}
}

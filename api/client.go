// Package api provides iomon query API over HTTP
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/NVIDIA/iomon/api/apc"
	"github.com/NVIDIA/iomon/cmn"
	"github.com/NVIDIA/iomon/cmn/cos"

	jsoniter "github.com/json-iterator/go"
	"github.com/tinylib/msgp/msgp"
)

type (
	BaseParams struct {
		Client  *http.Client
		URL     string
		MsgPack bool // request msgpack-encoded responses, when supported
	}

	// ReqParams is used in constructing client-side API requests to the iomon daemon
	ReqParams struct {
		BaseParams BaseParams
		Path       string
		Query      url.Values
		Header     http.Header
	}
)

func NewBaseParams(rawURL string, msgpack bool) BaseParams {
	return BaseParams{
		Client:  &http.Client{Timeout: apc.DefaultTimeout},
		URL:     cmn.PrependProtocol(rawURL),
		MsgPack: msgpack,
	}
}

// HTTPStatus returns HTTP status or (-1) for non-HTTP error
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if httpErr, ok := err.(*cmn.HTTPError); ok {
		return httpErr.Status
	}
	return -1
}

// DoReqResp makes GET request and decodes the response into `v`
func (reqParams *ReqParams) DoReqResp(v any) error {
	resp, err := reqParams.do()
	if err != nil {
		return err
	}
	err = reqParams.readResp(resp, v)
	cos.DrainReader(resp.Body)
	resp.Body.Close()
	return err
}

func (reqParams *ReqParams) do() (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, reqParams.BaseParams.URL+reqParams.Path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	if len(reqParams.Query) != 0 {
		req.URL.RawQuery = reqParams.Query.Encode()
	}
	if reqParams.Header != nil {
		req.Header = reqParams.Header
	}
	if reqParams.BaseParams.MsgPack {
		req.Header.Set(cos.HdrAccept, cos.ContentMsgPack+", "+cos.ContentJSON)
	}
	client := reqParams.BaseParams.Client
	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req)
}

func (reqParams *ReqParams) readResp(resp *http.Response, v any) error {
	if err := reqParams.checkResp(resp); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	var err error
	if resp.Header.Get(cos.HdrContentType) == cos.ContentMsgPack {
		dec, ok := v.(msgp.Decodable)
		if !ok {
			return fmt.Errorf("%s: unexpected msgpack response for %T", reqParams.Path, v)
		}
		err = dec.DecodeMsg(msgp.NewReaderSize(resp.Body, 10*cos.KiB))
	} else {
		err = jsoniter.NewDecoder(resp.Body).Decode(v)
	}
	if err != nil {
		return fmt.Errorf("failed to read response, err: %w", err)
	}
	return nil
}

func (reqParams *ReqParams) checkResp(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	msg, _ := io.ReadAll(resp.Body)
	httpErr, _ := cmn.NewHTTPError(nil, string(msg), resp.StatusCode)
	httpErr.Method, httpErr.URLPath = http.MethodGet, reqParams.Path
	return httpErr
}

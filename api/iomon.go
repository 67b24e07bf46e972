// Package api provides iomon query API over HTTP
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"net/url"
	"strconv"

	"github.com/NVIDIA/iomon/api/apc"
)

// GetDisk returns the disk monitor report: baseline, last sample, and stall state
func GetDisk(bp BaseParams) (*DiskInfo, error) {
	var (
		info      DiskInfo
		reqParams = &ReqParams{BaseParams: bp, Path: apc.URLPathDisk}
	)
	if err := reqParams.DoReqResp(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetTasks returns the merged per-command view or, when `running` is set,
// the live process table; top > 0 limits the number of entries.
func GetTasks(bp BaseParams, running bool, top int) (*TasksInfo, error) {
	var (
		info      TasksInfo
		q         = url.Values{}
		reqParams = &ReqParams{BaseParams: bp, Path: apc.URLPathTasks, Query: q}
	)
	if running {
		q.Set(apc.QparamRunning, "true")
	}
	if top > 0 {
		q.Set(apc.QparamTop, strconv.Itoa(top))
	}
	if err := reqParams.DoReqResp(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func GetPublish(bp BaseParams) (*PublishInfo, error) {
	var (
		info      PublishInfo
		reqParams = &ReqParams{BaseParams: bp, Path: apc.URLPathPublish}
	)
	if err := reqParams.DoReqResp(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetEMMC returns flash health; fails with 404 on devices without eMMC
func GetEMMC(bp BaseParams) (*EMMCInfo, error) {
	var (
		info      EMMCInfo
		reqParams = &ReqParams{BaseParams: bp, Path: apc.URLPathEMMC}
	)
	if err := reqParams.DoReqResp(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetJournal returns up to n most recent stall events, newest first
func GetJournal(bp BaseParams, n int) (*JournalInfo, error) {
	var (
		info      JournalInfo
		reqParams = &ReqParams{BaseParams: bp, Path: apc.URLPathJournal}
	)
	if n > 0 {
		reqParams.Query = url.Values{apc.QparamN: []string{strconv.Itoa(n)}}
	}
	if err := reqParams.DoReqResp(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

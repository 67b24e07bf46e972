// Package cos provides common low-level types and utilities for all iomon packages
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"github.com/NVIDIA/iomon/cmn/debug"

	jsoniter "github.com/json-iterator/go"
)

// JSON is used to Marshal/Unmarshal API json messages and is initialized in init function.
var JSON jsoniter.API

func init() {
	jsonConf := jsoniter.Config{
		EscapeHTML:             false,
		ValidateJsonRawMessage: false,
		DisallowUnknownFields:  true, // make sure we have exactly the struct user requested.
		SortMapKeys:            true,
	}
	JSON = jsonConf.Froze()
}

func MustMarshal(v any) []byte {
	b, err := JSON.Marshal(v)
	debug.AssertNoErr(err)
	return b
}

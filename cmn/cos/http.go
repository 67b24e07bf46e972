// Package cos provides common low-level types and utilities for all iomon packages
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

// Ref: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers
const (
	HdrContentType        = "Content-Type"
	HdrContentTypeOptions = "X-Content-Type-Options"
	HdrAccept             = "Accept"
)

// Ref: https://www.iana.org/assignments/media-types/media-types.xhtml
const (
	ContentJSON    = "application/json"
	ContentMsgPack = "application/msgpack"
)

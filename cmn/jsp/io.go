// Package jsp (JSON persistence) provides utilities to store and load arbitrary
// JSON-encoded structures with optional checksumming and compression.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package jsp

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/NVIDIA/iomon/cmn/debug"

	"github.com/OneOfOne/xxhash"
	jsoniter "github.com/json-iterator/go"
	"github.com/pierrec/lz4/v4"
)

const (
	signature = "iomon" // file signature
	version   = 1       // jsp encoding version

	//        0 ---------------- 63  64 ------ 95 | 96 ------ 127
	prefLen  = 16 // [ signature | jsp ver | meta version |   bit flags  ]
	cksumLen = 8
)

const (
	flagCompress = 1 << iota
	flagChecksum
)

func Encode(w io.Writer, v any, opts Options) (err error) {
	var (
		body   bytes.Buffer
		prefix [prefLen]byte
		jw     io.Writer = &body
		zw     *lz4.Writer
	)
	if opts.Compress {
		zw = lz4.NewWriter(&body)
		jw = zw
	}
	encoder := jsoniter.NewEncoder(jw)
	if opts.Indent {
		encoder.SetIndent("", "  ")
	}
	if err = encoder.Encode(v); err != nil {
		return
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return
		}
	}
	if opts.Signature {
		l := len(signature)
		debug.Assert(l < prefLen/2)
		copy(prefix[:], signature)
		prefix[l] = version
		binary.BigEndian.PutUint32(prefix[8:], opts.Metaver)
		var flags uint32
		if opts.Compress {
			flags |= flagCompress
		}
		if opts.Checksum {
			flags |= flagChecksum
		}
		binary.BigEndian.PutUint32(prefix[12:], flags)
		if _, err = w.Write(prefix[:]); err != nil {
			return
		}
	}
	if opts.Checksum {
		var cksum [cksumLen]byte
		binary.BigEndian.PutUint64(cksum[:], xxhash.Checksum64(body.Bytes()))
		if _, err = w.Write(cksum[:]); err != nil {
			return
		}
	}
	_, err = w.Write(body.Bytes())
	return
}

func Decode(r io.Reader, v any, opts Options, tag string) error {
	if opts.Signature {
		var prefix [prefLen]byte
		if _, err := io.ReadFull(r, prefix[:]); err != nil {
			return err
		}
		l := len(signature)
		if got := string(prefix[:l]); got != signature {
			return &ErrBadSignature{tag, strings.ToValidUTF8(got, "?"), signature}
		}
		if prefix[l] != version {
			return &ErrUnsupportedMetaVersion{tag, uint32(prefix[l]), version}
		}
		if metaver := binary.BigEndian.Uint32(prefix[8:]); opts.Metaver != 0 && metaver != opts.Metaver {
			return &ErrUnsupportedMetaVersion{tag, metaver, opts.Metaver}
		}
		flags := binary.BigEndian.Uint32(prefix[12:])
		opts.Compress = flags&flagCompress != 0
		opts.Checksum = flags&flagChecksum != 0
	}
	var body io.Reader = r
	if opts.Checksum {
		var cksum [cksumLen]byte
		if _, err := io.ReadFull(r, cksum[:]); err != nil {
			return err
		}
		b, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		expected, actual := binary.BigEndian.Uint64(cksum[:]), xxhash.Checksum64(b)
		if expected != actual {
			return &ErrBadCksum{tag, actual, expected}
		}
		body = bytes.NewReader(b)
	}
	if opts.Compress {
		body = lz4.NewReader(body)
	}
	return jsoniter.NewDecoder(body).Decode(v)
}

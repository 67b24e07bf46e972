// Package cos provides common low-level types and utilities for all iomon packages
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NVIDIA/iomon/cmn/debug"
)

const PermRWR = 0o640

// ReadLines calls cb for each line of the file; cb returning io.EOF stops reading
// without error
func ReadLines(filename string, cb func(string) error) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(strings.NewReader(string(b)))
	for scanner.Scan() {
		if err := cb(scanner.Text()); err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
	}
	return scanner.Err()
}

// Read only the first line of a file.
// Do not use for big files.
func ReadOneLine(filename string) (string, error) {
	var line string
	err := ReadLines(filename, func(l string) error {
		line = l
		return io.EOF
	})
	return line, err
}

func ReadOneUint64(filename string) (uint64, error) {
	line, err := ReadOneLine(filename)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(line), 10, 64)
}

func CreateDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// CreateFile creates a new write-only (truncated) file, with all the parent directories
func CreateFile(fqn string) (*os.File, error) {
	if err := CreateDir(filepath.Dir(fqn)); err != nil {
		return nil, err
	}
	return os.OpenFile(fqn, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, PermRWR)
}

// DrainReader reads `r` to the end, discarding the bytes
func DrainReader(r io.Reader) {
	_, err := io.Copy(io.Discard, r)
	if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
		return
	}
	debug.AssertNoErr(err)
}

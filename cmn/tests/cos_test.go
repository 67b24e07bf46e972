// Package tests provides tests for common types and utilities of the iomon module
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package tests

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/NVIDIA/iomon/cmn/cos"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("cos", func() {
	DescribeTable("ToSizeIEC",
		func(b int64, digits int, expected string) {
			Expect(cos.ToSizeIEC(b, digits)).To(Equal(expected))
		},
		Entry("bytes", int64(1000), 2, "1000B"),
		Entry("KiB", int64(1536), 1, "1.5KiB"),
		Entry("MiB", int64(3*cos.MiB), 0, "3MiB"),
		Entry("GiB", int64(5*cos.GiB)/2, 2, "2.50GiB"),
		Entry("TiB", int64(cos.TiB), 1, "1.0TiB"),
	)

	It("formats rates", func() {
		Expect(cos.ToRateIEC(0, 1)).To(Equal("0B/s"))
		Expect(cos.ToRateIEC(2048, 1)).To(Equal("2.0KiB/s"))
	})

	It("round-trips Duration through JSON", func() {
		d := cos.Duration(90 * time.Second)
		b, err := cos.JSON.Marshal(d)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal(`"1m30s"`))

		var out cos.Duration
		Expect(cos.JSON.Unmarshal([]byte(`"1m"`), &out)).To(Succeed())
		Expect(out.D()).To(Equal(time.Minute))
		Expect(out.String()).To(Equal("1m"))
	})

	It("reads lines and single values", func() {
		fqn := filepath.Join(GinkgoT().TempDir(), "stat")
		Expect(os.WriteFile(fqn, []byte(" 42 \nsecond\n"), cos.PermRWR)).To(Succeed())

		v, err := cos.ReadOneUint64(fqn)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint64(42)))

		var lines []string
		Expect(cos.ReadLines(fqn, func(l string) error { lines = append(lines, l); return nil })).To(Succeed())
		Expect(lines).To(HaveLen(2))

		_, err = cos.ReadOneLine(fqn + ".none")
		Expect(cos.IsNotExist(err)).To(BeTrue())
	})

	It("joins multiple errors", func() {
		errs := cos.NewErrs()
		e := errors.New("disk gone")
		errs.Add(e)
		errs.Add(e)
		errs.Add(errors.New("proc gone"))
		cnt, err := errs.JoinErr()
		Expect(cnt).To(Equal(2))
		Expect(errors.Is(err, e)).To(BeTrue())
	})

	It("maps signals to exit codes", func() {
		Expect(cos.NewSignalError(syscall.SIGTERM).ExitCode()).To(Equal(128 + 15))
	})
})

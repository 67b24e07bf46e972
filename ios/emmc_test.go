// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/ios"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// extCSD returns a 512-byte register dump with the given bytes set
func extCSD(set map[int]byte) string {
	var sb strings.Builder
	for i := range 512 {
		fmt.Fprintf(&sb, "%02x", set[i])
	}
	sb.WriteByte('\n')
	return sb.String()
}

var _ = Describe("eMMC", func() {
	It("parses eMMC 5.1 health", func() {
		info, err := ios.ParseEXTCSD(extCSD(map[int]byte{192: 8, 267: 2, 268: 0x03, 269: 0x0b}))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Version).To(Equal("5.1"))
		Expect(info.LifeTimeEst).To(BeTrue())
		Expect(info.PreEOLString()).To(Equal("warning"))
		Expect(ios.LifeTimeString(info.LifeTimeA)).To(Equal("20%-30%"))
		Expect(ios.LifeTimeString(info.LifeTimeB)).To(Equal("exceeded"))
	})

	It("skips life-time estimates before eMMC 5.0", func() {
		info, err := ios.ParseEXTCSD(extCSD(map[int]byte{192: 6, 267: 1, 268: 1, 269: 1}))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Version).To(Equal("4.5"))
		Expect(info.LifeTimeEst).To(BeFalse())
		Expect(info.PreEOL).To(BeZero())
	})

	It("reports unknown revisions and short dumps", func() {
		info, err := ios.ParseEXTCSD(extCSD(map[int]byte{192: 42}))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Version).To(Equal("Unknown"))

		_, err = ios.ParseEXTCSD("00ff")
		Expect(err).To(HaveOccurred())

		_, err = ios.ParseEXTCSD(strings.Repeat("zz", 512))
		Expect(err).To(HaveOccurred())
	})

	It("reads from a file", func() {
		fqn := filepath.Join(GinkgoT().TempDir(), "ext_csd")
		Expect(os.WriteFile(fqn, []byte(extCSD(map[int]byte{192: 7, 267: 1, 268: 1, 269: 2})), cos.PermRWR)).To(Succeed())
		info, err := ios.ReadEMMC(fqn)
		Expect(err).NotTo(HaveOccurred())
		Expect(info).To(Equal(ios.EMMCInfo{Version: "5.0", Revision: 7, PreEOL: 1, LifeTimeA: 1, LifeTimeB: 2, LifeTimeEst: true}))

		_, err = ios.ReadEMMC(fqn + ".none")
		Expect(cos.IsNotExist(err)).To(BeTrue())
	})

	It("finds ext_csd under debugfs", func() {
		debugfs := GinkgoT().TempDir()
		Expect(ios.FindEXTCSD(debugfs)).To(BeEmpty())

		dir := filepath.Join(debugfs, "mmc0", "mmc0:0001")
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
		fqn := filepath.Join(dir, "ext_csd")
		Expect(os.WriteFile(fqn, []byte(extCSD(nil)), cos.PermRWR)).To(Succeed())
		Expect(ios.FindEXTCSD(debugfs)).To(Equal(fqn))
	})
})

// Package ios samples block-device counters, keeps rolling performance baselines,
// and detects stalled storage.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios_test

import (
	"os"
	"path/filepath"

	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/ios"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Disks", func() {
	var sysBlock string
	BeforeEach(func() {
		sysBlock = GinkgoT().TempDir()
	})

	mkdisks := func(names ...string) {
		for _, name := range names {
			writeStat(sysBlock, name, statLine)
		}
	}

	It("lists devices with a stat file", func() {
		mkdisks("sdb", "loop0", "nvme0n1")
		Expect(os.MkdirAll(filepath.Join(sysBlock, "nostat"), 0o755)).To(Succeed())

		disks, err := ios.ListDisks(sysBlock)
		Expect(err).NotTo(HaveOccurred())
		Expect(disks).To(Equal([]string{"loop0", "nvme0n1", "sdb"}))
	})

	DescribeTable("picks the preferred device",
		func(expected string, names ...string) {
			mkdisks(names...)
			disk, err := ios.PickDisk(sysBlock)
			Expect(err).NotTo(HaveOccurred())
			Expect(disk).To(Equal(expected))
		},
		Entry("mmcblk0 first", "mmcblk0", "sda", "mmcblk0", "nvme0n1"),
		Entry("then sda", "sda", "sdb", "sda", "nvme0n1"),
		Entry("then nvme", "nvme1n1", "loop0", "sdb", "nvme1n1"),
		Entry("then any sd", "sdc", "loop0", "sdc", "sdd"),
	)

	It("fails when nothing qualifies", func() {
		mkdisks("loop0", "ram0")
		_, err := ios.PickDisk(sysBlock)
		Expect(cos.IsErrNotFound(err)).To(BeTrue())

		_, err = ios.PickDisk(filepath.Join(sysBlock, "none"))
		Expect(err).To(HaveOccurred())
	})
})

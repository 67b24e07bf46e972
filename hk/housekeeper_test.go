// Package hk runs named periodic callbacks on a single goroutine:
// disk sampling, task polling, publishing, persistence, and cleanup.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package hk_test

import (
	ratomic "sync/atomic"
	"time"

	"github.com/NVIDIA/iomon/hk"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Housekeeper", func() {
	It("calls a registered action periodically", func() {
		var cnt ratomic.Int32
		hk.Reg("periodic", func(int64) time.Duration {
			cnt.Add(1)
			return 10 * time.Millisecond
		}, 10*time.Millisecond)
		defer hk.Unreg("periodic")

		Eventually(cnt.Load).WithTimeout(2 * time.Second).Should(BeNumerically(">=", 3))
	})

	It("calls right away when the interval is zero", func() {
		var cnt ratomic.Int32
		hk.Reg("now", func(int64) time.Duration {
			cnt.Add(1)
			return time.Hour
		}, 0)
		defer hk.Unreg("now")

		Eventually(cnt.Load).WithTimeout(time.Second).Should(BeEquivalentTo(1))
		Consistently(cnt.Load).WithTimeout(100 * time.Millisecond).Should(BeEquivalentTo(1))
	})

	It("drops an action that unregisters itself", func() {
		var cnt ratomic.Int32
		hk.Reg("once", func(int64) time.Duration {
			cnt.Add(1)
			return hk.UnregInterval
		}, 5*time.Millisecond)

		Eventually(cnt.Load).WithTimeout(time.Second).Should(BeEquivalentTo(1))
		Consistently(cnt.Load).WithTimeout(100 * time.Millisecond).Should(BeEquivalentTo(1))

		// gone: may be registered again under the same name
		hk.Reg("once", func(int64) time.Duration {
			cnt.Add(1)
			return hk.UnregInterval
		}, 5*time.Millisecond)
		Eventually(cnt.Load).WithTimeout(time.Second).Should(BeEquivalentTo(2))
	})

	It("stops calling after Unreg", func() {
		var cnt ratomic.Int32
		hk.Reg("unreg", func(int64) time.Duration {
			cnt.Add(1)
			return 5 * time.Millisecond
		}, 5*time.Millisecond)
		Eventually(cnt.Load).WithTimeout(time.Second).Should(BeNumerically(">=", 2))

		hk.Unreg("unreg")
		time.Sleep(50 * time.Millisecond)
		stopped := cnt.Load()
		Consistently(cnt.Load).WithTimeout(100 * time.Millisecond).Should(Equal(stopped))

		// non-presence is fine
		hk.UnregIf("unreg", func(int64) time.Duration { return 0 })
	})

	It("orders actions by due time", func() {
		var (
			order = make(chan string, 2)
			f     = func(name string) hk.Func {
				return func(int64) time.Duration {
					order <- name
					return hk.UnregInterval
				}
			}
		)
		hk.Reg("late", f("late"), 150*time.Millisecond)
		hk.Reg("early", f("early"), 20*time.Millisecond)

		Eventually(order).WithTimeout(time.Second).Should(Receive(Equal("early")))
		Eventually(order).WithTimeout(time.Second).Should(Receive(Equal("late")))
	})
})

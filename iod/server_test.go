// Package iod is the iomon daemon: it samples the disk and the process table
// on a schedule and serves the results over HTTP.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package iod

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/iomon/api"
	"github.com/NVIDIA/iomon/api/apc"
	"github.com/NVIDIA/iomon/cmn"
	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/ios"
	"github.com/NVIDIA/iomon/sys"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("server", func() {
	var (
		d      *Daemon
		ts     *httptest.Server
		bp     api.BaseParams
		bpMsgp api.BaseParams
	)
	BeforeEach(func() {
		var err error
		d, err = New(testConfig(GinkgoT().TempDir()))
		Expect(err).NotTo(HaveOccurred())
		ts = httptest.NewServer(d.srv.mux)
		DeferCleanup(func() {
			ts.Close()
			d.journal.Close()
		})
		bp = api.BaseParams{Client: ts.Client(), URL: ts.URL}
		bpMsgp = bp
		bpMsgp.MsgPack = true

		snap := ios.DiskStats{EndTime: 1}
		d.sample(&snap)
		for range 3 {
			advance(&snap, &normInc)
			d.sample(&snap)
		}
		d.tasks.Update([]sys.TaskInfo{
			{Cmd: "dd", Pid: 10, StartTime: 5, ReadBytes: 100, WriteBytes: 1 << 20},
			{Cmd: "dd", Pid: 11, StartTime: 6, WriteBytes: 1 << 10},
			{Cmd: "cat", Pid: 12, StartTime: 7, ReadBytes: 1 << 16},
			{Cmd: "sh", Pid: 13, StartTime: 8},
		})
	})

	It("serves the disk report as JSON and msgpack", func() {
		for _, params := range []api.BaseParams{bp, bpMsgp} {
			info, err := api.GetDisk(params)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Device).To(Equal("sda"))
			Expect(info.RunID).To(Equal(d.RunID()))
			Expect(info.Report.Samples).To(BeEquivalentTo(3))
			Expect(info.Report.Fill).To(Equal(3))
			Expect(info.Report.Valid).To(BeFalse())
			Expect(info.Report.Last.ReadIOs).To(Equal(100.0))
			Expect(info.Report.Window).To(Equal(10))
		}
	})

	It("negotiates the content type", func() {
		req, err := http.NewRequest(http.MethodGet, ts.URL+apc.URLPathDisk, http.NoBody)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set(cos.HdrAccept, cos.ContentMsgPack)
		resp, err := ts.Client().Do(req)
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		Expect(resp.Header.Get(cos.HdrContentType)).To(Equal(cos.ContentMsgPack))
		Expect(resp.Header.Get(apc.HdrDevice)).To(Equal("sda"))
		Expect(resp.Header.Get(apc.HdrRunID)).To(Equal(d.RunID()))

		// JSON-only endpoint
		req.URL.Path = apc.URLPathPublish
		resp, err = ts.Client().Do(req)
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		Expect(resp.Header.Get(cos.HdrContentType)).To(Equal(cos.ContentJSON))
	})

	It("serves merged and running tasks", func() {
		for _, params := range []api.BaseParams{bp, bpMsgp} {
			info, err := api.GetTasks(params, false, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Running).To(BeFalse())
			Expect(info.Tasks).To(HaveLen(3))
			Expect(info.Tasks[0].Cmd).To(Equal("dd"))
			Expect(info.Tasks[0].WriteBytes).To(BeEquivalentTo(1<<20 + 1<<10))
			Expect(info.Tasks[1].Cmd).To(Equal("cat"))

			info, err = api.GetTasks(params, true, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Running).To(BeTrue())
			Expect(info.Total).To(Equal(4))
			Expect(info.Tasks).To(HaveLen(2))
			Expect(info.Tasks[0].Pid).To(Equal(10))
			Expect(info.Tasks[1].Pid).To(Equal(12))
		}
	})

	It("rejects bad requests", func() {
		reqParams := &api.ReqParams{BaseParams: bp, Path: apc.URLPathTasks}
		reqParams.Query = map[string][]string{apc.QparamRunning: {"maybe"}}
		err := reqParams.DoReqResp(&api.TasksInfo{})
		Expect(api.HTTPStatus(err)).To(Equal(http.StatusBadRequest))
		Expect(err.Error()).To(ContainSubstring("maybe"))

		_, err = api.GetJournal(bp, 0)
		Expect(err).NotTo(HaveOccurred())
		reqParams = &api.ReqParams{BaseParams: bp, Path: apc.URLPathJournal}
		reqParams.Query = map[string][]string{apc.QparamN: {"-1"}}
		err = reqParams.DoReqResp(&api.JournalInfo{})
		Expect(api.HTTPStatus(err)).To(Equal(http.StatusBadRequest))

		resp, err := ts.Client().Post(ts.URL+apc.URLPathDisk, cos.ContentJSON, strings.NewReader("{}"))
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusMethodNotAllowed))
	})

	It("serves the last published period", func() {
		info, err := api.GetPublish(bp)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Ok).To(BeFalse())

		d.publishTick(0)
		info, err = api.GetPublish(bp)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Ok).To(BeTrue())
		Expect(info.Summary.Stats.Counter).To(BeEquivalentTo(3))
	})

	It("returns 404 without eMMC", func() {
		_, err := api.GetEMMC(bp)
		Expect(api.HTTPStatus(err)).To(Equal(http.StatusNotFound))
		Expect(cmn.IsStatusNotFound(err)).To(BeTrue())

		d.emmcPath = filepath.Join(GinkgoT().TempDir(), "ext_csd")
		dump := strings.Repeat("00", 192) + "07" + strings.Repeat("00", 74) + "030102" + strings.Repeat("00", 512-270)
		Expect(os.WriteFile(d.emmcPath, []byte(dump), cos.PermRWR)).To(Succeed())
		d.emmcTick(0)

		info, err := api.GetEMMC(bp)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Version).To(Equal("5.0"))
		Expect(info.PreEOLStr).To(Equal("urgent"))
		Expect(info.LifeTimeAStr).To(Equal("0%-10%"))
		Expect(info.LifeTimeBStr).To(Equal("10%-20%"))
	})

	It("serves the stall journal newest first", func() {
		snap := d.publisher.Previous()
		for range 10 {
			advance(&snap, &normInc)
			d.sample(&snap)
		}
		advance(&snap, &stallInc)
		d.sample(&snap)
		advance(&snap, &normInc)
		d.sample(&snap)

		info, err := api.GetJournal(bp, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Events).To(HaveLen(2))
		Expect(info.Events[0].Kind).To(Equal("recovery"))

		info, err = api.GetJournal(bp, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Events).To(HaveLen(1))
	})

	It("exports metrics", func() {
		d.loadTick(0)
		resp, err := ts.Client().Get(ts.URL + apc.URLPathMetrics)
		Expect(err).NotTo(HaveOccurred())
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		Expect(err).NotTo(HaveOccurred())
		text := string(body)
		Expect(text).To(ContainSubstring(`iomon_disk_valid{device="sda"} 0`))
		Expect(text).To(ContainSubstring(`iomon_task_write_bytes{cmd="dd"}`))
		Expect(text).To(ContainSubstring(`iomon_load_average{period="5m"} 1.25`))
	})
})

// Package cli implements iomonctl, the command-line client of the iomon daemon.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/NVIDIA/iomon/api"
	"github.com/NVIDIA/iomon/cmn/cos"
	"github.com/NVIDIA/iomon/ios"
	"github.com/NVIDIA/iomon/journal"

	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

const (
	tabMinWidth = 4
	tabPadding  = 2
)

var (
	diskCmd = cli.Command{
		Name:      "disk",
		Usage:     "show disk baseline, last sample, and stall state",
		ArgsUsage: " ",
		Flags:     []cli.Flag{refreshFlag, countFlag},
		Action:    diskHandler,
	}
	tasksCmd = cli.Command{
		Name:      "tasks",
		Usage:     "show per-command I/O (including exited processes) or the live process table",
		ArgsUsage: " ",
		Flags:     []cli.Flag{runningFlag, topFlag, refreshFlag, countFlag},
		Action:    tasksHandler,
	}
	journalCmd = cli.Command{
		Name:      "journal",
		Usage:     "show recent stall onsets and recoveries, newest first",
		ArgsUsage: " ",
		Flags:     []cli.Flag{numEventsFlag},
		Action:    journalHandler,
	}
	emmcCmd = cli.Command{
		Name:      "emmc",
		Usage:     "show eMMC wear and end-of-life status",
		ArgsUsage: " ",
		Action:    emmcHandler,
	}
	publishCmd = cli.Command{
		Name:      "publish",
		Usage:     "show the last published period summary",
		ArgsUsage: " ",
		Action:    publishHandler,
	}
	showCmd = cli.Command{
		Name:  "show",
		Usage: "show combined views",
		Subcommands: []cli.Command{
			{
				Name:      "all",
				Usage:     "show disk state and top tasks",
				ArgsUsage: " ",
				Flags:     []cli.Flag{topFlag},
				Action:    showAllHandler,
			},
		},
	}
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, tabMinWidth, 0, tabPadding, ' ', 0)
}

func stallState(r *ios.MonitorReport) string {
	switch {
	case !r.Valid:
		return fyellow(fmt.Sprintf("WARMING UP (%d/%d)", r.Fill, r.Window))
	case r.Stall:
		return fred("STALL")
	default:
		return fgreen("OK")
	}
}

//
// disk
//

func diskHandler(c *cli.Context) error {
	return repeat(c, func() error {
		info, err := api.GetDisk(apiBP)
		if err != nil {
			return err
		}
		printDisk(c.App.Writer, info)
		return nil
	})
}

func printDisk(w io.Writer, info *api.DiskInfo) {
	r := &info.Report
	fmt.Fprintf(w, "%s %s (run %s): %s\n", fcyan("Device"), info.Device, info.RunID, stallState(r))
	if len(r.Tripped) > 0 {
		fmt.Fprintf(w, "tripped: %s\n", fred(strings.Join(r.Tripped, ", ")))
	}
	fmt.Fprintf(w, "window %d, sigma %.1f, samples %d, discarded %d\n", r.Window, r.Sigma, r.Samples, r.Discarded)

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "METRIC\tLAST\tMEAN\tSTD")
	var (
		mean = make(map[string]float64, 5)
		std  = make(map[string]float64, 5)
	)
	r.Mean.Range(func(name string, v float64) { mean[name] = v })
	r.Std.Range(func(name string, v float64) { std[name] = v })
	r.Last.Range(func(name string, v float64) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, fmtPerf(name, v), fmtPerf(name, mean[name]), fmtPerf(name, std[name]))
	})
	tw.Flush()
}

func fmtPerf(name string, v float64) string {
	if strings.HasSuffix(name, "_perf") {
		return cos.ToRateIEC(v, 1)
	}
	return fmt.Sprintf("%.2f", v)
}

//
// tasks
//

func tasksHandler(c *cli.Context) error {
	running, top := flagIsSet(c, runningFlag), parseIntFlag(c, topFlag)
	return repeat(c, func() error {
		info, err := api.GetTasks(apiBP, running, top)
		if err != nil {
			return err
		}
		printTasks(c.App.Writer, info)
		return nil
	})
}

func printTasks(w io.Writer, info *api.TasksInfo) {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "COMMAND\tPID\tREAD\tWRITE\tCANCELLED\tRCHAR\tWCHAR\tSYSCR\tSYSCW")
	for i := range info.Tasks {
		t := &info.Tasks[i]
		pid := "-"
		if t.Pid != 0 {
			pid = fmt.Sprint(t.Pid)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n", t.Cmd, pid,
			cos.ToSizeIEC(int64(t.ReadBytes), 1), cos.ToSizeIEC(int64(t.WriteBytes), 1),
			cos.ToSizeIEC(int64(t.CancelledWriteBytes), 1),
			cos.ToSizeIEC(int64(t.Rchar), 1), cos.ToSizeIEC(int64(t.Wchar), 1), t.Syscr, t.Syscw)
	}
	tw.Flush()
	if n := len(info.Tasks); n < info.Total {
		fmt.Fprintf(w, "(showing %d of %d)\n", n, info.Total)
	}
}

//
// journal
//

func journalHandler(c *cli.Context) error {
	info, err := api.GetJournal(apiBP, parseIntFlag(c, numEventsFlag))
	if err != nil {
		return err
	}
	w := c.App.Writer
	if len(info.Events) == 0 {
		fmt.Fprintln(w, "No stall events")
		return nil
	}
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "TIME\tDEVICE\tEVENT\tREAD\tWRITE\tQUEUE\tLOAD")
	for i := range info.Events {
		ev := &info.Events[i]
		kind := fgreen(ev.Kind)
		if ev.Kind == journal.KindOnset {
			kind = fred(ev.Kind)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\t%.2f\n", ev.Time.Format(time.DateTime), ev.Device, kind,
			cos.ToRateIEC(ev.Sample.ReadPerf, 1), cos.ToRateIEC(ev.Sample.WritePerf, 1), ev.Sample.Queue, ev.Load)
	}
	tw.Flush()
	return nil
}

//
// emmc
//

func emmcHandler(c *cli.Context) error {
	info, err := api.GetEMMC(apiBP)
	if err != nil {
		if api.HTTPStatus(err) == http.StatusNotFound {
			return fmt.Errorf("%s: device has no eMMC health information", apiBP.URL)
		}
		return err
	}
	w := c.App.Writer
	eol := info.PreEOLStr
	if info.PreEOL > 1 {
		eol = fred(eol)
	}
	fmt.Fprintf(w, "%s %s (revision %d)\n", fcyan("eMMC"), info.Version, info.Revision)
	fmt.Fprintf(w, "pre-EOL:    %s\n", eol)
	if info.LifeTimeEst {
		fmt.Fprintf(w, "life time A: %s\n", info.LifeTimeAStr)
		fmt.Fprintf(w, "life time B: %s\n", info.LifeTimeBStr)
	}
	fmt.Fprintf(w, "read at:    %s\n", info.Read.Format(time.DateTime))
	return nil
}

//
// publish
//

func publishHandler(c *cli.Context) error {
	info, err := api.GetPublish(apiBP)
	if err != nil {
		return err
	}
	w := c.App.Writer
	if !info.Ok {
		fmt.Fprintf(w, "%s: nothing published yet\n", info.Device)
		return nil
	}
	s := &info.Summary
	fmt.Fprintf(w, "%s %s at %s (%d samples)\n", fcyan("Published"), info.Device,
		s.Published.Format(time.DateTime), s.Stats.Counter)
	fmt.Fprintf(w, "%s, avg in flight %.2f\n", s.Perf.String(), s.Stats.IOAvg)
	return nil
}

//
// show all
//

func showAllHandler(c *cli.Context) error {
	var (
		disk  *api.DiskInfo
		tasks *api.TasksInfo
		top   = parseIntFlag(c, topFlag)
	)
	if top == 0 {
		top = 10
	}
	wg, _ := errgroup.WithContext(context.Background())
	wg.Go(func() (err error) {
		disk, err = api.GetDisk(apiBP)
		return err
	})
	wg.Go(func() (err error) {
		tasks, err = api.GetTasks(apiBP, false, top)
		return err
	})
	if err := wg.Wait(); err != nil {
		return err
	}
	printDisk(c.App.Writer, disk)
	fmt.Fprintln(c.App.Writer)
	printTasks(c.App.Writer, tasks)
	return nil
}

// Package cli implements iomonctl, the command-line client of the iomon daemon.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"strings"

	"github.com/NVIDIA/iomon/cmn"

	"github.com/urfave/cli"
)

const envURL = "IOMON_URL"

var (
	urlFlag = cli.StringFlag{
		Name:   "url, u",
		Usage:  "iomon daemon endpoint",
		Value:  "http://" + cmn.DefaultListen,
		EnvVar: envURL,
	}
	msgpackFlag = cli.BoolFlag{
		Name:  "msgpack",
		Usage: "request msgpack-encoded responses where supported",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colored output",
	}
	refreshFlag = cli.DurationFlag{
		Name:  "refresh",
		Usage: "interval for continuous monitoring, e.g. 1s, 10s",
	}
	countFlag = cli.IntFlag{
		Name:  "count",
		Usage: "used together with " + flprn(refreshFlag) + " to limit the number of iterations",
	}
	runningFlag = cli.BoolFlag{
		Name:  "running",
		Usage: "show live processes (default: per-command totals including exited processes)",
	}
	topFlag = cli.IntFlag{
		Name:  "top",
		Usage: "show only the top N entries by total bytes",
	}
	numEventsFlag = cli.IntFlag{
		Name:  "n",
		Usage: "number of most recent events",
		Value: 20,
	}
)

// flag's printable name
func flprn(f cli.Flag) string { return "--" + fl1n(f.GetName()) }

// return the first name
func fl1n(flagName string) string {
	if strings.IndexByte(flagName, ',') < 0 {
		return flagName
	}
	return strings.TrimSpace(strings.Split(flagName, ",")[0])
}

func flagIsSet(c *cli.Context, flag cli.Flag) (v bool) {
	name := fl1n(flag.GetName()) // take the first of multiple names
	switch flag.(type) {
	case cli.BoolFlag:
		v = c.GlobalBool(name) || c.Bool(name)
	default:
		v = c.GlobalIsSet(name) || c.IsSet(name)
	}
	return
}

// Returns the value of a string flag (either parent or local scope)
func parseStrFlag(c *cli.Context, flag cli.StringFlag) string {
	flagName := fl1n(flag.GetName())
	if c.GlobalIsSet(flagName) {
		return c.GlobalString(flagName)
	}
	return c.String(flagName)
}

// Returns the value of an int flag (either parent or local scope)
func parseIntFlag(c *cli.Context, flag cli.IntFlag) int {
	flagName := fl1n(flag.GetName())
	if c.GlobalIsSet(flagName) {
		return c.GlobalInt(flagName)
	}
	return c.Int(flagName)
}

// Package cli implements iomonctl, the command-line client of the iomon daemon.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/NVIDIA/iomon/api"
	"github.com/NVIDIA/iomon/cmn"

	"github.com/fatih/color"
	"github.com/urfave/cli"
)

const (
	cliName  = "iomonctl"
	cliDescr = `Query a running iomon daemon: disk stall state, per-command I/O,
   the stall journal, and flash health.`
)

type acli struct {
	app       *cli.App
	outWriter io.Writer
	errWriter io.Writer
}

var (
	apiBP     api.BaseParams
	buildTime string
)

// color
var (
	fred, fgreen, fyellow, fcyan func(a ...any) string
)

// main method
func Run(version, buildtime string, args []string) error {
	a := newAcli(os.Stdout, os.Stderr)
	buildTime = buildtime
	a.init(version)
	return a.run(args)
}

func newAcli(out, errw io.Writer) *acli {
	return &acli{app: cli.NewApp(), outWriter: out, errWriter: errw}
}

func (a *acli) run(args []string) error {
	err := a.app.Run(args)
	return a.formatErr(err)
}

func isUnreachableError(err error) (msg string, unreachable bool) {
	if _, ok := err.(*cmn.HTTPError); ok {
		return "", false
	}
	msg = err.Error()
	regx := regexp.MustCompile("dial.*(timeout|refused)")
	if unreachable = regx.MatchString(msg); unreachable {
		msg = msg[strings.Index(msg, "dial"):]
	}
	return
}

func redErr(err error) error {
	msg := strings.TrimRight(err.Error(), "\n")
	return errors.New(fred("Error: ") + msg)
}

// Formats error message
func (a *acli) formatErr(err error) error {
	if err == nil {
		return nil
	}
	if msg, unreachable := isUnreachableError(err); unreachable {
		errmsg := fmt.Sprintf("iomon cannot be reached at %s (%s)\n", apiBP.URL, msg)
		errmsg += fmt.Sprintf("Make sure the daemon is running and %s (or environment %s) points to its listener",
			flprn(urlFlag), envURL)
		return redErr(errors.New(errmsg))
	}
	if httpErr, ok := err.(*cmn.HTTPError); ok {
		return redErr(errors.New(httpErr.Message))
	}
	return redErr(err)
}

func onBeforeCommand(c *cli.Context) error {
	// the library disables colors when stdout is not a terminal;
	// never force them back on
	if flagIsSet(c, noColorFlag) {
		color.NoColor = true
	}
	apiBP = api.NewBaseParams(parseStrFlag(c, urlFlag), flagIsSet(c, msgpackFlag))
	return nil
}

func (a *acli) init(version string) {
	app := a.app

	fcyan = color.New(color.FgHiCyan).SprintFunc()
	fred = color.New(color.FgHiRed).SprintFunc()
	fgreen = color.New(color.FgHiGreen).SprintFunc()
	fyellow = color.New(color.FgHiYellow).SprintFunc()

	app.Name = cliName
	app.Usage = "command-line client of the iomon block-storage health monitor"
	app.Version = version
	app.HideHelp = true
	app.Flags = []cli.Flag{cli.HelpFlag, urlFlag, msgpackFlag, noColorFlag}
	app.CommandNotFound = commandNotFoundHandler
	app.Writer = a.outWriter
	app.ErrWriter = a.errWriter
	app.Before = onBeforeCommand
	app.Description = cliDescr
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version, V",
		Usage: "print only the version",
	}
	a.setupCommands()
}

func (a *acli) setupCommands() {
	a.app.Commands = []cli.Command{
		diskCmd,
		tasksCmd,
		journalCmd,
		emmcCmd,
		publishCmd,
		showCmd,
	}
}

func commandNotFoundHandler(c *cli.Context, cmd string) {
	if cmd == "version" {
		fmt.Fprintf(c.App.Writer, "version %s (build %s)\n", c.App.Version, buildTime)
		return
	}
	fmt.Fprintf(c.App.ErrWriter, "%s: unknown command %q, see '%s --help'\n", cliName, cmd, cliName)
	os.Exit(1)
}

// repeat `action` every --refresh interval, --count times (zero: forever)
func repeat(c *cli.Context, action func() error) error {
	var (
		refresh = c.Duration(fl1n(refreshFlag.Name))
		count   = parseIntFlag(c, countFlag)
	)
	for i := 0; ; i++ {
		if err := action(); err != nil {
			return err
		}
		if refresh <= 0 || (count > 0 && i+1 >= count) {
			return nil
		}
		time.Sleep(refresh)
		fmt.Fprintln(c.App.Writer, fcyan("--------"))
	}
}

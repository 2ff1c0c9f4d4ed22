// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/seqmatch/cmd/seqmatch/command"
	"github.com/antgroup/seqmatch/modules/strengthen"
	"github.com/antgroup/seqmatch/modules/trace"
	"github.com/antgroup/seqmatch/pkg/tr"
	"github.com/antgroup/seqmatch/pkg/version"
)

type App struct {
	command.Globals
	Search  command.Search  `cmd:"search" default:"withargs" help:"Search a pattern in a sequence, heap sort it and search again"`
	Sort    command.Sort    `cmd:"sort" help:"Heap sort a sequence"`
	Version command.Version `cmd:"version" help:"Display version information"`
	Debug   bool            `name:"debug" help:"Enable debug mode; analyze timing"`
}

func main() {
	// initialize locale
	_ = tr.Initialize()
	var app App
	ctx := kong.Parse(&app,
		kong.Name("seqmatch"),
		kong.Description(tr.W("seqmatch - find a pattern in a sequence before and after heap sort")),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": version.GetVersionString(),
		},
	)
	now := time.Now()
	m := strengthen.NewMeasurer(strings.ReplaceAll(ctx.Command(), " ", "-"), os.Stderr, app.Debug)
	if app.Verbose {
		trace.EnableDebugMode()
	}
	err := ctx.Run(&app.Globals)
	_ = m.Close()
	if app.Verbose {
		trace.DbgPrint("time spent: %v", time.Since(now))
	}
	if err == nil {
		return
	}
	var e *command.ErrExitCode
	if errors.As(err, &e) {
		os.Exit(e.ExitCode)
	}
	os.Exit(command.ExitGeneric)
}

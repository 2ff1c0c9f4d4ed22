// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/antgroup/seqmatch/modules/trace"
	"github.com/antgroup/seqmatch/pkg/pipeline"
	"github.com/antgroup/seqmatch/pkg/report"
	"github.com/antgroup/seqmatch/pkg/source"
)

type Search struct {
	Common
	Pattern string `short:"p" name:"pattern" help:"Pattern to search for, numbers separated by spaces or commas"`
}

func (c *Search) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	po, ro, err := c.options(g, cfg)
	if err != nil {
		return g.fail(err)
	}
	t := trace.NewTracker(g.Verbose)
	in, err := source.Resolve(&source.Options{
		File:        c.File,
		Pattern:     c.Pattern,
		NeedPattern: true,
		Interactive: g.interactive(),
		Stdin:       g.stdin(),
		Prompter:    g.prompter(),
	})
	if err != nil {
		return g.fail(err)
	}
	t.StepNext("load %s input", in.Mode)
	bar := c.attachProgress(g, po, len(in.Subject))
	r, err := pipeline.RunValues(in.Subject, in.Pattern, po)
	bar.Finish()
	if err != nil {
		return g.fail(err)
	}
	t.StepNext("search, sort, search")
	r.Mode = in.Mode.String()
	ro.ShowInput = in.Mode == source.ModeFile
	if err := report.Write(g.stdout(), r, ro); err != nil {
		return g.fail(err)
	}
	return nil
}

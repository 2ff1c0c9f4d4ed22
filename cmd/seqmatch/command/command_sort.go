// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/antgroup/seqmatch/modules/trace"
	"github.com/antgroup/seqmatch/pkg/pipeline"
	"github.com/antgroup/seqmatch/pkg/report"
	"github.com/antgroup/seqmatch/pkg/source"
)

type Sort struct {
	Common
}

func (c *Sort) Run(g *Globals) error {
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
		Interactive: g.interactive(),
		Stdin:       g.stdin(),
		Prompter:    g.prompter(),
	})
	if err != nil {
		return g.fail(err)
	}
	t.StepNext("load %s input", in.Mode)
	bar := c.attachProgress(g, po, len(in.Subject))
	sorted, _, err := pipeline.SortValues(in.Subject, po)
	bar.Finish()
	if err != nil {
		return g.fail(err)
	}
	t.StepNext("heap sort")
	ro.ShowInput = in.Mode == source.ModeFile
	if err := report.WriteSorted(g.stdout(), in.Mode.String(), in.Subject, sorted, ro); err != nil {
		return g.fail(err)
	}
	return nil
}

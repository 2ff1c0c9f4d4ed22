// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/antgroup/seqmatch/modules/deque"
	"github.com/antgroup/seqmatch/modules/term"
	"github.com/antgroup/seqmatch/modules/trace"
	"github.com/antgroup/seqmatch/pkg/config"
	"github.com/antgroup/seqmatch/pkg/pipeline"
	"github.com/antgroup/seqmatch/pkg/progress"
	"github.com/antgroup/seqmatch/pkg/report"
)

// Common holds the flags shared by search and sort. Unset flags fall back to
// the configuration.
type Common struct {
	File      string `short:"f" name:"file" help:"Read the sequence from a file, gzip and zstd are detected" type:"path"`
	Backing   string `name:"backing" help:"Sequence storage: list or array"`
	Format    string `name:"format" help:"Output format: text, json or toml"`
	Precision int    `name:"precision" help:"Digits after the decimal point in text output" default:"-1"`
	Limit     int    `name:"limit" help:"Maximum elements per sequence, negative for unlimited"`
	Progress  bool   `name:"progress" help:"Show heap sort progress"`
}

func (c *Common) overlay(cfg *config.Config) {
	o := &config.Config{
		Core: config.Core{
			Backing:     c.Backing,
			MaxElements: c.Limit,
		},
		Output: config.Output{
			Format: c.Format,
		},
	}
	if c.Precision >= 0 {
		p := c.Precision
		o.Output.Precision = &p
	}
	cfg.Overwrite(o)
}

func colorLevel(mode string) term.Level {
	switch mode {
	case "always":
		if term.StdoutLevel != term.LevelNone {
			return term.StdoutLevel
		}
		return term.Level256
	case "never":
		return term.LevelNone
	}
	return term.StdoutLevel
}

// options turns the effective configuration into pipeline and report options.
func (c *Common) options(g *Globals, cfg *config.Config) (*pipeline.Options, *report.Options, error) {
	c.overlay(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	b, err := deque.ParseBacking(cfg.BackingName())
	if err != nil {
		return nil, nil, err
	}
	f, err := report.ParseFormat(cfg.FormatName())
	if err != nil {
		return nil, nil, err
	}
	po := &pipeline.Options{
		Backing: b,
		Limit:   cfg.Limit(),
		Debuger: trace.NewDebuger(g.Verbose),
	}
	ro := &report.Options{
		Format:    f,
		Precision: cfg.Precision(),
		Color:     colorLevel(cfg.ColorMode()),
	}
	return po, ro, nil
}

// attachProgress hooks a progress bar onto the sort phase of n elements.
func (c *Common) attachProgress(g *Globals, o *pipeline.Options, n int) *progress.Bar {
	bar := progress.NewBar(g.stderr(), "Sorting", n-1, !c.Progress)
	o.OnSortStep = func(done, total int) {
		bar.Add(1)
	}
	return bar
}

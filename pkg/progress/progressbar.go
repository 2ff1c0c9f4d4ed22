// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"io"
	"os"

	"github.com/antgroup/seqmatch/modules/term"
	"github.com/antgroup/seqmatch/pkg/tr"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const (
	maxWidth = 80
)

// Bar counts finished steps of a long operation. A quiet bar, or one with no
// work to do, renders nothing.
type Bar struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	total int
}

func fillerStyle() mpb.BarStyleComposer {
	style := mpb.BarStyle().Padding(" ")
	switch term.StderrLevel {
	case term.Level16M:
		return style.Filler("\x1b[38;2;72;198;239m#\x1b[0m")
	case term.Level256:
		return style.Filler("\x1b[36m#\x1b[0m")
	}
	return style.Filler("#")
}

// barWidth sizes the bar for the terminal behind w, maxWidth when w is not one.
func barWidth(w io.Writer) int {
	if fd, ok := w.(*os.File); ok && term.IsTerminal(fd.Fd()) {
		return min(term.Width(fd.Fd()), maxWidth)
	}
	return maxWidth
}

func NewBar(w io.Writer, description string, total int, quiet bool) *Bar {
	if quiet || total <= 0 {
		return &Bar{}
	}
	p := mpb.New(
		mpb.WithOutput(w),
		mpb.WithWidth(barWidth(w)),
	)
	task := tr.W(description)
	bar := p.New(int64(total),
		fillerStyle(),
		mpb.PrependDecorators(
			decor.Name(task, decor.WC{W: len(task) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return &Bar{p: p, bar: bar, total: total}
}

func (b *Bar) Add(n int) {
	if b.bar != nil {
		b.bar.IncrBy(n)
	}
}

// Current returns the number of steps recorded so far.
func (b *Bar) Current() int {
	if b.bar == nil {
		return 0
	}
	return int(b.bar.Current())
}

// Finish waits for the final frame. A bar stopped short of its total, as on
// a failed run, is aborted.
func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	if !b.bar.Completed() {
		// keep the partial bar on screen
		b.bar.Abort(false)
	}
	b.p.Wait()
}

// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/antgroup/seqmatch/modules/deque"
	"github.com/antgroup/seqmatch/modules/term"
	"github.com/antgroup/seqmatch/modules/trace"
	"github.com/antgroup/seqmatch/pkg/config"
	"github.com/antgroup/seqmatch/pkg/pipeline"
	"github.com/antgroup/seqmatch/pkg/source"
	"github.com/antgroup/seqmatch/pkg/tr"
	"github.com/antgroup/seqmatch/pkg/version"
)

const (
	ExitGeneric     = 1
	ExitEmptyInput  = 2
	ExitOutOfMemory = 3
	ExitBadInput    = 4
)

type Globals struct {
	Verbose bool        `short:"V" name:"verbose" help:"Make the operation more talkative"`
	Version VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
	Config  string      `name:"config" help:"Load configuration from the given file" type:"path"`

	Stdin    io.Reader       `kong:"-"`
	Stdout   io.Writer       `kong:"-"`
	Stderr   io.Writer       `kong:"-"`
	Prompter source.Prompter `kong:"-"`
}

func (g *Globals) stdin() io.Reader {
	if g.Stdin != nil {
		return g.Stdin
	}
	return os.Stdin
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.Stderr != nil {
		return g.Stderr
	}
	return os.Stderr
}

// interactive reports whether input should be prompted for rather than read
// from the stdin stream.
func (g *Globals) interactive() bool {
	if g.Prompter != nil {
		return true
	}
	if fd, ok := g.stdin().(*os.File); ok {
		return term.IsTerminal(fd.Fd())
	}
	return false
}

func (g *Globals) prompter() source.Prompter {
	if g.Prompter != nil {
		return g.Prompter
	}
	return source.NewSurveyPrompter(nil, nil, nil)
}

func (g *Globals) DbgPrint(format string, args ...any) {
	if !g.Verbose {
		return
	}
	trace.NewDebuger(true).DbgPrint(format, args...)
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version.GetVersionString())
	app.Exit(0)
	return nil
}

type ErrExitCode struct {
	ExitCode int
	Err      error
}

func (e *ErrExitCode) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.ExitCode)
	}
	return e.Err.Error()
}

func (e *ErrExitCode) Unwrap() error {
	return e.Err
}

func IsExitCode(err error, code int) bool {
	var e *ErrExitCode
	if errors.As(err, &e) {
		return e.ExitCode == code
	}
	return false
}

// classify maps an error to its exit status and user facing message key.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, pipeline.ErrEmptySubject):
		return ExitEmptyInput, "Error: Main sequence is empty!"
	case errors.Is(err, pipeline.ErrEmptyPattern):
		return ExitEmptyInput, "Error: Pattern sequence is empty!"
	case errors.Is(err, deque.ErrOutOfMemory):
		return ExitOutOfMemory, "Memory allocation error"
	case errors.Is(err, source.ErrInvalidToken):
		return ExitBadInput, "Error: Invalid input!"
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return ExitBadInput, "Error: Cannot open file!"
	}
	return ExitGeneric, ""
}

// fail reports err on stderr and converts it to an exit status. Interrupted
// prompts exit quietly.
func (g *Globals) fail(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, source.ErrInterrupted) {
		return &ErrExitCode{ExitCode: ExitGeneric, Err: err}
	}
	code, key := classify(err)
	w := g.stderr()
	switch {
	case len(key) == 0:
		fmt.Fprintf(w, "seqmatch: %s\n", term.StderrLevel.Red(err.Error()))
	case g.Verbose:
		fmt.Fprintf(w, "%s (%v)\n", term.StderrLevel.Red(tr.W(key)), err)
	default:
		fmt.Fprintf(w, "%s\n", term.StderrLevel.Red(tr.W(key)))
	}
	return &ErrExitCode{ExitCode: code, Err: err}
}

// loadConfig layers the config files and the environment; bad values are
// reported like any other failure.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, g.fail(err)
	}
	g.DbgPrint("config: backing=%s max_elements=%d format=%s precision=%d color=%s",
		cfg.BackingName(), cfg.Limit(), cfg.FormatName(), cfg.Precision(), cfg.ColorMode())
	return cfg, nil
}

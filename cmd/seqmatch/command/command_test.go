package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/antgroup/seqmatch/modules/term"
	"github.com/antgroup/seqmatch/pkg/config"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	mode    int
	answers []string
}

func (p *fakePrompter) Select(message string, options []string) (int, error) {
	return p.mode, nil
}

func (p *fakePrompter) Input(message string, validate func(string) error) (string, error) {
	if len(p.answers) == 0 {
		return "", errors.New("no more answers")
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if validate != nil {
		if err := validate(a); err != nil {
			return "", err
		}
	}
	return a, nil
}

type env struct {
	dir    string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(config.ENV_SEQMATCH_CONFIG_SYSTEM, filepath.Join(dir, "missing-system.toml"))
	t.Setenv(config.ENV_SEQMATCH_CORE_BACKING, "")
	t.Setenv(config.ENV_SEQMATCH_CORE_MAXELEMENTS, "")
	stdout, stderr := term.StdoutLevel, term.StderrLevel
	term.StdoutLevel, term.StderrLevel = term.LevelNone, term.LevelNone
	t.Cleanup(func() {
		term.StdoutLevel, term.StderrLevel = stdout, stderr
	})
	return &env{dir: dir}
}

func (e *env) globals(stdin string) *Globals {
	return &Globals{
		Stdin:  strings.NewReader(stdin),
		Stdout: &e.stdout,
		Stderr: &e.stderr,
	}
}

func (e *env) file(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func newSearch() *Search {
	return &Search{Common: Common{Precision: -1}}
}

func TestSearchStdin(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, newSearch().Run(e.globals("3 1 4 1 5\n--\n1 5\n")))
	want := `--- Search Results ---
Search in original sequence: Pattern found at position 3
Search in sorted sequence: Pattern not found
Sorted sequence: 1.00 1.00 3.00 4.00 5.00
`
	require.Equal(t, want, e.stdout.String())
	require.Empty(t, e.stderr.String())
}

func TestSearchFile(t *testing.T) {
	e := newEnv(t)
	c := newSearch()
	c.File = e.file(t, "numbers.txt", "3 1 4\n1 5\n")
	c.Pattern = "1,5"
	c.Backing = "array"
	require.NoError(t, c.Run(e.globals("")))
	out := e.stdout.String()
	require.True(t, strings.HasPrefix(out, "Input sequence: 3.00 1.00 4.00 1.00 5.00\n"), out)
	require.Contains(t, out, "Search in original sequence: Pattern found at position 3\n")
}

func TestSearchFilePatternFromStdin(t *testing.T) {
	e := newEnv(t)
	c := newSearch()
	c.File = e.file(t, "numbers.txt", "3 1 4 1 5\n")
	require.NoError(t, c.Run(e.globals("1 5\n")))
	want := `Input sequence: 3.00 1.00 4.00 1.00 5.00
--- Search Results ---
Search in original sequence: Pattern found at position 3
Search in sorted sequence: Pattern not found
Sorted sequence: 1.00 1.00 3.00 4.00 5.00
`
	require.Equal(t, want, e.stdout.String())

	e = newEnv(t)
	c = newSearch()
	c.File = e.file(t, "numbers.txt", "3 1 4 1 5\n")
	err := c.Run(e.globals(""))
	require.True(t, IsExitCode(err, ExitEmptyInput), "got %v", err)
	require.Contains(t, e.stderr.String(), "Error: Pattern sequence is empty!")
}

func TestSearchInteractive(t *testing.T) {
	e := newEnv(t)
	g := e.globals("")
	g.Prompter = &fakePrompter{mode: 0, answers: []string{"9 8 7", "7 8"}}
	c := newSearch()
	c.Precision = 1
	require.NoError(t, c.Run(g))
	out := e.stdout.String()
	require.NotContains(t, out, "Input sequence")
	require.Contains(t, out, "Search in original sequence: Pattern not found\n")
	require.Contains(t, out, "Search in sorted sequence: Pattern found at position 0\n")
	require.Contains(t, out, "Sorted sequence: 7.0 8.0 9.0\n")
}

func TestSearchJSON(t *testing.T) {
	e := newEnv(t)
	c := newSearch()
	c.Format = "json"
	c.Progress = true
	require.NoError(t, c.Run(e.globals("3 1 4 1 5 -- 1 5")))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(e.stdout.Bytes(), &doc))
	require.Equal(t, "keyboard", doc["mode"])
	require.Equal(t, map[string]any{"found": true, "position": float64(3)}, doc["original"])
	require.Len(t, doc["digest"], 64)
}

func TestSearchFailures(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		setup   func(e *env, c *Search)
		code    int
		message string
	}{
		{"empty pattern", "1 2 3", nil, ExitEmptyInput, "Error: Pattern sequence is empty!"},
		{"empty subject", "-- 1", nil, ExitEmptyInput, "Error: Main sequence is empty!"},
		{"nothing", "", nil, ExitEmptyInput, "Error: Main sequence is empty!"},
		{"invalid token", "1 x 3 -- 1", nil, ExitBadInput, "Error: Invalid input!"},
		{"invalid pattern flag", "1 2", func(e *env, c *Search) { c.Pattern = "1 abc" }, ExitBadInput, "Error: Invalid input!"},
		{"missing file", "", func(e *env, c *Search) { c.File = filepath.Join(e.dir, "nope.txt") }, ExitBadInput, "Error: Cannot open file!"},
		{"out of memory", "1 2 3 -- 1", func(e *env, c *Search) { c.Limit = 2 }, ExitOutOfMemory, "Memory allocation error"},
		{"bad backing", "1 -- 1", func(e *env, c *Search) { c.Backing = "tree" }, ExitGeneric, "tree"},
		{"bad format", "1 -- 1", func(e *env, c *Search) { c.Format = "yaml" }, ExitGeneric, "yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			c := newSearch()
			if tt.setup != nil {
				tt.setup(e, c)
			}
			err := c.Run(e.globals(tt.stdin))
			require.Error(t, err)
			require.True(t, IsExitCode(err, tt.code), "got %v", err)
			require.Contains(t, e.stderr.String(), tt.message)
			require.Empty(t, e.stdout.String())
		})
	}
}

func TestSearchConfigFile(t *testing.T) {
	e := newEnv(t)
	g := e.globals("1 2 3 -- 2 3")
	g.Config = e.file(t, "seqmatch.toml", "[core]\nmax_elements = 2\n")
	err := newSearch().Run(g)
	require.True(t, IsExitCode(err, ExitOutOfMemory), "got %v", err)

	e = newEnv(t)
	g = e.globals("2 1 -- 1")
	g.Config = e.file(t, "seqmatch.toml", "[output]\nprecision = 0\nformat = \"text\"\n")
	require.NoError(t, newSearch().Run(g))
	require.Contains(t, e.stdout.String(), "Sorted sequence: 1 2\n")
}

func TestSearchVerbose(t *testing.T) {
	e := newEnv(t)
	g := e.globals("1 x")
	g.Verbose = true
	err := newSearch().Run(g)
	require.True(t, IsExitCode(err, ExitBadInput))
	require.Contains(t, e.stderr.String(), "token 2 'x'")
}

func TestSort(t *testing.T) {
	e := newEnv(t)
	c := &Sort{Common: Common{Precision: -1}}
	require.NoError(t, c.Run(e.globals("3 -1.5 2 -- 9")))
	require.Equal(t, "Sorted sequence: -1.50 2.00 3.00\n", e.stdout.String())

	e = newEnv(t)
	c = &Sort{Common: Common{Precision: -1}}
	err := c.Run(e.globals(""))
	require.True(t, IsExitCode(err, ExitEmptyInput))
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, (&Version{}).Run(e.globals("")))
	require.True(t, strings.HasPrefix(e.stdout.String(), "seqmatch "))

	e.stdout.Reset()
	require.NoError(t, (&Version{JSON: true}).Run(e.globals("")))
	var m map[string]string
	require.NoError(t, json.Unmarshal(e.stdout.Bytes(), &m))
	require.Contains(t, m, "version")
}

func TestErrExitCode(t *testing.T) {
	inner := errors.New("boom")
	err := error(&ErrExitCode{ExitCode: 3, Err: inner})
	require.ErrorIs(t, err, inner)
	require.True(t, IsExitCode(err, 3))
	require.False(t, IsExitCode(err, 2))
	require.False(t, IsExitCode(inner, 3))
	require.Equal(t, "exit status 4", (&ErrExitCode{ExitCode: 4}).Error())
}

// runWithin runs fn and fails the test when it does not return in time.
func runWithin(t *testing.T, d time.Duration, fn func() error) error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(d):
		t.Fatalf("command did not return within %v", d)
	}
	return nil
}

func TestProgressFailures(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		limit int
		sort  bool
		code  int
	}{
		{"search empty pattern", "3 1 4 1 5\n", 0, false, ExitEmptyInput},
		{"search out of memory", "3 1 4 1 5 -- 1 5", 3, false, ExitOutOfMemory},
		{"search empty subject", "-- 1", 0, false, ExitEmptyInput},
		{"sort out of memory", "3 1 4 1 5", 2, true, ExitOutOfMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			common := Common{Precision: -1, Progress: true, Limit: tt.limit}
			err := runWithin(t, 5*time.Second, func() error {
				if tt.sort {
					return (&Sort{Common: common}).Run(e.globals(tt.stdin))
				}
				return (&Search{Common: common}).Run(e.globals(tt.stdin))
			})
			require.True(t, IsExitCode(err, tt.code), "got %v", err)
			require.Empty(t, e.stdout.String())
		})
	}
}

func TestProgressSuccess(t *testing.T) {
	e := newEnv(t)
	c := newSearch()
	c.Progress = true
	err := runWithin(t, 5*time.Second, func() error {
		return c.Run(e.globals("3 1 4 1 5 -- 1 5"))
	})
	require.NoError(t, err)
	require.Contains(t, e.stdout.String(), "Sorted sequence: 1.00 1.00 3.00 4.00 5.00\n")
}

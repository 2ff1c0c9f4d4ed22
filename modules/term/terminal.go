package term

import (
	"os"
	"regexp"
	"strings"

	"github.com/antgroup/seqmatch/modules/strengthen"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type Level int

const (
	LevelNone Level = iota
	Level256
	Level16M
)

const (
	ENV_SEQMATCH_FORCE_TRUECOLOR = "SEQMATCH_FORCE_TRUECOLOR"
)

var (
	StderrLevel Level
	StdoutLevel Level
)

func detectLevel() Level {
	if strengthen.SimpleAtob(os.Getenv(ENV_SEQMATCH_FORCE_TRUECOLOR), false) {
		return Level16M
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return LevelNone
	}
	if _, ok := os.LookupEnv("WT_SESSION"); ok {
		return Level16M
	}
	colorTermEnv := os.Getenv("COLORTERM")
	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(colorTermEnv, "24bit") ||
		strings.Contains(colorTermEnv, "truecolor") {
		return Level16M
	}
	if strings.Contains(termEnv, "256") || strings.Contains(colorTermEnv, "256") {
		return Level256
	}
	if termEnv == "dumb" {
		return LevelNone
	}
	return Level256
}

func init() {
	level := detectLevel()
	if IsTerminal(os.Stderr.Fd()) {
		StderrLevel = level
	}
	if IsTerminal(os.Stdout.Fd()) {
		StdoutLevel = level
	}
}

// IsTerminal reports whether fd is a terminal, including cygwin/msys2 ptys.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

// Width returns the column count of the terminal on fd, 80 when unknown.
func Width(fd uintptr) int {
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

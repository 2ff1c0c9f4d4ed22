package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antgroup/seqmatch/modules/term"
)

type Debuger interface {
	DbgPrint(format string, args ...any)
}

func NewDebuger(verbose bool) Debuger {
	return &debuger{verbose: verbose, w: os.Stderr}
}

type debuger struct {
	verbose bool
	w       io.Writer
}

func format(level term.Level, message string) []byte {
	var buffer bytes.Buffer
	for _, s := range strings.Split(message, "\n") {
		switch level {
		case term.Level16M:
			_, _ = buffer.WriteString("\x1b[38;2;254;225;64m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
		case term.Level256:
			_, _ = buffer.WriteString("\x1b[33m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
		default:
			_, _ = buffer.WriteString("* ")
			_, _ = buffer.WriteString(s)
			_ = buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

// DbgPrint writes a debug message to stderr when debug mode is enabled.
func DbgPrint(format string, args ...any) {
	if !debugMode {
		return
	}
	dbgPrint(os.Stderr, format, args...)
}

func dbgPrint(w io.Writer, f string, args ...any) {
	_, _ = w.Write(format(term.StderrLevel, fmt.Sprintf(f, args...)))
}

func (d debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	dbgPrint(d.w, format, args...)
}

var (
	_ Debuger = &debuger{}
)

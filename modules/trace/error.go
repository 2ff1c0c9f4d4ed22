package trace

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var debugMode bool

// EnableDebugMode raises logrus to debug level and turns on DbgPrint output
// for package level helpers.
func EnableDebugMode() {
	debugMode = true
	logrus.SetLevel(logrus.DebugLevel)
}

func IsDebugMode() bool {
	return debugMode
}

func Location(skip int) (string, int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "?", line
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?", line
	}
	return fn.Name(), line
}

// Errorf logs the formatted message with the caller location and returns it
// as an error. %w verbs are honored.
func Errorf(format string, a ...any) error {
	fn, line := Location(2)
	err := fmt.Errorf(format, a...)
	logrus.Error(fn, ":", line, " ", err.Error())
	return err
}

// Wrap is Errorf for an existing error; nil stays nil.
func Wrap(err error, what string) error {
	if err == nil {
		return nil
	}
	fn, line := Location(2)
	logrus.Error(fn, ":", line, " ", what, ": ", err.Error())
	return fmt.Errorf("%s: %w", what, err)
}

type Tracker struct {
	debug bool
	last  time.Time
}

func NewTracker(debugMode bool) *Tracker {
	return &Tracker{debug: debugMode, last: time.Now()}
}

// StepNext prints the time spent since the previous step.
func (t *Tracker) StepNext(format string, a ...any) {
	if !t.debug {
		return
	}
	s := fmt.Sprintf(format, a...)
	now := time.Now()
	fmt.Fprintf(os.Stderr, "\x1b[35m* %s use time: %v\x1b[0m\n", strings.Trim(s, "\n"), now.Sub(t.last))
	t.last = now
}

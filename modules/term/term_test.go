package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	ss := "\x1b[38;2;254;225;64m* sorted 1.00 2.00\x1b[0m"
	require.Equal(t, "* sorted 1.00 2.00", StripANSI(ss))
}

func TestPaint(t *testing.T) {
	require.Equal(t, "found", LevelNone.Green("found"))
	s := Level256.Green("found")
	require.NotEqual(t, "found", s)
	require.Equal(t, "found", StripANSI(s))
}

func TestDetectLevel(t *testing.T) {
	t.Setenv(ENV_SEQMATCH_FORCE_TRUECOLOR, "on")
	require.Equal(t, Level16M, detectLevel())
	t.Setenv(ENV_SEQMATCH_FORCE_TRUECOLOR, "")
	t.Setenv("NO_COLOR", "1")
	require.Equal(t, LevelNone, detectLevel())
}

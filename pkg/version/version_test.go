package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersionString(t *testing.T) {
	s := GetVersionString()
	require.Contains(t, s, GetVersion())
	require.Contains(t, s, GetBuildCommit())
	require.True(t, strings.HasSuffix(s, GetBuildTime()))
	require.Contains(t, Platform(), "/")
}

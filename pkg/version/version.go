// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// set by -ldflags "-X github.com/antgroup/seqmatch/pkg/version.version=..."
var (
	version     = "0.0.0-dev"
	buildCommit = "none"
	buildTime   = "unknown"
)

// GetVersionString returns a standard version header
func GetVersionString() string {
	return fmt.Sprintf("%s %v (%s), built %v", filepath.Base(os.Args[0]), version, buildCommit, buildTime)
}

// GetVersion returns the semver compatible version number
func GetVersion() string {
	return version
}

func GetBuildCommit() string {
	return buildCommit
}

// GetBuildTime returns the time at which the build took place
func GetBuildTime() string {
	return buildTime
}

// Platform returns GOOS/GOARCH and the Go release the binary was built with.
func Platform() string {
	return fmt.Sprintf("%s/%s %s", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package datatable

// Version is set via ldflags
var Version string

// Build version is set via ldflags
var Build string

// Info on this application with version and build
func Info() string {
	return "datatable " + GetVersion() + " (" + GetBuild() + ")"
}

// GetVersion returns the version of the build
// This is the semantic version of the application, or "unstable"
func GetVersion() string {
	if Version == "" {
		return "unstable"
	}
	return Version
}

// GetBuild returns the git sha of the build
func GetBuild() string {
	if Build == "" {
		return "development"
	}
	return Build
}

// ============================================================================
// algebralab - Algebra teaching toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI, server and TUI
// Author:      algebralab team
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the algebralab components
const (
	// Toolkit version
	Platform = "1.0.0"

	// Component versions
	Lab    = "1.0.0"
	Server = "1.0.0"
	TUI    = "1.0.0"
)

// Build metadata, set with -ldflags "-X .../version.GitCommit=..."
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ServiceVersion returns the version for a given component name
func ServiceVersion(name string) string {
	switch name {
	case "lab":
		return Lab
	case "server":
		return Server
	case "tui":
		return TUI
	default:
		return Platform
	}
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Info returns the build information of the running binary.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Platform,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (b BuildInfo) String() string {
	return fmt.Sprintf("algebralab %s (commit %s, built %s, %s %s)",
		b.Version, b.GitCommit, b.BuildDate, b.GoVersion, b.Platform)
}

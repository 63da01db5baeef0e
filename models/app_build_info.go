// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo carries the build metadata injected by linker flags. The
// build version backs GET /api/version when no version is configured.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values stay empty;
// they are rendered as "N/A" only by String.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string { return a.date }
func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders the startup banner.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orUnknown(a.version), orUnknown(a.date), orUnknown(a.commit))
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}
	return s
}

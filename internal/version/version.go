// Copyright 2022 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.



// Package version implements reading of build version information.
// version 包实现构建版本信息的读取。
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/sunyihoo/go-web3/version"
)

const ourPath = "github.com/sunyihoo/go-web3" // Path to our module

// Family holds the textual version string for major.minor
var Family = fmt.Sprintf("%d.%d", version.Major, version.Minor)

// Semantic holds the textual version string for major.minor.patch.
var Semantic = fmt.Sprintf("%d.%d.%d", version.Major, version.Minor, version.Patch)

// WithMeta holds the textual version string including the metadata.
var WithMeta = func() string {
	v := Semantic
	if version.Meta != "" {
		v += "-" + version.Meta
	}
	return v
}()

// WithCommit appends the first 8 characters of the commit hash and, for
// unstable releases, the commit date to the version string.
// WithCommit 在版本字符串后附加提交哈希的前 8 位，不稳定版本还会附加提交日期。
func WithCommit(gitCommit, gitDate string) string {
	vsn := WithMeta
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if (version.Meta != "stable") && (gitDate != "") {
		vsn += "-" + gitDate
	}
	return vsn
}

// Info returns build and platform information about the current binary.
//
// If the package that is currently executing is a prefixed by our go-web3
// module path, it will print out commit and date VCS information. Otherwise,
// it will assume it's imported by a third-party and will return the imported
// version and whether it was replaced by another module.
// Info 返回当前二进制文件的构建与平台信息。
func Info() (version, vcs string) {
	version = WithMeta
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return version, ""
	}
	version = versionInfo(buildInfo)
	if status, ok := VCS(); ok {
		modified := ""
		if status.Dirty {
			modified = " (dirty)"
		}
		commit := status.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		vcs = commit + "-" + status.Date + modified
	}
	return version, vcs
}

// versionInfo returns version information for the currently executing
// implementation.
func versionInfo(info *debug.BuildInfo) string {
	if info.Main.Path == ourPath {
		// Main module is ours, use our version.
		return WithMeta
	}
	// Not our main module, use the version of the module we were imported as.
	for _, dep := range info.Deps {
		if dep.Path == ourPath {
			v := dep.Version
			if dep.Replace != nil {
				v += fmt.Sprintf(" (replaced by %s@%s)", dep.Replace.Path, dep.Replace.Version)
			}
			return v
		}
	}
	return fmt.Sprintf("%s (unknown)", WithMeta)
}

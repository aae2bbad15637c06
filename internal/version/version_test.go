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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-web3/version"
)

func TestWithCommit(t *testing.T) {
	require.Equal(t, "0.3.0-unstable", WithMeta)
	require.Equal(t, "0.3", Family)
	require.Equal(t, WithMeta, WithCommit("", ""))
	require.Equal(t, WithMeta+"-9b68875d", WithCommit("9b68875d68b409eb", ""))
	if version.Meta != "stable" {
		require.Equal(t, WithMeta+"-9b68875d-20250301", WithCommit("9b68875d68b409eb", "20250301"))
	}
}

func TestBuildInfoVCS(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2025-03-01T10:20:30Z"},
		{Key: "vcs.modified", Value: "true"},
	}}
	vcs, ok := buildInfoVCS(info)
	require.True(t, ok)
	require.Equal(t, VCSInfo{Commit: "0123456789abcdef", Date: "20250301", Dirty: true}, vcs)

	_, ok = buildInfoVCS(&debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "01234567"}}})
	require.False(t, ok)
}

func TestVersionInfo(t *testing.T) {
	require.Equal(t, WithMeta, versionInfo(&debug.BuildInfo{Main: debug.Module{Path: ourPath}}))

	imported := &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/app"},
		Deps: []*debug.Module{{Path: ourPath, Version: "v0.3.0", Replace: &debug.Module{Path: "../go-web3", Version: ""}}},
	}
	require.Equal(t, "v0.3.0 (replaced by ../go-web3@)", versionInfo(imported))
	require.Equal(t, WithMeta+" (unknown)", versionInfo(&debug.BuildInfo{}))
}

package version

import (
	"runtime/debug"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()

	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func withVars(t *testing.T, version, commit, built string) {
	t.Helper()

	v, c, b := Version, GitCommit, BuildTime
	Version, GitCommit, BuildTime = version, commit, built
	t.Cleanup(func() { Version, GitCommit, BuildTime = v, c, b })
}

func TestGetPrefersLdflags(t *testing.T) {
	withVars(t, "v1.2.3", "abcdef0123456", "2025-03-04T05:06:07Z")
	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}})

	info := Get()

	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "abcdef0123456", info.GitCommit)
	assert.Equal(t, time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC), info.BuildTime)
	assert.True(t, info.IsRelease())
}

func TestGetFallsBackToBuildInfo(t *testing.T) {
	withVars(t, "dev", "unknown", "unknown")

	tests := []struct {
		name        string
		bi          *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "module version",
			bi:          &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}},
			wantVersion: "v0.4.0",
			wantCommit:  "unknown",
		},
		{
			name: "vcs revision",
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			wantVersion: "dev-0123456",
			wantCommit:  "0123456789abcdef",
		},
		{
			name:        "no build info",
			bi:          nil,
			wantVersion: "dev",
			wantCommit:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.bi)

			info := Get()
			assert.Equal(t, tt.wantVersion, info.Version)
			assert.Equal(t, tt.wantCommit, info.GitCommit)
			assert.Equal(t, tt.wantVersion, info.Short())
		})
	}
}

func TestString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc1234",
		Modified:  true,
		GoVersion: "go1.24.4",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "Version: v1.0.0\nCommit: abc1234 (modified)\nGo: go1.24.4\nPlatform: linux/amd64", info.String())
	assert.False(t, Info{Version: "dev-abc1234"}.IsRelease())
}

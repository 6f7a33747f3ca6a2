package csvtools

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Values are injected via ldflags in release builds; tests accept both the
// development defaults and release-shaped values.

func TestVersion(t *testing.T) {
	v := Version()
	assert.True(t, v == "dev" || strings.HasPrefix(v, "v"), "unexpected version %q", v)
	if v != "dev" {
		assert.True(t, strings.ContainsAny(v, "0123456789"), "release version %q has no digits", v)
	}
}

func TestCommit(t *testing.T) {
	c := Commit()
	if c == "unknown" {
		return
	}
	assert.GreaterOrEqual(t, len(c), 7, "short hash expected, got %q", c)
	assert.Empty(t, strings.Trim(c, "0123456789abcdef"), "non-hex commit %q", c)
}

func TestBuildTime(t *testing.T) {
	bt := BuildTime()
	if bt != "unknown" {
		assert.Contains(t, bt, "T", "RFC3339 timestamp expected, got %q", bt)
	}
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "csvtools v"+Version(), VersionString())
	assert.NotContains(t, VersionString(), "\n")
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()
	for _, want := range []string{
		"Version: " + Version(),
		"Commit: " + Commit(),
		"Build Time: " + BuildTime(),
		"Go Version: " + GoVersion(),
	} {
		assert.Contains(t, info, want)
	}
	assert.Len(t, strings.Split(info, "\n"), 4)
}

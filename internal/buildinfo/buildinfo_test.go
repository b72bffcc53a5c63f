package buildinfo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/internal/buildinfo"
)

func TestString(t *testing.T) {
	v, c, d := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = v, c, d })

	buildinfo.Version, buildinfo.Commit, buildinfo.Date = "v1.2.3", "abc123", "2026-01-02"
	require.Equal(t, "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-02", buildinfo.String())
	require.Equal(t, "{{.Name}} v1.2.3 (abc123, 2026-01-02)\n", buildinfo.Template())
}

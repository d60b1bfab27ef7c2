package versioning

import (
	"appcenter-go/internal/cstmerr"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNewer(t *testing.T) {
	cases := []struct {
		candidate, current string
		want               bool
	}{
		{"1.2.0", "1.0.0", true},
		{"1.2.0", "2.0.0", false},
		{"1.0.0", "1.0.0", false},
		{"1.10.0", "1.9.9", true},
		{"1.2", "1.2.0", false},
		{"1.2.1", "1.2", true},
		{"2", "1.99.99", true},
		{"v1.3.0", "1.2.9", true},
		{"1.0.0", "1.0.0-beta.1", true},
		{"1.0.0-rc.1", "1.0.0", false},
		{" 1.0.1 ", "1.0.0", true},
	}
	for _, tc := range cases {
		t.Run(tc.candidate+"_vs_"+tc.current, func(t *testing.T) {
			got, err := IsNewer(tc.candidate, tc.current)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompare(t *testing.T) {
	c, err := Compare("1.0.0", "1.0.1")
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare("3.0", "3.0.0")
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestMalformedVersions(t *testing.T) {
	for _, bad := range []string{"", "latest", "1.x.0", "1.2.3.4.5", "1.2-beta"} {
		t.Run(bad, func(t *testing.T) {
			_, err := IsNewer(bad, "1.0.0")

			var parseErr *cstmerr.VersionParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, bad, parseErr.Version)
		})
	}
}

func TestMalformedCurrentVersion(t *testing.T) {
	_, err := IsNewer("1.0.0", "nightly")

	var parseErr *cstmerr.VersionParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "nightly", parseErr.Version)
}

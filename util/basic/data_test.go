package basic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSizeBytes(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"0", 0, true},
		{"10737418240", 10737418240, true},
		{" 512 ", 512, true},
		{"", 0, false},
		{"-1", 0, false},
		{"20G", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseSizeBytes(c.in)
		require.Equal(t, c.ok, ok, "input %q", c.in)
		require.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestTrimAllSpace(t *testing.T) {
	require.Equal(t, "10GiB", TrimAllSpace("10 GiB"))
	require.Equal(t, "abc", TrimAllSpace(" a b\tc "))
	require.Equal(t, "", TrimAllSpace("   "))
}

package bot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDescription(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"   ":            "",
		"-":              "",
		"skip":           "",
		" SKIP ":         "",
		"taxi home":      "taxi home",
		"  lunch meet  ": "lunch meet",
	}
	for in, want := range cases {
		require.Equal(t, want, normalizeDescription(in), "input %q", in)
	}
}

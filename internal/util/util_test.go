package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Wireless Mouse Pro":    "wireless-mouse-pro",
		"T-Shirt (Blue) -- XL!": "t-shirt-blue-xl",
		"Crème Brûlée":          "creme-brulee",
		"  --Hello--  ":         "hello",
		"iPhone 15 Pro Max":     "iphone-15-pro-max",
		"":                      "",
	}

	for input, want := range tests {
		assert.Equal(t, want, Slugify(input), "Slugify(%q)", input)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := map[int64]string{
		0:                      "0 B",
		512:                    "512 B",
		1024:                   "1.0 KB",
		1536:                   "1.5 KB",
		5 << 20:                "5.0 MB",
		5 * 1024 * 1024 * 1024: "5.0 GB",
	}

	for n, want := range tests {
		assert.Equal(t, want, FormatBytes(n), "FormatBytes(%d)", n)
	}
}

func TestHashToken(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))

	sum, err := Checksum(strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, HashToken("abc"), sum)
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken(32)
	require.NoError(t, err)
	b, err := RandomToken(32)
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

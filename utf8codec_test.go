package rill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF8RoundTripDecodeEncode(t *testing.T) {
	inputs := []string{"hello", "héllo", "日本語", "", "a\x00b", "😀"}
	for _, s := range inputs {
		cps, err := DecodeUTF8(s)
		require.NoError(t, err)
		assert.Equal(t, s, EncodeUTF8(cps))
	}
}

func TestUTF8RejectsSurrogateCodepoints(t *testing.T) {
	// 0xED 0xA0 0x80 encodes U+D800, a lone surrogate.
	_, err := DecodeUTF8(string([]byte{0xED, 0xA0, 0x80}))
	require.Error(t, err)
}

func TestUTF8RejectsTruncatedSequence(t *testing.T) {
	_, err := DecodeUTF8(string([]byte{0xC3}))
	require.Error(t, err)
}

func TestUTF8RejectsInvalidContinuation(t *testing.T) {
	_, err := DecodeUTF8(string([]byte{0xC3, 0x28}))
	require.Error(t, err)
}

func TestUTF8RejectsOutOfRangeCodepoint(t *testing.T) {
	// 0xF4 0x90 0x80 0x80 would decode to U+110000, past U+10FFFF.
	_, err := DecodeUTF8(string([]byte{0xF4, 0x90, 0x80, 0x80}))
	require.Error(t, err)
}

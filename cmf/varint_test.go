// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarintConcreteVectors(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x00}},
		{16511, []byte{0xFF, 0x7F}},
		{16512, []byte{0x80, 0x80, 0x00}},
	}
	for _, c := range cases {
		buf := make([]byte, maxVarintEncodeBytes)
		n := putVarint(buf, c.v)
		require.Equal(t, c.want, buf[:n], "encode(%d)", c.v)
		require.Equal(t, len(c.want), varintSize(c.v))

		got, pos, err := getVarint(buf, 0)
		require.Nil(t, err)
		require.Equal(t, c.v, got)
		require.Equal(t, n, pos)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 2, 63, 64, 127, 128, 129, 6512, 16511, 16512,
		1 << 20, 1 << 32, 1 << 40, 1 << 62,
		9295997013522923647, // the largest value decodable in 9 bytes
	}
	for _, v := range values {
		buf := make([]byte, maxVarintEncodeBytes)
		n := putVarint(buf, v)
		require.LessOrEqual(t, n, maxVarintBytes, "value %d must fit the 9-byte cap", v)
		got, pos, err := getVarint(buf, 0)
		require.Nil(t, err)
		require.Equal(t, v, got)
		require.Equal(t, n, pos)
	}
}

func TestVarintUniqueEncoding(t *testing.T) {
	seen := map[string]uint64{}
	for _, v := range []uint64{0, 1, 127, 128, 16511, 16512, 1 << 20, 1 << 40} {
		buf := make([]byte, maxVarintEncodeBytes)
		n := putVarint(buf, v)
		key := string(buf[:n])
		if other, ok := seen[key]; ok {
			t.Fatalf("values %d and %d share an encoding", v, other)
		}
		seen[key] = v
	}
}

func TestVarintExtremeValueNeedsTenthByte(t *testing.T) {
	// math.MaxUint64 needs a 10th byte to encode, one more than a
	// parser will read back: it overflows on decode.
	const maxUint64 = ^uint64(0)
	require.Greater(t, varintSize(maxUint64), maxVarintBytes)

	buf := make([]byte, maxVarintEncodeBytes)
	n := putVarint(buf, maxUint64)
	require.Equal(t, maxVarintEncodeBytes, n)

	_, _, err := getVarint(buf, 0)
	require.NotNil(t, err)
	require.True(t, ErrVarintOverflow.Is(err))
}

func TestVarintTruncated(t *testing.T) {
	_, _, err := getVarint([]byte{0x80}, 0)
	require.NotNil(t, err)
	require.True(t, ErrTruncated.Is(err))
}

func TestVarintOverflowAllContinuations(t *testing.T) {
	buf := make([]byte, maxVarintBytes)
	for i := range buf {
		buf[i] = 0xFF
	}
	_, _, err := getVarint(buf, 0)
	require.NotNil(t, err)
	require.True(t, ErrVarintOverflow.Is(err))
}

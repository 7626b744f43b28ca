package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name             string
		page, size       int
		wantPage, wantSz int
	}{
		{"defaults", 0, 0, 0, 20},
		{"negative page", -3, 10, 0, 10},
		{"negative size", 2, -1, 2, 20},
		{"clamped", 1, 500, 1, 100},
		{"exact max", 0, 100, 0, 100},
		{"huge page", math.MaxInt, 100, MaxPage(100), 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, s := NormalizePage(tc.page, tc.size, 20, 100)
			require.Equal(t, tc.wantPage, p)
			require.Equal(t, tc.wantSz, s)
		})
	}
}

func TestMaxPageKeepsSkipInRange(t *testing.T) {
	req := require.New(t)
	for _, size := range []int{1, 20, 100, 7} {
		p := MaxPage(size)
		req.LessOrEqual(int64(p), math.MaxInt64/int64(size))
		req.Positive(int64(p) * int64(size))
	}
	req.Zero(MaxPage(0))
}

func TestParseUint64(t *testing.T) {
	req := require.New(t)
	id, ok := ParseUint64("12")
	req.True(ok)
	req.Equal(uint64(12), id)

	_, ok = ParseUint64("0")
	req.False(ok)
	_, ok = ParseUint64("-1")
	req.False(ok)
	_, ok = ParseUint64("abc")
	req.False(ok)

	req.Equal(5, AtoiDefault("", 5))
	req.Equal(5, AtoiDefault("x", 5))
	req.Equal(-2, AtoiDefault("-2", 5))
}

func TestValidateDTO(t *testing.T) {
	type frame struct {
		Action string `validate:"required,oneof=ping mark-read"`
	}
	req := require.New(t)
	req.NoError(ValidateDTO(&frame{Action: "ping"}))
	err := ValidateDTO(&frame{Action: "dance"})
	req.Error(err)
	req.Contains(err.Error(), "Action")
}

package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{name: "whole amount", in: "100", want: 10000},
		{name: "two decimals", in: "40.00", want: 4000},
		{name: "cents only", in: "0.01", want: 1},
		{name: "zero is allowed here", in: "0", want: 0},
		{name: "negative passes conversion", in: "-5.25", want: -525},
		{name: "sub-cent precision rejected", in: "10.005", wantErr: ErrTooPrecise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			require.NoError(t, err)
			got, err := ToMinorUnits(d)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositiveMinorUnits(t *testing.T) {
	_, err := PositiveMinorUnits(decimal.Zero)
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = PositiveMinorUnits(decimal.NewFromFloat(-1))
	assert.ErrorIs(t, err, ErrNotPositive)

	v, err := PositiveMinorUnits(decimal.RequireFromString("59.99"))
	require.NoError(t, err)
	assert.Equal(t, int64(5999), v)
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, "40", FromMinorUnits(4000).String())
	assert.Equal(t, "0.01", FromMinorUnits(1).String())
	assert.Equal(t, "59.99", FromMinorUnits(5999).String())
	assert.Equal(t, "40.00", FromMinorUnits(4000).StringFixed(2))
}

func TestRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 4000, 123456789} {
		v, err := ToMinorUnits(FromMinorUnits(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, v)
	}
}

package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthBetween(t *testing.T) {
	tests := []struct {
		name      string
		cur, prev int64
		want      float64
		wantValid bool
	}{
		{name: "positive growth", cur: 120, prev: 100, want: 20, wantValid: true},
		{name: "decline", cur: 80, prev: 100, want: -20, wantValid: true},
		{name: "flat", cur: 100, prev: 100, want: 0, wantValid: true},
		{name: "zero baseline", cur: 100, prev: 0, wantValid: false},
		{name: "collapse to zero", cur: 0, prev: 50, want: -100, wantValid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrowthBetween(tt.cur, tt.prev)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.InDelta(t, tt.want, got.Value, 1e-9)
			}
		})
	}
}

func TestPercentFormat(t *testing.T) {
	assert.Equal(t, "12.3", Percent{Value: 12.345, Valid: true}.Format(1))
	assert.Equal(t, "12.35", Percent{Value: 12.345, Valid: true}.Format(2))
	assert.Equal(t, "-5.0", Percent{Value: -5, Valid: true}.Format(1))
	assert.Equal(t, "n/a", NotComputable().Format(1))
	assert.Equal(t, "n/a", NotComputable().Format(2))
}

func TestPercentJSON(t *testing.T) {
	data, err := json.Marshal(Percent{Value: 7.5, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "7.5", string(data))

	data, err = json.Marshal(NotComputable())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var p Percent
	require.NoError(t, json.Unmarshal([]byte("null"), &p))
	assert.False(t, p.Valid)

	require.NoError(t, json.Unmarshal([]byte("42.5"), &p))
	assert.True(t, p.Valid)
	assert.InDelta(t, 42.5, p.Value, 1e-9)
}

func TestPercentOf(t *testing.T) {
	got := PercentOf(30, 120)
	assert.True(t, got.Valid)
	assert.InDelta(t, 25.0, got.Value, 1e-9)
}

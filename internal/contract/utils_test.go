package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vahanlens/vahanlens/schema"
)

func TestGetPlainGrowthLabel(t *testing.T) {
	tests := []struct {
		name   string
		growth schema.Percent
		want   string
	}{
		{name: "surge", growth: schema.Percent{Value: 30, Valid: true}, want: SurgeValue},
		{name: "surge boundary", growth: schema.Percent{Value: 25, Valid: true}, want: SurgeValue},
		{name: "gain", growth: schema.Percent{Value: 10, Valid: true}, want: GainValue},
		{name: "gain boundary", growth: schema.Percent{Value: 2, Valid: true}, want: GainValue},
		{name: "flat positive", growth: schema.Percent{Value: 1.9, Valid: true}, want: FlatValue},
		{name: "flat zero", growth: schema.Percent{Value: 0, Valid: true}, want: FlatValue},
		{name: "flat negative", growth: schema.Percent{Value: -1.9, Valid: true}, want: FlatValue},
		{name: "decline boundary", growth: schema.Percent{Value: -2, Valid: true}, want: DeclineValue},
		{name: "decline", growth: schema.Percent{Value: -40, Valid: true}, want: DeclineValue},
		{name: "not computable", growth: schema.NotComputable(), want: NoDataValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainGrowthLabel(tt.growth))
		})
	}
}

func TestGetColorGrowthLabel(t *testing.T) {
	// Colored labels always contain the plain text regardless of whether
	// the terminal strips escape codes.
	for _, g := range []schema.Percent{
		{Value: 30, Valid: true},
		{Value: 10, Valid: true},
		{Value: 0, Valid: true},
		{Value: -10, Valid: true},
		schema.NotComputable(),
	} {
		assert.Contains(t, GetColorGrowthLabel(g), GetPlainGrowthLabel(g))
	}
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", TruncateName("short", 10))
	assert.Equal(t, "exact", TruncateName("exact", 5))
	assert.Equal(t, "ab...", TruncateName("abcdefgh", 5))
	assert.Equal(t, "abcd", TruncateName("abcd", 3), "too-narrow width leaves name alone")
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "No", "false", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, got, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, "/dev/stdout", f.Name())

	path := t.TempDir() + "/out.txt"
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, path, f.Name())
}

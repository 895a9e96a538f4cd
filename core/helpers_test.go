package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vahanlens/vahanlens/schema"
)

func pd(t *testing.T, s string) schema.Period {
	t.Helper()
	p, err := schema.ParsePeriod(s)
	require.NoError(t, err)
	return p
}

func rec(t *testing.T, period string, category schema.Category, maker, state string, count int64) schema.RegistrationRecord {
	t.Helper()
	return schema.RegistrationRecord{
		Period:   pd(t, period),
		Category: category,
		Maker:    maker,
		State:    state,
		Count:    count,
	}
}

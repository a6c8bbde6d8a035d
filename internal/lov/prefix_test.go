// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lov

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/formgen/internal/registry"
)

func TestPrefixShape(t *testing.T) {
	tests := []struct {
		name     string
		baseText string
		want     string // regexp over the full prefix
	}{
		{name: "plain name", baseText: "Maintenance Log", want: `^MAI-[0-9A-F]{2}$`},
		{name: "short name padded", baseText: "ab", want: `^ABX-[0-9A-F]{2}$`},
		{name: "non-alphanumerics stripped", baseText: "P-1 sheet!", want: `^P1S-[0-9A-F]{2}$`},
		{name: "empty name all padding", baseText: "", want: `^XXX-[0-9A-F]{2}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newGenerator(t, "")

			got, err := gen.Prefix(tt.baseText)
			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile(tt.want), got)
			assert.True(t, gen.Registry.Contains(registry.KindPrefix, got))
		})
	}
}

func TestPrefixDeterministicPerName(t *testing.T) {
	// The hash part depends only on the name, so fresh registries agree.
	first, err := newGenerator(t, "").Prefix("Maintenance Log")
	require.NoError(t, err)
	second, err := newGenerator(t, "").Prefix("Maintenance Log")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPrefixCollisionCounter(t *testing.T) {
	gen := newGenerator(t, "")

	first, err := gen.Prefix("Maintenance Log")
	require.NoError(t, err)

	second, err := gen.Prefix("Maintenance Log")
	require.NoError(t, err)
	assert.Equal(t, first+"1", second)

	third, err := gen.Prefix("Maintenance Log")
	require.NoError(t, err)
	assert.Equal(t, first+"2", third)
}

func TestPrefixTimestampFallbackAndExhaustion(t *testing.T) {
	gen := newGenerator(t, "")
	gen.Now = func() time.Time {
		return time.Date(2026, 1, 2, 12, 34, 0, 0, time.UTC)
	}

	first, err := gen.Prefix("Maintenance Log")
	require.NoError(t, err)

	// Burn the counter: suffixes 1 through 99.
	for i := 0; i < 99; i++ {
		_, err := gen.Prefix("Maintenance Log")
		require.NoError(t, err)
	}

	// Counter exhausted: the HHMM timestamp on the three-char base takes over.
	fallback, err := gen.Prefix("Maintenance Log")
	require.NoError(t, err)
	assert.Equal(t, first[:3]+"-1234", fallback)

	// And when even that is taken, the generator gives up.
	_, err = gen.Prefix("Maintenance Log")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExhausted))
}

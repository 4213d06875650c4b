package jsonrepair

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairUnitsFixesSameIssuesAsRepair(t *testing.T) {
	input := utf16.Encode([]rune(`{name: 'John'}`))

	result, err := RepairUnits(input)
	require.NoError(t, err)
	assert.Equal(t, `{"name": "John"}`, string(utf16.Decode(result)))
}

func TestRepairUnitsRoundTripsNonASCII(t *testing.T) {
	input := utf16.Encode([]rune(`{"city": "Zürich"}`))

	result, err := RepairUnits(input)
	require.NoError(t, err)
	assert.Equal(t, `{"city": "Zürich"}`, string(utf16.Decode(result)))
}

func TestRepairUnitsPropagatesErrors(t *testing.T) {
	input := utf16.Encode([]rune(``))

	_, err := RepairUnits(input)
	require.Error(t, err)
}

func TestRepairUnitsHonorsMaxDepth(t *testing.T) {
	input := utf16.Encode([]rune(`[[[1]]]`))

	_, err := RepairUnits(input, WithMaxDepth(2))
	require.Error(t, err)
}

package csvkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnToIndex(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"AB", 27},
		{"AZ", 51},
		{"BA", 52},
		{"a", 0},
		{" c ", 2},
	}
	for _, tc := range cases {
		got, err := ColumnToIndex(tc.label)
		require.NoError(t, err, "label %q", tc.label)
		assert.Equal(t, tc.want, got, "label %q", tc.label)
	}
}

func TestColumnToIndexRejectsBadLabels(t *testing.T) {
	for _, label := range []string{"", "1", "A1", "A-B", "あ"} {
		_, err := ColumnToIndex(label)
		assert.ErrorIs(t, err, ErrInvalidColumnLabel, "label %q", label)
	}
}

func TestColumnLabelRoundTrip(t *testing.T) {
	for index := 0; index < 200; index++ {
		label := ColumnLabel(index)
		got, err := ColumnToIndex(label)
		require.NoError(t, err)
		assert.Equal(t, index, got, "label %q", label)
	}
	assert.Equal(t, "A", ColumnLabel(0))
	assert.Equal(t, "AA", ColumnLabel(26))
}

package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{
			name: "no markers",
			text: "Plain prose without citations.",
			want: []int{},
		},
		{
			name: "single marker",
			text: "The mitochondria is the powerhouse [1].",
			want: []int{1},
		},
		{
			name: "multiple markers in order of appearance",
			text: "First [2], then [1], then [3].",
			want: []int{2, 1, 3},
		},
		{
			name: "duplicates removed",
			text: "[1] says X and [1] also says Y [2].",
			want: []int{1, 2},
		},
		{
			name: "multi-digit marker",
			text: "Deep cut [12].",
			want: []int{12},
		},
		{
			name: "non-numeric brackets ignored",
			text: "An array[i] and a [note] are not citations.",
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Markers(tt.text))
		})
	}
}

func TestResolve(t *testing.T) {
	titles := []string{"Alpha", "Beta"}

	citations := Resolve("Compare [1] with [2], but [3] is unknown.", titles)
	require.Len(t, citations, 3)

	assert.Equal(t, Citation{Index: 1, SourceTitle: "Alpha", Resolved: true}, citations[0])
	assert.Equal(t, Citation{Index: 2, SourceTitle: "Beta", Resolved: true}, citations[1])

	// Out-of-range markers stay in the list so renderers can still show
	// the bare number.
	assert.Equal(t, Citation{Index: 3, Resolved: false}, citations[2])
}

func TestResolveAgainstEmptySourceList(t *testing.T) {
	citations := Resolve("Citing [1] into the void.", nil)
	require.Len(t, citations, 1)
	assert.False(t, citations[0].Resolved)
}

package dropdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sumWidths(rects []Rect) int {
	total := 0
	for _, r := range rects {
		total += r.Width
	}
	return total
}

func TestLayoutSegmentsEqualSplit(t *testing.T) {
	t.Parallel()

	rects := LayoutSegments(100, 1, make([]int, 3))
	require.Len(t, rects, 3)
	require.Equal(t, []int{33, 33, 34}, []int{rects[0].Width, rects[1].Width, rects[2].Width})
	require.Equal(t, 100, sumWidths(rects))
	require.Equal(t, 33, rects[1].X)
	require.Equal(t, 66, rects[2].X)
}

func TestLayoutSegmentsCustomWidths(t *testing.T) {
	t.Parallel()

	rects := LayoutSegments(100, 2, []int{40, 0, 0})
	require.Equal(t, 40, rects[0].Width)
	require.Equal(t, 30, rects[1].Width)
	require.Equal(t, 30, rects[2].Width)
	require.Equal(t, 2, rects[2].Height)
	require.Equal(t, 100, sumWidths(rects))
}

func TestLayoutSegmentsLastAbsorbsRemainder(t *testing.T) {
	t.Parallel()

	rects := LayoutSegments(50, 1, []int{10, 10, 10})
	require.Equal(t, 30, rects[2].Width)
	require.Equal(t, 50, sumWidths(rects))
}

func TestLayoutSegmentsEmpty(t *testing.T) {
	t.Parallel()

	require.Nil(t, LayoutSegments(80, 1, nil))
}

func TestSeparatorRects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "single", n: 1, want: 0},
		{name: "pair", n: 2, want: 1},
		{name: "four", n: 4, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seps := separatorRects(LayoutSegments(80, 1, make([]int, tt.n)))
			require.Len(t, seps, tt.want)
		})
	}

	seps := separatorRects(LayoutSegments(80, 1, make([]int, 2)))
	require.Equal(t, R(39, 0, 1, 1), seps[0])
}

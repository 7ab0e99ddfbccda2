package privAllele

import (
    "fmt"
    "testing"

    "github.com/stretchr/testify/require"
)

// builds a store with the given population sizes, genotypes are irrelevant
// for the size filter
func newSizedStore(t *testing.T, sizes map[string]int) *GenotypeStore {
    t.Helper()

    var pops []string

    for pop, n := range sizes {
        for i := 0; i < n; i++ {
            pops = append(pops, pop)
        }
    }

    row := make([]uint8, len(pops))

    return newTestStore(t, pops, [][]uint8{row})
}

// a population of size 8 is excluded by nmin 10 regardless of anything else
func TestSplitBySize(t *testing.T) {
    gs := newSizedStore(t, map[string]int{"big": 12, "small": 8})

    split := SplitBySize(gs, 10, quietReporter())

    require.Equal(t, []string{"big"}, split.Retained)
    require.Equal(t, []string{"small"}, split.Discarded)
    require.Empty(t, split.SmallButRetained)
}

// a non positive nmin falls back to the default of 10 with a warning
func TestSplitBySizeInvalidMinimum(t *testing.T) {
    gs := newSizedStore(t, map[string]int{"big": 12, "small": 8})

    for _, nmin := range []int{0, -3} {
        split := SplitBySize(gs, nmin, quietReporter())

        require.Equal(t, []string{"big"}, split.Retained, fmt.Sprintf("nmin=%d", nmin))
        require.Equal(t, []string{"small"}, split.Discarded)
    }
}

// populations retained by a low nmin but below the advisory minimum are
// flagged, not discarded
func TestSplitBySizeAdvisory(t *testing.T) {
    gs := newSizedStore(t, map[string]int{"big": 15, "mid": 6, "tiny": 2})

    split := SplitBySize(gs, 5, quietReporter())

    require.Equal(t, []string{"big", "mid"}, split.Retained)
    require.Equal(t, []string{"tiny"}, split.Discarded)
    require.Equal(t, []string{"mid"}, split.SmallButRetained)
}

// the reserved focal label never enters any tier
func TestSplitBySizeSkipsReserved(t *testing.T) {
    gs := newSizedStore(t, map[string]int{"big": 12, ReservedLabel: 1})

    split := SplitBySize(gs, 10, quietReporter())

    require.Equal(t, []string{"big"}, split.Retained)
    require.Empty(t, split.Discarded)
}

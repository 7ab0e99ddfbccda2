package privAllele

import (
    "path/filepath"
    "testing"

    "github.com/kshedden/gonpy"
    "github.com/stretchr/testify/require"
)

func TestWriteTallyNPY(t *testing.T) {
    fn := filepath.Join(t.TempDir(), "run.tally.npy")

    tally := &Tally{
        Pops:    []string{"A", "B"},
        Count:   map[string]int{"A": 0, "B": 7},
        Missing: map[string]int{"A": 3, "B": 3},
        Vacuous: map[string]int{"A": 0, "B": 2},
    }

    require.NoError(t, WriteTallyNPY(fn, tally))

    r, err := gonpy.NewFileReader(fn)
    require.NoError(t, err)
    require.Equal(t, []int{2, 3}, r.Shape)

    data, err := r.GetFloat64()
    require.NoError(t, err)

    require.Equal(t, []float64{0, 0, 3, 7, 2, 3}, data)
}

package privAllele

import (
    "testing"

    "github.com/stretchr/testify/require"
)

func quietReporter() *Reporter {
    return NewReporter(0)
}

func TestPrepareFocal(t *testing.T) {
    gs := newTestStore(t, []string{"X", "X", "Y"}, [][]uint8{{0, 0, 0}})

    require.NoError(t, PrepareFocal(gs, "S2"))

    require.Equal(t, []string{"S2"}, gs.IndividualsOf(ReservedLabel))
    require.Empty(t, gs.IndividualsOf("Y"))
}

func TestPrepareFocalInvalid(t *testing.T) {
    gs := newTestStore(t, []string{"X", "X"}, [][]uint8{{0, 0}})

    require.ErrorIs(t, PrepareFocal(gs, "nobody"), ErrInvalidFocalIndividual)
}

func TestPrepareFocalReservedCollision(t *testing.T) {
    // a pre-existing population already named "unknown" is fatal
    gs := newTestStore(t, []string{"X", ReservedLabel}, [][]uint8{{0, 0}})

    require.ErrorIs(t, PrepareFocal(gs, "S0"), ErrDuplicateReservedLabel)
}

// threshold = 0 with counts {A: 0, B: 1} accepts A only
func TestSelectCandidatesThreshold(t *testing.T) {
    tally := &Tally{
        Pops:    []string{"A", "B"},
        Count:   map[string]int{"A": 0, "B": 1},
        Missing: map[string]int{"A": 0, "B": 0},
        Vacuous: map[string]int{"A": 0, "B": 0},
    }

    require.Equal(t, []string{"A"}, SelectCandidates(tally, 0, quietReporter()))
    require.Equal(t, []string{"A", "B"}, SelectCandidates(tally, 1, quietReporter()))
}

// raising the threshold never shrinks the accepted set
func TestSelectCandidatesMonotone(t *testing.T) {
    tally := &Tally{
        Pops:    []string{"A", "B", "C", "D"},
        Count:   map[string]int{"A": 0, "B": 2, "C": 5, "D": 2},
        Missing: map[string]int{},
        Vacuous: map[string]int{},
    }

    var prev []string

    for thresh := 0; thresh <= 6; thresh++ {
        accepted := SelectCandidates(tally, thresh, quietReporter())

        require.GreaterOrEqual(t, len(accepted), len(prev))
        require.Subset(t, accepted, prev)

        prev = accepted
    }

    require.Equal(t, []string{"A", "B", "C", "D"}, prev)
}

// a negative threshold is corrected to 0, never fatal
func TestSelectCandidatesNegativeThreshold(t *testing.T) {
    tally := &Tally{
        Pops:    []string{"A", "B"},
        Count:   map[string]int{"A": 0, "B": 3},
        Missing: map[string]int{},
        Vacuous: map[string]int{},
    }

    require.Equal(t, []string{"A"}, SelectCandidates(tally, -7, quietReporter()))
}

func TestAssembleDataset(t *testing.T) {
    gs := newTestStore(t, []string{ReservedLabel, "X", "X", "Y"}, [][]uint8{
        {HomRef, HomAlt, Het, HomRef},    // polymorphic within {focal, X}
        {HomRef, HomRef, HomRef, HomAlt}, // monomorphic once Y is dropped
        {Het, HomRef, HomAlt, Missing},   // polymorphic
    })

    ds, err := AssembleDataset(gs, "S0", []string{"X"})
    require.NoError(t, err)

    require.Equal(t, []string{"X"}, ds.Accepted)

    ids := make([]string, len(ds.Samples))

    for i, s := range ds.Samples {
        ids[i] = s.ID
    }

    // original column order, Y is gone
    require.Equal(t, []string{"S0", "S1", "S2"}, ids)

    // the locus that became monomorphic within the subset is pruned
    require.Equal(t, 1, ds.MonomorphicCut)
    require.Len(t, ds.SNPs, 2)
    require.Equal(t, []string{"rs0", "rs2"}, []string{ds.SNPs[0].ID, ds.SNPs[1].ID})

    require.Equal(t, [][]uint8{
        {HomRef, HomAlt, Het},
        {Het, HomRef, HomAlt},
    }, ds.Typing)
}

// an empty accepted set is a valid outcome: the data set holds the focal
// individual alone
func TestAssembleDatasetFocalOnly(t *testing.T) {
    gs := newTestStore(t, []string{ReservedLabel, "X", "X"}, [][]uint8{
        {HomRef, HomAlt, HomAlt},
        {Het, HomRef, HomRef},
    })

    ds, err := AssembleDataset(gs, "S0", nil)
    require.NoError(t, err)

    require.Len(t, ds.Samples, 1)
    require.Equal(t, "S0", ds.Samples[0].ID)

    // single hom call is monomorphic, a het is polymorphic on its own
    require.Len(t, ds.SNPs, 1)
    require.Equal(t, "rs1", ds.SNPs[0].ID)
}

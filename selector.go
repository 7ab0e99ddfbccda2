package privAllele

import (
    "fmt"
    "sort"
)

// Dataset is the materialized candidate set: the focal individual plus all
// individuals of the accepted populations, with monomorphic loci removed
type Dataset struct {
    Samples []Sample
    SNPs    []SNP
    Typing  [][]uint8

    Accepted        []string // accepted population labels, sorted
    MonomorphicCut  int      // loci removed as monomorphic after subsetting
}

// PrepareFocal relabels the focal individual to the reserved population
// label and checks the invariants around it, all violations are fatal and
// reported before any counting happens
func PrepareFocal(gs *GenotypeStore, focalID string) error {
    if _, err := gs.ColumnOf(focalID); err != nil {
        return fmt.Errorf("%w: %s", ErrInvalidFocalIndividual, focalID)
    }

    // the reserved label must not be a pre-existing population
    if len(gs.IndividualsOf(ReservedLabel)) > 0 {
        return fmt.Errorf("%w: %q", ErrDuplicateReservedLabel, ReservedLabel)
    }

    if err := gs.Relabel(focalID, ReservedLabel); err != nil {
        return err
    }

    // a labeling collision would corrupt every downstream membership query
    if n := len(gs.IndividualsOf(ReservedLabel)); n != 1 {
        return fmt.Errorf("%w: %d carriers of %q", ErrAmbiguousFocalCount, n, ReservedLabel)
    }

    return nil
}

// SelectCandidates applies the private allele threshold to the tally
// a negative threshold is corrected to 0 with a warning
// populations with Count <= threshold remain plausible sources
func SelectCandidates(tally *Tally, threshold int, rep *Reporter) []string {
    if threshold < 0 {
        rep.Warnf("negative private allele threshold %d, using 0", threshold)

        threshold = 0
    }

    var accepted []string

    for _, pop := range tally.Pops {
        if tally.Count[pop] <= threshold {
            accepted = append(accepted, pop)

            rep.Detailf("population %s accepted (%d private, %d vacuous, %d missing)",
                pop, tally.Count[pop], tally.Vacuous[pop], tally.Missing[pop])
        } else {
            rep.Detailf("population %s excluded (%d private > threshold %d)",
                pop, tally.Count[pop], threshold)
        }
    }

    sort.Strings(accepted)

    rep.Progressf("threshold filter: %d of %d populations plausible", len(accepted), len(tally.Pops))

    return accepted
}

// AssembleDataset builds the final retained data set: the focal individual
// plus every member of the accepted populations, then prunes the loci that
// became monomorphic within the subset
// an empty accepted set yields a data set of the focal individual alone,
// an uninformative but valid outcome
func AssembleDataset(gs *GenotypeStore, focalID string, accepted []string) (*Dataset, error) {
    focalCol, err := gs.ColumnOf(focalID)

    if err != nil {
        return nil, fmt.Errorf("%w: %s", ErrInvalidFocalIndividual, focalID)
    }

    keep := map[int]bool{focalCol: true}

    for _, pop := range accepted {
        cols := gs.columnsOf(pop)

        if len(cols) == 0 {
            return nil, fmt.Errorf("%w: population %s", ErrNotFound, pop)
        }

        for _, col := range cols {
            keep[col] = true
        }
    }

    // keep the original column order of the matrix
    cols := make([]int, 0, len(keep))

    for col := range keep {
        cols = append(cols, col)
    }

    sort.Ints(cols)

    samples := make([]Sample, len(cols))

    for i, col := range cols {
        samples[i] = gs.samples[col]
    }

    typing := make([][]uint8, len(gs.typing))

    for k, markerDat := range gs.typing {
        row := make([]uint8, len(cols))

        for i, col := range cols {
            row[i] = markerDat[col]
        }

        typing[k] = row
    }

    snps, typing, removed := FilterMonomorphic(gs.snps, typing)

    return &Dataset{
        Samples:        samples,
        SNPs:           snps,
        Typing:         typing,
        Accepted:       append([]string(nil), accepted...),
        MonomorphicCut: removed,
    }, nil
}

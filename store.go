package privAllele

import (
    "fmt"
    "sort"
)

// GenotypeStore is a read only view over the genotype matrix and the
// population assignment of the samples
// the matrix is marker major (rows are loci, columns are samples) and is
// never modified through the store, the only permitted mutation is the one
// time relabeling of a sample's population
type GenotypeStore struct {
    samples []Sample
    snps    []SNP
    typing  [][]uint8
    idx     map[string]int // sample ID -> column index
}

// NewGenotypeStore validates the structure of the data set and wraps it
// the matrix must have one row per marker and one column per sample
func NewGenotypeStore(samples []Sample, snps []SNP, typing [][]uint8) (*GenotypeStore, error) {
    if len(typing) != len(snps) {
        return nil, fmt.Errorf("%w: %d matrix rows vs %d markers", ErrStructure, len(typing), len(snps))
    }

    for i, row := range typing {
        if len(row) != len(samples) {
            return nil, fmt.Errorf("%w: row %d has %d entries vs %d samples", ErrStructure, i, len(row), len(samples))
        }
    }

    idx := make(map[string]int, len(samples))

    for i, s := range samples {
        if _, ok := idx[s.ID]; ok {
            return nil, fmt.Errorf("%w: duplicated sample ID %s", ErrStructure, s.ID)
        }

        idx[s.ID] = i
    }

    return &GenotypeStore{samples: samples, snps: snps, typing: typing, idx: idx}, nil
}

func (gs *GenotypeStore) SampleCount() int {
    return len(gs.samples)
}

func (gs *GenotypeStore) MarkerCount() int {
    return len(gs.typing)
}

// Samples returns a copy of the sample list in matrix column order
func (gs *GenotypeStore) Samples() []Sample {
    out := make([]Sample, len(gs.samples))
    copy(out, gs.samples)

    return out
}

// SNPs returns a copy of the marker metadata in matrix row order
func (gs *GenotypeStore) SNPs() []SNP {
    out := make([]SNP, len(gs.snps))
    copy(out, gs.snps)

    return out
}

// Typing exposes the genotype matrix for the collaborator utilities
// the rows are shared with the store and must be treated as read only
func (gs *GenotypeStore) Typing() [][]uint8 {
    return gs.typing
}

// ColumnOf returns the matrix column index of a sample ID
func (gs *GenotypeStore) ColumnOf(id string) (int, error) {
    col, ok := gs.idx[id]

    if !ok {
        return 0, fmt.Errorf("%w: sample %s", ErrNotFound, id)
    }

    return col, nil
}

// GenotypeOf returns the genotype call of one sample at one locus
func (gs *GenotypeStore) GenotypeOf(id string, locus int) (uint8, error) {
    col, ok := gs.idx[id]

    if !ok {
        return 0, fmt.Errorf("%w: sample %s", ErrNotFound, id)
    }

    if locus < 0 || locus >= len(gs.typing) {
        return 0, fmt.Errorf("%w: locus %d", ErrNotFound, locus)
    }

    return gs.typing[locus][col], nil
}

// IndividualsOf returns the sample IDs assigned to a population label
// in matrix column order, nil for an unknown label
func (gs *GenotypeStore) IndividualsOf(pop string) []string {
    var ids []string

    for _, s := range gs.samples {
        if s.Pop == pop {
            ids = append(ids, s.ID)
        }
    }

    return ids
}

// columnsOf returns the matrix column indexes of the members of a population
func (gs *GenotypeStore) columnsOf(pop string) []int {
    var cols []int

    for i, s := range gs.samples {
        if s.Pop == pop {
            cols = append(cols, i)
        }
    }

    return cols
}

// Populations returns the distinct population labels sorted lexicographically
// populations are always derived from the current assignment, never cached,
// so a relabel is immediately visible
func (gs *GenotypeStore) Populations() []string {
    seen := make(map[string]bool)

    var pops []string

    for _, s := range gs.samples {
        if !seen[s.Pop] {
            seen[s.Pop] = true
            pops = append(pops, s.Pop)
        }
    }

    sort.Strings(pops)

    return pops
}

// Relabel moves one sample to a new population
// this changes the membership view of both the old and the new label and
// is the only mutation the store permits
func (gs *GenotypeStore) Relabel(id, newPop string) error {
    col, ok := gs.idx[id]

    if !ok {
        return fmt.Errorf("%w: sample %s", ErrNotFound, id)
    }

    gs.samples[col].Pop = newPop

    return nil
}

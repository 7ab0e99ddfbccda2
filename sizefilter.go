package privAllele

import (
    "sort"
)

// population size policy
// populations below the minimum size are excluded from the analysis even
// when they would be the only population sharing an allele, absence claims
// on a few individuals are statistically unreliable
const (
    // fallback when the user supplied minimum is not a positive number
    DefaultMinPopSize = 10

    // retained populations below this size only trigger a warning
    AdvisoryMinPopSize = 10
)

// SizeSplit partitions the population labels by sample count
type SizeSplit struct {
    Retained         []string // size >= nmin, candidates of the analysis
    Discarded        []string // size < nmin, excluded from the analysis
    SmallButRetained []string // retained but below the advisory minimum
}

// SplitBySize partitions the populations of the store by the minimum size
// threshold, a non positive nmin is corrected to the default with a warning
// the reserved focal label never enters any tier
func SplitBySize(gs *GenotypeStore, nmin int, rep *Reporter) SizeSplit {
    if nmin <= 0 {
        rep.Warnf("minimum population size %d is not positive, using %d", nmin, DefaultMinPopSize)

        nmin = DefaultMinPopSize
    }

    var split SizeSplit

    for _, pop := range gs.Populations() {
        if pop == ReservedLabel {
            continue
        }

        size := len(gs.IndividualsOf(pop))

        if size >= nmin {
            split.Retained = append(split.Retained, pop)

            if size < AdvisoryMinPopSize {
                split.SmallButRetained = append(split.SmallButRetained, pop)
            }
        } else {
            split.Discarded = append(split.Discarded, pop)

            rep.Detailf("population %s discarded (%d samples, minimum %d)", pop, size, nmin)
        }
    }

    // Populations() is sorted but keep the contract explicit
    sort.Strings(split.Retained)
    sort.Strings(split.Discarded)
    sort.Strings(split.SmallButRetained)

    for _, pop := range split.SmallButRetained {
        rep.Warnf("population %s retained with only %d samples (advisory minimum %d)",
            pop, len(gs.IndividualsOf(pop)), AdvisoryMinPopSize)
    }

    rep.Progressf("size filter: %d populations retained, %d discarded", len(split.Retained), len(split.Discarded))

    return split
}

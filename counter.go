package privAllele

import (
    "fmt"
    "runtime"
    "sync"
)

// Tally holds the per population result of one counting run for one focal
// individual, it is created fresh per run and never mutated afterwards
type Tally struct {
    Pops    []string       // candidate populations in the order they were counted
    Count   map[string]int // loci with a private allele of the focal individual
    Missing map[string]int // loci skipped because the focal call was missing
    Vacuous map[string]int // subset of Count where the population had zero non missing calls
}

// per population slot the workers write into, assembled into the maps at the end
type popTally struct {
    count   int
    missing int
    vacuous int
}

// privateAt decides the private allele condition at one locus
// g is the non missing focal call, n0/n1/n2 are the counts of the non
// missing calls of the candidate population at the locus
// a population with zero non missing calls satisfies the condition
// vacuously, this deliberately follows the original behaviour (see the
// open question note in DESIGN.md)
func privateAt(g uint8, n0, n1, n2 int) bool {
    switch g {
        case HomRef:
            // REF is private iff the population is fixed for ALT
            return n0 == 0 && n1 == 0
        case HomAlt:
            // ALT is private iff the population is fixed for REF
            return n2 == 0 && n1 == 0
        case Het:
            // one allele of the heterozygote is private iff the population
            // is fixed for either allele
            return n1 == 0 && (n0 == 0 || n2 == 0)
    }

    return false
}

// countPop tallies one candidate population over all loci
func countPop(typing [][]uint8, focalCol int, popCols []int) popTally {
    var t popTally

    for _, markerDat := range typing {
        g := markerDat[focalCol]

        if g == Missing {
            t.missing++
            continue
        }

        var n0, n1, n2 int

        for _, col := range popCols {
            switch markerDat[col] {
                case HomRef:
                    n0++
                case Het:
                    n1++
                case HomAlt:
                    n2++
            }
        }

        if privateAt(g, n0, n1, n2) {
            t.count++

            if n0 == 0 && n1 == 0 && n2 == 0 {
                t.vacuous++
            }
        }
    }

    return t
}

// CountPrivateAlleles computes for each candidate population the number of
// loci where an allele of the focal individual is absent from the
// population, plus the number of loci skipped for a missing focal call
// the scan is scattered over workers goroutines, each population is counted
// by exactly one worker into its own slot so the result is independent of
// the worker count, workers <= 0 means all CPUs
func CountPrivateAlleles(gs *GenotypeStore, focalID string, pops []string, workers int) (*Tally, error) {
    focalCol, err := gs.ColumnOf(focalID)

    if err != nil {
        return nil, err
    }

    popCols := make([][]int, len(pops))

    for i, pop := range pops {
        cols := gs.columnsOf(pop)

        if len(cols) == 0 {
            return nil, fmt.Errorf("%w: population %s", ErrNotFound, pop)
        }

        popCols[i] = cols
    }

    if workers <= 0 {
        workers = runtime.NumCPU()
    }

    if workers > len(pops) {
        workers = len(pops)
    }

    slots := make([]popTally, len(pops))

    tasks := make(chan int)

    var wg sync.WaitGroup

    wg.Add(workers)

    for w := 0; w < workers; w++ {
        go func() {
            defer wg.Done()

            for i := range tasks {
                slots[i] = countPop(gs.typing, focalCol, popCols[i])
            }
        }()
    }

    for i := range pops {
        tasks <- i
    }

    close(tasks)

    wg.Wait()

    tally := &Tally{
        Pops:    append([]string(nil), pops...),
        Count:   make(map[string]int, len(pops)),
        Missing: make(map[string]int, len(pops)),
        Vacuous: make(map[string]int, len(pops)),
    }

    for i, pop := range pops {
        tally.Count[pop] = slots[i].count
        tally.Missing[pop] = slots[i].missing
        tally.Vacuous[pop] = slots[i].vacuous
    }

    return tally, nil
}

package privAllele

// LocusMetric holds the recalculated per locus statistics of a data set
// call rate and MAF change whenever samples are subset, so these are always
// derived from the current matrix, never carried over
type LocusMetric struct {
    CallRate float64 // fraction of non missing calls
    MAF      float64 // minor allele frequency among non missing calls
    Het      float64 // fraction of heterozygous calls among non missing calls
}

// polymorphic reports whether more than one allele is observed among the
// non missing calls of one matrix row
// a single het call already proves both alleles, otherwise both homozygote
// states must occur, an all missing locus is not polymorphic
func polymorphic(markerDat []uint8) bool {
    var n0, n1, n2 int

    for _, geno := range markerDat {
        switch geno {
            case HomRef:
                n0++
            case Het:
                n1++
            case HomAlt:
                n2++
        }
    }

    if n1 > 0 {
        return true
    }

    return n0 > 0 && n2 > 0
}

// FilterMonomorphic removes the loci where at most one allele is observed
// and returns the pruned markers and matrix plus the number of removed loci
// the matrix is shared with the input, only the row set is filtered
func FilterMonomorphic(snps []SNP, typing [][]uint8) ([]SNP, [][]uint8, int) {
    keptSNPs := make([]SNP, 0, len(snps))
    keptRows := make([][]uint8, 0, len(typing))

    for k, markerDat := range typing {
        if polymorphic(markerDat) {
            keptSNPs = append(keptSNPs, snps[k])
            keptRows = append(keptRows, markerDat)
        }
    }

    return keptSNPs, keptRows, len(typing) - len(keptRows)
}

// CountMonomorphic returns the number of monomorphic loci without pruning,
// used for the informational pre-analysis check
func CountMonomorphic(typing [][]uint8) int {
    var count int

    for _, markerDat := range typing {
        if !polymorphic(markerDat) {
            count++
        }
    }

    return count
}

// LocusMetrics recalculates call rate, MAF and heterozygosity for every
// locus of the matrix
// loci without any non missing call get zero values
func LocusMetrics(typing [][]uint8) []LocusMetric {
    metrics := make([]LocusMetric, len(typing))

    for k, markerDat := range typing {
        var n0, n1, n2 int

        for _, geno := range markerDat {
            switch geno {
                case HomRef:
                    n0++
                case Het:
                    n1++
                case HomAlt:
                    n2++
            }
        }

        typed := n0 + n1 + n2

        if typed == 0 {
            continue
        }

        // REF allele count among the 2*typed alleles
        refAlleles := 2 * n0 + n1
        altAlleles := 2 * typed - refAlleles

        minor := refAlleles

        if altAlleles < minor {
            minor = altAlleles
        }

        metrics[k] = LocusMetric{
            CallRate: float64(typed) / float64(len(markerDat)),
            MAF:      float64(minor) / float64(2 * typed),
            Het:      float64(n1) / float64(typed),
        }
    }

    return metrics
}

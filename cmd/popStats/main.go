// CLI tool to print per population genotyping statistics of a data set:
// sample count, mean call rate, mean heterozygosity and MAF quartiles of
// the loci recalculated within the population.
package main

import (
    "fmt"
    "os"
    "bufio"
    "flag"
    "sort"
    "gonum.org/v1/gonum/stat"
    "github.com/zhorvath/privAllele"
)

func printHelp() {
    fmt.Fprintln(os.Stderr,
`USAGE
popStats <DATA.(bed|geno)>

The tool reads a binary PLINK (.bed, .fam, .bim), EIGENSTRAT or PACKEDANCESTRYMAP (.geno, .ind, .snp) data set with population labels and prints a per population statistics table to the STDOUT with the columns
    POP        population label
    N          sample count
    CALLRATE   mean per-locus call rate within the population
    HET        mean per-locus heterozygosity within the population
    MAF_Q1     first quartile of the per-locus minor allele frequencies
    MAF_MED    median of the per-locus minor allele frequencies
    MAF_Q3     third quartile of the per-locus minor allele frequencies

All metrics are recalculated from the calls of the population members only, a locus with no call in the population contributes zero values.`)

    os.Exit(0)
}

func fatal(err error) {
    fmt.Fprintln(os.Stderr, err)
    os.Exit(1)
}

// subset the matrix columns of one population
func popTyping(typing [][]uint8, cols []int) [][]uint8 {
    sub := make([][]uint8, len(typing))

    for k, markerDat := range typing {
        row := make([]uint8, len(cols))

        for i, col := range cols {
            row[i] = markerDat[col]
        }

        sub[k] = row
    }

    return sub
}

func main() {
    var help bool

    flag.BoolVar(&help, "help", false, "print help")

    flag.Parse()

    args := flag.Args()

    if help || len(args) != 1 {
        printHelp()
    }

    gs, _, _, err := privAllele.LoadDataset(args[0])

    if err != nil {
        fatal(err)
    }

    writer := bufio.NewWriter(os.Stdout)

    fmt.Fprintln(writer, "POP\tN\tCALLRATE\tHET\tMAF_Q1\tMAF_MED\tMAF_Q3")

    for _, pop := range gs.Populations() {
        ids := gs.IndividualsOf(pop)

        cols := make([]int, len(ids))

        for i, id := range ids {
            // IDs come from the store so the lookup cannot fail
            cols[i], _ = gs.ColumnOf(id)
        }

        metrics := privAllele.LocusMetrics(popTyping(gs.Typing(), cols))

        callRates := make([]float64, len(metrics))
        hets := make([]float64, len(metrics))
        mafs := make([]float64, len(metrics))

        for k, m := range metrics {
            callRates[k] = m.CallRate
            hets[k] = m.Het
            mafs[k] = m.MAF
        }

        // stat.Quantile requires sorted input
        sort.Float64s(mafs)

        fmt.Fprintf(writer, "%s\t%d\t%f\t%f\t%f\t%f\t%f\n",
            pop, len(ids),
            stat.Mean(callRates, nil),
            stat.Mean(hets, nil),
            stat.Quantile(0.25, stat.Empirical, mafs, nil),
            stat.Quantile(0.5, stat.Empirical, mafs, nil),
            stat.Quantile(0.75, stat.Empirical, mafs, nil))
    }

    writer.Flush()
}

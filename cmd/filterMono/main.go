// CLI tool to remove monomorphic loci from a genotype data set.
// After subsetting individuals, loci where at most one allele is observed
// carry no information for comparisons, this tool prunes them and writes
// the remaining data set.
package main

import (
    "fmt"
    "os"
    "flag"
    "path"
    "github.com/zhorvath/privAllele"
)

func printHelp() {
    fmt.Fprintln(os.Stderr,
`USAGE
filterMono [-out OUT_PREFIX] <DATA.(bed|geno)>

The tool removes the monomorphic loci from a binary PLINK (.bed, .fam, .bim), EIGENSTRAT or PACKEDANCESTRYMAP (.geno, .snp, .ind) data set and writes the pruned data set (data, marker and family files) under OUTPREFIX in the input format.

A locus is monomorphic when at most one allele is observed among its non-missing calls, loci without any call are removed as well.

optional flags:
-out OUT_PREFIX   output prefix, DEFAULT: input prefix + _poly`)

    os.Exit(0)
}

func fatal(err error) {
    fmt.Fprintln(os.Stderr, err)
    os.Exit(1)
}

func main() {
    var help bool
    var outPref string

    flag.BoolVar(&help,      "help", false, "print help")
    flag.StringVar(&outPref, "out", "", "output prefix, DEFAULT: input prefix + _poly")

    flag.Parse()

    args := flag.Args()

    if help || len(args) != 1 {
        printHelp()
    }

    gs, _, prefix, err := privAllele.LoadDataset(args[0])

    if err != nil {
        fatal(err)
    }

    if outPref == "" {
        outPref = prefix + "_poly"
    // have a warning that outpref is same as prefix, so files will be overwritten
    } else if outPref == prefix {
        fmt.Fprintf(os.Stderr, "WARNING: output files will overwrite the input data set %s\n", args[0])
    }

    snps, typing, removed := privAllele.FilterMonomorphic(gs.SNPs(), gs.Typing())

    fmt.Fprintf(os.Stderr, "%d of %d loci removed as monomorphic\n", removed, gs.MarkerCount())

    ds := &privAllele.Dataset{Samples: gs.Samples(), SNPs: snps, Typing: typing}

    if err := privAllele.WriteDataset(outPref, path.Ext(args[0]), ds); err != nil {
        fatal(err)
    }
}

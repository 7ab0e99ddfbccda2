// CLI tool to exclude implausible source populations of an individual of
// unknown provenance via private alleles.
// For every candidate population it counts the loci where an allele of the
// focal individual is absent from the population, populations above the
// threshold are excluded, the rest form the retained data set.
package main

import (
    "fmt"
    "os"
    "bufio"
    "flag"
    "path"
    "github.com/zhorvath/privAllele"
)

func printHelp() {
    fmt.Fprintln(os.Stderr,
`USAGE
excludeSources -focal SAMPLEID [OPTIONS] <DATA.(bed|geno)>

excludeSources reads a genotype data set, either binary PLINK (.bed, .fam, .bim), EIGENSTRAT or PACKEDANCESTRYMAP (.geno, .ind, .snp), with the population labels in the POPID column of the .ind file or the FAMILYID column of the .fam file. The format is guessed by the provided file extension (either .bed or .geno).

The focal individual is relabeled to the reserved 'unknown' population for the duration of the analysis. Populations below the minimum sample size are discarded, then for every remaining population the tool counts the loci where an allele of the focal individual is absent from all non-missing calls of the population (private alleles). Loci where the focal call is missing are skipped and counted separately. Populations with more private-allele loci than the threshold are excluded as implausible sources.

The retained data set (focal individual + all individuals of the accepted populations, monomorphic loci removed) is written under OUTPREFIX in the input format, together with a per population tally (OUTPREFIX.tally.tsv) with the columns
    POP         candidate population label
    PRIVATE     count of private-allele loci
    VACUOUS     subset of PRIVATE where the population had zero non-missing calls
    MISSING     count of loci skipped for a missing focal call
    ACCEPTED    1 when the population is a plausible source, 0 otherwise

NOTE a population with zero non-missing calls at a locus always registers a private allele there, a high VACUOUS count means the exclusion is driven by missingness rather than by real allele absence.

required flags:
-focal ID      sample ID of the individual of unknown provenance

optional flags:
-nmin value    minimum population sample size, smaller populations are discarded |DEFAULT 10
-thresh value  maximum number of private-allele loci a plausible source may show |DEFAULT 0
-v value       verbosity 0-5 |DEFAULT 2
-threads value number of threads to use |DEFAULT ALL
-out PREFIX    output prefix |DEFAULT input prefix + "_src"
-npy           also write the tally matrix as OUTPREFIX.tally.npy (numpy)
-config FILE   read the parameters from a TOML file, explicit flags override it`)

    os.Exit(0)
}

// write the per population tally with the acceptance verdicts
func writeTally(fn string, tally *privAllele.Tally, accepted []string) error {
    outFile, err := os.Create(fn)

    if err != nil {
        return err
    }
    defer outFile.Close()

    isAccepted := make(map[string]bool, len(accepted))

    for _, pop := range accepted {
        isAccepted[pop] = true
    }

    writer := bufio.NewWriter(outFile)

    fmt.Fprintln(writer, "POP\tPRIVATE\tVACUOUS\tMISSING\tACCEPTED")

    for _, pop := range tally.Pops {
        verdict := 0

        if isAccepted[pop] {
            verdict = 1
        }

        fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%d\n",
            pop, tally.Count[pop], tally.Vacuous[pop], tally.Missing[pop], verdict)
    }

    return writer.Flush()
}

func fatal(err error) {
    fmt.Fprintln(os.Stderr, err)
    os.Exit(1)
}

func main() {
    var help, npy bool
    var configFn string

    cfg := privAllele.DefaultConfig()

    flag.BoolVar(&help,           "help", false, "print help")
    flag.StringVar(&configFn,     "config", "", "TOML file with the run parameters, flags override it")
    flag.StringVar(&cfg.Focal,    "focal", "", "sample ID of the focal individual (required)")
    flag.IntVar(&cfg.MinPopSize,  "nmin", privAllele.DefaultMinPopSize, "minimum population sample size")
    flag.IntVar(&cfg.Threshold,   "thresh", 0, "maximum number of private-allele loci of a plausible source")
    flag.IntVar(&cfg.Verbosity,   "v", privAllele.DefaultVerbosity, "verbosity 0-5")
    flag.IntVar(&cfg.Threads,     "threads", 0, "number of threads to use, DEFAULT=ALL available")
    flag.StringVar(&cfg.OutPrefix, "out", "", "output prefix, DEFAULT: input prefix + _src")
    flag.BoolVar(&npy,            "npy", false, "also write the tally matrix in numpy format")

    flag.Parse()

    args := flag.Args()

    if help || len(args) != 1 {
        printHelp()
    }

    // a config file supplies the baseline, explicitly set flags win
    if configFn != "" {
        fileCfg, err := privAllele.LoadConfig(configFn)

        if err != nil {
            fatal(err)
        }

        set := make(map[string]bool)

        flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

        if !set["focal"] {
            cfg.Focal = fileCfg.Focal
        }
        if !set["nmin"] {
            cfg.MinPopSize = fileCfg.MinPopSize
        }
        if !set["thresh"] {
            cfg.Threshold = fileCfg.Threshold
        }
        if !set["v"] {
            cfg.Verbosity = fileCfg.Verbosity
        }
        if !set["threads"] {
            cfg.Threads = fileCfg.Threads
        }
        if !set["out"] {
            cfg.OutPrefix = fileCfg.OutPrefix
        }
    }

    if cfg.Focal == "" {
        fmt.Fprintln(os.Stderr, "the -focal sample ID is required")
        printHelp()
    }

    rep := privAllele.NewReporter(cfg.Verbosity)

    gs, _, prefix, err := privAllele.LoadDataset(args[0])

    if err != nil {
        fatal(err)
    }

    if cfg.OutPrefix == "" {
        cfg.OutPrefix = prefix + "_src"
    }

    rep.Progressf("loaded %d samples x %d loci from %s", gs.SampleCount(), gs.MarkerCount(), args[0])

    ds, tally, err := privAllele.Run(gs, cfg, rep)

    if err != nil {
        fatal(err)
    }

    if err := writeTally(cfg.OutPrefix + ".tally.tsv", tally, ds.Accepted); err != nil {
        fatal(err)
    }

    if npy {
        if err := privAllele.WriteTallyNPY(cfg.OutPrefix + ".tally.npy", tally); err != nil {
            fatal(err)
        }
    }

    if err := privAllele.WriteDataset(cfg.OutPrefix, path.Ext(args[0]), ds); err != nil {
        fatal(err)
    }
}

package privAllele

// Run executes the full exclusion analysis on a loaded data set:
// focal relabeling, size filter, private allele counting, threshold
// selection and assembly of the retained data set
// fatal conditions surface before any counting begins, the computation is
// deterministic so repeated runs on the same inputs give the same result
func Run(gs *GenotypeStore, cfg Config, rep *Reporter) (*Dataset, *Tally, error) {
    if err := PrepareFocal(gs, cfg.Focal); err != nil {
        return nil, nil, err
    }

    if mono := CountMonomorphic(gs.typing); mono > 0 {
        rep.Warnf("%d monomorphic loci present before the analysis", mono)
    }

    split := SplitBySize(gs, cfg.MinPopSize, rep)

    tally, err := CountPrivateAlleles(gs, cfg.Focal, split.Retained, cfg.Threads)

    if err != nil {
        return nil, nil, err
    }

    accepted := SelectCandidates(tally, cfg.Threshold, rep)

    ds, err := AssembleDataset(gs, cfg.Focal, accepted)

    if err != nil {
        return nil, nil, err
    }

    rep.Summaryf("%s: %d plausible source populations, %d samples and %d loci retained (%d monomorphic removed)",
        cfg.Focal, len(ds.Accepted), len(ds.Samples), len(ds.SNPs), ds.MonomorphicCut)

    return ds, tally, nil
}

package privAllele

import (
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/require"
)

// write and reload a small EIGENSTRAT data set end to end, including the
// population labels of the .ind file and the placeholder fallback
func TestLoadDatasetEIG(t *testing.T) {
    dir := t.TempDir()
    prefix := filepath.Join(dir, "toy")

    samples := []Sample{
        {ID: "ind1", Pop: "alpha"},
        {ID: "ind2", Pop: "alpha"},
        {ID: "ind3", Pop: "beta"},
        {ID: "ind4", Pop: "???"},
        {ID: "ind5", Pop: "beta"},
    }

    snps := []SNP{
        {ID: "rs1", CHR: "1", MAP: "0.01", POS: 100, REF: "A", ALT: "G"},
        {ID: "rs2", CHR: "2", MAP: "0.02", POS: 200, REF: "C", ALT: "T"},
    }

    typing := [][]uint8{
        {HomRef, Het, HomAlt, Missing, HomRef},
        {Missing, HomAlt, HomRef, Het, HomAlt},
    }

    require.NoError(t, WriteIND(prefix+".ind", samples))
    require.NoError(t, WriteSNP(prefix+".snp", snps))
    require.NoError(t, WriteEIG(prefix+".geno", typing))

    gs, header, gotPrefix, err := LoadDataset(prefix + ".geno")
    require.NoError(t, err)
    require.Nil(t, header) // plain text
    require.Equal(t, prefix, gotPrefix)

    require.Equal(t, 5, gs.SampleCount())
    require.Equal(t, 2, gs.MarkerCount())
    require.Equal(t, typing, gs.Typing())

    // the placeholder POPID falls back to the default single population
    require.Equal(t, []string{"ind4"}, gs.IndividualsOf(DefaultPop))
    require.Equal(t, []string{"alpha", "beta", DefaultPop}, gs.Populations())
}

// binary PLINK roundtrip with a sample count that does not divide by 4
func TestLoadDatasetBED(t *testing.T) {
    dir := t.TempDir()
    prefix := filepath.Join(dir, "toy")

    samples := []Sample{
        {ID: "a", Pop: "alpha"},
        {ID: "b", Pop: "alpha"},
        {ID: "c", Pop: "beta"},
        {ID: "d", Pop: "beta"},
        {ID: "e", Pop: "beta"},
    }

    snps := []SNP{
        {ID: "rs1", CHR: "1", MAP: "0.01", POS: 100, REF: "A", ALT: "G"},
        {ID: "rs2", CHR: "1", MAP: "0.02", POS: 200, REF: "C", ALT: "T"},
        {ID: "rs3", CHR: "2", MAP: "0.03", POS: 300, REF: "T", ALT: "A"},
    }

    typing := [][]uint8{
        {HomRef, Het, HomAlt, Missing, HomRef},
        {HomAlt, HomAlt, HomRef, Het, Missing},
        {Het, Missing, Missing, HomRef, HomAlt},
    }

    require.NoError(t, WriteFAM(prefix+".fam", samples))
    require.NoError(t, WriteBIM(prefix+".bim", snps))
    require.NoError(t, WriteBED(prefix+".bed", nil, typing))

    gs, header, _, err := LoadDataset(prefix + ".bed")
    require.NoError(t, err)
    require.Equal(t, []byte{0x6c, 0x1b, 0x01}, header)

    require.Equal(t, typing, gs.Typing())

    // BIM keeps REF/ALT through the minor/major column swap
    got := gs.SNPs()
    require.Equal(t, "G", got[0].ALT)
    require.Equal(t, "A", got[0].REF)

    // FAM family IDs double as population labels
    require.Equal(t, []string{"c", "d", "e"}, gs.IndividualsOf("beta"))
}

// a focal-only subset loses every locus to the monomorphic filter, the
// empty data files must still be written and read back
func TestWriteDatasetNoLoci(t *testing.T) {
    dir := t.TempDir()

    samples := []Sample{
        {ID: "S0", Pop: "alpha"},
        {ID: "S1", Pop: "beta"},
    }

    snps := []SNP{
        {ID: "rs1", CHR: "1", MAP: "0.01", POS: 100, REF: "A", ALT: "G"},
        {ID: "rs2", CHR: "2", MAP: "0.02", POS: 200, REF: "C", ALT: "T"},
    }

    // S0 is homozygous everywhere so alone it is monomorphic at every locus
    typing := [][]uint8{
        {HomRef, Het},
        {HomAlt, Het},
    }

    gs, err := NewGenotypeStore(samples, snps, typing)
    require.NoError(t, err)

    ds, err := AssembleDataset(gs, "S0", nil)
    require.NoError(t, err)
    require.Empty(t, ds.SNPs)
    require.Equal(t, 2, ds.MonomorphicCut)

    for _, fext := range []string{".geno", ".bed"} {
        prefix := filepath.Join(dir, "empty_"+fext[1:])

        require.NoError(t, WriteDataset(prefix, fext, ds))

        got, _, _, err := LoadDataset(prefix + fext)
        require.NoError(t, err)
        require.Equal(t, 1, got.SampleCount())
        require.Equal(t, 0, got.MarkerCount())
    }
}

func TestLoadDatasetUnknownExtension(t *testing.T) {
    _, _, _, err := LoadDataset("whatever.vcf")
    require.Error(t, err)
}

// the geno matrix must agree with the .ind and .snp files
func TestLoadDatasetStructureMismatch(t *testing.T) {
    dir := t.TempDir()
    prefix := filepath.Join(dir, "bad")

    samples := []Sample{{ID: "ind1", Pop: "alpha"}, {ID: "ind2", Pop: "alpha"}}
    snps := []SNP{{ID: "rs1", CHR: "1", MAP: "0.0", POS: 1, REF: "A", ALT: "G"}}

    require.NoError(t, WriteIND(prefix+".ind", samples))
    require.NoError(t, WriteSNP(prefix+".snp", snps))

    // three entries per line but only two samples declared
    require.NoError(t, WriteEIG(prefix+".geno", [][]uint8{{0, 1, 2}}))

    _, _, _, err := LoadDataset(prefix + ".geno")
    require.ErrorIs(t, err, ErrStructure)
}

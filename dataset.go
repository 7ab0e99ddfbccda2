package privAllele

import (
    "fmt"
    "path"
)

// LoadDataset reads a complete genotype data set, either EIGENSTRAT /
// PACKEDANCESTRYMAP (.geno + .ind + .snp) or binary PLINK
// (.bed + .fam + .bim), the format is guessed from the data file extension
// returns the store, the binary header (nil for plain text) and the file
// prefix of the data set
func LoadDataset(fn string) (*GenotypeStore, []byte, string, error) {
    fext := path.Ext(fn)

    prefix := fn[0 : len(fn) - len(fext)]

    var samples []Sample
    var snps []SNP
    var header []byte
    var typing [][]uint8
    var err error

    switch fext {
        case ".geno":
            if samples, err = ReadIND(prefix + ".ind"); err != nil {
                return nil, nil, "", err
            }

            if snps, err = ReadSNP(prefix + ".snp"); err != nil {
                return nil, nil, "", err
            }

            if header, typing, err = ReadEIG(fn, len(samples), len(snps)); err != nil {
                return nil, nil, "", err
            }
        case ".bed":
            if samples, err = ReadFAM(prefix + ".fam"); err != nil {
                return nil, nil, "", err
            }

            if snps, err = ReadBIM(prefix + ".bim"); err != nil {
                return nil, nil, "", err
            }

            if header, typing, err = ReadBED(fn, len(samples), len(snps)); err != nil {
                return nil, nil, "", err
            }
        default:
            return nil, nil, "", fmt.Errorf("either a '.bed' or a '.geno' file has to be provided as input (%s)", fn)
    }

    gs, err := NewGenotypeStore(samples, snps, typing)

    if err != nil {
        return nil, nil, "", err
    }

    return gs, header, prefix, nil
}

// WriteDataset writes a data set under the given prefix in the format the
// input came in, fext is ".geno" or ".bed"
// EIGENSTRAT output is always plain text since a PACKEDANCESTRYMAP header
// encodes the original dimensions that no longer match the subset
func WriteDataset(outPref, fext string, ds *Dataset) error {
    switch fext {
        case ".geno":
            if err := WriteIND(outPref + ".ind", ds.Samples); err != nil {
                return err
            }

            if err := WriteSNP(outPref + ".snp", ds.SNPs); err != nil {
                return err
            }

            return WriteEIG(outPref + ".geno", ds.Typing)
        case ".bed":
            if err := WriteFAM(outPref + ".fam", ds.Samples); err != nil {
                return err
            }

            if err := WriteBIM(outPref + ".bim", ds.SNPs); err != nil {
                return err
            }

            return WriteBED(outPref + ".bed", bedMagic, ds.Typing)
    }

    return fmt.Errorf("unknown data set format %q", fext)
}

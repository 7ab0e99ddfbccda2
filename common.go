package privAllele

import (
    "errors"
)

// struct to store marker data from .snp (EIG) or .bim (PLINK) file
type SNP struct {
    ID  string  // usually rs number ID
    CHR string  // chromosome, supposed to be number only but other organizm could have different naming or scaffolds
    MAP string  // genome position in centimorgan, should be float but use string to keep missing data what else
    POS int     // can be only INT
    REF string  // expected REF allele (major for plink)
    ALT string  // expected ALT allele (minor for plink)
}

// one individual of the data set with its population assignment
// (POPID column of .ind or FAMILYID column of .fam)
type Sample struct {
    ID  string
    Pop string
}

// genotype codes used internally (EIG style)
// 0 - HOM REF (2 REF alleles)
// 1 - HET     (1 REF allele)
// 2 - HOM ALT (0 REF alleles)
// 3 - MISSING
const (
    HomRef  uint8 = 0
    Het     uint8 = 1
    HomAlt  uint8 = 2
    Missing uint8 = 3
)

// population label reserved for the focal individual during the analysis
const ReservedLabel = "unknown"

var (
    // ErrNotFound indicates an unknown sample ID or locus index
    ErrNotFound = errors.New("privAllele: sample or locus not found")
    // ErrStructure indicates a mismatch between the genotype matrix and the marker/sample metadata
    ErrStructure = errors.New("privAllele: genotype matrix does not match metadata")
    // ErrInvalidFocalIndividual indicates the focal ID is not present in the data set
    ErrInvalidFocalIndividual = errors.New("privAllele: focal individual not in data set")
    // ErrDuplicateReservedLabel indicates the reserved label is already used as a population name
    ErrDuplicateReservedLabel = errors.New("privAllele: reserved population label already in use")
    // ErrAmbiguousFocalCount indicates more than one individual carries the reserved label after relabeling
    ErrAmbiguousFocalCount = errors.New("privAllele: more than one individual carries the reserved label")
)

package privAllele

import (
    "os"
    "io"
    "bufio"
    "strings"
    "strconv"
    "fmt"
)

// placeholder values in the POPID column meaning no real population assignment
func isPopPlaceholder(pop string) bool {
    switch pop {
        case "", "???", "?", "Ignore", "ignore":
            return true
    }

    return false
}

// default population label supplied when the data set carries no real labels
const DefaultPop = "pop1"

// read an EIGENSTRAT/PACKEDANCESTRYMAP .ind file and return the samples
// with their population assignment (third column)
// placeholder POPIDs are replaced with the default single population label
func ReadIND(fn string) ([]Sample, error) {
    inFile, err := os.Open(fn)

    if err != nil {
        return nil, err
    }
    defer inFile.Close()

    scanner := bufio.NewScanner(inFile)
    scanner.Split(bufio.ScanLines)

    var lineno int
    var samples []Sample

    f := func(c rune) bool {
        return c == ' ' || c == '\t'
    }

    for scanner.Scan() {
        line := scanner.Text()
        lineno++

        fields := strings.FieldsFunc(line, f)

        if len(fields) != 3 {
            return nil, fmt.Errorf("%s: invalid IND line %q at %d", fn, line, lineno)
        }

        // .ind fields:
        // SAMPLEID SEX POPID
        pop := fields[2]

        if isPopPlaceholder(pop) {
            pop = DefaultPop
        }

        samples = append(samples, Sample{ID: fields[0], Pop: pop})
    }

    if err := scanner.Err(); err != nil {
        return nil, fmt.Errorf("reading %s: %w", fn, err)
    }

    return samples, nil
}

// write samples with their population assignment as an EIGENSTRAT .ind file
// sex is not tracked by the analysis so the U (unknown) code is written
func WriteIND(fn string, samples []Sample) error {
    outFile, err := os.Create(fn)

    if err != nil {
        return err
    }
    defer outFile.Close()

    writer := bufio.NewWriter(outFile)

    for _, s := range samples {
        fmt.Fprintf(writer, "%s U %s\n", s.ID, s.Pop)
    }

    return writer.Flush()
}

// read an EIGENSTRAT/PACKEDANCESTRYMAP .snp file and return the marker data
func ReadSNP(fn string) ([]SNP, error) {
    inFile, err := os.Open(fn)

    if err != nil {
        return nil, err
    }
    defer inFile.Close()

    scanner := bufio.NewScanner(inFile)
    scanner.Split(bufio.ScanLines)

    var lineno, pos int
    var SNPs []SNP

    f := func(c rune) bool {
        return c == ' ' || c == '\t'
    }

    for scanner.Scan() {
        line := scanner.Text()
        lineno++

        fields := strings.FieldsFunc(line, f)

        if len(fields) != 6 {
            return nil, fmt.Errorf("%s: invalid SNP line %q at %d", fn, line, lineno)
        }

        pos, err = strconv.Atoi(fields[3])

        if err != nil {
            return nil, fmt.Errorf("%s line %d: %w", fn, lineno, err)
        }

        // EIGENSTRAT .snp file format
        //            ID            CHR      MAP (cm)          POS    REF ALT
        //            rs3094315     1        0.020130          752566 G A
        SNPs = append(SNPs, SNP{ID: fields[0], CHR: fields[1], MAP: fields[2], POS: pos, REF: fields[4], ALT: fields[5]})
    }

    if err := scanner.Err(); err != nil {
        return nil, fmt.Errorf("reading %s: %w", fn, err)
    }

    return SNPs, nil
}

// write marker data as an EIGENSTRAT .snp file
func WriteSNP(fn string, SNPs []SNP) error {
    outFile, err := os.Create(fn)

    if err != nil {
        return err
    }
    defer outFile.Close()

    writer := bufio.NewWriter(outFile)

    for _, s := range SNPs {
        fmt.Fprintf(writer, "%s %s %s %d %s %s\n", s.ID, s.CHR, s.MAP, s.POS, s.REF, s.ALT)
    }

    return writer.Flush()
}

// internal function to read a plain text EIGENSTRAT .geno file
func readEIG(inFile io.Reader, sampleCount, markerCount int) ([][]uint8, error) {
    typing := make([][]uint8, 0, markerCount)

    scanner := bufio.NewScanner(inFile)
    scanner.Split(bufio.ScanLines)

    var lineCount int

    // one line per marker, sample number entries in each line
    for scanner.Scan() {
        line := scanner.Bytes()

        if len(line) != sampleCount {
            return nil, fmt.Errorf("%w: geno line %d has %d entries (expected %d)",
                ErrStructure, lineCount + 1, len(line), sampleCount)
        }

        data := make([]uint8, sampleCount)

        // 9 - missing
        // 0 - HOM REF (2 REF ALLELES)
        // 1 - HET     (1 REF ALLELE)
        // 2 - HOM ALT (0 REF ALLELES)
        for i, b := range line {
            switch b {
                case '9':
                    data[i] = Missing
                case '0':
                    data[i] = HomRef
                case '1':
                    data[i] = Het
                case '2':
                    data[i] = HomAlt
                default:
                    return nil, fmt.Errorf("%w: invalid genotype code %q in geno line %d",
                        ErrStructure, b, lineCount + 1)
            }
        }

        lineCount++

        typing = append(typing, data)
    }

    if err := scanner.Err(); err != nil {
        return nil, err
    }

    if lineCount != markerCount {
        return nil, fmt.Errorf("%w: %d geno lines vs %d markers in the .snp file",
            ErrStructure, lineCount, markerCount)
    }

    return typing, nil
}

// internal function to read a PACKEDANCESTRYMAP .geno file
func readPackedEIG(reader *bufio.Reader, byteCount, sampleCount, markerCount int) ([][]uint8, error) {
    typing := make([][]uint8, 0, markerCount)

    buf := make([]byte, byteCount)

    var b byte
    var s uint

    // file size is correct, so we don't have to test whether lineCount/markerCount is equal
    for V := 0; V < markerCount; V++ {
        if _, err := io.ReadFull(reader, buf); err != nil {
            return nil, err
        }

        data := make([]uint8, sampleCount)

        for S := 0; S < sampleCount; S++ {
            if (S % 4) == 0 {
                b = buf[S/4]
                s = 0
            }

            // packed from upper to lower bits
            // 00 = hom REF, 01 = het, 10 = hom ALT, 11 = missing
            data[S] = (b >> (6 - s * 2)) & 0x3

            s++
        }

        typing = append(typing, data)
    }

    return typing, nil
}

// wrapper for reading a .geno file that is either in plain text EIGENSTRAT or a
// binary PACKEDANCESTRYMAP data file
// returns the header (nil for plain text) and the genotype matrix in marker
// major orientation (rows are loci, columns are samples)
func ReadEIG(fn string, sampleCount, markerCount int) ([]byte, [][]uint8, error) {
    inFile, err := os.Open(fn)

    if err != nil {
        return nil, nil, err
    }
    defer inFile.Close()

    fileInfo, err := inFile.Stat()

    if err != nil {
        return nil, nil, err
    }

    fileSize := int(fileInfo.Size())

    byteCount := sampleCount / 4

    if (sampleCount % 4) > 0 {
        byteCount++
    }

    headerLen := byteCount

    if headerLen < 48 {
        headerLen = 48
    }

    // check if file size conforms with PACKEDANCESTRYMAP expected size
    if fileSize == headerLen + byteCount * markerCount {
        reader := bufio.NewReader(inFile)
        header := make([]byte, headerLen)

        if _, err := io.ReadFull(reader, header); err != nil {
            return nil, nil, err
        }

        var indHash, snpHash, indCount, snpCount int

        if _, err := fmt.Sscanf(string(header), "GENO %d %d %x %x", &indCount, &snpCount, &indHash, &snpHash); err != nil {
            return nil, nil, fmt.Errorf("%s: invalid PACKEDANCESTRYMAP header: %w", fn, err)
        }

        if indCount != sampleCount {
            return nil, nil, fmt.Errorf("%w: sample count in geno file (%d) is not the same as in .ind file (%d)",
                ErrStructure, indCount, sampleCount)
        }

        if snpCount != markerCount {
            return nil, nil, fmt.Errorf("%w: marker count in geno file (%d) is not the same as in .snp file (%d)",
                ErrStructure, snpCount, markerCount)
        }

        typing, err := readPackedEIG(reader, byteCount, sampleCount, markerCount)

        return header, typing, err
    }

    // otherwise read it as a plain text EIGENSTRAT data file
    typing, err := readEIG(inFile, sampleCount, markerCount)

    return nil, typing, err
}

// write genotype data (.geno) in EIGENSTRAT plain text format
func WriteEIG(outFn string, typing [][]uint8) error {
    outFile, err := os.Create(outFn)

    if err != nil {
        return err
    }
    defer outFile.Close()

    writer := bufio.NewWriter(outFile)

    // the monomorphic filter can prune every locus of a small subset, a
    // valid if uninformative outcome, the data file is then empty
    if len(typing) == 0 {
        return writer.Flush()
    }

    sampleCount := len(typing[0])

    // buffer to hold the plain text EIG data for one marker (without new line)
    buf := make([]byte, sampleCount)

    // no header, just plain text, however we have to remap 3 to 9 for MISSING
    for _, markerDat := range typing {
        for j, geno := range markerDat {
            switch geno {
                case Missing:
                    buf[j] = '9'
                case HomRef:
                    buf[j] = '0'
                case Het:
                    buf[j] = '1'
                case HomAlt:
                    buf[j] = '2'
            }
        }

        if _, err := fmt.Fprintf(writer, "%s\n", buf); err != nil {
            return err
        }
    }

    return writer.Flush()
}

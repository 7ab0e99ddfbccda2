package privAllele

import (
    "os"
    "io"
    "bufio"
    "strings"
    "strconv"
    "fmt"
)

// the fixed three byte magic of a SNP-major PLINK 1 .bed file
var bedMagic = []byte{0x6c, 0x1b, 0x01}

// read a PLINK .bim file and return the marker data
func ReadBIM(fn string) ([]SNP, error) {
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
            return nil, fmt.Errorf("%s: invalid BIM line %q at %d", fn, line, lineno)
        }

        pos, err = strconv.Atoi(fields[3])

        if err != nil {
            return nil, fmt.Errorf("%s line %d: %w", fn, lineno, err)
        }

        // PLINK format
        // CHR     ID              MAP(cm) POS     MINOR   MAJOR
        // 1       rs3094315       0.02013 752566  G       A
        SNPs = append(SNPs, SNP{ID: fields[1], CHR: fields[0], MAP: fields[2], POS: pos, REF: fields[5], ALT: fields[4]})
    }

    if err := scanner.Err(); err != nil {
        return nil, fmt.Errorf("reading %s: %w", fn, err)
    }

    return SNPs, nil
}

// write marker data as a PLINK .bim file
func WriteBIM(fn string, SNPs []SNP) error {
    outFile, err := os.Create(fn)

    if err != nil {
        return err
    }
    defer outFile.Close()

    writer := bufio.NewWriter(outFile)

    for _, s := range SNPs {
        fmt.Fprintf(writer, "%s %s %s %d %s %s\n", s.CHR, s.ID, s.MAP, s.POS, s.ALT, s.REF)
    }

    return writer.Flush()
}

// read a PLINK .fam file and return the samples
// the FAMILYID column doubles as the population label, a placeholder
// family ID yields the default single population
func ReadFAM(fn string) ([]Sample, error) {
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

        if len(fields) != 6 {
            return nil, fmt.Errorf("%s: invalid FAM line %q at %d", fn, line, lineno)
        }

        // FAM fields:
        // FAMILYID SAMPLEID FATHERID MOTHERID SEX DISEASESTATUS
        pop := fields[0]

        if isPopPlaceholder(pop) || pop == "0" {
            pop = DefaultPop
        }

        samples = append(samples, Sample{ID: fields[1], Pop: pop})
    }

    if err := scanner.Err(); err != nil {
        return nil, fmt.Errorf("reading %s: %w", fn, err)
    }

    return samples, nil
}

// write samples as a PLINK .fam file, the population label goes to the FAMILYID column
func WriteFAM(fn string, samples []Sample) error {
    outFile, err := os.Create(fn)

    if err != nil {
        return err
    }
    defer outFile.Close()

    writer := bufio.NewWriter(outFile)

    for _, s := range samples {
        // father/mother/sex/status are not tracked by the analysis
        fmt.Fprintf(writer, "%s %s 0 0 0 -9\n", s.Pop, s.ID)
    }

    return writer.Flush()
}

// read a binary PLINK .bed data file and return its header (first 3 bytes)
// and the unpacked genotype matrix in marker major orientation
func ReadBED(fn string, sampleCount, markerCount int) ([]byte, [][]uint8, error) {
    byteCount := sampleCount / 4

    if (sampleCount % 4) > 0 {
        byteCount++
    }

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

    // header is 3 bytes + the data for each marker
    expectedSize := 3 + (byteCount * markerCount)

    if fileSize != expectedSize {
        return nil, nil, fmt.Errorf("%w: invalid number of entries in %s, corrupted BED? (expected %d vs %d)",
            ErrStructure, fn, expectedSize, fileSize)
    }

    reader := bufio.NewReader(inFile)

    header := make([]byte, 3)

    if _, err := io.ReadFull(reader, header); err != nil {
        return nil, nil, err
    }

    if header[0] != bedMagic[0] || header[1] != bedMagic[1] {
        return nil, nil, fmt.Errorf("not a valid bed file: %s", fn)
    }

    // third byte is 00000001 (SNP-major) or 00000000 (individual-major)
    if header[2] != 1 {
        return nil, nil, fmt.Errorf("%s is in individual-major format, please recode to SNP-major format", fn)
    }

    typing := make([][]uint8, 0, markerCount)

    buf := make([]byte, byteCount)

    var b byte

    // we tested the size so we have markerCount blocks of byteCount bytes
    for V := 0; V < markerCount; V++ {
        if _, err := io.ReadFull(reader, buf); err != nil {
            return nil, nil, err
        }

        markerData := make([]uint8, sampleCount)

        // https://www.cog-genomics.org/plink2/formats#bed
        // sample order in the bytes is lower bits first, upper bits last
        for S := 0; S < sampleCount; S++ {
            if (S % 4) == 0 {
                b = buf[S/4]
            }

            // recoding PLINK to our internal uniform EIG format
            // GT         PLINK  EIG
            // missing    0b01   0b11
            // HET        0b10   0b01
            // hom REF    0b11   0b00
            // hom ALT    0b00   0b10
            switch b & 0x3 {
                case 1:
                    markerData[S] = Missing
                case 2:
                    markerData[S] = Het
                case 3:
                    markerData[S] = HomRef
                case 0:
                    markerData[S] = HomAlt
            }

            b >>= 2
        }

        typing = append(typing, markerData)
    }

    return header, typing, nil
}

// write genotype data in binary PLINK .bed format
func WriteBED(outFn string, header []byte, typing [][]uint8) error {
    outFile, err := os.Create(outFn)

    if err != nil {
        return err
    }
    defer outFile.Close()

    writer := bufio.NewWriter(outFile)

    if header == nil {
        header = bedMagic
    }

    if _, err := writer.Write(header); err != nil {
        return err
    }

    // the monomorphic filter can prune every locus of a small subset, a
    // valid if uninformative outcome, only the magic is written then
    if len(typing) == 0 {
        return writer.Flush()
    }

    sampleCount := len(typing[0])

    // number of bytes to represent a marker for each sample in binary PED
    byteCount := sampleCount / 4

    if (sampleCount % 4) > 0 {
        byteCount++
    }

    buf := make([]byte, byteCount)

    var b byte

    for _, dat := range typing {
        for j, geno := range dat {
            // recoding from internal EIG (0b00 HOMREF, 0b01 HET, 0b10 HOMALT, 0b11 missing)
            // to PLINK                   (0b11 HOMREF, 0b10 HET, 0b00 HOMALT, 0b01 missing)
            switch geno {
                case HomRef:
                    geno = 3
                case Het:
                    geno = 2
                case HomAlt:
                    geno = 0
                case Missing:
                    geno = 1
            }

            // PLINK has low bits -> high bits order
            b |= (geno << ((j % 4) * 2))

            // pack byte
            if (j % 4) == 3 {
                buf[j/4] = b
                b = 0
            }
        }

        // last byte might not be exactly divideable by 4 so we must set the bits we have so far
        if (sampleCount % 4) > 0 {
            buf[len(buf)-1] = b
            b = 0
        }

        // write out one marker
        if _, err := writer.Write(buf); err != nil {
            return err
        }
    }

    return writer.Flush()
}

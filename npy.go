package privAllele

import (
    "github.com/kshedden/gonpy"
)

// WriteTallyNPY exports the tally as a populations x 3 numpy matrix
// (columns: private count, vacuous count, missing count) for downstream
// plotting, the row order is the population order of the tally
func WriteTallyNPY(fn string, tally *Tally) error {
    wtr, err := gonpy.NewFileWriter(fn)

    if err != nil {
        return err
    }

    data := make([]float64, 0, len(tally.Pops) * 3)

    for _, pop := range tally.Pops {
        data = append(data,
            float64(tally.Count[pop]),
            float64(tally.Vacuous[pop]),
            float64(tally.Missing[pop]))
    }

    wtr.Shape = []int{len(tally.Pops), 3}

    return wtr.WriteFloat64(data)
}

package privAllele

import (
    "go.dedis.ch/onet/v3/log"
)

// verbosity bounds of the CLI surface, out of range values are corrected
const (
    MinVerbosity     = 0
    MaxVerbosity     = 5
    DefaultVerbosity = 2
)

// Reporter forwards progress and summary events of the analysis to the
// leveled logger
// the analysis components emit events unconditionally and never branch on
// the verbosity themselves, visibility is decided entirely by the log level
type Reporter struct {
    verbosity int
}

// NewReporter sets up the log level, an out of range verbosity is corrected
// to the default with a warning
func NewReporter(verbosity int) *Reporter {
    if verbosity < MinVerbosity || verbosity > MaxVerbosity {
        log.Warnf("verbosity %d out of range [%d,%d], using %d", verbosity, MinVerbosity, MaxVerbosity, DefaultVerbosity)

        verbosity = DefaultVerbosity
    }

    log.SetDebugVisible(verbosity)

    return &Reporter{verbosity: verbosity}
}

func (r *Reporter) Verbosity() int {
    return r.verbosity
}

// Warnf reports a corrected-with-warning condition, always visible
func (r *Reporter) Warnf(format string, args ...interface{}) {
    log.Warnf(format, args...)
}

// Summaryf reports run level results (level 1)
func (r *Reporter) Summaryf(format string, args ...interface{}) {
    log.Lvlf1(format, args...)
}

// Progressf reports per stage progress (level 2)
func (r *Reporter) Progressf(format string, args ...interface{}) {
    log.Lvlf2(format, args...)
}

// Detailf reports per population details (level 3)
func (r *Reporter) Detailf(format string, args ...interface{}) {
    log.Lvlf3(format, args...)
}

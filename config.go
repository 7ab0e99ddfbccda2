package privAllele

import (
    "github.com/BurntSushi/toml"
)

// Config holds the run parameters of the exclusion analysis, either filled
// from CLI flags or decoded from a TOML file
type Config struct {
    Focal      string `toml:"focal"`
    MinPopSize int    `toml:"min_pop_size"`
    Threshold  int    `toml:"threshold"`
    Verbosity  int    `toml:"verbosity"`
    Threads    int    `toml:"threads"`
    OutPrefix  string `toml:"out_prefix"`
}

// DefaultConfig returns the documented defaults of the CLI surface
func DefaultConfig() Config {
    return Config{
        MinPopSize: DefaultMinPopSize,
        Threshold:  0,
        Verbosity:  DefaultVerbosity,
        Threads:    0, // all CPUs
    }
}

// LoadConfig decodes a TOML run configuration on top of the defaults
func LoadConfig(fn string) (Config, error) {
    cfg := DefaultConfig()

    if _, err := toml.DecodeFile(fn, &cfg); err != nil {
        return cfg, err
    }

    return cfg, nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config controls what vecgen emits.
type Config struct {
	Output      string // output file path
	Format      string // "readmemh" or "csv"
	Exhaustive  bool   // emit all 256 stimulus/response pairs
	RandomCount int    // extra pseudo-random vectors after the sweep
	Seed        int64  // PRNG seed for the random stream
}

func defaultConfig() Config {
	return Config{
		Output:     "vectors.hex",
		Format:     FormatReadmemh,
		Exhaustive: true,
		Seed:       1,
	}
}

type fileConfig struct {
	Output      string `toml:"output"`
	Format      string `toml:"format"`
	Exhaustive  bool   `toml:"exhaustive"`
	RandomCount int    `toml:"random_count"`
	Seed        int64  `toml:"seed"`
}

// loadConfig overlays the TOML file at path onto the defaults. Only keys the
// file actually defines are applied, so a partial config stays partial.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load vecgen config: %w", err)
	}

	if meta.IsDefined("output") {
		out := strings.TrimSpace(raw.Output)
		if out != "" {
			cfg.Output = out
		}
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}

	if meta.IsDefined("exhaustive") {
		cfg.Exhaustive = raw.Exhaustive
	}

	if meta.IsDefined("random_count") {
		cfg.RandomCount = raw.RandomCount
	}

	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Format {
	case FormatReadmemh, FormatCSV:
	default:
		return fmt.Errorf("unknown vector format %q", c.Format)
	}
	if c.RandomCount < 0 {
		return fmt.Errorf("random_count must be >= 0, got %d", c.RandomCount)
	}
	if !c.Exhaustive && c.RandomCount == 0 {
		return fmt.Errorf("nothing to emit: exhaustive disabled and random_count is 0")
	}
	return nil
}

// Command vecgen emits stimulus/response vector files for the prio8 encoder.
//
// The Go model is the source of truth: the RTL testbench replays these vectors
// and compares its outputs word for word. A TOML config picks the format and
// volume; flags override the paths.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "TOML config file (optional)")
	outPath := flag.String("out", "", "output file (overrides config)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "vecgen").Logger()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
	}
	if *outPath != "" {
		cfg.Output = *outPath
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Output).Msg("create output file")
	}

	n, err := writeVectors(f, cfg)
	if err != nil {
		f.Close()
		logger.Fatal().Err(err).Msg("vector emission failed")
	}
	if err := f.Close(); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Output).Msg("close output file")
	}

	logger.Info().
		Str("path", cfg.Output).
		Str("format", cfg.Format).
		Int("vectors", n).
		Msg("vector file written")
}

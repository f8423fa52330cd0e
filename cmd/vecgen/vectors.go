package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/MaemoWong/prio8/proto/penc"
)

// Vector file formats.
const (
	// FormatReadmemh emits one 12-bit word per line, $readmemh compatible:
	// {in[7:0], valid, code[2:0]}, input bus in the high byte.
	FormatReadmemh = "readmemh"

	// FormatCSV emits "in,code,valid" rows with a header, for waveform
	// diffing and spreadsheet autopsies.
	FormatCSV = "csv"
)

// packWord builds the 12-bit stimulus/response word for one input:
// bits [11:4] the input bus, bits [3:0] the packed encoder nibble.
// The RTL testbench slices the same ranges back apart.
func packWord(in uint8) uint16 {
	return uint16(in)<<4 | uint16(penc.EncodePacked(in))
}

// writeVectors emits the vector set described by cfg and reports how many
// stimulus lines were written (the CSV header is not counted).
//
// The exhaustive sweep covers all 256 inputs in ascending order. The random
// stream repeats inputs on purpose: soak runs want realistic re-arrival of
// patterns, and a combinational block must not care.
func writeVectors(w io.Writer, cfg Config) (int, error) {
	var wrote int

	emit := func(in uint8) error {
		switch cfg.Format {
		case FormatReadmemh:
			if _, err := fmt.Fprintf(w, "%03x\n", packWord(in)); err != nil {
				return err
			}
		case FormatCSV:
			r := penc.Encode(in)
			v := 0
			if r.Valid {
				v = 1
			}
			if _, err := fmt.Fprintf(w, "0x%02x,%d,%d\n", in, r.Code, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown vector format %q", cfg.Format)
		}
		wrote++
		return nil
	}

	if cfg.Format == FormatCSV {
		if _, err := fmt.Fprintln(w, "in,code,valid"); err != nil {
			return 0, fmt.Errorf("write vector header: %w", err)
		}
	}

	if cfg.Exhaustive {
		for v := 0; v < 256; v++ {
			if err := emit(uint8(v)); err != nil {
				return wrote, fmt.Errorf("write exhaustive vector 0x%02x: %w", v, err)
			}
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < cfg.RandomCount; i++ {
		in := uint8(rng.Intn(256))
		if err := emit(in); err != nil {
			return wrote, fmt.Errorf("write random vector %d: %w", i, err)
		}
	}

	return wrote, nil
}

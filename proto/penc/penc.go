// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PRIO8 8-Input Priority Encoder - Go Reference Model
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// OVERVIEW:
// ─────────
// This file implements an 8-input fixed-priority encoder. A priority encoder is one of
// the most common building blocks in digital hardware - interrupt controllers, bus
// arbiters, and instruction schedulers all contain one. Given 8 request lines, it
// answers two questions in a single gate delay:
//
//   1. Is ANYONE requesting?            → valid flag
//   2. WHO is the most important one?   → 3-bit code of the highest-numbered request
//
// Line 7 is the most important, line 0 the least. When several lines are raised at
// once, only the highest-numbered one wins; everyone below it is ignored. That single
// rule IS the whole device.
//
// HARDWARE MODEL:
// ───────────────
// This Go code is a cycle-accurate reference model for SystemVerilog RTL.
// When you write the Verilog, run these same test vectors against RTL.
// If Go and RTL produce identical outputs, the hardware is correct.
//
// The block is purely combinational: no clock, no state, no handshake. Outputs settle
// a few gate delays after the inputs change, every evaluation is independent, and the
// Go functions here are correspondingly pure (value in, value out, nothing retained).
//
// STYLE GUIDELINES FOR HARDWARE MAPPING:
// ──────────────────────────────────────
//   1. Explicit parallel evaluation (no sequential dependencies within a block)
//   2. Bitwise operations instead of boolean conditionals where possible
//   3. Intermediate wires explicitly named
//   4. Loops represent generate blocks (parallel hardware replication)
//   5. Constants are parameters (synthesizable)
//
// SYSTEMVERILOG MAPPING:
// ──────────────────────
//   Go function       → SV always_comb block or module
//   Go loop           → SV generate for (parallel hardware)
//   Go bitwise ops    → SV bitwise ops (direct 1:1)
//   Go struct fields  → SV packed struct or wire bundles
//
// KEY CONCEPTS FOR HARDWARE NEWCOMERS:
// ────────────────────────────────────
//
// PRIORITY ENCODING:
//   The inverse of a decoder. A decoder turns a code into a one-hot line; a priority
//   encoder turns many (possibly simultaneous) lines back into the code of the winner.
//   "Fixed priority" means the ranking is wired in: line index IS the priority.
//
// VALID FLAG:
//   With zero requests there is no winner, so the code output would be garbage.
//   The valid flag (an 8-input OR) tells downstream logic whether to look at the
//   code at all. In RTL the code is a don't-care when valid is low; this model pins
//   it to 0 so that Go and RTL test vectors stay byte-for-byte comparable.
//
// CLZ (COUNT LEADING ZEROS):
//   Finding the highest set bit of an N-bit word is exactly what a CLZ tree computes.
//   An 8-bit CLZ is a 3-level tree of OR gates plus a small encoder, settling in one
//   gate-tree delay. Go's math/bits compiles to the same single instruction (LZCNT/CLZ)
//   on real CPUs, so the model is honest about the hardware's O(1) behavior.
//
// EXPLAIN LIKE I'M 3:
//   Eight kids raise their hands. The teacher always picks the kid with the biggest
//   number on their shirt, no matter how many hands are up. The encoder shouts that
//   kid's number (code) and whether any hand was up at all (valid).
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package penc

import (
	"math/bits"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PARAMETERS
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// SystemVerilog equivalent:
//   parameter INPUT_WIDTH = 8;
//   parameter CODE_WIDTH  = 3;
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

const (
	// InputWidth: Number of request lines.
	// Hardware: 8-bit input bus req[7:0].
	InputWidth = 8

	// CodeWidth: Bits needed to name one of 8 lines.
	// Hardware: 3-bit output bus code[2:0].
	CodeWidth = 3

	// InputMask: Mask for the 8-bit request bus.
	// Hardware: wire [7:0] req = in & 8'hFF;
	InputMask = (1 << InputWidth) - 1 // 0xFF

	// CodeMask: Mask for the 3-bit code.
	// Hardware: wire [2:0] code = enc & 3'h7;
	CodeMask = (1 << CodeWidth) - 1 // 0x7

	// PackedValidBit: Position of the valid flag in the packed nibble form.
	// Packed layout: {valid, code[2:0]} in bits [3:0].
	// Hardware: assign packed = {valid, code};
	PackedValidBit = 1 << CodeWidth // 0x8

	// PackedMask: Mask for the 4-bit packed form.
	PackedMask = (1 << (CodeWidth + 1)) - 1 // 0xF
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// OUTPUT WIRE BUNDLE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// EncodeResult is the encoder's output wire bundle.
//
// FIELDS:
//   Code:  Index of the highest-numbered active request line (3 bits used).
//          Meaningful only when Valid is true; held at 0 otherwise.
//   Valid: True iff at least one request line is active.
//
// SystemVerilog equivalent:
//   typedef struct packed {
//     logic [2:0] code;   // 3 bits
//     logic       valid;  // 1 bit
//   } penc_result_t;      // 4 bits total
type EncodeResult struct {
	Code  uint8 // Winning line index (3 bits used)
	Valid bool  // Any line active
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// THE ENCODER
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Encode resolves the 8-bit request bus to the index of the highest-numbered active
// line plus a valid flag. This is the entire device.
//
// CONTRACT:
//   in != 0 → Valid = true,  Code = index of the most significant set bit (0-7)
//   in == 0 → Valid = false, Code = 0
//
// The zero-input Code is a don't-care in hardware; the model fixes it to 0 so vector
// files are deterministic.
//
// ALGORITHM:
// ──────────
// Find-highest-set-bit via CLZ.
//
//	HARDWARE: 8-bit CLZ (count leading zeros)
//	  Implementation: 3-level tree of OR gates + encoder
//	  Latency: ~60ps (3 gate levels at ~20ps each)
//	  Cost: ~30 gates (~150 transistors)
//
// SystemVerilog equivalent:
//
//	always_comb begin
//	  valid = |req;                     // 8-input OR reduction
//	  casez (req)                       // priority casez, first match wins
//	    8'b1???????: code = 3'd7;
//	    8'b01??????: code = 3'd6;
//	    8'b001?????: code = 3'd5;
//	    8'b0001????: code = 3'd4;
//	    8'b00001???: code = 3'd3;
//	    8'b000001??: code = 3'd2;
//	    8'b0000001?: code = 3'd1;
//	    8'b00000001: code = 3'd0;
//	    default:     code = 3'd0;       // don't-care, pinned for the model
//	  endcase
//	end
//
// CRITICAL PATH: 60ps (CLZ tree); valid OR reduction runs in parallel (~40ps)
func Encode(in uint8) EncodeResult {
	if in == 0 {
		// No requester, no winner. Code pinned to 0 (don't-care in RTL).
		return EncodeResult{}
	}

	// Find highest set bit
	// HARDWARE: 8-bit CLZ tree, single gate-tree delay
	code := uint8(7 - bits.LeadingZeros8(in))

	return EncodeResult{
		Code:  code,
		Valid: true,
	}
}

// EncodeScan is the independent reference model for Encode: a descending scan that
// returns the first set bit found. This maps 1:1 to the priority casez above and is
// what the test suite cross-checks the CLZ path against. Observable behavior is
// identical for every input, including the pinned zero-input Code.
//
// HARDWARE: This loop is FULLY UNROLLED into the casez priority chain.
// Each iteration is one casez arm; all arms evaluate in parallel, first match wins.
func EncodeScan(in uint8) EncodeResult {
	for i := InputWidth - 1; i >= 0; i-- {
		if in&(1<<i) != 0 {
			return EncodeResult{Code: uint8(i), Valid: true}
		}
	}
	return EncodeResult{}
}

// EncodePacked returns the encoder output as the packed nibble {valid, code[2:0]}.
// This is the form the block presents when its 4 output wires ride a shared bus.
//
// Layout:
//
//	bit  3   : valid
//	bits 2:0 : code (0 when valid is low)
//
// Hardware: pure wiring, zero gates.
func EncodePacked(in uint8) uint8 {
	r := Encode(in)

	packed := r.Code & CodeMask
	if r.Valid {
		packed |= PackedValidBit
	}
	return packed
}

// HighestSetMask returns the one-hot mask of the winning request line, or 0 when no
// line is active. Downstream arbiters use this to acknowledge exactly one requester.
//
// HARDWARE: 3-to-8 decoder driven by the code output, gated by valid (~25 gates).
func HighestSetMask(in uint8) uint8 {
	r := Encode(in)
	if !r.Valid {
		return 0
	}
	return 1 << r.Code
}

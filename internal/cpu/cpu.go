// Package cpu defines the CPU variants that targets can require.
package cpu

import "strings"

// Kind is a CPU variant, identifying the instruction set dialect that
// code has to be generated for.
type Kind int

// CPU variants, in the order used by the assembler and linker.
const (
	Unknown Kind = iota - 1
	None
	M6502
	M6502X // 6502 with illegal opcodes
	M6502DTV
	M65SC02
	M65C02
	M65816
	Sweet16
	HuC6280
	M740
	M4510
	M45GS02
	W65C02
	M65CE02

	count
)

var names = [count]string{
	None:     "none",
	M6502:    "6502",
	M6502X:   "6502X",
	M6502DTV: "6502DTV",
	M65SC02:  "65SC02",
	M65C02:   "65C02",
	M65816:   "65816",
	Sweet16:  "sweet16",
	HuC6280:  "huc6280",
	M740:     "m740",
	M4510:    "4510",
	M45GS02:  "45GS02",
	W65C02:   "W65C02",
	M65CE02:  "65CE02",
}

// String returns the assembler name of the CPU variant as used by .setcpu.
func (k Kind) String() string {
	if k < None || k >= count {
		return "unknown"
	}
	return names[k]
}

// Find returns the CPU variant with the given name, compared case
// insensitive. Unknown is returned for names that are not a CPU variant.
func Find(name string) Kind {
	for k, n := range names {
		if strings.EqualFold(n, name) {
			return Kind(k)
		}
	}
	return Unknown
}

// Package target implements the registry of platforms that code can be
// generated for. It resolves target names to identifiers and exposes the CPU,
// binary format and character translation table of every target.
//
// All data of the registry is static, lookups are safe for concurrent use.
package target

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/retrotarget/internal/binfmt"
	"github.com/retroenv/retrotarget/internal/charset"
	"github.com/retroenv/retrotarget/internal/cpu"
)

// ErrInvalidID is the panic cause for property lookups of identifiers
// outside of the range of known targets.
var ErrInvalidID = errors.New("invalid target id")

// ErrUnknownTarget is returned by callers that turn an Unknown resolve
// result into an error.
var ErrUnknownTarget = errors.New("unrecognized target")

// ID identifies a target.
type ID int

// Target identifiers. The order matches the property table.
const (
	Unknown ID = iota - 1
	None
	Module
	Atari
	Atari2600
	Atari5200
	Atari7800
	AtariXL
	VIC20
	C16
	C64
	C128
	Plus4
	CBM510
	CBM610
	OSIC1P
	PET
	BBC
	Apple2
	Apple2Enh
	GEOSCBM
	CreatiVision
	GEOSApple
	Lunix
	Atmos
	Telestrat
	NES
	Supervision
	Lynx
	Sim6502
	Sim65C02
	PCEngine
	Gamate
	C65
	CX16
	Sym1
	MEGA65
	KIM1
	RP6502
	Agat

	// Count is the number of known targets.
	Count
)

// Valid returns whether the identifier refers to a known target.
func (id ID) Valid() bool {
	return id >= None && id < Count
}

// String returns the canonical target name, or "unknown" for identifiers
// that do not refer to a known target.
func (id ID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return properties[id].name
}

// Properties contains the static properties of a target.
type Properties struct {
	name    string
	cpu     cpu.Kind
	format  binfmt.Format
	charmap *charset.Table
}

// Name returns the canonical target name.
func (p *Properties) Name() string { return p.name }

// CPU returns the CPU variant that the target requires.
func (p *Properties) CPU() cpu.Kind { return p.cpu }

// BinFmt returns the binary format that the target loader expects.
func (p *Properties) BinFmt() binfmt.Format { return p.format }

// Charmap returns the host to target character translation table.
func (p *Properties) Charmap() *charset.Table { return p.charmap }

// Resolve returns the identifier of the target with the given name.
// The comparison is case sensitive, callers have to lower case user input.
// Unknown is returned if no target with this name exists.
func Resolve(name string) ID {
	i, found := slices.BinarySearchFunc(names, name, func(e nameEntry, name string) int {
		return strings.Compare(e.name, name)
	})
	if !found {
		return Unknown
	}
	return names[i].id
}

// PropertiesOf returns the properties of a target. The returned record is
// static and stays valid for the lifetime of the program.
// Passing an identifier that does not refer to a known target is a
// programming error and panics.
func PropertiesOf(id ID) *Properties {
	if !id.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidID, int(id)))
	}
	return &properties[id]
}

// NameOf returns the canonical name of a target. It panics for identifiers
// that do not refer to a known target.
func NameOf(id ID) string {
	return PropertiesOf(id).name
}

// Names returns all target names that Resolve accepts, including aliases,
// in ascending order.
func Names() []string {
	result := make([]string, len(names))
	for i, e := range names {
		result[i] = e.name
	}
	return result
}

// IDs returns all known target identifiers in enumeration order.
func IDs() []ID {
	ids := make([]ID, 0, Count)
	for id := None; id < Count; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Aliases returns all names that resolve to the given target, in
// ascending order.
func Aliases(id ID) []string {
	var result []string
	for _, e := range names {
		if e.id == id {
			result = append(result, e.name)
		}
	}
	return result
}

// Package charset contains the host to target character translation tables
// used when embedding string literals into generated code.
//
// Every table is a total mapping of all 256 host character codes to a target
// character code. Tables are shared by reference between targets and can not
// be modified after initialization.
package charset

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrUnsupportedCharacter is returned when source text contains a character
// that the host encoding of a table can not represent.
var ErrUnsupportedCharacter = errors.New("character not representable in host encoding")

// Table translates host character codes to target character codes.
type Table struct {
	name  string
	host  encoding.Encoding
	codes [256]byte
}

// Mapping is a single host to target character code pair.
type Mapping struct {
	Host   byte
	Target byte
}

// Translation tables, one per distinct target character set.
var (
	None  = newTable("none", charmap.ISO8859_1, identity())
	Atari = newTable("atascii", charmap.ISO8859_1, atariTable)
	OSI   = newTable("osascii", charmap.ISO8859_1, osiTable)
	PET   = newTable("petscii", charmap.ISO8859_1, petTable)
	Agat  = newTable("agat", charmap.KOI8R, agatTable)
)

func newTable(name string, host encoding.Encoding, codes [256]byte) *Table {
	return &Table{
		name:  name,
		host:  host,
		codes: codes,
	}
}

func identity() [256]byte {
	var codes [256]byte
	for i := range codes {
		codes[i] = byte(i)
	}
	return codes
}

// All returns all translation tables.
func All() []*Table {
	return []*Table{None, Atari, OSI, PET, Agat}
}

// Name returns the name of the target character set.
func (t *Table) Name() string {
	return t.name
}

// Map returns the target character code for the host character code c.
func (t *Table) Map(c byte) byte {
	return t.codes[c]
}

// Bytes returns a copy of the table.
func (t *Table) Bytes() [256]byte {
	return t.codes
}

// Translate returns a new slice containing the target character codes
// for the host character codes in src.
func (t *Table) Translate(src []byte) []byte {
	dst := make([]byte, len(src))
	for i, c := range src {
		dst[i] = t.codes[c]
	}
	return dst
}

// Encode converts UTF-8 source text into the host encoding of the table
// and translates the result to target character codes.
func (t *Table) Encode(text string) ([]byte, error) {
	host, err := t.host.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding %q for %s: %w: %w", text, t.name, ErrUnsupportedCharacter, err)
	}
	for i, c := range host {
		host[i] = t.codes[c]
	}
	return host, nil
}

// Differences returns all host character codes that the table does not
// map to themselves, in ascending host code order.
func (t *Table) Differences() []Mapping {
	var diffs []Mapping
	for i, c := range t.codes {
		if byte(i) != c {
			diffs = append(diffs, Mapping{Host: byte(i), Target: c})
		}
	}
	return diffs
}

// IsIdentity returns whether the table maps every character code to itself.
func (t *Table) IsIdentity() bool {
	return len(t.Differences()) == 0
}

package target

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/retrotarget/internal/binfmt"
	"github.com/retroenv/retrotarget/internal/charset"
	"github.com/retroenv/retrotarget/internal/cpu"
)

func TestNameTableSorted(t *testing.T) {
	for i := 1; i < len(names); i++ {
		prev, cur := names[i-1].name, names[i].name
		assert.True(t, strings.Compare(prev, cur) < 0,
			fmt.Sprintf("name table not strictly ascending at %d: %q >= %q", i, prev, cur))
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want ID
	}{
		{name: "c64", want: C64},
		{name: "apple2enh", want: Apple2Enh},
		{name: "agat", want: Agat},
		{name: "vic20", want: VIC20},
		{name: "none", want: None},
		{name: "module", want: Module},
		{name: "pce", want: PCEngine},
		{name: "geos", want: GEOSCBM},
		{name: "geos-cbm", want: GEOSCBM},
		{name: "geos-apple", want: GEOSApple},
		{name: "nonexistent-platform", want: Unknown},
		{name: "", want: Unknown},
		{name: "C64", want: Unknown},
		{name: "c6", want: Unknown},
		{name: "zzz", want: Unknown},
		{name: "aaa", want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.name))
			assert.Equal(t, tt.want, Resolve(tt.name))
		})
	}
}

func TestResolveAllNames(t *testing.T) {
	for _, e := range names {
		assert.Equal(t, e.id, Resolve(e.name))
	}
}

func TestResolveAlias(t *testing.T) {
	assert.Equal(t, Resolve("geos-cbm"), Resolve("geos"))
	assert.Equal(t, []string{"geos", "geos-cbm"}, Aliases(GEOSCBM))
	assert.Equal(t, []string{"c64"}, Aliases(C64))
}

func TestCanonicalNames(t *testing.T) {
	seen := set.New[string]()
	for _, id := range IDs() {
		props := PropertiesOf(id)
		name := props.Name()

		assert.False(t, seen.Contains(name), "duplicate canonical name "+name)
		seen.Add(name)

		assert.Equal(t, id, Resolve(name))
		assert.Equal(t, name, NameOf(id))
		assert.Equal(t, name, id.String())
	}

	for _, e := range names {
		assert.True(t, seen.Contains(NameOf(e.id)))
	}
}

func TestIDs(t *testing.T) {
	ids := IDs()
	assert.Equal(t, int(Count), len(ids))
	assert.Equal(t, None, ids[0])
	assert.Equal(t, Agat, ids[len(ids)-1])
	assert.Equal(t, 39, int(Count))
}

func TestPropertiesOf(t *testing.T) {
	tests := []struct {
		id      ID
		cpu     cpu.Kind
		format  binfmt.Format
		charmap *charset.Table
	}{
		{id: None, cpu: cpu.M6502, format: binfmt.Binary, charmap: charset.None},
		{id: Module, cpu: cpu.M6502, format: binfmt.O65, charmap: charset.None},
		{id: Lunix, cpu: cpu.M6502, format: binfmt.O65, charmap: charset.None},
		{id: Atari, cpu: cpu.M6502, format: binfmt.Binary, charmap: charset.Atari},
		{id: AtariXL, cpu: cpu.M6502, format: binfmt.Binary, charmap: charset.Atari},
		{id: C64, cpu: cpu.M6502, format: binfmt.Binary, charmap: charset.PET},
		{id: OSIC1P, cpu: cpu.M6502, format: binfmt.Binary, charmap: charset.OSI},
		{id: Apple2Enh, cpu: cpu.M65C02, format: binfmt.Binary, charmap: charset.None},
		{id: Lynx, cpu: cpu.M65SC02, format: binfmt.Binary, charmap: charset.None},
		{id: PCEngine, cpu: cpu.HuC6280, format: binfmt.Binary, charmap: charset.None},
		{id: C65, cpu: cpu.M4510, format: binfmt.Binary, charmap: charset.PET},
		{id: CX16, cpu: cpu.W65C02, format: binfmt.Binary, charmap: charset.PET},
		{id: MEGA65, cpu: cpu.M45GS02, format: binfmt.Binary, charmap: charset.PET},
		{id: Agat, cpu: cpu.M6502, format: binfmt.Binary, charmap: charset.Agat},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			props := PropertiesOf(tt.id)
			assert.Equal(t, tt.cpu, props.CPU())
			assert.Equal(t, tt.format, props.BinFmt())
			assert.True(t, tt.charmap == props.Charmap(), "translation table is not shared")
			assert.True(t, props == PropertiesOf(tt.id), "properties reference is not stable")
		})
	}
}

func TestPropertiesOfInvalid(t *testing.T) {
	for _, id := range []ID{Unknown, Count, Count + 10, -5} {
		t.Run(fmt.Sprint(int(id)), func(t *testing.T) {
			err := recoverError(func() { PropertiesOf(id) })
			assert.True(t, errors.Is(err, ErrInvalidID))

			err = recoverError(func() { NameOf(id) })
			assert.True(t, errors.Is(err, ErrInvalidID))
		})
	}
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", Count.String())
	assert.Equal(t, "geos-cbm", GEOSCBM.String())
}

func TestHasCapability(t *testing.T) {
	for capability := CPUHasBRA8; capability <= CPUHasBITImm; capability++ {
		assert.False(t, HasCapability(capability))
	}
	assert.False(t, HasCapability(Capability(-1)))
}

func TestNames(t *testing.T) {
	all := Names()
	assert.Equal(t, len(names), len(all))
	assert.Equal(t, "agat", all[0])
	assert.Equal(t, "vic20", all[len(all)-1])

	all[0] = "modified"
	assert.Equal(t, Agat, Resolve("agat"))
}

func recoverError(fn func()) (err error) {
	defer func() {
		r := recover()
		if e, ok := r.(error); ok {
			err = e
		}
	}()
	fn()
	return nil
}

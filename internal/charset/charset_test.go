package charset

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTablesTotal(t *testing.T) {
	for _, table := range All() {
		t.Run(table.Name(), func(t *testing.T) {
			codes := table.Bytes()
			assert.Equal(t, 256, len(codes))
			for i := 0; i < 256; i++ {
				assert.Equal(t, codes[i], table.Map(byte(i)))
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	assert.True(t, None.IsIdentity())
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), None.Map(byte(i)))
	}
	for _, table := range []*Table{Atari, OSI, PET, Agat} {
		assert.False(t, table.IsIdentity(), table.Name())
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		host  byte
		want  byte
	}{
		{name: "atari newline", table: Atari, host: 0x0A, want: 0x9B},
		{name: "atari bell", table: Atari, host: 0x07, want: 0xFD},
		{name: "atari tab", table: Atari, host: 0x09, want: 0x7F},
		{name: "osi pipe", table: OSI, host: 0x7C, want: 0x7D},
		{name: "osi tilde", table: OSI, host: 0x7E, want: 0x7F},
		{name: "pet newline", table: PET, host: 0x0A, want: 0x0D},
		{name: "pet upper case", table: PET, host: 'A', want: 0xC1},
		{name: "pet lower case", table: PET, host: 'a', want: 0x41},
		{name: "pet clear screen", table: PET, host: 0x0C, want: 0x93},
		{name: "pet digit", table: PET, host: '7', want: '7'},
		{name: "agat space", table: Agat, host: ' ', want: 0xA0},
		{name: "agat upper case", table: Agat, host: 'A', want: 0xC1},
		{name: "agat cyrillic", table: Agat, host: 0xC1, want: 0x61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.table.Map(tt.host))
		})
	}
}

func TestTranslate(t *testing.T) {
	src := []byte("Hi\n")
	got := PET.Translate(src)

	assert.Equal(t, []byte{0xC8, 0x49, 0x0D}, got)
	assert.Equal(t, []byte("Hi\n"), src)
	assert.Equal(t, 0, len(PET.Translate(nil)))
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		text  string
		want  []byte
	}{
		{name: "pet ascii", table: PET, text: "Hello", want: []byte{0xC8, 0x45, 0x4C, 0x4C, 0x4F}},
		{name: "none latin1", table: None, text: "é", want: []byte{0xE9}},
		{name: "atari newline", table: Atari, text: "A\n", want: []byte{0x41, 0x9B}},
		{name: "agat koi8-r", table: Agat, text: "Аа", want: []byte{0xE1, 0x61}},
		{name: "empty", table: PET, text: "", want: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.table.Encode(tt.text)
			assert.NoError(t, err)
			assert.Equal(t, len(tt.want), len(got))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := PET.Encode("snow ☃")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedCharacter))
}

func TestDifferences(t *testing.T) {
	assert.Equal(t, 0, len(None.Differences()))

	diffs := OSI.Differences()
	assert.Equal(t, []Mapping{
		{Host: 0x7C, Target: 0x7D},
		{Host: 0x7D, Target: 0x7C},
		{Host: 0x7E, Target: 0x7F},
		{Host: 0x7F, Target: 0x7E},
	}, diffs)
}

func TestBytesIsCopy(t *testing.T) {
	codes := PET.Bytes()
	codes['A'] = 0
	assert.Equal(t, byte(0xC1), PET.Map('A'))
}

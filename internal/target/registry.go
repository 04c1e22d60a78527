package target

import (
	"github.com/retroenv/retrotarget/internal/binfmt"
	"github.com/retroenv/retrotarget/internal/charset"
	"github.com/retroenv/retrotarget/internal/cpu"
)

type nameEntry struct {
	name string
	id   ID
}

// names maps target names to identifiers. A target can have multiple names.
// Resolve does a binary search, the entries must stay sorted by name.
var names = []nameEntry{
	{"agat", Agat},
	{"apple2", Apple2},
	{"apple2enh", Apple2Enh},
	{"atari", Atari},
	{"atari2600", Atari2600},
	{"atari5200", Atari5200},
	{"atari7800", Atari7800},
	{"atarixl", AtariXL},
	{"atmos", Atmos},
	{"bbc", BBC},
	{"c128", C128},
	{"c16", C16},
	{"c64", C64},
	{"c65", C65},
	{"cbm510", CBM510},
	{"cbm610", CBM610},
	{"creativision", CreatiVision},
	{"cx16", CX16},
	{"gamate", Gamate},
	{"geos", GEOSCBM},
	{"geos-apple", GEOSApple},
	{"geos-cbm", GEOSCBM},
	{"kim1", KIM1},
	{"lunix", Lunix},
	{"lynx", Lynx},
	{"mega65", MEGA65},
	{"module", Module},
	{"nes", NES},
	{"none", None},
	{"osic1p", OSIC1P},
	{"pce", PCEngine},
	{"pet", PET},
	{"plus4", Plus4},
	{"rp6502", RP6502},
	{"sim6502", Sim6502},
	{"sim65c02", Sim65C02},
	{"supervision", Supervision},
	{"sym1", Sym1},
	{"telestrat", Telestrat},
	{"vic20", VIC20},
}

var properties = [Count]Properties{
	None:         {"none", cpu.M6502, binfmt.Binary, charset.None},
	Module:       {"module", cpu.M6502, binfmt.O65, charset.None},
	Atari:        {"atari", cpu.M6502, binfmt.Binary, charset.Atari},
	Atari2600:    {"atari2600", cpu.M6502, binfmt.Binary, charset.None},
	Atari5200:    {"atari5200", cpu.M6502, binfmt.Binary, charset.Atari},
	Atari7800:    {"atari7800", cpu.M6502, binfmt.Binary, charset.None},
	AtariXL:      {"atarixl", cpu.M6502, binfmt.Binary, charset.Atari},
	VIC20:        {"vic20", cpu.M6502, binfmt.Binary, charset.PET},
	C16:          {"c16", cpu.M6502, binfmt.Binary, charset.PET},
	C64:          {"c64", cpu.M6502, binfmt.Binary, charset.PET},
	C128:         {"c128", cpu.M6502, binfmt.Binary, charset.PET},
	Plus4:        {"plus4", cpu.M6502, binfmt.Binary, charset.PET},
	CBM510:       {"cbm510", cpu.M6502, binfmt.Binary, charset.PET},
	CBM610:       {"cbm610", cpu.M6502, binfmt.Binary, charset.PET},
	OSIC1P:       {"osic1p", cpu.M6502, binfmt.Binary, charset.OSI},
	PET:          {"pet", cpu.M6502, binfmt.Binary, charset.PET},
	BBC:          {"bbc", cpu.M6502, binfmt.Binary, charset.None},
	Apple2:       {"apple2", cpu.M6502, binfmt.Binary, charset.None},
	Apple2Enh:    {"apple2enh", cpu.M65C02, binfmt.Binary, charset.None},
	GEOSCBM:      {"geos-cbm", cpu.M6502, binfmt.Binary, charset.None},
	CreatiVision: {"creativision", cpu.M6502, binfmt.Binary, charset.None},
	GEOSApple:    {"geos-apple", cpu.M65C02, binfmt.Binary, charset.None},
	Lunix:        {"lunix", cpu.M6502, binfmt.O65, charset.None},
	Atmos:        {"atmos", cpu.M6502, binfmt.Binary, charset.None},
	Telestrat:    {"telestrat", cpu.M6502, binfmt.Binary, charset.None},
	NES:          {"nes", cpu.M6502, binfmt.Binary, charset.None},
	Supervision:  {"supervision", cpu.M65SC02, binfmt.Binary, charset.None},
	Lynx:         {"lynx", cpu.M65SC02, binfmt.Binary, charset.None},
	Sim6502:      {"sim6502", cpu.M6502, binfmt.Binary, charset.None},
	Sim65C02:     {"sim65c02", cpu.M65C02, binfmt.Binary, charset.None},
	PCEngine:     {"pce", cpu.HuC6280, binfmt.Binary, charset.None},
	Gamate:       {"gamate", cpu.M6502, binfmt.Binary, charset.None},
	C65:          {"c65", cpu.M4510, binfmt.Binary, charset.PET},
	CX16:         {"cx16", cpu.W65C02, binfmt.Binary, charset.PET},
	Sym1:         {"sym1", cpu.M6502, binfmt.Binary, charset.None},
	MEGA65:       {"mega65", cpu.M45GS02, binfmt.Binary, charset.PET},
	KIM1:         {"kim1", cpu.M6502, binfmt.Binary, charset.None},
	RP6502:       {"rp6502", cpu.W65C02, binfmt.Binary, charset.None},
	Agat:         {"agat", cpu.M6502, binfmt.Binary, charset.Agat},
}

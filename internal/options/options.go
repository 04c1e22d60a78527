// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Target string `flag:"t" usage:"target system name, for example c64"`
	Output string `flag:"o" usage:"output .inc file (default: stdout)"`
	Config string `flag:"c" usage:"project config file (default: retrotarget.toml search)"`
	Encode string `flag:"encode" usage:"string literal to translate for the target"`
}

// Flags contains behavior options.
type Flags struct {
	List    bool `flag:"list" usage:"list all known target names"`
	Charmap bool `flag:"charmap" usage:"output .charmap directives for the target"`
	Debug   bool `flag:"debug" usage:"enable debug logging"`
	Quiet   bool `flag:"q" usage:"quiet mode"`
}

// Program options of the target tool.
type Program struct {
	Parameters
	Flags
}

// Writer defines options that are passed down to the assembly writer.
type Writer struct {
	Label        string // label of the encoded string literal
	TextComments bool   // add the source text of string literals as comment
}

// NewWriter returns a new writer options instance with default options.
func NewWriter() Writer {
	return Writer{
		Label:        "text",
		TextComments: true,
	}
}

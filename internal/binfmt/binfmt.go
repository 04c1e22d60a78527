// Package binfmt defines the output container formats that target loaders expect.
package binfmt

import "strings"

// Format is a binary output container format.
type Format int

const (
	Unknown Format = iota - 1
	Default        // the format chosen by the target
	Binary         // plain binary image
	O65            // o65 relocatable object

	count
)

var names = [count]string{
	Default: "default",
	Binary:  "binary",
	O65:     "o65",
}

func (f Format) String() string {
	if f < Default || f >= count {
		return "unknown"
	}
	return names[f]
}

// Find returns the format with the given name, compared case insensitive.
// Default can not be selected by name.
func Find(name string) Format {
	for f := Binary; f < count; f++ {
		if strings.EqualFold(names[f], name) {
			return f
		}
	}
	return Unknown
}

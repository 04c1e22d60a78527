// Package writer implements ca65 compatible assembly output for target
// selection, character maps and translated string literals.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrotarget/internal/charset"
	"github.com/retroenv/retrotarget/internal/cpu"
	"github.com/retroenv/retrotarget/internal/target"
)

const dataBytesPerLine = 16

type lineWriterFunc func(line string, byteCount int) error

// Writer writes assembly directives.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	DirectivePrefix string // nesasm style assemblers require a space before a directive
	TextComments    bool   // append the source text of string literals as comment
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// WriteCommentHeader writes the target properties as comments to the output.
func (w Writer) WriteCommentHeader(props *target.Properties) error {
	if _, err := fmt.Fprintf(w.writer, "; Target: %s\n", props.Name()); err != nil {
		return fmt.Errorf("writing target name: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; CPU: %s\n", props.CPU()); err != nil {
		return fmt.Errorf("writing cpu: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Binary format: %s\n", props.BinFmt()); err != nil {
		return fmt.Errorf("writing binary format: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Character set: %s\n\n", props.Charmap().Name()); err != nil {
		return fmt.Errorf("writing character set: %w", err)
	}
	return nil
}

// WriteCPUSelector writes the directive that selects the instruction set of the CPU.
func (w Writer) WriteCPUSelector(kind cpu.Kind) error {
	if _, err := fmt.Fprintf(w.writer, "%s.setcpu \"%s\"\n", w.options.DirectivePrefix, kind); err != nil {
		return fmt.Errorf("writing cpu selector: %w", err)
	}
	return nil
}

// WriteCharmap writes a .charmap directive for every character code that
// the table does not map to itself.
func (w Writer) WriteCharmap(table *charset.Table) error {
	diffs := table.Differences()
	if len(diffs) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "; %s character map\n", table.Name()); err != nil {
		return fmt.Errorf("writing charmap comment: %w", err)
	}
	for _, m := range diffs {
		if _, err := fmt.Fprintf(w.writer, "%s.charmap $%02X, $%02X\n", w.options.DirectivePrefix, m.Host, m.Target); err != nil {
			return fmt.Errorf("writing charmap entry: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// WriteString writes a label followed by the already translated bytes of a
// string literal.
func (w Writer) WriteString(label, text string, data []byte) error {
	if label != "" {
		if _, err := fmt.Fprintf(w.writer, "%s:\n", label); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
	}

	first := true
	lineWriter := func(line string, _ int) error {
		var err error
		if first && w.options.TextComments {
			_, err = fmt.Fprintf(w.writer, "  %-30s ; %q\n", line, text)
		} else {
			_, err = fmt.Fprintf(w.writer, "  %s\n", line)
		}
		first = false
		if err != nil {
			return fmt.Errorf("writing string line: %w", err)
		}
		return nil
	}

	if err := w.BundleDataWrites(data, lineWriter); err != nil {
		return fmt.Errorf("writing string data: %w", err)
	}
	return nil
}

// BundleDataWrites bundles writes of data bytes to print dataBytesPerLine bytes per line.
func (w Writer) BundleDataWrites(data []byte, lineWriter lineWriterFunc) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		if _, err := fmt.Fprintf(buf, "%s.byte ", w.options.DirectivePrefix); err != nil {
			return fmt.Errorf("writing data prefix: %w", err)
		}

		for j := 0; j < toWrite; j++ {
			if _, err := fmt.Fprintf(buf, "$%02x, ", data[i+j]); err != nil {
				return fmt.Errorf("writing data byte: %w", err)
			}
		}

		line := strings.TrimRight(buf.String(), ", ")

		if lineWriter != nil {
			if err := lineWriter(line, toWrite); err != nil {
				return fmt.Errorf("writing data line using custom writer: %w", err)
			}
		} else {
			if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
				return fmt.Errorf("writing data line: %w", err)
			}
		}

		i += toWrite
		remaining -= toWrite
	}

	return nil
}

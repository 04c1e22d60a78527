// Package output handles the target resolution and output generation workflow.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrotarget/internal/options"
	"github.com/retroenv/retrotarget/internal/session"
	"github.com/retroenv/retrotarget/internal/target"
	"github.com/retroenv/retrotarget/internal/writer"
)

// SelectTarget resolves the target name of the options and sets it as
// target of the session.
func SelectTarget(logger *log.Logger, sess *session.Session, name string) error {
	id := target.Resolve(name)
	if id == target.Unknown {
		return fmt.Errorf("%w '%s'", target.ErrUnknownTarget, name)
	}
	if err := sess.SetTarget(id); err != nil {
		return fmt.Errorf("selecting target: %w", err)
	}

	props := target.PropertiesOf(id)
	logger.Debug("Selected target",
		log.String("name", name),
		log.String("target", props.Name()),
		log.Stringer("cpu", props.CPU()),
		log.Stringer("format", props.BinFmt()),
		log.String("charset", props.Charmap().Name()))
	return nil
}

// Process writes the include file for the selected target of the session.
func Process(sess *session.Session, opts options.Program, writerOpts options.Writer, out io.Writer) error {
	props := sess.Properties()
	w := writer.New(out, writer.Options{
		TextComments: writerOpts.TextComments,
	})

	if err := w.WriteCommentHeader(props); err != nil {
		return err
	}
	if err := w.WriteCPUSelector(props.CPU()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}

	if opts.Charmap {
		if err := w.WriteCharmap(props.Charmap()); err != nil {
			return err
		}
	}

	if opts.Encode != "" {
		data, err := props.Charmap().Encode(opts.Encode)
		if err != nil {
			return fmt.Errorf("translating string literal: %w", err)
		}
		if err := w.WriteString(writerOpts.Label, opts.Encode, data); err != nil {
			return err
		}
	}
	return nil
}

// ProcessFile writes the include file to the output file of the options,
// or to stdout if no output file is set.
func ProcessFile(sess *session.Session, opts options.Program, writerOpts options.Writer) error {
	out, closeOutput, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	if err := Process(sess, opts, writerOpts, out); err != nil {
		_ = closeOutput()
		return err
	}
	if err := closeOutput(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// ListTargets writes all known target names, one per line. Aliases are
// followed by the canonical name they resolve to.
func ListTargets(out io.Writer) error {
	for _, name := range target.Names() {
		canonical := target.NameOf(target.Resolve(name))
		line := name
		if canonical != name {
			line = fmt.Sprintf("%-14s -> %s", name, canonical)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("writing target name: %w", err)
		}
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, func() error, error) {
	if opts.Output == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, file.Close, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version string) {
	if opts.Quiet || opts.List {
		return
	}
	logger.Info("retrotarget", log.String("version", strings.TrimSpace(version)))
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/retroenv/retrotarget/internal/options"
)

// ProjectFileName is the name of the project file that is searched for
// when no config file is passed.
const ProjectFileName = "retrotarget.toml"

// Project is the content of a project file.
type Project struct {
	Target TargetSection `toml:"target"`
	Output OutputSection `toml:"output"`
}

// TargetSection selects the target of the project.
type TargetSection struct {
	Name string `toml:"name"`
}

// OutputSection configures the generated include file.
type OutputSection struct {
	File    string `toml:"file"`
	Charmap bool   `toml:"charmap"`
	Label   string `toml:"label"`
}

// FindProjectFile searches the start directory and all of its parents for
// a project file. The returned bool is false if no file was found.
func FindProjectFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ProjectFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("checking file '%s': %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadProject reads and validates a project file.
func LoadProject(path string) (Project, error) {
	var project Project
	meta, err := toml.DecodeFile(path, &project)
	if err != nil {
		return Project{}, fmt.Errorf("parsing project file '%s': %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Project{}, fmt.Errorf("project file '%s': unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("target") && strings.TrimSpace(project.Target.Name) == "" {
		return Project{}, fmt.Errorf("project file '%s': missing [target].name", path)
	}
	return project, nil
}

// ApplyProject fills all options that were not set on the command line
// with the values of the project file.
func ApplyProject(project Project, opts *options.Program, writerOpts *options.Writer) {
	if opts.Target == "" {
		opts.Target = strings.ToLower(strings.TrimSpace(project.Target.Name))
	}
	if opts.Output == "" {
		opts.Output = project.Output.File
	}
	if project.Output.Charmap {
		opts.Charmap = true
	}
	if project.Output.Label != "" && writerOpts.Label == options.NewWriter().Label {
		writerOpts.Label = project.Output.Label
	}
}

// LoadOptions loads the project file configured in the options, or the
// first project file found from the working directory upwards, and applies
// it to the options. It returns the path of the used file, empty if none.
func LoadOptions(opts *options.Program, writerOpts *options.Writer) (string, error) {
	path := opts.Config
	if path == "" {
		found, ok, err := FindProjectFile(".")
		if err != nil {
			return "", err
		}
		if !ok {
			return "", nil
		}
		path = found
	}

	project, err := LoadProject(path)
	if err != nil {
		return "", err
	}
	ApplyProject(project, opts, writerOpts)
	return path, nil
}

package cli

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// ProjectConfigFile is looked up next to the input file. It supplies run
// defaults for a repository so invocations don't have to repeat them.
const ProjectConfigFile = "actiongen.toml"

type projectConfig struct {
	Feature string `toml:"feature"`
	Out     string `toml:"out"`
}

// resolveConfig layers run configuration: project file defaults first,
// explicit flags on top.
func resolveConfig(inputPath string, fromFlags GenerateConfig, flags *pflag.FlagSet) (GenerateConfig, error) {
	cfg := fromFlags

	project, err := readProjectConfig(filepath.Dir(inputPath))
	if err != nil {
		return cfg, err
	}
	if project == nil {
		return cfg, nil
	}

	if !flags.Changed("feature") && project.Feature != "" {
		cfg.Feature = project.Feature
	}
	if !flags.Changed("out") && project.Out != "" {
		cfg.Out = project.Out
	}
	return cfg, nil
}

// readProjectConfig returns nil without error when the directory has no
// project file.
func readProjectConfig(dir string) (*projectConfig, error) {
	path := filepath.Join(dir, ProjectConfigFile)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}

	cfg := &projectConfig{}
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", path)
	}
	return cfg, nil
}

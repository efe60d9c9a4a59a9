package design

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ProjectFile is the name of the project configuration file.
const ProjectFile = "vast.toml"

// ProjectConfig represents a vast.toml project configuration file. Every
// field is optional; command-line flags take precedence.
type ProjectConfig struct {
	// Dialect is used for descriptions that do not name one.
	Dialect Dialect `toml:"dialect,omitempty"`

	// Width is the line width rendered output is wrapped to.
	Width int `toml:"width,omitempty"`

	// Out is the directory rendered files are written to, relative to
	// vast.toml. Empty means stdout.
	Out string `toml:"out,omitempty"`

	// Jobs bounds how many descriptions are rendered concurrently.
	Jobs int `toml:"jobs,omitempty"`

	// Dir is the directory vast.toml was found in.
	Dir string `toml:"-"`
}

// LoadProjectConfig loads a vast.toml file from the given path.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	var config ProjectConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if config.Dialect != "" {
		if _, err := ParseDialect(string(config.Dialect)); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if config.Width < 0 {
		return nil, fmt.Errorf("parsing %s: width must not be negative", path)
	}
	if config.Jobs < 0 {
		return nil, fmt.Errorf("parsing %s: jobs must not be negative", path)
	}
	if config.Out != "" && !filepath.IsAbs(config.Out) {
		config.Out = filepath.Join(filepath.Dir(path), config.Out)
	}
	return &config, nil
}

// FindProjectConfig locates the vast.toml governing dir: the nearest one in
// dir or its parents, without crossing the root of a git checkout. The
// returned config has Dir set to the directory holding the file. A nil
// config means no project file applies.
func FindProjectConfig(dir string) (*ProjectConfig, error) {
	root, err := projectRoot(dir)
	if err != nil || root == "" {
		return nil, err
	}
	config, err := LoadProjectConfig(filepath.Join(root, ProjectFile))
	if err != nil {
		return nil, err
	}
	config.Dir = root
	return config, nil
}

func projectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving project directory")
	}
	for {
		found, err := exists(filepath.Join(dir, ProjectFile))
		if err != nil || found {
			return dir, err
		}
		if checkout, err := exists(filepath.Join(dir, ".git")); err != nil || checkout {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, errors.Wrapf(err, "checking %s", path)
	}
}

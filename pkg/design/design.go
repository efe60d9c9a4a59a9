// Package design loads declarative module descriptions from TOML or YAML
// and builds them into Verilog-2005 or SystemVerilog-2017 modules.
package design

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Dialect string

const (
	V05 Dialect = "v05"
	V17 Dialect = "v17"
)

// ParseDialect accepts a dialect name. An empty name is an error.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(s)); d {
	case V05, V17:
		return d, nil
	}
	return "", errors.Errorf("unknown dialect %q (want %q or %q)", s, V05, V17)
}

// Ext is the file extension for rendered modules.
func (d Dialect) Ext() string {
	if d == V17 {
		return ".sv"
	}
	return ".v"
}

// Design describes a single module.
type Design struct {
	Name       string     `toml:"name" yaml:"name"`
	Dialect    Dialect    `toml:"dialect,omitempty" yaml:"dialect,omitempty"`
	Attributes []string   `toml:"attributes,omitempty" yaml:"attributes,omitempty"`
	Params     []Param    `toml:"params,omitempty" yaml:"params,omitempty"`
	Ports      []Port     `toml:"ports,omitempty" yaml:"ports,omitempty"`
	Decls      []Decl     `toml:"decls,omitempty" yaml:"decls,omitempty"`
	Instances  []Instance `toml:"instances,omitempty" yaml:"instances,omitempty"`
	Assigns    []Assign   `toml:"assigns,omitempty" yaml:"assigns,omitempty"`
}

// Param is a module parameter. Value is an unsigned integer or a string.
type Param struct {
	Name  string `toml:"name" yaml:"name"`
	Value any    `toml:"value" yaml:"value"`
}

// Port is a module port. A missing width means a single bit; an explicit
// width must be positive.
type Port struct {
	Name  string  `toml:"name" yaml:"name"`
	Dir   string  `toml:"dir" yaml:"dir"`
	Width *uint64 `toml:"width,omitempty" yaml:"width,omitempty"`
	Kind  string  `toml:"kind,omitempty" yaml:"kind,omitempty"`
}

// Decl is a body declaration. Width follows the same rules as Port.Width;
// a depth of two or more makes it an array.
type Decl struct {
	Name  string  `toml:"name" yaml:"name"`
	Width *uint64 `toml:"width,omitempty" yaml:"width,omitempty"`
	Kind  string  `toml:"kind,omitempty" yaml:"kind,omitempty"`
	Depth *uint64 `toml:"depth,omitempty" yaml:"depth,omitempty"`
}

// Instance instantiates another module. Params map to unsigned integers
// or expression strings; ports map to expression strings.
type Instance struct {
	Name   string            `toml:"name,omitempty" yaml:"name,omitempty"`
	Module string            `toml:"module" yaml:"module"`
	Params map[string]any    `toml:"params,omitempty" yaml:"params,omitempty"`
	Ports  map[string]string `toml:"ports,omitempty" yaml:"ports,omitempty"`
}

type Assign struct {
	Lhs string `toml:"lhs" yaml:"lhs"`
	Rhs string `toml:"rhs" yaml:"rhs"`
}

type Format int

const (
	TOML Format = iota
	YAML
)

// FormatOf picks the description format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, errors.Errorf("%s: unsupported description format (want .toml, .yaml or .yml)", path)
}

// Load reads and decodes a description file.
func Load(path string) (*Design, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read description")
	}
	d, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return d, nil
}

// Decode parses a description. Unknown keys are rejected.
func Decode(data []byte, format Format) (*Design, error) {
	var d Design
	switch format {
	case TOML:
		md, err := toml.Decode(string(data), &d)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("unknown key %q", undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown format %d", int(format))
	}
	return &d, nil
}

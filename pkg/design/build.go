package design

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/doc"
	"github.com/vito/vast/pkg/subset"
	"github.com/vito/vast/pkg/v05"
	"github.com/vito/vast/pkg/v17"
)

// Module is a built module of either dialect.
type Module interface {
	Name() string
	Doc() *doc.Doc
	String() string
}

// Built pairs a module with the dialect it was built for.
type Built struct {
	Dialect Dialect
	Module  Module
}

// Build validates the description and builds it. fallback is used when
// the description does not name a dialect.
func (d *Design) Build(fallback Dialect) (*Built, error) {
	dialect := d.Dialect
	if dialect == "" {
		dialect = fallback
	}
	dialect, err := ParseDialect(string(dialect))
	if err != nil {
		return nil, err
	}

	r, err := d.resolve(dialect)
	if err != nil {
		return nil, errors.Wrapf(err, "module %s", d.Name)
	}

	var mod Module
	switch dialect {
	case V05:
		mod = r.buildV05()
	case V17:
		mod = r.buildV17()
	}
	return &Built{Dialect: dialect, Module: mod}, nil
}

// resolved is a validated description with every expression parsed and
// every instance named.
type resolved struct {
	name      string
	attr      subset.Attribute
	params    []resolvedParam
	ports     []resolvedPort
	decls     []resolvedDecl
	instances []*subset.Instance
	assigns   [][2]subset.Expr
}

type resolvedParam struct {
	name  string
	value subset.Expr
}

type resolvedPort struct {
	name  string
	dir   subset.PortDir
	width uint64
	kind  string
}

type resolvedDecl struct {
	name  string
	width uint64
	depth uint64
	kind  string
}

var portDirs = map[string]subset.PortDir{
	"in":     subset.Input,
	"input":  subset.Input,
	"out":    subset.Output,
	"output": subset.Output,
	"inout":  subset.Inout,
}

// kinds lists the declaration keywords each dialect accepts; the first
// entry is the default.
var kinds = map[Dialect][]string{
	V05: {"wire", "reg", "integer"},
	V17: {"logic", "int"},
}

func (d *Design) resolve(dialect Dialect) (*resolved, error) {
	if !identifier.MatchString(d.Name) {
		return nil, errors.Errorf("invalid module name %q", d.Name)
	}
	r := &resolved{name: d.Name, attr: subset.NewAttribute()}

	for _, a := range d.Attributes {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, errors.Errorf("empty attribute %q", a)
		}
		if ok {
			r.attr.AddStmt(key, strings.TrimSpace(value))
		} else {
			r.attr.AddVal(key)
		}
	}

	names := map[string]string{}
	declare := func(kind, name string) error {
		if !identifier.MatchString(name) {
			return errors.Errorf("invalid %s name %q", kind, name)
		}
		if prev, ok := names[name]; ok {
			return errors.Errorf("%s %q already declared as a %s", kind, name, prev)
		}
		names[name] = kind
		return nil
	}

	for _, p := range d.Params {
		if err := declare("param", p.Name); err != nil {
			return nil, err
		}
		v, err := paramValue(p.Value, strValue)
		if err != nil {
			return nil, errors.Wrapf(err, "param %s", p.Name)
		}
		r.params = append(r.params, resolvedParam{p.Name, v})
	}

	for _, p := range d.Ports {
		if err := declare("port", p.Name); err != nil {
			return nil, err
		}
		dir, ok := portDirs[strings.ToLower(p.Dir)]
		if !ok {
			return nil, errors.Errorf("port %s: unknown direction %q", p.Name, p.Dir)
		}
		width, err := widthOf(p.Width)
		if err != nil {
			return nil, errors.Wrapf(err, "port %s", p.Name)
		}
		kind, err := declKind(dialect, p.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "port %s", p.Name)
		}
		if kind == "int" || kind == "integer" {
			return nil, errors.Errorf("port %s: %s ports are not supported", p.Name, kind)
		}
		if kind == "reg" && dir != subset.Output {
			return nil, errors.Errorf("port %s: only outputs can be reg", p.Name)
		}
		r.ports = append(r.ports, resolvedPort{name: p.Name, dir: dir, width: width, kind: kind})
	}

	for _, decl := range d.Decls {
		if err := declare("decl", decl.Name); err != nil {
			return nil, err
		}
		kind, err := declKind(dialect, decl.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "decl %s", decl.Name)
		}
		width, err := widthOf(decl.Width)
		if err != nil {
			return nil, errors.Wrapf(err, "decl %s", decl.Name)
		}
		var depth uint64
		if decl.Depth != nil {
			depth = *decl.Depth
			if depth < 2 {
				return nil, errors.Errorf("decl %s: array depth must be at least 2, got %d", decl.Name, depth)
			}
			if kind == "int" || kind == "integer" || kind == "wire" {
				return nil, errors.Errorf("decl %s: %s cannot be an array", decl.Name, kind)
			}
		}
		r.decls = append(r.decls, resolvedDecl{name: decl.Name, width: width, depth: depth, kind: kind})
	}

	counters := map[string]int{}
	for i, inst := range d.Instances {
		if !identifier.MatchString(inst.Module) {
			return nil, errors.Errorf("instance %d: invalid module name %q", i, inst.Module)
		}
		name := inst.Name
		if name == "" {
			name = autoName(inst.Module, counters, names)
		}
		if err := declare("instance", name); err != nil {
			return nil, err
		}
		built := subset.NewInstance(name, inst.Module)
		for _, k := range sortedKeys(inst.Params) {
			v, err := paramValue(inst.Params[k], ParseExpr)
			if err != nil {
				return nil, errors.Wrapf(err, "instance %s: param %s", name, k)
			}
			built.AddParam(k, v)
		}
		for port, src := range inst.Ports {
			e, err := ParseExpr(src)
			if err != nil {
				return nil, errors.Wrapf(err, "instance %s: port %s", name, port)
			}
			built.Connect(port, e)
		}
		r.instances = append(r.instances, built)
	}

	for i, a := range d.Assigns {
		lhs, err := ParseExpr(a.Lhs)
		if err != nil {
			return nil, errors.Wrapf(err, "assign %d: lhs", i)
		}
		if _, ok := lhs.(*subset.Ref); !ok {
			return nil, errors.Errorf("assign %d: lhs %q must be a signal name", i, a.Lhs)
		}
		rhs, err := ParseExpr(a.Rhs)
		if err != nil {
			return nil, errors.Wrapf(err, "assign %d: rhs", i)
		}
		r.assigns = append(r.assigns, [2]subset.Expr{lhs, rhs})
	}

	return r, nil
}

// widthOf defaults a missing width to a single bit and validates an
// explicit one.
func widthOf(w *uint64) (uint64, error) {
	if w == nil {
		return 1, nil
	}
	if err := subset.CheckWidth(*w); err != nil {
		return 0, err
	}
	return *w, nil
}

func declKind(dialect Dialect, kind string) (string, error) {
	allowed := kinds[dialect]
	if kind == "" {
		return allowed[0], nil
	}
	kind = strings.ToLower(kind)
	for _, k := range allowed {
		if k == kind {
			return k, nil
		}
	}
	return "", errors.Errorf("kind %q is not valid for %s (want one of %s)", kind, dialect, strings.Join(allowed, ", "))
}

func strValue(s string) (subset.Expr, error) {
	return subset.NewStr(s), nil
}

// paramValue accepts an unsigned integer, rendered as a 32-bit decimal
// literal, or a string handed to fromString.
func paramValue(v any, fromString func(string) (subset.Expr, error)) (subset.Expr, error) {
	var n int64
	switch v := v.(type) {
	case string:
		return fromString(v)
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		if v > math.MaxUint32 {
			return nil, errors.Errorf("value %d does not fit in 32 bits", v)
		}
		n = int64(v)
	case nil:
		return nil, errors.New("missing value")
	default:
		return nil, errors.Errorf("unsupported value %v (%T)", v, v)
	}
	if n < 0 || n > math.MaxUint32 {
		return nil, errors.Errorf("value %d does not fit in 32 bits", n)
	}
	return subset.NewULitUint(uint32(n)), nil
}

// autoName names an unnamed instance after its module: AdderTree becomes
// adder_tree_0, adder_tree_1, and so on, skipping names already taken.
func autoName(module string, counters map[string]int, taken map[string]string) string {
	base := strcase.ToSnake(module)
	for {
		n := counters[base]
		counters[base]++
		name := fmt.Sprintf("%s_%d", base, n)
		if _, ok := taken[name]; !ok {
			return name
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *resolved) buildV05() *v05.Module {
	m := v05.NewModule(r.name)
	m.SetAttr(r.attr)
	for _, p := range r.params {
		m.AddParam(v05.NewParam(p.name, p.value))
	}
	for _, p := range r.ports {
		var decl v05.Decl = v05.NewWire(p.name, p.width)
		if p.kind == "reg" {
			decl = v05.NewReg(p.name, p.width)
		}
		m.AddPort(subset.Port[v05.Decl]{Dir: p.dir, Decl: decl})
	}
	for _, d := range r.decls {
		switch {
		case d.kind == "integer":
			m.AddDecl(v05.NewInt(d.name))
		case d.depth > 0:
			m.AddDecl(v05.NewArray(d.name, d.width, d.depth))
		case d.kind == "reg":
			m.AddReg(d.name, d.width)
		default:
			m.AddWire(d.name, d.width)
		}
	}
	for _, inst := range r.instances {
		m.AddInstance(inst)
	}
	for _, a := range r.assigns {
		m.AddAssign(a[0], a[1])
	}
	return m
}

func (r *resolved) buildV17() *v17.Module {
	m := v17.NewModule(r.name)
	m.SetAttr(r.attr)
	for _, p := range r.params {
		if _, ok := p.value.(*subset.ULit); ok {
			ty := subset.NewIntTy()
			m.AddParam(v17.Param{Name: p.name, Ty: &ty, Value: p.value})
			continue
		}
		m.AddParam(v17.NewParam(p.name, p.value))
	}
	for _, p := range r.ports {
		m.AddPort(subset.Port[v17.Decl]{Dir: p.dir, Decl: v17.NewLogic(p.name, p.width)})
	}
	for _, d := range r.decls {
		switch {
		case d.kind == "int":
			m.AddDecl(v17.NewInt(d.name))
		case d.depth > 0:
			m.AddDecl(v17.NewArray(d.name, d.width, d.depth))
		default:
			m.AddLogic(d.name, d.width)
		}
	}
	for _, inst := range r.instances {
		m.AddInstance(inst)
	}
	for _, a := range r.assigns {
		m.AddAssign(a[0], a[1])
	}
	return m
}

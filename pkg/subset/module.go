package subset

import (
	"github.com/vito/vast/pkg/doc"
)

type PortDir int

const (
	Input PortDir = iota
	Output
	Inout
)

func (d PortDir) Doc() *doc.Doc {
	switch d {
	case Input:
		return doc.Text("input")
	case Output:
		return doc.Text("output")
	case Inout:
		return doc.Text("inout")
	}
	invariant("unknown port direction %d", int(d))
	return nil
}

// Port wraps a declaration as a module or function port.
type Port[D Node] struct {
	Dir  PortDir
	Decl D
}

func NewInput[D Node](decl D) Port[D]  { return Port[D]{Dir: Input, Decl: decl} }
func NewOutput[D Node](decl D) Port[D] { return Port[D]{Dir: Output, Decl: decl} }
func NewInout[D Node](decl D) Port[D]  { return Port[D]{Dir: Inout, Decl: decl} }

func (p Port[D]) Doc() *doc.Doc {
	return doc.Concat(p.Dir.Doc(), doc.Space(), p.Decl.Doc())
}

func (p Port[D]) String() string { return p.Doc().String() }

// Block is implemented by declarations that close with their own keyword
// (e.g. endfunction) and take no trailing semicolon.
type Block interface {
	IsBlock() bool
}

// terminated appends the statement terminator unless n closes itself.
func terminated(n Node) *doc.Doc {
	if b, ok := n.(Block); ok && b.IsBlock() {
		return n.Doc()
	}
	return n.Doc().Append(doc.Text(";"))
}

type stmtKind int

const (
	stmtDecl stmtKind = iota
	stmtParallel
	stmtRaw
)

// Stmt is an item in a module body: a declaration, a parallel statement or
// verbatim text.
type Stmt[D, P Node] struct {
	kind stmtKind
	decl D
	par  P
	raw  string
}

func NewDeclStmt[D, P Node](decl D) Stmt[D, P] {
	return Stmt[D, P]{kind: stmtDecl, decl: decl}
}

func NewParallelStmt[D, P Node](par P) Stmt[D, P] {
	return Stmt[D, P]{kind: stmtParallel, par: par}
}

func NewRawStmt[D, P Node](raw string) Stmt[D, P] {
	return Stmt[D, P]{kind: stmtRaw, raw: raw}
}

func (s Stmt[D, P]) Decl() (D, bool)     { return s.decl, s.kind == stmtDecl }
func (s Stmt[D, P]) Parallel() (P, bool) { return s.par, s.kind == stmtParallel }
func (s Stmt[D, P]) Raw() (string, bool) { return s.raw, s.kind == stmtRaw }

func (s Stmt[D, P]) Doc() *doc.Doc {
	switch s.kind {
	case stmtDecl:
		return terminated(s.decl)
	case stmtParallel:
		return s.par.Doc()
	default:
		return doc.Text(s.raw)
	}
}

func (s Stmt[D, P]) String() string { return s.Doc().String() }

// Module is the structure shared by every dialect. D is the dialect's
// declaration type and P its parallel statement type.
type Module[D, P Node] struct {
	name   string
	params []D
	ports  []Port[D]
	body   []Stmt[D, P]
	attr   Attribute
}

func NewModule[D, P Node](name string) *Module[D, P] {
	return &Module[D, P]{name: name}
}

func (m *Module[D, P]) Name() string         { return m.name }
func (m *Module[D, P]) Params() []D          { return m.params }
func (m *Module[D, P]) Ports() []Port[D]     { return m.ports }
func (m *Module[D, P]) Body() []Stmt[D, P]   { return m.body }
func (m *Module[D, P]) Attr() Attribute      { return m.attr }
func (m *Module[D, P]) SetAttr(a Attribute)  { m.attr = a }
func (m *Module[D, P]) AddParam(decl D)      { m.params = append(m.params, decl) }
func (m *Module[D, P]) AddPort(port Port[D]) { m.ports = append(m.ports, port) }
func (m *Module[D, P]) AddStmt(s Stmt[D, P]) { m.body = append(m.body, s) }

func (m *Module[D, P]) AddDecl(decl D) {
	m.AddStmt(NewDeclStmt[D, P](decl))
}

func (m *Module[D, P]) AddParallel(par P) {
	m.AddStmt(NewParallelStmt[D](par))
}

// AddRaw appends a verbatim line to the body.
func (m *Module[D, P]) AddRaw(raw string) {
	m.AddStmt(NewRawStmt[D, P](raw))
}

func (m *Module[D, P]) Doc() *doc.Doc {
	params := make([]*doc.Doc, len(m.params))
	for i, p := range m.params {
		params[i] = p.Doc()
	}
	ports := make([]*doc.Doc, len(m.ports))
	for i, p := range m.ports {
		ports[i] = p.Doc()
	}

	name := doc.Text(m.name)
	var header *doc.Doc
	switch {
	case len(params) == 0 && len(ports) == 0:
		header = name.Append(doc.Text(" ()"))
	case len(params) == 0:
		header = doc.BlockWithParens(name, doc.CommaLines(ports))
	case len(ports) == 0:
		header = doc.Concat(name, doc.Text(" #"), doc.Block(doc.CommaLines(params)).Parens(), doc.Text(" ()"))
	default:
		header = doc.Concat(
			name,
			doc.Text(" #"),
			doc.Block(doc.CommaLines(params)).Parens(),
			doc.BlockWithParens(doc.Nil(), doc.CommaLines(ports)),
		)
	}

	body := doc.Hardline()
	if len(m.body) > 0 {
		stmts := make([]*doc.Doc, len(m.body))
		for i, s := range m.body {
			stmts[i] = s.Doc()
		}
		body = doc.Block(doc.Lines(stmts))
	}

	return doc.Concat(
		m.attr.prefix(doc.Hardline()),
		doc.Text("module "),
		header,
		doc.Text(";"),
		body,
		doc.Text("endmodule"),
		doc.Hardline(),
	)
}

func (m *Module[D, P]) String() string { return m.Doc().String() }

// Package v05 binds the shared containers to the Verilog-2005 vocabulary:
// wire, reg and integer declarations, always and initial processes.
package v05

import (
	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/doc"
	"github.com/vito/vast/pkg/subset"
)

// Decl is a Verilog-2005 declaration.
type Decl interface {
	subset.Node
	String() string
	decl()
}

type Int struct {
	Name string
}

type Wire struct {
	Name string
	Ty   subset.Ty
}

type Reg struct {
	Name string
	Ty   subset.Ty
}

// Array is a memory: `reg [width-1:0] name [depth-1:0]`.
type Array struct {
	Name  string
	Width subset.Ty
	Depth subset.Ty
}

type Param struct {
	Name  string
	Value subset.Expr
}

// AttributeDecl is a declaration preceded by an attribute block.
type AttributeDecl struct {
	Attr subset.Attribute
	Decl Decl
}

func (Int) decl()           {}
func (Wire) decl()          {}
func (Reg) decl()           {}
func (Array) decl()         {}
func (Param) decl()         {}
func (AttributeDecl) decl() {}

func (d Int) Doc() *doc.Doc  { return doc.Text("integer ").Append(doc.Text(d.Name)) }
func (d Wire) Doc() *doc.Doc { return subset.Typed("wire", d.Ty, d.Name) }
func (d Reg) Doc() *doc.Doc  { return subset.Typed("reg", d.Ty, d.Name) }

func (d Array) Doc() *doc.Doc {
	return subset.TypedArray("reg", d.Width, d.Name, d.Depth)
}

func (d Param) Doc() *doc.Doc {
	return doc.Concat(doc.Text("parameter "), doc.Text(d.Name), doc.Text(" = "), d.Value.Doc())
}

func (d AttributeDecl) Doc() *doc.Doc {
	return doc.Concat(d.Attr.Doc(), doc.Space(), d.Decl.Doc())
}

func (d Int) String() string           { return d.Doc().String() }
func (d Wire) String() string          { return d.Doc().String() }
func (d Reg) String() string           { return d.Doc().String() }
func (d Array) String() string         { return d.Doc().String() }
func (d Param) String() string         { return d.Doc().String() }
func (d AttributeDecl) String() string { return d.Doc().String() }

// Sequential is a statement inside a process.
type Sequential interface {
	subset.Node
	String() string
	sequential()
}

type Wildcard struct{ subset.Wildcard }
type Event struct{ subset.Event }
type Assign struct{ subset.Assign }
type IfElse struct{ *subset.IfElse[Sequential] }
type Case struct{ *subset.Case[Sequential] }

func (Wildcard) sequential() {}
func (Event) sequential()    {}
func (Assign) sequential()   {}
func (IfElse) sequential()   {}
func (Case) sequential()     {}

type (
	CaseBranch  = subset.CaseBranch[Sequential]
	CaseDefault = subset.CaseDefault[Sequential]
)

type ProcessTy int

const (
	Always ProcessTy = iota
	Initial
)

func (p ProcessTy) Doc() *doc.Doc {
	switch p {
	case Always:
		return doc.Text("always")
	case Initial:
		return doc.Text("initial")
	}
	panic(errors.Errorf("unknown process type %d", int(p)))
}

func (p ProcessTy) String() string { return p.Doc().String() }

// Parallel is a statement directly inside a module body.
type Parallel interface {
	subset.Node
	String() string
	// ID returns the instance name or the assigned signal. Processes
	// panic.
	ID() string
	parallel()
}

type Inst struct{ *subset.Instance }
type ContAssign struct{ subset.ContAssign }
type Process struct {
	*subset.Process[ProcessTy, Sequential]
}

func (Inst) parallel()       {}
func (ContAssign) parallel() {}
func (Process) parallel()    {}

func (a ContAssign) ID() string { return subset.ID(a.Lhs) }

func (Process) ID() string {
	panic(errors.New("process does not support id"))
}

type (
	Stmt = subset.Stmt[Decl, Parallel]
	Port = subset.Port[Decl]
)

// Module is a Verilog-2005 module.
type Module struct {
	*subset.Module[Decl, Parallel]
}

// Package v17 binds the shared containers to the SystemVerilog-2017
// vocabulary: logic and int declarations, always_comb/always_ff/final
// processes, functions, assertions and system tasks.
package v17

import (
	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/doc"
	"github.com/vito/vast/pkg/subset"
)

type Decl interface {
	subset.Node
	String() string
	decl()
}

type Int struct {
	Name string
}

type Logic struct {
	Name string
	Ty   subset.Ty
}

// Array is an unpacked array: `logic [width-1:0] name [depth-1:0]`.
type Array struct {
	Name  string
	Width subset.Ty
	Depth subset.Ty
}

// Param is a parameter. Ty is optional; nil renders an untyped parameter.
type Param struct {
	Name  string
	Ty    *subset.Ty
	Value subset.Expr
}

type AttributeDecl struct {
	Attr subset.Attribute
	Decl Decl
}

// Function is a function definition, usable as a module body declaration.
type Function struct {
	*subset.Function[Decl, Sequential]
}

func (Int) decl()           {}
func (Logic) decl()         {}
func (Array) decl()         {}
func (Param) decl()         {}
func (AttributeDecl) decl() {}
func (Function) decl()      {}

func (d Int) Doc() *doc.Doc   { return doc.Text("int ").Append(doc.Text(d.Name)) }
func (d Logic) Doc() *doc.Doc { return subset.Typed("logic", d.Ty, d.Name) }

func (d Array) Doc() *doc.Doc {
	return subset.TypedArray("logic", d.Width, d.Name, d.Depth)
}

func (d Param) Doc() *doc.Doc {
	kw := doc.Text("parameter ")
	if d.Ty != nil {
		kw = kw.Append(tyDoc(*d.Ty), doc.Space())
	}
	return doc.Concat(kw, doc.Text(d.Name), doc.Text(" = "), d.Value.Doc())
}

func (d AttributeDecl) Doc() *doc.Doc {
	return doc.Concat(d.Attr.Doc(), doc.Space(), d.Decl.Doc())
}

func (d Int) String() string           { return d.Doc().String() }
func (d Logic) String() string         { return d.Doc().String() }
func (d Array) String() string         { return d.Doc().String() }
func (d Param) String() string         { return d.Doc().String() }
func (d AttributeDecl) String() string { return d.Doc().String() }

// tyDoc renders a type in a position that needs a keyword: return types
// and typed parameters.
func tyDoc(ty subset.Ty) *doc.Doc {
	switch ty.Kind() {
	case subset.TyInt:
		return doc.Text("int")
	case subset.TyVoid:
		return doc.Text("void")
	}
	r := ty.Range()
	if r.IsNil() {
		return doc.Text("logic")
	}
	return doc.Concat(doc.Text("logic "), r)
}

// retTy adapts a type to the function return position.
type retTy struct {
	ty subset.Ty
}

func (r retTy) Doc() *doc.Doc { return tyDoc(r.ty) }

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

// Assert is an immediate assertion with an optional else action.
type Assert struct {
	Expr subset.Expr
	Else Sequential
}

// Call invokes a function or task as a statement.
type Call struct {
	*subset.Call
}

// Error reports a message with $error.
type Error struct {
	Msg string
}

// Display prints a message with $display.
type Display struct {
	Msg string
}

type Return struct {
	Expr subset.Expr
}

func (Wildcard) sequential() {}
func (Event) sequential()    {}
func (Assign) sequential()   {}
func (IfElse) sequential()   {}
func (Case) sequential()     {}
func (Assert) sequential()   {}
func (Call) sequential()     {}
func (Error) sequential()    {}
func (Display) sequential()  {}
func (Return) sequential()   {}

func (s Assert) Doc() *doc.Doc {
	d := doc.Text("assert").Append(s.Expr.Doc().Parens())
	if s.Else == nil {
		return d.Append(doc.Text(";"))
	}
	return doc.Concat(d, doc.Text(" else "), s.Else.Doc())
}

func (s Call) Doc() *doc.Doc    { return s.Call.Doc().Append(doc.Text(";")) }
func (s Error) Doc() *doc.Doc   { return systemTask("$error", s.Msg) }
func (s Display) Doc() *doc.Doc { return systemTask("$display", s.Msg) }

func (s Return) Doc() *doc.Doc {
	return doc.Concat(doc.Text("return "), s.Expr.Doc(), doc.Text(";"))
}

func systemTask(name, msg string) *doc.Doc {
	return doc.Concat(doc.Text(name), subset.NewStr(msg).Doc().Parens(), doc.Text(";"))
}

func (s Assert) String() string  { return s.Doc().String() }
func (s Call) String() string    { return s.Doc().String() }
func (s Error) String() string   { return s.Doc().String() }
func (s Display) String() string { return s.Doc().String() }
func (s Return) String() string  { return s.Doc().String() }

type (
	CaseBranch  = subset.CaseBranch[Sequential]
	CaseDefault = subset.CaseDefault[Sequential]
)

type ProcessTy int

const (
	Always ProcessTy = iota
	AlwaysComb
	AlwaysFF
	Initial
	Final
)

var processKeywords = map[ProcessTy]string{
	Always:     "always",
	AlwaysComb: "always_comb",
	AlwaysFF:   "always_ff",
	Initial:    "initial",
	Final:      "final",
}

func (p ProcessTy) Doc() *doc.Doc {
	kw, ok := processKeywords[p]
	if !ok {
		panic(errors.Errorf("unknown process type %d", int(p)))
	}
	return doc.Text(kw)
}

func (p ProcessTy) String() string { return p.Doc().String() }

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

// Module is a SystemVerilog module.
type Module struct {
	*subset.Module[Decl, Parallel]
}

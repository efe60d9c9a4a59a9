// Package subset holds the vocabulary shared by every supported dialect:
// types, literals, expressions, attributes, instances and the generic
// module, port, statement, case and function containers that each dialect
// binds to its own declaration and statement types.
package subset

import (
	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/doc"
)

// Node is anything that renders to a document.
type Node interface {
	Doc() *doc.Doc
}

// invariant aborts construction or rendering of a malformed tree.
func invariant(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

type TyKind int

const (
	TyInt TyKind = iota
	TyVoid
	TyWidth
)

// Ty is the type of a declaration: a plain integer, void (function returns
// only) or a bit vector of a fixed width.
type Ty struct {
	kind  TyKind
	width uint64
}

func NewIntTy() Ty  { return Ty{kind: TyInt} }
func NewVoidTy() Ty { return Ty{kind: TyVoid} }

// NewWidth returns a bit vector type. A zero width panics.
func NewWidth(width uint64) Ty {
	if err := CheckWidth(width); err != nil {
		panic(err)
	}
	return Ty{kind: TyWidth, width: width}
}

// CheckWidth reports whether width can be used for a bit vector.
func CheckWidth(width uint64) error {
	if width == 0 {
		return errors.New("width must be greater than zero")
	}
	return nil
}

func (t Ty) Kind() TyKind { return t.kind }

// Width returns the bit width. Panics for non-vector types.
func (t Ty) Width() uint64 {
	if t.kind != TyWidth {
		invariant("type does not support width")
	}
	return t.width
}

// Range renders the packed range of a vector type: nothing for a single
// bit, [n-1:0] otherwise.
func (t Ty) Range() *doc.Doc {
	switch t.Width() {
	case 0:
		invariant("width must be greater than zero")
	case 1:
		return doc.Nil()
	}
	return doc.Concat(doc.Uint(t.width-1), doc.Text(":0")).Brackets()
}

// Typed renders `<keyword>[ <range>] <name>`. The range and its trailing
// space are omitted for single-bit vectors.
func Typed(keyword string, ty Ty, name string) *doc.Doc {
	return doc.Concat(doc.Text(keyword), doc.Space(), rangePrefix(ty), doc.Text(name))
}

// TypedArray renders `<keyword>[ <width>] <name>[ <depth>]`.
func TypedArray(keyword string, width Ty, name string, depth Ty) *doc.Doc {
	d := Typed(keyword, width, name)
	if r := depth.Range(); !r.IsNil() {
		d = d.Append(doc.Space(), r)
	}
	return d
}

func rangePrefix(ty Ty) *doc.Doc {
	r := ty.Range()
	if r.IsNil() {
		return r
	}
	return r.Append(doc.Space())
}

type Radix int

const (
	Dec Radix = iota
	Bin
	Hex
)

func (r Radix) Doc() *doc.Doc {
	switch r {
	case Dec:
		return doc.Text("d")
	case Bin:
		return doc.Text("b")
	case Hex:
		return doc.Text("h")
	}
	invariant("unknown radix %d", int(r))
	return nil
}

func (r Radix) String() string { return r.Doc().String() }

type EventTy int

const (
	Posedge EventTy = iota
	Negedge
)

func (e EventTy) Doc() *doc.Doc {
	switch e {
	case Posedge:
		return doc.Text("posedge")
	case Negedge:
		return doc.Text("negedge")
	}
	invariant("unknown event type %d", int(e))
	return nil
}

func (e EventTy) String() string { return e.Doc().String() }

// AssignTy selects blocking (=) or non-blocking (<=) procedural assignment.
type AssignTy int

const (
	Blocking AssignTy = iota
	NonBlocking
)

func (a AssignTy) Doc() *doc.Doc {
	switch a {
	case Blocking:
		return doc.Text("=")
	case NonBlocking:
		return doc.Text("<=")
	}
	invariant("unknown assignment type %d", int(a))
	return nil
}

func (a AssignTy) String() string { return a.Doc().String() }

package subset

import (
	"strconv"

	"github.com/vito/vast/pkg/doc"
)

// Expr is an expression tree node. The set of implementations is closed.
type Expr interface {
	Node
	String() string
	expr()
}

type UnaryOp int

const (
	LogNot UnaryOp = iota
	Not
	RedAnd
	RedNand
	RedOr
	RedNor
	RedXor
	RedXnor
)

var unaryOps = map[UnaryOp]string{
	LogNot:  "!",
	Not:     "~",
	RedAnd:  "&",
	RedNand: "~&",
	RedOr:   "|",
	RedNor:  "~|",
	RedXor:  "^",
	RedXnor: "~^",
}

func (op UnaryOp) Doc() *doc.Doc {
	s, ok := unaryOps[op]
	if !ok {
		invariant("unknown unary operator %d", int(op))
	}
	return doc.Text(s)
}

func (op UnaryOp) String() string { return op.Doc().String() }

type BinaryOp int

const (
	LogOr BinaryOp = iota
	LogAnd
	Add
	Sub
	Mul
	Gt
	Lt
	Geq
	Leq
	Equal
	NotEqual
	BitAnd
	BitOr
	ShiftLeft
	IndexBit
)

var binaryOps = map[BinaryOp]string{
	LogOr:     "||",
	LogAnd:    "&&",
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Gt:        ">",
	Lt:        "<",
	Geq:       ">=",
	Leq:       "<=",
	Equal:     "==",
	NotEqual:  "!=",
	BitAnd:    "&",
	BitOr:     "|",
	ShiftLeft: "<<",
	// IndexBit renders as brackets around its right operand
	IndexBit: "",
}

func (op BinaryOp) Doc() *doc.Doc {
	s, ok := binaryOps[op]
	if !ok {
		invariant("unknown binary operator %d", int(op))
	}
	return doc.Text(s)
}

func (op BinaryOp) String() string { return op.Doc().String() }

type TernaryOp int

const (
	// Mux renders `a ? b : c`.
	Mux TernaryOp = iota
	// Slice renders `a[b:c]`.
	Slice
	// IndexSlice renders `a[b +: c]`.
	IndexSlice
)

// Ref references a declared signal, parameter or port by name.
type Ref struct {
	Name string
}

// Int is an unsized signed decimal literal.
type Int struct {
	Value int32
}

// ULit is a sized literal such as 8'hff.
type ULit struct {
	Width uint32
	Radix Radix
	Value string
}

// Str is a string literal.
type Str struct {
	Value string
}

// Signed casts its operand with $signed.
type Signed struct {
	Expr Expr
}

type Unary struct {
	Op   UnaryOp
	Expr Expr
}

type Binary struct {
	Op          BinaryOp
	Left, Right Expr
}

type Ternary struct {
	Op      TernaryOp
	A, B, C Expr
}

// Concat is a concatenation. Operands are kept in insertion order and
// rendered last-to-first.
type Concat struct {
	exprs []Expr
}

// Repeat renders `{count{expr}}`.
type Repeat struct {
	Count uint64
	Expr  Expr
}

// Call is a function call.
type Call struct {
	Name string
	Args []Expr
}

func (*Ref) expr()          {}
func (*Int) expr()          {}
func (*ULit) expr()         {}
func (*Str) expr()          {}
func (*Signed) expr()       {}
func (*Unary) expr()        {}
func (*Binary) expr()       {}
func (*Ternary) expr()      {}
func (*Concat) expr()       {}
func (*Repeat) expr()       {}
func (*Call) expr()         {}
func (*InstancePath) expr() {}

func NewRef(name string) *Ref  { return &Ref{Name: name} }
func NewInt(value int32) *Int  { return &Int{Value: value} }
func NewStr(value string) *Str { return &Str{Value: value} }
func NewSigned(e Expr) *Signed { return &Signed{Expr: e} }
func NewCall(name string, args ...Expr) *Call {
	return &Call{Name: name, Args: args}
}

// NewULit returns a sized literal. A zero width panics.
func NewULit(width uint32, radix Radix, value string) *ULit {
	if width == 0 {
		invariant("width must be greater than zero")
	}
	return &ULit{Width: width, Radix: radix, Value: value}
}

func NewULitDec(width uint32, value string) *ULit { return NewULit(width, Dec, value) }
func NewULitBin(width uint32, value string) *ULit { return NewULit(width, Bin, value) }
func NewULitHex(width uint32, value string) *ULit { return NewULit(width, Hex, value) }

// NewULitUint renders value as a 32-bit decimal literal.
func NewULitUint(value uint32) *ULit {
	return NewULitDec(32, strconv.FormatUint(uint64(value), 10))
}

func NewUnary(op UnaryOp, e Expr) *Unary { return &Unary{Op: op, Expr: e} }

func NewLogNot(e Expr) *Unary  { return NewUnary(LogNot, e) }
func NewNot(e Expr) *Unary     { return NewUnary(Not, e) }
func NewRedAnd(e Expr) *Unary  { return NewUnary(RedAnd, e) }
func NewRedNand(e Expr) *Unary { return NewUnary(RedNand, e) }
func NewRedOr(e Expr) *Unary   { return NewUnary(RedOr, e) }
func NewRedNor(e Expr) *Unary  { return NewUnary(RedNor, e) }
func NewRedXor(e Expr) *Unary  { return NewUnary(RedXor, e) }
func NewRedXnor(e Expr) *Unary { return NewUnary(RedXnor, e) }

func NewBinary(op BinaryOp, lhs, rhs Expr) *Binary {
	return &Binary{Op: op, Left: lhs, Right: rhs}
}

func NewLogOr(lhs, rhs Expr) *Binary     { return NewBinary(LogOr, lhs, rhs) }
func NewLogAnd(lhs, rhs Expr) *Binary    { return NewBinary(LogAnd, lhs, rhs) }
func NewAdd(lhs, rhs Expr) *Binary       { return NewBinary(Add, lhs, rhs) }
func NewSub(lhs, rhs Expr) *Binary       { return NewBinary(Sub, lhs, rhs) }
func NewMul(lhs, rhs Expr) *Binary       { return NewBinary(Mul, lhs, rhs) }
func NewGt(lhs, rhs Expr) *Binary        { return NewBinary(Gt, lhs, rhs) }
func NewLt(lhs, rhs Expr) *Binary        { return NewBinary(Lt, lhs, rhs) }
func NewGeq(lhs, rhs Expr) *Binary       { return NewBinary(Geq, lhs, rhs) }
func NewLeq(lhs, rhs Expr) *Binary       { return NewBinary(Leq, lhs, rhs) }
func NewEq(lhs, rhs Expr) *Binary        { return NewBinary(Equal, lhs, rhs) }
func NewNeq(lhs, rhs Expr) *Binary       { return NewBinary(NotEqual, lhs, rhs) }
func NewBitAnd(lhs, rhs Expr) *Binary    { return NewBinary(BitAnd, lhs, rhs) }
func NewBitOr(lhs, rhs Expr) *Binary     { return NewBinary(BitOr, lhs, rhs) }
func NewShiftLeft(lhs, rhs Expr) *Binary { return NewBinary(ShiftLeft, lhs, rhs) }

// NewIndexBit selects a single bit: `e[index]`.
func NewIndexBit(e, index Expr) *Binary { return NewBinary(IndexBit, e, index) }

func NewMux(cond, t, f Expr) *Ternary { return &Ternary{Op: Mux, A: cond, B: t, C: f} }

// NewSlice selects the fixed range `e[hi:lo]`.
func NewSlice(e, hi, lo Expr) *Ternary { return &Ternary{Op: Slice, A: e, B: hi, C: lo} }

// NewIndexSlice selects the indexed part `e[base +: width]`.
func NewIndexSlice(e, base, width Expr) *Ternary {
	return &Ternary{Op: IndexSlice, A: e, B: base, C: width}
}

func NewConcat(exprs ...Expr) *Concat {
	return &Concat{exprs: exprs}
}

// Add appends an operand; later operands render further left.
func (c *Concat) Add(e Expr) {
	c.exprs = append(c.exprs, e)
}

func (c *Concat) Exprs() []Expr { return c.exprs }

// NewRepeat returns `{count{e}}`. A zero count panics.
func NewRepeat(count uint64, e Expr) *Repeat {
	if count == 0 {
		invariant("repeat count must be greater than zero")
	}
	return &Repeat{Count: count, Expr: e}
}

// ID returns the name of a reference. Any other expression panics.
func ID(e Expr) string {
	ref, ok := e.(*Ref)
	if !ok {
		invariant("%T does not support id", e)
	}
	return ref.Name
}

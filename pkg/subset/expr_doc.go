package subset

import (
	"strings"

	"github.com/vito/vast/pkg/doc"
)

// prec is the binding strength of an operator context. Higher binds
// tighter.
type prec int

const (
	precTernary prec = iota
	precLogOr
	precLogAnd
	precBitOr
	precBitAnd
	precArith
	precUnary
)

func (op BinaryOp) prec() prec {
	switch op {
	case LogOr:
		return precLogOr
	case LogAnd:
		return precLogAnd
	case BitOr:
		return precBitOr
	case BitAnd:
		return precBitAnd
	case Add, Sub, Mul, Gt, Lt, Geq, Leq, Equal, NotEqual, ShiftLeft:
		return precArith
	case IndexBit:
		return precUnary
	}
	invariant("unknown binary operator %d", int(op))
	return 0
}

// exprDoc renders e as an operand of an operator binding with strength
// caller, adding parentheses only where the grammar needs them.
func exprDoc(e Expr, caller prec) *doc.Doc {
	switch e := e.(type) {
	case *Binary:
		if e.Op == IndexBit {
			return exprDoc(e.Left, precUnary).Append(exprDoc(e.Right, precTernary).Brackets())
		}
		p := e.Op.prec()
		d := doc.Concat(
			exprDoc(e.Left, p),
			doc.Space(),
			e.Op.Doc(),
			doc.Space(),
			exprDoc(e.Right, p),
		)
		if caller > p {
			d = d.Parens()
		}
		return d
	case *Unary:
		return e.Op.Doc().Append(exprDoc(e.Expr, precUnary))
	case *Ternary:
		return ternaryDoc(e, caller)
	default:
		return e.Doc()
	}
}

func ternaryDoc(e *Ternary, caller prec) *doc.Doc {
	switch e.Op {
	case Mux:
		d := doc.Concat(
			exprDoc(e.A, precLogOr),
			doc.Text(" ? "),
			exprDoc(e.B, precTernary),
			doc.Text(" : "),
			exprDoc(e.C, precTernary),
		)
		if caller > precTernary {
			d = d.Parens()
		}
		return d
	case Slice:
		return exprDoc(e.A, precUnary).Append(
			doc.Concat(exprDoc(e.B, precTernary), doc.Text(":"), exprDoc(e.C, precTernary)).Brackets(),
		)
	case IndexSlice:
		return exprDoc(e.A, precUnary).Append(
			doc.Concat(exprDoc(e.B, precTernary), doc.Text(" +: "), exprDoc(e.C, precTernary)).Brackets(),
		)
	}
	invariant("unknown ternary operator %d", int(e.Op))
	return nil
}

var strEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func (e *Ref) Doc() *doc.Doc { return doc.Text(e.Name) }
func (e *Int) Doc() *doc.Doc { return doc.Int(e.Value) }
func (e *Str) Doc() *doc.Doc { return doc.Text(strEscaper.Replace(e.Value)).Quotes() }

func (e *ULit) Doc() *doc.Doc {
	if e.Width == 0 {
		invariant("width must be greater than zero")
	}
	return doc.Concat(doc.Uint(e.Width), doc.Text("'"), e.Radix.Doc(), doc.Text(e.Value))
}

func (e *Signed) Doc() *doc.Doc {
	return doc.Text("$signed").Append(exprDoc(e.Expr, precTernary).Parens())
}

func (e *Unary) Doc() *doc.Doc   { return exprDoc(e, precTernary) }
func (e *Binary) Doc() *doc.Doc  { return exprDoc(e, precTernary) }
func (e *Ternary) Doc() *doc.Doc { return exprDoc(e, precTernary) }

func (e *Concat) Doc() *doc.Doc {
	docs := make([]*doc.Doc, 0, len(e.exprs))
	for i := len(e.exprs) - 1; i >= 0; i-- {
		docs = append(docs, exprDoc(e.exprs[i], precTernary))
	}
	return doc.CommaList(docs).Braces()
}

func (e *Repeat) Doc() *doc.Doc {
	if e.Count == 0 {
		invariant("repeat count must be greater than zero")
	}
	// a concatenation operand already carries its own braces
	inner := e.Expr.Doc()
	if _, ok := e.Expr.(*Concat); !ok {
		inner = exprDoc(e.Expr, precTernary).Braces()
	}
	return doc.Uint(e.Count).Append(inner).Braces()
}

func (e *Call) Doc() *doc.Doc {
	args := make([]*doc.Doc, 0, len(e.Args))
	for _, arg := range e.Args {
		args = append(args, exprDoc(arg, precTernary))
	}
	return doc.Text(e.Name).Append(doc.CommaList(args).Parens())
}

func (e *Ref) String() string          { return e.Doc().String() }
func (e *Int) String() string          { return e.Doc().String() }
func (e *ULit) String() string         { return e.Doc().String() }
func (e *Str) String() string          { return e.Doc().String() }
func (e *Signed) String() string       { return e.Doc().String() }
func (e *Unary) String() string        { return e.Doc().String() }
func (e *Binary) String() string       { return e.Doc().String() }
func (e *Ternary) String() string      { return e.Doc().String() }
func (e *Concat) String() string       { return e.Doc().String() }
func (e *Repeat) String() string       { return e.Doc().String() }
func (e *Call) String() string         { return e.Doc().String() }
func (e *InstancePath) String() string { return e.Doc().String() }

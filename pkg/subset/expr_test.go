package subset

import (
	"context"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"
)

type ExprSuite struct{}

func TestExpr(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(ExprSuite{})
}

func (ExprSuite) TestLiterals(ctx context.Context, t *testctx.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{"ref", NewRef("a"), "a"},
		{"int", NewInt(3), "3"},
		{"negative int", NewInt(-3), "-3"},
		{"bin", NewULitBin(4, "1000"), "4'b1000"},
		{"hex", NewULitHex(8, "ff"), "8'hff"},
		{"dec", NewULitDec(16, "78"), "16'd78"},
		{"uint", NewULitUint(3), "32'd3"},
		{"str", NewStr("multiply"), `"multiply"`},
		{"str with quotes", NewStr(`say "hi"`), `"say \"hi\""`},
		{"signed", NewSigned(NewRef("a")), "$signed(a)"},
		{"signed binop", NewSigned(NewAdd(NewRef("a"), NewRef("b"))), "$signed(a + b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(ctx context.Context, t *testctx.T) {
			require.Equal(t, tt.expected, tt.expr.String())
		})
	}
}

func (ExprSuite) TestZeroWidthLiteral(ctx context.Context, t *testctx.T) {
	require.PanicsWithError(t, "width must be greater than zero", func() {
		NewULitHex(0, "f")
	})
}

func (ExprSuite) TestPrecedence(ctx context.Context, t *testctx.T) {
	a, b, c := NewRef("a"), NewRef("b"), NewRef("c")

	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{"equality", NewEq(a, b), "a == b"},
		{"mux over equality", NewMux(NewEq(a, b), a, b), "a == b ? a : b"},
		{"and under or", NewLogOr(a, NewLogAnd(b, c)), "a || b && c"},
		{"or under and", NewLogAnd(NewLogOr(a, b), c), "(a || b) && c"},
		{"logical and under bitwise or", NewBitOr(NewLogAnd(a, b), c), "(a && b) | c"},
		{"bitwise and under bitwise or", NewBitOr(NewBitAnd(a, b), c), "a & b | c"},
		{"bitwise or under bitwise and", NewBitAnd(NewBitOr(a, b), c), "(a | b) & c"},
		{"arith under logical", NewLogAnd(NewLt(a, b), NewNeq(b, c)), "a < b && b != c"},
		{"bitwise under arith", NewAdd(NewBitAnd(a, b), c), "(a & b) + c"},
		{"same class", NewAdd(NewMul(a, b), c), "a * b + c"},
		{"shift", NewShiftLeft(a, NewInt(2)), "a << 2"},
		{"not binop", NewNot(NewBitAnd(a, b)), "~(a & b)"},
		{"not ref", NewNot(a), "~a"},
		{"nested unary", NewLogNot(NewRedOr(a)), "!|a"},
		{"reduce ops", NewBitOr(NewRedXnor(a), NewRedNand(b)), "~^a | ~&b"},
		{"index ref", NewIndexBit(a, NewInt(3)), "a[3]"},
		{"index binop", NewIndexBit(NewAdd(a, b), NewInt(3)), "(a + b)[3]"},
		{"index with compound index", NewIndexBit(a, NewAdd(b, c)), "a[b + c]"},
		{"not index", NewNot(NewIndexBit(a, NewInt(0))), "~a[0]"},
		{"index under and", NewBitAnd(NewIndexBit(a, NewInt(0)), b), "a[0] & b"},
		{"slice", NewSlice(a, NewInt(3), NewInt(0)), "a[3:0]"},
		{"slice binop", NewSlice(NewAdd(a, b), NewInt(3), NewInt(0)), "(a + b)[3:0]"},
		{"index slice", NewIndexSlice(a, b, NewInt(8)), "a[b +: 8]"},
		{"mux under add", NewAdd(NewMux(a, b, c), a), "(a ? b : c) + a"},
		{"mux in false branch", NewMux(a, b, NewMux(c, a, b)), "a ? b : c ? a : b"},
		{"mux in condition", NewMux(NewMux(a, b, c), a, b), "(a ? b : c) ? a : b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(ctx context.Context, t *testctx.T) {
			require.Equal(t, tt.expected, tt.expr.String())
		})
	}
}

func (ExprSuite) TestConcat(ctx context.Context, t *testctx.T) {
	cat := NewConcat(NewRef("a"))
	cat.Add(NewRef("b"))
	cat.Add(NewULitBin(2, "01"))
	require.Equal(t, "{2'b01, b, a}", cat.String())
	require.Len(t, cat.Exprs(), 3)
}

func (ExprSuite) TestConcatOperandsAreTopLevel(ctx context.Context, t *testctx.T) {
	cat := NewConcat(NewBitOr(NewRef("a"), NewRef("b")), NewRef("c"))
	require.Equal(t, "{c, a | b}", cat.String())
}

func (ExprSuite) TestRepeat(ctx context.Context, t *testctx.T) {
	require.Equal(t, "{4{a}}", NewRepeat(4, NewRef("a")).String())
	require.Equal(t, "{2{b, a}}", NewRepeat(2, NewConcat(NewRef("a"), NewRef("b"))).String())
	require.Equal(t, "{3{{2{a}}}}", NewRepeat(3, NewRepeat(2, NewRef("a"))).String())
	require.Equal(t, "{8{s[7]}}", NewRepeat(8, NewIndexBit(NewRef("s"), NewInt(7))).String())
	require.PanicsWithError(t, "repeat count must be greater than zero", func() {
		NewRepeat(0, NewRef("a"))
	})
}

func (ExprSuite) TestCall(ctx context.Context, t *testctx.T) {
	require.Equal(t, "clog2(WIDTH)", NewCall("clog2", NewRef("WIDTH")).String())
	require.Equal(t, "max(a + 1, b)", NewCall("max", NewAdd(NewRef("a"), NewInt(1)), NewRef("b")).String())
	require.Equal(t, "now()", NewCall("now").String())
}

func (ExprSuite) TestInstancePath(ctx context.Context, t *testctx.T) {
	p := NewInstancePath("top", "core")
	p.Add("reg_file")
	require.Equal(t, "top.core.reg_file", p.String())

	p.SetIndex(NewAdd(NewRef("i"), NewInt(1)))
	require.Equal(t, "top.core.reg_file[i + 1]", p.String())
	require.Equal(t, "~top.core.reg_file[i + 1]", NewNot(p).String())
}

func (ExprSuite) TestEmptyInstancePath(ctx context.Context, t *testctx.T) {
	require.PanicsWithError(t, "instance path must not be empty", func() {
		_ = NewInstancePath().String()
	})
}

func (ExprSuite) TestID(ctx context.Context, t *testctx.T) {
	require.Equal(t, "clock", ID(NewRef("clock")))
	require.PanicsWithError(t, "*subset.Int does not support id", func() {
		ID(NewInt(1))
	})
}

func (ExprSuite) TestDeterministic(ctx context.Context, t *testctx.T) {
	e := NewMux(
		NewLogAnd(NewEq(NewRef("a"), NewULitHex(4, "f")), NewRef("en")),
		NewConcat(NewRef("x"), NewRepeat(3, NewRef("y"))),
		NewSlice(NewRef("z"), NewInt(7), NewInt(0)),
	)
	require.Equal(t, e.String(), e.String())
	require.Equal(t, "a == 4'hf && en ? {{3{y}}, x} : z[7:0]", e.String())
}

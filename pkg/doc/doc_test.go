package doc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"
)

type DocSuite struct{}

func TestDoc(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(DocSuite{})
}

func (DocSuite) TestText(ctx context.Context, t *testctx.T) {
	require.Equal(t, "", Nil().String())
	require.True(t, Text("").IsNil())
	require.Equal(t, "abc", Text("abc").String())
	require.Equal(t, "-12", Int(-12).String())
	require.Equal(t, "42", Uint(uint64(42)).String())
	require.Equal(t, "a b", Concat(Text("a"), Space(), Text("b")).String())
}

func (DocSuite) TestConcatDropsNil(ctx context.Context, t *testctx.T) {
	require.True(t, Concat().IsNil())
	require.True(t, Concat(Nil(), nil, Nil()).IsNil())
	require.Equal(t, "ab", Concat(Nil(), Text("a"), nil, Text("b")).String())
	require.True(t, Nil().Nest(4).IsNil())
	require.True(t, Nil().Group().IsNil())
}

func (DocSuite) TestSurround(ctx context.Context, t *testctx.T) {
	x := Text("x")
	require.Equal(t, "(x)", x.Parens().String())
	require.Equal(t, "[x]", x.Brackets().String())
	require.Equal(t, "{x}", x.Braces().String())
	require.Equal(t, `"x"`, x.Quotes().String())
	require.Equal(t, "beginxend", x.BeginEnd().String())
}

func (DocSuite) TestBlock(ctx context.Context, t *testctx.T) {
	body := Lines([]*Doc{Text("a;"), Text("b;")})
	require.Equal(t, "m (\n    a;\n    b;\n)", BlockWithParens(Text("m"), body).String())
	require.Equal(t, "s {\n    a;\n    b;\n}", BlockWithBraces(Text("s"), body).String())

	nested := Concat(Text("outer"), Block(Concat(Text("inner"), Block(Text("leaf")))), Text("end"))
	require.Equal(t, "outer\n    inner\n        leaf\n\nend", nested.String())
}

func (DocSuite) TestNoTrailingWhitespace(ctx context.Context, t *testctx.T) {
	d := Concat(
		Text("top"),
		Block(Lines([]*Doc{Text("a"), Nil(), Text("b")})),
		Text("bottom"),
	)
	for _, line := range strings.Split(d.String(), "\n") {
		require.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func (DocSuite) TestCommaLines(ctx context.Context, t *testctx.T) {
	require.Equal(t, "a,\nb,\nc", CommaLines([]*Doc{Text("a"), Text("b"), Text("c")}).String())
}

func (DocSuite) TestCommaListFits(ctx context.Context, t *testctx.T) {
	l := CommaList([]*Doc{Text("alpha"), Text("beta"), Text("gamma")})
	require.Equal(t, "{alpha, beta, gamma}", l.Braces().String())
}

func (DocSuite) TestCommaListBreaks(ctx context.Context, t *testctx.T) {
	l := CommaList([]*Doc{Text("alpha"), Text("beta"), Text("gamma")}).Braces()
	require.Equal(t, "{alpha,\n    beta,\n    gamma}", l.Pretty(10))
}

func (DocSuite) TestGroupCountsTrailingText(ctx context.Context, t *testctx.T) {
	// the group itself fits in 12 columns but the closing text does not
	l := Concat(CommaList([]*Doc{Text("aa"), Text("bb")}), Text(" = tail;"))
	require.Equal(t, "aa,\n    bb = tail;", l.Pretty(12))
	require.Equal(t, "aa, bb = tail;", l.Pretty(14))
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func (DocSuite) TestRenderError(ctx context.Context, t *testctx.T) {
	err := Block(Text("x")).Render(failingWriter{}, DefaultWidth)
	require.ErrorIs(t, err, errWrite)
}

func (DocSuite) TestRenderWriter(ctx context.Context, t *testctx.T) {
	var sb strings.Builder
	require.NoError(t, Concat(Text("a"), Hardline(), Text("b")).Render(&sb, DefaultWidth))
	require.Equal(t, "a\nb", sb.String())
}

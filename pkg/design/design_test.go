package design

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"
	"github.com/vito/vast/pkg/subset"
	"gotest.tools/v3/golden"
)

type DesignSuite struct{}

func TestDesign(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(DesignSuite{})
}

func TestBuildGolden(t *testing.T) {
	for _, tc := range []struct {
		file   string
		golden string
	}{
		{"adder.toml", "adder.v.golden"},
		{"fifo.yaml", "fifo.sv.golden"},
	} {
		t.Run(tc.file, func(t *testing.T) {
			d, err := Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			built, err := d.Build(V05)
			require.NoError(t, err)
			golden.Assert(t, built.Module.String(), tc.golden)
		})
	}
}

func (DesignSuite) TestParseExpr(ctx context.Context, t *testctx.T) {
	for _, tc := range []struct {
		src      string
		expected string
	}{
		{"8'hff", "8'hff"},
		{"4'B1010", "4'b1010"},
		{"1'bx", "1'bx"},
		{"16'd1_000", "16'd1_000"},
		{"42", "42"},
		{"-3", "-3"},
		{`"hello"`, `"hello"`},
		{"data_in", "data_in"},
		{"  spaced  ", "spaced"},
		{"u0.out", "u0.out"},
		{"top.core.alu", "top.core.alu"},
	} {
		t.Run(tc.src, func(ctx context.Context, t *testctx.T) {
			e, err := ParseExpr(tc.src)
			require.NoError(t, err)
			require.Equal(t, tc.expected, e.String())
		})
	}
}

func (DesignSuite) TestParseExprKinds(ctx context.Context, t *testctx.T) {
	e, err := ParseExpr("a")
	require.NoError(t, err)
	require.IsType(t, &subset.Ref{}, e)

	e, err = ParseExpr("a.b")
	require.NoError(t, err)
	require.IsType(t, &subset.InstancePath{}, e)

	e, err = ParseExpr("3'd5")
	require.NoError(t, err)
	require.IsType(t, &subset.ULit{}, e)

	e, err = ParseExpr("5")
	require.NoError(t, err)
	require.IsType(t, &subset.Int{}, e)
}

func (DesignSuite) TestParseExprErrors(ctx context.Context, t *testctx.T) {
	for _, src := range []string{
		"",
		"0'd1",
		"2'b12",
		"4'dff",
		"99999999999",
		"a + b",
		"a..b",
		"1abc",
		`"unterminated`,
	} {
		_, err := ParseExpr(src)
		require.Error(t, err, "expected %q to be rejected", src)
	}
}

func (DesignSuite) TestDecodeRejectsUnknownKeys(ctx context.Context, t *testctx.T) {
	_, err := Decode([]byte("name = \"m\"\nbogus = 1\n"), TOML)
	require.ErrorContains(t, err, "bogus")

	_, err = Decode([]byte("name: m\nbogus: 1\n"), YAML)
	require.Error(t, err)
}

func (DesignSuite) TestFormatOf(ctx context.Context, t *testctx.T) {
	f, err := FormatOf("x/top.toml")
	require.NoError(t, err)
	require.Equal(t, TOML, f)

	f, err = FormatOf("top.YML")
	require.NoError(t, err)
	require.Equal(t, YAML, f)

	_, err = FormatOf("top.json")
	require.ErrorContains(t, err, "unsupported description format")
}

func (DesignSuite) TestDialectFallback(ctx context.Context, t *testctx.T) {
	d := &Design{Name: "m", Ports: []Port{{Name: "a", Dir: "in"}}}

	built, err := d.Build(V17)
	require.NoError(t, err)
	require.Equal(t, V17, built.Dialect)
	require.Equal(t, "module m (\n    input logic a\n);\nendmodule\n", built.Module.String())

	built, err = d.Build(V05)
	require.NoError(t, err)
	require.Equal(t, "module m (\n    input wire a\n);\nendmodule\n", built.Module.String())

	_, err = d.Build("")
	require.ErrorContains(t, err, "unknown dialect")
}

func (DesignSuite) TestDialectExt(ctx context.Context, t *testctx.T) {
	require.Equal(t, ".v", V05.Ext())
	require.Equal(t, ".sv", V17.Ext())
}

func (DesignSuite) TestOutputReg(ctx context.Context, t *testctx.T) {
	d := &Design{Name: "m", Ports: []Port{{Name: "q", Dir: "output", Width: bits(4), Kind: "reg"}}}
	built, err := d.Build(V05)
	require.NoError(t, err)
	require.Equal(t, "module m (\n    output reg [3:0] q\n);\nendmodule\n", built.Module.String())
}

func (DesignSuite) TestExplicitWidths(ctx context.Context, t *testctx.T) {
	d, err := Decode([]byte(`name = "m"

[[ports]]
name = "a"
dir = "in"

[[ports]]
name = "b"
dir = "in"
width = 0
`), TOML)
	require.NoError(t, err)
	require.Nil(t, d.Ports[0].Width)
	require.Equal(t, uint64(0), *d.Ports[1].Width)

	_, err = d.Build(V05)
	require.ErrorContains(t, err, "port b: width must be greater than zero")

	d, err = Decode([]byte("name: m\ndecls:\n  - name: mem\n    kind: logic\n    width: 8\n    depth: 2\n"), YAML)
	require.NoError(t, err)
	built, err := d.Build(V17)
	require.NoError(t, err)
	require.Equal(t, "module m ();\n    logic [7:0] mem [1:0];\nendmodule\n", built.Module.String())
}

func (DesignSuite) TestAutoNames(ctx context.Context, t *testctx.T) {
	d := &Design{
		Name: "m",
		Instances: []Instance{
			{Name: "adder_tree_0", Module: "Other"},
			{Module: "AdderTree"},
			{Module: "AdderTree"},
			{Module: "httpServer"},
		},
	}
	built, err := d.Build(V05)
	require.NoError(t, err)
	require.Equal(t, `module m ();
    Other adder_tree_0 ();
    AdderTree adder_tree_1 ();
    AdderTree adder_tree_2 ();
    httpServer http_server_0 ();
endmodule
`, built.Module.String())
}

func (DesignSuite) TestValidation(ctx context.Context, t *testctx.T) {
	for _, tc := range []struct {
		name    string
		design  Design
		dialect Dialect
		err     string
	}{
		{
			name:   "bad module name",
			design: Design{Name: "1top"},
			err:    `invalid module name "1top"`,
		},
		{
			name:   "duplicate names",
			design: Design{Name: "m", Ports: []Port{{Name: "a", Dir: "in"}}, Decls: []Decl{{Name: "a"}}},
			err:    `decl "a" already declared as a port`,
		},
		{
			name:   "bad direction",
			design: Design{Name: "m", Ports: []Port{{Name: "a", Dir: "sideways"}}},
			err:    `unknown direction "sideways"`,
		},
		{
			name:    "logic in v05",
			design:  Design{Name: "m", Decls: []Decl{{Name: "a", Kind: "logic"}}},
			dialect: V05,
			err:     `kind "logic" is not valid for v05`,
		},
		{
			name:    "reg in v17",
			design:  Design{Name: "m", Decls: []Decl{{Name: "a", Kind: "reg"}}},
			dialect: V17,
			err:     `kind "reg" is not valid for v17`,
		},
		{
			name:   "reg input",
			design: Design{Name: "m", Ports: []Port{{Name: "a", Dir: "in", Kind: "reg"}}},
			err:    "only outputs can be reg",
		},
		{
			name:   "wire array",
			design: Design{Name: "m", Decls: []Decl{{Name: "a", Width: bits(8), Depth: bits(4)}}},
			err:    "wire cannot be an array",
		},
		{
			name:   "zero width port",
			design: Design{Name: "m", Ports: []Port{{Name: "a", Dir: "in", Width: bits(0)}}},
			err:    "port a: width must be greater than zero",
		},
		{
			name:    "zero width decl",
			design:  Design{Name: "m", Decls: []Decl{{Name: "a", Width: bits(0)}}},
			dialect: V17,
			err:     "decl a: width must be greater than zero",
		},
		{
			name:   "single entry array",
			design: Design{Name: "m", Decls: []Decl{{Name: "mem", Kind: "reg", Width: bits(8), Depth: bits(1)}}},
			err:    "decl mem: array depth must be at least 2, got 1",
		},
		{
			name:    "zero depth array",
			design:  Design{Name: "m", Decls: []Decl{{Name: "mem", Width: bits(8), Depth: bits(0)}}},
			dialect: V17,
			err:     "decl mem: array depth must be at least 2, got 0",
		},
		{
			name:   "negative param",
			design: Design{Name: "m", Params: []Param{{Name: "p", Value: int64(-1)}}},
			err:    "param p: value -1 does not fit in 32 bits",
		},
		{
			name:   "missing param value",
			design: Design{Name: "m", Params: []Param{{Name: "p"}}},
			err:    "param p: missing value",
		},
		{
			name:   "bad connection",
			design: Design{Name: "m", Instances: []Instance{{Name: "u", Module: "x", Ports: map[string]string{"a": "0'd0"}}}},
			err:    "instance u: port a",
		},
		{
			name:   "path lhs",
			design: Design{Name: "m", Assigns: []Assign{{Lhs: "a.b", Rhs: "c"}}},
			err:    `lhs "a.b" must be a signal name`,
		},
		{
			name:   "empty attribute",
			design: Design{Name: "m", Attributes: []string{"=x"}},
			err:    `empty attribute "=x"`,
		},
	} {
		t.Run(tc.name, func(ctx context.Context, t *testctx.T) {
			dialect := tc.dialect
			if dialect == "" {
				dialect = V05
			}
			_, err := tc.design.Build(dialect)
			require.ErrorContains(t, err, tc.err)
		})
	}
}

func (DesignSuite) TestLoadMissing(ctx context.Context, t *testctx.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func bits(n uint64) *uint64 { return &n }

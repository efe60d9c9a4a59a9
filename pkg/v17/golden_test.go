package v17

import (
	"testing"

	"github.com/vito/vast/pkg/subset"
	"gotest.tools/v3/golden"
)

func TestModuleGolden(t *testing.T) {
	for _, tc := range []struct {
		name  string
		build func() *Module
	}{
		{"module_empty", func() *Module {
			return NewModule("foo")
		}},
		{"module_one_input", func() *Module {
			m := NewModule("foo")
			m.AddInput("a", 32)
			return m
		}},
		{"module_one_param", func() *Module {
			m := NewModule("foo")
			m.AddParamUint("width", 3)
			return m
		}},
		{"module_register", func() *Module {
			m := NewModule("register")
			m.AddParamUint("width", 8)
			m.AddInput("clk", 1)
			m.AddInput("rst_n", 1)
			m.AddInput("d", 8)
			m.AddOutput("q", 8)
			m.AddLogic("state", 8)

			state := subset.NewRef("state")
			rst := NewIf(subset.NewLogNot(subset.NewRef("rst_n")))
			rst.Add(NewNonBlocking(state, subset.NewULitHex(8, "0")))
			load := NewElse()
			load.Add(NewNonBlocking(state, subset.NewRef("d")))
			rst.SetElse(load)

			ff := NewAlwaysFF(NewPosedge(subset.NewRef("clk")))
			ff.Add(rst)
			m.AddProcess(ff)
			m.AddAssign(subset.NewRef("q"), state)
			return m
		}},
		{"module_function", func() *Module {
			m := NewModule("checker")
			m.AddInput("data", 8)
			m.AddOutput("ok", 1)

			f := NewFunction("parity", subset.NewWidth(1))
			f.AddInput("value", 8)
			f.Add(NewReturn(subset.NewRedXor(subset.NewRef("value"))))
			m.AddFunction(f)

			comb := NewAlwaysComb()
			comb.Add(NewAssertElse(
				subset.NewNeq(subset.NewRef("data"), subset.NewULitHex(8, "ff")),
				NewError("this is an error"),
			))
			m.AddProcess(comb)
			m.AddAssign(subset.NewRef("ok"), subset.NewCall("parity", subset.NewRef("data")))
			return m
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			golden.Assert(t, tc.build().String(), tc.name+".sv.golden")
		})
	}
}

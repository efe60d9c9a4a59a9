package v17

import (
	"github.com/vito/vast/pkg/subset"
)

func NewInt(name string) Int {
	return Int{Name: name}
}

func NewLogic(name string, width uint64) Logic {
	return Logic{Name: name, Ty: subset.NewWidth(width)}
}

func NewArray(name string, width, depth uint64) Array {
	return Array{Name: name, Width: subset.NewWidth(width), Depth: subset.NewWidth(depth)}
}

func NewParam(name string, value subset.Expr) Param {
	return Param{Name: name, Value: value}
}

// NewParamUint declares `parameter int name = 32'd<value>`.
func NewParamUint(name string, value uint32) Param {
	ty := subset.NewIntTy()
	return Param{Name: name, Ty: &ty, Value: subset.NewULitUint(value)}
}

func NewParamStr(name, value string) Param {
	return NewParam(name, subset.NewStr(value))
}

func NewAttributeDecl(attr subset.Attribute, decl Decl) AttributeDecl {
	return AttributeDecl{Attr: attr, Decl: decl}
}

func NewInput(name string, width uint64) Port {
	return subset.NewInput[Decl](NewLogic(name, width))
}

func NewOutput(name string, width uint64) Port {
	return subset.NewOutput[Decl](NewLogic(name, width))
}

func NewInout(name string, width uint64) Port {
	return subset.NewInout[Decl](NewLogic(name, width))
}

// NewFunction starts a function returning ret.
func NewFunction(name string, ret subset.Ty) Function {
	return Function{subset.NewFunction[Decl, Sequential](name, retTy{ret})}
}

func (f Function) AddInput(name string, width uint64) {
	f.AddPort(NewInput(name, width))
}

func (f Function) AddLogic(name string, width uint64) {
	f.AddDecl(NewLogic(name, width))
}

func NewWildcard() Wildcard { return Wildcard{} }

func NewPosedge(e subset.Expr) Event { return Event{subset.NewPosedge(e)} }
func NewNegedge(e subset.Expr) Event { return Event{subset.NewNegedge(e)} }

func NewBlocking(lhs, rhs subset.Expr) Assign    { return Assign{subset.NewBlocking(lhs, rhs)} }
func NewNonBlocking(lhs, rhs subset.Expr) Assign { return Assign{subset.NewNonBlocking(lhs, rhs)} }

func NewIf(cond subset.Expr) IfElse {
	return IfElse{subset.NewIf[Sequential](cond)}
}

func NewElse() IfElse {
	return IfElse{subset.NewElse[Sequential]()}
}

func NewCase(cond subset.Expr) Case {
	return Case{subset.NewCase[Sequential](cond)}
}

func NewCaseBranch(cond subset.Expr) *CaseBranch {
	return subset.NewCaseBranch[Sequential](cond)
}

func NewCaseDefault() *CaseDefault {
	return subset.NewCaseDefault[Sequential]()
}

// NewAssert returns an assertion without an else action.
func NewAssert(e subset.Expr) Assert {
	return Assert{Expr: e}
}

func NewAssertElse(e subset.Expr, otherwise Sequential) Assert {
	return Assert{Expr: e, Else: otherwise}
}

func NewCall(name string, args ...subset.Expr) Call {
	return Call{subset.NewCall(name, args...)}
}

func NewError(msg string) Error      { return Error{Msg: msg} }
func NewDisplay(msg string) Display  { return Display{Msg: msg} }
func NewReturn(e subset.Expr) Return { return Return{Expr: e} }

func NewInst(inst *subset.Instance) Inst {
	return Inst{inst}
}

func NewContAssign(lhs, rhs subset.Expr) ContAssign {
	return ContAssign{subset.NewContAssign(lhs, rhs)}
}

func NewProcess(ty ProcessTy) Process {
	return Process{subset.NewProcess[ProcessTy, Sequential](ty)}
}

func NewAlwaysComb() Process {
	return NewProcess(AlwaysComb)
}

// NewAlwaysFF returns `always_ff @(event)`.
func NewAlwaysFF(event Sequential) Process {
	p := NewProcess(AlwaysFF)
	p.SetEvent(event)
	return p
}

func NewInitial() Process { return NewProcess(Initial) }
func NewFinal() Process   { return NewProcess(Final) }

func NewModule(name string) *Module {
	return &Module{subset.NewModule[Decl, Parallel](name)}
}

func (m *Module) AddParamUint(name string, value uint32) {
	m.AddParam(NewParamUint(name, value))
}

func (m *Module) AddParamStr(name, value string) {
	m.AddParam(NewParamStr(name, value))
}

func (m *Module) AddInput(name string, width uint64) {
	m.AddPort(NewInput(name, width))
}

func (m *Module) AddOutput(name string, width uint64) {
	m.AddPort(NewOutput(name, width))
}

func (m *Module) AddInout(name string, width uint64) {
	m.AddPort(NewInout(name, width))
}

func (m *Module) AddLogic(name string, width uint64) {
	m.AddDecl(NewLogic(name, width))
}

func (m *Module) AddFunction(f Function) {
	m.AddDecl(f)
}

func (m *Module) AddInstance(inst *subset.Instance) {
	m.AddParallel(NewInst(inst))
}

func (m *Module) AddAssign(lhs, rhs subset.Expr) {
	m.AddParallel(NewContAssign(lhs, rhs))
}

func (m *Module) AddProcess(p Process) {
	m.AddParallel(p)
}

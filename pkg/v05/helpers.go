package v05

import (
	"github.com/vito/vast/pkg/subset"
)

func NewInt(name string) Int {
	return Int{Name: name}
}

func NewWire(name string, width uint64) Wire {
	return Wire{Name: name, Ty: subset.NewWidth(width)}
}

func NewReg(name string, width uint64) Reg {
	return Reg{Name: name, Ty: subset.NewWidth(width)}
}

func NewArray(name string, width, depth uint64) Array {
	return Array{Name: name, Width: subset.NewWidth(width), Depth: subset.NewWidth(depth)}
}

func NewParam(name string, value subset.Expr) Param {
	return Param{Name: name, Value: value}
}

// NewParamUint declares a parameter with a 32-bit decimal value.
func NewParamUint(name string, value uint32) Param {
	return NewParam(name, subset.NewULitUint(value))
}

func NewParamStr(name, value string) Param {
	return NewParam(name, subset.NewStr(value))
}

func NewAttributeDecl(attr subset.Attribute, decl Decl) AttributeDecl {
	return AttributeDecl{Attr: attr, Decl: decl}
}

func NewInput(name string, width uint64) Port {
	return subset.NewInput[Decl](NewWire(name, width))
}

func NewOutput(name string, width uint64) Port {
	return subset.NewOutput[Decl](NewWire(name, width))
}

func NewOutputReg(name string, width uint64) Port {
	return subset.NewOutput[Decl](NewReg(name, width))
}

func NewInout(name string, width uint64) Port {
	return subset.NewInout[Decl](NewWire(name, width))
}

func NewWildcard() Wildcard { return Wildcard{} }

func NewPosedge(e subset.Expr) Event { return Event{subset.NewPosedge(e)} }
func NewNegedge(e subset.Expr) Event { return Event{subset.NewNegedge(e)} }

func NewBlocking(lhs, rhs subset.Expr) Assign    { return Assign{subset.NewBlocking(lhs, rhs)} }
func NewNonBlocking(lhs, rhs subset.Expr) Assign { return Assign{subset.NewNonBlocking(lhs, rhs)} }

// NewIf starts an if/else chain.
func NewIf(cond subset.Expr) IfElse {
	return IfElse{subset.NewIf[Sequential](cond)}
}

// NewElse is the unconditional tail of an if/else chain.
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

func NewInst(inst *subset.Instance) Inst {
	return Inst{inst}
}

func NewContAssign(lhs, rhs subset.Expr) ContAssign {
	return ContAssign{subset.NewContAssign(lhs, rhs)}
}

func NewProcess(ty ProcessTy) Process {
	return Process{subset.NewProcess[ProcessTy, Sequential](ty)}
}

// NewAlways returns `always @(event)`.
func NewAlways(event Sequential) Process {
	p := NewProcess(Always)
	p.SetEvent(event)
	return p
}

func NewInitial() Process {
	return NewProcess(Initial)
}

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

func (m *Module) AddOutputReg(name string, width uint64) {
	m.AddPort(NewOutputReg(name, width))
}

func (m *Module) AddInout(name string, width uint64) {
	m.AddPort(NewInout(name, width))
}

func (m *Module) AddWire(name string, width uint64) {
	m.AddDecl(NewWire(name, width))
}

func (m *Module) AddReg(name string, width uint64) {
	m.AddDecl(NewReg(name, width))
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

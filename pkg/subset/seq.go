package subset

import (
	"github.com/vito/vast/pkg/doc"
)

// Event is an edge trigger such as `posedge clock`.
type Event struct {
	Ty   EventTy
	Expr Expr
}

func NewPosedge(e Expr) Event { return Event{Ty: Posedge, Expr: e} }
func NewNegedge(e Expr) Event { return Event{Ty: Negedge, Expr: e} }

func (e Event) Doc() *doc.Doc {
	return doc.Concat(e.Ty.Doc(), doc.Space(), exprDoc(e.Expr, precTernary))
}

func (e Event) String() string { return e.Doc().String() }

// Wildcard is the `*` sensitivity list.
type Wildcard struct{}

func (Wildcard) Doc() *doc.Doc    { return doc.Text("*") }
func (w Wildcard) String() string { return w.Doc().String() }

// Assign is a procedural assignment.
type Assign struct {
	Lhs, Rhs Expr
	Ty       AssignTy
}

func NewBlocking(lhs, rhs Expr) Assign    { return Assign{Lhs: lhs, Rhs: rhs, Ty: Blocking} }
func NewNonBlocking(lhs, rhs Expr) Assign { return Assign{Lhs: lhs, Rhs: rhs, Ty: NonBlocking} }

func (a Assign) Doc() *doc.Doc {
	return doc.Concat(
		exprDoc(a.Lhs, precTernary),
		doc.Space(),
		a.Ty.Doc(),
		doc.Space(),
		exprDoc(a.Rhs, precTernary),
		doc.Text(";"),
	)
}

func (a Assign) String() string { return a.Doc().String() }

// ContAssign is a continuous `assign` statement.
type ContAssign struct {
	Lhs, Rhs Expr
}

func NewContAssign(lhs, rhs Expr) ContAssign { return ContAssign{Lhs: lhs, Rhs: rhs} }

func (a ContAssign) Doc() *doc.Doc {
	return doc.Concat(
		doc.Text("assign "),
		exprDoc(a.Lhs, precTernary),
		doc.Text(" = "),
		exprDoc(a.Rhs, precTernary),
		doc.Text(";"),
	)
}

func (a ContAssign) String() string { return a.Doc().String() }

// beginEnd renders statements as an indented begin/end block.
func beginEnd[S Node](body []S) *doc.Doc {
	if len(body) == 0 {
		return doc.Concat(doc.Text("begin"), doc.Hardline(), doc.Text("end"))
	}
	return doc.Block(lines(body)).BeginEnd()
}

func lines[S Node](body []S) *doc.Doc {
	docs := make([]*doc.Doc, len(body))
	for i, s := range body {
		docs[i] = s.Doc()
	}
	return doc.Lines(docs)
}

// IfElse is one link of an if/else chain. An else-if is expressed by
// placing another IfElse in the else slot; an IfElse without a condition
// renders as a plain else block.
type IfElse[S Node] struct {
	cond       Expr
	body       []S
	elseBranch *S
}

func NewIf[S Node](cond Expr) *IfElse[S] {
	return &IfElse[S]{cond: cond}
}

// NewElse returns an unconditional block for the tail of a chain.
func NewElse[S Node]() *IfElse[S] {
	return &IfElse[S]{}
}

func (i *IfElse[S]) Add(s S)       { i.body = append(i.body, s) }
func (i *IfElse[S]) SetElse(s S)   { i.elseBranch = &s }
func (i *IfElse[S]) Body() []S     { return i.body }
func (i *IfElse[S]) HasCond() bool { return i.cond != nil }

// Cond returns the condition. Panics on an unconditional else block.
func (i *IfElse[S]) Cond() Expr {
	if i.cond == nil {
		invariant("else block does not have a condition")
	}
	return i.cond
}

func (i *IfElse[S]) Else() (S, bool) {
	if i.elseBranch == nil {
		var zero S
		return zero, false
	}
	return *i.elseBranch, true
}

func (i *IfElse[S]) Doc() *doc.Doc {
	d := beginEnd(i.body)
	if i.cond != nil {
		d = doc.Concat(doc.Text("if"), exprDoc(i.cond, precTernary).Parens(), doc.Space(), d)
	}
	if i.elseBranch != nil {
		d = doc.Concat(d, doc.Text(" else "), (*i.elseBranch).Doc())
	}
	return d
}

func (i *IfElse[S]) String() string { return i.Doc().String() }

// caseBody renders a single statement inline and several inside begin/end.
// An empty body is the null statement.
func caseBody[S Node](body []S) *doc.Doc {
	switch len(body) {
	case 0:
		return doc.Text(";")
	case 1:
		return body[0].Doc()
	}
	return beginEnd(body)
}

type CaseBranch[S Node] struct {
	cond Expr
	body []S
}

func NewCaseBranch[S Node](cond Expr) *CaseBranch[S] {
	return &CaseBranch[S]{cond: cond}
}

func (b *CaseBranch[S]) Add(s S)    { b.body = append(b.body, s) }
func (b *CaseBranch[S]) Cond() Expr { return b.cond }
func (b *CaseBranch[S]) Body() []S  { return b.body }

func (b *CaseBranch[S]) Doc() *doc.Doc {
	return doc.Concat(exprDoc(b.cond, precTernary), doc.Text(" : "), caseBody(b.body))
}

func (b *CaseBranch[S]) String() string { return b.Doc().String() }

type CaseDefault[S Node] struct {
	body []S
}

func NewCaseDefault[S Node]() *CaseDefault[S] {
	return &CaseDefault[S]{}
}

func (d *CaseDefault[S]) Add(s S)   { d.body = append(d.body, s) }
func (d *CaseDefault[S]) Body() []S { return d.body }

func (d *CaseDefault[S]) Doc() *doc.Doc {
	return doc.Text("default : ").Append(caseBody(d.body))
}

func (d *CaseDefault[S]) String() string { return d.Doc().String() }

// Case is a case statement over the dialect's sequential statements.
type Case[S Node] struct {
	cond     Expr
	branches []*CaseBranch[S]
	dflt     *CaseDefault[S]
}

func NewCase[S Node](cond Expr) *Case[S] {
	return &Case[S]{cond: cond}
}

func (c *Case[S]) Cond() Expr                   { return c.cond }
func (c *Case[S]) Branches() []*CaseBranch[S]   { return c.branches }
func (c *Case[S]) AddBranch(b *CaseBranch[S])   { c.branches = append(c.branches, b) }
func (c *Case[S]) SetDefault(d *CaseDefault[S]) { c.dflt = d }
func (c *Case[S]) HasDefault() bool             { return c.dflt != nil }

// Default returns the default branch. Panics if none was set.
func (c *Case[S]) Default() *CaseDefault[S] {
	if c.dflt == nil {
		invariant("case default branch is not set")
	}
	return c.dflt
}

func (c *Case[S]) Doc() *doc.Doc {
	docs := make([]*doc.Doc, 0, len(c.branches)+1)
	for _, b := range c.branches {
		docs = append(docs, b.Doc())
	}
	if c.dflt != nil {
		docs = append(docs, c.dflt.Doc())
	}
	head := doc.Concat(doc.Text("case "), exprDoc(c.cond, precTernary).Parens())
	if len(docs) == 0 {
		return doc.Concat(head, doc.Hardline(), doc.Text("endcase"))
	}
	return doc.Concat(
		head,
		doc.Block(doc.Lines(docs)),
		doc.Text("endcase"),
	)
}

func (c *Case[S]) String() string { return c.Doc().String() }

// Process is a named procedural block (always, initial, ...) with an
// optional trigger. K renders the dialect's process keyword.
type Process[K, S Node] struct {
	ty    K
	event *S
	body  []S
}

func NewProcess[K, S Node](ty K) *Process[K, S] {
	return &Process[K, S]{ty: ty}
}

func (p *Process[K, S]) Ty() K        { return p.ty }
func (p *Process[K, S]) Body() []S    { return p.body }
func (p *Process[K, S]) Add(s S)      { p.body = append(p.body, s) }
func (p *Process[K, S]) SetEvent(s S) { p.event = &s }

func (p *Process[K, S]) Event() (S, bool) {
	if p.event == nil {
		var zero S
		return zero, false
	}
	return *p.event, true
}

func (p *Process[K, S]) Doc() *doc.Doc {
	d := p.ty.Doc()
	if p.event != nil {
		d = doc.Concat(d, doc.Text(" @"), (*p.event).Doc().Parens())
	}
	return doc.Concat(d, doc.Space(), beginEnd(p.body))
}

func (p *Process[K, S]) String() string { return p.Doc().String() }

// Function is a function definition. Ports and local declarations form a
// preamble ahead of the begin/end body.
type Function[D, S Node] struct {
	name  string
	ret   Node
	ports []Port[D]
	decls []D
	body  []S
}

func NewFunction[D, S Node](name string, ret Node) *Function[D, S] {
	return &Function[D, S]{name: name, ret: ret}
}

func (f *Function[D, S]) Name() string      { return f.name }
func (f *Function[D, S]) Ports() []Port[D]  { return f.ports }
func (f *Function[D, S]) Decls() []D        { return f.decls }
func (f *Function[D, S]) Body() []S         { return f.body }
func (f *Function[D, S]) AddPort(p Port[D]) { f.ports = append(f.ports, p) }
func (f *Function[D, S]) AddDecl(d D)       { f.decls = append(f.decls, d) }
func (f *Function[D, S]) Add(s S)           { f.body = append(f.body, s) }

// IsBlock reports that a function closes with endfunction.
func (f *Function[D, S]) IsBlock() bool { return true }

func (f *Function[D, S]) Doc() *doc.Doc {
	preamble := make([]*doc.Doc, 0, len(f.ports)+len(f.decls)+1)
	for _, p := range f.ports {
		preamble = append(preamble, terminated(p))
	}
	for _, d := range f.decls {
		preamble = append(preamble, terminated(d))
	}
	preamble = append(preamble, beginEnd(f.body))
	return doc.Concat(
		doc.Text("function "),
		f.ret.Doc(),
		doc.Space(),
		doc.Text(f.name),
		doc.Text(";"),
		doc.Block(doc.Lines(preamble)),
		doc.Text("endfunction"),
	)
}

func (f *Function[D, S]) String() string { return f.Doc().String() }

package subset

import (
	"sort"

	"github.com/vito/vast/pkg/doc"
)

// InstancePath is a hierarchical reference `a.b.c`, optionally indexed.
type InstancePath struct {
	path  []string
	index Expr
}

func NewInstancePath(names ...string) *InstancePath {
	return &InstancePath{path: names}
}

func (p *InstancePath) Add(name string) {
	p.path = append(p.path, name)
}

// SetIndex appends a bracketed index after the last path element.
func (p *InstancePath) SetIndex(index Expr) {
	p.index = index
}

func (p *InstancePath) Path() []string { return p.path }

func (p *InstancePath) Doc() *doc.Doc {
	if len(p.path) == 0 {
		invariant("instance path must not be empty")
	}
	names := make([]*doc.Doc, len(p.path))
	for i, name := range p.path {
		names[i] = doc.Text(name)
	}
	d := doc.Intersperse(names, doc.Text("."))
	if p.index != nil {
		d = d.Append(exprDoc(p.index, precTernary).Brackets())
	}
	return d
}

// Instance instantiates a module or primitive.
type Instance struct {
	id     string
	prim   string
	params map[string]Expr
	ports  map[string]Expr
	attr   Attribute
}

func NewInstance(id, prim string) *Instance {
	return &Instance{
		id:     id,
		prim:   prim,
		params: map[string]Expr{},
		ports:  map[string]Expr{},
	}
}

// AddParam sets a parameter value, replacing any previous one.
func (i *Instance) AddParam(name string, value Expr) {
	i.params[name] = value
}

func (i *Instance) AddParamUint(name string, value uint32) {
	i.AddParam(name, NewULitUint(value))
}

func (i *Instance) AddParamStr(name, value string) {
	i.AddParam(name, NewStr(value))
}

// Connect binds a port, replacing any previous connection.
func (i *Instance) Connect(port string, e Expr) {
	i.ports[port] = e
}

func (i *Instance) ConnectRef(port, id string) {
	i.Connect(port, NewRef(id))
}

func (i *Instance) SetAttr(attr Attribute) {
	i.attr = attr
}

func (i *Instance) ID() string                { return i.id }
func (i *Instance) Prim() string              { return i.prim }
func (i *Instance) ParamMap() map[string]Expr { return i.params }
func (i *Instance) PortMap() map[string]Expr  { return i.ports }
func (i *Instance) Attr() Attribute           { return i.attr }

// Doc renders the instance with parameters and ports sorted by name.
func (i *Instance) Doc() *doc.Doc {
	head := doc.Text(i.prim)
	if len(i.params) > 0 {
		head = doc.Concat(head, doc.Text(" #"), doc.Block(connections(i.params)).Parens())
	}
	head = doc.Concat(head, doc.Space(), doc.Text(i.id))

	var inst *doc.Doc
	if len(i.ports) == 0 {
		inst = head.Append(doc.Text(" ()"))
	} else {
		inst = doc.BlockWithParens(head, connections(i.ports))
	}
	return doc.Concat(i.attr.prefix(doc.Hardline()), inst, doc.Text(";"))
}

func (i *Instance) String() string { return i.Doc().String() }

func connections(m map[string]Expr) *doc.Doc {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	docs := make([]*doc.Doc, len(names))
	for i, name := range names {
		docs[i] = doc.Concat(doc.Text("."), doc.Text(name), exprDoc(m[name], precTernary).Parens())
	}
	return doc.CommaLines(docs)
}

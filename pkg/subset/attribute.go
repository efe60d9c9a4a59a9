package subset

import (
	"github.com/vito/vast/pkg/doc"
)

type attrEntry struct {
	key   string
	value string
	isVal bool
}

func (a attrEntry) Doc() *doc.Doc {
	if a.isVal {
		return doc.Text(a.value)
	}
	return doc.Concat(doc.Text(a.key), doc.Text(" = "), doc.Text(strEscaper.Replace(a.value)).Quotes())
}

// Attribute is a `(* ... *)` block attached to a declaration, instance or
// module.
type Attribute struct {
	entries []attrEntry
}

func NewAttribute() Attribute {
	return Attribute{}
}

// AddVal adds a bare flag such as `keep`.
func (a *Attribute) AddVal(value string) {
	a.entries = append(a.entries, attrEntry{value: value, isVal: true})
}

// AddStmt adds a `key = "value"` pair.
func (a *Attribute) AddStmt(key, value string) {
	a.entries = append(a.entries, attrEntry{key: key, value: value})
}

func (a Attribute) IsEmpty() bool { return len(a.entries) == 0 }

func (a Attribute) Len() int { return len(a.entries) }

// Doc renders entries most recently added first. An empty attribute
// renders nothing.
func (a Attribute) Doc() *doc.Doc {
	if a.IsEmpty() {
		return doc.Nil()
	}
	docs := make([]*doc.Doc, 0, len(a.entries))
	for i := len(a.entries) - 1; i >= 0; i-- {
		docs = append(docs, a.entries[i].Doc())
	}
	return doc.Concat(doc.Text("(* "), doc.Intersperse(docs, doc.Text(", ")), doc.Text(" *)"))
}

func (a Attribute) String() string { return a.Doc().String() }

// prefix renders the attribute followed by sep, or nothing when empty.
func (a Attribute) prefix(sep *doc.Doc) *doc.Doc {
	if a.IsEmpty() {
		return doc.Nil()
	}
	return a.Doc().Append(sep)
}

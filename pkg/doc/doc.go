// Package doc is a small Wadler-style document layout engine.
//
// A Doc is built from text fragments, concatenation, indentation scopes and
// line breaks, then rendered to a string bounded by a maximum column width.
// Hard lines always break. Soft lines inside a Group render as a single
// space when the whole group fits on the current line, and break otherwise.
package doc

import (
	"io"
	"strconv"
	"strings"
)

const (
	// DefaultWidth is the column width used by String.
	DefaultWidth = 100

	// Indent is the number of spaces added by Block.
	Indent = 4
)

type kind int

const (
	kindNil kind = iota
	kindText
	kindConcat
	kindNest
	kindHardline
	kindLine
	kindGroup
)

// Doc is an immutable document. The zero value is not valid; use Nil.
type Doc struct {
	kind     kind
	text     string
	indent   int
	children []*Doc
}

var (
	nilDoc      = &Doc{kind: kindNil}
	hardlineDoc = &Doc{kind: kindHardline}
	lineDoc     = &Doc{kind: kindLine}
	spaceDoc    = &Doc{kind: kindText, text: " "}
)

// Nil is the empty document.
func Nil() *Doc { return nilDoc }

// Text is a literal fragment. It must not contain newlines.
func Text(s string) *Doc {
	if s == "" {
		return nilDoc
	}
	return &Doc{kind: kindText, text: s}
}

// Int renders an integer in decimal.
func Int[T ~int | ~int32 | ~int64](v T) *Doc {
	return Text(strconv.FormatInt(int64(v), 10))
}

// Uint renders an unsigned integer in decimal.
func Uint[T ~uint | ~uint32 | ~uint64](v T) *Doc {
	return Text(strconv.FormatUint(uint64(v), 10))
}

// Space is a single space.
func Space() *Doc { return spaceDoc }

// Hardline always breaks.
func Hardline() *Doc { return hardlineDoc }

// Line breaks only when its enclosing group does not fit; otherwise it
// renders as a space.
func Line() *Doc { return lineDoc }

// Concat joins documents in order.
func Concat(docs ...*Doc) *Doc {
	var children []*Doc
	for _, d := range docs {
		if d == nil || d.kind == kindNil {
			continue
		}
		if d.kind == kindConcat {
			children = append(children, d.children...)
			continue
		}
		children = append(children, d)
	}
	switch len(children) {
	case 0:
		return nilDoc
	case 1:
		return children[0]
	}
	return &Doc{kind: kindConcat, children: children}
}

// Append returns d followed by others.
func (d *Doc) Append(others ...*Doc) *Doc {
	return Concat(append([]*Doc{d}, others...)...)
}

// Nest increases the indentation of lines broken inside d.
func (d *Doc) Nest(indent int) *Doc {
	if d.kind == kindNil {
		return d
	}
	return &Doc{kind: kindNest, indent: indent, children: []*Doc{d}}
}

// Group lets soft lines inside d collapse when d fits on one line.
func (d *Doc) Group() *Doc {
	if d.kind == kindNil {
		return d
	}
	return &Doc{kind: kindGroup, children: []*Doc{d}}
}

// IsNil reports whether d renders nothing.
func (d *Doc) IsNil() bool {
	return d == nil || d.kind == kindNil
}

// Intersperse joins docs with sep between each pair.
func Intersperse(docs []*Doc, sep *Doc) *Doc {
	parts := make([]*Doc, 0, len(docs)*2)
	for i, d := range docs {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return Concat(parts...)
}

// Render writes d to w, breaking soft lines that would exceed width.
func (d *Doc) Render(w io.Writer, width int) error {
	r := &renderer{w: w, width: width}
	r.render(d)
	return r.err
}

// Pretty renders d at the given width.
func (d *Doc) Pretty(width int) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = d.Render(&sb, width)
	return sb.String()
}

// String renders d at DefaultWidth.
func (d *Doc) String() string {
	return d.Pretty(DefaultWidth)
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

type frame struct {
	indent int
	mode   mode
	doc    *Doc
}

type renderer struct {
	w     io.Writer
	width int
	col   int
	err   error

	// indentation is written lazily so that empty lines carry no
	// trailing whitespace
	pending int
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	if r.pending > 0 {
		_, r.err = io.WriteString(r.w, strings.Repeat(" ", r.pending))
		r.col += r.pending
		r.pending = 0
		if r.err != nil {
			return
		}
	}
	_, r.err = io.WriteString(r.w, s)
	r.col += len(s)
}

func (r *renderer) newline(indent int) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, "\n")
	r.col = 0
	r.pending = indent
}

func (r *renderer) render(root *Doc) {
	stack := []frame{{indent: 0, mode: modeBreak, doc: root}}
	for len(stack) > 0 && r.err == nil {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.doc.kind {
		case kindNil:
		case kindText:
			r.write(f.doc.text)
		case kindConcat:
			for i := len(f.doc.children) - 1; i >= 0; i-- {
				stack = append(stack, frame{f.indent, f.mode, f.doc.children[i]})
			}
		case kindNest:
			stack = append(stack, frame{f.indent + f.doc.indent, f.mode, f.doc.children[0]})
		case kindHardline:
			r.newline(f.indent)
		case kindLine:
			if f.mode == modeFlat {
				r.write(" ")
			} else {
				r.newline(f.indent)
			}
		case kindGroup:
			m := modeBreak
			if f.mode == modeFlat || r.fits(r.width-r.col-r.pending, f.doc.children[0], stack) {
				m = modeFlat
			}
			stack = append(stack, frame{f.indent, m, f.doc.children[0]})
		}
	}
}

// fits reports whether d, laid out flat, plus the rest of the current line
// fits in the remaining columns.
func (r *renderer) fits(remaining int, d *Doc, rest []frame) bool {
	work := []*Doc{d}
	restIdx := len(rest) - 1
	for remaining >= 0 {
		if len(work) == 0 {
			// continue with what follows the group until the next break
			if restIdx < 0 {
				return true
			}
			next := rest[restIdx]
			restIdx--
			if next.mode == modeBreak && startsWithBreak(next.doc) {
				return true
			}
			work = append(work, next.doc)
			continue
		}
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		switch cur.kind {
		case kindText:
			remaining -= len(cur.text)
		case kindLine:
			remaining--
		case kindHardline:
			return true
		case kindConcat:
			for i := len(cur.children) - 1; i >= 0; i-- {
				work = append(work, cur.children[i])
			}
		case kindNest, kindGroup:
			work = append(work, cur.children[0])
		}
	}
	return false
}

func startsWithBreak(d *Doc) bool {
	for {
		switch d.kind {
		case kindHardline, kindLine:
			return true
		case kindConcat, kindNest, kindGroup:
			d = d.children[0]
		default:
			return false
		}
	}
}

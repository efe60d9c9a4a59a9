package doc

// Surround wraps d between pre and post.
func (d *Doc) Surround(pre, post string) *Doc {
	return Concat(Text(pre), d, Text(post))
}

func (d *Doc) Parens() *Doc   { return d.Surround("(", ")") }
func (d *Doc) Brackets() *Doc { return d.Surround("[", "]") }
func (d *Doc) Braces() *Doc   { return d.Surround("{", "}") }
func (d *Doc) Quotes() *Doc   { return d.Surround(`"`, `"`) }

// BeginEnd wraps d in a begin/end keyword pair.
func (d *Doc) BeginEnd() *Doc { return d.Surround("begin", "end") }

// Block indents body on its own lines:
//
//	<hardline>
//	    body
//	<hardline>
func Block(body *Doc) *Doc {
	return Concat(Hardline(), body).Nest(Indent).Append(Hardline())
}

// BlockWithParens renders `name (` + Block(body) + `)`.
func BlockWithParens(name, body *Doc) *Doc {
	return Concat(name, Space(), Block(body).Parens())
}

// BlockWithBraces renders `name {` + Block(body) + `}`.
func BlockWithBraces(name, body *Doc) *Doc {
	return Concat(name, Space(), Block(body).Braces())
}

// Lines joins docs with hard line breaks.
func Lines(docs []*Doc) *Doc {
	return Intersperse(docs, Hardline())
}

// CommaLines joins docs with a comma and a hard line break.
func CommaLines(docs []*Doc) *Doc {
	return Intersperse(docs, Text(",").Append(Hardline()))
}

// CommaList joins docs with a comma followed by a soft line, grouped so the
// list stays on one line when it fits.
func CommaList(docs []*Doc) *Doc {
	return Intersperse(docs, Text(",").Append(Line())).Nest(Indent).Group()
}

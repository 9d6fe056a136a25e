package ini

import (
	"io"
	"strings"
)

// formatter walks a Document and emits its text form.
type formatter struct {
	w       io.Writer
	sep     string
	eq      string
	comment string
}

func newFormatter(w io.Writer, o *options) *formatter {
	f := &formatter{w: w, sep: o.lineSeparator, eq: "=", comment: o.commentPrefix}
	if o.spaceAroundEquals {
		f.eq = " = "
	}
	if o.spaceBeforeComment {
		f.comment += " "
	}
	return f
}

func (f *formatter) format(doc *Document) error {
	if !doc.untitled.IsEmpty() {
		if err := f.writeBody(doc.untitled); err != nil {
			return err
		}
	}
	for _, sec := range doc.order {
		if err := f.writeLine("[" + sec.name + "]"); err != nil {
			return err
		}
		if err := f.writeBody(sec); err != nil {
			return err
		}
	}
	return nil
}

// writeBody emits one section's content: dangling text first, then the
// entry and comment items in document order.
func (f *formatter) writeBody(sec *Section) error {
	if sec.hasDangling {
		for _, line := range strings.Split(sec.dangling, "\n") {
			if err := f.writeLine(line); err != nil {
				return err
			}
		}
	}
	for _, it := range sec.items {
		var line string
		switch it.kind {
		case itemComment:
			line = f.comment + it.text
		case itemEntry:
			line = it.key + f.eq + it.value
		}
		if err := f.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// writeLine emits s followed by the separator. Line breaks inside s (a
// value with continuation lines) are rewritten to the separator so the
// output uses one line ending throughout.
func (f *formatter) writeLine(s string) error {
	if f.sep != "\n" {
		s = strings.ReplaceAll(s, "\n", f.sep)
	}
	_, err := io.WriteString(f.w, s+f.sep)
	return err
}

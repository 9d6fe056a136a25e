package ini

import "strconv"

// A SectionEditor mutates one section through a chainable interface. It is
// sugar over the Document and Section methods and adds no state of its
// own beyond remembering the first failed operation.
//
// Values set through the typed setters are stringified before storage; the
// model itself only ever holds strings.
type SectionEditor struct {
	doc *Document
	sec *Section
	err error
}

// Edit returns an editor for the named section, creating it if needed.
func (d *Document) Edit(name string) *SectionEditor {
	return &SectionEditor{doc: d, sec: d.SectionOrCreate(name)}
}

// EditUntitled returns an editor for the untitled section.
func (d *Document) EditUntitled() *SectionEditor {
	return &SectionEditor{doc: d, sec: d.untitled}
}

// Set binds key to value.
func (e *SectionEditor) Set(key, value string) *SectionEditor {
	e.sec.Set(key, value)
	return e
}

// SetInt binds key to the decimal form of n.
func (e *SectionEditor) SetInt(key string, n int64) *SectionEditor {
	return e.Set(key, strconv.FormatInt(n, 10))
}

// SetBool binds key to "true" or "false".
func (e *SectionEditor) SetBool(key string, b bool) *SectionEditor {
	return e.Set(key, strconv.FormatBool(b))
}

// SetFloat binds key to the shortest decimal form of f.
func (e *SectionEditor) SetFloat(key string, f float64) *SectionEditor {
	return e.Set(key, strconv.FormatFloat(f, 'g', -1, 64))
}

// Delete removes key. Removing an absent key is a no-op.
func (e *SectionEditor) Delete(key string) *SectionEditor {
	e.sec.Remove(key)
	return e
}

// Rename changes the key of an entry in place. A failed rename is
// recorded and reported by Err, with the cause telling an absent key
// apart from a taken target.
func (e *SectionEditor) Rename(key, newKey string) *SectionEditor {
	if !e.sec.Rename(key, newKey) && e.err == nil {
		if e.sec.Has(key) {
			e.err = e.sec.accessErr(newKey, ErrKeyExists)
		} else {
			e.err = e.sec.accessErr(key, ErrKeyNotFound)
		}
	}
	return e
}

// CommentBefore inserts comment lines directly before key.
func (e *SectionEditor) CommentBefore(key string, lines ...string) *SectionEditor {
	return e.record(e.sec.AddCommentsBefore(key, lines...))
}

// CommentAfter appends comment lines after key.
func (e *SectionEditor) CommentAfter(key string, lines ...string) *SectionEditor {
	return e.record(e.sec.AddCommentsAfter(key, lines...))
}

// Dangling replaces the section's dangling text.
func (e *SectionEditor) Dangling(text string) *SectionEditor {
	e.sec.SetDanglingText(text)
	return e
}

// Section returns the section being edited.
func (e *SectionEditor) Section() *Section { return e.sec }

// Err returns the first error recorded by a chained operation, or nil.
func (e *SectionEditor) Err() error { return e.err }

// Done returns the owning document, ending the chain.
func (e *SectionEditor) Done() *Document { return e.doc }

func (e *SectionEditor) record(err error) *SectionEditor {
	if err != nil && e.err == nil {
		e.err = err
	}
	return e
}

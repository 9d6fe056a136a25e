package ini

// Document is the in-memory representation of one INI source: an
// insertion-ordered collection of named sections plus the untitled section
// holding content that appears before the first section header.
//
// A Document is not safe for concurrent mutation; callers sharing one
// across goroutines must serialize access themselves.
type Document struct {
	untitled *Section
	order    []*Section
	byName   map[string]*Section
}

// New returns an empty Document containing only the untitled section.
func New() *Document {
	return &Document{
		untitled: newSection(""),
		byName:   make(map[string]*Section),
	}
}

// Untitled returns the untitled section. It always exists and cannot be
// removed, only cleared.
func (d *Document) Untitled() *Section { return d.untitled }

// Section returns the named section, or false if it does not exist.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.byName[name]
	return s, ok
}

// SectionOrCreate returns the named section, creating an empty one at the
// end of iteration order if it does not exist yet.
func (d *Document) SectionOrCreate(name string) *Section {
	if s, ok := d.byName[name]; ok {
		return s
	}
	s := newSection(name)
	d.byName[name] = s
	d.order = append(d.order, s)
	return s
}

// RemoveSection deletes the named section and reports whether it existed.
func (d *Document) RemoveSection(name string) bool {
	s, ok := d.byName[name]
	if !ok {
		return false
	}
	delete(d.byName, name)
	for i, sec := range d.order {
		if sec == s {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// RenameSection moves a section to a new name, keeping its entries and
// comments. It returns false if name is absent, if name equals newName, or
// if newName is already taken.
func (d *Document) RenameSection(name, newName string) bool {
	if name == newName {
		return false
	}
	s, ok := d.byName[name]
	if !ok {
		return false
	}
	if _, taken := d.byName[newName]; taken {
		return false
	}
	delete(d.byName, name)
	s.name = newName
	d.byName[newName] = s
	return true
}

// Clear removes all named sections. The untitled section is emptied only
// if includingUntitled is set; it is never removed.
func (d *Document) Clear(includingUntitled bool) {
	d.order = nil
	d.byName = make(map[string]*Section)
	if includingUntitled {
		d.untitled.clear()
	}
}

// Names returns the section names in insertion order, excluding the
// untitled section.
func (d *Document) Names() []string {
	names := make([]string, len(d.order))
	for i, s := range d.order {
		names[i] = s.name
	}
	return names
}

// Len returns the number of named sections.
func (d *Document) Len() int { return len(d.order) }

// Clone returns a deep structural copy sharing no mutable state with the
// original.
func (d *Document) Clone() *Document {
	c := &Document{
		untitled: d.untitled.clone(),
		byName:   make(map[string]*Section, len(d.byName)),
	}
	c.order = make([]*Section, len(d.order))
	for i, s := range d.order {
		cs := s.clone()
		c.order[i] = cs
		c.byName[cs.name] = cs
	}
	return c
}

// Equal reports structural equality: same section order, same entries in
// the same order, same comments and same dangling text.
func (d *Document) Equal(o *Document) bool {
	if o == nil || len(d.order) != len(o.order) {
		return false
	}
	if !d.untitled.equal(o.untitled) {
		return false
	}
	for i := range d.order {
		if !d.order[i].equal(o.order[i]) {
			return false
		}
	}
	return true
}

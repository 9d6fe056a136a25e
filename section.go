package ini

import (
	"strconv"
	"strings"
)

type itemKind uint8

const (
	itemEntry itemKind = iota
	itemComment
	// itemDangling only exists while a section is being parsed; the
	// deserializer resolves it before a Section is handed to callers.
	itemDangling
)

// item is one slot in a Section's ordered content vector: either a
// key/value entry or a single comment line.
type item struct {
	kind  itemKind
	key   string
	value string
	text  string
}

// Section is one named (or untitled) block of an INI document. It holds an
// ordered sequence of entries and comment lines, plus at most one block of
// dangling text that appeared before the first recognized entry.
//
// Sections are created and owned by a Document; use
// Document.SectionOrCreate or Document.Untitled to obtain one.
type Section struct {
	name        string
	items       []item
	dangling    string
	hasDangling bool
}

func newSection(name string) *Section {
	return &Section{name: name}
}

// Name returns the section's name. The untitled section has an empty name.
func (s *Section) Name() string { return s.name }

// Len returns the number of entries in the section.
func (s *Section) Len() int {
	n := 0
	for _, it := range s.items {
		if it.kind == itemEntry {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the section has no entries, no comments and no
// dangling text.
func (s *Section) IsEmpty() bool {
	return len(s.items) == 0 && !s.hasDangling
}

// Keys returns the section's keys in document order.
func (s *Section) Keys() []string {
	keys := make([]string, 0, len(s.items))
	for _, it := range s.items {
		if it.kind == itemEntry {
			keys = append(keys, it.key)
		}
	}
	return keys
}

// Has reports whether key exists in the section.
func (s *Section) Has(key string) bool {
	return s.find(key) >= 0
}

// Get returns the raw string value bound to key.
func (s *Section) Get(key string) (string, bool) {
	if i := s.find(key); i >= 0 {
		return s.items[i].value, true
	}
	return "", false
}

// Set binds key to value. An existing key keeps its position and attached
// comments; a new key is appended after the last item.
func (s *Section) Set(key, value string) {
	if i := s.find(key); i >= 0 {
		s.items[i].value = value
		return
	}
	s.items = append(s.items, item{kind: itemEntry, key: key, value: value})
}

// Remove deletes key and its value. It reports whether the key existed.
// Comment lines that followed the entry are not discarded: they remain in
// place, which attaches them to the preceding entry, or to the section's
// leading comments if the removed entry was the first one.
func (s *Section) Remove(key string) bool {
	i := s.find(key)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Rename changes the key of an entry while keeping its position, value and
// attached comments. It returns false if key is absent, or if newKey is
// already bound to a different entry.
func (s *Section) Rename(key, newKey string) bool {
	i := s.find(key)
	if i < 0 {
		return false
	}
	if newKey != key && s.find(newKey) >= 0 {
		return false
	}
	s.items[i].key = newKey
	return true
}

// GetInt returns the value of key parsed as an int.
func (s *Section) GetInt(key string) (int, error) {
	n, err := s.GetInt64(key)
	return int(n), err
}

// GetInt64 returns the value of key parsed as an int64.
func (s *Section) GetInt64(key string) (int64, error) {
	raw, err := s.raw(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, s.accessErr(key, err)
	}
	return n, nil
}

// GetBool returns the value of key parsed as a bool. It accepts the forms
// recognized by strconv.ParseBool (1, t, true, 0, f, false, ...).
func (s *Section) GetBool(key string) (bool, error) {
	raw, err := s.raw(key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, s.accessErr(key, err)
	}
	return b, nil
}

// GetFloat returns the value of key parsed as a float64.
func (s *Section) GetFloat(key string) (float64, error) {
	raw, err := s.raw(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, s.accessErr(key, err)
	}
	return f, nil
}

// CommentsBefore returns the comment lines immediately preceding key: the
// entry's share of the section's leading comments if it is the first entry,
// otherwise the trailing comments of the previous entry.
func (s *Section) CommentsBefore(key string) ([]string, error) {
	i := s.find(key)
	if i < 0 {
		return nil, s.accessErr(key, ErrKeyNotFound)
	}
	lo := i
	for lo > 0 && s.items[lo-1].kind == itemComment {
		lo--
	}
	return s.commentTexts(lo, i), nil
}

// CommentsAfter returns the comment lines recorded immediately after key.
func (s *Section) CommentsAfter(key string) ([]string, error) {
	i := s.find(key)
	if i < 0 {
		return nil, s.accessErr(key, ErrKeyNotFound)
	}
	hi := i + 1
	for hi < len(s.items) && s.items[hi].kind == itemComment {
		hi++
	}
	return s.commentTexts(i+1, hi), nil
}

// AddCommentsBefore inserts comment lines directly before key, after any
// comments already attached there.
func (s *Section) AddCommentsBefore(key string, lines ...string) error {
	i := s.find(key)
	if i < 0 {
		return s.accessErr(key, ErrKeyNotFound)
	}
	s.insertComments(i, lines)
	return nil
}

// AddCommentsAfter appends comment lines to the trailing comments of key.
func (s *Section) AddCommentsAfter(key string, lines ...string) error {
	i := s.find(key)
	if i < 0 {
		return s.accessErr(key, ErrKeyNotFound)
	}
	hi := i + 1
	for hi < len(s.items) && s.items[hi].kind == itemComment {
		hi++
	}
	s.insertComments(hi, lines)
	return nil
}

// RemoveCommentsBefore deletes the comment lines immediately preceding key.
func (s *Section) RemoveCommentsBefore(key string) error {
	i := s.find(key)
	if i < 0 {
		return s.accessErr(key, ErrKeyNotFound)
	}
	lo := i
	for lo > 0 && s.items[lo-1].kind == itemComment {
		lo--
	}
	s.items = append(s.items[:lo], s.items[i:]...)
	return nil
}

// RemoveCommentsAfter deletes the trailing comment lines of key.
func (s *Section) RemoveCommentsAfter(key string) error {
	i := s.find(key)
	if i < 0 {
		return s.accessErr(key, ErrKeyNotFound)
	}
	hi := i + 1
	for hi < len(s.items) && s.items[hi].kind == itemComment {
		hi++
	}
	s.items = append(s.items[:i+1], s.items[hi:]...)
	return nil
}

// Comments returns every comment line of the section in document order:
// the leading comments first, then each entry's trailing comments.
func (s *Section) Comments() []string {
	return s.commentTexts(0, len(s.items))
}

// DanglingText returns the section's dangling text: raw content that
// appeared before the first recognized entry. The second result reports
// whether any is present.
func (s *Section) DanglingText() (string, bool) {
	return s.dangling, s.hasDangling
}

// SetDanglingText replaces the section's dangling text.
func (s *Section) SetDanglingText(text string) {
	s.dangling = text
	s.hasDangling = true
}

// RemoveDanglingText clears the section's dangling text and reports
// whether any was present.
func (s *Section) RemoveDanglingText() bool {
	had := s.hasDangling
	s.dangling = ""
	s.hasDangling = false
	return had
}

func (s *Section) find(key string) int {
	for i, it := range s.items {
		if it.kind == itemEntry && it.key == key {
			return i
		}
	}
	return -1
}

func (s *Section) commentTexts(lo, hi int) []string {
	var out []string
	for _, it := range s.items[lo:hi] {
		if it.kind == itemComment {
			out = append(out, it.text)
		}
	}
	return out
}

func (s *Section) insertComments(at int, lines []string) {
	if len(lines) == 0 {
		return
	}
	add := make([]item, len(lines))
	for i, line := range lines {
		add[i] = item{kind: itemComment, text: line}
	}
	s.items = append(s.items[:at], append(add, s.items[at:]...)...)
}

func (s *Section) raw(key string) (string, error) {
	if i := s.find(key); i >= 0 {
		return s.items[i].value, nil
	}
	return "", s.accessErr(key, ErrKeyNotFound)
}

func (s *Section) accessErr(key string, cause error) *AccessError {
	return &AccessError{Section: s.name, Key: key, Err: cause}
}

func (s *Section) clear() {
	s.items = nil
	s.dangling = ""
	s.hasDangling = false
}

func (s *Section) clone() *Section {
	c := &Section{name: s.name, dangling: s.dangling, hasDangling: s.hasDangling}
	c.items = append([]item(nil), s.items...)
	return c
}

// appendDangling merges raw lines into the section's dangling blob,
// newline-joining across multiple source blocks.
func (s *Section) appendDangling(lines []string) {
	joined := strings.Join(lines, "\n")
	if s.hasDangling {
		s.dangling += "\n" + joined
	} else {
		s.dangling = joined
		s.hasDangling = true
	}
}

func (s *Section) equal(o *Section) bool {
	if s.name != o.name || s.hasDangling != o.hasDangling || s.dangling != o.dangling {
		return false
	}
	if len(s.items) != len(o.items) {
		return false
	}
	for i := range s.items {
		if s.items[i] != o.items[i] {
			return false
		}
	}
	return true
}
